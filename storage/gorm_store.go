package storage

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"modern-hotel/models"
)

// GormStore keeps the hotel state in MySQL through GORM. Save replaces the
// persisted state inside one transaction so a failed flush never leaves the
// tables half-written.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) Load() ([]models.Room, []models.Guest, []models.Reservation, error) {
	var rooms []models.Room
	if err := s.DB.Order("room_number").Find(&rooms).Error; err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load rooms: %w", err)
	}

	var guests []models.Guest
	if err := s.DB.Order("id").Find(&guests).Error; err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load guests: %w", err)
	}

	var reservations []models.Reservation
	if err := s.DB.Order("reservation_id").Find(&reservations).Error; err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load reservations: %w", err)
	}

	return rooms, guests, reservations, nil
}

func (s *GormStore) Save(rooms []models.Room, guests []models.Guest, reservations []models.Reservation) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		full := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		for _, model := range []interface{}{&models.Reservation{}, &models.Guest{}, &models.Room{}} {
			if err := full.Delete(model).Error; err != nil {
				return err
			}
		}

		if len(rooms) > 0 {
			if err := tx.Create(&rooms).Error; err != nil {
				return err
			}
		}
		if len(guests) > 0 {
			if err := tx.Create(&guests).Error; err != nil {
				return err
			}
		}
		if len(reservations) > 0 {
			if err := tx.Create(&reservations).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return fmt.Errorf("duplicate key while flushing state: %w", err)
		}
		return fmt.Errorf("failed to flush state: %w", err)
	}
	return nil
}
