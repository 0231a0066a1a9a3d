package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gorm.io/datatypes"

	"modern-hotel/models"
	"modern-hotel/utils"
)

const (
	roomsFile        = "rooms.csv"
	guestsFile       = "guests.csv"
	reservationsFile = "reservations.csv"
)

// CSVStore keeps the hotel state in three delimited files inside a data
// directory. Files that do not exist yet read back as empty collections.
type CSVStore struct {
	Dir string
}

func NewCSVStore(dir string) *CSVStore {
	return &CSVStore{Dir: dir}
}

func (s *CSVStore) Load() ([]models.Room, []models.Guest, []models.Reservation, error) {
	rooms, err := s.loadRooms()
	if err != nil {
		return nil, nil, nil, err
	}
	guests, err := s.loadGuests()
	if err != nil {
		return nil, nil, nil, err
	}
	reservations, err := s.loadReservations()
	if err != nil {
		return nil, nil, nil, err
	}
	return rooms, guests, reservations, nil
}

func (s *CSVStore) Save(rooms []models.Room, guests []models.Guest, reservations []models.Reservation) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := s.saveRooms(rooms); err != nil {
		return err
	}
	if err := s.saveGuests(guests); err != nil {
		return err
	}
	return s.saveReservations(reservations)
}

// readRecords opens a CSV file and returns its rows minus the header.
// A missing file is not an error: it reads back as no rows.
func (s *CSVStore) readRecords(name string) ([][]string, error) {
	f, err := os.Open(filepath.Join(s.Dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	if len(records) <= 1 {
		return nil, nil
	}
	return records[1:], nil
}

func (s *CSVStore) writeRecords(name string, header []string, rows [][]string) error {
	f, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

func (s *CSVStore) loadRooms() ([]models.Room, error) {
	rows, err := s.readRecords(roomsFile)
	if err != nil {
		return nil, err
	}
	rooms := make([]models.Room, 0, len(rows))
	for _, row := range rows {
		if len(row) < 3 {
			continue
		}
		number, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("bad room number %q in %s: %w", row[0], roomsFile, err)
		}
		roomType, err := models.ParseRoomType(row[1])
		if err != nil {
			return nil, fmt.Errorf("bad room record in %s: %w", roomsFile, err)
		}
		price, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, fmt.Errorf("bad price %q in %s: %w", row[2], roomsFile, err)
		}
		room := models.Room{RoomNumber: number, RoomType: roomType, PricePerNight: price}
		if len(row) > 3 && row[3] != "" {
			room.Amenities = datatypes.JSON(row[3])
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}

func (s *CSVStore) saveRooms(rooms []models.Room) error {
	rows := make([][]string, 0, len(rooms))
	for _, r := range rooms {
		rows = append(rows, []string{
			strconv.Itoa(r.RoomNumber),
			string(r.RoomType),
			fmt.Sprintf("%.2f", r.PricePerNight),
			string(r.Amenities),
		})
	}
	return s.writeRecords(roomsFile,
		[]string{"Room Number", "Room Type", "Price Per Night", "Amenities"}, rows)
}

func (s *CSVStore) loadGuests() ([]models.Guest, error) {
	rows, err := s.readRecords(guestsFile)
	if err != nil {
		return nil, err
	}
	guests := make([]models.Guest, 0, len(rows))
	for _, row := range rows {
		if len(row) < 3 {
			continue
		}
		id, err := strconv.ParseUint(row[0], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("bad guest id %q in %s: %w", row[0], guestsFile, err)
		}
		guests = append(guests, models.Guest{ID: uint(id), Name: row[1], Contact: row[2]})
	}
	return guests, nil
}

func (s *CSVStore) saveGuests(guests []models.Guest) error {
	rows := make([][]string, 0, len(guests))
	for _, g := range guests {
		rows = append(rows, []string{strconv.FormatUint(uint64(g.ID), 10), g.Name, g.Contact})
	}
	return s.writeRecords(guestsFile, []string{"Guest ID", "Name", "Contact"}, rows)
}

func (s *CSVStore) loadReservations() ([]models.Reservation, error) {
	rows, err := s.readRecords(reservationsFile)
	if err != nil {
		return nil, err
	}
	reservations := make([]models.Reservation, 0, len(rows))
	for _, row := range rows {
		if len(row) < 7 {
			continue
		}
		guestID, err := strconv.ParseUint(row[1], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("bad guest id %q in %s: %w", row[1], reservationsFile, err)
		}
		roomNumber, err := strconv.Atoi(row[2])
		if err != nil {
			return nil, fmt.Errorf("bad room number %q in %s: %w", row[2], reservationsFile, err)
		}
		roomType, err := models.ParseRoomType(row[3])
		if err != nil {
			return nil, fmt.Errorf("bad reservation record in %s: %w", reservationsFile, err)
		}
		checkIn, err := utils.ParseDate(row[4])
		if err != nil {
			return nil, fmt.Errorf("bad check-in in %s: %w", reservationsFile, err)
		}
		checkOut, err := utils.ParseDate(row[5])
		if err != nil {
			return nil, fmt.Errorf("bad check-out in %s: %w", reservationsFile, err)
		}
		cost, err := strconv.ParseFloat(row[6], 64)
		if err != nil {
			return nil, fmt.Errorf("bad total cost %q in %s: %w", row[6], reservationsFile, err)
		}
		reservations = append(reservations, models.Reservation{
			ReservationID: row[0],
			GuestID:       uint(guestID),
			RoomNumber:    roomNumber,
			RoomType:      roomType,
			CheckIn:       checkIn,
			CheckOut:      checkOut,
			TotalCost:     cost,
		})
	}
	return reservations, nil
}

func (s *CSVStore) saveReservations(reservations []models.Reservation) error {
	rows := make([][]string, 0, len(reservations))
	for _, r := range reservations {
		rows = append(rows, []string{
			r.ReservationID,
			strconv.FormatUint(uint64(r.GuestID), 10),
			strconv.Itoa(r.RoomNumber),
			string(r.RoomType),
			utils.FormatDate(r.CheckIn),
			utils.FormatDate(r.CheckOut),
			fmt.Sprintf("%.2f", r.TotalCost),
		})
	}
	return s.writeRecords(reservationsFile,
		[]string{"Reservation ID", "Guest ID", "Room Number", "Room Type", "Check-in Date", "Check-out Date", "Total Cost"},
		rows)
}
