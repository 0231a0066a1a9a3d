package storage

import "modern-hotel/models"

// Store persists the whole hotel state: room catalog, guest registry and
// reservation ledger. Load on a missing backing yields empty collections,
// not an error. Save is write-through; the ledger calls it after every
// mutating operation.
type Store interface {
	Load() (rooms []models.Room, guests []models.Guest, reservations []models.Reservation, err error)
	Save(rooms []models.Room, guests []models.Guest, reservations []models.Reservation) error
}
