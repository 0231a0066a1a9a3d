package services

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"modern-hotel/models"
	"modern-hotel/storage"
	"modern-hotel/utils"
)

// ReservationService is the ledger: the authoritative in-memory copy of the
// room catalog, guest registry and reservation set, flushed write-through to
// the store after every mutating operation.
//
// The mutex makes create/cancel/edit atomic with respect to each other so the
// no-overlap invariant holds when the ledger is driven by the HTTP server.
type ReservationService struct {
	mu    sync.Mutex
	store storage.Store

	rooms        []models.Room // sorted by room number
	guests       []models.Guest
	reservations []models.Reservation

	nextReservation int
	nextGuestID     uint
}

// ReservationDetail joins a reservation with its guest record for display.
type ReservationDetail struct {
	models.Reservation
	Guest models.Guest `json:"guest"`
}

// EditInput carries the optional per-field changes for Edit. Nil fields keep
// their current values.
type EditInput struct {
	GuestName    *string
	GuestContact *string
	RoomType     *models.RoomType
	CheckIn      *time.Time
	Nights       *int
}

// NewReservationService loads persisted state and recovers the ID counters
// from it: the next reservation number is max(numeric suffix)+1, never a
// restart from 1 over existing data. An empty room catalog is seeded with the
// default inventory.
func NewReservationService(store storage.Store) (*ReservationService, error) {
	rooms, guests, reservations, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load hotel state: %w", err)
	}

	s := &ReservationService{
		store:           store,
		rooms:           rooms,
		guests:          guests,
		reservations:    reservations,
		nextReservation: 1,
		nextGuestID:     1,
	}

	if len(s.rooms) == 0 {
		s.rooms = models.DefaultRooms()
		if err := s.flush(); err != nil {
			log.Printf("warning: failed to persist seeded room catalog: %v", err)
		}
	}
	sort.Slice(s.rooms, func(i, j int) bool { return s.rooms[i].RoomNumber < s.rooms[j].RoomNumber })

	for _, r := range reservations {
		if n, ok := models.ReservationNumber(r.ReservationID); ok && n >= s.nextReservation {
			s.nextReservation = n + 1
		}
	}
	for _, g := range guests {
		if g.ID >= s.nextGuestID {
			s.nextGuestID = g.ID + 1
		}
	}

	return s, nil
}

// Rooms returns the catalog in room-number order.
func (s *ReservationService) Rooms() []models.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Room, len(s.rooms))
	copy(out, s.rooms)
	return out
}

// AvailableRooms lists the rooms of the given type free for the whole stay.
func (s *ReservationService) AvailableRooms(roomType models.RoomType, checkIn time.Time, nights int) ([]models.Room, error) {
	if nights <= 0 {
		return nil, fmt.Errorf("%w: nights must be positive, got %d", ErrInvalidInput, nights)
	}
	if checkIn.IsZero() {
		return nil, fmt.Errorf("%w: check-in date is required", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	want := DateRange{CheckIn: utils.Midnight(checkIn), CheckOut: utils.Midnight(checkIn).AddDate(0, 0, nights)}
	booked := BookedRanges(s.reservations, "")

	var free []models.Room
	for _, room := range s.rooms {
		if room.RoomType != roomType {
			continue
		}
		if IsRoomAvailable(booked, room.RoomNumber, want) {
			free = append(free, room)
		}
	}
	return free, nil
}

// Create books the first free room of the requested type, registers the
// guest, assigns the next sequential reservation ID and flushes. Nothing is
// mutated when no room is available or the input is invalid.
func (s *ReservationService) Create(guestName, guestContact string, roomType models.RoomType, checkIn time.Time, nights int) (*ReservationDetail, error) {
	guestName = strings.TrimSpace(guestName)
	if guestName == "" {
		return nil, fmt.Errorf("%w: guest name is required", ErrInvalidInput)
	}
	if nights <= 0 {
		return nil, fmt.Errorf("%w: nights must be positive, got %d", ErrInvalidInput, nights)
	}
	if checkIn.IsZero() {
		return nil, fmt.Errorf("%w: check-in date is required", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	in := utils.Midnight(checkIn)
	want := DateRange{CheckIn: in, CheckOut: in.AddDate(0, 0, nights)}

	room, ok := FindAvailableRoom(s.rooms, BookedRanges(s.reservations, ""), roomType, want)
	if !ok {
		return nil, fmt.Errorf("%w: no %s room free between %s and %s",
			ErrNoRoomAvailable, roomType, utils.FormatDate(want.CheckIn), utils.FormatDate(want.CheckOut))
	}

	guest := models.Guest{ID: s.nextGuestID, Name: guestName, Contact: strings.TrimSpace(guestContact)}
	res := models.Reservation{
		ReservationID: models.FormatReservationID(s.nextReservation),
		GuestID:       guest.ID,
		RoomNumber:    room.RoomNumber,
		RoomType:      room.RoomType,
		CheckIn:       want.CheckIn,
		CheckOut:      want.CheckOut,
		TotalCost:     float64(nights) * room.PricePerNight,
	}

	s.guests = append(s.guests, guest)
	s.reservations = append(s.reservations, res)
	s.nextGuestID++
	s.nextReservation++

	detail := &ReservationDetail{Reservation: res, Guest: guest}
	if err := s.flush(); err != nil {
		return detail, fmt.Errorf("%w: %v", ErrNotDurable, err)
	}
	return detail, nil
}

// Cancel removes the reservation, which frees its date range, and flushes.
// Unknown IDs leave the ledger untouched.
func (s *ReservationService) Cancel(reservationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(reservationID)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrReservationNotFound, reservationID)
	}

	s.reservations = append(s.reservations[:idx], s.reservations[idx+1:]...)

	if err := s.flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrNotDurable, err)
	}
	return nil
}

// Edit applies the provided fields to an existing reservation. A room-type or
// date change re-runs the availability search with the reservation's own
// booking excluded; when nothing is free the original room and dates are kept
// and ErrRoomRetained is returned alongside the (guest-field) updated record.
// Total cost is always recomputed from the final dates and nightly rate.
func (s *ReservationService) Edit(reservationID string, input EditInput) (*ReservationDetail, error) {
	if input.Nights != nil && *input.Nights <= 0 {
		return nil, fmt.Errorf("%w: nights must be positive, got %d", ErrInvalidInput, *input.Nights)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(reservationID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrReservationNotFound, reservationID)
	}
	res := &s.reservations[idx]

	newType := res.RoomType
	if input.RoomType != nil {
		newType = *input.RoomType
	}
	newCheckIn := res.CheckIn
	if input.CheckIn != nil {
		newCheckIn = utils.Midnight(*input.CheckIn)
	}
	nights := res.Nights()
	if input.Nights != nil {
		nights = *input.Nights
	}

	var opErr error
	if input.RoomType != nil || input.CheckIn != nil || input.Nights != nil {
		want := DateRange{CheckIn: newCheckIn, CheckOut: newCheckIn.AddDate(0, 0, nights)}
		booked := BookedRanges(s.reservations, res.ReservationID)
		if room, ok := FindAvailableRoom(s.rooms, booked, newType, want); ok {
			res.RoomNumber = room.RoomNumber
			res.RoomType = room.RoomType
			res.CheckIn = want.CheckIn
			res.CheckOut = want.CheckOut
		} else {
			// Explicit policy: keep the original room and dates rather than
			// corrupt the booking, and tell the caller the change was not
			// applied.
			opErr = ErrRoomRetained
		}
	}

	guest := s.guestAt(res.GuestID)
	if guest != nil {
		if input.GuestName != nil && strings.TrimSpace(*input.GuestName) != "" {
			guest.Name = strings.TrimSpace(*input.GuestName)
		}
		if input.GuestContact != nil {
			guest.Contact = strings.TrimSpace(*input.GuestContact)
		}
	}

	if room := s.roomByNumber(res.RoomNumber); room != nil {
		res.TotalCost = float64(res.Nights()) * room.PricePerNight
	}

	detail := &ReservationDetail{Reservation: *res}
	if guest != nil {
		detail.Guest = *guest
	}

	if err := s.flush(); err != nil {
		opErr = errors.Join(opErr, fmt.Errorf("%w: %v", ErrNotDurable, err))
	}
	return detail, opErr
}

// List returns every reservation ordered by check-in date, reservation ID as
// the tie-break.
func (s *ReservationService) List() []ReservationDetail {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]ReservationDetail, 0, len(s.reservations))
	for _, r := range s.reservations {
		out = append(out, s.detail(r))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CheckIn.Equal(out[j].CheckIn) {
			return out[i].CheckIn.Before(out[j].CheckIn)
		}
		return out[i].ReservationID < out[j].ReservationID
	})
	return out
}

// SearchByGuest returns reservations whose guest name contains the query,
// case-insensitively.
func (s *ReservationService) SearchByGuest(query string) []ReservationDetail {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := strings.ToLower(strings.TrimSpace(query))
	var out []ReservationDetail
	if q == "" {
		return out
	}
	for _, r := range s.reservations {
		d := s.detail(r)
		if strings.Contains(strings.ToLower(d.Guest.Name), q) {
			out = append(out, d)
		}
	}
	return out
}

// Get finds a reservation by its exact ID.
func (s *ReservationService) Get(reservationID string) (*ReservationDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(reservationID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrReservationNotFound, reservationID)
	}
	d := s.detail(s.reservations[idx])
	return &d, nil
}

func (s *ReservationService) indexOf(reservationID string) int {
	for i, r := range s.reservations {
		if r.ReservationID == reservationID {
			return i
		}
	}
	return -1
}

func (s *ReservationService) guestAt(id uint) *models.Guest {
	for i := range s.guests {
		if s.guests[i].ID == id {
			return &s.guests[i]
		}
	}
	return nil
}

func (s *ReservationService) roomByNumber(number int) *models.Room {
	for i := range s.rooms {
		if s.rooms[i].RoomNumber == number {
			return &s.rooms[i]
		}
	}
	return nil
}

func (s *ReservationService) detail(r models.Reservation) ReservationDetail {
	d := ReservationDetail{Reservation: r}
	if g := s.guestAt(r.GuestID); g != nil {
		d.Guest = *g
	}
	return d
}

func (s *ReservationService) flush() error {
	return s.store.Save(s.rooms, s.guests, s.reservations)
}
