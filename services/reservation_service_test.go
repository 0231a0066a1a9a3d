package services

import (
	"errors"
	"math"
	"testing"

	"modern-hotel/models"
)

// memStore is an in-memory Store fake. failSave simulates an IO failure on
// flush while leaving previously saved state intact.
type memStore struct {
	rooms        []models.Room
	guests       []models.Guest
	reservations []models.Reservation
	saves        int
	failSave     bool
}

func (m *memStore) Load() ([]models.Room, []models.Guest, []models.Reservation, error) {
	return append([]models.Room(nil), m.rooms...),
		append([]models.Guest(nil), m.guests...),
		append([]models.Reservation(nil), m.reservations...),
		nil
}

func (m *memStore) Save(rooms []models.Room, guests []models.Guest, reservations []models.Reservation) error {
	if m.failSave {
		return errors.New("disk full")
	}
	m.rooms = append([]models.Room(nil), rooms...)
	m.guests = append([]models.Guest(nil), guests...)
	m.reservations = append([]models.Reservation(nil), reservations...)
	m.saves++
	return nil
}

func singleRoomCatalog() []models.Room {
	return []models.Room{{RoomNumber: 101, RoomType: models.RoomTypeSingle, PricePerNight: 100}}
}

func newTestService(t *testing.T, store *memStore) *ReservationService {
	t.Helper()
	svc, err := NewReservationService(store)
	if err != nil {
		t.Fatalf("NewReservationService: %v", err)
	}
	return svc
}

func TestCreateReservation(t *testing.T) {
	t.Parallel()

	t.Run("assigns sequential ids and computes cost", func(t *testing.T) {
		store := &memStore{rooms: singleRoomCatalog()}
		svc := newTestService(t, store)

		res, err := svc.Create("Alice", "alice@example.com", models.RoomTypeSingle, day(1), 3)
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if res.ReservationID != "RES-001" {
			t.Fatalf("expected RES-001, got %s", res.ReservationID)
		}
		if res.TotalCost != 300 {
			t.Fatalf("expected cost 300, got %v", res.TotalCost)
		}
		if !res.CheckOut.Equal(day(4)) {
			t.Fatalf("expected check-out %v, got %v", day(4), res.CheckOut)
		}
		if store.saves == 0 {
			t.Fatalf("expected a flush after create")
		}
	})

	t.Run("back-to-back bookings on the same room both succeed", func(t *testing.T) {
		svc := newTestService(t, &memStore{rooms: singleRoomCatalog()})

		first, err := svc.Create("Alice", "", models.RoomTypeSingle, day(1), 2)
		if err != nil {
			t.Fatalf("first booking: %v", err)
		}
		second, err := svc.Create("Bob", "", models.RoomTypeSingle, day(3), 2)
		if err != nil {
			t.Fatalf("back-to-back booking must succeed: %v", err)
		}
		if first.RoomNumber != second.RoomNumber {
			t.Fatalf("expected both bookings on room %d", first.RoomNumber)
		}
	})

	t.Run("overlapping range is rejected without mutation", func(t *testing.T) {
		svc := newTestService(t, &memStore{rooms: singleRoomCatalog()})

		if _, err := svc.Create("Alice", "", models.RoomTypeSingle, day(1), 4); err != nil {
			t.Fatalf("first booking: %v", err)
		}
		_, err := svc.Create("Bob", "", models.RoomTypeSingle, day(3), 1)
		if !errors.Is(err, ErrNoRoomAvailable) {
			t.Fatalf("expected ErrNoRoomAvailable, got %v", err)
		}
		if len(svc.List()) != 1 {
			t.Fatalf("failed booking must not be appended")
		}
		// Next ID must not have been burned by the failed attempt.
		res, err := svc.Create("Bob", "", models.RoomTypeSingle, day(10), 1)
		if err != nil {
			t.Fatalf("disjoint booking: %v", err)
		}
		if res.ReservationID != "RES-002" {
			t.Fatalf("expected RES-002 after one success, got %s", res.ReservationID)
		}
	})

	t.Run("invalid input", func(t *testing.T) {
		svc := newTestService(t, &memStore{rooms: singleRoomCatalog()})

		if _, err := svc.Create("Alice", "", models.RoomTypeSingle, day(1), 0); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("zero nights: expected ErrInvalidInput, got %v", err)
		}
		if _, err := svc.Create("", "", models.RoomTypeSingle, day(1), 1); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("blank name: expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("flush failure keeps the booking and reports ErrNotDurable", func(t *testing.T) {
		store := &memStore{rooms: singleRoomCatalog()}
		svc := newTestService(t, store)
		store.failSave = true

		res, err := svc.Create("Alice", "", models.RoomTypeSingle, day(1), 2)
		if !errors.Is(err, ErrNotDurable) {
			t.Fatalf("expected ErrNotDurable, got %v", err)
		}
		if res == nil || res.ReservationID != "RES-001" {
			t.Fatalf("expected the reservation back despite the failed flush, got %v", res)
		}
		if len(svc.List()) != 1 {
			t.Fatalf("in-memory state must keep the booking")
		}
	})
}

func TestCounterRecovery(t *testing.T) {
	t.Parallel()

	t.Run("resumes from max persisted suffix", func(t *testing.T) {
		store := &memStore{rooms: singleRoomCatalog()}
		svc := newTestService(t, store)

		for i, name := range []string{"A", "B", "C"} {
			res, err := svc.Create(name, "", models.RoomTypeSingle, day(1+2*i), 1)
			if err != nil {
				t.Fatalf("booking %d: %v", i, err)
			}
			want := models.FormatReservationID(i + 1)
			if res.ReservationID != want {
				t.Fatalf("expected %s, got %s", want, res.ReservationID)
			}
		}

		// Simulated restart over the persisted state.
		restarted := newTestService(t, store)
		res, err := restarted.Create("D", "", models.RoomTypeSingle, day(20), 1)
		if err != nil {
			t.Fatalf("post-restart booking: %v", err)
		}
		if res.ReservationID != "RES-004" {
			t.Fatalf("expected RES-004 after restart, got %s", res.ReservationID)
		}
	})

	t.Run("ids are not reused after cancellation", func(t *testing.T) {
		svc := newTestService(t, &memStore{rooms: singleRoomCatalog()})

		res, _ := svc.Create("A", "", models.RoomTypeSingle, day(1), 1)
		if err := svc.Cancel(res.ReservationID); err != nil {
			t.Fatalf("Cancel: %v", err)
		}
		next, err := svc.Create("B", "", models.RoomTypeSingle, day(1), 1)
		if err != nil {
			t.Fatalf("rebooking: %v", err)
		}
		if next.ReservationID != "RES-002" {
			t.Fatalf("expected RES-002, canceled ids must never be reused, got %s", next.ReservationID)
		}
	})
}

func TestCancelReservation(t *testing.T) {
	t.Parallel()

	t.Run("frees the date range", func(t *testing.T) {
		svc := newTestService(t, &memStore{rooms: singleRoomCatalog()})

		res, err := svc.Create("Alice", "", models.RoomTypeSingle, day(1), 3)
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if err := svc.Cancel(res.ReservationID); err != nil {
			t.Fatalf("Cancel: %v", err)
		}

		rebooked, err := svc.Create("Bob", "", models.RoomTypeSingle, day(1), 3)
		if err != nil {
			t.Fatalf("identical range must be bookable after cancel: %v", err)
		}
		if rebooked.RoomNumber != res.RoomNumber {
			t.Fatalf("expected the same room %d, got %d", res.RoomNumber, rebooked.RoomNumber)
		}
	})

	t.Run("unknown id leaves state unchanged", func(t *testing.T) {
		store := &memStore{rooms: singleRoomCatalog()}
		svc := newTestService(t, store)
		svc.Create("Alice", "", models.RoomTypeSingle, day(1), 1)
		saves := store.saves

		if err := svc.Cancel("RES-999"); !errors.Is(err, ErrReservationNotFound) {
			t.Fatalf("expected ErrReservationNotFound, got %v", err)
		}
		if len(svc.List()) != 1 || store.saves != saves {
			t.Fatalf("failed cancel must not mutate or flush")
		}
	})
}

func TestEditReservation(t *testing.T) {
	t.Parallel()

	catalog := func() []models.Room {
		return []models.Room{
			{RoomNumber: 101, RoomType: models.RoomTypeSingle, PricePerNight: 100},
			{RoomNumber: 201, RoomType: models.RoomTypeDouble, PricePerNight: 150},
		}
	}

	t.Run("guest-only edit keeps total cost", func(t *testing.T) {
		svc := newTestService(t, &memStore{rooms: catalog()})
		res, _ := svc.Create("Alice", "alice@example.com", models.RoomTypeSingle, day(1), 3)

		name := "Alicia"
		updated, err := svc.Edit(res.ReservationID, EditInput{GuestName: &name})
		if err != nil {
			t.Fatalf("Edit: %v", err)
		}
		if updated.Guest.Name != "Alicia" {
			t.Fatalf("expected renamed guest, got %q", updated.Guest.Name)
		}
		if updated.TotalCost != res.TotalCost {
			t.Fatalf("cost changed on guest-only edit: %v -> %v", res.TotalCost, updated.TotalCost)
		}
		if updated.RoomNumber != res.RoomNumber || !updated.CheckIn.Equal(res.CheckIn) {
			t.Fatalf("room/dates changed on guest-only edit")
		}
	})

	t.Run("room type change moves room and recomputes cost", func(t *testing.T) {
		svc := newTestService(t, &memStore{rooms: catalog()})
		res, _ := svc.Create("Alice", "", models.RoomTypeSingle, day(1), 2)

		double := models.RoomTypeDouble
		updated, err := svc.Edit(res.ReservationID, EditInput{RoomType: &double})
		if err != nil {
			t.Fatalf("Edit: %v", err)
		}
		if updated.RoomNumber != 201 || updated.RoomType != models.RoomTypeDouble {
			t.Fatalf("expected move to room 201, got %d (%s)", updated.RoomNumber, updated.RoomType)
		}
		if updated.TotalCost != 300 {
			t.Fatalf("expected cost 2*150=300, got %v", updated.TotalCost)
		}
	})

	t.Run("nights change recomputes cost", func(t *testing.T) {
		svc := newTestService(t, &memStore{rooms: catalog()})
		res, _ := svc.Create("Alice", "", models.RoomTypeSingle, day(1), 2)

		nights := 5
		updated, err := svc.Edit(res.ReservationID, EditInput{Nights: &nights})
		if err != nil {
			t.Fatalf("Edit: %v", err)
		}
		if !updated.CheckOut.Equal(day(6)) {
			t.Fatalf("expected check-out %v, got %v", day(6), updated.CheckOut)
		}
		if updated.TotalCost != 500 {
			t.Fatalf("expected cost 500, got %v", updated.TotalCost)
		}
	})

	t.Run("date change may keep the same room via self-exclusion", func(t *testing.T) {
		svc := newTestService(t, &memStore{rooms: singleRoomCatalog()})
		res, _ := svc.Create("Alice", "", models.RoomTypeSingle, day(1), 2)

		in := day(2)
		updated, err := svc.Edit(res.ReservationID, EditInput{CheckIn: &in})
		if err != nil {
			t.Fatalf("shifting within the only room must succeed: %v", err)
		}
		if updated.RoomNumber != res.RoomNumber {
			t.Fatalf("expected the booking to stay on room %d", res.RoomNumber)
		}
		if !updated.CheckIn.Equal(day(2)) || !updated.CheckOut.Equal(day(4)) {
			t.Fatalf("expected shifted range [2,4), got [%v,%v)", updated.CheckIn, updated.CheckOut)
		}
	})

	t.Run("unavailable change keeps original booking with ErrRoomRetained", func(t *testing.T) {
		svc := newTestService(t, &memStore{rooms: catalog()})
		res, _ := svc.Create("Alice", "", models.RoomTypeSingle, day(1), 2)
		svc.Create("Bob", "", models.RoomTypeDouble, day(1), 2)

		double := models.RoomTypeDouble
		name := "Alicia"
		updated, err := svc.Edit(res.ReservationID, EditInput{RoomType: &double, GuestName: &name})
		if !errors.Is(err, ErrRoomRetained) {
			t.Fatalf("expected ErrRoomRetained, got %v", err)
		}
		if updated.RoomNumber != res.RoomNumber || updated.RoomType != models.RoomTypeSingle {
			t.Fatalf("original room must be kept, got %d (%s)", updated.RoomNumber, updated.RoomType)
		}
		if updated.Guest.Name != "Alicia" {
			t.Fatalf("guest-field changes must still apply, got %q", updated.Guest.Name)
		}
		if updated.TotalCost != res.TotalCost {
			t.Fatalf("cost must be unchanged when the booking is retained")
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		svc := newTestService(t, &memStore{rooms: catalog()})
		if _, err := svc.Edit("RES-404", EditInput{}); !errors.Is(err, ErrReservationNotFound) {
			t.Fatalf("expected ErrReservationNotFound, got %v", err)
		}
	})
}

func TestListAndSearch(t *testing.T) {
	t.Parallel()

	store := &memStore{rooms: []models.Room{
		{RoomNumber: 101, RoomType: models.RoomTypeSingle, PricePerNight: 100},
		{RoomNumber: 102, RoomType: models.RoomTypeSingle, PricePerNight: 100},
	}}
	svc := newTestService(t, store)

	// Created out of date order on purpose.
	svc.Create("Charlie Brown", "", models.RoomTypeSingle, day(5), 1)
	svc.Create("Alice Smith", "", models.RoomTypeSingle, day(1), 1)
	svc.Create("Bob Smith", "", models.RoomTypeSingle, day(1), 1)

	t.Run("list orders by check-in then id", func(t *testing.T) {
		list := svc.List()
		if len(list) != 3 {
			t.Fatalf("expected 3 reservations, got %d", len(list))
		}
		got := []string{list[0].ReservationID, list[1].ReservationID, list[2].ReservationID}
		want := []string{"RES-002", "RES-003", "RES-001"}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("order mismatch at %d: got %v, want %v", i, got, want)
			}
		}
	})

	t.Run("search by guest name is a case-insensitive substring", func(t *testing.T) {
		results := svc.SearchByGuest("smith")
		if len(results) != 2 {
			t.Fatalf("expected 2 matches for 'smith', got %d", len(results))
		}
		if len(svc.SearchByGuest("zzz")) != 0 {
			t.Fatalf("expected no matches for 'zzz'")
		}
	})

	t.Run("get by exact id", func(t *testing.T) {
		res, err := svc.Get("RES-002")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if res.Guest.Name != "Alice Smith" {
			t.Fatalf("expected Alice Smith, got %q", res.Guest.Name)
		}
		if _, err := svc.Get("res-002"); !errors.Is(err, ErrReservationNotFound) {
			t.Fatalf("id match must be exact, got %v", err)
		}
	})
}

func TestAvailableRooms(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &memStore{rooms: []models.Room{
		{RoomNumber: 101, RoomType: models.RoomTypeSingle, PricePerNight: 100},
		{RoomNumber: 102, RoomType: models.RoomTypeSingle, PricePerNight: 100},
	}})
	svc.Create("Alice", "", models.RoomTypeSingle, day(1), 3)

	rooms, err := svc.AvailableRooms(models.RoomTypeSingle, day(2), 1)
	if err != nil {
		t.Fatalf("AvailableRooms: %v", err)
	}
	if len(rooms) != 1 || rooms[0].RoomNumber != 102 {
		t.Fatalf("expected only room 102 free, got %v", rooms)
	}

	if _, err := svc.AvailableRooms(models.RoomTypeSingle, day(2), 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero nights, got %v", err)
	}
}

func TestSeedsDefaultRoomsWhenEmpty(t *testing.T) {
	t.Parallel()

	store := &memStore{}
	svc := newTestService(t, store)

	rooms := svc.Rooms()
	if len(rooms) != 30 {
		t.Fatalf("expected 30 seeded rooms, got %d", len(rooms))
	}
	if rooms[0].RoomNumber != 101 || rooms[0].RoomType != models.RoomTypeSingle {
		t.Fatalf("expected room 101 Single first, got %v", rooms[0])
	}
	if math.Abs(rooms[len(rooms)-1].PricePerNight-300) > 0.001 {
		t.Fatalf("expected suite rate 300, got %v", rooms[len(rooms)-1].PricePerNight)
	}
	if len(store.rooms) != 30 {
		t.Fatalf("seeded catalog must be flushed to the store")
	}
}
