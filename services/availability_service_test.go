package services

import (
	"testing"
	"time"

	"modern-hotel/models"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func rng(in, out int) DateRange {
	return DateRange{CheckIn: day(in), CheckOut: day(out)}
}

func TestOverlaps(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		a, b DateRange
		want bool
	}{
		{"disjoint before", rng(1, 3), rng(5, 7), false},
		{"disjoint after", rng(5, 7), rng(1, 3), false},
		{"back to back, a first", rng(1, 3), rng(3, 5), false},
		{"back to back, b first", rng(3, 5), rng(1, 3), false},
		{"partial overlap", rng(1, 4), rng(3, 6), true},
		{"contained", rng(1, 10), rng(3, 4), true},
		{"containing", rng(3, 4), rng(1, 10), true},
		{"identical", rng(2, 5), rng(2, 5), true},
		{"shared single night", rng(1, 3), rng(2, 3), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.a, tc.b); got != tc.want {
				t.Fatalf("Overlaps(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestIsRoomAvailable(t *testing.T) {
	t.Parallel()

	reservations := []models.Reservation{
		{ReservationID: "RES-001", RoomNumber: 101, CheckIn: day(1), CheckOut: day(5)},
		{ReservationID: "RES-002", RoomNumber: 102, CheckIn: day(3), CheckOut: day(4)},
	}
	booked := BookedRanges(reservations, "")

	t.Run("free range outside all bookings", func(t *testing.T) {
		if !IsRoomAvailable(booked, 101, rng(5, 8)) {
			t.Fatalf("expected room 101 free from day 5")
		}
	})

	t.Run("intersecting range is rejected", func(t *testing.T) {
		if IsRoomAvailable(booked, 101, rng(3, 4)) {
			t.Fatalf("expected room 101 occupied on days 3-4")
		}
	})

	t.Run("other rooms do not block", func(t *testing.T) {
		if !IsRoomAvailable(booked, 101, rng(5, 6)) {
			t.Fatalf("room 102's booking must not affect room 101")
		}
	})

	t.Run("unknown room is always free", func(t *testing.T) {
		if !IsRoomAvailable(booked, 999, rng(1, 5)) {
			t.Fatalf("room with no bookings must be free")
		}
	})

	t.Run("excluded reservation is ignored", func(t *testing.T) {
		excluded := BookedRanges(reservations, "RES-001")
		if !IsRoomAvailable(excluded, 101, rng(2, 4)) {
			t.Fatalf("excluding RES-001 should free its range on room 101")
		}
	})
}

func TestFindAvailableRoom(t *testing.T) {
	t.Parallel()

	rooms := []models.Room{
		{RoomNumber: 101, RoomType: models.RoomTypeSingle, PricePerNight: 100},
		{RoomNumber: 102, RoomType: models.RoomTypeSingle, PricePerNight: 100},
		{RoomNumber: 201, RoomType: models.RoomTypeDouble, PricePerNight: 150},
	}

	t.Run("first match in catalog order", func(t *testing.T) {
		room, ok := FindAvailableRoom(rooms, BookedRanges(nil, ""), models.RoomTypeSingle, rng(1, 3))
		if !ok || room.RoomNumber != 101 {
			t.Fatalf("expected room 101, got %v (ok=%v)", room.RoomNumber, ok)
		}
	})

	t.Run("skips occupied rooms", func(t *testing.T) {
		booked := BookedRanges([]models.Reservation{
			{ReservationID: "RES-001", RoomNumber: 101, CheckIn: day(1), CheckOut: day(3)},
		}, "")
		room, ok := FindAvailableRoom(rooms, booked, models.RoomTypeSingle, rng(2, 4))
		if !ok || room.RoomNumber != 102 {
			t.Fatalf("expected room 102, got %v (ok=%v)", room.RoomNumber, ok)
		}
	})

	t.Run("room type match is case-insensitive", func(t *testing.T) {
		room, ok := FindAvailableRoom(rooms, BookedRanges(nil, ""), models.RoomType("double"), rng(1, 3))
		if !ok || room.RoomNumber != 201 {
			t.Fatalf("expected room 201, got %v (ok=%v)", room.RoomNumber, ok)
		}
	})

	t.Run("no room of type free", func(t *testing.T) {
		booked := BookedRanges([]models.Reservation{
			{ReservationID: "RES-001", RoomNumber: 201, CheckIn: day(1), CheckOut: day(5)},
		}, "")
		if _, ok := FindAvailableRoom(rooms, booked, models.RoomTypeDouble, rng(2, 3)); ok {
			t.Fatalf("expected no double room free")
		}
	})
}
