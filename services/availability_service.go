package services

import (
	"sort"
	"strings"
	"time"

	"modern-hotel/models"
)

// DateRange is a half-open booking interval [CheckIn, CheckOut).
type DateRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// Overlaps reports whether two half-open ranges intersect. Back-to-back
// ranges do not overlap: a check-out day can be someone else's check-in day.
func Overlaps(a, b DateRange) bool {
	return a.CheckIn.Before(b.CheckOut) && b.CheckIn.Before(a.CheckOut)
}

// BookedRanges groups the reservation set into per-room booked ranges,
// ordered by check-in. excludeID skips one reservation so the edit flow can
// test a change against everything except the booking being edited; pass ""
// to include all.
func BookedRanges(reservations []models.Reservation, excludeID string) map[int][]DateRange {
	booked := make(map[int][]DateRange)
	for _, r := range reservations {
		if excludeID != "" && r.ReservationID == excludeID {
			continue
		}
		booked[r.RoomNumber] = append(booked[r.RoomNumber], DateRange{CheckIn: r.CheckIn, CheckOut: r.CheckOut})
	}
	for _, ranges := range booked {
		sort.Slice(ranges, func(i, j int) bool { return ranges[i].CheckIn.Before(ranges[j].CheckIn) })
	}
	return booked
}

// IsRoomAvailable reports whether the room is free for the whole range. Pure
// function over the booked-range index; no side effects.
func IsRoomAvailable(booked map[int][]DateRange, roomNumber int, want DateRange) bool {
	for _, existing := range booked[roomNumber] {
		if Overlaps(want, existing) {
			return false
		}
	}
	return true
}

// FindAvailableRoom scans the catalog in order and returns the first room of
// the requested type that is free for the range. First match wins; callers
// keep the catalog sorted by room number so the result is deterministic.
func FindAvailableRoom(rooms []models.Room, booked map[int][]DateRange, roomType models.RoomType, want DateRange) (models.Room, bool) {
	for _, room := range rooms {
		if !strings.EqualFold(string(room.RoomType), string(roomType)) {
			continue
		}
		if IsRoomAvailable(booked, room.RoomNumber, want) {
			return room, true
		}
	}
	return models.Room{}, false
}
