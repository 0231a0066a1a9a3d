package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Reservation books one room for one guest over a half-open date range
// [CheckIn, CheckOut): the check-out day itself is free for the next guest.
type Reservation struct {
	ReservationID string    `json:"reservationId" gorm:"column:reservation_id;primaryKey;type:varchar(32)"`
	GuestID       uint      `json:"guestId" gorm:"column:guest_id;index"`
	RoomNumber    int       `json:"roomNumber" gorm:"column:room_number;index"`
	RoomType      RoomType  `json:"roomType" gorm:"column:room_type;type:varchar(20)"`
	CheckIn       time.Time `json:"checkIn" gorm:"column:check_in_date"`
	CheckOut      time.Time `json:"checkOut" gorm:"column:check_out_date"`
	TotalCost     float64   `json:"totalCost" gorm:"column:total_cost"`
}

// Nights is the length of the stay. CheckOut is exclusive, so a one-night
// stay has CheckOut exactly one day after CheckIn.
func (r Reservation) Nights() int {
	return int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
}

func (r Reservation) String() string {
	return fmt.Sprintf("Reservation %s: Room %d (%s), %s -> %s, $%.2f",
		r.ReservationID, r.RoomNumber, r.RoomType,
		r.CheckIn.Format("2006-01-02"), r.CheckOut.Format("2006-01-02"), r.TotalCost)
}

// FormatReservationID renders the human-readable identifier, e.g. 7 -> "RES-007".
// Counters past 999 simply grow wider.
func FormatReservationID(n int) string {
	return fmt.Sprintf("RES-%03d", n)
}

// ReservationNumber extracts the numeric suffix from a "RES-NNN" identifier.
// Used to recover the ledger counter from persisted records.
func ReservationNumber(id string) (int, bool) {
	rest, ok := strings.CutPrefix(id, "RES-")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
