package models

import "fmt"

// Guest is created once per reservation; guests are not deduplicated across
// bookings, so the same person may appear under several IDs.
type Guest struct {
	ID      uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name    string `json:"name" gorm:"type:varchar(255)"`
	Contact string `json:"contact" gorm:"type:varchar(255)"`
}

func (g Guest) String() string {
	return fmt.Sprintf("Guest: %s, Contact: %s", g.Name, g.Contact)
}
