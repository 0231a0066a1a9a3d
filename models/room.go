package models

import (
	"fmt"
	"strings"

	"gorm.io/datatypes"
)

// RoomType is the fixed set of room categories the hotel rents out.
type RoomType string

const (
	RoomTypeSingle RoomType = "Single"
	RoomTypeDouble RoomType = "Double"
	RoomTypeSuite  RoomType = "Suite"
)

// ParseRoomType accepts any casing ("single", "SUITE", ...) and returns the
// canonical RoomType.
func ParseRoomType(s string) (RoomType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single":
		return RoomTypeSingle, nil
	case "double":
		return RoomTypeDouble, nil
	case "suite":
		return RoomTypeSuite, nil
	}
	return "", fmt.Errorf("unknown room type %q (expected Single, Double or Suite)", s)
}

type Room struct {
	RoomNumber    int            `json:"roomNumber" gorm:"column:room_number;primaryKey"`
	RoomType      RoomType       `json:"roomType"   gorm:"column:room_type;type:varchar(20)"`
	PricePerNight float64        `json:"pricePerNight" gorm:"column:price_per_night"`
	Amenities     datatypes.JSON `json:"amenities,omitempty" gorm:"column:amenities"`
}

func (r Room) String() string {
	return fmt.Sprintf("Room %d (%s) - $%.2f/night", r.RoomNumber, r.RoomType, r.PricePerNight)
}

// DefaultRooms is the seed inventory: ten rooms per type on floors 1-3.
func DefaultRooms() []Room {
	amenities := map[RoomType]string{
		RoomTypeSingle: `["wifi","tv"]`,
		RoomTypeDouble: `["wifi","tv","minibar"]`,
		RoomTypeSuite:  `["wifi","tv","minibar","balcony"]`,
	}

	rooms := make([]Room, 0, 30)
	for i := 1; i <= 10; i++ {
		rooms = append(rooms,
			Room{RoomNumber: 100 + i, RoomType: RoomTypeSingle, PricePerNight: 100, Amenities: datatypes.JSON(amenities[RoomTypeSingle])},
			Room{RoomNumber: 200 + i, RoomType: RoomTypeDouble, PricePerNight: 150, Amenities: datatypes.JSON(amenities[RoomTypeDouble])},
			Room{RoomNumber: 300 + i, RoomType: RoomTypeSuite, PricePerNight: 300, Amenities: datatypes.JSON(amenities[RoomTypeSuite])},
		)
	}
	return rooms
}
