package model

import "slices"

const (
	EntityName = "room"

	FieldID        = "id"
	FieldNumber    = "number"
	FieldType      = "type"
	FieldAvailable = "available"
)

// RoomType is the fixed room category enumeration.
type RoomType string

const (
	TypeStandard     RoomType = "Standard"
	TypeDeluxe       RoomType = "Deluxe"
	TypeSuite        RoomType = "Suite"
	TypePresidential RoomType = "Presidential"
)

type Room struct {
	ID        int
	Number    string
	Type      RoomType
	Price     float64
	Capacity  int
	Available bool
	Amenities []string
	Image     string
}

func (r Room) Identity() int {
	return r.ID
}

func (r Room) WithIdentity(id int) Room {
	r.ID = id

	return r
}

func (r Room) Clone() Room {
	r.Amenities = slices.Clone(r.Amenities)

	return r
}
