package dto

import (
	"hotelier/internal/domains/room/model"
	"hotelier/shared"
)

type CreateRoomRequest struct {
	Number    string   `json:"number"    validate:"required,max=20"`
	Type      string   `json:"type"      validate:"required,oneof=Standard Deluxe Suite Presidential"`
	Price     float64  `json:"price"     validate:"required,gt=0"`
	Capacity  int      `json:"capacity"  validate:"required,gt=0"`
	Available *bool    `json:"available" validate:"omitempty"`
	Amenities []string `json:"amenities" validate:"omitempty"`
	Image     string   `json:"image"     validate:"omitempty,url"`
}

func (c *CreateRoomRequest) ToModel() model.Room {
	available := true
	if c.Available != nil {
		available = *c.Available
	}

	return model.Room{
		Number:    c.Number,
		Type:      model.RoomType(c.Type),
		Price:     c.Price,
		Capacity:  c.Capacity,
		Available: available,
		Amenities: c.Amenities,
		Image:     c.Image,
	}
}

// UpdateRoomRequest carries a full replacement record; every field
// overwrites the stored one.
type UpdateRoomRequest struct {
	Number    string   `json:"number"    validate:"required,max=20"`
	Type      string   `json:"type"      validate:"required,oneof=Standard Deluxe Suite Presidential"`
	Price     float64  `json:"price"     validate:"required,gt=0"`
	Capacity  int      `json:"capacity"  validate:"required,gt=0"`
	Available bool     `json:"available"`
	Amenities []string `json:"amenities" validate:"omitempty"`
	Image     string   `json:"image"     validate:"omitempty,url"`
}

func (u *UpdateRoomRequest) ToModel(id int) model.Room {
	return model.Room{
		ID:        id,
		Number:    u.Number,
		Type:      model.RoomType(u.Type),
		Price:     u.Price,
		Capacity:  u.Capacity,
		Available: u.Available,
		Amenities: u.Amenities,
		Image:     u.Image,
	}
}

// RoomFilter narrows list reads; zero values mean "no constraint".
type RoomFilter struct {
	Type      string
	Available *bool
	Search    string
}

type RoomResponse struct {
	ID        int      `json:"id"`
	Number    string   `json:"number"`
	Type      string   `json:"type"`
	Price     float64  `json:"price"`
	Capacity  int      `json:"capacity"`
	Available bool     `json:"available"`
	Amenities []string `json:"amenities"`
	Image     string   `json:"image"`
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Number = model.Number
	r.Type = string(model.Type)
	r.Price = model.Price
	r.Capacity = model.Capacity
	r.Available = model.Available
	r.Amenities = model.Amenities
	r.Image = model.Image
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
