package dto

import (
	"hotelier/internal/domains/guest/model"
	"hotelier/shared"
	"hotelier/shared/constant"
	"hotelier/shared/timezone"
)

type CreateGuestRequest struct {
	Name          string  `json:"name"           validate:"required,max=100"`
	Email         string  `json:"email"          validate:"required,email,max=100"`
	Phone         string  `json:"phone"          validate:"omitempty,max=30"`
	CheckIn       string  `json:"check_in"       validate:"required,dateonly"`
	CheckOut      string  `json:"check_out"      validate:"required,dateonly"`
	RoomID        int     `json:"room_id"        validate:"required,gt=0"`
	TotalAmount   float64 `json:"total_amount"   validate:"omitempty,gte=0"`
	PaymentStatus string  `json:"payment_status" validate:"required,oneof=Pending Paid Refunded"`
}

func (c *CreateGuestRequest) ToModel() (model.Guest, error) {
	checkIn, err := timezone.Parse(constant.DateFormat, c.CheckIn)
	if err != nil {
		return model.Guest{}, err //nolint:wrapcheck
	}

	checkOut, err := timezone.Parse(constant.DateFormat, c.CheckOut)
	if err != nil {
		return model.Guest{}, err //nolint:wrapcheck
	}

	return model.Guest{
		Name:          c.Name,
		Email:         c.Email,
		Phone:         c.Phone,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		RoomID:        c.RoomID,
		TotalAmount:   c.TotalAmount,
		PaymentStatus: model.PaymentStatus(c.PaymentStatus),
	}, nil
}

// UpdateGuestRequest carries a full replacement record.
type UpdateGuestRequest struct {
	Name          string  `json:"name"           validate:"required,max=100"`
	Email         string  `json:"email"          validate:"required,email,max=100"`
	Phone         string  `json:"phone"          validate:"omitempty,max=30"`
	CheckIn       string  `json:"check_in"       validate:"required,dateonly"`
	CheckOut      string  `json:"check_out"      validate:"required,dateonly"`
	RoomID        int     `json:"room_id"        validate:"required,gt=0"`
	TotalAmount   float64 `json:"total_amount"   validate:"omitempty,gte=0"`
	PaymentStatus string  `json:"payment_status" validate:"required,oneof=Pending Paid Refunded"`
}

func (u *UpdateGuestRequest) ToModel(id int) (model.Guest, error) {
	checkIn, err := timezone.Parse(constant.DateFormat, u.CheckIn)
	if err != nil {
		return model.Guest{}, err //nolint:wrapcheck
	}

	checkOut, err := timezone.Parse(constant.DateFormat, u.CheckOut)
	if err != nil {
		return model.Guest{}, err //nolint:wrapcheck
	}

	return model.Guest{
		ID:            id,
		Name:          u.Name,
		Email:         u.Email,
		Phone:         u.Phone,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		RoomID:        u.RoomID,
		TotalAmount:   u.TotalAmount,
		PaymentStatus: model.PaymentStatus(u.PaymentStatus),
	}, nil
}

// GuestFilter narrows list reads; zero values mean "no constraint".
type GuestFilter struct {
	PaymentStatus string
	Search        string
}

type GuestResponse struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	CheckIn       string  `json:"check_in"`
	CheckOut      string  `json:"check_out"`
	RoomID        int     `json:"room_id"`
	TotalAmount   float64 `json:"total_amount"`
	PaymentStatus string  `json:"payment_status"`
}

func (r *GuestResponse) FromModel(model model.Guest) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Phone = model.Phone
	r.CheckIn = model.CheckIn.Format(constant.DateFormat)
	r.CheckOut = model.CheckOut.Format(constant.DateFormat)
	r.RoomID = model.RoomID
	r.TotalAmount = model.TotalAmount
	r.PaymentStatus = string(model.PaymentStatus)
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetGuestsResponse) FromModels(models []model.Guest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		r.Guests[i].FromModel(mod)
	}
}
