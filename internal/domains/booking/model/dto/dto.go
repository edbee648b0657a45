package dto

import (
	"hotelier/internal/domains/booking/model"
	"hotelier/shared"
	"hotelier/shared/constant"
	"hotelier/shared/timezone"
)

type CreateBookingRequest struct {
	GuestID       int     `json:"guest_id"       validate:"required,gt=0"`
	RoomID        int     `json:"room_id"        validate:"required,gt=0"`
	CheckIn       string  `json:"check_in"       validate:"required,dateonly"`
	CheckOut      string  `json:"check_out"      validate:"required,dateonly"`
	Status        string  `json:"status"         validate:"omitempty,oneof=Confirmed 'Checked In' 'Checked Out' Cancelled"`
	TotalAmount   float64 `json:"total_amount"   validate:"omitempty,gte=0"`
	PaymentStatus string  `json:"payment_status" validate:"omitempty,oneof=Pending Paid Refunded"`
}

// ToModel converts the request. Id and creation date are left unset; the
// store assigns both.
func (c *CreateBookingRequest) ToModel() (model.Booking, error) {
	checkIn, err := timezone.Parse(constant.DateFormat, c.CheckIn)
	if err != nil {
		return model.Booking{}, err //nolint:wrapcheck
	}

	checkOut, err := timezone.Parse(constant.DateFormat, c.CheckOut)
	if err != nil {
		return model.Booking{}, err //nolint:wrapcheck
	}

	status := model.StatusConfirmed
	if c.Status != "" {
		status = model.Status(c.Status)
	}

	paymentStatus := model.PaymentPending
	if c.PaymentStatus != "" {
		paymentStatus = model.PaymentStatus(c.PaymentStatus)
	}

	return model.Booking{
		GuestID:       c.GuestID,
		RoomID:        c.RoomID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Status:        status,
		TotalAmount:   c.TotalAmount,
		PaymentStatus: paymentStatus,
	}, nil
}

// UpdateBookingRequest carries a full replacement record. The stored
// creation date survives the replace.
type UpdateBookingRequest struct {
	GuestID       int     `json:"guest_id"       validate:"required,gt=0"`
	RoomID        int     `json:"room_id"        validate:"required,gt=0"`
	CheckIn       string  `json:"check_in"       validate:"required,dateonly"`
	CheckOut      string  `json:"check_out"      validate:"required,dateonly"`
	Status        string  `json:"status"         validate:"required,oneof=Confirmed 'Checked In' 'Checked Out' Cancelled"`
	TotalAmount   float64 `json:"total_amount"   validate:"omitempty,gte=0"`
	PaymentStatus string  `json:"payment_status" validate:"required,oneof=Pending Paid Refunded"`
}

func (u *UpdateBookingRequest) ToModel(id int) (model.Booking, error) {
	checkIn, err := timezone.Parse(constant.DateFormat, u.CheckIn)
	if err != nil {
		return model.Booking{}, err //nolint:wrapcheck
	}

	checkOut, err := timezone.Parse(constant.DateFormat, u.CheckOut)
	if err != nil {
		return model.Booking{}, err //nolint:wrapcheck
	}

	return model.Booking{
		ID:            id,
		GuestID:       u.GuestID,
		RoomID:        u.RoomID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Status:        model.Status(u.Status),
		TotalAmount:   u.TotalAmount,
		PaymentStatus: model.PaymentStatus(u.PaymentStatus),
	}, nil
}

// BookingFilter narrows list reads; zero values mean "no constraint".
type BookingFilter struct {
	Status        string
	PaymentStatus string
}

type BookingResponse struct {
	ID            int     `json:"id"`
	GuestID       int     `json:"guest_id"`
	RoomID        int     `json:"room_id"`
	CheckIn       string  `json:"check_in"`
	CheckOut      string  `json:"check_out"`
	Status        string  `json:"status"`
	TotalAmount   float64 `json:"total_amount"`
	PaymentStatus string  `json:"payment_status"`
	CreatedAt     string  `json:"created_at"`
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.GuestID = model.GuestID
	r.RoomID = model.RoomID
	r.CheckIn = model.CheckIn.Format(constant.DateFormat)
	r.CheckOut = model.CheckOut.Format(constant.DateFormat)
	r.Status = string(model.Status)
	r.TotalAmount = model.TotalAmount
	r.PaymentStatus = string(model.PaymentStatus)
	r.CreatedAt = model.CreatedAt.Format(constant.DateFormat)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// QuoteResponse is the nights-based amount used to prefill the booking and
// guest forms when the room or dates change.
type QuoteResponse struct {
	RoomID        int     `json:"room_id"`
	Nights        int     `json:"nights"`
	PricePerNight float64 `json:"price_per_night"`
	TotalAmount   float64 `json:"total_amount"`
}
