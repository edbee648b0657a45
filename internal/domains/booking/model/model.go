package model

import "time"

const (
	EntityName = "booking"

	FieldID            = "id"
	FieldGuestID       = "guest_id"
	FieldRoomID        = "room_id"
	FieldCheckIn       = "check_in"
	FieldCheckOut      = "check_out"
	FieldStatus        = "status"
	FieldPaymentStatus = "payment_status"
)

// Status is the booking lifecycle enumeration. No transition order is
// enforced between values.
type Status string

const (
	StatusConfirmed  Status = "Confirmed"
	StatusCheckedIn  Status = "Checked In"
	StatusCheckedOut Status = "Checked Out"
	StatusCancelled  Status = "Cancelled"
)

// PaymentStatus mirrors the guest folio enumeration; the two fields are kept
// independent on purpose.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "Pending"
	PaymentPaid     PaymentStatus = "Paid"
	PaymentRefunded PaymentStatus = "Refunded"
)

type Booking struct {
	ID            int
	GuestID       int
	RoomID        int
	CheckIn       time.Time
	CheckOut      time.Time
	Status        Status
	TotalAmount   float64
	PaymentStatus PaymentStatus
	CreatedAt     time.Time
}

// Active reports whether the booking still occupies its room. Cancelled and
// checked-out bookings do not, by convention.
func (b Booking) Active() bool {
	return b.Status != StatusCancelled && b.Status != StatusCheckedOut
}

func (b Booking) Identity() int {
	return b.ID
}

func (b Booking) WithIdentity(id int) Booking {
	b.ID = id

	return b
}

func (b Booking) Clone() Booking {
	return b
}
