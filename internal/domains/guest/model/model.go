package model

import "time"

const (
	EntityName = "guest"

	FieldID            = "id"
	FieldName          = "name"
	FieldEmail         = "email"
	FieldPaymentStatus = "payment_status"
)

// PaymentStatus tracks how far along a guest's folio payment is.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "Pending"
	PaymentPaid     PaymentStatus = "Paid"
	PaymentRefunded PaymentStatus = "Refunded"
)

// Guest carries its own stay and payment fields independent of any booking
// that references it; the two are deliberately not synchronized.
type Guest struct {
	ID            int
	Name          string
	Email         string
	Phone         string
	CheckIn       time.Time
	CheckOut      time.Time
	RoomID        int
	TotalAmount   float64
	PaymentStatus PaymentStatus
}

func (g Guest) Identity() int {
	return g.ID
}

func (g Guest) WithIdentity(id int) Guest {
	g.ID = id

	return g
}

func (g Guest) Clone() Guest {
	return g
}
