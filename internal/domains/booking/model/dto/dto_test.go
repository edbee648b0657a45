package dto_test

import (
	"testing"
	"time"

	"hotelier/internal/domains/booking/model"
	"hotelier/internal/domains/booking/model/dto"
)

func TestCreateBookingRequest_ToModel(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		req := dto.CreateBookingRequest{
			GuestID:       1,
			RoomID:        2,
			CheckIn:       "2025-06-01",
			CheckOut:      "2025-06-05",
			Status:        "Checked In",
			TotalAmount:   400,
			PaymentStatus: "Paid",
		}

		booking, err := req.ToModel()
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if booking.ID != 0 {
			t.Errorf("expected id to be unset, got %d", booking.ID)
		}
		if !booking.CreatedAt.IsZero() {
			t.Errorf("expected creation date to be unset, got %s", booking.CreatedAt)
		}
		if booking.Status != model.StatusCheckedIn {
			t.Errorf("expected status to be %s, got %s", model.StatusCheckedIn, booking.Status)
		}
		if booking.CheckIn.Day() != 1 || booking.CheckOut.Day() != 5 {
			t.Errorf("expected stay dates to round-trip, got %s to %s", booking.CheckIn, booking.CheckOut)
		}
	})

	t.Run("defaults applied", func(t *testing.T) {
		req := dto.CreateBookingRequest{
			GuestID:  1,
			RoomID:   2,
			CheckIn:  "2025-06-01",
			CheckOut: "2025-06-05",
		}

		booking, err := req.ToModel()
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if booking.Status != model.StatusConfirmed {
			t.Errorf("expected default status to be %s, got %s", model.StatusConfirmed, booking.Status)
		}
		if booking.PaymentStatus != model.PaymentPending {
			t.Errorf("expected default payment status to be %s, got %s", model.PaymentPending, booking.PaymentStatus)
		}
	})

	t.Run("invalid check-in date", func(t *testing.T) {
		req := dto.CreateBookingRequest{
			GuestID:  1,
			RoomID:   2,
			CheckIn:  "06/01/2025",
			CheckOut: "2025-06-05",
		}

		if _, err := req.ToModel(); err == nil {
			t.Error("expected error for invalid date, got nil")
		}
	})
}

func TestUpdateBookingRequest_ToModel(t *testing.T) {
	req := dto.UpdateBookingRequest{
		GuestID:       1,
		RoomID:        2,
		CheckIn:       "2025-06-01",
		CheckOut:      "2025-06-05",
		Status:        "Cancelled",
		TotalAmount:   400,
		PaymentStatus: "Refunded",
	}

	booking, err := req.ToModel(7)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if booking.ID != 7 {
		t.Errorf("expected id to be 7, got %d", booking.ID)
	}
	if booking.Status != model.StatusCancelled {
		t.Errorf("expected status to be %s, got %s", model.StatusCancelled, booking.Status)
	}
	if !booking.CreatedAt.IsZero() {
		t.Errorf("expected creation date to be unset, got %s", booking.CreatedAt)
	}
}

func TestBookingResponse_FromModel(t *testing.T) {
	booking := model.Booking{
		ID:            3,
		GuestID:       1,
		RoomID:        2,
		CheckIn:       time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:      time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC),
		Status:        model.StatusConfirmed,
		TotalAmount:   400,
		PaymentStatus: model.PaymentPaid,
		CreatedAt:     time.Date(2025, time.May, 20, 0, 0, 0, 0, time.UTC),
	}

	res := dto.BookingResponse{}
	res.FromModel(booking)

	if res.CheckIn != "2025-06-01" {
		t.Errorf("expected check-in to be 2025-06-01, got %s", res.CheckIn)
	}
	if res.CheckOut != "2025-06-05" {
		t.Errorf("expected check-out to be 2025-06-05, got %s", res.CheckOut)
	}
	if res.CreatedAt != "2025-05-20" {
		t.Errorf("expected created date to be 2025-05-20, got %s", res.CreatedAt)
	}
	if res.Status != "Confirmed" {
		t.Errorf("expected status to be Confirmed, got %s", res.Status)
	}
}

func TestGetBookingsResponse_FromModels(t *testing.T) {
	bookings := []model.Booking{
		{ID: 1, Status: model.StatusConfirmed},
		{ID: 2, Status: model.StatusCancelled},
	}

	res := dto.GetBookingsResponse{}
	res.FromModels(bookings, 10, 2)

	if res.TotalData != 10 {
		t.Errorf("expected total data to be 10, got %d", res.TotalData)
	}
	if res.TotalPage != 5 {
		t.Errorf("expected total page to be 5, got %d", res.TotalPage)
	}
	if len(res.Bookings) != 2 {
		t.Errorf("expected 2 bookings, got %d", len(res.Bookings))
	}
}
