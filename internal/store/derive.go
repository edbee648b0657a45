package store

import (
	"math"
	"time"

	bookingModel "hotelier/internal/domains/booking/model"
	roomModel "hotelier/internal/domains/room/model"
)

// Pure read helpers over a snapshot. Nothing here touches store state;
// callers pass in whatever listing they already hold.

// Nights counts the billable nights between check-in and check-out,
// rounding partial days up. A non-positive span yields zero nights.
func Nights(checkIn, checkOut time.Time) int {
	span := checkOut.Sub(checkIn)
	if span <= 0 {
		return 0
	}

	return int(math.Ceil(span.Hours() / 24))
}

// StayAmount is the nights-based amount used to auto-populate booking and
// guest forms: nights times the room's nightly price.
func StayAmount(checkIn, checkOut time.Time, pricePerNight float64) float64 {
	return float64(Nights(checkIn, checkOut)) * pricePerNight
}

// OccupancyRate returns the share of unavailable rooms as a percentage.
func OccupancyRate(rooms []roomModel.Room) float64 {
	if len(rooms) == 0 {
		return 0
	}

	available := 0

	for _, room := range rooms {
		if room.Available {
			available++
		}
	}

	return float64(len(rooms)-available) / float64(len(rooms)) * 100
}

// TotalRevenue sums every booking's amount regardless of status.
func TotalRevenue(bookings []bookingModel.Booking) float64 {
	var total float64

	for _, booking := range bookings {
		total += booking.TotalAmount
	}

	return total
}

// PendingPayments sums the amounts of bookings still awaiting payment.
func PendingPayments(bookings []bookingModel.Booking) float64 {
	var total float64

	for _, booking := range bookings {
		if booking.PaymentStatus == bookingModel.PaymentPending {
			total += booking.TotalAmount
		}
	}

	return total
}

// ActiveBookings counts bookings that currently hold a room.
func ActiveBookings(bookings []bookingModel.Booking) int {
	count := 0

	for _, booking := range bookings {
		if booking.Active() {
			count++
		}
	}

	return count
}

// RecomputeAvailability derives each room's availability from the active
// bookings referencing it, instead of trusting the imperatively toggled
// flag. It returns adjusted copies and leaves the inputs alone. This is
// the alternative strategy to the store's mechanical toggle.
func RecomputeAvailability(rooms []roomModel.Room, bookings []bookingModel.Booking) []roomModel.Room {
	occupied := make(map[int]bool, len(bookings))

	for _, booking := range bookings {
		if booking.Active() {
			occupied[booking.RoomID] = true
		}
	}

	result := make([]roomModel.Room, len(rooms))

	for i, room := range rooms {
		adjusted := room.Clone()
		adjusted.Available = !occupied[room.ID]
		result[i] = adjusted
	}

	return result
}
