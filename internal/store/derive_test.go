package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	bookingModel "hotelier/internal/domains/booking/model"
	roomModel "hotelier/internal/domains/room/model"
	"hotelier/internal/store"
)

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{
			name:     "four full nights",
			checkIn:  time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
			checkOut: time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC),
			want:     4,
		},
		{
			name:     "partial day rounds up",
			checkIn:  time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
			checkOut: time.Date(2025, time.June, 2, 12, 0, 0, 0, time.UTC),
			want:     2,
		},
		{
			name:     "same day",
			checkIn:  time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
			checkOut: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
			want:     0,
		},
		{
			name:     "inverted range",
			checkIn:  time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC),
			checkOut: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, store.Nights(tt.checkIn, tt.checkOut))
		})
	}
}

func TestStayAmount(t *testing.T) {
	checkIn := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC)

	assert.InDelta(t, 400, store.StayAmount(checkIn, checkOut, 100), 0.001)
	assert.InDelta(t, 0, store.StayAmount(checkOut, checkIn, 100), 0.001)
}

func TestOccupancyRate(t *testing.T) {
	s := store.New(store.WithSeed())

	rate := store.OccupancyRate(s.ListRooms())
	assert.InDelta(t, 20.0, rate, 0.001, "one occupied room out of five")

	assert.InDelta(t, 0, store.OccupancyRate(nil), 0.001)
}

func TestTotalRevenue(t *testing.T) {
	s := store.New(store.WithSeed())

	assert.InDelta(t, 1400, store.TotalRevenue(s.ListBookings()), 0.001)
}

func TestPendingPayments(t *testing.T) {
	s := store.New(store.WithSeed())

	assert.InDelta(t, 1000, store.PendingPayments(s.ListBookings()), 0.001)
}

func TestActiveBookings(t *testing.T) {
	bookings := []bookingModel.Booking{
		{ID: 1, Status: bookingModel.StatusConfirmed},
		{ID: 2, Status: bookingModel.StatusCheckedIn},
		{ID: 3, Status: bookingModel.StatusCheckedOut},
		{ID: 4, Status: bookingModel.StatusCancelled},
	}

	assert.Equal(t, 2, store.ActiveBookings(bookings))
}

func TestRecomputeAvailability(t *testing.T) {
	rooms := []roomModel.Room{
		{ID: 1, Available: false},
		{ID: 2, Available: true},
		{ID: 3, Available: false},
	}
	bookings := []bookingModel.Booking{
		{ID: 1, RoomID: 2, Status: bookingModel.StatusConfirmed},
		{ID: 2, RoomID: 3, Status: bookingModel.StatusCancelled},
	}

	adjusted := store.RecomputeAvailability(rooms, bookings)

	assert.True(t, adjusted[0].Available, "no active booking references room 1")
	assert.False(t, adjusted[1].Available, "active booking occupies room 2")
	assert.True(t, adjusted[2].Available, "cancelled booking does not hold room 3")
}
