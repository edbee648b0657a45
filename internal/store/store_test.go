package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingModel "hotelier/internal/domains/booking/model"
	guestModel "hotelier/internal/domains/guest/model"
	roomModel "hotelier/internal/domains/room/model"
	"hotelier/internal/store"
)

func fixedClock(year int, month time.Month, day int) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	}
}

func TestStore_Seed(t *testing.T) {
	s := store.New(store.WithSeed())

	assert.Len(t, s.ListRooms(), 5)
	assert.Len(t, s.ListGuests(), 2)
	assert.Len(t, s.ListBookings(), 2)
	assert.Len(t, s.ListStaff(), 4)

	room2, ok := s.GetRoom(2)
	require.True(t, ok)
	assert.False(t, room2.Available, "room 102 starts occupied by booking 1")

	booking1, ok := s.GetBooking(1)
	require.True(t, ok)
	assert.Equal(t, 2, booking1.RoomID)
	assert.Equal(t, time.Date(2025, time.May, 15, 0, 0, 0, 0, time.UTC), booking1.CreatedAt)
}

func TestStore_InsertAssignsMaxPlusOne(t *testing.T) {
	s := store.New()

	first := s.InsertRoom(roomModel.Room{Number: "101"})
	assert.Equal(t, 1, first.ID, "empty collection starts at 1")

	second := s.InsertRoom(roomModel.Room{Number: "102"})
	assert.Equal(t, 2, second.ID)

	// Removing the middle record leaves the maximum intact.
	require.True(t, s.RemoveRoom(1))

	third := s.InsertRoom(roomModel.Room{Number: "103"})
	assert.Equal(t, 3, third.ID)

	// Removing the maximum makes its id eligible for reuse.
	require.True(t, s.RemoveRoom(3))

	fourth := s.InsertRoom(roomModel.Room{Number: "104"})
	assert.Equal(t, 3, fourth.ID)
}

func TestStore_ReplaceAbsentIsNoOp(t *testing.T) {
	s := store.New(store.WithSeed())

	replaced := s.ReplaceGuest(guestModel.Guest{ID: 99, Name: "Ghost"})
	assert.False(t, replaced)
	assert.Len(t, s.ListGuests(), 2, "collection unchanged after absent update")

	_, ok := s.GetGuest(99)
	assert.False(t, ok)
}

func TestStore_RemoveAbsentIsNoOp(t *testing.T) {
	s := store.New(store.WithSeed())

	assert.False(t, s.RemoveStaff(99))
	assert.Len(t, s.ListStaff(), 4)

	// Deleting the same record twice: the second call is a silent no-op.
	assert.True(t, s.RemoveStaff(4))
	assert.False(t, s.RemoveStaff(4))
	assert.Len(t, s.ListStaff(), 3)
}

func TestStore_InsertBookingFlipsRoomUnavailable(t *testing.T) {
	s := store.New(store.WithSeed(), store.WithClock(fixedClock(2025, time.June, 20)))

	created := s.InsertBooking(bookingModel.Booking{
		GuestID:       1,
		RoomID:        1,
		CheckIn:       time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:      time.Date(2025, time.July, 3, 0, 0, 0, 0, time.UTC),
		Status:        bookingModel.StatusConfirmed,
		TotalAmount:   200,
		PaymentStatus: bookingModel.PaymentPending,
	})

	assert.Equal(t, 3, created.ID)
	assert.Equal(t, time.Date(2025, time.June, 20, 0, 0, 0, 0, time.UTC), created.CreatedAt)

	room1, ok := s.GetRoom(1)
	require.True(t, ok)
	assert.False(t, room1.Available)
}

func TestStore_InsertBookingUnknownRoomSkipsFlip(t *testing.T) {
	s := store.New(store.WithSeed())

	created := s.InsertBooking(bookingModel.Booking{GuestID: 1, RoomID: 99})
	assert.Equal(t, 3, created.ID, "dangling room reference is accepted")

	for _, room := range s.ListRooms() {
		if room.ID != 2 {
			assert.True(t, room.Available, "no room flipped for an unknown reference")
		}
	}
}

func TestStore_RemoveBookingFreesRoom(t *testing.T) {
	s := store.New(store.WithSeed())

	require.True(t, s.RemoveBooking(1))

	_, ok := s.GetBooking(1)
	assert.False(t, ok)

	room2, ok := s.GetRoom(2)
	require.True(t, ok)
	assert.True(t, room2.Available, "deleting booking 1 frees room 102")
}

func TestStore_RemoveBookingDanglingRoom(t *testing.T) {
	s := store.New(store.WithSeed())

	require.True(t, s.RemoveRoom(2))
	assert.True(t, s.RemoveBooking(1), "booking removal survives its room being gone")
}

func TestStore_ReplaceBookingKeepsAvailability(t *testing.T) {
	s := store.New(store.WithSeed())

	created := s.InsertBooking(bookingModel.Booking{GuestID: 1, RoomID: 1, Status: bookingModel.StatusConfirmed})

	cancelled := created
	cancelled.Status = bookingModel.StatusCancelled
	require.True(t, s.ReplaceBooking(cancelled))

	room1, ok := s.GetRoom(1)
	require.True(t, ok)
	assert.False(t, room1.Available, "cancelling via update does not free the room")
}

func TestStore_ReplaceBookingReconciliation(t *testing.T) {
	s := store.New(
		store.WithSeed(),
		store.WithAvailabilityReconciliation(),
	)

	created := s.InsertBooking(bookingModel.Booking{GuestID: 1, RoomID: 1, Status: bookingModel.StatusConfirmed})

	cancelled := created
	cancelled.Status = bookingModel.StatusCancelled
	require.True(t, s.ReplaceBooking(cancelled))

	room1, ok := s.GetRoom(1)
	require.True(t, ok)
	assert.True(t, room1.Available, "reconciliation frees the room on cancel")
}

func TestStore_ReplaceBookingReconciliationOnRoomChange(t *testing.T) {
	s := store.New(
		store.WithSeed(),
		store.WithAvailabilityReconciliation(),
	)

	created := s.InsertBooking(bookingModel.Booking{GuestID: 1, RoomID: 1, Status: bookingModel.StatusConfirmed})

	moved := created
	moved.RoomID = 4
	require.True(t, s.ReplaceBooking(moved))

	room1, ok := s.GetRoom(1)
	require.True(t, ok)
	assert.True(t, room1.Available, "old room freed after the booking moves away")

	room4, ok := s.GetRoom(4)
	require.True(t, ok)
	assert.False(t, room4.Available, "new room occupied after the booking moves in")
}

func TestStore_ReplaceBookingCreatedAtImmutable(t *testing.T) {
	s := store.New(store.WithSeed())

	original, ok := s.GetBooking(2)
	require.True(t, ok)

	updated := original
	updated.Status = bookingModel.StatusCheckedIn
	updated.CreatedAt = time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)
	require.True(t, s.ReplaceBooking(updated))

	stored, ok := s.GetBooking(2)
	require.True(t, ok)
	assert.Equal(t, bookingModel.StatusCheckedIn, stored.Status)
	assert.Equal(t, original.CreatedAt, stored.CreatedAt)
}

func TestStore_ReplaceBookingAbsent(t *testing.T) {
	s := store.New(store.WithSeed())

	assert.False(t, s.ReplaceBooking(bookingModel.Booking{ID: 99, RoomID: 1}))
	assert.Len(t, s.ListBookings(), 2)
}

func TestStore_ListReturnsCopies(t *testing.T) {
	s := store.New(store.WithSeed())

	rooms := s.ListRooms()
	rooms[0].Number = "mutated"
	rooms[0].Amenities[0] = "mutated"

	fresh, ok := s.GetRoom(1)
	require.True(t, ok)
	assert.Equal(t, "101", fresh.Number)
	assert.Equal(t, "Wi-Fi", fresh.Amenities[0])
}
