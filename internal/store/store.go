// Package store is the single source of truth for the four hotel record
// collections. It holds everything in memory for the lifetime of the
// process, seeds itself from a fixed fixture, and mechanically maintains
// the one cross-entity rule in the system: room availability follows
// booking creation and deletion.
package store

import (
	"sync"
	"time"

	bookingModel "hotelier/internal/domains/booking/model"
	guestModel "hotelier/internal/domains/guest/model"
	roomModel "hotelier/internal/domains/room/model"
	staffModel "hotelier/internal/domains/staff/model"
	"hotelier/shared/timezone"
)

// Store owns the four collections and every mutation on them. All
// operations are serialized behind one lock; mutations are silent no-ops
// when the target id does not exist, and no foreign key is ever validated.
type Store struct {
	mu sync.RWMutex

	rooms    Collection[roomModel.Room]
	guests   Collection[guestModel.Guest]
	bookings Collection[bookingModel.Booking]
	staff    Collection[staffModel.Staff]

	// reconcile switches booking updates from the literal "updates never
	// touch availability" behavior to re-deriving the affected rooms'
	// availability from active bookings.
	reconcile bool

	clock func() time.Time
}

type Option func(*Store)

// WithSeed initializes the store from the built-in fixture.
func WithSeed() Option {
	return func(s *Store) {
		s.seed()
	}
}

// WithAvailabilityReconciliation enables the corrected availability
// behavior on booking updates. Off by default: a booking cancelled via
// update does not free its room, matching the documented behavior.
func WithAvailabilityReconciliation() Option {
	return func(s *Store) {
		s.reconcile = true
	}
}

// WithClock overrides the booking creation-date clock. Tests use this to
// pin CreatedAt.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) {
		s.clock = clock
	}
}

func New(opts ...Option) *Store {
	s := &Store{
		clock: timezone.Today,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Rooms

func (s *Store) InsertRoom(room roomModel.Room) roomModel.Room {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rooms.Insert(room)
}

func (s *Store) GetRoom(id int) (roomModel.Room, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.rooms.Get(id)
}

func (s *Store) ListRooms() []roomModel.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.rooms.List()
}

func (s *Store) ReplaceRoom(room roomModel.Room) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rooms.Replace(room)
}

func (s *Store) RemoveRoom(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Bookings referencing the room are left alone; readers tolerate the
	// dangling reference.
	_, removed := s.rooms.Remove(id)

	return removed
}

// Guests

func (s *Store) InsertGuest(guest guestModel.Guest) guestModel.Guest {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.guests.Insert(guest)
}

func (s *Store) GetGuest(id int) (guestModel.Guest, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.guests.Get(id)
}

func (s *Store) ListGuests() []guestModel.Guest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.guests.List()
}

func (s *Store) ReplaceGuest(guest guestModel.Guest) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.guests.Replace(guest)
}

func (s *Store) RemoveGuest(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, removed := s.guests.Remove(id)

	return removed
}

// Bookings. Creation and deletion carry the availability side effect;
// replacement does not, unless reconciliation is enabled.

// InsertBooking assigns the next id and the creation date, appends the
// booking, and marks the referenced room unavailable when it exists. An
// unknown room id skips the side effect silently.
func (s *Store) InsertBooking(booking bookingModel.Booking) bookingModel.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking.CreatedAt = s.clock()
	stored := s.bookings.Insert(booking)

	if room, ok := s.rooms.Get(stored.RoomID); ok {
		room.Available = false
		s.rooms.Replace(room)
	}

	return stored
}

func (s *Store) GetBooking(id int) (bookingModel.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.bookings.Get(id)
}

func (s *Store) ListBookings() []bookingModel.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.bookings.List()
}

// ReplaceBooking overwrites the booking whose id matches. CreatedAt is
// immutable: the stored value always wins over whatever the caller sent.
func (s *Store) ReplaceBooking(booking bookingModel.Booking) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.bookings.Get(booking.ID)
	if !ok {
		return false
	}

	booking.CreatedAt = existing.CreatedAt

	if !s.bookings.Replace(booking) {
		return false
	}

	if s.reconcile {
		s.reconcileRooms(existing.RoomID, booking.RoomID)
	}

	return true
}

// RemoveBooking captures the booking before removal so the freed room can
// be found, then marks that room available again when it still exists.
func (s *Store) RemoveBooking(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed, ok := s.bookings.Remove(id)
	if !ok {
		return false
	}

	if room, found := s.rooms.Get(removed.RoomID); found {
		room.Available = true
		s.rooms.Replace(room)
	}

	return true
}

// Staff

func (s *Store) InsertStaff(member staffModel.Staff) staffModel.Staff {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.staff.Insert(member)
}

func (s *Store) GetStaff(id int) (staffModel.Staff, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.staff.Get(id)
}

func (s *Store) ListStaff() []staffModel.Staff {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.staff.List()
}

func (s *Store) ReplaceStaff(member staffModel.Staff) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.staff.Replace(member)
}

func (s *Store) RemoveStaff(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, removed := s.staff.Remove(id)

	return removed
}

// reconcileRooms re-derives availability for the given room ids from the
// current booking set. Caller must hold the write lock.
func (s *Store) reconcileRooms(roomIDs ...int) {
	for _, roomID := range roomIDs {
		room, ok := s.rooms.Get(roomID)
		if !ok {
			continue
		}

		occupied := false

		for _, booking := range s.bookings.List() {
			if booking.RoomID == roomID && booking.Active() {
				occupied = true

				break
			}
		}

		room.Available = !occupied
		s.rooms.Replace(room)
	}
}
