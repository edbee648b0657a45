package store

import (
	"time"

	bookingModel "hotelier/internal/domains/booking/model"
	guestModel "hotelier/internal/domains/guest/model"
	roomModel "hotelier/internal/domains/room/model"
	staffModel "hotelier/internal/domains/staff/model"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// seed loads the fixed initial dataset: five rooms, two guests, two
// bookings, four staff. Room 102 starts unavailable because booking 1
// occupies it.
func (s *Store) seed() {
	rooms := []roomModel.Room{
		{
			ID:        1,
			Number:    "101",
			Type:      roomModel.TypeStandard,
			Price:     100,
			Capacity:  2,
			Available: true,
			Amenities: []string{"Wi-Fi", "TV", "Air Conditioning", "Mini Bar"},
			Image:     "https://images.unsplash.com/photo-1566665797739-1674de7a421a?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:        2,
			Number:    "102",
			Type:      roomModel.TypeStandard,
			Price:     100,
			Capacity:  2,
			Available: false,
			Amenities: []string{"Wi-Fi", "TV", "Air Conditioning", "Mini Bar"},
			Image:     "https://images.unsplash.com/photo-1566665797739-1674de7a421a?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:        3,
			Number:    "201",
			Type:      roomModel.TypeDeluxe,
			Price:     200,
			Capacity:  3,
			Available: true,
			Amenities: []string{"Wi-Fi", "TV", "Air Conditioning", "Mini Bar", "Balcony", "Room Service"},
			Image:     "https://images.unsplash.com/photo-1590490360182-c33d57733427?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:        4,
			Number:    "301",
			Type:      roomModel.TypeSuite,
			Price:     350,
			Capacity:  4,
			Available: true,
			Amenities: []string{"Wi-Fi", "TV", "Air Conditioning", "Mini Bar", "Balcony", "Room Service", "Jacuzzi", "Kitchenette"},
			Image:     "https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:        5,
			Number:    "401",
			Type:      roomModel.TypePresidential,
			Price:     800,
			Capacity:  6,
			Available: true,
			Amenities: []string{"Wi-Fi", "TV", "Air Conditioning", "Mini Bar", "Balcony", "Room Service", "Jacuzzi", "Kitchenette", "Private Pool", "Butler Service"},
			Image:     "https://images.unsplash.com/photo-1578683010236-d716f9a3f461?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
	}

	guests := []guestModel.Guest{
		{
			ID:            1,
			Name:          "John Smith",
			Email:         "john.smith@example.com",
			Phone:         "+1 (555) 123-4567",
			CheckIn:       date(2025, time.June, 1),
			CheckOut:      date(2025, time.June, 5),
			RoomID:        2,
			TotalAmount:   400,
			PaymentStatus: guestModel.PaymentPaid,
		},
		{
			ID:            2,
			Name:          "Jane Doe",
			Email:         "jane.doe@example.com",
			Phone:         "+1 (555) 987-6543",
			CheckIn:       date(2025, time.June, 10),
			CheckOut:      date(2025, time.June, 15),
			RoomID:        3,
			TotalAmount:   1000,
			PaymentStatus: guestModel.PaymentPending,
		},
	}

	bookings := []bookingModel.Booking{
		{
			ID:            1,
			GuestID:       1,
			RoomID:        2,
			CheckIn:       date(2025, time.June, 1),
			CheckOut:      date(2025, time.June, 5),
			Status:        bookingModel.StatusConfirmed,
			TotalAmount:   400,
			PaymentStatus: bookingModel.PaymentPaid,
			CreatedAt:     date(2025, time.May, 15),
		},
		{
			ID:            2,
			GuestID:       2,
			RoomID:        3,
			CheckIn:       date(2025, time.June, 10),
			CheckOut:      date(2025, time.June, 15),
			Status:        bookingModel.StatusConfirmed,
			TotalAmount:   1000,
			PaymentStatus: bookingModel.PaymentPending,
			CreatedAt:     date(2025, time.May, 20),
		},
	}

	staff := []staffModel.Staff{
		{
			ID:          1,
			Name:        "Michael Johnson",
			Position:    "Manager",
			Department:  "Administration",
			ContactInfo: "michael.johnson@hotel.com",
			Image:       "https://images.unsplash.com/photo-1560250097-0b93528c311a?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:          2,
			Name:        "Sarah Williams",
			Position:    "Receptionist",
			Department:  "Front Desk",
			ContactInfo: "sarah.williams@hotel.com",
			Image:       "https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:          3,
			Name:        "Robert Brown",
			Position:    "Chef",
			Department:  "Food & Beverage",
			ContactInfo: "robert.brown@hotel.com",
			Image:       "https://images.unsplash.com/photo-1583394838336-acd977736f90?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:          4,
			Name:        "Emily Davis",
			Position:    "Housekeeper",
			Department:  "Housekeeping",
			ContactInfo: "emily.davis@hotel.com",
			Image:       "https://images.unsplash.com/photo-1580489944761-15a19d654956?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
	}

	s.rooms = Collection[roomModel.Room]{items: rooms}
	s.guests = Collection[guestModel.Guest]{items: guests}
	s.bookings = Collection[bookingModel.Booking]{items: bookings}
	s.staff = Collection[staffModel.Staff]{items: staff}
}
