package service

import (
	"context"
	"fmt"
	"hotelier/infras/otel"
	bookingDto "hotelier/internal/domains/booking/model/dto"
	bookingRepo "hotelier/internal/domains/booking/repository"
	"hotelier/internal/domains/dashboard/model/dto"
	guestDto "hotelier/internal/domains/guest/model/dto"
	guestRepo "hotelier/internal/domains/guest/repository"
	roomDto "hotelier/internal/domains/room/model/dto"
	roomRepo "hotelier/internal/domains/room/repository"
	staffDto "hotelier/internal/domains/staff/model/dto"
	staffRepo "hotelier/internal/domains/staff/repository"
	"hotelier/internal/store"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"

	"github.com/rs/zerolog/log"
)

type Dashboard interface {
	Summary(ctx context.Context) (dto.SummaryResponse, error)
}

type serviceImpl struct {
	roomRepo    roomRepo.Room
	guestRepo   guestRepo.Guest
	bookingRepo bookingRepo.Booking
	staffRepo   staffRepo.Staff
	otel        otel.Otel
}

func New(
	roomRepo roomRepo.Room,
	guestRepo guestRepo.Guest,
	bookingRepo bookingRepo.Booking,
	staffRepo staffRepo.Staff,
	otel otel.Otel,
) Dashboard {
	return &serviceImpl{
		roomRepo:    roomRepo,
		guestRepo:   guestRepo,
		bookingRepo: bookingRepo,
		staffRepo:   staffRepo,
		otel:        otel,
	}
}

func (s *serviceImpl) Summary(ctx context.Context) (res dto.SummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DashboardSummary")
	defer scope.End()
	defer scope.TraceIfError(err)

	rooms, err := s.roomRepo.GetAll(ctx, gDto.QueryParams{}, roomDto.RoomFilter{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	bookings, err := s.bookingRepo.GetAll(ctx, gDto.QueryParams{}, bookingDto.BookingFilter{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	totalGuests, err := s.guestRepo.Count(ctx, guestDto.GuestFilter{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count guests")

		return res, fmt.Errorf("failed to count guests: %w", err)
	}

	totalStaff, err := s.staffRepo.Count(ctx, staffDto.StaffFilter{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count staff")

		return res, fmt.Errorf("failed to count staff: %w", err)
	}

	available := 0

	for _, room := range rooms {
		if room.Available {
			available++
		}
	}

	res = dto.SummaryResponse{
		TotalRooms:      len(rooms),
		AvailableRooms:  available,
		OccupancyRate:   store.OccupancyRate(rooms),
		TotalGuests:     totalGuests,
		ActiveBookings:  store.ActiveBookings(bookings),
		TotalRevenue:    store.TotalRevenue(bookings),
		PendingPayments: store.PendingPayments(bookings),
		TotalStaff:      totalStaff,
	}

	return res, nil
}
