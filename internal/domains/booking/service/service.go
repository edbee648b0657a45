package service

import (
	"context"
	"fmt"
	"hotelier/infras/otel"
	"hotelier/internal/domains/booking/model/dto"
	"hotelier/internal/domains/booking/repository"
	roomRepo "hotelier/internal/domains/room/repository"
	"hotelier/internal/store"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
	"hotelier/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter dto.BookingFilter) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id int) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id int) error
	Delete(ctx context.Context, id int) error
	Quote(ctx context.Context, roomID int, checkIn, checkOut string) (dto.QuoteResponse, error)
}

type serviceImpl struct {
	repo     repository.Booking
	roomRepo roomRepo.Room
	otel     otel.Otel
}

func New(repo repository.Booking, roomRepo roomRepo.Room, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := req.ToModel()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking request")

		return failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	// A booking against an unknown room is still accepted; the room flip
	// is simply skipped. Surface it in the logs so operators can spot it.
	roomExists, err := s.roomRepo.Exist(ctx, booking.RoomID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !roomExists {
		log.Warn().Int("roomId", booking.RoomID).Msg("booking references unknown room")
	}

	if _, err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return fmt.Errorf("failed to create booking: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter dto.BookingFilter) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	bookings, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(bookings, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := req.ToModel(id)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking request")

		return failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	updated, err := s.repo.Update(ctx, booking)
	if err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	if !updated {
		log.Warn().Int("id", id).Msg("booking not found for update")

		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	if !deleted {
		log.Warn().Int("id", id).Msg("booking not found for delete")

		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) Quote(ctx context.Context, roomID int, checkIn, checkOut string) (res dto.QuoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".QuoteBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	in, err := timezone.Parse(constant.DateFormat, checkIn)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	out, err := timezone.Parse(constant.DateFormat, checkOut)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	room, err := s.roomRepo.Get(ctx, roomID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == 0 {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	res = dto.QuoteResponse{
		RoomID:        room.ID,
		Nights:        store.Nights(in, out),
		PricePerNight: room.Price,
		TotalAmount:   store.StayAmount(in, out, room.Price),
	}

	return res, nil
}
