package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hotelier/infras/otel"
	"hotelier/internal/domains/booking/model"
	"hotelier/internal/domains/booking/model/dto"
	"hotelier/internal/store"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
)

type Booking interface {
	Insert(ctx context.Context, booking model.Booking) (model.Booking, error)
	Get(ctx context.Context, id int) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter dto.BookingFilter) ([]model.Booking, error)
	Count(ctx context.Context, filter dto.BookingFilter) (int, error)
	Update(ctx context.Context, booking model.Booking) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type repositoryImpl struct {
	store *store.Store
	otel  otel.Otel
}

func New(store *store.Store, otel otel.Otel) Booking {
	return &repositoryImpl{
		store: store,
		otel:  otel,
	}
}

// Insert hands the booking to the store, which assigns id and creation
// date and flips the referenced room unavailable when it exists.
func (r *repositoryImpl) Insert(ctx context.Context, booking model.Booking) (model.Booking, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".InsertBooking")
	defer scope.End()

	return r.store.InsertBooking(booking), nil
}

// Get returns the zero booking when the id is absent; callers check ID == 0.
func (r *repositoryImpl) Get(ctx context.Context, id int) (model.Booking, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetBooking")
	defer scope.End()

	booking, _ := r.store.GetBooking(id)

	return booking, nil
}

func (r *repositoryImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter dto.BookingFilter) ([]model.Booking, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetAllBookings")
	defer scope.End()

	return shared.Paginate(r.filtered(filter), params.Page, params.Limit), nil
}

func (r *repositoryImpl) Count(ctx context.Context, filter dto.BookingFilter) (int, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".CountBookings")
	defer scope.End()

	return len(r.filtered(filter)), nil
}

// Update replaces the booking without touching room availability; only
// create and delete carry the side effect unless the store was built with
// reconciliation enabled.
func (r *repositoryImpl) Update(ctx context.Context, booking model.Booking) (bool, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".UpdateBooking")
	defer scope.End()

	return r.store.ReplaceBooking(booking), nil
}

// Delete removes the booking and frees its room when the room still
// exists.
func (r *repositoryImpl) Delete(ctx context.Context, id int) (bool, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".DeleteBooking")
	defer scope.End()

	return r.store.RemoveBooking(id), nil
}

func (r *repositoryImpl) filtered(filter dto.BookingFilter) []model.Booking {
	bookings := r.store.ListBookings()

	result := bookings[:0:0]

	for _, booking := range bookings {
		if matches(booking, filter) {
			result = append(result, booking)
		}
	}

	return result
}

func matches(booking model.Booking, filter dto.BookingFilter) bool {
	if filter.Status != "" && string(booking.Status) != filter.Status {
		return false
	}

	if filter.PaymentStatus != "" && string(booking.PaymentStatus) != filter.PaymentStatus {
		return false
	}

	return true
}
