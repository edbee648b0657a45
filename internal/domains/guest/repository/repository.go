package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"strings"
	"hotelier/infras/otel"
	"hotelier/internal/domains/guest/model"
	"hotelier/internal/domains/guest/model/dto"
	"hotelier/internal/store"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
)

type Guest interface {
	Insert(ctx context.Context, guest model.Guest) (model.Guest, error)
	Get(ctx context.Context, id int) (model.Guest, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter dto.GuestFilter) ([]model.Guest, error)
	Count(ctx context.Context, filter dto.GuestFilter) (int, error)
	Update(ctx context.Context, guest model.Guest) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type repositoryImpl struct {
	store *store.Store
	otel  otel.Otel
}

func New(store *store.Store, otel otel.Otel) Guest {
	return &repositoryImpl{
		store: store,
		otel:  otel,
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, guest model.Guest) (model.Guest, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".InsertGuest")
	defer scope.End()

	return r.store.InsertGuest(guest), nil
}

// Get returns the zero guest when the id is absent; callers check ID == 0.
func (r *repositoryImpl) Get(ctx context.Context, id int) (model.Guest, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetGuest")
	defer scope.End()

	guest, _ := r.store.GetGuest(id)

	return guest, nil
}

func (r *repositoryImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter dto.GuestFilter) ([]model.Guest, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetAllGuests")
	defer scope.End()

	return shared.Paginate(r.filtered(filter), params.Page, params.Limit), nil
}

func (r *repositoryImpl) Count(ctx context.Context, filter dto.GuestFilter) (int, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".CountGuests")
	defer scope.End()

	return len(r.filtered(filter)), nil
}

func (r *repositoryImpl) Update(ctx context.Context, guest model.Guest) (bool, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".UpdateGuest")
	defer scope.End()

	return r.store.ReplaceGuest(guest), nil
}

func (r *repositoryImpl) Delete(ctx context.Context, id int) (bool, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".DeleteGuest")
	defer scope.End()

	// Bookings referencing the guest stay behind; readers render unknown
	// guests as such.
	return r.store.RemoveGuest(id), nil
}

func (r *repositoryImpl) filtered(filter dto.GuestFilter) []model.Guest {
	guests := r.store.ListGuests()

	result := guests[:0:0]

	for _, guest := range guests {
		if matches(guest, filter) {
			result = append(result, guest)
		}
	}

	return result
}

func matches(guest model.Guest, filter dto.GuestFilter) bool {
	if filter.PaymentStatus != "" && string(guest.PaymentStatus) != filter.PaymentStatus {
		return false
	}

	if filter.Search != "" {
		search := strings.ToLower(filter.Search)

		if !strings.Contains(strings.ToLower(guest.Name), search) &&
			!strings.Contains(strings.ToLower(guest.Email), search) {
			return false
		}
	}

	return true
}
