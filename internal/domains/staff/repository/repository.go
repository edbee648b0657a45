package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"strings"
	"hotelier/infras/otel"
	"hotelier/internal/domains/staff/model"
	"hotelier/internal/domains/staff/model/dto"
	"hotelier/internal/store"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
)

type Staff interface {
	Insert(ctx context.Context, member model.Staff) (model.Staff, error)
	Get(ctx context.Context, id int) (model.Staff, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter dto.StaffFilter) ([]model.Staff, error)
	Count(ctx context.Context, filter dto.StaffFilter) (int, error)
	Update(ctx context.Context, member model.Staff) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type repositoryImpl struct {
	store *store.Store
	otel  otel.Otel
}

func New(store *store.Store, otel otel.Otel) Staff {
	return &repositoryImpl{
		store: store,
		otel:  otel,
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, member model.Staff) (model.Staff, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".InsertStaff")
	defer scope.End()

	return r.store.InsertStaff(member), nil
}

// Get returns the zero record when the id is absent; callers check ID == 0.
func (r *repositoryImpl) Get(ctx context.Context, id int) (model.Staff, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetStaff")
	defer scope.End()

	member, _ := r.store.GetStaff(id)

	return member, nil
}

func (r *repositoryImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter dto.StaffFilter) ([]model.Staff, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetAllStaff")
	defer scope.End()

	return shared.Paginate(r.filtered(filter), params.Page, params.Limit), nil
}

func (r *repositoryImpl) Count(ctx context.Context, filter dto.StaffFilter) (int, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".CountStaff")
	defer scope.End()

	return len(r.filtered(filter)), nil
}

func (r *repositoryImpl) Update(ctx context.Context, member model.Staff) (bool, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".UpdateStaff")
	defer scope.End()

	return r.store.ReplaceStaff(member), nil
}

func (r *repositoryImpl) Delete(ctx context.Context, id int) (bool, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".DeleteStaff")
	defer scope.End()

	return r.store.RemoveStaff(id), nil
}

func (r *repositoryImpl) filtered(filter dto.StaffFilter) []model.Staff {
	members := r.store.ListStaff()

	result := members[:0:0]

	for _, member := range members {
		if matches(member, filter) {
			result = append(result, member)
		}
	}

	return result
}

func matches(member model.Staff, filter dto.StaffFilter) bool {
	if filter.Department != "" && member.Department != filter.Department {
		return false
	}

	if filter.Search != "" {
		search := strings.ToLower(filter.Search)

		if !strings.Contains(strings.ToLower(member.Name), search) &&
			!strings.Contains(strings.ToLower(member.Position), search) {
			return false
		}
	}

	return true
}
