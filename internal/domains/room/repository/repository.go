package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"strings"
	"hotelier/infras/otel"
	"hotelier/internal/domains/room/model"
	"hotelier/internal/domains/room/model/dto"
	"hotelier/internal/store"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
)

type Room interface {
	Insert(ctx context.Context, room model.Room) (model.Room, error)
	Get(ctx context.Context, id int) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter dto.RoomFilter) ([]model.Room, error)
	Count(ctx context.Context, filter dto.RoomFilter) (int, error)
	Exist(ctx context.Context, id int) (bool, error)
	Update(ctx context.Context, room model.Room) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type repositoryImpl struct {
	store *store.Store
	otel  otel.Otel
}

func New(store *store.Store, otel otel.Otel) Room {
	return &repositoryImpl{
		store: store,
		otel:  otel,
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, room model.Room) (model.Room, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".InsertRoom")
	defer scope.End()

	return r.store.InsertRoom(room), nil
}

// Get returns the zero room when the id is absent; callers check ID == 0.
func (r *repositoryImpl) Get(ctx context.Context, id int) (model.Room, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetRoom")
	defer scope.End()

	room, _ := r.store.GetRoom(id)

	return room, nil
}

func (r *repositoryImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter dto.RoomFilter) ([]model.Room, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetAllRooms")
	defer scope.End()

	return shared.Paginate(r.filtered(filter), params.Page, params.Limit), nil
}

func (r *repositoryImpl) Count(ctx context.Context, filter dto.RoomFilter) (int, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".CountRooms")
	defer scope.End()

	return len(r.filtered(filter)), nil
}

func (r *repositoryImpl) Exist(ctx context.Context, id int) (bool, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".RoomExists")
	defer scope.End()

	_, ok := r.store.GetRoom(id)

	return ok, nil
}

func (r *repositoryImpl) Update(ctx context.Context, room model.Room) (bool, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".UpdateRoom")
	defer scope.End()

	return r.store.ReplaceRoom(room), nil
}

func (r *repositoryImpl) Delete(ctx context.Context, id int) (bool, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".DeleteRoom")
	defer scope.End()

	return r.store.RemoveRoom(id), nil
}

func (r *repositoryImpl) filtered(filter dto.RoomFilter) []model.Room {
	rooms := r.store.ListRooms()

	result := rooms[:0:0]

	for _, room := range rooms {
		if matches(room, filter) {
			result = append(result, room)
		}
	}

	return result
}

func matches(room model.Room, filter dto.RoomFilter) bool {
	if filter.Type != "" && string(room.Type) != filter.Type {
		return false
	}

	if filter.Available != nil && room.Available != *filter.Available {
		return false
	}

	if filter.Search != "" && !strings.Contains(strings.ToLower(room.Number), strings.ToLower(filter.Search)) {
		return false
	}

	return true
}
