package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelier/infras/otel/mocks"
	"hotelier/internal/domains/staff/model/dto"
	"hotelier/internal/domains/staff/repository"
	"hotelier/internal/domains/staff/service"
	"hotelier/internal/store"
	gDto "hotelier/shared/dto"
)

func newService() service.Staff {
	mockOtel := mocks.NewOtel()
	repo := repository.New(store.New(store.WithSeed()), mockOtel)

	return service.New(repo, mockOtel)
}

func TestStaffService_Create(t *testing.T) {
	svc := newService()

	err := svc.Create(context.Background(), dto.CreateStaffRequest{
		Name:        "Laura Chen",
		Position:    "Concierge",
		Department:  "Front Desk",
		ContactInfo: "laura.chen@hotel.com",
	})
	require.NoError(t, err)

	created, err := svc.Get(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "Laura Chen", created.Name)
	assert.Equal(t, "Concierge", created.Position)
}

func TestStaffService_GetAll(t *testing.T) {
	svc := newService()

	t.Run("unfiltered", func(t *testing.T) {
		res, err := svc.GetAll(context.Background(), gDto.QueryParams{}, dto.StaffFilter{})
		require.NoError(t, err)
		assert.Equal(t, 4, res.TotalData)
		assert.Len(t, res.Staff, 4)
	})

	t.Run("filter by department", func(t *testing.T) {
		res, err := svc.GetAll(context.Background(), gDto.QueryParams{}, dto.StaffFilter{
			Department: "Housekeeping",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, res.TotalData)
		assert.Equal(t, "Emily Davis", res.Staff[0].Name)
	})

	t.Run("search by name", func(t *testing.T) {
		res, err := svc.GetAll(context.Background(), gDto.QueryParams{}, dto.StaffFilter{
			Search: "brown",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, res.TotalData)
		assert.Equal(t, "Chef", res.Staff[0].Position)
	})
}

func TestStaffService_Get(t *testing.T) {
	svc := newService()

	t.Run("found", func(t *testing.T) {
		res, err := svc.Get(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "Michael Johnson", res.Name)
		assert.Equal(t, "Administration", res.Department)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.Get(context.Background(), 99)
		assert.Error(t, err)
	})
}

func TestStaffService_Update(t *testing.T) {
	svc := newService()

	req := dto.UpdateStaffRequest{
		Name:        "Sarah Williams",
		Position:    "Front Desk Supervisor",
		Department:  "Front Desk",
		ContactInfo: "sarah.williams@hotel.com",
	}

	t.Run("successful update", func(t *testing.T) {
		require.NoError(t, svc.Update(context.Background(), req, 2))

		updated, err := svc.Get(context.Background(), 2)
		require.NoError(t, err)
		assert.Equal(t, "Front Desk Supervisor", updated.Position)
	})

	t.Run("not found", func(t *testing.T) {
		assert.Error(t, svc.Update(context.Background(), req, 99))
	})
}

func TestStaffService_Delete(t *testing.T) {
	svc := newService()

	t.Run("successful delete", func(t *testing.T) {
		require.NoError(t, svc.Delete(context.Background(), 3))

		_, err := svc.Get(context.Background(), 3)
		assert.Error(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		assert.Error(t, svc.Delete(context.Background(), 3))
	})
}
