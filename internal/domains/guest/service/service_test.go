package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelier/infras/otel/mocks"
	"hotelier/internal/domains/guest/model"
	"hotelier/internal/domains/guest/model/dto"
	"hotelier/internal/domains/guest/repository"
	"hotelier/internal/domains/guest/service"
	"hotelier/internal/store"
	gDto "hotelier/shared/dto"
)

func newService() service.Guest {
	mockOtel := mocks.NewOtel()
	repo := repository.New(store.New(store.WithSeed()), mockOtel)

	return service.New(repo, mockOtel)
}

func TestGuestService_Create(t *testing.T) {
	svc := newService()

	t.Run("successful creation", func(t *testing.T) {
		err := svc.Create(context.Background(), dto.CreateGuestRequest{
			Name:          "Alice Cooper",
			Email:         "alice.cooper@example.com",
			Phone:         "+1 (555) 222-3333",
			CheckIn:       "2025-07-01",
			CheckOut:      "2025-07-04",
			RoomID:        4,
			TotalAmount:   1050,
			PaymentStatus: string(model.PaymentPending),
		})
		require.NoError(t, err)

		created, err := svc.Get(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, "Alice Cooper", created.Name)
		assert.Equal(t, "2025-07-01", created.CheckIn)
	})

	t.Run("invalid date format", func(t *testing.T) {
		err := svc.Create(context.Background(), dto.CreateGuestRequest{
			Name:          "Bob",
			Email:         "bob@example.com",
			CheckIn:       "01/07/2025",
			CheckOut:      "2025-07-04",
			RoomID:        4,
			PaymentStatus: string(model.PaymentPending),
		})
		assert.Error(t, err)
	})
}

func TestGuestService_GetAll(t *testing.T) {
	svc := newService()

	t.Run("unfiltered", func(t *testing.T) {
		res, err := svc.GetAll(context.Background(), gDto.QueryParams{}, dto.GuestFilter{})
		require.NoError(t, err)
		assert.Equal(t, 2, res.TotalData)
		assert.Len(t, res.Guests, 2)
	})

	t.Run("filter by payment status", func(t *testing.T) {
		res, err := svc.GetAll(context.Background(), gDto.QueryParams{}, dto.GuestFilter{
			PaymentStatus: string(model.PaymentPending),
		})
		require.NoError(t, err)
		assert.Equal(t, 1, res.TotalData)
		assert.Equal(t, "Jane Doe", res.Guests[0].Name)
	})

	t.Run("search by name", func(t *testing.T) {
		res, err := svc.GetAll(context.Background(), gDto.QueryParams{}, dto.GuestFilter{
			Search: "smith",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, res.TotalData)
		assert.Equal(t, "John Smith", res.Guests[0].Name)
	})
}

func TestGuestService_Get(t *testing.T) {
	svc := newService()

	t.Run("found", func(t *testing.T) {
		res, err := svc.Get(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "John Smith", res.Name)
		assert.Equal(t, 2, res.RoomID)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.Get(context.Background(), 99)
		assert.Error(t, err)
	})
}

func TestGuestService_Update(t *testing.T) {
	svc := newService()

	req := dto.UpdateGuestRequest{
		Name:          "John Smith",
		Email:         "john.smith@example.com",
		Phone:         "+1 (555) 123-4567",
		CheckIn:       "2025-06-01",
		CheckOut:      "2025-06-05",
		RoomID:        2,
		TotalAmount:   400,
		PaymentStatus: string(model.PaymentRefunded),
	}

	t.Run("successful update", func(t *testing.T) {
		require.NoError(t, svc.Update(context.Background(), req, 1))

		updated, err := svc.Get(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, string(model.PaymentRefunded), updated.PaymentStatus)
	})

	t.Run("not found", func(t *testing.T) {
		assert.Error(t, svc.Update(context.Background(), req, 99))
	})
}

func TestGuestService_Delete(t *testing.T) {
	svc := newService()

	t.Run("successful delete", func(t *testing.T) {
		require.NoError(t, svc.Delete(context.Background(), 2))

		_, err := svc.Get(context.Background(), 2)
		assert.Error(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		assert.Error(t, svc.Delete(context.Background(), 2))
	})
}
