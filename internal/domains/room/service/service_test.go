package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelier/infras/otel/mocks"
	roomMocks "hotelier/internal/domains/room/mocks"
	"hotelier/internal/domains/room/model"
	"hotelier/internal/domains/room/model/dto"
	"hotelier/internal/domains/room/service"
	gDto "hotelier/shared/dto"
)

func TestRoomService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockOtel)

	tests := []struct {
		name      string
		req       dto.CreateRoomRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			req: dto.CreateRoomRequest{
				Number:   "501",
				Type:     string(model.TypeDeluxe),
				Price:    220,
				Capacity: 2,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(model.Room{ID: 6}, nil)
			},
			wantErr: false,
		},
		{
			name: "repository error",
			req: dto.CreateRoomRequest{
				Number: "501",
				Type:   string(model.TypeDeluxe),
				Price:  220,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(model.Room{}, errors.New("store error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoomService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockOtel)

	params := gDto.QueryParams{Page: 1, Limit: 10}
	filter := dto.RoomFilter{Type: string(model.TypeStandard)}

	mockRepo.EXPECT().
		Count(gomock.Any(), filter).
		Return(2, nil)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), params, filter).
		Return([]model.Room{
			{ID: 1, Number: "101", Type: model.TypeStandard},
			{ID: 2, Number: "102", Type: model.TypeStandard},
		}, nil)

	res, err := svc.GetAll(context.Background(), params, filter)

	assert.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)
	assert.Len(t, res.Rooms, 2)
}

func TestRoomService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockOtel)

	t.Run("found", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), 1).
			Return(model.Room{ID: 1, Number: "101"}, nil)

		res, err := svc.Get(context.Background(), 1)

		assert.NoError(t, err)
		assert.Equal(t, "101", res.Number)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), 99).
			Return(model.Room{}, nil)

		_, err := svc.Get(context.Background(), 99)

		assert.Error(t, err)
	})
}

func TestRoomService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockOtel)

	req := dto.UpdateRoomRequest{
		Number:    "101",
		Type:      string(model.TypeStandard),
		Price:     120,
		Capacity:  2,
		Available: true,
	}

	t.Run("successful update", func(t *testing.T) {
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			Return(true, nil)

		assert.NoError(t, svc.Update(context.Background(), req, 1))
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			Return(false, nil)

		assert.Error(t, svc.Update(context.Background(), req, 99))
	})
}

func TestRoomService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockOtel)

	t.Run("successful delete", func(t *testing.T) {
		mockRepo.EXPECT().
			Delete(gomock.Any(), 1).
			Return(true, nil)

		assert.NoError(t, svc.Delete(context.Background(), 1))
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Delete(gomock.Any(), 99).
			Return(false, nil)

		assert.Error(t, svc.Delete(context.Background(), 99))
	})
}
