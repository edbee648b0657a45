package service

import (
	"context"
	"fmt"
	"hotelier/infras/otel"
	"hotelier/internal/domains/guest/model/dto"
	"hotelier/internal/domains/guest/repository"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"

	"github.com/rs/zerolog/log"
)

type Guest interface {
	Create(ctx context.Context, req dto.CreateGuestRequest) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter dto.GuestFilter) (dto.GetGuestsResponse, error)
	Get(ctx context.Context, id int) (dto.GuestResponse, error)
	Update(ctx context.Context, req dto.UpdateGuestRequest, id int) error
	Delete(ctx context.Context, id int) error
}

type serviceImpl struct {
	repo repository.Guest
	otel otel.Otel
}

func New(repo repository.Guest, otel otel.Otel) Guest {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateGuestRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateGuest")
	defer scope.End()
	defer scope.TraceIfError(err)

	guest, err := req.ToModel()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse guest request")

		return failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if _, err = s.repo.Insert(ctx, guest); err != nil {
		log.Error().Err(err).Msg("failed to create guest")

		return fmt.Errorf("failed to create guest: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter dto.GuestFilter) (res dto.GetGuestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllGuests")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count guests")

		return res, fmt.Errorf("failed to count guests: %w", err)
	}

	guests, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get guests")

		return res, fmt.Errorf("failed to get guests: %w", err)
	}

	res.FromModels(guests, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetGuest")
	defer scope.End()
	defer scope.TraceIfError(err)

	guest, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest")

		return res, fmt.Errorf("failed to get guest: %w", err)
	}

	if guest.ID == 0 {
		return res, failure.NotFound("guest not found") // nolint:wrapcheck
	}

	res.FromModel(guest)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateGuestRequest, id int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateGuest")
	defer scope.End()
	defer scope.TraceIfError(err)

	guest, err := req.ToModel(id)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse guest request")

		return failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	updated, err := s.repo.Update(ctx, guest)
	if err != nil {
		log.Error().Err(err).Msg("failed to update guest")

		return fmt.Errorf("failed to update guest: %w", err)
	}

	if !updated {
		log.Warn().Int("id", id).Msg("guest not found for update")

		return failure.NotFound("guest not found") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteGuest")
	defer scope.End()
	defer scope.TraceIfError(err)

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete guest")

		return fmt.Errorf("failed to delete guest: %w", err)
	}

	if !deleted {
		log.Warn().Int("id", id).Msg("guest not found for delete")

		return failure.NotFound("guest not found") // nolint:wrapcheck
	}

	return nil
}
