package service

import (
	"context"
	"fmt"
	"hotelier/infras/otel"
	"hotelier/internal/domains/staff/model/dto"
	"hotelier/internal/domains/staff/repository"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"

	"github.com/rs/zerolog/log"
)

type Staff interface {
	Create(ctx context.Context, req dto.CreateStaffRequest) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter dto.StaffFilter) (dto.GetStaffResponse, error)
	Get(ctx context.Context, id int) (dto.StaffResponse, error)
	Update(ctx context.Context, req dto.UpdateStaffRequest, id int) error
	Delete(ctx context.Context, id int) error
}

type serviceImpl struct {
	repo repository.Staff
	otel otel.Otel
}

func New(repo repository.Staff, otel otel.Otel) Staff {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateStaffRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateStaff")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.repo.Insert(ctx, req.ToModel()); err != nil {
		log.Error().Err(err).Msg("failed to create staff member")

		return fmt.Errorf("failed to create staff member: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter dto.StaffFilter) (res dto.GetStaffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllStaff")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count staff")

		return res, fmt.Errorf("failed to count staff: %w", err)
	}

	members, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get staff")

		return res, fmt.Errorf("failed to get staff: %w", err)
	}

	res.FromModels(members, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int) (res dto.StaffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetStaff")
	defer scope.End()
	defer scope.TraceIfError(err)

	member, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get staff member")

		return res, fmt.Errorf("failed to get staff member: %w", err)
	}

	if member.ID == 0 {
		return res, failure.NotFound("staff member not found") // nolint:wrapcheck
	}

	res.FromModel(member)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateStaffRequest, id int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStaff")
	defer scope.End()
	defer scope.TraceIfError(err)

	updated, err := s.repo.Update(ctx, req.ToModel(id))
	if err != nil {
		log.Error().Err(err).Msg("failed to update staff member")

		return fmt.Errorf("failed to update staff member: %w", err)
	}

	if !updated {
		log.Warn().Int("id", id).Msg("staff member not found for update")

		return failure.NotFound("staff member not found") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteStaff")
	defer scope.End()
	defer scope.TraceIfError(err)

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete staff member")

		return fmt.Errorf("failed to delete staff member: %w", err)
	}

	if !deleted {
		log.Warn().Int("id", id).Msg("staff member not found for delete")

		return failure.NotFound("staff member not found") // nolint:wrapcheck
	}

	return nil
}
