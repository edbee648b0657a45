package service

import (
	"context"
	"fmt"
	"hotelier/config"
	"hotelier/infras/jwt"
	"hotelier/infras/otel"
	"hotelier/internal/domains/auth/model/dto"
	"hotelier/shared/constant"
	"hotelier/shared/failure"
	"hotelier/shared/password"

	"github.com/rs/zerolog/log"
)

// adminUserID identifies the single configured administrator inside
// issued tokens. There is no user collection behind it.
const adminUserID = "admin"

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
}

type serviceImpl struct {
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
	}
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.Email != s.cfg.Auth.AdminEmail {
		log.Warn().Str("email", req.Email).Msg("login attempt with unknown email")

		return res, failure.BadRequestFromString("invalid email or password") // nolint:wrapcheck
	}

	if err := password.Verify(req.Password, s.cfg.Auth.AdminPasswordHash); err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

		return res, failure.BadRequestFromString("invalid email or password") // nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(adminUserID, req.Email)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate token pair")

		return res, fmt.Errorf("failed to generate token pair: %w", err)
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("refresh token rejected")

		return res, failure.Unauthorized("invalid refresh token") // nolint:wrapcheck
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}
