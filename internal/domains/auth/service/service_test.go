package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelier/config"
	"hotelier/infras/jwt"
	"hotelier/infras/otel/mocks"
	"hotelier/internal/domains/auth/model/dto"
	"hotelier/internal/domains/auth/service"
	"hotelier/shared/password"
)

func newService(t *testing.T) service.Auth {
	t.Helper()

	hash, err := password.Hash("s3cret")
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.App.Name = "hotelier-test"
	cfg.Auth.AdminEmail = "admin@example.com"
	cfg.Auth.AdminPasswordHash = hash
	cfg.JWT.AccessSecret = "test-access-secret"
	cfg.JWT.RefreshSecret = "test-refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 60

	return service.New(cfg, mocks.NewOtel(), jwt.New(cfg))
}

func TestAuthService_Login(t *testing.T) {
	svc := newService(t)

	t.Run("successful login", func(t *testing.T) {
		res, err := svc.Login(context.Background(), dto.LoginRequest{
			Email:    "admin@example.com",
			Password: "s3cret",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, res.AccessToken)
		assert.NotEmpty(t, res.RefreshToken)
		assert.Equal(t, int64(15*60), res.ExpiresIn)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), dto.LoginRequest{
			Email:    "intruder@example.com",
			Password: "s3cret",
		})
		assert.Error(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), dto.LoginRequest{
			Email:    "admin@example.com",
			Password: "wrong",
		})
		assert.Error(t, err)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	svc := newService(t)

	t.Run("successful refresh", func(t *testing.T) {
		login, err := svc.Login(context.Background(), dto.LoginRequest{
			Email:    "admin@example.com",
			Password: "s3cret",
		})
		require.NoError(t, err)

		res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{
			RefreshToken: login.RefreshToken,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, res.AccessToken)
		assert.NotEmpty(t, res.RefreshToken)
	})

	t.Run("malformed token", func(t *testing.T) {
		_, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{
			RefreshToken: "not-a-token",
		})
		assert.Error(t, err)
	})

	t.Run("access token rejected", func(t *testing.T) {
		login, err := svc.Login(context.Background(), dto.LoginRequest{
			Email:    "admin@example.com",
			Password: "s3cret",
		})
		require.NoError(t, err)

		_, err = svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{
			RefreshToken: login.AccessToken,
		})
		assert.Error(t, err)
	})
}
