//go:build wireinject
// +build wireinject

package di

import (
	"hotelier/config"
	"hotelier/infras/jwt"
	"hotelier/infras/otel"
	dashboardHandler "hotelier/internal/handlers/dashboard"
	"hotelier/transport/http"
	"hotelier/transport/http/middleware"
	"hotelier/transport/http/router"

	bookingRepository "hotelier/internal/domains/booking/repository"
	bookingService "hotelier/internal/domains/booking/service"
	dashboardService "hotelier/internal/domains/dashboard/service"
	guestRepository "hotelier/internal/domains/guest/repository"
	guestService "hotelier/internal/domains/guest/service"
	roomRepository "hotelier/internal/domains/room/repository"
	roomService "hotelier/internal/domains/room/service"
	staffRepository "hotelier/internal/domains/staff/repository"
	staffService "hotelier/internal/domains/staff/service"

	"github.com/google/wire"

	authService "hotelier/internal/domains/auth/service"
	authHandler "hotelier/internal/handlers/auth"
	bookingHandler "hotelier/internal/handlers/booking"
	guestHandler "hotelier/internal/handlers/guest"
	roomHandler "hotelier/internal/handlers/room"
	staffHandler "hotelier/internal/handlers/staff"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	jwt.New,
	provideStore,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var staffDomain = wire.NewSet(
	staffRepository.New,
	staffService.New,
)

var dashboardDomain = wire.NewSet(
	dashboardService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var domains = wire.NewSet(
	roomDomain,
	guestDomain,
	bookingDomain,
	staffDomain,
	dashboardDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	roomHandler.New,
	guestHandler.New,
	bookingHandler.New,
	staffHandler.New,
	dashboardHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
