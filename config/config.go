package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"       default:"development"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"trace"`
		Port     string `envconfig:"PORT"      default:"8080"`
		Host     string `envconfig:"HOST"      default:"0.0.0.0"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS" default:"5"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"   default:"10"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME" default:"hotelier"`
		Timezone string `envconfig:"TIMEZONE" default:"UTC"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS" default:"false"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"   default:"Accept,Authorization,Content-Type"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"   default:"GET,POST,PUT,DELETE,OPTIONS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"   default:"*"`
			Enable           bool     `envconfig:"ENABLE"            default:"true"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"   default:"300"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"         default:"false"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"   default:"100"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS" default:"60"`
		} `envconfig:"RATE_LIMITER"`
		Store struct {
			// Seed controls whether the store starts from the built-in fixture
			// or completely empty.
			Seed bool `envconfig:"SEED" default:"true"`
			// ReconcileAvailability switches booking updates from the literal
			// "only create/delete touch room availability" behavior to
			// re-deriving a room's availability from its active bookings
			// whenever a booking is updated.
			ReconcileAvailability bool `envconfig:"RECONCILE_AVAILABILITY" default:"false"`
		} `envconfig:"STORE"`
	} `envconfig:"APP"`

	Auth struct {
		// AdminEmail and AdminPasswordHash are the single administrator
		// credential gating mutations. The default hash is bcrypt("password").
		AdminEmail        string `envconfig:"ADMIN_EMAIL"         default:"admin@example.com"`
		AdminPasswordHash string `envconfig:"ADMIN_PASSWORD_HASH" default:"$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"`
	} `envconfig:"AUTH"`

	JWT struct {
		AccessSecret     string `envconfig:"ACCESS_SECRET"      default:"hotelier-access-secret"`
		RefreshSecret    string `envconfig:"REFRESH_SECRET"     default:"hotelier-refresh-secret"`
		AccessExpireMin  int    `envconfig:"ACCESS_EXPIRE_MIN"  default:"15"`
		RefreshExpireMin int    `envconfig:"REFRESH_EXPIRE_MIN" default:"10080"`
	} `envconfig:"JWT"`

	External struct {
		Otel struct {
			Enable   bool   `envconfig:"ENABLE" default:"false"`
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	}
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		if loadErr := godotenv.Load(".env"); loadErr != nil {
			log.Warn().Err(loadErr).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			return
		}

		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("processing environment variables: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
