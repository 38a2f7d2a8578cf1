package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Runway"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"runway"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Auth struct {
		Secret string `envconfig:"AUTH_SECRET"`
	}

	Forecast struct {
		// TrackingFloor is the earliest date forecasting considers; zero
		// means no floor.
		TrackingFloor time.Time `envconfig:"TRACKING_FLOOR"`

		// DefaultWindowMonths sizes the window when a request does not bound
		// it explicitly.
		DefaultWindowMonths int `envconfig:"DEFAULT_WINDOW_MONTHS" default:"3"`
	}

	OverrideCache struct {
		TTL        time.Duration `envconfig:"OVERRIDE_CACHE_TTL" default:"15m"`
		MaxEntries int           `envconfig:"OVERRIDE_CACHE_MAX_ENTRIES" default:"1024"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
