package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Addr              string        `env:"ADDR" envDefault:":5000"`
	RedisURL          string        `env:"REDIS_URL"`
	FrontendOrigin    string        `env:"FRONTEND_ORIGIN" envDefault:"http://localhost:3000"`
	GinMode           string        `env:"GIN_MODE" envDefault:"debug"`
	RoundRestartDelay time.Duration `env:"ROUND_RESTART_DELAY" envDefault:"2s"`
}

// Load reads configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
