package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// AppConfig holds process-level settings read from the environment.
// CLI flags override these values.
type AppConfig struct {
	DBPath      string        `env:"MINDFLEX_DB"           envDefault:"~/.mindflex/results.db"`
	TickRate    int           `env:"MINDFLEX_TICK_RATE"    envDefault:"30"`
	LogLevel    string        `env:"MINDFLEX_LOG_LEVEL"    envDefault:"info"`
	LogFile     string        `env:"MINDFLEX_LOG_FILE"`
	SSHAddr     string        `env:"MINDFLEX_SSH_ADDR"     envDefault:":2323"`
	HostKey     string        `env:"MINDFLEX_HOST_KEY"     envDefault:".ssh/mindflex_ed25519"`
	IdleTimeout time.Duration `env:"MINDFLEX_IDLE_TIMEOUT" envDefault:"30m"`
}

// LoadApp reads AppConfig from the environment, loading a .env file from
// the working directory first when one exists.
func LoadApp() (AppConfig, error) {
	_ = godotenv.Load()

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if cfg.TickRate <= 0 {
		return cfg, fmt.Errorf("%w: MINDFLEX_TICK_RATE must be positive, got %d", ErrInvalid, cfg.TickRate)
	}
	return cfg, nil
}
