package config

import (
	"github.com/caarlos0/env/v11"
)

// Config is the process configuration, read from the environment.
type Config struct {
	DatabaseURL    string `env:"DATABASE_URL,required"`
	DatabaseSchema string `env:"DATABASE_SCHEMA" envDefault:"public"`
	Host           string `env:"HOST" envDefault:"0.0.0.0"`
	Port           int    `env:"PORT" envDefault:"8000"`
	AppEnv         string `env:"APP_ENV" envDefault:"development"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
