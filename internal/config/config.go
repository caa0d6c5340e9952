// Package config loads process configuration from environment variables.
// The resulting struct is immutable after startup and dependency-injected;
// no package reads the environment directly.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config collects every environment-provided setting.
type Config struct {
	Addr        string `env:"ADDR" envDefault:":8080"`
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`
	Secret      string `env:"SECRET,required,notEmpty"`
	FrontEndURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`

	AuthTokenTTL  time.Duration `env:"AUTH_TOKEN_TTL" envDefault:"48h"`
	ResetTokenTTL time.Duration `env:"RESET_TOKEN_TTL" envDefault:"12h"`

	MailgunBaseURI string `env:"MAILGUN_BASE_URI"`
	MailgunAPIKey  string `env:"MAILGUN_API_KEY"`
	ServiceEmail   string `env:"SERVICE_EMAIL"`
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
