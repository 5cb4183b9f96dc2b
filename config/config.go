// Package config loads process configuration from the environment.
package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/khorlingling/site/contact"
	"github.com/khorlingling/site/pkg/logger"
	"github.com/khorlingling/site/pkg/mailer"
	"github.com/khorlingling/site/pkg/mailer/gmail"
)

// Config is the full process configuration.
type Config struct {
	Address            string        `env:"ADDRESS" envDefault:":8080"`
	AppEnv             string        `env:"APP_ENV" envDefault:"development"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
	MaxBodyBytes       int64         `env:"CONTACT_MAX_BODY_BYTES" envDefault:"65536"`

	Log     logger.SentryConfig
	Contact contact.Config
	SMTP    gmail.Config
	Mailer  mailer.Config
}

// Load reads an optional .env file and parses the environment.
// Variables already set in the environment win over .env values.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFrom parses cfg from vars only, ignoring the process environment.
func LoadFrom(vars map[string]string) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsProduction reports whether APP_ENV is "production".
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
