// Package config handles resolving configuration from the environment.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Production-mode strength requirements. The admin password minimum is
// enforced uniformly at 12 characters.
const (
	MinSecretLen   = 32
	MinPasswordLen = 12

	ephemeralSecretBytes = 64
)

// Development fallback credentials, never used in production.
const (
	devAdminUsername = "admin"
	devAdminPassword = "admin123"
)

var weakPasswords = []string{"admin123", "password"}

// Config is the resolved process configuration.
type Config struct {
	Env             string     `env:"APP_ENV" envDefault:"development"`
	Address         string     `env:"LISTEN_ADDR" envDefault:"localhost:8080"`
	LogLevel        slog.Level `env:"LOG_LEVEL" envDefault:"info"`
	JWTSecret       string     `env:"JWT_SECRET"`
	AdminUsername   string     `env:"DEFAULT_ADMIN_USERNAME"`
	AdminPassword   string     `env:"DEFAULT_ADMIN_PASSWORD"`
	RecaptchaSecret string     `env:"RECAPTCHA_SECRET_KEY"`
}

// Production reports whether the process runs in production mode.
func (c Config) Production() bool { return c.Env == "production" }

// Load resolves configuration from environment variables. In production mode
// every security-sensitive value is mandatory and validated for strength; a
// returned error here must abort startup before any listener is bound. In
// development mode missing values fall back to an ephemeral signing secret
// and fixed admin credentials.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Production() {
		if err := cfg.validateProduction(); err != nil {
			return Config{}, err
		}
		return cfg, nil
	}

	if cfg.JWTSecret == "" {
		secret, err := ephemeralSecret()
		if err != nil {
			return Config{}, err
		}
		// tokens will not survive a restart; acceptable outside production
		cfg.JWTSecret = secret
	}
	if cfg.AdminUsername == "" {
		cfg.AdminUsername = devAdminUsername
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = devAdminPassword
	}
	return cfg, nil
}

func (c Config) validateProduction() error {
	var errs []error
	switch {
	case c.JWTSecret == "":
		errs = append(errs, errors.New("JWT_SECRET is required in production"))
	case len(c.JWTSecret) < MinSecretLen || strings.Contains(c.JWTSecret, "change-this"):
		errs = append(errs, fmt.Errorf("JWT_SECRET must be at least %d characters and cryptographically random", MinSecretLen))
	}

	if c.AdminUsername == "" {
		errs = append(errs, errors.New("DEFAULT_ADMIN_USERNAME is required in production"))
	}

	switch {
	case c.AdminPassword == "":
		errs = append(errs, errors.New("DEFAULT_ADMIN_PASSWORD is required in production"))
	case len(c.AdminPassword) < MinPasswordLen || isWeakPassword(c.AdminPassword):
		errs = append(errs, fmt.Errorf("DEFAULT_ADMIN_PASSWORD must be at least %d characters and not a common default", MinPasswordLen))
	}

	if c.RecaptchaSecret == "" {
		errs = append(errs, errors.New("RECAPTCHA_SECRET_KEY is required in production"))
	}
	return errors.Join(errs...)
}

func isWeakPassword(password string) bool {
	for _, weak := range weakPasswords {
		if password == weak {
			return true
		}
	}
	return false
}

func ephemeralSecret() (string, error) {
	buf := make([]byte, ephemeralSecretBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate ephemeral signing secret: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
