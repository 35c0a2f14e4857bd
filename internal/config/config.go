// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds every configuration parameter the service needs.
type Config struct {
	Port string `env:"PORT" envDefault:"5000"`

	MongoURI    string `env:"MONGO_DB_URI,required"`
	MongoDBName string `env:"MONGO_DB_NAME" envDefault:"popcorn"`

	JWTSecret string `env:"JWT_SECRET,required"`
	JWTIssuer string `env:"JWT_ISSUER" envDefault:"popcorn-app"`

	// AppBaseURL is the externally reachable base URL used to build the
	// verification links sent by email.
	AppBaseURL string `env:"APP_BASE_URL" envDefault:"http://localhost:5000"`

	// CookieSecure marks the session cookie https-only. Off by default to
	// match local development; production deployments should set it.
	CookieSecure bool `env:"COOKIE_SECURE"`

	MailtrapAPIKey string `env:"MAILTRAP_API_KEY"`
	MailtrapAPIURL string `env:"MAILTRAP_API_URL"`

	SentryDSN         string `env:"SENTRY_DSN"`
	SentryEnvironment string `env:"SENTRY_ENVIRONMENT" envDefault:"development"`
}

// Load reads configuration from environment variables, loading a local .env
// file first when one exists.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); !os.IsNotExist(err) {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("loading .env file: %w", err)
		}
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration from environment: %w", err)
	}

	return &cfg, nil
}
