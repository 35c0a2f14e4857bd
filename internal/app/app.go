package app

import (
	"github.com/TonyTawil/popcorn-app/internal/sdk/userdb"
	"github.com/TonyTawil/popcorn-app/internal/services/hash"
	"github.com/TonyTawil/popcorn-app/internal/services/jwt"
	"github.com/TonyTawil/popcorn-app/internal/services/mailtrap"
	"github.com/TonyTawil/popcorn-app/internal/services/sentry"
)

type App struct {
	db     userdb.Service
	hasher *hash.HashService
	tokens *jwt.TokenService
	email  mailtrap.Service
	sentry *sentry.SentryService

	// baseURL is prepended to the verification path in outbound emails.
	baseURL      string
	cookieSecure bool
}

func NewApp(
	db userdb.Service,
	hasher *hash.HashService,
	tokens *jwt.TokenService,
	email mailtrap.Service,
	sentry *sentry.SentryService,
	baseURL string,
	cookieSecure bool,
) *App {
	return &App{
		db:           db,
		hasher:       hasher,
		tokens:       tokens,
		email:        email,
		sentry:       sentry,
		baseURL:      baseURL,
		cookieSecure: cookieSecure,
	}
}
