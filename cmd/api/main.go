package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/TonyTawil/popcorn-app/internal/app"
	"github.com/TonyTawil/popcorn-app/internal/config"
	"github.com/TonyTawil/popcorn-app/internal/sdk/userdb"
	"github.com/TonyTawil/popcorn-app/internal/services/hash"
	"github.com/TonyTawil/popcorn-app/internal/services/jwt"
	"github.com/TonyTawil/popcorn-app/internal/services/mailtrap"
	"github.com/TonyTawil/popcorn-app/internal/services/sentry"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Application failed: %v", err)
	}
}

func run() error {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)
	logger.Info("GOMAXPROCS", "cpu", runtime.GOMAXPROCS(0))

	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// 2. Initialize Database
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbService, err := userdb.New(ctx, cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}

	// 3. Initialize Services
	hashService := hash.NewHashService()
	jwtService := jwt.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer)
	mailtrapService := mailtrap.NewMailtrapService(cfg.MailtrapAPIKey, cfg.MailtrapAPIURL)
	sentryService := sentry.NewSentryService(cfg.SentryDSN, cfg.SentryEnvironment)
	defer sentryService.Close()

	// 4. Initialize App
	application := app.NewApp(dbService, hashService, jwtService, mailtrapService, sentryService, cfg.AppBaseURL, cfg.CookieSecure)

	// 5. Configure Server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      application.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	// 6. Graceful Shutdown Logic
	done := make(chan bool, 1)
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("shutting down gracefully, press Ctrl+C again to force")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server forced to shutdown", "error", err)
		}
		if err := dbService.Close(shutdownCtx); err != nil {
			logger.Error("Closing database connection", "error", err)
		}
		done <- true
	}()

	// 7. Start Server
	logger.Info("Starting server", "port", srv.Addr)
	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server error: %w", err)
	}

	<-done
	logger.Info("Graceful shutdown complete")
	return nil
}
