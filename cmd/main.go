// cmd/main.go is the application entry point.
// It wires together all layers and starts the HTTP server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/academy-events/backend/internal/auth"
	"github.com/academy-events/backend/internal/config"
	"github.com/academy-events/backend/internal/database"
	"github.com/academy-events/backend/internal/handler"
	"github.com/academy-events/backend/internal/identity"
	"github.com/academy-events/backend/internal/repository"
	"github.com/academy-events/backend/internal/service"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}

	pool, err := database.NewPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("database")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Wire up layers
	studentRepo := repository.NewStudentRepository(pool)
	eventRepo := repository.NewEventRepository(pool)
	regRepo := repository.NewRegistrationRepository(pool)
	organizerRepo := repository.NewOrganizerRepository(pool)
	refRepo := repository.NewReferenceRepository(pool)

	tokens := auth.NewTokenIssuer(cfg.JWTSecret)
	verifier := identity.NewClient(cfg.SupabaseURL, cfg.SupabaseAnonKey)

	h := handler.New(
		service.NewStudentService(studentRepo),
		service.NewEventService(eventRepo),
		service.NewRegistrationService(regRepo, studentRepo),
		service.NewOrganizerService(organizerRepo, eventRepo, refRepo, tokens),
		service.NewReferenceService(refRepo),
		verifier,
		tokens,
		log,
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler.NewRouter(h, log),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Run in background goroutine so we can listen for shutdown signal.
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Block until SIGINT or SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
