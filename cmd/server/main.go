package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fahmidl/app-sso/internal/app"
	"github.com/fahmidl/app-sso/internal/config"
	"github.com/fahmidl/app-sso/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logger config may itself be missing; use a default logger.
		fallback := logger.New("info")
		fallback.Fatal().Err(err).Msg("invalid configuration")
	}
	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	application, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize app")
	}

	go func() {
		if err := application.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	log.Info().Str("port", cfg.AppPort).Msg("app-sso started")

	<-ctx.Done()

	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		10*time.Second,
	)
	defer cancel()

	if err := application.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("graceful shutdown failed")
	}

	log.Info().Msg("app-sso stopped cleanly")
}
