package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"career-guide/internal/app"
	"career-guide/internal/config"
	"career-guide/internal/logger"

	"github.com/spf13/pflag"
)

func main() {
	configPath := pflag.String("config", "", "path to an optional YAML config file")
	migrate := pflag.Bool("migrate", true, "apply database migrations on startup")
	seed := pflag.Bool("seed", true, "seed the job catalog on startup")
	serve := pflag.Bool("serve", true, "start the HTTP server")
	pflag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("failed to load config")
	}
	log := logger.Init(cfg.Log)

	ctx := context.Background()
	bootstrap, cleanup, err := app.Bootstrap(ctx, cfg, app.Options{Migrate: *migrate, Seed: *seed})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to bootstrap app")
	}
	defer func() {
		if err := cleanup(); err != nil {
			log.Error().Err(err).Msg("cleanup error")
		}
	}()

	if !*serve {
		log.Info().Msg("serve disabled, exiting after setup")
		return
	}

	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid HTTP port")
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Str("env", cfg.App.Environment).Msg("http server listening")
		errCh <- bootstrap.Fiber.Listen(addr)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("server error")
		}
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := bootstrap.Fiber.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown error")
		}
	}
}
