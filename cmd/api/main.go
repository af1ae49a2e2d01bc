package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"food-dashboard/internal/config"
	"food-dashboard/internal/database"
	"food-dashboard/internal/handler"
	"food-dashboard/internal/repository"
	"food-dashboard/internal/router"
	"food-dashboard/internal/seed"
	"food-dashboard/internal/service"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	logger.Info().
		Str("storage", cfg.Storage.Driver).
		Msg("starting food API server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		foodRepo    repository.FoodRepository
		healthCheck func(context.Context) error
	)

	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		foodRepo = repository.NewMemoryFoodRepository(logger)
	default:
		pool, err := database.Open(ctx, cfg.Database, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer pool.Close()

		foodRepo = repository.NewFoodRepository(pool, logger)
		healthCheck = func(ctx context.Context) error { return database.Ping(ctx, pool) }
	}

	if cfg.Seed.FilePath != "" {
		if err := seedCatalogue(ctx, cfg.Seed, foodRepo, logger); err != nil {
			return err
		}
	}

	foodService := service.NewFoodService(foodRepo, logger)
	foodHandler := handler.NewFoodHandler(foodService, logger)

	mux := router.New(foodHandler, router.Options{
		APIKey:         cfg.Auth.APIKey,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		HealthCheck:    healthCheck,
	}, logger)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// seedCatalogue fills an empty repository from the configured seed file,
// reading it from S3 first when enabled.
func seedCatalogue(ctx context.Context, cfg config.SeedConfig, repo repository.FoodRepository, logger zerolog.Logger) error {
	fileLoader := seed.NewFileLoader(logger)

	var s3Loader seed.Loader
	if cfg.S3Enabled {
		l, err := seed.NewS3Loader(ctx, cfg.S3Bucket, cfg.S3Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
		} else {
			s3Loader = l
		}
	} else {
		logger.Info().Msg("using local file system for the seed catalogue (S3 disabled)")
	}

	loader := seed.NewFallbackLoader(s3Loader, fileLoader, cfg.S3Prefix, cfg.S3Enabled, logger)

	if _, err := seed.NewSeeder(loader, repo, logger).Apply(ctx, cfg.FilePath); err != nil {
		return fmt.Errorf("failed to seed food catalogue: %w", err)
	}
	return nil
}
