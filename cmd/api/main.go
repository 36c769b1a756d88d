package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"menu-board/internal/config"
	"menu-board/internal/database"
	"menu-board/internal/handler"
	"menu-board/internal/profanity"
	"menu-board/internal/repository"
	"menu-board/internal/router"
	"menu-board/internal/service"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting menu-board API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	// Apply embedded schema migrations
	if err := database.Migrate(ctx, pool, logger); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	// Initialize profanity checker for the name-validation gate
	checker, err := newProfanityChecker(ctx, cfg.Profanity, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize profanity checker: %w", err)
	}
	defer checker.Close()

	nameValidator := profanity.NewNameValidator(checker, logger)

	// Initialize repositories
	productRepo := repository.NewProductRepository(pool, logger)
	menuRepo := repository.NewMenuRepository(pool, logger)
	menuGroupRepo := repository.NewMenuGroupRepository(pool, logger)

	// Initialize services
	consistency := service.NewPriceConsistency(menuRepo, productRepo, logger)
	productService := service.NewProductService(productRepo, nameValidator, consistency, logger)
	menuService := service.NewMenuService(menuRepo, menuGroupRepo, nameValidator, consistency, logger)
	menuGroupService := service.NewMenuGroupService(menuGroupRepo, logger)

	// Initialize HTTP handlers
	productHandler := handler.NewProductHandler(productService, logger)
	menuHandler := handler.NewMenuHandler(menuService, logger)
	menuGroupHandler := handler.NewMenuGroupHandler(menuGroupService, logger)

	// Initialize router
	mux := router.New(productHandler, menuHandler, menuGroupHandler, cfg.Auth.APIKey, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// newProfanityChecker builds the configured checker implementation. In
// wordlist mode the word files come from S3 when enabled, with a fallback to
// the local file system when the S3 loader cannot be initialised.
func newProfanityChecker(ctx context.Context, cfg config.ProfanityConfig, logger zerolog.Logger) (profanity.Checker, error) {
	switch cfg.Mode {
	case config.ProfanityModeRemote:
		logger.Info().Str("url", cfg.RemoteURL).Msg("using remote profanity checker")
		return profanity.NewRemoteChecker(&profanity.RemoteConfig{
			BaseURL: cfg.RemoteURL,
			Timeout: time.Duration(cfg.RemoteTimeout) * time.Second,
		}, logger), nil

	case config.ProfanityModeWordList:
		var loader profanity.Loader
		if cfg.S3.Enabled {
			s3Loader, err := profanity.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
			if err != nil {
				logger.Warn().
					Err(err).
					Msg("failed to initialise S3 loader, falling back to local file system")
				loader = profanity.NewFileLoader(logger)
			} else {
				loader = s3Loader
			}
		} else {
			loader = profanity.NewFileLoader(logger)
			logger.Info().Msg("using local file system for word-list files (S3 disabled)")
		}

		return profanity.NewWordListChecker(ctx, &profanity.WordListConfig{
			FilePaths: cfg.WordListPaths,
		}, loader, logger)

	default:
		return nil, fmt.Errorf("unknown profanity mode: %s", cfg.Mode)
	}
}
