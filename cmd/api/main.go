package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/fairyhunter13/subscription-admin/internal/config"
	"github.com/fairyhunter13/subscription-admin/internal/handler"
	"github.com/fairyhunter13/subscription-admin/internal/metrics"
	"github.com/fairyhunter13/subscription-admin/internal/repository"
	"github.com/fairyhunter13/subscription-admin/internal/service"
	"github.com/fairyhunter13/subscription-admin/internal/upstream"
	"github.com/fairyhunter13/subscription-admin/internal/validator"
	"github.com/fairyhunter13/subscription-admin/pkg/database"
	"github.com/fairyhunter13/subscription-admin/pkg/telemetry"
)

func main() {
	// Load configuration first
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Initialize zerolog based on configuration
	initLogger(cfg)

	// Create context for startup
	ctx := context.Background()

	shutdownTracing, err := telemetry.Setup(ctx, telemetry.Options{
		Endpoint:    cfg.Telemetry.Endpoint,
		ServiceName: cfg.Telemetry.ServiceName,
		Insecure:    cfg.Telemetry.Insecure,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up tracing")
	}

	// Initialize database pool with retry
	pool, err := database.NewPool(ctx, cfg.DB.DSN(), 5)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Initialize Fiber with production-ready configuration
	app := fiber.New(fiber.Config{
		AppName:      "Subscription Admin",
		ReadTimeout:  30 * time.Second,  // Max time to read request
		WriteTimeout: 30 * time.Second,  // Max time to write response
		IdleTimeout:  120 * time.Second, // Max time for keep-alive connections
		BodyLimit:    1 * 1024 * 1024,   // 1MB body limit (explicit, prevents large payloads)
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New()) // Adds X-Request-ID header to all requests
	app.Use(logger.New())
	app.Use(metrics.Middleware())

	validate := validator.New()
	perPage := cfg.View.ItemsPerPage

	// Remote API client; the token store is replaced on every login
	tokens := upstream.NewTokenStore(cfg.Upstream.Token)
	client := upstream.NewClient(upstream.Options{
		BaseURL:     cfg.Upstream.BaseURL,
		Timeout:     cfg.Upstream.Timeout,
		Credentials: tokens,
	})

	// Dispatch log (layered architecture)
	dispatchRepo := repository.NewDispatchRepository(pool)
	recipientRepo := repository.NewRecipientRepository(pool)
	dispatchService := service.NewDispatchService(pool, dispatchRepo, recipientRepo, perPage)

	customerService := service.NewCustomerService(client, perPage)
	historyService := service.NewHistoryService(client, perPage)
	couponService := service.NewCouponService(client, perPage)
	packageService := service.NewPackageService(client)
	notificationService := service.NewNotificationService(client, dispatchService)
	authService := service.NewAuthService(client, tokens)

	healthHandler := handler.NewHealthHandler(pool, tokens)
	authHandler := handler.NewAuthHandler(authService, validate)
	customerHandler := handler.NewCustomerHandler(customerService)
	notificationHandler := handler.NewNotificationHandler(notificationService, customerService, validate)
	historyHandler := handler.NewHistoryHandler(historyService)
	couponHandler := handler.NewCouponHandler(couponService, validate)
	packageHandler := handler.NewPackageHandler(packageService, validate)
	dispatchHandler := handler.NewDispatchHandler(dispatchService)

	app.Get("/health", healthHandler.Check)
	app.Get("/metrics", metrics.Handler())

	api := app.Group("/api")
	api.Post("/auth/login", authHandler.Login)
	api.Get("/customers", customerHandler.List)
	api.Get("/notifications/audience", notificationHandler.Audience)
	api.Post("/notifications/send", notificationHandler.Send)
	api.Post("/notifications/send-by-subscription", notificationHandler.SendBySubscription)
	api.Get("/notifications/history", historyHandler.List)
	api.Get("/coupons", couponHandler.List)
	api.Post("/coupons", couponHandler.Create)
	api.Get("/packages", packageHandler.Plans)
	api.Put("/packages/:id", packageHandler.Update)
	api.Get("/dispatches", dispatchHandler.List)
	api.Get("/dispatches/:id", dispatchHandler.Get)

	// Start server with graceful shutdown
	go func() {
		log.Info().
			Str("port", cfg.Server.Port).
			Str("upstream", cfg.Upstream.BaseURL).
			Int("items_per_page", perPage).
			Msg("starting server")
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("received shutdown signal")
	log.Info().Int("timeout_seconds", cfg.Server.ShutdownTimeout).Msg("shutting down server...")

	// Create shutdown context with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer shutdownCancel()

	// Shutdown server (waits for in-flight requests)
	log.Info().Msg("waiting for in-flight requests to complete...")
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}

	// Close database pool AFTER server shutdown (even if shutdown timed out)
	log.Info().Msg("closing database connections...")
	pool.Close()
	log.Info().Msg("database connections closed")

	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error flushing traces")
	}
	log.Info().Msg("server stopped")
}

// initLogger configures zerolog based on the application configuration.
func initLogger(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Log.Pretty {
		// Human-readable output for development
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).
			With().Timestamp().Logger()
	} else {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}
}
