package cmd

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	httpapi "github.com/i474232898/weather-lookup/internal/api/http"
	"github.com/i474232898/weather-lookup/internal/config"
	"github.com/i474232898/weather-lookup/internal/landmarks"
	"github.com/i474232898/weather-lookup/internal/records"
	"github.com/i474232898/weather-lookup/internal/scheduler"
	"github.com/i474232898/weather-lookup/internal/store"
)

const serviceName = "weather-lookup"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the live record refresher",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	catalog := landmarks.NewCatalog()
	weatherSvc := newWeatherService(cfg, catalog)

	recordStore, closeStore, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	recordSvc := records.NewService(weatherSvc, recordStore)

	// Scheduler that periodically refetches live records.
	sched := scheduler.New(recordSvc, cfg.RefreshInterval, cfg.RefreshTimeout)
	if err := sched.Start(); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}
	defer sched.Stop()

	app := newApp()
	httpapi.RegisterRoutes(app, weatherSvc, recordSvc, catalog)

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		log.Printf("INFO: listening on :%s (provider %s)", cfg.Port, cfg.Provider)
		if err := app.Listen(":" + cfg.Port); err != nil {
			return fmt.Errorf("fiber server stopped: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		<-egCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("ERROR: during shutdown: %v", err)
		}
		return nil
	})
	return eg.Wait()
}

// newApp builds the fiber app with global middleware and the health probe.
func newApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               serviceName,
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          30 * time.Second,
		ErrorHandler:          httpapi.ErrorHandler,
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": serviceName,
		})
	})
	return app
}

// openStore picks MongoDB when a URI is configured and the in-memory store
// otherwise. The returned func releases the store.
func openStore(ctx context.Context, cfg *config.AppConfig) (records.Store, func(), error) {
	if cfg.MongoURI == "" {
		log.Printf("INFO: using in-memory record store (max %d records)", cfg.StoreMaxRecords)
		return store.NewMemoryStore(cfg.StoreMaxRecords), func() {}, nil
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	mongoStore, err := store.NewMongoStore(connectCtx, cfg.MongoURI, cfg.MongoDatabase, cfg.MongoCollection)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	log.Printf("INFO: using mongodb record store %s.%s", cfg.MongoDatabase, cfg.MongoCollection)

	return mongoStore, func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoStore.Close(closeCtx); err != nil {
			log.Printf("ERROR: closing mongodb: %v", err)
		}
	}, nil
}
