package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/rs/zerolog"

	"shomee/internal/config"
	"shomee/internal/handlers"
	"shomee/internal/logger"
	"shomee/internal/middleware"
	"shomee/internal/store"
	"shomee/pkg/rabbitmq"
)

// newApp wires middleware and handlers into a Fiber app. Split out from
// main so tests can build the app against an in-memory store.
func newApp(cfg config.Config, st store.Store, publisher handlers.LeadPublisher, log zerolog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "Shomee Spices API",
	})

	// --- Middleware ---
	app.Use(middleware.RequestLogger(log))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
	}))

	// --- API Routes ---
	handlers.NewSystemHandler(st, log).RegisterRoutes(app)
	handlers.NewProductHandler(st, log).RegisterRoutes(app)
	handlers.NewLeadHandler(st, publisher, log).RegisterRoutes(app)

	return app
}

func main() {
	// --- Configuration ---
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	// --- Initialize Document Store ---
	st, err := store.New(store.Config{
		Backend:  cfg.StoreBackend,
		URL:      cfg.DatabaseURL,
		Database: cfg.DatabaseName,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize document store")
	}

	// --- Initialize RabbitMQ Client (optional) ---
	// Lead capture works without a broker; events are simply not published.
	var publisher handlers.LeadPublisher
	if cfg.AMQPURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.AMQPURL}, log)
		if err != nil {
			log.Warn().Err(err).Msg("Lead event publishing disabled")
		} else {
			publisher = mqClient
			defer mqClient.Close()
		}
	}

	app := newApp(cfg, st, publisher, log)

	// --- Start HTTP Server ---
	log.Info().Str("port", cfg.Port).Msg("Starting server")

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	<-quit
	log.Info().Msg("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("Error during Fiber shutdown")
	}
	if err := st.Close(context.Background()); err != nil {
		log.Error().Err(err).Msg("Error closing document store")
	}

	log.Info().Msg("Server gracefully stopped")
}
