package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/weatherviz/wms-gateway/internal/api/http"
	"github.com/weatherviz/wms-gateway/internal/catalog"
	"github.com/weatherviz/wms-gateway/internal/config"
	"github.com/weatherviz/wms-gateway/internal/render"
	"github.com/weatherviz/wms-gateway/internal/scheduler"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound render calls.
	httpClient := &http.Client{
		Timeout: cfg.RenderTimeout,
	}
	renderer := render.NewClient(cfg.RenderURL, httpClient)

	// Dataset catalog kept fresh by a periodic rescan of the data root.
	cat := catalog.NewMemoryCatalog()
	sched := scheduler.New(cat, catalog.NewScanner(cfg.DataDir), cfg.CatalogRescanInterval)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "wms-gateway",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          30 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware. The gateway is called cross-origin from a browser
	// map client, so CORS is wide open.
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,HEAD,OPTIONS",
		AllowHeaders: "*",
	}))

	// WMS, health and catalog routes.
	httpapi.RegisterRoutes(app, cfg, renderer, cat)

	log.Printf("starting WMS gateway on port %s", cfg.Port)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
