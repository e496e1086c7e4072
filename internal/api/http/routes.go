package httpapi

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/weatherviz/wms-gateway/internal/catalog"
	"github.com/weatherviz/wms-gateway/internal/config"
	"github.com/weatherviz/wms-gateway/internal/render"
	"github.com/weatherviz/wms-gateway/internal/wms"
)

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, cfg *config.AppConfig, renderer *render.Client, cat *catalog.MemoryCatalog) {
	wmsHandler := func(c *fiber.Ctx) error {
		dataset := c.Params("*")
		request := c.Query("REQUEST")
		log.Printf("WMS request: %s, dataset: %s", request, dataset)

		switch request {
		case "GetCapabilities":
			return handleGetCapabilities(c)
		case "GetMap":
			return handleGetMap(c, cfg, renderer, dataset)
		case "GetFeatureInfo":
			return handleGetFeatureInfo(c, dataset)
		default:
			return fiber.NewError(fiber.StatusBadRequest,
				"Invalid REQUEST parameter. Use GetCapabilities, GetMap, or GetFeatureInfo")
		}
	}

	app.Get("/wms", wmsHandler)
	app.Get("/wms/*", wmsHandler)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"service": "wms-gateway",
			"time":    time.Now().UTC().Format(time.RFC3339),
			"config": fiber.Map{
				"dataDir":   cfg.DataDir,
				"port":      cfg.Port,
				"renderUrl": cfg.RenderURL,
			},
		})
	})

	app.Get("/datasets", func(c *fiber.Ctx) error {
		return c.JSON(cat.Current())
	})
}

func handleGetCapabilities(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/xml")
	return c.SendString(wms.Capabilities(time.Now()))
}

func handleGetMap(c *fiber.Ctx, cfg *config.AppConfig, renderer *render.Client, dataset string) error {
	req := wms.ParseGetMap(func(key string) string { return c.Query(key) }, dataset)

	ctx, cancel := context.WithTimeout(c.UserContext(), cfg.RenderTimeout)
	defer cancel()

	res, err := renderer.Render(ctx, req)
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, fmt.Sprintf("render backend error: %v", err))
	}

	if res.StatusCode != http.StatusOK {
		// Relay the backend's own error body verbatim.
		return c.Status(fiber.StatusBadGateway).Send(res.Body)
	}

	// The backend always returns PNG on success.
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(res.Body)
}

func handleGetFeatureInfo(c *fiber.Ctx, dataset string) error {
	return c.JSON(fiber.Map{
		"dataset": dataset,
		"value":   nil,
		"info":    "not implemented",
	})
}
