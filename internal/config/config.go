package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var validate = validator.New()

// AppConfig is the immutable process-wide configuration, built once at
// startup and passed into the router and clients. Handlers never read
// environment variables themselves.
type AppConfig struct {
	// DataDir is the root the acquisition pipeline writes datasets under.
	DataDir string `validate:"required"`

	Port string `validate:"required,numeric"`

	// RenderURL is the full render endpoint of the backend.
	RenderURL string `validate:"required,url"`

	// RenderTimeout bounds each outbound render call.
	RenderTimeout time.Duration `validate:"required"`

	// CatalogRescanInterval controls how often the data root is rescanned.
	CatalogRescanInterval time.Duration `validate:"required"`
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{
		DataDir:   getenvDefault("DATA_DIR", "/data/weather"),
		Port:      getenvDefault("PORT", "8080"),
		RenderURL: getenvDefault("RENDER_URL", "http://weather-processor:8081/api/render"),
	}

	renderTimeout, err := time.ParseDuration(getenvDefault("RENDER_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("invalid RENDER_TIMEOUT: %w", err)
	}
	cfg.RenderTimeout = renderTimeout

	rescan, err := time.ParseDuration(getenvDefault("CATALOG_RESCAN_INTERVAL", "15m"))
	if err != nil {
		return nil, fmt.Errorf("invalid CATALOG_RESCAN_INTERVAL: %w", err)
	}
	cfg.CatalogRescanInterval = rescan

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
