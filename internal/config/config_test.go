package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	// Clear anything the host environment may carry.
	for _, key := range []string{"DATA_DIR", "PORT", "RENDER_URL", "RENDER_TIMEOUT", "CATALOG_RESCAN_INTERVAL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DataDir != "/data/weather" {
		t.Errorf("DataDir = %q, want /data/weather", cfg.DataDir)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.RenderURL != "http://weather-processor:8081/api/render" {
		t.Errorf("unexpected RenderURL %q", cfg.RenderURL)
	}
	if cfg.RenderTimeout != 15*time.Second {
		t.Errorf("RenderTimeout = %v, want 15s", cfg.RenderTimeout)
	}
	if cfg.CatalogRescanInterval != 15*time.Minute {
		t.Errorf("CatalogRescanInterval = %v, want 15m", cfg.CatalogRescanInterval)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATA_DIR", "/tmp/weather")
	t.Setenv("PORT", "9090")
	t.Setenv("RENDER_URL", "http://localhost:8081/api/render")
	t.Setenv("RENDER_TIMEOUT", "2s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DataDir != "/tmp/weather" || cfg.Port != "9090" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.RenderTimeout != 2*time.Second {
		t.Fatalf("RenderTimeout = %v, want 2s", cfg.RenderTimeout)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("RENDER_TIMEOUT", "soon")
	if _, err := Load(); err == nil {
		t.Fatal("expected an error for an unparseable RENDER_TIMEOUT")
	}
}

func TestLoadRejectsBadRenderURL(t *testing.T) {
	t.Setenv("RENDER_URL", "not a url")
	if _, err := Load(); err == nil {
		t.Fatal("expected a validation error for a malformed RENDER_URL")
	}
}
