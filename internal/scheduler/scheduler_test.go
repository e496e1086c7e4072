package scheduler

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/weatherviz/wms-gateway/internal/catalog"
)

func TestStartPrimesCatalog(t *testing.T) {
	root := t.TempDir()
	layerDir := filepath.Join(root, "temp_2m")
	if err := os.Mkdir(layerDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(layerDir, "temp_2m_2025102712.nc"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	cat := catalog.NewMemoryCatalog()
	sched := New(cat, catalog.NewScanner(root), 15*time.Minute)
	if err := sched.Start(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer sched.Stop()

	snap := cat.Current()
	if len(snap.Layers) != 1 || snap.Layers[0].Name != "temp_2m" {
		t.Fatalf("expected the startup scan to populate the catalog, got %+v", snap)
	}
}

func TestStartWithMissingRoot(t *testing.T) {
	cat := catalog.NewMemoryCatalog()
	sched := New(cat, catalog.NewScanner(filepath.Join(t.TempDir(), "nope")), 15*time.Minute)
	if err := sched.Start(); err != nil {
		t.Fatalf("a missing data root must not fail startup: %v", err)
	}
	defer sched.Stop()

	if got := cat.Current(); len(got.Layers) != 0 {
		t.Fatalf("expected an empty catalog, got %+v", got)
	}
}
