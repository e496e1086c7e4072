package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestScannerReadsLayerConvention(t *testing.T) {
	root := t.TempDir()

	tempDir := filepath.Join(root, "temp_2m")
	if err := os.Mkdir(tempDir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, tempDir, "temp_2m_2025102712.nc")
	writeFile(t, tempDir, "temp_2m_2025102700.nc")

	mslpDir := filepath.Join(root, "mslp")
	if err := os.Mkdir(mslpDir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, mslpDir, "mslp_2025102706.nc")

	// A stray file at the root is not a layer.
	writeFile(t, root, "README.txt")

	snap, err := NewScanner(root).Scan()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(snap.Layers) != 2 {
		t.Fatalf("expected 2 layers, got %d", len(snap.Layers))
	}
	if snap.Layers[0].Name != "mslp" || snap.Layers[1].Name != "temp_2m" {
		t.Fatalf("unexpected layer order: %v, %v", snap.Layers[0].Name, snap.Layers[1].Name)
	}

	temp := snap.Layers[1]
	if len(temp.Files) != 2 {
		t.Fatalf("expected 2 files for temp_2m, got %d", len(temp.Files))
	}
	wantLatest := time.Date(2025, 10, 27, 12, 0, 0, 0, time.UTC)
	if !temp.Latest.Equal(wantLatest) {
		t.Fatalf("latest = %v, want %v", temp.Latest, wantLatest)
	}
}

func TestScannerMissingRoot(t *testing.T) {
	snap, err := NewScanner(filepath.Join(t.TempDir(), "nope")).Scan()
	if err == nil {
		t.Fatal("expected an error for a missing data root")
	}
	if len(snap.Layers) != 0 {
		t.Fatalf("expected an empty snapshot, got %d layers", len(snap.Layers))
	}
}

func TestParseRunStamp(t *testing.T) {
	ts, ok := parseRunStamp("temp_2m_2025102712.nc")
	if !ok {
		t.Fatal("expected a run stamp")
	}
	if !ts.Equal(time.Date(2025, 10, 27, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected stamp: %v", ts)
	}

	for _, name := range []string{"temp_2m.nc", "temp_2m_2025.nc", "temp_2m_2025992712.nc"} {
		if _, ok := parseRunStamp(name); ok {
			t.Errorf("did not expect a run stamp in %q", name)
		}
	}
}

func TestMemoryCatalogReplace(t *testing.T) {
	cat := NewMemoryCatalog()
	if got := cat.Current(); len(got.Layers) != 0 {
		t.Fatalf("expected an empty catalog, got %d layers", len(got.Layers))
	}

	cat.Replace(Snapshot{
		Layers:    []Layer{{Name: "temp_2m"}},
		ScannedAt: time.Now().UTC(),
	})
	if got := cat.Current(); len(got.Layers) != 1 || got.Layers[0].Name != "temp_2m" {
		t.Fatalf("unexpected snapshot after replace: %+v", got)
	}
}
