package catalog

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"time"
)

// runStampRe matches the trailing YYYYMMDDHH run timestamp the data fetcher
// embeds in file names, e.g. temp_2m_2025102712.nc.
var runStampRe = regexp.MustCompile(`_(\d{10})\.[A-Za-z0-9]+$`)

const runStampLayout = "2006010215"

// Scanner reads the <layer>/<file> convention under the data root.
type Scanner struct {
	dataDir string
}

// NewScanner creates a scanner for the given data root.
func NewScanner(dataDir string) *Scanner {
	return &Scanner{dataDir: dataDir}
}

// Scan walks one directory level under the data root: each subdirectory is a
// layer, each regular file inside it a dataset file. A missing or unreadable
// root yields an empty snapshot alongside the error so callers can keep
// serving with whatever they have.
func (s *Scanner) Scan() (Snapshot, error) {
	snap := Snapshot{ScannedAt: time.Now().UTC()}

	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		return snap, err
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		layer, err := s.scanLayer(entry.Name())
		if err != nil {
			// Skip unreadable layer directories; a partial catalog beats none.
			continue
		}
		if len(layer.Files) > 0 {
			snap.Layers = append(snap.Layers, layer)
		}
	}

	sort.Slice(snap.Layers, func(i, j int) bool {
		return snap.Layers[i].Name < snap.Layers[j].Name
	})
	return snap, nil
}

func (s *Scanner) scanLayer(name string) (Layer, error) {
	layer := Layer{Name: name}

	files, err := os.ReadDir(filepath.Join(s.dataDir, name))
	if err != nil {
		return layer, err
	}

	for _, f := range files {
		if f.IsDir() {
			continue
		}
		df := DatasetFile{Name: f.Name()}
		if info, err := f.Info(); err == nil {
			df.Size = info.Size()
		}
		if ts, ok := parseRunStamp(f.Name()); ok {
			df.Time = ts
			if ts.After(layer.Latest) {
				layer.Latest = ts
			}
		}
		layer.Files = append(layer.Files, df)
	}

	sort.Slice(layer.Files, func(i, j int) bool {
		return layer.Files[i].Name < layer.Files[j].Name
	})
	return layer, nil
}

func parseRunStamp(name string) (time.Time, bool) {
	m := runStampRe.FindStringSubmatch(name)
	if m == nil {
		return time.Time{}, false
	}
	ts, err := time.Parse(runStampLayout, m[1])
	if err != nil {
		return time.Time{}, false
	}
	return ts.UTC(), true
}
