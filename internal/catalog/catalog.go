// Package catalog tracks the datasets the acquisition pipeline leaves on disk
// under the data root, laid out as <layer>/<file> with a run timestamp
// embedded in the file name (e.g. temp_2m/temp_2m_2025102712.nc). The gateway
// only reads this convention; it never writes to the data root.
package catalog

import (
	"sync"
	"time"
)

// DatasetFile is one time-stamped file belonging to a layer.
type DatasetFile struct {
	Name string `json:"name"`
	// Time is the run timestamp parsed from the file name; zero when the name
	// carries none.
	Time time.Time `json:"time,omitempty"`
	Size int64     `json:"sizeBytes"`
}

// Layer groups the files of one weather parameter.
type Layer struct {
	Name  string        `json:"name"`
	Files []DatasetFile `json:"files"`
	// Latest is the newest run timestamp across Files; zero when none parsed.
	Latest time.Time `json:"latest,omitempty"`
}

// Snapshot is one complete scan of the data root.
type Snapshot struct {
	Layers    []Layer   `json:"layers"`
	ScannedAt time.Time `json:"scannedAt"`
}

// MemoryCatalog is a concurrency-safe holder for the most recent scan. The
// WMS request path never depends on it; it only backs the /datasets listing.
type MemoryCatalog struct {
	mu      sync.RWMutex
	current Snapshot
}

// NewMemoryCatalog creates an empty catalog.
func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{}
}

// Replace swaps in a complete new snapshot.
func (c *MemoryCatalog) Replace(s Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = s
}

// Current returns the most recent snapshot.
func (c *MemoryCatalog) Current() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}
