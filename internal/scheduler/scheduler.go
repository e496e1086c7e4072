package scheduler

import (
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/weatherviz/wms-gateway/internal/catalog"
)

// Scheduler periodically rescans the data root and publishes the result to
// the catalog.
type Scheduler struct {
	scheduler *gocron.Scheduler
	scanner   *catalog.Scanner
	catalog   *catalog.MemoryCatalog
	interval  time.Duration
}

// New creates a new Scheduler.
func New(cat *catalog.MemoryCatalog, scanner *catalog.Scanner, interval time.Duration) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		scanner:   scanner,
		catalog:   cat,
		interval:  interval,
	}
}

// Start runs one scan immediately, schedules the periodic rescan, and starts
// the underlying scheduler.
func (s *Scheduler) Start() error {
	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 15
	}

	s.runScan()

	_, err := s.scheduler.Every(minutes).Minutes().Do(s.runScan)
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

func (s *Scheduler) runScan() {
	snap, err := s.scanner.Scan()
	if err != nil {
		log.Printf("scheduler: catalog scan failed: %v", err)
	}
	s.catalog.Replace(snap)
	log.Printf("scheduler: catalog rescan completed, %d layers", len(snap.Layers))
}
