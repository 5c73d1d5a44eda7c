package cache

import (
	"context"
	"fmt"
	"time"

	"cortex-backend/internal/metrics"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const sweepTimeout = 30 * time.Second

// Sweeper periodically drops expired entries from a store
type Sweeper struct {
	store Store
	cron  *cron.Cron
}

// NewSweeper schedules store sweeps. schedule uses cron syntax, including descriptors like "@every 1m".
func NewSweeper(store Store, schedule string) (*Sweeper, error) {
	s := &Sweeper{
		store: store,
		cron:  cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
	}
	if _, err := s.cron.AddFunc(schedule, s.Run); err != nil {
		return nil, fmt.Errorf("invalid cache sweep schedule %q: %w", schedule, err)
	}
	return s, nil
}

// Start begins the schedule in the background
func (s *Sweeper) Start() {
	s.cron.Start()
}

// Stop halts the schedule and waits for a running sweep to finish
func (s *Sweeper) Stop() {
	<-s.cron.Stop().Done()
}

// Run performs one sweep
func (s *Sweeper) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	purged, err := s.store.Sweep(ctx)
	if err != nil {
		metrics.RecordCacheOp("sweep", "error")
		logrus.WithError(err).Error("Cache sweep failed")
		return
	}
	metrics.RecordCacheOp("sweep", "ok")
	if purged > 0 {
		logrus.WithField("purged", purged).Debug("Swept expired cache entries")
	}
}
