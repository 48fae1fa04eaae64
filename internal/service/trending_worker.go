package service

import (
	"context"
	"log"
	"time"
)

// TrendingWorker is a periodic background job that keeps the trending cache
// warm for the configured regions, so interactive requests rarely pay the
// upstream latency.
type TrendingWorker struct {
	svc      *TrendingService
	regions  []string
	interval time.Duration
	stopCh   chan struct{}
}

// NewTrendingWorker creates a worker that ticks every interval.
func NewTrendingWorker(svc *TrendingService, regions []string, interval time.Duration) *TrendingWorker {
	return &TrendingWorker{
		svc:      svc,
		regions:  regions,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the refresh loop. It runs one tick immediately, then every
// interval.
func (w *TrendingWorker) Start(ctx context.Context) {
	log.Printf("trending-worker: starting (interval=%s, regions=%v)", w.interval, w.regions)

	w.tick(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.tick(ctx)
		case <-ctx.Done():
			log.Println("trending-worker: stopping (context cancelled)")
			return
		case <-w.stopCh:
			log.Println("trending-worker: stopping (stop signal)")
			return
		}
	}
}

// Stop signals the worker to stop.
func (w *TrendingWorker) Stop() {
	close(w.stopCh)
}

// tick refreshes every configured region once.
func (w *TrendingWorker) tick(ctx context.Context) {
	start := time.Now()

	refreshed := 0
	for _, region := range w.regions {
		resp := w.svc.Topics(ctx, region)
		if resp.Source != "fallback" {
			refreshed++
		}
	}

	log.Printf("trending-worker: tick complete — %d/%d regions refreshed (%s)",
		refreshed, len(w.regions), time.Since(start).Round(time.Millisecond))
}
