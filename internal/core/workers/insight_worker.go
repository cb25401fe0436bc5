package workers

import (
	"context"
	"log"
	"time"

	"github.com/dhakad-labs/habitflow/internal/core/domain"
)

// InsightRefresher is the slice of the insight service the worker needs.
type InsightRefresher interface {
	Stale(ctx context.Context) (bool, error)
	Refresh(ctx context.Context, force bool) (*domain.InsightBundle, error)
}

// InsightWorker refreshes the cached insight bundle in the background once
// the 15-minute cooldown has lapsed. Refreshes triggered here are
// auto-triggered: an empty habit list is a silent no-op.
type InsightWorker struct {
	svc      InsightRefresher
	interval time.Duration
	kick     chan struct{}
}

func NewInsightWorker(svc InsightRefresher, interval time.Duration) *InsightWorker {
	return &InsightWorker{
		svc:      svc,
		interval: interval,
		kick:     make(chan struct{}, 1),
	}
}

func (w *InsightWorker) Start(ctx context.Context) {
	go func() {
		log.Println("Insight worker started in background...")
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				w.refreshIfStale(ctx)
			case <-w.kick:
				w.refreshIfStale(ctx)
			case <-ctx.Done():
				log.Println("Insight worker shutting down...")
				return
			}
		}
	}()
}

// Kick asks the worker to re-check staleness now instead of waiting for the
// next tick. Drops the request when one is already pending.
func (w *InsightWorker) Kick() {
	select {
	case w.kick <- struct{}{}:
	default:
	}
}

func (w *InsightWorker) refreshIfStale(ctx context.Context) {
	stale, err := w.svc.Stale(ctx)
	if err != nil {
		log.Printf("Insight worker staleness check failed: %v", err)
		return
	}
	if !stale {
		return
	}

	if _, err := w.svc.Refresh(ctx, false); err != nil {
		log.Printf("Insight worker refresh failed: %v", err)
	}
}
