package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"eventure/internal/pkg/clock"
	"eventure/internal/pkg/config"
	"eventure/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// Reconciler keeps an in-memory snapshot of the scooter catalog, refreshed on
// a fixed interval. DB is the source of truth: a failed poll keeps the
// previous snapshot and flags it stale until the next successful poll.
//
// Booking confirmations apply an optimistic decrement so the listing reflects
// the sale immediately. The next poll overwrites it either way.
type Reconciler struct {
	store  queries.ScooterReadStore
	clock  clock.Clock
	logger *slog.Logger
	cron   *cron.Cron

	mu      sync.RWMutex
	listing queries.CatalogListing

	interval string
}

func NewReconciler(store queries.ScooterReadStore, cfg config.CatalogConfig, clk clock.Clock, logger *slog.Logger) *Reconciler {
	return &Reconciler{
		store:    store,
		clock:    clk,
		logger:   logger,
		cron:     cron.New(),
		interval: fmt.Sprintf("@every %s", cfg.PollInterval),
	}
}

// Start performs an initial fetch and begins polling.
func (r *Reconciler) Start(ctx context.Context) error {
	r.refresh(ctx)

	if _, err := r.cron.AddFunc(r.interval, func() {
		r.refresh(context.Background())
	}); err != nil {
		return err
	}
	r.cron.Start()
	return nil
}

// Stop halts polling and waits for an in-flight refresh to finish.
func (r *Reconciler) Stop() {
	<-r.cron.Stop().Done()
}

func (r *Reconciler) refresh(ctx context.Context) {
	scooters, err := r.store.FindAll(ctx)
	if err != nil {
		r.mu.Lock()
		r.listing.Stale = true
		r.mu.Unlock()
		r.logger.Warn("catalog poll failed, serving stale snapshot", "error", err)
		return
	}

	r.mu.Lock()
	r.listing = queries.CatalogListing{
		Scooters:  scooters,
		FetchedAt: r.clock.Now(),
		Stale:     false,
	}
	r.mu.Unlock()
}

// Listing returns the current snapshot. The slice is copied; the views behind
// it are treated as immutable once published.
func (r *Reconciler) Listing() *queries.CatalogListing {
	r.mu.RLock()
	defer r.mu.RUnlock()

	scooters := make([]*queries.ScooterView, len(r.listing.Scooters))
	copy(scooters, r.listing.Scooters)

	return &queries.CatalogListing{
		Scooters:  scooters,
		FetchedAt: r.listing.FetchedAt,
		Stale:     r.listing.Stale,
	}
}

// ApplyBookingDecrement lowers the snapshot availability for one scooter
// ahead of the next poll. It never goes below zero.
func (r *Reconciler) ApplyBookingDecrement(scooterID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, view := range r.listing.Scooters {
		if view.ID != scooterID {
			continue
		}
		if view.Available > 0 {
			updated := *view
			updated.Available--
			r.listing.Scooters[i] = &updated
		}
		return
	}
}

// Invalidate forces an immediate refresh, bypassing the poll interval.
func (r *Reconciler) Invalidate(ctx context.Context) {
	r.refresh(ctx)
}
