// Package engine implements the reservation lifecycle: seat ranking,
// time-boxed holds, occupancy sessions, and conflict resolution when a
// held seat turns out to be taken.  Every operation is a synchronous
// read-modify-write against the persistence gateway; expiry and grace
// transitions are pulled by sweeps that run before reads, never by
// background timers, so the engine stays deterministic under an
// injected clock.
package engine

import (
	"context"
	"time"

	"github.com/nookscout/campus-seat-reservation/internal/catalog"
	"github.com/nookscout/campus-seat-reservation/internal/model"
	"github.com/nookscout/campus-seat-reservation/internal/store"
)

// FlagPublisher receives seat flag notifications destined for staff
// review.  The RabbitMQ publisher in the service package implements
// it; the engine treats publishing as best-effort.
type FlagPublisher interface {
	SeatFlagged(ctx context.Context, seatID string, at time.Time) error
}

// Engine ties the static catalog, the persistence gateway and the
// lifecycle rules together.  It assumes a single acting user per
// persisted state: concurrent writers are last-write-wins, which is an
// accepted limitation rather than a guarantee.
type Engine struct {
	store *store.Gateway
	flags FlagPublisher
	now   func() time.Time
	seats func() []model.SeatCluster
}

// New returns an Engine over the given gateway.  flags may be nil,
// in which case seat flags are only logged.
func New(gateway *store.Gateway, flags FlagPublisher) *Engine {
	if gateway == nil {
		panic("nil gateway passed to engine.New")
	}
	return &Engine{
		store: gateway,
		flags: flags,
		now:   time.Now,
		seats: catalog.SeatClusters,
	}
}

// WithClock replaces the engine's time source and returns the engine.
// Tests use it to drive expiry and grace windows deterministically.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// WithCatalog replaces the seat-catalog source and returns the
// engine.  Tests use it to rank against synthetic catalogs.
func (e *Engine) WithCatalog(seats func() []model.SeatCluster) *Engine {
	e.seats = seats
	return e
}

// nowMillis returns the current engine time as a millisecond Unix
// epoch, the unit all persisted timestamps use.
func (e *Engine) nowMillis() int64 {
	return e.now().UnixMilli()
}

// Refresh runs the hold expiry sweep and the session grace sweep,
// persisting any transitions.  The presentation layer calls this on
// its polling tick; the Active* queries also sweep implicitly.
func (e *Engine) Refresh(ctx context.Context) error {
	if _, err := e.loadHolds(ctx); err != nil {
		return err
	}
	_, err := e.loadSessions(ctx)
	return err
}
