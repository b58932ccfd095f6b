package store

import (
	"context"
	"encoding/json"
	"log"

	"github.com/nookscout/campus-seat-reservation/internal/model"
)

// Slot keys.  One JSON document per concern; the engine always reads
// the whole document, edits in memory and writes it back whole.
const (
	slotFilters    = "nookscout:filters"
	slotHolds      = "nookscout:holds"
	slotSessions   = "nookscout:sessions"
	slotSeatStates = "nookscout:seat-states"
)

// Gateway is the typed persistence layer over a KV backend.  Reads
// degrade to documented defaults when a slot is absent, unparsable or
// the backend is unreachable, so a cold or corrupted store behaves
// like an empty one.  Writes do not degrade; a failed write surfaces
// to the caller.
type Gateway struct {
	kv KV
}

// NewGateway returns a Gateway over the given backend.
func NewGateway(kv KV) *Gateway {
	if kv == nil {
		panic("nil kv passed to NewGateway")
	}
	return &Gateway{kv: kv}
}

// load reads a slot into dst, reporting whether dst was populated.
// Absent slots, decode failures and backend errors all leave dst
// untouched; backend and decode problems are logged since they are
// operational signals, not business outcomes.
func (g *Gateway) load(ctx context.Context, slot string, dst any) bool {
	b, err := g.kv.Get(ctx, slot)
	if err != nil {
		log.Printf("store: read %s failed, using defaults: %v", slot, err)
		return false
	}
	if b == nil {
		return false
	}
	if err := json.Unmarshal(b, dst); err != nil {
		log.Printf("store: slot %s holds invalid JSON, using defaults: %v", slot, err)
		return false
	}
	return true
}

// save marshals v and overwrites the slot.
func (g *Gateway) save(ctx context.Context, slot string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return g.kv.Set(ctx, slot, b)
}

// Filters returns the persisted filter preferences.  Stored values
// are merged over the defaults so documents written before a filter
// field existed still load cleanly.
func (g *Gateway) Filters(ctx context.Context) model.Filters {
	f := model.DefaultFilters()
	g.load(ctx, slotFilters, &f)
	return f
}

// SaveFilters overwrites the filter slot.
func (g *Gateway) SaveFilters(ctx context.Context, f model.Filters) error {
	return g.save(ctx, slotFilters, f)
}

// Holds returns the full hold collection in storage order, empty when
// the slot is absent or unreadable.
func (g *Gateway) Holds(ctx context.Context) []model.Hold {
	var holds []model.Hold
	if !g.load(ctx, slotHolds, &holds) {
		return []model.Hold{}
	}
	return holds
}

// SaveHolds overwrites the hold collection.
func (g *Gateway) SaveHolds(ctx context.Context, holds []model.Hold) error {
	return g.save(ctx, slotHolds, holds)
}

// Sessions returns the full session collection in storage order.
func (g *Gateway) Sessions(ctx context.Context) []model.Session {
	var sessions []model.Session
	if !g.load(ctx, slotSessions, &sessions) {
		return []model.Session{}
	}
	return sessions
}

// SaveSessions overwrites the session collection.
func (g *Gateway) SaveSessions(ctx context.Context, sessions []model.Session) error {
	return g.save(ctx, slotSessions, sessions)
}

// SeatStates returns the per-seat transient-flags map, empty when
// the slot is absent or unreadable.
func (g *Gateway) SeatStates(ctx context.Context) map[string]model.SeatState {
	states := make(map[string]model.SeatState)
	g.load(ctx, slotSeatStates, &states)
	if states == nil {
		states = make(map[string]model.SeatState)
	}
	return states
}

// SaveSeatStates overwrites the seat-state map.
func (g *Gateway) SaveSeatStates(ctx context.Context, states map[string]model.SeatState) error {
	return g.save(ctx, slotSeatStates, states)
}
