package engine

import (
	"context"

	"github.com/google/uuid"

	"github.com/nookscout/campus-seat-reservation/internal/model"
)

// Hold timing rules, in seconds.
const (
	holdDurationSec  = 600 // 10 minutes to walk over
	holdExtensionSec = 180 // one-time +3 minutes
)

// sweepHolds marks every active hold whose expiry has passed as
// expired, in place.  It reports whether anything changed so callers
// only rewrite the slot when needed.
func sweepHolds(nowMillis int64, holds []model.Hold) bool {
	changed := false
	for i := range holds {
		if holds[i].State == model.HoldStateActive && nowMillis > holds[i].ExpiresAt {
			holds[i].State = model.HoldStateExpired
			changed = true
		}
	}
	return changed
}

// loadHolds reads the hold collection, runs the expiry sweep against
// the engine clock and persists the collection when the sweep changed
// anything.  All hold operations go through here so time-driven
// transitions take effect before any read.
func (e *Engine) loadHolds(ctx context.Context) ([]model.Hold, error) {
	holds := e.store.Holds(ctx)
	if sweepHolds(e.nowMillis(), holds) {
		if err := e.store.SaveHolds(ctx, holds); err != nil {
			return nil, err
		}
	}
	return holds, nil
}

// StartHold places a time-boxed hold on a seat and marks the seat
// held.  One reservation at a time: if a non-terminal hold or an
// actively occupying session exists, ErrAlreadyActive is returned and
// nothing is written.
func (e *Engine) StartHold(ctx context.Context, seatID string) (*model.Hold, error) {
	holds, err := e.loadHolds(ctx)
	if err != nil {
		return nil, err
	}
	now := e.nowMillis()
	for i := range holds {
		if holds[i].State == model.HoldStateActive {
			return nil, ErrAlreadyActive
		}
	}
	sessions, err := e.loadSessions(ctx)
	if err != nil {
		return nil, err
	}
	for i := range sessions {
		if sessions[i].OccupyingAt(now) {
			return nil, ErrAlreadyActive
		}
	}

	hold := model.Hold{
		ID:          uuid.NewString(),
		SeatID:      seatID,
		StartedAt:   now,
		DurationSec: holdDurationSec,
		ExpiresAt:   now + holdDurationSec*1000,
		State:       model.HoldStateActive,
	}
	holds = append(holds, hold)
	if err := e.store.SaveHolds(ctx, holds); err != nil {
		return nil, err
	}

	states := e.store.SeatStates(ctx)
	states[seatID] = model.SeatState{Held: true, Occupied: false}
	if err := e.store.SaveSeatStates(ctx, states); err != nil {
		return nil, err
	}
	return &hold, nil
}

// ExtendHold applies the one-time +3 minute extension.  The new
// expiry is recomputed from the original StartedAt, so the absolute
// deadline is the same no matter when during the hold the extension
// is requested.  Returns ErrNotFound for an unknown id and
// ErrNotApplicable once the hold is extended, expired or arrived.
func (e *Engine) ExtendHold(ctx context.Context, holdID string) (*model.Hold, error) {
	holds, err := e.loadHolds(ctx)
	if err != nil {
		return nil, err
	}
	i := findHold(holds, holdID)
	if i < 0 {
		return nil, ErrNotFound
	}
	if holds[i].Extended || holds[i].State != model.HoldStateActive {
		return nil, ErrNotApplicable
	}
	holds[i].Extended = true
	holds[i].DurationSec += holdExtensionSec
	holds[i].ExpiresAt = holds[i].StartedAt + int64(holds[i].DurationSec)*1000
	if err := e.store.SaveHolds(ctx, holds); err != nil {
		return nil, err
	}
	h := holds[i]
	return &h, nil
}

// ArriveAndVerify converts a hold into an occupancy session.  Arrival
// verification is authoritative over the expiry flag: the hold is
// marked arrived even when the sweep had already expired it.  The
// seat flips from held to occupied and the new 45-minute session is
// returned.
func (e *Engine) ArriveAndVerify(ctx context.Context, holdID string) (*model.Session, error) {
	holds, err := e.loadHolds(ctx)
	if err != nil {
		return nil, err
	}
	i := findHold(holds, holdID)
	if i < 0 {
		return nil, ErrNotFound
	}
	holds[i].State = model.HoldStateArrived
	if err := e.store.SaveHolds(ctx, holds); err != nil {
		return nil, err
	}
	session, err := e.beginSession(ctx, holds[i].SeatID)
	if err != nil {
		return nil, err
	}

	states := e.store.SeatStates(ctx)
	states[holds[i].SeatID] = model.SeatState{Held: false, Occupied: true}
	if err := e.store.SaveSeatStates(ctx, states); err != nil {
		return nil, err
	}
	return session, nil
}

// CancelHold expires a hold and releases its seat's held flag,
// leaving any occupancy flag untouched.  Unknown ids are a no-op so
// the call is safe to retry.
func (e *Engine) CancelHold(ctx context.Context, holdID string) error {
	holds, err := e.loadHolds(ctx)
	if err != nil {
		return err
	}
	i := findHold(holds, holdID)
	if i < 0 {
		return nil
	}
	holds[i].State = model.HoldStateExpired
	if err := e.store.SaveHolds(ctx, holds); err != nil {
		return err
	}
	states := e.store.SeatStates(ctx)
	if st, ok := states[holds[i].SeatID]; ok {
		st.Held = false
		states[holds[i].SeatID] = st
		if err := e.store.SaveSeatStates(ctx, states); err != nil {
			return err
		}
	}
	return nil
}

// ActiveHold returns the current hold: the first record in storage
// order that is active and not past expiry, or nil when there is
// none.  Under the one-reservation policy at most one such hold
// exists, but the query does not assume it.
func (e *Engine) ActiveHold(ctx context.Context) (*model.Hold, error) {
	holds, err := e.loadHolds(ctx)
	if err != nil {
		return nil, err
	}
	now := e.nowMillis()
	for i := range holds {
		if holds[i].State == model.HoldStateActive && now <= holds[i].ExpiresAt {
			h := holds[i]
			return &h, nil
		}
	}
	return nil, nil
}

// findHold returns the index of the hold with the given id, or -1.
func findHold(holds []model.Hold, id string) int {
	for i := range holds {
		if holds[i].ID == id {
			return i
		}
	}
	return -1
}
