package engine

import (
	"context"
	"log"

	"github.com/nookscout/campus-seat-reservation/internal/model"
)

// Resolution is the user's answer to "someone is sitting at your held
// seat".  Exactly two answers are valid; anything else is rejected
// with no side effects.
type Resolution string

const (
	// ResolutionOccupantLeft: the occupant cleared out.  The seat is
	// released and the hold stays valid so the user can proceed to
	// arrival verification.
	ResolutionOccupantLeft Resolution = "occupant_left"
	// ResolutionOccupantRemains: the occupant is staying.  The hold
	// is cancelled, the seat is reset and flagged for staff review,
	// and the user picks a different seat from the ranking.
	ResolutionOccupantRemains Resolution = "occupant_remains"
)

// ResolveConflict mediates a held seat found occupied on arrival.
// The hold must exist and still be active; resolving against an
// expired or arrived hold returns ErrNotApplicable.
func (e *Engine) ResolveConflict(ctx context.Context, holdID string, res Resolution) error {
	if res != ResolutionOccupantLeft && res != ResolutionOccupantRemains {
		return ErrInvalidResolution
	}
	holds, err := e.loadHolds(ctx)
	if err != nil {
		return err
	}
	i := findHold(holds, holdID)
	if i < 0 {
		return ErrNotFound
	}
	if holds[i].State != model.HoldStateActive {
		return ErrNotApplicable
	}

	if res == ResolutionOccupantLeft {
		// Hold untouched; just clear the seat so verification can
		// proceed.
		return e.ReleaseSeat(ctx, holds[i].SeatID)
	}

	holds[i].State = model.HoldStateExpired
	if err := e.store.SaveHolds(ctx, holds); err != nil {
		return err
	}
	return e.FlagSeat(ctx, holds[i].SeatID)
}

// ReleaseSeat clears both transient flags for a seat.  Seats with no
// recorded state are left alone; the call is idempotent.
func (e *Engine) ReleaseSeat(ctx context.Context, seatID string) error {
	states := e.store.SeatStates(ctx)
	if _, ok := states[seatID]; !ok {
		return nil
	}
	states[seatID] = model.SeatState{}
	return e.store.SaveSeatStates(ctx, states)
}

// FlagSeat resets a seat's transient flags and notifies staff review.
// Publishing is best-effort; failures are logged, not returned.
func (e *Engine) FlagSeat(ctx context.Context, seatID string) error {
	states := e.store.SeatStates(ctx)
	states[seatID] = model.SeatState{}
	if err := e.store.SaveSeatStates(ctx, states); err != nil {
		return err
	}
	if e.flags != nil {
		if err := e.flags.SeatFlagged(ctx, seatID, e.now()); err != nil {
			log.Printf("engine: publish seat flag for %s failed: %v", seatID, err)
		}
	} else {
		log.Printf("engine: seat %s flagged for staff review", seatID)
	}
	return nil
}
