package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nookscout/campus-seat-reservation/internal/model"
)

func TestResolveConflictOccupantLeft(t *testing.T) {
	eng, gw, _, flags := newTestEngine(t)
	ctx := context.Background()

	hold, err := eng.StartHold(ctx, "main-lib-b1")
	if err != nil {
		t.Fatalf("StartHold: %v", err)
	}
	if err := eng.ResolveConflict(ctx, hold.ID, ResolutionOccupantLeft); err != nil {
		t.Fatalf("ResolveConflict: %v", err)
	}

	// Seat released, hold untouched, nothing flagged.
	if st := seatState(t, gw, "main-lib-b1"); st.Held || st.Occupied {
		t.Errorf("seat state = %+v, want released", st)
	}
	if got := gw.Holds(ctx); got[0].State != model.HoldStateActive {
		t.Errorf("hold state = %q, want active", got[0].State)
	}
	if len(flags.seatIDs) != 0 {
		t.Errorf("unexpected flags: %v", flags.seatIDs)
	}

	// The surviving hold can still be verified.
	if _, err := eng.ArriveAndVerify(ctx, hold.ID); err != nil {
		t.Fatalf("ArriveAndVerify after occupant left: %v", err)
	}
}

func TestResolveConflictOccupantRemains(t *testing.T) {
	eng, gw, _, flags := newTestEngine(t)
	ctx := context.Background()

	hold, err := eng.StartHold(ctx, "main-lib-b1")
	if err != nil {
		t.Fatalf("StartHold: %v", err)
	}
	if err := eng.ResolveConflict(ctx, hold.ID, ResolutionOccupantRemains); err != nil {
		t.Fatalf("ResolveConflict: %v", err)
	}

	if got := gw.Holds(ctx); got[0].State != model.HoldStateExpired {
		t.Errorf("hold state = %q, want expired", got[0].State)
	}
	if st := seatState(t, gw, "main-lib-b1"); st.Held || st.Occupied {
		t.Errorf("seat state = %+v, want reset", st)
	}
	if len(flags.seatIDs) != 1 || flags.seatIDs[0] != "main-lib-b1" {
		t.Errorf("flags = %v, want [main-lib-b1]", flags.seatIDs)
	}

	// The user is free to pick a new seat.
	if _, err := eng.StartHold(ctx, "union-solo-2"); err != nil {
		t.Fatalf("StartHold after conflict: %v", err)
	}
}

func TestResolveConflictInvalidResolution(t *testing.T) {
	eng, gw, _, flags := newTestEngine(t)
	ctx := context.Background()

	hold, err := eng.StartHold(ctx, "main-lib-b1")
	if err != nil {
		t.Fatalf("StartHold: %v", err)
	}
	err = eng.ResolveConflict(ctx, hold.ID, Resolution("shrug"))
	if !errors.Is(err, ErrInvalidResolution) {
		t.Fatalf("err = %v, want ErrInvalidResolution", err)
	}

	// No side effects of any kind.
	if got := gw.Holds(ctx); got[0].State != model.HoldStateActive {
		t.Errorf("hold state = %q, want active", got[0].State)
	}
	if st := seatState(t, gw, "main-lib-b1"); !st.Held {
		t.Errorf("seat state = %+v, want still held", st)
	}
	if len(flags.seatIDs) != 0 {
		t.Errorf("unexpected flags: %v", flags.seatIDs)
	}
}

func TestResolveConflictRequiresActiveHold(t *testing.T) {
	eng, _, clock, _ := newTestEngine(t)
	ctx := context.Background()

	if err := eng.ResolveConflict(ctx, "missing", ResolutionOccupantLeft); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown id err = %v, want ErrNotFound", err)
	}

	hold, err := eng.StartHold(ctx, "main-lib-b1")
	if err != nil {
		t.Fatalf("StartHold: %v", err)
	}
	clock.Advance(11 * time.Minute)
	err = eng.ResolveConflict(ctx, hold.ID, ResolutionOccupantLeft)
	if !errors.Is(err, ErrNotApplicable) {
		t.Errorf("expired hold err = %v, want ErrNotApplicable", err)
	}
}

func TestFlagSeatWithoutPriorState(t *testing.T) {
	eng, gw, _, flags := newTestEngine(t)
	ctx := context.Background()

	if err := eng.FlagSeat(ctx, "eng-commons-1"); err != nil {
		t.Fatalf("FlagSeat: %v", err)
	}
	if st, ok := gw.SeatStates(ctx)["eng-commons-1"]; !ok || st.Held || st.Occupied {
		t.Errorf("seat state = %+v (present=%t), want cleared record", st, ok)
	}
	if len(flags.seatIDs) != 1 {
		t.Errorf("flags = %v, want one entry", flags.seatIDs)
	}
}

func TestReleaseSeatIdempotent(t *testing.T) {
	eng, gw, _, _ := newTestEngine(t)
	ctx := context.Background()

	// No recorded state: release is a no-op that records nothing.
	if err := eng.ReleaseSeat(ctx, "never-seen"); err != nil {
		t.Fatalf("ReleaseSeat: %v", err)
	}
	if _, ok := gw.SeatStates(ctx)["never-seen"]; ok {
		t.Error("release created a state record for an untracked seat")
	}

	if _, err := eng.StartHold(ctx, "main-lib-b1"); err != nil {
		t.Fatalf("StartHold: %v", err)
	}
	if err := eng.ReleaseSeat(ctx, "main-lib-b1"); err != nil {
		t.Fatalf("ReleaseSeat: %v", err)
	}
	if err := eng.ReleaseSeat(ctx, "main-lib-b1"); err != nil {
		t.Errorf("repeat ReleaseSeat: %v", err)
	}
	if st := seatState(t, gw, "main-lib-b1"); st.Held || st.Occupied {
		t.Errorf("seat state = %+v, want cleared", st)
	}
}
