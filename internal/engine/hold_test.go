package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nookscout/campus-seat-reservation/internal/model"
	"github.com/nookscout/campus-seat-reservation/internal/store"
)

func TestStartHoldCreatesHoldAndMarksSeat(t *testing.T) {
	eng, gw, clock, _ := newTestEngine(t)
	ctx := context.Background()

	hold, err := eng.StartHold(ctx, "main-lib-b1")
	if err != nil {
		t.Fatalf("StartHold: %v", err)
	}
	if hold.DurationSec != 600 {
		t.Errorf("DurationSec = %d, want 600", hold.DurationSec)
	}
	if hold.State != model.HoldStateActive {
		t.Errorf("State = %q, want active", hold.State)
	}
	if want := clock.Now().UnixMilli() + 600_000; hold.ExpiresAt != want {
		t.Errorf("ExpiresAt = %d, want %d", hold.ExpiresAt, want)
	}
	if st := seatState(t, gw, "main-lib-b1"); !st.Held || st.Occupied {
		t.Errorf("seat state = %+v, want held and not occupied", st)
	}
	if got := gw.Holds(ctx); len(got) != 1 || got[0].ID != hold.ID {
		t.Errorf("persisted holds = %+v", got)
	}
}

func TestStartHoldRejectsWhileReservationActive(t *testing.T) {
	eng, _, clock, _ := newTestEngine(t)
	ctx := context.Background()

	first, err := eng.StartHold(ctx, "main-lib-b1")
	if err != nil {
		t.Fatalf("StartHold: %v", err)
	}
	if _, err := eng.StartHold(ctx, "union-solo-2"); !errors.Is(err, ErrAlreadyActive) {
		t.Fatalf("second StartHold err = %v, want ErrAlreadyActive", err)
	}

	// Converting the hold into a session must still block new holds.
	if _, err := eng.ArriveAndVerify(ctx, first.ID); err != nil {
		t.Fatalf("ArriveAndVerify: %v", err)
	}
	if _, err := eng.StartHold(ctx, "union-solo-2"); !errors.Is(err, ErrAlreadyActive) {
		t.Fatalf("StartHold during session err = %v, want ErrAlreadyActive", err)
	}

	// Once the session's grace window has elapsed the slot frees up.
	clock.Advance(45*time.Minute + 3*time.Minute + time.Second)
	if _, err := eng.StartHold(ctx, "union-solo-2"); err != nil {
		t.Fatalf("StartHold after session ended: %v", err)
	}
}

func TestStartHoldAllowedAfterExpiry(t *testing.T) {
	eng, _, clock, _ := newTestEngine(t)
	ctx := context.Background()

	if _, err := eng.StartHold(ctx, "main-lib-b1"); err != nil {
		t.Fatalf("StartHold: %v", err)
	}
	clock.Advance(10*time.Minute + time.Second)
	if _, err := eng.StartHold(ctx, "union-solo-2"); err != nil {
		t.Fatalf("StartHold after expiry: %v", err)
	}
}

func TestExtendHoldFixedAbsoluteExpiry(t *testing.T) {
	eng, _, clock, _ := newTestEngine(t)
	ctx := context.Background()

	hold, err := eng.StartHold(ctx, "main-lib-b1")
	if err != nil {
		t.Fatalf("StartHold: %v", err)
	}

	// Regardless of when the extension is requested, the new expiry
	// is startedAt + (600+180)s.
	clock.Advance(7 * time.Minute)
	extended, err := eng.ExtendHold(ctx, hold.ID)
	if err != nil {
		t.Fatalf("ExtendHold: %v", err)
	}
	if extended.DurationSec != 780 {
		t.Errorf("DurationSec = %d, want 780", extended.DurationSec)
	}
	if want := hold.StartedAt + 780_000; extended.ExpiresAt != want {
		t.Errorf("ExpiresAt = %d, want %d", extended.ExpiresAt, want)
	}
	if !extended.Extended {
		t.Error("Extended flag not set")
	}
}

func TestExtendHoldOnlyOnce(t *testing.T) {
	eng, gw, _, _ := newTestEngine(t)
	ctx := context.Background()

	hold, err := eng.StartHold(ctx, "main-lib-b1")
	if err != nil {
		t.Fatalf("StartHold: %v", err)
	}
	if _, err := eng.ExtendHold(ctx, hold.ID); err != nil {
		t.Fatalf("first ExtendHold: %v", err)
	}
	if _, err := eng.ExtendHold(ctx, hold.ID); !errors.Is(err, ErrNotApplicable) {
		t.Fatalf("second ExtendHold err = %v, want ErrNotApplicable", err)
	}
	// The rejection must not have mutated the duration again.
	if got := gw.Holds(ctx); got[0].DurationSec != 780 {
		t.Errorf("DurationSec after rejected extension = %d, want 780", got[0].DurationSec)
	}
}

func TestExtendHoldRejections(t *testing.T) {
	eng, _, clock, _ := newTestEngine(t)
	ctx := context.Background()

	if _, err := eng.ExtendHold(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown id err = %v, want ErrNotFound", err)
	}

	hold, err := eng.StartHold(ctx, "main-lib-b1")
	if err != nil {
		t.Fatalf("StartHold: %v", err)
	}
	clock.Advance(10*time.Minute + time.Second)
	if _, err := eng.ExtendHold(ctx, hold.ID); !errors.Is(err, ErrNotApplicable) {
		t.Errorf("extend after expiry err = %v, want ErrNotApplicable", err)
	}
}

func TestHoldExpirySweep(t *testing.T) {
	eng, gw, clock, _ := newTestEngine(t)
	ctx := context.Background()

	hold, err := eng.StartHold(ctx, "main-lib-b1")
	if err != nil {
		t.Fatalf("StartHold: %v", err)
	}

	active, err := eng.ActiveHold(ctx)
	if err != nil || active == nil || active.ID != hold.ID {
		t.Fatalf("ActiveHold = %+v, %v", active, err)
	}

	clock.Advance(10*time.Minute + time.Second)
	active, err = eng.ActiveHold(ctx)
	if err != nil {
		t.Fatalf("ActiveHold: %v", err)
	}
	if active != nil {
		t.Errorf("ActiveHold after expiry = %+v, want nil", active)
	}
	if got := gw.Holds(ctx); got[0].State != model.HoldStateExpired {
		t.Errorf("persisted state = %q, want expired", got[0].State)
	}
}

func TestArriveAndVerifyCreatesSession(t *testing.T) {
	eng, gw, _, _ := newTestEngine(t)
	ctx := context.Background()

	hold, err := eng.StartHold(ctx, "main-lib-b1")
	if err != nil {
		t.Fatalf("StartHold: %v", err)
	}
	session, err := eng.ArriveAndVerify(ctx, hold.ID)
	if err != nil {
		t.Fatalf("ArriveAndVerify: %v", err)
	}
	if session.DurationSec != 2700 {
		t.Errorf("DurationSec = %d, want 2700", session.DurationSec)
	}
	if session.Status != model.SessionStatusActive {
		t.Errorf("Status = %q, want active", session.Status)
	}
	if session.SeatID != "main-lib-b1" {
		t.Errorf("SeatID = %q", session.SeatID)
	}
	if st := seatState(t, gw, "main-lib-b1"); st.Held || !st.Occupied {
		t.Errorf("seat state = %+v, want occupied and not held", st)
	}
	if got := gw.Holds(ctx); got[0].State != model.HoldStateArrived {
		t.Errorf("hold state = %q, want arrived", got[0].State)
	}
}

func TestArriveAndVerifyUnknownHoldWritesNothing(t *testing.T) {
	kv := &countingKV{KV: store.NewMemoryKV()}
	gw := store.NewGateway(kv)
	clock := newTestClock()
	eng := New(gw, nil).WithClock(clock.Now)
	ctx := context.Background()

	if _, err := eng.ArriveAndVerify(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if kv.Writes() != 0 {
		t.Errorf("storage writes = %d, want 0", kv.Writes())
	}
}

func TestArriveAndVerifyOverridesExpiry(t *testing.T) {
	// Arrival verification is authoritative: a hold that timed out
	// while the user was walking still converts on a successful scan.
	eng, gw, clock, _ := newTestEngine(t)
	ctx := context.Background()

	hold, err := eng.StartHold(ctx, "main-lib-b1")
	if err != nil {
		t.Fatalf("StartHold: %v", err)
	}
	clock.Advance(11 * time.Minute)
	session, err := eng.ArriveAndVerify(ctx, hold.ID)
	if err != nil {
		t.Fatalf("ArriveAndVerify after expiry: %v", err)
	}
	if session.Status != model.SessionStatusActive {
		t.Errorf("Status = %q, want active", session.Status)
	}
	if got := gw.Holds(ctx); got[0].State != model.HoldStateArrived {
		t.Errorf("hold state = %q, want arrived", got[0].State)
	}
}

func TestCancelHold(t *testing.T) {
	eng, gw, _, _ := newTestEngine(t)
	ctx := context.Background()

	hold, err := eng.StartHold(ctx, "main-lib-b1")
	if err != nil {
		t.Fatalf("StartHold: %v", err)
	}
	if err := eng.CancelHold(ctx, hold.ID); err != nil {
		t.Fatalf("CancelHold: %v", err)
	}
	if got := gw.Holds(ctx); got[0].State != model.HoldStateExpired {
		t.Errorf("hold state = %q, want expired", got[0].State)
	}
	if st := seatState(t, gw, "main-lib-b1"); st.Held {
		t.Errorf("seat still held after cancel: %+v", st)
	}

	// Cancelling again, or cancelling garbage, is a quiet no-op.
	if err := eng.CancelHold(ctx, hold.ID); err != nil {
		t.Errorf("repeat CancelHold: %v", err)
	}
	if err := eng.CancelHold(ctx, "missing"); err != nil {
		t.Errorf("CancelHold unknown id: %v", err)
	}
}

func TestCancelHoldLeavesOccupiedFlag(t *testing.T) {
	eng, gw, _, _ := newTestEngine(t)
	ctx := context.Background()

	hold, err := eng.StartHold(ctx, "main-lib-b1")
	if err != nil {
		t.Fatalf("StartHold: %v", err)
	}
	// Simulate someone else's occupancy being recorded between start
	// and cancel; cancel must clear held only.
	if err := gw.SaveSeatStates(ctx, map[string]model.SeatState{
		"main-lib-b1": {Held: true, Occupied: true},
	}); err != nil {
		t.Fatalf("SaveSeatStates: %v", err)
	}
	if err := eng.CancelHold(ctx, hold.ID); err != nil {
		t.Fatalf("CancelHold: %v", err)
	}
	if st := seatState(t, gw, "main-lib-b1"); st.Held || !st.Occupied {
		t.Errorf("seat state = %+v, want occupied only", st)
	}
}
