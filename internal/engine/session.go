package engine

import (
	"context"

	"github.com/google/uuid"

	"github.com/nookscout/campus-seat-reservation/internal/model"
)

// Session timing rules, in seconds.
const (
	sessionDurationSec  = 2700 // 45-minute occupancy
	sessionExtensionSec = 900  // one-time +15 minutes
)

// sweepSessions auto-ends every active session whose grace window has
// elapsed, in place.  It reports whether anything changed.
func sweepSessions(nowMillis int64, sessions []model.Session) bool {
	changed := false
	for i := range sessions {
		if sessions[i].Status == model.SessionStatusActive &&
			nowMillis > sessions[i].EndsAt+model.SessionGraceMillis {
			sessions[i].Status = model.SessionStatusEnded
			changed = true
		}
	}
	return changed
}

// loadSessions reads the session collection, runs the grace sweep and
// persists when the sweep changed anything.  All session operations
// go through here.
func (e *Engine) loadSessions(ctx context.Context) ([]model.Session, error) {
	sessions := e.store.Sessions(ctx)
	if sweepSessions(e.nowMillis(), sessions) {
		if err := e.store.SaveSessions(ctx, sessions); err != nil {
			return nil, err
		}
	}
	return sessions, nil
}

// beginSession appends a fresh 45-minute session for the seat and
// persists the collection.  Only arrival verification calls this.
func (e *Engine) beginSession(ctx context.Context, seatID string) (*model.Session, error) {
	sessions, err := e.loadSessions(ctx)
	if err != nil {
		return nil, err
	}
	now := e.nowMillis()
	session := model.Session{
		ID:          uuid.NewString(),
		SeatID:      seatID,
		StartedAt:   now,
		DurationSec: sessionDurationSec,
		EndsAt:      now + sessionDurationSec*1000,
		Status:      model.SessionStatusActive,
	}
	sessions = append(sessions, session)
	if err := e.store.SaveSessions(ctx, sessions); err != nil {
		return nil, err
	}
	return &session, nil
}

// ExtendSession applies the one-time +15 minute extension, recomputed
// from the original StartedAt like hold extensions.  Returns
// ErrNotFound for an unknown id and ErrNotApplicable once the session
// is extended or ended.
func (e *Engine) ExtendSession(ctx context.Context, sessionID string) (*model.Session, error) {
	sessions, err := e.loadSessions(ctx)
	if err != nil {
		return nil, err
	}
	i := findSession(sessions, sessionID)
	if i < 0 {
		return nil, ErrNotFound
	}
	if sessions[i].Extended || sessions[i].Status != model.SessionStatusActive {
		return nil, ErrNotApplicable
	}
	sessions[i].Extended = true
	sessions[i].DurationSec += sessionExtensionSec
	sessions[i].EndsAt = sessions[i].StartedAt + int64(sessions[i].DurationSec)*1000
	if err := e.store.SaveSessions(ctx, sessions); err != nil {
		return nil, err
	}
	s := sessions[i]
	return &s, nil
}

// EndSession checks the user out: the session is marked ended and the
// seat's occupied flag is cleared, leaving any held flag untouched.
// Unknown ids and already-ended sessions are no-ops so the call is
// safe to retry.
func (e *Engine) EndSession(ctx context.Context, sessionID string) error {
	sessions, err := e.loadSessions(ctx)
	if err != nil {
		return err
	}
	i := findSession(sessions, sessionID)
	if i < 0 {
		return nil
	}
	sessions[i].Status = model.SessionStatusEnded
	if err := e.store.SaveSessions(ctx, sessions); err != nil {
		return err
	}
	states := e.store.SeatStates(ctx)
	if st, ok := states[sessions[i].SeatID]; ok {
		st.Occupied = false
		states[sessions[i].SeatID] = st
	}
	return e.store.SaveSeatStates(ctx, states)
}

// ActiveSession returns the current session: the first record in
// storage order still actively occupying its seat, or nil when there
// is none.  A session remains visible here through its grace window
// even though the nominal timer has reached zero.
func (e *Engine) ActiveSession(ctx context.Context) (*model.Session, error) {
	sessions, err := e.loadSessions(ctx)
	if err != nil {
		return nil, err
	}
	now := e.nowMillis()
	for i := range sessions {
		if sessions[i].OccupyingAt(now) {
			s := sessions[i]
			return &s, nil
		}
	}
	return nil, nil
}

// findSession returns the index of the session with the given id, or -1.
func findSession(sessions []model.Session, id string) int {
	for i := range sessions {
		if sessions[i].ID == id {
			return i
		}
	}
	return -1
}
