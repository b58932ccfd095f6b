package model

// Session statuses.  A session is created active by arrival
// verification and ends exactly once, either by explicit checkout or
// automatically when its grace window elapses.
const (
	SessionStatusActive = "active"
	SessionStatusEnded  = "ended"
)

// SessionGraceMillis is the grace window after a session's nominal
// end during which it is still treated as actively occupying its
// seat.  Once the window elapses the session auto-transitions to
// ended on the next sweep.
const SessionGraceMillis = 180_000 // 3 minutes

// Session is an occupancy period that begins when arrival at a held
// seat is verified.  Timestamps are millisecond Unix epochs, matching
// Hold.
//
// Fields:
//  ID          – unique session identifier.
//  SeatID      – seat cluster being occupied.
//  StartedAt   – verification time, ms since epoch.
//  DurationSec – nominal length in seconds; starts at 2700 (45 min).
//  Extended    – whether the one-time +900 s extension was used.
//  EndsAt      – StartedAt + DurationSec*1000, recomputed from the
//                original StartedAt on extension.
//  Status      – active or ended.
type Session struct {
	ID          string `json:"id"`
	SeatID      string `json:"seatId"`
	StartedAt   int64  `json:"startedAt"`
	DurationSec int    `json:"durationSec"`
	Extended    bool   `json:"extended,omitempty"`
	EndsAt      int64  `json:"endsAt"`
	Status      string `json:"status"`
}

// OccupyingAt reports whether the session still counts as actively
// occupying its seat at the given instant: active status and within
// the grace window past its nominal end.
func (s *Session) OccupyingAt(nowMillis int64) bool {
	return s.Status == SessionStatusActive && nowMillis <= s.EndsAt+SessionGraceMillis
}
