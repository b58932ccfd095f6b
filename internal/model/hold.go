package model

// Hold states.  A hold is created active and reaches exactly one of
// the two terminal states: expired (timed out or cancelled) or
// arrived (converted into a session).  No transition leaves a
// terminal state.
const (
	HoldStateActive  = "active"
	HoldStateExpired = "expired"
	HoldStateArrived = "arrived"
)

// Hold is a time-boxed reservation placed on a seat cluster while the
// user walks over.  All timestamps are millisecond Unix epochs so the
// persisted form matches what the presentation layer counts down
// against.
//
// Fields:
//  ID          – unique hold identifier.
//  SeatID      – seat cluster the hold covers.
//  StartedAt   – creation time, ms since epoch.
//  DurationSec – nominal length in seconds; starts at 600 (10 min).
//  Extended    – whether the one-time +180 s extension was used.
//  ExpiresAt   – StartedAt + DurationSec*1000.  Always recomputed from
//                the original StartedAt, never from "now", so an
//                extension yields a fixed absolute expiry rather than
//                a rolling window.
//  State       – active, expired or arrived.
type Hold struct {
	ID          string `json:"id"`
	SeatID      string `json:"seatId"`
	StartedAt   int64  `json:"startedAt"`
	DurationSec int    `json:"durationSec"`
	Extended    bool   `json:"extended,omitempty"`
	ExpiresAt   int64  `json:"expiresAt"`
	State       string `json:"state"`
}

// Terminal reports whether the hold has reached a state that no
// operation may leave.
func (h *Hold) Terminal() bool {
	return h.State == HoldStateExpired || h.State == HoldStateArrived
}
