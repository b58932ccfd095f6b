// Package queue defines message payloads exchanged over the message broker.
package queue

// SeatFlaggedEvent is published when a user reports a held seat as
// occupied and walks away.  Staff review consumers use it to audit
// stale occupancy data without querying the primary store.
type SeatFlaggedEvent struct {
	SeatID    string `json:"seat_id"`
	Building  string `json:"building,omitempty"`
	SeatName  string `json:"seat_name,omitempty"`
	FlaggedAt string `json:"flagged_at"`
	Reason    string `json:"reason"`
}

// ReasonOccupantRemains is the only flag reason emitted today: the
// reporting user confirmed the occupant was staying.
const ReasonOccupantRemains = "occupant_remains"
