package engine

import (
	"context"
	"sort"

	"github.com/nookscout/campus-seat-reservation/internal/model"
)

// lowConfidenceNudge is subtracted from the ETA of Low-confidence
// seats before tie-breaking so underused clusters surface slightly
// earlier among near-equal walk times.  An exploration bias, not a
// correctness rule.
const lowConfidenceNudge = 0.5

// RankSeats filters the catalog against the given preferences and
// returns the survivors ordered best-first: descending confidence
// weight, then ascending ETA with the Low-confidence nudge applied.
// Seats with an active hold or occupancy are excluded.  The result is
// recomputed on every call and an empty catalog yields an empty
// slice, never an error.
func (e *Engine) RankSeats(ctx context.Context, filters model.Filters) []model.SeatCluster {
	states := e.store.SeatStates(ctx)

	out := make([]model.SeatCluster, 0)
	for _, seat := range e.seats() {
		if seat.EtaMins > filters.MaxWalkMins {
			continue
		}
		if filters.Power && !seat.HasPower {
			continue
		}
		// Quiet filtering is tri-state: only an explicit "not quiet"
		// is excluded; seats with no opinion pass.
		if filters.Quiet && seat.IsQuiet != nil && !*seat.IsQuiet {
			continue
		}
		if filters.WalkHoldOnly && !seat.WalkHoldEligible {
			continue
		}
		st := states[seat.ID]
		if st.Held || st.Occupied {
			continue
		}
		// Attached for the wire document even though the exclusion
		// above means both are false in ranked output.
		seat.CurrentlyHeld = st.Held
		seat.CurrentlyOccupied = st.Occupied
		out = append(out, seat)
	}

	sort.SliceStable(out, func(i, j int) bool {
		wi, wj := out[i].Confidence.Weight(), out[j].Confidence.Weight()
		if wi != wj {
			return wi > wj
		}
		return nudgedEta(out[i]) < nudgedEta(out[j])
	})
	return out
}

// nudgedEta returns the seat's ETA adjusted for tie-breaking.
func nudgedEta(seat model.SeatCluster) float64 {
	eta := float64(seat.EtaMins)
	if seat.Confidence == model.ConfidenceLow {
		eta -= lowConfidenceNudge
	}
	return eta
}
