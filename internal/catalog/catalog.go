// Package catalog holds the static seat-cluster and group-room data
// the service operates on.  The catalog is fixed at build time; only
// the transient per-seat flags (held/occupied) live in the store.
package catalog

import "github.com/nookscout/campus-seat-reservation/internal/model"

func boolPtr(b bool) *bool { return &b }

// seatClusters is the campus seat catalog.  ETA values are walk times
// in minutes from the campus hub; confidence labels are produced by an
// offline utilization model and refreshed with catalog releases.
var seatClusters = []model.SeatCluster{
	{
		ID:               "main-lib-b1",
		Name:             "Carrel Row B, Window",
		Building:         "Main Library",
		Level:            "2F",
		EtaMins:          3,
		Confidence:       model.ConfidenceHigh,
		HasPower:         true,
		WalkHoldEligible: true,
		IsQuiet:          boolPtr(true),
		Coords:           model.Coords{X: 150, Y: 120},
	},
	{
		ID:               "main-lib-c2",
		Name:             "Corner Study Nook",
		Building:         "Main Library",
		Level:            "3F",
		EtaMins:          4,
		Confidence:       model.ConfidenceMedium,
		HasPower:         true,
		WalkHoldEligible: true,
		IsQuiet:          boolPtr(true),
		Coords:           model.Coords{X: 200, Y: 80},
	},
	{
		ID:               "stem-atrium-a1",
		Name:             "Individual Pods A",
		Building:         "STEM Atrium",
		Level:            "1F",
		EtaMins:          6,
		Confidence:       model.ConfidenceHigh,
		HasPower:         true,
		WalkHoldEligible: true,
		IsQuiet:          boolPtr(false),
		Coords:           model.Coords{X: 320, Y: 150},
	},
	{
		ID:               "stem-atrium-b3",
		Name:             "Quiet Zone Tables",
		Building:         "STEM Atrium",
		Level:            "2F",
		EtaMins:          7,
		Confidence:       model.ConfidenceLow,
		HasPower:         false,
		WalkHoldEligible: false,
		IsQuiet:          boolPtr(true),
		Coords:           model.Coords{X: 350, Y: 100},
	},
	{
		ID:               "union-reading-1",
		Name:             "Reading Room East",
		Building:         "Union",
		Level:            "3F",
		EtaMins:          5,
		Confidence:       model.ConfidenceMedium,
		HasPower:         true,
		WalkHoldEligible: true,
		IsQuiet:          boolPtr(true),
		Coords:           model.Coords{X: 100, Y: 180},
	},
	{
		ID:               "union-solo-2",
		Name:             "Solo Study Carrels",
		Building:         "Union",
		Level:            "2F",
		EtaMins:          4,
		Confidence:       model.ConfidenceHigh,
		HasPower:         true,
		WalkHoldEligible: true,
		IsQuiet:          boolPtr(true),
		Coords:           model.Coords{X: 80, Y: 200},
	},
	{
		ID:               "lib-annex-quiet",
		Name:             "Silent Study Wing",
		Building:         "Library Annex",
		Level:            "1F",
		EtaMins:          8,
		Confidence:       model.ConfidenceHigh,
		HasPower:         true,
		WalkHoldEligible: true,
		IsQuiet:          boolPtr(true),
		Coords:           model.Coords{X: 250, Y: 220},
	},
	{
		ID:               "eng-commons-1",
		Name:             "Engineering Commons",
		Building:         "Engineering",
		Level:            "1F",
		EtaMins:          7,
		Confidence:       model.ConfidenceMedium,
		HasPower:         true,
		WalkHoldEligible: false,
		IsQuiet:          boolPtr(false),
		Coords:           model.Coords{X: 380, Y: 180},
	},
}

// groupRooms is the browsable group-room catalog.  Booking these is
// not implemented.
var groupRooms = []model.GroupRoom{
	{
		ID:            "lib-group-a",
		Name:          "Group Study A",
		Building:      "Main Library",
		Level:         "2F",
		Capacity:      4,
		HasWhiteboard: true,
		EtaMins:       3,
		Available:     true,
	},
	{
		ID:            "union-collab-1",
		Name:          "Collaboration Room 1",
		Building:      "Union",
		Level:         "3F",
		Capacity:      6,
		HasWhiteboard: true,
		EtaMins:       5,
		Available:     false,
	},
	{
		ID:            "stem-team-room",
		Name:          "Team Project Room",
		Building:      "STEM Atrium",
		Level:         "2F",
		Capacity:      8,
		HasWhiteboard: true,
		EtaMins:       6,
		Available:     true,
	},
}

// SeatClusters returns a copy of the seat catalog.  Callers may
// mutate the returned slice (the ranking engine sets the derived
// Currently* flags) without affecting the shared data.
func SeatClusters() []model.SeatCluster {
	out := make([]model.SeatCluster, len(seatClusters))
	copy(out, seatClusters)
	return out
}

// SeatByID looks up a single seat cluster by catalog id.  The second
// return value reports whether the id exists.
func SeatByID(id string) (model.SeatCluster, bool) {
	for _, s := range seatClusters {
		if s.ID == id {
			return s, true
		}
	}
	return model.SeatCluster{}, false
}

// GroupRooms returns a copy of the group-room catalog.
func GroupRooms() []model.GroupRoom {
	out := make([]model.GroupRoom, len(groupRooms))
	copy(out, groupRooms)
	return out
}
