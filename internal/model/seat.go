package model

// Confidence is the precomputed categorical likelihood that a seat
// cluster is currently free.  It is a label supplied with the catalog,
// not the output of live occupancy sensing.
type Confidence string

// Confidence labels in ascending order of likelihood.
const (
	ConfidenceLow    Confidence = "Low"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceHigh   Confidence = "High"
)

// Weight maps a confidence label to its numeric ranking weight.  The
// ranking engine sorts descending by this value.  Unknown labels weigh
// zero so they sink to the end rather than breaking the sort.
func (c Confidence) Weight() int {
	switch c {
	case ConfidenceHigh:
		return 3
	case ConfidenceMedium:
		return 2
	case ConfidenceLow:
		return 1
	}
	return 0
}

// Coords locates a seat cluster on the campus map.  Purely
// presentational; the engine never interprets the values.
type Coords struct {
	X int `json:"x"` // horizontal map position
	Y int `json:"y"` // vertical map position
}

// SeatCluster describes a bookable group of seats in the static
// catalog.  Catalog attributes are immutable facts; the two
// Currently* fields are derived at query time by joining with the
// per-seat state and are never written back to the catalog.
//
// Fields:
//  ID                – catalog identifier (e.g. "main-lib-b1").
//  Name              – human-readable cluster name.
//  Building          – building the cluster is in.
//  Level             – floor label (e.g. "2F").
//  EtaMins           – walk time from the campus hub in whole minutes.
//  Confidence        – precomputed likelihood-of-free label.
//  HasPower          – whether outlets are available.
//  WalkHoldEligible  – whether a walk-over hold may be placed.
//  IsQuiet           – quiet-zone flag; nil means no opinion, which is
//                      not the same as "not quiet".
//  Coords            – map position for rendering.
//  CurrentlyHeld     – derived: an active hold covers this cluster.
//  CurrentlyOccupied – derived: a verified session occupies this cluster.
type SeatCluster struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Building         string     `json:"building"`
	Level            string     `json:"level"`
	EtaMins          int        `json:"etaMins"`
	Confidence       Confidence `json:"confidence"`
	HasPower         bool       `json:"hasPower"`
	WalkHoldEligible bool       `json:"walkHoldEligible"`
	IsQuiet          *bool      `json:"isQuiet,omitempty"`
	Coords           Coords     `json:"coords"`

	CurrentlyHeld     bool `json:"currentlyHeld"`
	CurrentlyOccupied bool `json:"currentlyOccupied"`
}

// SeatState carries the transient flags layered on top of the catalog
// for a single seat cluster.  The store keeps exactly one record per
// seat id; writes are last-writer-wins with no merge.
type SeatState struct {
	Held     bool `json:"held"`     // an active hold covers the seat
	Occupied bool `json:"occupied"` // a verified session occupies the seat
}
