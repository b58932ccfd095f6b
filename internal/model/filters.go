package model

// Study types selectable in the filter panel.  Group study routes to
// the group-room catalog, which is a display-only stub.
const (
	StudyTypeSolo  = "solo"
	StudyTypeGroup = "group"
)

// Filters captures the user's seat preferences.  Pure preference data
// with no lifecycle of its own; the stored copy is merged over the
// defaults when loaded so that older persisted filter objects missing
// newer fields remain usable.
//
// Fields:
//  StudyType    – solo or group.
//  Quiet        – only seats not explicitly marked non-quiet.
//  Power        – only seats with outlets.
//  MaxWalkMins  – hard walk-time cutoff in minutes, 2 to 10.
//  WalkHoldOnly – only seats where a walk-over hold may be placed.
type Filters struct {
	StudyType    string `json:"studyType" validate:"oneof=solo group"`
	Quiet        bool   `json:"quiet"`
	Power        bool   `json:"power"`
	MaxWalkMins  int    `json:"maxWalkMins" validate:"min=2,max=10"`
	WalkHoldOnly bool   `json:"walkHoldOnly"`
}

// DefaultFilters returns the out-of-the-box preference set used when
// no filters have been persisted yet or the stored slot is unreadable.
func DefaultFilters() Filters {
	return Filters{
		StudyType:    StudyTypeSolo,
		Quiet:        true,
		Power:        true,
		MaxWalkMins:  5,
		WalkHoldOnly: true,
	}
}
