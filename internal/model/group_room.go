package model

// GroupRoom describes a bookable group study room.  Group-room
// booking itself is not implemented; the catalog is exposed for
// browsing only and the booking endpoint answers Not Implemented.
type GroupRoom struct {
	ID            string `json:"id"`            // catalog identifier
	Name          string `json:"name"`          // room name
	Building      string `json:"building"`      // building the room is in
	Level         string `json:"level"`         // floor label
	Capacity      int    `json:"capacity"`      // number of people the room fits
	HasWhiteboard bool   `json:"hasWhiteboard"` // whiteboard available
	EtaMins       int    `json:"etaMins"`       // walk time in minutes
	Available     bool   `json:"available"`     // static availability flag
}
