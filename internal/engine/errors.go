// This file defines the sentinel errors the engine reports for
// business rejections.  Handlers translate them into HTTP statuses;
// none of them indicate an infrastructure failure.  Storage failures
// are reported separately via store.ErrUnavailable wrapping.
package engine

import "errors"

// ErrNotFound is returned when an operation references a hold or
// session id absent from storage.  Handlers should translate this
// into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrNotApplicable is returned when an operation is attempted outside
// its legal state, such as extending a hold a second time or
// extending one that already expired.  From the caller's view it is
// equivalent to not-found: nothing was mutated.  Handlers should
// translate this into an HTTP 409 response.
var ErrNotApplicable = errors.New("not applicable")

// ErrAlreadyActive is returned by StartHold when a non-terminal hold
// or an actively occupying session already exists.  One reservation
// at a time is the policy; the engine enforces it at creation.
var ErrAlreadyActive = errors.New("reservation already active")

// ErrInvalidResolution is returned when a conflict resolution other
// than occupant_left or occupant_remains is requested.  No side
// effects occur.
var ErrInvalidResolution = errors.New("invalid conflict resolution")
