package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nookscout/campus-seat-reservation/internal/engine"
)

// HoldHandler serves the hold lifecycle: creation, one-time
// extension, arrival verification, conflict resolution and
// cancellation, plus the active-hold query the presentation layer
// polls against.
type HoldHandler struct {
	Engine      *engine.Engine
	VerifyDelay time.Duration // fixed pause standing in for the badge/QR scan
}

// NewHoldHandler constructs a HoldHandler bound to the engine.
func NewHoldHandler(eng *engine.Engine, verifyDelay time.Duration) *HoldHandler {
	if eng == nil {
		panic("nil engine passed to NewHoldHandler")
	}
	return &HoldHandler{Engine: eng, VerifyDelay: verifyDelay}
}

// StartHold handles POST /v1/holds.  The body carries the seat id.
// Returns 201 with the created hold, or 409 when a reservation is
// already in flight.
func (h *HoldHandler) StartHold(c echo.Context) error {
	var body struct {
		SeatID string `json:"seat_id"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.SeatID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "seat_id is required"})
	}
	hold, err := h.Engine.StartHold(c.Request().Context(), body.SeatID)
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(http.StatusCreated, hold)
}

// ActiveHold handles GET /v1/holds/active.  It returns the current
// hold, or 200 with a null body member when there is none. Absence
// of a hold is a normal answer for a polling client, not an error.
func (h *HoldHandler) ActiveHold(c echo.Context) error {
	hold, err := h.Engine.ActiveHold(c.Request().Context())
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"hold": hold})
}

// ExtendHold handles POST /v1/holds/:id/extend.  The one-time +3
// minute extension; 409 once used or after the hold left the active
// state.
func (h *HoldHandler) ExtendHold(c echo.Context) error {
	hold, err := h.Engine.ExtendHold(c.Request().Context(), c.Param("id"))
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(http.StatusOK, hold)
}

// Arrive handles POST /v1/holds/:id/arrive.  The configured
// verification delay runs first and is not cancellable: once the scan
// is invoked it completes, mirroring a badge reader that cannot be
// interrupted mid-read.  On success the new session is returned.
func (h *HoldHandler) Arrive(c echo.Context) error {
	if h.VerifyDelay > 0 {
		time.Sleep(h.VerifyDelay)
	}
	session, err := h.Engine.ArriveAndVerify(c.Request().Context(), c.Param("id"))
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(http.StatusCreated, session)
}

// ResolveConflict handles POST /v1/holds/:id/conflict.  The body
// carries the resolution: "occupant_left" keeps the hold and frees
// the seat, "occupant_remains" cancels the hold and flags the seat.
func (h *HoldHandler) ResolveConflict(c echo.Context) error {
	var body struct {
		Resolution string `json:"resolution"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	err := h.Engine.ResolveConflict(c.Request().Context(), c.Param("id"), engine.Resolution(body.Resolution))
	if err != nil {
		return engineError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// CancelHold handles DELETE /v1/holds/:id.  Cancelling an unknown or
// already-resolved hold is a no-op, so the endpoint always answers
// 204 unless storage fails.
func (h *HoldHandler) CancelHold(c echo.Context) error {
	if err := h.Engine.CancelHold(c.Request().Context(), c.Param("id")); err != nil {
		return engineError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
