package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nookscout/campus-seat-reservation/internal/engine"
)

// SessionHandler serves the occupancy session lifecycle: the
// active-session query, the one-time extension and checkout.
type SessionHandler struct {
	Engine *engine.Engine
}

// NewSessionHandler constructs a SessionHandler bound to the engine.
func NewSessionHandler(eng *engine.Engine) *SessionHandler {
	if eng == nil {
		panic("nil engine passed to NewSessionHandler")
	}
	return &SessionHandler{Engine: eng}
}

// ActiveSession handles GET /v1/sessions/active.  A session stays
// visible here through its 3-minute grace window after the nominal
// timer reaches zero; a null member means nothing is occupying.
func (h *SessionHandler) ActiveSession(c echo.Context) error {
	session, err := h.Engine.ActiveSession(c.Request().Context())
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"session": session})
}

// ExtendSession handles POST /v1/sessions/:id/extend.  The one-time
// +15 minute extension; 409 once used or after the session ended.
func (h *SessionHandler) ExtendSession(c echo.Context) error {
	session, err := h.Engine.ExtendSession(c.Request().Context(), c.Param("id"))
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(http.StatusOK, session)
}

// EndSession handles DELETE /v1/sessions/:id, the explicit checkout.
// Ending an unknown or already-ended session is a no-op, so the
// endpoint answers 204 unless storage fails.
func (h *SessionHandler) EndSession(c echo.Context) error {
	if err := h.Engine.EndSession(c.Request().Context(), c.Param("id")); err != nil {
		return engineError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
