package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/nookscout/campus-seat-reservation/internal/engine"
	"github.com/nookscout/campus-seat-reservation/internal/model"
	"github.com/nookscout/campus-seat-reservation/internal/store"
)

// validate checks filter payloads against their struct tags.  A
// single instance is safe for concurrent use.
var validate = validator.New()

// SeatHandler serves the seat-facing surface: persisted filter
// preferences, the ranked availability list, and the seat release and
// flag operations.
type SeatHandler struct {
	Engine *engine.Engine // reservation lifecycle engine
	Store  *store.Gateway // direct access to the filter slot
}

// NewSeatHandler constructs a SeatHandler.  Both dependencies must be
// non-nil.
func NewSeatHandler(eng *engine.Engine, gw *store.Gateway) *SeatHandler {
	if eng == nil || gw == nil {
		panic("nil dependency passed to NewSeatHandler")
	}
	return &SeatHandler{Engine: eng, Store: gw}
}

// GetFilters handles GET /v1/filters.  It returns the persisted
// preference set, falling back to the defaults when nothing has been
// saved yet.
func (h *SeatHandler) GetFilters(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.Filters(c.Request().Context()))
}

// PutFilters handles PUT /v1/filters.  The body is a full Filters
// object; it is validated (study type, walk-time bounds) and then
// overwrites the stored slot.
func (h *SeatHandler) PutFilters(c echo.Context) error {
	var f model.Filters
	if err := c.Bind(&f); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := validate.Struct(f); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid filters", "detail": err.Error()})
	}
	if err := h.Store.SaveFilters(c.Request().Context(), f); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to save filters"})
	}
	return c.JSON(http.StatusOK, f)
}

// ListSeats handles GET /v1/seats.  It ranks the catalog against the
// persisted filters and returns the ordered result.  An empty list is
// a valid answer, never an error.
func (h *SeatHandler) ListSeats(c echo.Context) error {
	ctx := c.Request().Context()
	seats := h.Engine.RankSeats(ctx, h.Store.Filters(ctx))
	return c.JSON(http.StatusOK, echo.Map{"items": seats})
}

// RankSeats handles POST /v1/seats/rank.  Like ListSeats but ranks
// against the filters in the request body without persisting them, so
// the presentation layer can preview filter changes.
func (h *SeatHandler) RankSeats(c echo.Context) error {
	var f model.Filters
	if err := c.Bind(&f); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := validate.Struct(f); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid filters", "detail": err.Error()})
	}
	seats := h.Engine.RankSeats(c.Request().Context(), f)
	return c.JSON(http.StatusOK, echo.Map{"items": seats})
}

// ReleaseSeat handles POST /v1/seats/:id/release.  It clears both
// transient flags for the seat; repeating the call is harmless.
func (h *SeatHandler) ReleaseSeat(c echo.Context) error {
	seatID := c.Param("id")
	if seatID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid seat id"})
	}
	if err := h.Engine.ReleaseSeat(c.Request().Context(), seatID); err != nil {
		return engineError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// FlagSeat handles POST /v1/seats/:id/flag.  It resets the seat's
// transient state and emits a staff-review event.
func (h *SeatHandler) FlagSeat(c echo.Context) error {
	seatID := c.Param("id")
	if seatID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid seat id"})
	}
	if err := h.Engine.FlagSeat(c.Request().Context(), seatID); err != nil {
		return engineError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
