package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nookscout/campus-seat-reservation/internal/engine"
)

// engineError translates engine sentinel errors into HTTP responses.
// Business rejections map to 404/409/400; anything else (storage
// write failures included) is a 500.
func engineError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, engine.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	case errors.Is(err, engine.ErrNotApplicable):
		return c.JSON(http.StatusConflict, echo.Map{"error": "not applicable"})
	case errors.Is(err, engine.ErrAlreadyActive):
		return c.JSON(http.StatusConflict, echo.Map{"error": "reservation already active"})
	case errors.Is(err, engine.ErrInvalidResolution):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid resolution"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "storage error"})
	}
}
