package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nookscout/campus-seat-reservation/internal/catalog"
)

// GroupRoomHandler exposes the group-room catalog for browsing.
// Booking a room is not implemented; the endpoint exists so clients
// can discover that fact instead of getting a 404.
type GroupRoomHandler struct{}

// ListRooms handles GET /v1/group-rooms and returns the static room
// catalog.
func (GroupRoomHandler) ListRooms(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": catalog.GroupRooms()})
}

// BookRoom handles POST /v1/group-rooms/:id/book.
func (GroupRoomHandler) BookRoom(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, echo.Map{"error": "group room booking is not implemented"})
}
