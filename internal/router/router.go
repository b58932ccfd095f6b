package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/nookscout/campus-seat-reservation/internal/config"
	"github.com/nookscout/campus-seat-reservation/internal/handler"
	"github.com/nookscout/campus-seat-reservation/internal/middleware"
)

// Handlers bundles everything the route table needs.  All handler
// fields must be non-nil; Redis may be nil, in which case rate
// limiting is disabled.
type Handlers struct {
	Auth      *handler.AuthHandler
	Seats     *handler.SeatHandler
	Holds     *handler.HoldHandler
	Sessions  *handler.SessionHandler
	Rooms     handler.GroupRoomHandler
	JWTSecret string
	RateLimit config.RateLimitConfig
	Redis     *redis.Client
}

// Register wires all routes onto the Echo instance.  The health check
// and token endpoint are public; everything else sits behind the JWT
// middleware and the Redis token-bucket limiter.
func Register(e *echo.Echo, h Handlers) {
	// Health check for load balancers and monitoring.
	e.GET("/healthz", handler.Health)

	// Passcode-for-token exchange; rate limited but unauthenticated.
	limited := middleware.NewTokenBucket(h.RateLimit, h.Redis)
	e.POST("/v1/auth/token", h.Auth.Token, limited)

	// Protected reservation API.
	v1 := e.Group("/v1")
	v1.Use(middleware.JWTAuth(h.JWTSecret))
	v1.Use(limited)

	// Filter preferences (persisted slot).
	v1.GET("/filters", h.Seats.GetFilters)
	v1.PUT("/filters", h.Seats.PutFilters)

	// Seat availability ranking and per-seat state operations.
	v1.GET("/seats", h.Seats.ListSeats)
	v1.POST("/seats/rank", h.Seats.RankSeats)
	v1.POST("/seats/:id/release", h.Seats.ReleaseSeat)
	v1.POST("/seats/:id/flag", h.Seats.FlagSeat)

	// Hold lifecycle.
	v1.POST("/holds", h.Holds.StartHold)
	v1.GET("/holds/active", h.Holds.ActiveHold)
	v1.POST("/holds/:id/extend", h.Holds.ExtendHold)
	v1.POST("/holds/:id/arrive", h.Holds.Arrive)
	v1.POST("/holds/:id/conflict", h.Holds.ResolveConflict)
	v1.DELETE("/holds/:id", h.Holds.CancelHold)

	// Session lifecycle.
	v1.GET("/sessions/active", h.Sessions.ActiveSession)
	v1.POST("/sessions/:id/extend", h.Sessions.ExtendSession)
	v1.DELETE("/sessions/:id", h.Sessions.EndSession)

	// Group rooms: browsable catalog, booking stubbed.
	v1.GET("/group-rooms", h.Rooms.ListRooms)
	v1.POST("/group-rooms/:id/book", h.Rooms.BookRoom)
}
