package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nookscout/campus-seat-reservation/internal/utils"
)

// AuthHandler exchanges the shared campus passcode for a short-lived
// access token.  There is no user database: the service models a
// single acting user, so authentication is a bcrypt check against a
// hash provisioned in the environment.
type AuthHandler struct {
	JWTSecret    string // secret used to sign issued tokens
	PasscodeHash string // bcrypt hash of the accepted passcode
	AccessTTLMin int    // token lifetime in minutes
}

// NewAuthHandler constructs an AuthHandler.  All fields are required.
func NewAuthHandler(secret, passcodeHash string, ttlMin int) *AuthHandler {
	if secret == "" || passcodeHash == "" || ttlMin <= 0 {
		panic("incomplete auth configuration passed to NewAuthHandler")
	}
	return &AuthHandler{JWTSecret: secret, PasscodeHash: passcodeHash, AccessTTLMin: ttlMin}
}

// Token handles POST /v1/auth/token.  The body carries the passcode
// and an optional device label used as the token subject.  On success
// it returns 200 with the signed token and its expiry; a wrong
// passcode yields 401.
func (h *AuthHandler) Token(c echo.Context) error {
	var body struct {
		Passcode string `json:"passcode"`
		Device   string `json:"device"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Passcode == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "passcode is required"})
	}
	if !utils.VerifyPasscode(h.PasscodeHash, body.Passcode) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid passcode"})
	}
	subject := body.Device
	if subject == "" {
		subject = "campus-kiosk"
	}
	tok, err := utils.NewAccessToken(h.JWTSecret, subject, h.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to sign token"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"access_token": tok.Token,
		"expires_at":   tok.Exp.Format(time.RFC3339),
	})
}
