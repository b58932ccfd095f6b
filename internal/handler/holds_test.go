package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/nookscout/campus-seat-reservation/internal/engine"
	"github.com/nookscout/campus-seat-reservation/internal/model"
	"github.com/nookscout/campus-seat-reservation/internal/store"
)

// newTestHandlers wires the handler layer over a fresh in-memory
// engine with no verification delay.
func newTestHandlers(t *testing.T) (*HoldHandler, *SessionHandler, *SeatHandler) {
	t.Helper()
	gw := store.NewGateway(store.NewMemoryKV())
	eng := engine.New(gw, nil)
	return NewHoldHandler(eng, 0), NewSessionHandler(eng), NewSeatHandler(eng, gw)
}

func doJSON(e *echo.Echo, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestStartHoldEndpoint(t *testing.T) {
	holds, _, _ := newTestHandlers(t)
	e := echo.New()

	c, rec := doJSON(e, http.MethodPost, "/v1/holds", `{"seat_id":"main-lib-b1"}`)
	if err := holds.StartHold(c); err != nil {
		t.Fatalf("StartHold: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	var hold model.Hold
	if err := json.Unmarshal(rec.Body.Bytes(), &hold); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if hold.SeatID != "main-lib-b1" || hold.DurationSec != 600 {
		t.Errorf("hold = %+v", hold)
	}

	// A second hold while one is active is a conflict.
	c, rec = doJSON(e, http.MethodPost, "/v1/holds", `{"seat_id":"union-solo-2"}`)
	if err := holds.StartHold(c); err != nil {
		t.Fatalf("StartHold: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Errorf("duplicate hold status = %d, want 409", rec.Code)
	}
}

func TestStartHoldEndpointValidation(t *testing.T) {
	holds, _, _ := newTestHandlers(t)
	e := echo.New()

	c, rec := doJSON(e, http.MethodPost, "/v1/holds", `{}`)
	if err := holds.StartHold(c); err != nil {
		t.Fatalf("StartHold: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing seat_id status = %d, want 400", rec.Code)
	}
}

func TestHoldArrivalFlow(t *testing.T) {
	holds, sessions, _ := newTestHandlers(t)
	e := echo.New()

	c, rec := doJSON(e, http.MethodPost, "/v1/holds", `{"seat_id":"main-lib-b1"}`)
	if err := holds.StartHold(c); err != nil {
		t.Fatalf("StartHold: %v", err)
	}
	var hold model.Hold
	if err := json.Unmarshal(rec.Body.Bytes(), &hold); err != nil {
		t.Fatalf("decode hold: %v", err)
	}

	c, rec = doJSON(e, http.MethodPost, "/v1/holds/:id/arrive", "")
	c.SetParamNames("id")
	c.SetParamValues(hold.ID)
	if err := holds.Arrive(c); err != nil {
		t.Fatalf("Arrive: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("arrive status = %d, want 201", rec.Code)
	}
	var session model.Session
	if err := json.Unmarshal(rec.Body.Bytes(), &session); err != nil {
		t.Fatalf("decode session: %v", err)
	}
	if session.DurationSec != 2700 || session.Status != model.SessionStatusActive {
		t.Errorf("session = %+v", session)
	}

	// The active-session query now reports it.
	c, rec = doJSON(e, http.MethodGet, "/v1/sessions/active", "")
	if err := sessions.ActiveSession(c); err != nil {
		t.Fatalf("ActiveSession: %v", err)
	}
	var body struct {
		Session *model.Session `json:"session"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode active session: %v", err)
	}
	if body.Session == nil || body.Session.ID != session.ID {
		t.Errorf("active session = %+v, want %s", body.Session, session.ID)
	}
}

func TestArriveUnknownHoldEndpoint(t *testing.T) {
	holds, _, _ := newTestHandlers(t)
	e := echo.New()

	c, rec := doJSON(e, http.MethodPost, "/v1/holds/:id/arrive", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")
	if err := holds.Arrive(c); err != nil {
		t.Fatalf("Arrive: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestExtendHoldEndpointSecondCallConflicts(t *testing.T) {
	holds, _, _ := newTestHandlers(t)
	e := echo.New()

	c, rec := doJSON(e, http.MethodPost, "/v1/holds", `{"seat_id":"main-lib-b1"}`)
	if err := holds.StartHold(c); err != nil {
		t.Fatalf("StartHold: %v", err)
	}
	var hold model.Hold
	if err := json.Unmarshal(rec.Body.Bytes(), &hold); err != nil {
		t.Fatalf("decode hold: %v", err)
	}

	extend := func() int {
		c, rec := doJSON(e, http.MethodPost, "/v1/holds/:id/extend", "")
		c.SetParamNames("id")
		c.SetParamValues(hold.ID)
		if err := holds.ExtendHold(c); err != nil {
			t.Fatalf("ExtendHold: %v", err)
		}
		return rec.Code
	}
	if code := extend(); code != http.StatusOK {
		t.Errorf("first extend status = %d, want 200", code)
	}
	if code := extend(); code != http.StatusConflict {
		t.Errorf("second extend status = %d, want 409", code)
	}
}

func TestCancelHoldEndpointIdempotent(t *testing.T) {
	holds, _, _ := newTestHandlers(t)
	e := echo.New()

	c, rec := doJSON(e, http.MethodDelete, "/v1/holds/:id", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")
	if err := holds.CancelHold(c); err != nil {
		t.Fatalf("CancelHold: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
}

func TestPutFiltersValidation(t *testing.T) {
	_, _, seats := newTestHandlers(t)
	e := echo.New()

	tests := []struct {
		name string
		body string
		want int
	}{
		{"valid", `{"studyType":"solo","quiet":true,"power":false,"maxWalkMins":8,"walkHoldOnly":true}`, http.StatusOK},
		{"walk time too large", `{"studyType":"solo","maxWalkMins":11}`, http.StatusBadRequest},
		{"walk time too small", `{"studyType":"solo","maxWalkMins":1}`, http.StatusBadRequest},
		{"bad study type", `{"studyType":"pair","maxWalkMins":5}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := doJSON(e, http.MethodPut, "/v1/filters", tt.body)
			if err := seats.PutFilters(c); err != nil {
				t.Fatalf("PutFilters: %v", err)
			}
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestResolveConflictEndpointRejectsUnknownResolution(t *testing.T) {
	holds, _, _ := newTestHandlers(t)
	e := echo.New()

	c, rec := doJSON(e, http.MethodPost, "/v1/holds", `{"seat_id":"main-lib-b1"}`)
	if err := holds.StartHold(c); err != nil {
		t.Fatalf("StartHold: %v", err)
	}
	var hold model.Hold
	if err := json.Unmarshal(rec.Body.Bytes(), &hold); err != nil {
		t.Fatalf("decode hold: %v", err)
	}

	c, rec = doJSON(e, http.MethodPost, "/v1/holds/:id/conflict", `{"resolution":"shrug"}`)
	c.SetParamNames("id")
	c.SetParamValues(hold.ID)
	if err := holds.ResolveConflict(c); err != nil {
		t.Fatalf("ResolveConflict: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
