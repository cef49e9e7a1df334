package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/emplacadora/emplacadora-api/internal/core/domain"
)

type stubDashboardService struct {
	layouts map[string][]domain.Widget
	saveErr error
	getErr  error
}

func newStubDashboardService() *stubDashboardService {
	return &stubDashboardService{layouts: make(map[string][]domain.Widget)}
}

func (s *stubDashboardService) SaveLayout(_ context.Context, userID string, widgets []domain.Widget) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.layouts[userID] = widgets
	return nil
}

func (s *stubDashboardService) GetLayout(_ context.Context, userID string) ([]domain.Widget, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	widgets, ok := s.layouts[userID]
	if !ok {
		return nil, domain.ErrLayoutNotFound
	}
	return widgets, nil
}

func dashboardContext(e *echo.Echo, method, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, "/v1/dashboard/layout", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, "/v1/dashboard/layout", nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "u1")
	c.Set("role", "physical")
	return c, rec
}

const saveBody = `{
	"widgets": [
		{"id": "w1", "type": "orders_summary",
		 "layout": {"x": 0, "y": 0, "w": 4, "h": 2},
		 "config": {"title": "Pedidos", "display": "bar"}},
		{"id": "w2", "type": "recent_orders",
		 "layout": {"x": 4, "y": 0, "w": 8, "h": 4}}
	]
}`

func TestDashboardHandler_SaveThenGet(t *testing.T) {
	svc := newStubDashboardService()
	h := NewDashboardHandler(svc)
	e := newTestEcho()

	c, rec := dashboardContext(e, http.MethodPut, saveBody)
	if err := h.SaveLayout(c); err != nil {
		t.Fatalf("save error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", rec.Code, rec.Body.String())
	}

	c, rec = dashboardContext(e, http.MethodGet, "")
	if err := h.GetLayout(c); err != nil {
		t.Fatalf("get error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp getLayoutResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Exists {
		t.Fatalf("expected exists=true after save")
	}
	if len(resp.Widgets) != 2 || resp.Widgets[0].ID != "w1" || resp.Widgets[1].Layout.W != 8 {
		t.Fatalf("round trip mismatch: %+v", resp.Widgets)
	}
	if resp.Widgets[0].Config == nil || resp.Widgets[0].Config.Title != "Pedidos" {
		t.Fatalf("config lost in round trip: %+v", resp.Widgets[0].Config)
	}
}

// A user who never saved gets 200 with exists=false, not an error.
func TestDashboardHandler_GetLayout_NeverSaved(t *testing.T) {
	h := NewDashboardHandler(newStubDashboardService())
	e := newTestEcho()

	c, rec := dashboardContext(e, http.MethodGet, "")
	if err := h.GetLayout(c); err != nil {
		t.Fatalf("get error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp getLayoutResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Exists {
		t.Fatalf("expected exists=false")
	}
	if resp.Widgets == nil || len(resp.Widgets) != 0 {
		t.Fatalf("expected empty widget list, got %+v", resp.Widgets)
	}
}

// A storage failure propagates as an error (the central error handler maps
// it to 500); it never masquerades as an empty layout.
func TestDashboardHandler_GetLayout_StorageError(t *testing.T) {
	svc := newStubDashboardService()
	svc.getErr = &domain.StorageError{Op: "read", Message: "cursor timeout"}
	h := NewDashboardHandler(svc)
	e := newTestEcho()

	c, _ := dashboardContext(e, http.MethodGet, "")
	err := h.GetLayout(c)
	var se *domain.StorageError
	if !errors.As(err, &se) {
		t.Fatalf("expected StorageError to propagate, got %v", err)
	}
}

func TestDashboardHandler_SaveLayout_StorageError(t *testing.T) {
	svc := newStubDashboardService()
	svc.saveErr = &domain.StorageError{Op: "write", Message: "write concern timeout"}
	h := NewDashboardHandler(svc)
	e := newTestEcho()

	c, _ := dashboardContext(e, http.MethodPut, saveBody)
	err := h.SaveLayout(c)
	var se *domain.StorageError
	if !errors.As(err, &se) {
		t.Fatalf("expected StorageError to propagate, got %v", err)
	}
}

func TestDashboardHandler_SaveLayout_InvalidWidget(t *testing.T) {
	h := NewDashboardHandler(newStubDashboardService())
	e := newTestEcho()

	// widget without an id fails request validation
	body := `{"widgets": [{"type": "orders_summary", "layout": {"x": 0, "y": 0, "w": 4, "h": 2}}]}`
	c, rec := dashboardContext(e, http.MethodPut, body)
	if err := h.SaveLayout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

// Service-level validation failures (unknown widget type) also answer 400.
func TestDashboardHandler_SaveLayout_ServiceRejects(t *testing.T) {
	svc := newStubDashboardService()
	svc.saveErr = errors.New("unknown widget type: weather")
	h := NewDashboardHandler(svc)
	e := newTestEcho()

	c, rec := dashboardContext(e, http.MethodPut, saveBody)
	if err := h.SaveLayout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

// Without the identity injected by the auth middleware, the handler rejects
// the request before touching storage.
func TestDashboardHandler_MissingIdentity(t *testing.T) {
	h := NewDashboardHandler(newStubDashboardService())
	e := newTestEcho()

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/layout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.GetLayout(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
