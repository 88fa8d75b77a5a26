package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/piwi3910/panelcut/internal/model"
)

func newTestRouter() *Router {
	logger := zap.NewNop()
	r := NewRouter(logger)
	r.RegisterRoutes(NewHandler(logger))
	return r
}

func validRequestBody() []byte {
	req := model.Request{
		PanelTypes: []model.PanelType{
			{
				ID:    "plywood",
				Width: 2440, Height: 1220, Trimming: 10,
				Items: []model.Item{
					{ID: "shelf", Width: 600, Height: 300, Quantity: 2},
				},
			},
		},
	}
	data, _ := json.Marshal(req)
	return data
}

func TestHealth(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if body["status"] != "healthy" {
		t.Errorf("expected status 'healthy', got %q", body["status"])
	}
	if body["service"] != "panelcut-api" {
		t.Errorf("expected service 'panelcut-api', got %q", body["service"])
	}
}

func TestHealth_MethodNotAllowed(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/health", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestOptimize_Success(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/optimize", bytes.NewReader(validRequestBody())))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body: %s)", rec.Code, rec.Body.String())
	}

	var result model.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if result.Summary.TotalPanels != 1 {
		t.Errorf("expected 1 panel used, got %d", result.Summary.TotalPanels)
	}
	placed := 0
	for _, p := range result.Panels {
		placed += len(p.Placements)
	}
	if placed != 2 {
		t.Errorf("expected 2 placements, got %d", placed)
	}
}

func TestOptimize_MalformedJSON(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/optimize", strings.NewReader("{not json")))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestOptimize_InvalidInput(t *testing.T) {
	router := newTestRouter()

	req := model.Request{
		PanelTypes: []model.PanelType{
			{
				ID:    "bad",
				Width: 1000, Height: 500,
				Items: []model.Item{
					{ID: "zero_width", Width: 0, Height: 100, Quantity: 1},
				},
			},
		},
	}
	data, _ := json.Marshal(req)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/optimize", bytes.NewReader(data)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d (body: %s)", rec.Code, rec.Body.String())
	}

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if !strings.Contains(body.Error, "width") {
		t.Errorf("expected field name in error, got %q", body.Error)
	}
}

func TestOptimize_ItemTooLargeIs422(t *testing.T) {
	router := newTestRouter()

	req := model.Request{
		PanelTypes: []model.PanelType{
			{
				ID:    "small",
				Width: 500, Height: 500,
				Items: []model.Item{
					{ID: "huge", Width: 900, Height: 900, Quantity: 1},
				},
			},
		},
	}
	data, _ := json.Marshal(req)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/optimize", bytes.NewReader(data)))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d (body: %s)", rec.Code, rec.Body.String())
	}
	// No partial layout in the body
	if strings.Contains(rec.Body.String(), "placements") {
		t.Error("expected no partial layout in error response")
	}
}

func TestOptimize_MethodNotAllowed(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/optimize", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestGenerateSVG_Success(t *testing.T) {
	router := newTestRouter()

	result := model.Result{
		Panels: []model.PanelInstance{
			{
				PanelTypeID: "plywood", PanelNumber: 1,
				UsableWidth: 2420, UsableHeight: 1200,
				Placements: []model.Placement{
					{ItemID: "shelf", X: 0, Y: 0, Width: 600, Height: 300},
				},
			},
		},
	}
	data, _ := json.Marshal(result)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/generate/svg", bytes.NewReader(data)))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body: %s)", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("expected SVG content type, got %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "<svg") {
		t.Error("expected svg element in response")
	}
	if !strings.Contains(rec.Body.String(), "shelf") {
		t.Error("expected item label in rendered SVG")
	}
}

func TestGenerateSVG_EmptyResult(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/generate/svg", strings.NewReader("{}")))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestOptimize_EndToEndThroughServer(t *testing.T) {
	srv := httptest.NewServer(newTestRouter())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/optimize", "application/json", bytes.NewReader(validRequestBody()))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var result model.Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if len(result.Panels) == 0 {
		t.Fatal("expected at least one panel in result")
	}
}
