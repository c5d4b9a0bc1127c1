package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bistro/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

func ok(context.Context) error   { return nil }
func down(context.Context) error { return errors.New("connection refused") }

func serveReady(t *testing.T, h *HealthHandler) (int, HealthResponse) {
	t.Helper()
	router := httprouter.New()
	h.RegisterRoutes(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

	var resp HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return rec.Code, resp
}

func TestHealth(t *testing.T) {
	router := httprouter.New()
	(&HealthHandler{log: logger.Discard()}).RegisterRoutes(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
}

func TestReady(t *testing.T) {
	tests := []struct {
		name       string
		database   check
		cache      check
		wantStatus int
		want       HealthResponse
	}{
		{
			name:       "all healthy",
			database:   ok,
			cache:      ok,
			wantStatus: http.StatusOK,
			want:       HealthResponse{Status: "ready", Database: "ok", Cache: "ok"},
		},
		{
			name:       "no cache configured",
			database:   ok,
			wantStatus: http.StatusOK,
			want:       HealthResponse{Status: "ready", Database: "ok", Cache: "disabled"},
		},
		{
			name:       "cache down stays ready",
			database:   ok,
			cache:      down,
			wantStatus: http.StatusOK,
			want:       HealthResponse{Status: "ready", Database: "ok", Cache: "degraded"},
		},
		{
			name:       "database down",
			database:   down,
			cache:      ok,
			wantStatus: http.StatusServiceUnavailable,
			want:       HealthResponse{Status: "unavailable", Database: "error", Cache: "ok"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &HealthHandler{database: tt.database, cache: tt.cache, log: logger.Discard()}

			status, resp := serveReady(t, h)
			if status != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, status)
			}
			if resp != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, resp)
			}
		})
	}
}
