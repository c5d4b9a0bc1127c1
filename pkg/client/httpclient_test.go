package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewHttpClient_TrimsTrailingSlash(t *testing.T) {
	c := NewHttpClient("http://localhost:8080/", 0)
	if c.BaseURL != "http://localhost:8080" {
		t.Errorf("expected trailing slash trimmed, got %s", c.BaseURL)
	}
	if c.HTTPClient.Timeout != 10*time.Second {
		t.Errorf("expected default timeout, got %v", c.HTTPClient.Timeout)
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"message", `{"code":"VALIDATION_ERROR","message":"Invalid order"}`, "Invalid order"},
		{"code only", `{"code":"CONFLICT"}`, "CONFLICT"},
		{"plain text", "bad gateway\n", "bad gateway"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			resp, err := NewHttpClient(srv.URL, time.Second).GET(context.Background(), "/orders")
			if err != nil {
				t.Fatalf("GET failed: %v", err)
			}
			if resp.OK() {
				t.Errorf("expected non-2xx response")
			}
			if got := ErrorMessage(resp); got != tt.want {
				t.Errorf("ErrorMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
