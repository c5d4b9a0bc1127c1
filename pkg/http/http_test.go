package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "bistro/pkg/errors"
)

func TestWriteJSON_BareBody(t *testing.T) {
	rec := httptest.NewRecorder()
	if err := WriteSuccess(rec, []string{"a", "b"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("expected application/json, got %s", got)
	}
	var body []string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not a bare array: %v", err)
	}
	if len(body) != 2 {
		t.Errorf("expected two elements, got %v", body)
	}
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", apperrors.NotFound("Product"), http.StatusNotFound, apperrors.CodeNotFound},
		{"validation", apperrors.Validation("bad order", nil), http.StatusUnprocessableEntity, apperrors.CodeValidation},
		{"invalid input", apperrors.InvalidInput("bad date"), http.StatusBadRequest, apperrors.CodeInvalidInput},
		{"plain error", errors.New("db down"), http.StatusInternalServerError, apperrors.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			_ = WriteError(rec, tt.err)

			if rec.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			var body apperrors.ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if body.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, body.Code)
			}
		})
	}
}

func TestWriteError_HidesInternalText(t *testing.T) {
	rec := httptest.NewRecorder()
	_ = WriteError(rec, errors.New("password=hunter2"))

	var body apperrors.ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	if body.Message != "Internal server error" {
		t.Errorf("expected generic message, got %q", body.Message)
	}
}

func TestExtractDateRange(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		requireStart bool
		wantStart    string
		wantEnd      string
		wantErr      bool
	}{
		{name: "both present", query: "start=2023-06-01&end=2023-06-14", requireStart: true, wantStart: "2023-06-01", wantEnd: "2023-06-14"},
		{name: "same day", query: "start=2023-06-01&end=2023-06-01", requireStart: true, wantStart: "2023-06-01", wantEnd: "2023-06-01"},
		{name: "optional start missing", query: "end=2023-06-14", requireStart: false, wantEnd: "2023-06-14"},
		{name: "required start missing", query: "end=2023-06-14", requireStart: true, wantErr: true},
		{name: "end missing", query: "start=2023-06-01", requireStart: true, wantErr: true},
		{name: "bad date", query: "start=2023-6-1&end=2023-06-14", requireStart: true, wantErr: true},
		{name: "start after end", query: "start=2023-06-15&end=2023-06-14", requireStart: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/bookings?"+tt.query, nil)
			start, end, err := ExtractDateRange(r, tt.requireStart)

			if tt.wantErr {
				if !apperrors.HasCode(err, apperrors.CodeInvalidInput) {
					t.Errorf("expected INVALID_INPUT, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := formatOrEmpty(start); got != tt.wantStart {
				t.Errorf("start = %q, want %q", got, tt.wantStart)
			}
			if got := formatOrEmpty(end); got != tt.wantEnd {
				t.Errorf("end = %q, want %q", got, tt.wantEnd)
			}
		})
	}
}

func formatOrEmpty(d time.Time) string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}
