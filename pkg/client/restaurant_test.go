package client

import (
	apperrors "bistro/pkg/errors"
	"bistro/pkg/logger"
	"bistro/pkg/model"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *RestaurantClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewRestaurantClient(srv.URL, time.Second, logger.Discard())
}

func TestRestaurantClient_Products(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, ProductsPath, r.URL.Path)
		_, _ = w.Write([]byte(`[{"id":"cake","name":"Cake","price":9.5,"params":{}}]`))
	})

	products, err := c.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "cake", products[0].ID)
	assert.True(t, products[0].Price.Equal(decimal.RequireFromString("9.5")))
}

func TestRestaurantClient_QueryParameters(t *testing.T) {
	var got []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = append(got, r.URL.Path+"?"+r.URL.RawQuery)
		_, _ = w.Write([]byte(`[]`))
	})
	ctx := context.Background()

	_, err := c.Bookings(ctx, "2023-06-01", "2023-06-14")
	require.NoError(t, err)
	_, err = c.OneOffEvents(ctx, "2023-06-01", "2023-06-14")
	require.NoError(t, err)
	_, err = c.RecurringEvents(ctx, "2023-06-14")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/bookings?end=2023-06-14&start=2023-06-01",
		"/events?end=2023-06-14&repeat=false&start=2023-06-01",
		"/events?end=2023-06-14&repeat=daily",
	}, got)
}

func TestRestaurantClient_RecurringEventsDecodeRepeat(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"date":"2023-06-01","hour":"18:00","duration":1,"table":2,"repeat":"daily"},
			{"date":"2023-06-01","hour":"12:00","duration":2,"table":1,"repeat":false}]`))
	})

	events, err := c.RecurringEvents(context.Background(), "2023-06-03")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.True(t, events[0].Repeat.IsDaily())
	assert.False(t, events[1].Repeat.IsDaily())
}

func TestRestaurantClient_Errors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantCode string
	}{
		{"server error", http.StatusInternalServerError, `{"code":"INTERNAL_ERROR"}`, apperrors.CodeTransportFailure},
		{"not found", http.StatusNotFound, ``, apperrors.CodeTransportFailure},
		{"malformed body", http.StatusOK, `{"not":"a list"`, apperrors.CodeMalformedResponse},
		{"wrong shape", http.StatusOK, `{"id":"x"}`, apperrors.CodeMalformedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := c.Bookings(context.Background(), "2023-06-01", "2023-06-02")
			require.Error(t, err)
			assert.True(t, apperrors.HasCode(err, tt.wantCode), "got %v", err)
		})
	}
}

func TestRestaurantClient_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	c := NewRestaurantClient(srv.URL, time.Second, logger.Discard())

	err := c.SubmitOrder(context.Background(), model.Order{})
	require.Error(t, err)
	appErr := apperrors.AsAppError(err)
	assert.Equal(t, apperrors.CodeTransportFailure, appErr.Code)
	assert.Nil(t, appErr.Details)
}

func TestRestaurantClient_SubmitReservation(t *testing.T) {
	var body map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, BookingsPath, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"1"}`))
	})

	err := c.SubmitReservation(context.Background(), model.Reservation{
		Date: "2023-06-01", Hour: "14:30", Table: 2, Duration: 2, People: 4,
		Starters: []string{"water"}, Phone: "+48123456789", Address: "Main St 1",
	})
	require.NoError(t, err)

	assert.Equal(t, "14:30", body["hour"])
	assert.Equal(t, float64(2), body["table"])
	assert.Equal(t, float64(4), body["ppl"])
	assert.Equal(t, []any{"water"}, body["starters"])
}

func TestRestaurantClient_SubmitOrderRejected(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"code":"VALIDATION_ERROR","message":"totals do not add up"}`))
	})

	err := c.SubmitOrder(context.Background(), model.Order{})
	appErr := apperrors.AsAppError(err)
	assert.Equal(t, apperrors.CodeTransportFailure, appErr.Code)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.Details["status"])
}
