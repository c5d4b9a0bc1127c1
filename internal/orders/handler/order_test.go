package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "bistro/pkg/errors"
	"bistro/pkg/logger"
	"bistro/pkg/model"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockOrderService struct {
	createFunc func(ctx context.Context, order *model.Order) error
}

func (m *mockOrderService) Create(ctx context.Context, order *model.Order) error {
	return m.createFunc(ctx, order)
}

func newRouter(svc *mockOrderService) *httprouter.Router {
	router := httprouter.New()
	NewOrderHandler(svc, logger.Discard()).RegisterRoutes(router)
	return router
}

const orderBody = `{
	"address": "Long Street 12",
	"phone": "+48601234567",
	"totalPrice": 70,
	"subTotalPrice": 50,
	"totalNumber": 2,
	"deliveryFee": 20,
	"products": [
		{"id": "pizza", "amount": 2, "price": 50, "priceSingle": 25, "name": "Pizza",
		 "params": {"toppings": {"label": "Toppings", "options": {"olives": "Olives"}}}}
	]
}`

func TestCreate(t *testing.T) {
	var got model.Order
	router := newRouter(&mockOrderService{
		createFunc: func(ctx context.Context, order *model.Order) error {
			order.ID = "0b7f1a6e-0000-4000-8000-000000000000"
			got = *order
			return nil
		},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(orderBody)))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Pizza", got.Products[0].Name)
	assert.Equal(t, "Olives", got.Products[0].Params["toppings"].Options["olives"])
	assert.True(t, got.TotalPrice.Equal(got.SubTotalPrice.Add(got.DeliveryFee)))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "0b7f1a6e-0000-4000-8000-000000000000", body["id"])
	assert.Equal(t, float64(70), body["totalPrice"])
}

func TestCreate_InvalidBody(t *testing.T) {
	router := newRouter(&mockOrderService{
		createFunc: func(ctx context.Context, order *model.Order) error {
			t.Fatal("service should not be called")
			return nil
		},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader("{")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreate_ValidationError(t *testing.T) {
	router := newRouter(&mockOrderService{
		createFunc: func(ctx context.Context, order *model.Order) error {
			return apperrors.Validation("Invalid order", map[string]any{"TotalPrice": "mismatch"})
		},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(orderBody)))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "TotalPrice")
}
