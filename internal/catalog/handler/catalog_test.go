package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "bistro/pkg/errors"
	"bistro/pkg/logger"
	"bistro/pkg/model"

	"github.com/julienschmidt/httprouter"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockCatalogService struct {
	listFunc func(ctx context.Context) ([]model.Product, error)
}

func (m *mockCatalogService) List(ctx context.Context) ([]model.Product, error) {
	return m.listFunc(ctx)
}

func (m *mockCatalogService) Seed(ctx context.Context, products []model.Product) error {
	return nil
}

func newRouter(svc *mockCatalogService) *httprouter.Router {
	router := httprouter.New()
	NewCatalogHandler(svc, logger.Discard()).RegisterRoutes(router)
	return router
}

func TestList(t *testing.T) {
	router := newRouter(&mockCatalogService{
		listFunc: func(ctx context.Context) ([]model.Product, error) {
			return []model.Product{{ID: "pizza", Name: "Pizza", Price: decimal.RequireFromString("20.5")}}, nil
		},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":"pizza","name":"Pizza","price":20.5}]`, rec.Body.String())
}

func TestList_Error(t *testing.T) {
	router := newRouter(&mockCatalogService{
		listFunc: func(ctx context.Context) ([]model.Product, error) {
			return nil, apperrors.Internal("Failed to list products", errors.New("db down"))
		},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body apperrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, apperrors.CodeInternal, body.Code)
}
