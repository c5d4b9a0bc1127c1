package service

import (
	"context"
	"errors"
	"testing"

	"bistro/internal/catalog/validator"
	"bistro/pkg/config"
	apperrors "bistro/pkg/errors"
	"bistro/pkg/logger"
	"bistro/pkg/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockProductRepository struct {
	findAllFunc func(ctx context.Context) ([]model.Product, error)
	upserted    []string
}

func (m *mockProductRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx)
	}
	return []model.Product{}, nil
}

func (m *mockProductRepository) Upsert(ctx context.Context, product *model.Product) error {
	m.upserted = append(m.upserted, product.ID)
	return nil
}

type mockProductCache struct {
	products    []model.Product
	hit         bool
	getErr      error
	setErr      error
	sets        int
	invalidated int
}

func (m *mockProductCache) Get(ctx context.Context) ([]model.Product, bool, error) {
	return m.products, m.hit, m.getErr
}

func (m *mockProductCache) Set(ctx context.Context, products []model.Product) error {
	m.sets++
	if m.setErr != nil {
		return m.setErr
	}
	m.products, m.hit = products, true
	return nil
}

func (m *mockProductCache) Invalidate(ctx context.Context) error {
	m.invalidated++
	m.products, m.hit = nil, false
	return nil
}

func testConfig() *config.Config {
	return &config.Config{Log: logger.Discard()}
}

func newTestService(repo *mockProductRepository, cache *mockProductCache) CatalogService {
	cfg := testConfig()
	return NewCatalogService(repo, cache, validator.NewProductValidator(cfg.Log), cfg)
}

func TestList_CacheHit(t *testing.T) {
	repo := &mockProductRepository{
		findAllFunc: func(ctx context.Context) ([]model.Product, error) {
			t.Fatal("database should not be read on a cache hit")
			return nil, nil
		},
	}
	cache := &mockProductCache{products: []model.Product{{ID: "cake"}}, hit: true}

	products, err := newTestService(repo, cache).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "cake", products[0].ID)
}

func TestList_CacheMissFillsCache(t *testing.T) {
	calls := 0
	repo := &mockProductRepository{
		findAllFunc: func(ctx context.Context) ([]model.Product, error) {
			calls++
			return []model.Product{{ID: "pizza"}, {ID: "salad"}}, nil
		},
	}
	cache := &mockProductCache{}
	svc := newTestService(repo, cache)

	first, err := svc.List(context.Background())
	require.NoError(t, err)
	second, err := svc.List(context.Background())
	require.NoError(t, err)

	assert.Len(t, first, 2)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, cache.sets)
}

func TestList_CacheOutageDegradesToDatabase(t *testing.T) {
	repo := &mockProductRepository{
		findAllFunc: func(ctx context.Context) ([]model.Product, error) {
			return []model.Product{{ID: "pizza"}}, nil
		},
	}
	cache := &mockProductCache{getErr: errors.New("connection refused"), setErr: errors.New("connection refused")}

	products, err := newTestService(repo, cache).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "pizza", products[0].ID)
}

func TestList_DatabaseError(t *testing.T) {
	repo := &mockProductRepository{
		findAllFunc: func(ctx context.Context) ([]model.Product, error) {
			return nil, errors.New("server selection timeout")
		},
	}

	_, err := newTestService(repo, &mockProductCache{}).List(context.Background())
	assert.True(t, apperrors.HasCode(err, apperrors.CodeInternal))
}

func TestSeed(t *testing.T) {
	repo := &mockProductRepository{}
	cache := &mockProductCache{products: []model.Product{{ID: "old"}}, hit: true}

	err := newTestService(repo, cache).Seed(context.Background(), []model.Product{
		{ID: "pizza", Name: "Pizza", Price: decimal.NewFromInt(20)},
		{ID: "salad", Name: "Salad", Price: decimal.NewFromInt(9)},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"pizza", "salad"}, repo.upserted)
	assert.Equal(t, 1, cache.invalidated)
}

func TestSeed_InvalidProductWritesNothing(t *testing.T) {
	repo := &mockProductRepository{}

	err := newTestService(repo, &mockProductCache{}).Seed(context.Background(), []model.Product{
		{ID: "pizza", Name: "Pizza", Price: decimal.NewFromInt(20)},
		{ID: "broken", Name: "", Price: decimal.NewFromInt(1)},
	})

	assert.True(t, apperrors.HasCode(err, apperrors.CodeValidation))
	assert.Empty(t, repo.upserted)
}
