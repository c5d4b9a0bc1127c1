package service

import (
	"context"

	"bistro/internal/catalog/repository"
	"bistro/internal/catalog/validator"
	"bistro/pkg/config"
	apperrors "bistro/pkg/errors"
	"bistro/pkg/model"
	"bistro/pkg/validation"
)

type CatalogService interface {
	List(ctx context.Context) ([]model.Product, error)
	Seed(ctx context.Context, products []model.Product) error
}

type catalogService struct {
	repo      repository.ProductRepository
	cache     repository.ProductCache
	validator *validator.ProductValidator
	cfg       *config.Config
}

func NewCatalogService(
	repo repository.ProductRepository,
	cache repository.ProductCache,
	validator *validator.ProductValidator,
	cfg *config.Config,
) CatalogService {
	return &catalogService{
		repo:      repo,
		cache:     cache,
		validator: validator,
		cfg:       cfg,
	}
}

// List serves the menu from the cache when it can. Cache failures are logged
// and the menu is read from the database instead.
func (s *catalogService) List(ctx context.Context) ([]model.Product, error) {
	products, hit, err := s.cache.Get(ctx)
	if err != nil {
		s.cfg.Log.Warn("Catalog cache read failed, reading from database", "error", err)
	}
	if hit {
		return products, nil
	}

	products, err = s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list products", "error", err)
		return nil, apperrors.Internal("Failed to list products", err)
	}

	if err := s.cache.Set(ctx, products); err != nil {
		s.cfg.Log.Warn("Catalog cache write failed", "error", err)
	}
	return products, nil
}

// Seed validates every product before writing any of them, then upserts the
// lot and drops the cached menu.
func (s *catalogService) Seed(ctx context.Context, products []model.Product) error {
	for i := range products {
		if err := s.validator.Validate(&products[i]); err != nil {
			return validation.ToAppError(err, "Invalid product "+products[i].ID)
		}
	}

	for i := range products {
		if err := s.repo.Upsert(ctx, &products[i]); err != nil {
			s.cfg.Log.Error("Failed to seed product", "id", products[i].ID, "error", err)
			return apperrors.Internal("Failed to seed products", err)
		}
	}

	if err := s.cache.Invalidate(ctx); err != nil {
		s.cfg.Log.Warn("Catalog cache invalidation failed", "error", err)
	}

	s.cfg.Log.Info("Catalog seeded", "products", len(products))
	return nil
}
