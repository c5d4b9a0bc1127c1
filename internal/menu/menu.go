package menu

import (
	"bistro/pkg/config"
	"bistro/pkg/logger"
	"bistro/pkg/model"
	"context"
)

type Catalog interface {
	Products(ctx context.Context) ([]model.Product, error)
}

// Load fetches the catalog and builds one Item per product, in catalog
// order. Every item's AddToCart is forwarded to onAdd when it is non-nil.
func Load(ctx context.Context, catalog Catalog, cfg config.Engine, log *logger.Logger, onAdd func(model.CartProduct)) ([]*Item, error) {
	products, err := catalog.Products(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]*Item, 0, len(products))
	for _, p := range products {
		it := NewItem(p, cfg, log)
		if onAdd != nil {
			it.AddToCart.Subscribe(onAdd)
		}
		items = append(items, it)
	}

	log.Info("menu loaded", "products", len(items))
	return items, nil
}
