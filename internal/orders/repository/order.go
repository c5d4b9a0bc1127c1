package repository

import (
	"context"
	"fmt"
	"time"

	orderserrors "bistro/internal/orders/errors"
	"bistro/pkg/config"
	mongodb "bistro/pkg/db/mongo"
	"bistro/pkg/model"

	"go.mongodb.org/mongo-driver/mongo"
)

const (
	CollectionName = "Orders"
)

type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
}

type mongoOrderRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoOrderRepository(cfg *config.Config) OrderRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoOrderRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

func (r *mongoOrderRepository) Create(ctx context.Context, order *model.Order) error {
	ctx, cancel := mongodb.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	order.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	if _, err := r.collection.InsertOne(ctx, order); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %s", orderserrors.ErrDuplicateOrder, order.ID)
		}
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}
