package repository

import (
	"context"
	"fmt"

	"bistro/pkg/config"
	mongodb "bistro/pkg/db/mongo"
	"bistro/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	EventsCollectionName = "Events"
)

type EventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	FindOneOff(ctx context.Context, start, end string) ([]model.Event, error)
	FindRecurring(ctx context.Context, end string) ([]model.Event, error)
}

type mongoEventRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoEventRepository(cfg *config.Config) EventRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoEventRepository{
		cfg:        cfg,
		collection: db.Collection(EventsCollectionName),
	}
}

func (r *mongoEventRepository) Create(ctx context.Context, event *model.Event) error {
	ctx, cancel := mongodb.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	result, err := r.collection.InsertOne(ctx, event)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		event.ID = oid.Hex()
	}
	return nil
}

func (r *mongoEventRepository) FindOneOff(ctx context.Context, start, end string) ([]model.Event, error) {
	filter := dateRangeFilter(start, end)
	filter["repeat"] = ""
	return r.find(ctx, filter)
}

// FindRecurring returns daily events that started on or before end.
func (r *mongoEventRepository) FindRecurring(ctx context.Context, end string) ([]model.Event, error) {
	filter := dateRangeFilter("", end)
	filter["repeat"] = model.RepeatDaily
	return r.find(ctx, filter)
}

func (r *mongoEventRepository) find(ctx context.Context, filter bson.M) ([]model.Event, error) {
	ctx, cancel := mongodb.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "hour", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find events: %w", err)
	}
	defer cursor.Close(ctx)

	events := []model.Event{}
	if err = cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode events: %w", err)
	}
	return events, nil
}
