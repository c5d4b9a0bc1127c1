package repository

import (
	"context"
	"fmt"
	"time"

	reservationserrors "bistro/internal/reservations/errors"
	"bistro/pkg/config"
	mongodb "bistro/pkg/db/mongo"
	"bistro/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	BookingsCollectionName = "Bookings"
)

type BookingRepository interface {
	Create(ctx context.Context, reservation *model.Reservation) error
	FindByDateRange(ctx context.Context, start, end string) ([]model.BookingEntry, error)
}

type mongoBookingRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoBookingRepository(cfg *config.Config) BookingRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoBookingRepository{
		cfg:        cfg,
		collection: db.Collection(BookingsCollectionName),
	}
}

func (r *mongoBookingRepository) Create(ctx context.Context, reservation *model.Reservation) error {
	ctx, cancel := mongodb.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	reservation.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	if _, err := r.collection.InsertOne(ctx, reservation); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %s", reservationserrors.ErrDuplicateBooking, reservation.ID)
		}
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// FindByDateRange returns the table occupancy of every booking dated within
// [start, end]. Contact details are not part of the result.
func (r *mongoBookingRepository) FindByDateRange(ctx context.Context, start, end string) ([]model.BookingEntry, error) {
	ctx, cancel := mongodb.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: 1}, {Key: "hour", Value: 1}}).
		SetProjection(bson.M{"date": 1, "hour": 1, "duration": 1, "table": 1})

	cursor, err := r.collection.Find(ctx, dateRangeFilter(start, end), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []model.BookingEntry{}
	if err = cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// Dates are stored as YYYY-MM-DD strings, which sort the same way as the
// days they name.
func dateRangeFilter(start, end string) bson.M {
	dateFilter := bson.M{"$lte": end}
	if start != "" {
		dateFilter["$gte"] = start
	}
	return bson.M{"date": dateFilter}
}
