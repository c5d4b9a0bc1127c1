package events

import (
	"context"

	"bistro/pkg/kafka"
	"bistro/pkg/logger"
	"bistro/pkg/middleware"
)

const (
	OrderPlaced    = "order.placed"
	BookingCreated = "booking.created"

	SchemaVersion = "1"
	Source        = "restaurant-api"
)

// Emitter publishes domain events after they have been stored. A failed
// publish is logged and otherwise ignored: the write it describes has
// already succeeded.
type Emitter struct {
	publisher kafka.Publisher
	log       *logger.Logger
}

func NewEmitter(publisher kafka.Publisher, log *logger.Logger) *Emitter {
	if publisher == nil {
		publisher = kafka.Discard{}
	}
	return &Emitter{
		publisher: publisher,
		log:       log.Component("events"),
	}
}

func (e *Emitter) Emit(ctx context.Context, eventType, key string, payload any) {
	msg := kafka.NewMessage().
		WithKey(key).
		WithValue(payload).
		WithEventType(eventType).
		WithSchemaVersion(SchemaVersion).
		WithSource(Source).
		WithCorrelationID(middleware.RequestID(ctx)).
		Build()

	if err := e.publisher.Publish(ctx, msg); err != nil {
		e.log.Error("Failed to publish event",
			"event_type", eventType,
			"key", key,
			"event_id", msg.GetEventID(),
			"error", err,
		)
	}
}
