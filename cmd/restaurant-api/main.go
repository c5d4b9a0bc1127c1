package main

import (
	catalogHandler "bistro/internal/catalog/handler"
	catalogRepository "bistro/internal/catalog/repository"
	catalogService "bistro/internal/catalog/service"
	catalogValidator "bistro/internal/catalog/validator"
	orderHandler "bistro/internal/orders/handler"
	orderRepository "bistro/internal/orders/repository"
	orderService "bistro/internal/orders/service"
	orderValidator "bistro/internal/orders/validator"
	reservationHandler "bistro/internal/reservations/handler"
	reservationRepository "bistro/internal/reservations/repository"
	reservationService "bistro/internal/reservations/service"
	reservationValidator "bistro/internal/reservations/validator"
	"bistro/pkg/app"
	"bistro/pkg/config"
	"bistro/pkg/events"
	"bistro/pkg/kafka"
	kafka_config "bistro/pkg/kafka/config"
	kafka_middleware "bistro/pkg/kafka/middleware"
)

const ServiceName = "restaurant-api"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	cfg.SetRedis()

	cfg.Log.Info("Starting Restaurant API")
	serverApp := app.NewApplication(cfg)

	kafkaCfg, err := kafka_config.Load()
	if err != nil {
		cfg.Log.Fatal("Invalid Kafka configuration", "error", err)
	}
	orderEmitter, closeOrders := initEmitter(cfg, kafkaCfg, cfg.OrdersTopic)
	bookingEmitter, closeBookings := initEmitter(cfg, kafkaCfg, cfg.BookingsTopic)
	serverApp.OnShutdown(closeOrders)
	serverApp.OnShutdown(closeBookings)

	serverApp.SetApp(
		initCatalog(cfg),
		initOrders(cfg, orderEmitter),
		initReservations(cfg, bookingEmitter),
	)
	serverApp.Run()
}

func initCatalog(cfg *config.Config) *catalogHandler.CatalogHandler {
	svc := catalogService.NewCatalogService(
		catalogRepository.NewMongoProductRepository(cfg),
		catalogRepository.NewRedisProductCache(cfg.Client.Redis, cfg.CatalogCacheTTL),
		catalogValidator.NewProductValidator(cfg.Log),
		cfg,
	)
	cfg.Log.Info("Catalog service initialized", "cache", cfg.Client.Redis != nil)
	return catalogHandler.NewCatalogHandler(svc, cfg.Log)
}

func initOrders(cfg *config.Config, emitter *events.Emitter) *orderHandler.OrderHandler {
	svc := orderService.NewOrderService(
		orderRepository.NewMongoOrderRepository(cfg),
		orderValidator.NewOrderValidator(cfg.Log),
		emitter,
		cfg,
	)
	cfg.Log.Info("Order service initialized", "database", cfg.MongoDatabaseName)
	return orderHandler.NewOrderHandler(svc, cfg.Log)
}

func initReservations(cfg *config.Config, emitter *events.Emitter) *reservationHandler.ReservationHandler {
	svc := reservationService.NewReservationService(
		reservationRepository.NewMongoBookingRepository(cfg),
		reservationRepository.NewMongoEventRepository(cfg),
		reservationValidator.NewReservationValidator(cfg.Engine.Tables, cfg.Log),
		emitter,
		cfg,
	)
	cfg.Log.Info("Reservation service initialized", "tables", cfg.Engine.Tables)
	return reservationHandler.NewReservationHandler(svc, cfg.Log)
}

// initEmitter returns an emitter publishing to topic, or one that drops
// events when no Kafka brokers are configured.
func initEmitter(cfg *config.Config, kafkaCfg *kafka_config.Config, topic string) (*events.Emitter, func()) {
	if !kafkaCfg.Enabled() {
		cfg.Log.Warn("No Kafka brokers configured, events are not published", "topic", topic)
		return events.NewEmitter(kafka.Discard{}, cfg.Log), func() {}
	}

	producer, err := kafka.NewProducer(kafkaCfg, topic, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "topic", topic, "error", err)
	}
	if kafkaCfg.EnableMiddleware {
		producer.Use(kafka_middleware.LoggingProducerMiddleware(cfg.Log))
	}

	cfg.Log.Info("Kafka producer initialized", "topic", topic, "brokers", kafkaCfg.Brokers)
	return events.NewEmitter(producer, cfg.Log), func() {
		if err := producer.Close(); err != nil {
			cfg.Log.Error("Failed to close Kafka producer", "topic", topic, "error", err)
		}
	}
}
