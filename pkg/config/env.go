package config

const (
	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DATABASE_NAME"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"

	EnvRedisAddr       = "REDIS_ADDR"
	EnvRedisPassword   = "REDIS_PASSWORD"
	EnvRedisDB         = "REDIS_DB"
	EnvCatalogCacheTTL = "CATALOG_CACHE_TTL"

	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvPhoneRegion = "PHONE_DEFAULT_REGION"

	EnvOrdersTopic   = "KAFKA_ORDERS_TOPIC"
	EnvBookingsTopic = "KAFKA_BOOKINGS_TOPIC"

	EnvAmountMin         = "AMOUNT_MIN"
	EnvAmountMax         = "AMOUNT_MAX"
	EnvAmountDefault     = "AMOUNT_DEFAULT"
	EnvDeliveryFee       = "DELIVERY_FEE"
	EnvBookingWindowDays = "BOOKING_WINDOW_DAYS"
	EnvBookingOpenHour   = "BOOKING_OPEN_HOUR"
	EnvBookingCloseHour  = "BOOKING_CLOSE_HOUR"
	EnvBookingTables     = "BOOKING_TABLES"
	EnvAPIBaseURL        = "API_BASE_URL"
	EnvAPIClientTimeout  = "API_CLIENT_TIMEOUT"
)
