package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "bistro"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultRedisAddr       = "localhost:6379"
	DefaultRedisDB         = 0
	DefaultCatalogCacheTTL = 5 * time.Minute

	DefaultPort     = "3131"
	DefaultLogLevel = "info"

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultPhoneRegion = "PL"

	DefaultOrdersTopic   = "orders"
	DefaultBookingsTopic = "bookings"

	DefaultAmountMin         = 1
	DefaultAmountMax         = 9
	DefaultAmountDefault     = 1
	DefaultDeliveryFee       = "20"
	DefaultBookingWindowDays = 14
	DefaultBookingOpenHour   = 12.0
	DefaultBookingCloseHour  = 24.0
	DefaultBookingTables     = "1,2,3"
	DefaultAPIBaseURL        = "http://localhost:3131"
	DefaultAPIClientTimeout  = 10 * time.Second
)
