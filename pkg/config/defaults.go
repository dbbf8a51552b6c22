package config

import "time"

const (
	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultConfirmationTTL = 5 * time.Minute

	// Fallback coordinate when geolocation is unavailable (Singapore).
	DefaultDefaultLatitude  = 1.3521
	DefaultDefaultLongitude = 103.8198
	DefaultGeolocateTimeout = 5 * time.Second

	DefaultAdviceTimeout = 10 * time.Second

	DefaultKafkaTopic = "booking-events"
)
