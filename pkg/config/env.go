package config

const (
	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvConfirmationTTL = "CONFIRMATION_TTL"

	EnvDefaultLatitude  = "DEFAULT_LATITUDE"
	EnvDefaultLongitude = "DEFAULT_LONGITUDE"
	EnvGeolocateURL     = "GEOLOCATE_URL"
	EnvGeolocateTimeout = "GEOLOCATE_TIMEOUT"

	EnvAdviceURL     = "ADVICE_URL"
	EnvAdviceAPIKey  = "ADVICE_API_KEY"
	EnvAdviceTimeout = "ADVICE_TIMEOUT"

	EnvKafkaBrokers = "KAFKA_BROKERS"
	EnvKafkaTopic   = "KAFKA_TOPIC"

	EnvDirectoryFile = "DIRECTORY_FILE"
)
