package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"matchpoint/pkg/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	RequestTimeout time.Duration
	MaxRequestSize int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	ConfirmationTTL time.Duration

	DefaultLatitude  float64
	DefaultLongitude float64
	GeolocateURL     string
	GeolocateTimeout time.Duration

	AdviceURL     string
	AdviceAPIKey  string
	AdviceTimeout time.Duration

	KafkaBrokers []string
	KafkaTopic   string

	DirectoryFile string

	Log *logger.Logger
}

func Load(serviceName string) *Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		Port: getEnvStr(EnvPort, DefaultPort),

		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		MaxRequestSize: getEnvNum(EnvMaxRequestSize, DefaultMaxRequestSize),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		ConfirmationTTL: getEnvDuration(EnvConfirmationTTL, DefaultConfirmationTTL),

		DefaultLatitude:  getEnvFloat(EnvDefaultLatitude, DefaultDefaultLatitude),
		DefaultLongitude: getEnvFloat(EnvDefaultLongitude, DefaultDefaultLongitude),
		GeolocateURL:     getEnvStr(EnvGeolocateURL, ""),
		GeolocateTimeout: getEnvDuration(EnvGeolocateTimeout, DefaultGeolocateTimeout),

		AdviceURL:     getEnvStr(EnvAdviceURL, ""),
		AdviceAPIKey:  getEnvStr(EnvAdviceAPIKey, ""),
		AdviceTimeout: getEnvDuration(EnvAdviceTimeout, DefaultAdviceTimeout),

		KafkaBrokers: getEnvList(EnvKafkaBrokers),
		KafkaTopic:   getEnvStr(EnvKafkaTopic, DefaultKafkaTopic),

		DirectoryFile: getEnvStr(EnvDirectoryFile, ""),

		Log: logger.New(logger.Config{
			Level:     getEnvStr(EnvLogLevel, DefaultLogLevel),
			Format:    logger.FormatJSON,
			AddSource: true,
			Service:   serviceName,
		}),
	}

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

func (cfg *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	if cfg.RequestTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("RequestTimeout must be positive, got: %s", cfg.RequestTimeout))
	}
	if cfg.MaxRequestSize <= 0 {
		errs = append(errs, fmt.Sprintf("MaxRequestSize must be positive, got: %d", cfg.MaxRequestSize))
	}
	if cfg.ReadTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("ReadTimeout must be positive, got: %s", cfg.ReadTimeout))
	}
	if cfg.WriteTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("WriteTimeout must be positive, got: %s", cfg.WriteTimeout))
	}
	if cfg.IdleTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("IdleTimeout must be positive, got: %s", cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("ShutdownTimeout must be positive, got: %s", cfg.ShutdownTimeout))
	}
	if cfg.ConfirmationTTL <= 0 {
		errs = append(errs, fmt.Sprintf("ConfirmationTTL must be positive, got: %s", cfg.ConfirmationTTL))
	}

	if cfg.DefaultLatitude < -90 || cfg.DefaultLatitude > 90 {
		errs = append(errs, fmt.Sprintf("DefaultLatitude must be between -90 and 90, got: %f", cfg.DefaultLatitude))
	}
	if cfg.DefaultLongitude < -180 || cfg.DefaultLongitude > 180 {
		errs = append(errs, fmt.Sprintf("DefaultLongitude must be between -180 and 180, got: %f", cfg.DefaultLongitude))
	}
	if cfg.GeolocateTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("GeolocateTimeout must be positive, got: %s", cfg.GeolocateTimeout))
	}
	if cfg.AdviceTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("AdviceTimeout must be positive, got: %s", cfg.AdviceTimeout))
	}

	if len(cfg.KafkaBrokers) > 0 && cfg.KafkaTopic == "" {
		errs = append(errs, "KafkaTopic cannot be empty when KafkaBrokers are set")
	}

	if len(errs) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, e := range errs {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, e)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"port", cfg.Port,
		"request_timeout", cfg.RequestTimeout,
		"max_request_size", cfg.MaxRequestSize,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
		"confirmation_ttl", cfg.ConfirmationTTL,
		"default_latitude", cfg.DefaultLatitude,
		"default_longitude", cfg.DefaultLongitude,
		"geolocate_url_set", cfg.GeolocateURL != "",
		"geolocate_timeout", cfg.GeolocateTimeout,
		"advice_url_set", cfg.AdviceURL != "",
		"advice_key_set", cfg.AdviceAPIKey != "",
		"advice_timeout", cfg.AdviceTimeout,
		"kafka_brokers", len(cfg.KafkaBrokers),
		"kafka_topic", cfg.KafkaTopic,
		"directory_file", cfg.DirectoryFile,
	)
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
