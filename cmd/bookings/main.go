package main

import (
	"matchpoint/internal/advice"
	advicehandler "matchpoint/internal/advice/handler"
	"matchpoint/internal/bookings/events"
	"matchpoint/internal/bookings/handler"
	"matchpoint/internal/bookings/repository"
	"matchpoint/internal/bookings/service"
	"matchpoint/internal/bookings/validator"
	"matchpoint/internal/directory"
	directoryhandler "matchpoint/internal/directory/handler"
	"matchpoint/internal/geolocate"
	"matchpoint/pkg/app"
	"matchpoint/pkg/config"
	"matchpoint/pkg/kafka"
	"matchpoint/pkg/model"
)

const ServiceName = "bookings"

func main() {
	cfg := config.Load(ServiceName)
	cfg.Log.Info("Starting Bookings service")

	dir := initDirectory(cfg)
	publisher, closeProducer := initPublisher(cfg)
	bookingRepo := repository.NewMemoryBookingRepository()
	bookingService := initBookingService(cfg, dir, bookingRepo, publisher)
	coach := advice.NewCoach(cfg.AdviceURL, cfg.AdviceAPIKey, cfg.AdviceTimeout, cfg.Log)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(bookingRepo,
		handler.NewBookingHandler(bookingService, cfg.Log),
		directoryhandler.NewDirectoryHandler(dir, cfg.Log),
		advicehandler.NewAdviceHandler(coach, cfg.Log),
	)
	serverApp.OnShutdown(bookingService.Stop)
	serverApp.OnShutdown(closeProducer)
	serverApp.Run()
}

func initDirectory(cfg *config.Config) *directory.Directory {
	if cfg.DirectoryFile == "" {
		cfg.Log.Info("No directory file configured, using seeded courts and players")
		return directory.NewWithDefaults()
	}

	dir, err := directory.NewFromFile(cfg.DirectoryFile)
	if err != nil {
		cfg.Log.Fatal("Failed to load directory file", "path", cfg.DirectoryFile, "error", err)
	}
	cfg.Log.Info("Directory loaded", "path", cfg.DirectoryFile,
		"courts", len(dir.Courts()), "players", len(dir.Players()))
	return dir
}

func initPublisher(cfg *config.Config) (events.Publisher, func()) {
	if len(cfg.KafkaBrokers) == 0 {
		cfg.Log.Info("No Kafka brokers configured, booking events disabled")
		return events.NewNopPublisher(), func() {}
	}

	producer, err := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}
	cfg.Log.Info("Kafka producer initialized", "topic", cfg.KafkaTopic, "brokers", len(cfg.KafkaBrokers))

	return events.NewKafkaPublisher(producer, cfg.Log), func() {
		if err := producer.Close(); err != nil {
			cfg.Log.Error("Failed to close Kafka producer", "error", err)
		}
	}
}

func initBookingService(
	cfg *config.Config,
	dir *directory.Directory,
	repo repository.BookingRepository,
	publisher events.Publisher,
) service.BookingService {
	fallback := model.GeoLocation{
		Latitude:  cfg.DefaultLatitude,
		Longitude: cfg.DefaultLongitude,
	}

	var locator geolocate.Locator
	if cfg.GeolocateURL != "" {
		locator = geolocate.NewHTTPLocator(cfg.GeolocateURL, cfg.GeolocateTimeout, fallback, cfg.Log)
	} else {
		locator = geolocate.NewStaticLocator(fallback)
	}

	bookingService := service.NewBookingService(
		repo,
		validator.NewBookingValidator(cfg.Log),
		dir,
		locator,
		publisher,
		cfg,
	)

	cfg.Log.Info("Booking service initialized", "confirmation_ttl", cfg.ConfirmationTTL)
	return bookingService
}
