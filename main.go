// main.go
package main

import (
	"log"

	"flight-booking/cmd"
	"flight-booking/internal/cache"
	"flight-booking/internal/data/repository"
	"flight-booking/internal/events"
	"flight-booking/internal/usecase"
	"flight-booking/internal/wire"
	"flight-booking/pkg/database"
	"flight-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Flight search cache is optional
	var flightCache usecase.FlightCache
	if config.Redis.Addr != "" {
		redisCache := cache.NewFlightCache(config.Redis)
		defer redisCache.Close()
		flightCache = redisCache

		logger.Info("Flight search cache enabled", zap.String("redis_addr", config.Redis.Addr))
	}

	// Booking event producer is optional
	var publisher usecase.EventPublisher
	if brokers := config.KafkaBrokerList(); len(brokers) > 0 {
		producer := events.NewProducer(brokers, config.Kafka.BookingTopic, logger)
		defer producer.Close()
		publisher = producer

		logger.Info("Booking events enabled",
			zap.Strings("brokers", brokers),
			zap.String("topic", config.Kafka.BookingTopic),
		)
	}

	// Wire all dependencies
	app := wire.Wiring(repos, flightCache, publisher, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
