package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/hallaoui/ferme-ops/internal/housing"
	housingDelivery "github.com/hallaoui/ferme-ops/internal/housing/delivery/http"
	"github.com/hallaoui/ferme-ops/internal/housing/domain"
	"github.com/hallaoui/ferme-ops/internal/housing/repository"
	"github.com/hallaoui/ferme-ops/internal/occupancy"
	occupancyDelivery "github.com/hallaoui/ferme-ops/internal/occupancy/delivery/http"
	"github.com/hallaoui/ferme-ops/kafka"
	"github.com/hallaoui/ferme-ops/pkg/database"
	"github.com/hallaoui/ferme-ops/pkg/logger"
	"github.com/hallaoui/ferme-ops/pkg/tracing"
)

func main() {
	// Initialize logger
	serviceName := getEnv("OTEL_SERVICE_NAME", "housing-service")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)
	logger.SetLevel(getEnv("LOG_LEVEL", "info"))

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Msg("Starting housing service")

	// Initialize tracer
	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Load database configuration
	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "housingdb"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	// Connect to database
	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Run migrations
	if err := db.AutoMigrate(&domain.Ferme{}, &domain.Worker{}, &domain.Room{}); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	// Kafka publisher for housing change notifications
	brokers := strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ",")
	var publisher *kafka.Publisher
	publisher, err = kafka.NewPublisher(brokers)
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Kafka unavailable, housing events disabled")
		publisher = nil
	} else {
		defer publisher.Close()
	}

	// Initialize handler with Wire DI
	housingHandler, err := housing.InitializeHTTPHandler(db, publisher)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize handler")
	}

	// Occupancy reconciler over the same repositories
	workerRepo := repository.NewGormWorkerRepository(db)
	roomRepo := repository.NewGormRoomRepositoryWithTracing(db)
	occupancyService := occupancy.NewService(workerRepo, roomRepo)
	occupancyHandler := occupancyDelivery.NewOccupancyHandler(occupancyService)

	// Debounced reactive reconciliation driven by housing change events
	debouncer := occupancy.NewDebouncer(occupancy.DefaultDebounceDelay, func(fermeID uint) {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		start := time.Now()
		result, err := occupancyService.ReconcileFerme(ctx, fermeID)
		if err != nil {
			logger.Logger.Error().Err(err).Uint("ferme_id", fermeID).Msg("Reconciliation pass failed")
			return
		}
		occupancyHandler.ObserveBackgroundPass(result, time.Since(start))
	})
	defer debouncer.Stop()

	consumerCtx, consumerCancel := context.WithCancel(context.Background())
	defer consumerCancel()

	if publisher != nil {
		consumer, err := kafka.NewConsumer(brokers, "housing-reconciler", []string{kafka.TopicHousingChanged})
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Kafka consumer unavailable, reactive reconciliation disabled")
		} else {
			defer consumer.Close()
			consumer.RegisterHandler(kafka.EventTypeHousingChanged, func(ctx context.Context, event kafka.HousingChangedEvent) error {
				debouncer.Trigger(event.FermeID)
				return nil
			})
			if err := consumer.Start(consumerCtx); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to start Kafka consumer")
			}
		}
	}

	// Start HTTP server
	httpPort := getEnv("HTTP_PORT", "8081")
	go startHTTPServer(housingHandler, occupancyHandler, sqlDB, httpPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
}

func startHTTPServer(
	housingHandler *housingDelivery.HousingHandler,
	occupancyHandler *occupancyDelivery.OccupancyHandler,
	db *sql.DB,
	port string,
) {
	// Setup router
	router := mux.NewRouter()
	housingHandler.RegisterRoutes(router)
	occupancyHandler.RegisterRoutes(router)
	housingHandler.RegisterHealthCheck(router, db)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	logger.Logger.Info().
		Str("port", port).
		Str("metrics_endpoint", "/metrics").
		Msg("HTTP server started")

	if err := http.ListenAndServe(":"+port, c.Handler(router)); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
