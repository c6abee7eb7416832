package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"

	"github.com/hallaoui/ferme-ops/api-gateway/config"
	"github.com/hallaoui/ferme-ops/api-gateway/health"
	"github.com/hallaoui/ferme-ops/api-gateway/middleware"
	"github.com/hallaoui/ferme-ops/api-gateway/proxy"
	"github.com/hallaoui/ferme-ops/api-gateway/routes"
	"github.com/hallaoui/ferme-ops/pkg/logger"
	"github.com/hallaoui/ferme-ops/pkg/tracing"
)

func main() {
	serviceName := getEnv("OTEL_SERVICE_NAME", "api-gateway")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)
	logger.SetLevel(getEnv("LOG_LEVEL", "info"))

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Msg("Starting API gateway")

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

	cfg := config.LoadConfig()

	// Redis backs the response cache and rate limiter, both optional
	redisClient := connectRedis()
	if redisClient != nil {
		defer redisClient.Close()
	}

	rp, err := proxy.NewReverseProxy(cfg)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to create reverse proxy")
	}

	checker := health.NewHealthChecker(cfg)
	cbManager := middleware.NewCircuitBreakerManager()

	app := fiber.New(fiber.Config{
		AppName:               "ferme-ops-gateway",
		DisableStartupMessage: !isDevelopment,
		ErrorHandler:          customErrorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.TracingMiddleware())
	app.Use(middleware.StructuredLoggingMiddleware())
	if redisClient != nil {
		app.Use(middleware.CacheMiddleware(redisClient, middleware.DefaultCacheConfig()))
	}
	app.Use(middleware.CircuitBreakerMiddleware(cbManager))
	app.Use(fiberlogger.New())
	if redisClient != nil {
		app.Use(middleware.GlobalRateLimiter(redisClient))
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "*",
	}))
	app.Use(compress.New())

	routes.SetupRoutes(app, rp, checker, cbManager)

	go func() {
		logger.Logger.Info().
			Str("port", cfg.Port).
			Msg("Gateway listening")

		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to start gateway")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down gateway...")

	if err := app.Shutdown(); err != nil {
		logger.Logger.Error().Err(err).Msg("Gateway shutdown error")
	}
}

func connectRedis() *redis.Client {
	addr := getEnv("REDIS_ADDR", "localhost:6379")
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Logger.Warn().
			Err(err).
			Str("addr", addr).
			Msg("Redis unavailable, caching and rate limiting disabled")
		client.Close()
		return nil
	}

	logger.Logger.Info().Str("addr", addr).Msg("Connected to Redis")
	return client
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	logger.Error(c.UserContext()).
		Err(err).
		Str("path", c.Path()).
		Int("status", code).
		Msg("Gateway error")

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
