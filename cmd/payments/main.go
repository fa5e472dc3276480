package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/pollvault/payments-service/internal/pkg/config"
	"github.com/pollvault/payments-service/internal/pkg/database"
	"github.com/pollvault/payments-service/internal/pkg/health"
	"github.com/pollvault/payments-service/internal/pkg/logger"
	"github.com/pollvault/payments-service/internal/pkg/middleware"
	nsqpkg "github.com/pollvault/payments-service/internal/pkg/nsq"
	"github.com/pollvault/payments-service/internal/pkg/server"
	"github.com/pollvault/payments-service/services/payments/gateway"
	"github.com/pollvault/payments-service/services/payments/handler"
	httpHandler "github.com/pollvault/payments-service/services/payments/handler/http"
	"github.com/pollvault/payments-service/services/payments/repository"
	"github.com/pollvault/payments-service/services/payments/usecase"
)

func main() {
	appName := "payments-service"
	configPath := config.GetEnv("CONFIG_PATH", "config/payments.env")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NSQ producer for transaction events
	var producer *nsqpkg.Producer
	if configs.NSQ.Address != "" {
		producer, err = nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
		}
		defer producer.Stop()
	}

	// Initialize repository
	paymentRepo := repository.NewPaymentRepo(configs, postgresClient.GetDB(), redisClient)

	// Initialize gateway
	paymentGW := gateway.NewPaymentGW(configs, producer)

	// Initialize usecase
	paymentUC := usecase.NewPaymentUC(configs, paymentRepo, paymentGW)

	// Initialize handlers
	paymentHandler := httpHandler.NewPaymentHandler(paymentUC)
	h := handler.NewHandler(paymentHandler, configs)

	// Initialize Echo router
	e := echo.New()

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName,
		health.NewPostgresHealthChecker(postgresClient),
		health.NewRedisHealthChecker(redisClient),
	)

	// Register service routes
	h.RegisterRoutes(e)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server error", logger.Err(err))
	}
}
