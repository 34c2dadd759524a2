package main

import (
	"fmt"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/lastmile/backend/internal/pkg/config"
	"github.com/lastmile/backend/internal/pkg/database"
	"github.com/lastmile/backend/internal/pkg/health"
	"github.com/lastmile/backend/internal/pkg/logger"
	"github.com/lastmile/backend/internal/pkg/nats"
	"github.com/lastmile/backend/services/driver/gateway"
	"github.com/lastmile/backend/services/driver/handler"
	"github.com/lastmile/backend/services/driver/repository"
	"github.com/lastmile/backend/services/driver/usecase"
)

func main() {
	appName := "driver-service"
	configPath := "config/driver.env"
	configs := config.InitConfig(configPath)

	// Initialize logger
	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		log.Fatalf("Failed to connect to NATS: %v", err)
	}
	defer natsClient.Close()

	// Initialize repository
	driverRepo := repository.NewDriverRepository(configs, postgresClient.GetDB())

	// Initialize gateway
	driverGW := gateway.NewDriverGW(natsClient, redisClient)

	// Initialize usecase
	driverUC := usecase.NewDriverUC(configs, driverRepo, driverGW)

	// Initialize handlers
	h := handler.NewHandler(driverUC, redisClient)

	// Initialize Echo server
	e := echo.New()

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	h.RegisterRoutes(e)

	// Start server
	log.Printf("Starting %s on port %d", appName, configs.Server.Port)
	if err := e.Start(fmt.Sprintf(":%d", configs.Server.Port)); err != nil {
		log.Fatalf("Failed to start %s: %v", appName, err)
	}
}
