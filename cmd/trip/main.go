package main

import (
	"fmt"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/lastmile/backend/internal/pkg/config"
	"github.com/lastmile/backend/internal/pkg/database"
	"github.com/lastmile/backend/internal/pkg/health"
	"github.com/lastmile/backend/internal/pkg/logger"
	"github.com/lastmile/backend/services/trip/gateway"
	"github.com/lastmile/backend/services/trip/handler"
	"github.com/lastmile/backend/services/trip/repository"
	"github.com/lastmile/backend/services/trip/usecase"
)

func main() {
	appName := "trip-service"
	configPath := "config/trip.env"
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

	// Initialize repository
	tripRepo := repository.NewTripRepository(configs, postgresClient.GetDB())

	// Initialize gateway
	tripGW := gateway.NewTripGW(configs, redisClient)

	// Initialize usecase
	tripUC := usecase.NewTripUC(configs, tripRepo, tripGW)

	// Initialize handlers
	h := handler.NewHandler(tripUC, redisClient)

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
