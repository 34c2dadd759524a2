package main

import (
	"fmt"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/lastmile/backend/internal/pkg/config"
	"github.com/lastmile/backend/internal/pkg/database"
	"github.com/lastmile/backend/internal/pkg/health"
	"github.com/lastmile/backend/internal/pkg/logger"
	"github.com/lastmile/backend/services/rider/gateway"
	"github.com/lastmile/backend/services/rider/handler"
	"github.com/lastmile/backend/services/rider/repository"
	"github.com/lastmile/backend/services/rider/usecase"
)

func main() {
	appName := "rider-service"
	configPath := "config/rider.env"
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

	// Initialize repository
	riderRepo := repository.NewRiderRepository(configs, postgresClient.GetDB())

	// Initialize gateway
	riderGW := gateway.NewRiderGW(configs)

	// Initialize usecase
	riderUC := usecase.NewRiderUC(configs, riderRepo, riderGW)

	// Initialize handlers
	h := handler.NewHandler(riderUC)

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
