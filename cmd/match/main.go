package main

import (
	"context"
	"fmt"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/lastmile/backend/internal/pkg/config"
	"github.com/lastmile/backend/internal/pkg/database"
	"github.com/lastmile/backend/internal/pkg/health"
	"github.com/lastmile/backend/internal/pkg/logger"
	"github.com/lastmile/backend/internal/pkg/nats"
	"github.com/lastmile/backend/services/match/gateway"
	"github.com/lastmile/backend/services/match/handler"
	"github.com/lastmile/backend/services/match/repository"
	"github.com/lastmile/backend/services/match/usecase"
)

func main() {
	appName := "match-service"
	configPath := "config/match.env"
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
	matchRepo := repository.NewMatchRepository(configs, postgresClient.GetDB())

	// Initialize gateway
	matchGW := gateway.NewMatchGW(configs, redisClient)

	// Initialize usecase
	matchUC := usecase.NewMatchUC(configs, matchRepo, matchGW)

	// Initialize handlers
	h := handler.NewHandler(matchUC, redisClient)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize the driver-events consumer
	sub, err := h.SubscribeDriverEvents(ctx, natsClient)
	if err != nil {
		log.Fatalf("Failed to subscribe to driver events: %v", err)
	}
	defer sub.Unsubscribe()

	// Start the stale match sweeper
	go matchUC.StartSweeper(ctx)

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
