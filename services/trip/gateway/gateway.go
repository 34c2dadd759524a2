package gateway

import (
	"github.com/lastmile/backend/internal/pkg/database"
	httppkg "github.com/lastmile/backend/internal/pkg/http"
	"github.com/lastmile/backend/internal/pkg/models"
)

// TripGW implements the trip service's outbound calls: HTTP to the driver
// and rider services, Redis pub/sub for trip update records.
type TripGW struct {
	cfg          *models.Config
	driverClient *httppkg.Client
	riderClient  *httppkg.Client
	redisClient  *database.RedisClient
}

// NewTripGW creates a new trip gateway
func NewTripGW(cfg *models.Config, redisClient *database.RedisClient) *TripGW {
	return &TripGW{
		cfg:          cfg,
		driverClient: httppkg.NewClient(cfg.Services.DriverServiceURL, 0),
		riderClient:  httppkg.NewClient(cfg.Services.RiderServiceURL, 0),
		redisClient:  redisClient,
	}
}
