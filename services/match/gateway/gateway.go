package gateway

import (
	"github.com/lastmile/backend/internal/pkg/database"
	httppkg "github.com/lastmile/backend/internal/pkg/http"
	"github.com/lastmile/backend/internal/pkg/models"
)

// MatchGW implements the match service's outbound calls: HTTP to the
// driver, trip, rider and station services, Redis pub/sub for rider and
// driver notifications.
type MatchGW struct {
	cfg           *models.Config
	driverClient  *httppkg.Client
	tripClient    *httppkg.Client
	riderClient   *httppkg.Client
	stationClient *httppkg.Client
	redisClient   *database.RedisClient
}

// NewMatchGW creates a new match gateway
func NewMatchGW(cfg *models.Config, redisClient *database.RedisClient) *MatchGW {
	return &MatchGW{
		cfg:           cfg,
		driverClient:  httppkg.NewClient(cfg.Services.DriverServiceURL, 0),
		tripClient:    httppkg.NewClient(cfg.Services.TripServiceURL, 0),
		riderClient:   httppkg.NewClient(cfg.Services.RiderServiceURL, 0),
		stationClient: httppkg.NewClient(cfg.Services.StationServiceURL, 0),
		redisClient:   redisClient,
	}
}
