package gateway

import (
	"context"
	"fmt"
	"net/url"

	"github.com/lastmile/backend/internal/pkg/models"
)

// ListDrivers fetches driver projections serving the given station
func (g *MatchGW) ListDrivers(ctx context.Context, station string) ([]models.DriverInfo, error) {
	path := "/drivers"
	if station != "" {
		path += "?station=" + url.QueryEscape(station)
	}

	var infos []models.DriverInfo
	env, err := g.driverClient.GetJSON(ctx, path, &infos)
	if err != nil {
		return nil, fmt.Errorf("driver service: %w", err)
	}
	if !env.Success {
		return nil, fmt.Errorf("driver service: %s", env.Message)
	}
	return infos, nil
}

// GetDriver fetches one driver's full state
func (g *MatchGW) GetDriver(ctx context.Context, driverID string) (*models.Driver, error) {
	var d models.Driver
	env, err := g.driverClient.GetJSON(ctx, "/drivers/"+url.PathEscape(driverID), &d)
	if err != nil {
		return nil, fmt.Errorf("driver service: %w", err)
	}
	if !env.Success {
		return nil, fmt.Errorf("driver service: %s", env.Message)
	}
	return &d, nil
}

// GetStationCoords resolves a station name via the station oracle
func (g *MatchGW) GetStationCoords(ctx context.Context, station string) (*models.Station, error) {
	var s models.Station
	env, err := g.stationClient.GetJSON(ctx, "/stations/"+url.PathEscape(station), &s)
	if err != nil {
		return nil, fmt.Errorf("station service: %w", err)
	}
	if !env.Success {
		return nil, fmt.Errorf("station service: %s", env.Message)
	}
	return &s, nil
}

// CreateTrip asks the trip service to create the trip for a confirmed match
func (g *MatchGW) CreateTrip(ctx context.Context, req models.CreateTripRequest) (*models.Trip, error) {
	var trip models.Trip
	env, err := g.tripClient.PostJSON(ctx, "/trips", req, &trip)
	if err != nil {
		return nil, fmt.Errorf("trip service: %w", err)
	}
	if !env.Success {
		return nil, fmt.Errorf("trip service: %s", env.Message)
	}
	return &trip, nil
}

// ClearRiderRequest tells the rider service the request reached a terminal
// state with no trip
func (g *MatchGW) ClearRiderRequest(ctx context.Context, riderID, matchID string, status models.MatchStatus) error {
	path := fmt.Sprintf("/internal/riders/%s/requests/%s/status",
		url.PathEscape(riderID), url.PathEscape(matchID))
	body := map[string]string{"status": string(status)}

	env, err := g.riderClient.PostJSON(ctx, path, body, nil)
	if err != nil {
		return fmt.Errorf("rider service: %w", err)
	}
	if !env.Success {
		return fmt.Errorf("rider service: %s", env.Message)
	}
	return nil
}
