package gateway

import (
	"context"
	"fmt"
	"net/url"

	"github.com/lastmile/backend/internal/pkg/models"
)

// ReserveSeat asks the driver service to reserve one seat. The driver
// service reports capacity exhaustion as a structured failure, not a
// transport error, so ok=false carries no error.
func (g *TripGW) ReserveSeat(ctx context.Context, driverID string, req models.AcceptTripRequest) (bool, error) {
	path := fmt.Sprintf("/internal/drivers/%s/trips", url.PathEscape(driverID))

	env, err := g.driverClient.PostJSON(ctx, path, req, nil)
	if err != nil {
		return false, fmt.Errorf("driver service: %w", err)
	}
	return env.Success, nil
}

// StartDriverTrip flips the driver's trip record to active at pickup
func (g *TripGW) StartDriverTrip(ctx context.Context, driverID, tripID string) error {
	path := fmt.Sprintf("/internal/drivers/%s/trips/%s/start",
		url.PathEscape(driverID), url.PathEscape(tripID))

	env, err := g.driverClient.PostJSON(ctx, path, nil, nil)
	if err != nil {
		return fmt.Errorf("driver service: %w", err)
	}
	if !env.Success {
		return fmt.Errorf("driver service: %s", env.Message)
	}
	return nil
}

// CompleteDriverTrip releases the seat and credits the fare
func (g *TripGW) CompleteDriverTrip(ctx context.Context, driverID, tripID string) error {
	path := fmt.Sprintf("/internal/drivers/%s/trips/%s/complete",
		url.PathEscape(driverID), url.PathEscape(tripID))

	env, err := g.driverClient.PostJSON(ctx, path, nil, nil)
	if err != nil {
		return fmt.Errorf("driver service: %w", err)
	}
	if !env.Success {
		return fmt.Errorf("driver service: %s", env.Message)
	}
	return nil
}

// UpdateRiderRequest mirrors the trip state onto the rider's request
func (g *TripGW) UpdateRiderRequest(ctx context.Context, riderID, tripID string, status models.RideRequestStatus, fare int) error {
	path := fmt.Sprintf("/internal/riders/%s/trips/%s", url.PathEscape(riderID), url.PathEscape(tripID))
	body := map[string]interface{}{
		"status": string(status),
		"fare":   fare,
	}

	env, err := g.riderClient.PostJSON(ctx, path, body, nil)
	if err != nil {
		return fmt.Errorf("rider service: %w", err)
	}
	if !env.Success {
		return fmt.Errorf("rider service: %s", env.Message)
	}
	return nil
}
