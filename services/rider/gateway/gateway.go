package gateway

import (
	"context"
	"fmt"
	"net/url"

	httppkg "github.com/lastmile/backend/internal/pkg/http"
	"github.com/lastmile/backend/internal/pkg/models"
)

// RiderGW implements the rider service's outbound calls to the match service
type RiderGW struct {
	cfg         *models.Config
	matchClient *httppkg.Client
}

// NewRiderGW creates a new rider gateway
func NewRiderGW(cfg *models.Config) *RiderGW {
	return &RiderGW{
		cfg:         cfg,
		matchClient: httppkg.NewClient(cfg.Services.MatchServiceURL, 0),
	}
}

// RequestMatch submits the ride request to the matcher
func (g *RiderGW) RequestMatch(ctx context.Context, req models.MatchRequest) (*models.MatchResult, error) {
	var result models.MatchResult
	env, err := g.matchClient.PostJSON(ctx, "/matches", req, &result)
	if err != nil {
		return nil, fmt.Errorf("match service: %w", err)
	}
	if !env.Success {
		return nil, fmt.Errorf("match service: %s", env.Message)
	}
	return &result, nil
}

// CancelMatch cancels the match produced by the request on the rider's
// behalf
func (g *RiderGW) CancelMatch(ctx context.Context, riderID, matchID string) error {
	path := fmt.Sprintf("/matches/%s/cancel", url.PathEscape(matchID))
	body := map[string]string{"rider_id": riderID}
	env, err := g.matchClient.PostJSON(ctx, path, body, nil)
	if err != nil {
		return fmt.Errorf("match service: %w", err)
	}
	if !env.Success {
		return fmt.Errorf("match service: %s", env.Message)
	}
	return nil
}
