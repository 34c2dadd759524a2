package usecase

import (
	"github.com/lastmile/backend/internal/pkg/models"
	"github.com/lastmile/backend/services/match"
)

// MatchUC implements the match business logic
type MatchUC struct {
	cfg       *models.Config
	matchRepo match.MatchRepo
	matchGW   match.MatchGW
}

// NewMatchUC creates a new match usecase
func NewMatchUC(
	cfg *models.Config,
	matchRepo match.MatchRepo,
	matchGW match.MatchGW,
) *MatchUC {
	return &MatchUC{
		cfg:       cfg,
		matchRepo: matchRepo,
		matchGW:   matchGW,
	}
}
