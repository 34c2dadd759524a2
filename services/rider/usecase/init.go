package usecase

import (
	"github.com/lastmile/backend/internal/pkg/models"
	"github.com/lastmile/backend/services/rider"
)

// RiderUC implements the rider business logic
type RiderUC struct {
	cfg       *models.Config
	riderRepo rider.RiderRepo
	riderGW   rider.RiderGW
}

// NewRiderUC creates a new rider usecase
func NewRiderUC(
	cfg *models.Config,
	riderRepo rider.RiderRepo,
	riderGW rider.RiderGW,
) *RiderUC {
	return &RiderUC{
		cfg:       cfg,
		riderRepo: riderRepo,
		riderGW:   riderGW,
	}
}
