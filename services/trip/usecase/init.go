package usecase

import (
	"github.com/lastmile/backend/internal/pkg/models"
	"github.com/lastmile/backend/services/trip"
)

// TripUC implements the trip business logic
type TripUC struct {
	cfg      *models.Config
	tripRepo trip.TripRepo
	tripGW   trip.TripGW
}

// NewTripUC creates a new trip usecase
func NewTripUC(
	cfg *models.Config,
	tripRepo trip.TripRepo,
	tripGW trip.TripGW,
) *TripUC {
	return &TripUC{
		cfg:      cfg,
		tripRepo: tripRepo,
		tripGW:   tripGW,
	}
}
