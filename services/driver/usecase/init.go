package usecase

import (
	"github.com/lastmile/backend/internal/pkg/models"
	"github.com/lastmile/backend/services/driver"
)

// DriverUC implements the driver ledger business logic
type DriverUC struct {
	cfg        *models.Config
	driverRepo driver.DriverRepo
	driverGW   driver.DriverGW
}

// NewDriverUC creates a new driver usecase
func NewDriverUC(cfg *models.Config, driverRepo driver.DriverRepo, driverGW driver.DriverGW) *DriverUC {
	return &DriverUC{
		cfg:        cfg,
		driverRepo: driverRepo,
		driverGW:   driverGW,
	}
}
