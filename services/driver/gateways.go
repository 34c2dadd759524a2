package driver

import (
	"context"

	"github.com/lastmile/backend/internal/pkg/events"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/lastmile/backend/services/driver DriverGW

// DriverGW defines the driver gateways interface
type DriverGW interface {
	// PublishAvailability emits a driver-availability record on the global
	// driver-events subject.
	PublishAvailability(ctx context.Context, ev events.DriverAvailability) error
	// PublishDashboard pushes a record on the driver's dashboard channel.
	PublishDashboard(ctx context.Context, driverID, record string) error
}
