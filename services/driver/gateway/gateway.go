package gateway

import (
	"context"
	"fmt"

	"github.com/lastmile/backend/internal/pkg/constants"
	"github.com/lastmile/backend/internal/pkg/database"
	"github.com/lastmile/backend/internal/pkg/events"
	natspkg "github.com/lastmile/backend/internal/pkg/nats"
)

// DriverGW publishes driver ledger events: availability records on NATS and
// dashboard records on the driver's Redis channel.
type DriverGW struct {
	natsClient  *natspkg.Client
	redisClient *database.RedisClient
}

// NewDriverGW creates a new driver gateway
func NewDriverGW(natsClient *natspkg.Client, redisClient *database.RedisClient) *DriverGW {
	return &DriverGW{
		natsClient:  natsClient,
		redisClient: redisClient,
	}
}

// PublishAvailability emits an AVAILABLE record on the driver-events subject
func (g *DriverGW) PublishAvailability(ctx context.Context, ev events.DriverAvailability) error {
	record := events.EncodeDriverAvailability(constants.RecordAvailable, ev)
	if err := g.natsClient.Publish(constants.SubjectDriverEvents, []byte(record)); err != nil {
		return fmt.Errorf("failed to publish availability: %w", err)
	}
	return nil
}

// PublishDashboard pushes a record on the driver's dashboard channel
func (g *DriverGW) PublishDashboard(ctx context.Context, driverID, record string) error {
	channel := fmt.Sprintf(constants.ChannelDriverDashboard, driverID)
	return g.redisClient.Publish(ctx, channel, record)
}
