package gateway

import (
	"context"
	"fmt"

	"github.com/lastmile/backend/internal/pkg/constants"
)

// NotifyRider pushes a record on the rider's match-status channel
func (g *MatchGW) NotifyRider(ctx context.Context, riderID, record string) error {
	channel := fmt.Sprintf(constants.ChannelMatchStatus, riderID)
	return g.redisClient.Publish(ctx, channel, record)
}

// NotifyDriver pushes a record on the driver's dashboard channel
func (g *MatchGW) NotifyDriver(ctx context.Context, driverID, record string) error {
	channel := fmt.Sprintf(constants.ChannelDriverDashboard, driverID)
	return g.redisClient.Publish(ctx, channel, record)
}
