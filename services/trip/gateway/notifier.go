package gateway

import (
	"context"
	"fmt"

	"github.com/lastmile/backend/internal/pkg/constants"
	"github.com/lastmile/backend/internal/pkg/events"
)

// PublishTripUpdate pushes a record on the trip's updates channel
func (g *TripGW) PublishTripUpdate(ctx context.Context, tripID, status string) error {
	channel := fmt.Sprintf(constants.ChannelTripUpdates, tripID)
	return g.redisClient.Publish(ctx, channel, events.EncodeTripUpdate(tripID, status))
}
