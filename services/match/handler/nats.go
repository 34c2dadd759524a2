package handler

import (
	"context"

	"github.com/nats-io/nats.go"

	"github.com/lastmile/backend/internal/pkg/constants"
	"github.com/lastmile/backend/internal/pkg/events"
	"github.com/lastmile/backend/internal/pkg/logger"
	natspkg "github.com/lastmile/backend/internal/pkg/nats"
)

// SubscribeDriverEvents consumes driver-availability records on a queue
// group so each event triggers exactly one reprocessing pass across match
// instances. Malformed records are ignored.
func (h *Handler) SubscribeDriverEvents(ctx context.Context, natsClient *natspkg.Client) (*nats.Subscription, error) {
	return natsClient.QueueSubscribe(
		constants.SubjectDriverEvents,
		constants.QueueGroupReprocessor,
		func(msg *nats.Msg) {
			record := string(msg.Data)
			ev, ok := events.DecodeDriverAvailability(constants.RecordAvailable, record)
			if !ok {
				logger.Debug("Ignoring malformed driver event",
					logger.String("payload", record))
				return
			}

			logger.Info("Driver availability received",
				logger.String("driver_id", ev.DriverID),
				logger.Int("seats", ev.AvailableSeats))

			h.matchUC.HandleDriverAvailability(ctx, ev)
		},
	)
}
