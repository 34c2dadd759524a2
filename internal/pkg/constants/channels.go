package constants

// NATS subjects
const (
	// SubjectDriverEvents carries driver-availability records. Emitted when a
	// driver registers a route or frees a seat by completing a trip.
	SubjectDriverEvents = "driver-events"

	// QueueGroupReprocessor shares driver-events across match instances
	QueueGroupReprocessor = "match-reprocessor"
)

// Redis pub/sub channel formats
const (
	ChannelDriverDashboard = "driver-dashboard:%s" // Format: driver-dashboard:{driver_id}
	ChannelMatchStatus     = "match-status:%s"     // Format: match-status:{rider_id}
	ChannelTripUpdates     = "trip-updates:%s"     // Format: trip-updates:{trip_id}
)

// Record kinds on the driver-events subject and dashboard channels
const (
	RecordAvailable    = "AVAILABLE"
	RecordMatchRequest = "MATCH_REQUEST"
	RecordTripUpdate   = "TRIP_UPDATE"
	RecordEarnings     = "EARNINGS"
)
