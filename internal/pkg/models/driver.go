package models

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

// TripRecordStatus values for a driver's trip records
const (
	TripRecordScheduled = "scheduled"
	TripRecordActive    = "active"
	TripRecordCompleted = "completed"
)

// Driver represents a driver's current route offer and live trip state
type Driver struct {
	DriverID       string       `json:"driver_id" db:"driver_id"`
	RouteID        string       `json:"route_id" db:"route_id"`
	Destination    string       `json:"destination" db:"destination"`
	AvailableSeats int          `json:"available_seats" db:"available_seats"`
	MetroStations  []string     `json:"metro_stations"`
	Location       *Location    `json:"current_location,omitempty"`
	Rating         float64      `json:"rating" db:"rating"`
	TotalEarnings  int          `json:"total_earnings" db:"total_earnings"`
	ActiveTrips    []TripRecord `json:"active_trips,omitempty"`
	UpdatedAt      time.Time    `json:"updated_at" db:"updated_at"`
}

// Location represents a geographic position with a server-assigned timestamp
type Location struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

// TripRecord is one passenger leg on a driver's vehicle. A record lives in
// the active set while scheduled/active and moves to ride history exactly
// once, at completion.
type TripRecord struct {
	TripID               string    `json:"trip_id" db:"trip_id"`
	DriverID             string    `json:"driver_id" db:"driver_id"`
	RiderID              string    `json:"rider_id" db:"rider_id"`
	RiderName            string    `json:"rider_name" db:"rider_name"`
	RiderRating          float64   `json:"rider_rating" db:"rider_rating"`
	PickupStation        string    `json:"pickup_station" db:"pickup_station"`
	Destination          string    `json:"destination" db:"destination"`
	Status               string    `json:"status" db:"status"`
	Fare                 int       `json:"fare" db:"fare"`
	PickupAt             time.Time `json:"pickup_at" db:"pickup_at"`
	DropoffAt            time.Time `json:"dropoff_at" db:"dropoff_at"`
	RiderRatingGiven     int       `json:"rider_rating_given" db:"rider_rating_given"`
	DriverRatingReceived int       `json:"driver_rating_received" db:"driver_rating_received"`
}

// DriverDTO maps the drivers table row for sqlx scanning
type DriverDTO struct {
	DriverID          string          `db:"driver_id"`
	RouteID           string          `db:"route_id"`
	Destination       string          `db:"destination"`
	AvailableSeats    int             `db:"available_seats"`
	MetroStations     pq.StringArray  `db:"metro_stations"`
	LastLatitude      sql.NullFloat64 `db:"last_latitude"`
	LastLongitude     sql.NullFloat64 `db:"last_longitude"`
	LocationUpdatedAt sql.NullTime    `db:"location_updated_at"`
	Rating            float64         `db:"rating"`
	TotalEarnings     int             `db:"total_earnings"`
	UpdatedAt         time.Time       `db:"updated_at"`
}

// ToDriver converts a database row to the domain model
func (d *DriverDTO) ToDriver() *Driver {
	driver := &Driver{
		DriverID:       d.DriverID,
		RouteID:        d.RouteID,
		Destination:    d.Destination,
		AvailableSeats: d.AvailableSeats,
		MetroStations:  []string(d.MetroStations),
		Rating:         d.Rating,
		TotalEarnings:  d.TotalEarnings,
		UpdatedAt:      d.UpdatedAt,
	}
	if d.LastLatitude.Valid && d.LastLongitude.Valid {
		driver.Location = &Location{
			Latitude:  d.LastLatitude.Float64,
			Longitude: d.LastLongitude.Float64,
		}
		if d.LocationUpdatedAt.Valid {
			driver.Location.Timestamp = d.LocationUpdatedAt.Time
		}
	}
	return driver
}

// RegisterRouteRequest is the payload for registering a driver's route
type RegisterRouteRequest struct {
	Destination    string   `json:"destination"`
	AvailableSeats int      `json:"available_seats"`
	MetroStations  []string `json:"metro_stations"`
}

// UpdateLocationRequest is the payload for a driver location update
type UpdateLocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// AcceptTripRequest is the internal payload reserving a seat for a trip
type AcceptTripRequest struct {
	TripID        string  `json:"trip_id"`
	RiderID       string  `json:"rider_id"`
	RiderName     string  `json:"rider_name"`
	RiderRating   float64 `json:"rider_rating"`
	PickupStation string  `json:"pickup_station"`
	Destination   string  `json:"destination"`
	Fare          int     `json:"fare"`
}

// DriverInfo is the read-only projection returned by listDrivers
type DriverInfo struct {
	DriverID       string    `json:"driver_id"`
	Destination    string    `json:"destination"`
	AvailableSeats int       `json:"available_seats"`
	MetroStations  []string  `json:"metro_stations"`
	Location       *Location `json:"current_location,omitempty"`
	Rating         float64   `json:"rating"`
}
