package models

import (
	"database/sql"
	"time"
)

// TripStatus represents the status of a trip
type TripStatus string

const (
	TripStatusScheduled TripStatus = "SCHEDULED"
	TripStatusActive    TripStatus = "ACTIVE"
	TripStatusCompleted TripStatus = "COMPLETED"
)

// Trip is one confirmed passenger leg. Its id equals the match id that
// produced it.
type Trip struct {
	TripID        string     `json:"trip_id" db:"trip_id"`
	DriverID      string     `json:"driver_id" db:"driver_id"`
	RiderID       string     `json:"rider_id" db:"rider_id"`
	PickupStation string     `json:"pickup_station" db:"pickup_station"`
	Destination   string     `json:"destination" db:"destination"`
	Status        TripStatus `json:"status" db:"status"`
	Fare          int        `json:"fare" db:"fare"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	PickupTime    *time.Time `json:"pickup_time,omitempty"`
	DropoffTime   *time.Time `json:"dropoff_time,omitempty"`
}

// TripDTO maps the trips table row for sqlx scanning
type TripDTO struct {
	TripID        string       `db:"trip_id"`
	DriverID      string       `db:"driver_id"`
	RiderID       string       `db:"rider_id"`
	PickupStation string       `db:"pickup_station"`
	Destination   string       `db:"destination"`
	Status        TripStatus   `db:"status"`
	Fare          int          `db:"fare"`
	CreatedAt     time.Time    `db:"created_at"`
	PickupTime    sql.NullTime `db:"pickup_time"`
	DropoffTime   sql.NullTime `db:"dropoff_time"`
}

// ToTrip converts a database row to the domain model
func (d *TripDTO) ToTrip() *Trip {
	t := &Trip{
		TripID:        d.TripID,
		DriverID:      d.DriverID,
		RiderID:       d.RiderID,
		PickupStation: d.PickupStation,
		Destination:   d.Destination,
		Status:        d.Status,
		Fare:          d.Fare,
		CreatedAt:     d.CreatedAt,
	}
	if d.PickupTime.Valid {
		t.PickupTime = &d.PickupTime.Time
	}
	if d.DropoffTime.Valid {
		t.DropoffTime = &d.DropoffTime.Time
	}
	return t
}

// CreateTripRequest is the payload for creating a trip from a confirmed match
type CreateTripRequest struct {
	TripID        string `json:"trip_id"`
	DriverID      string `json:"driver_id"`
	RiderID       string `json:"rider_id"`
	PickupStation string `json:"pickup_station"`
	Destination   string `json:"destination"`
	Fare          int    `json:"fare"`
}

// DropoffRequest optionally overrides the fare at dropoff time
type DropoffRequest struct {
	Fare int `json:"fare"`
}
