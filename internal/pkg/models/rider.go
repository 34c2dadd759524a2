package models

import (
	"database/sql"
	"time"
)

// RideRequestStatus mirrors match/trip state from the rider's point of view
type RideRequestStatus string

const (
	RideRequestPending    RideRequestStatus = "PENDING"
	RideRequestMatched    RideRequestStatus = "MATCHED"
	RideRequestInProgress RideRequestStatus = "IN_PROGRESS"
	RideRequestCompleted  RideRequestStatus = "COMPLETED"
	RideRequestCancelled  RideRequestStatus = "CANCELLED"
)

// IsTerminal reports whether the request can no longer change
func (s RideRequestStatus) IsTerminal() bool {
	return s == RideRequestCompleted || s == RideRequestCancelled
}

// RideRequest is a rider's view of one ride. A rider has at most one
// non-terminal request at a time.
type RideRequest struct {
	RequestID    string            `json:"request_id" db:"request_id"`
	RiderID      string            `json:"rider_id" db:"rider_id"`
	MetroStation string            `json:"metro_station" db:"metro_station"`
	Destination  string            `json:"destination" db:"destination"`
	Status       RideRequestStatus `json:"status" db:"status"`
	DriverID     string            `json:"driver_id,omitempty"`
	TripID       string            `json:"trip_id,omitempty"`
	Fare         int               `json:"fare" db:"fare"`
	RequestTime  time.Time         `json:"request_time" db:"request_time"`
	ArrivalTime  *time.Time        `json:"arrival_time,omitempty"`
	DropoffTime  *time.Time        `json:"dropoff_time,omitempty"`
	DriverRating int               `json:"driver_rating_given" db:"driver_rating_given"`
}

// RideRequestDTO maps the ride_requests table row for sqlx scanning
type RideRequestDTO struct {
	RequestID    string            `db:"request_id"`
	RiderID      string            `db:"rider_id"`
	MetroStation string            `db:"metro_station"`
	Destination  string            `db:"destination"`
	Status       RideRequestStatus `db:"status"`
	DriverID     sql.NullString    `db:"driver_id"`
	TripID       sql.NullString    `db:"trip_id"`
	Fare         int               `db:"fare"`
	RequestTime  time.Time         `db:"request_time"`
	ArrivalTime  sql.NullTime      `db:"arrival_time"`
	DropoffTime  sql.NullTime      `db:"dropoff_time"`
	DriverRating int               `db:"driver_rating_given"`
}

// ToRideRequest converts a database row to the domain model
func (d *RideRequestDTO) ToRideRequest() *RideRequest {
	r := &RideRequest{
		RequestID:    d.RequestID,
		RiderID:      d.RiderID,
		MetroStation: d.MetroStation,
		Destination:  d.Destination,
		Status:       d.Status,
		Fare:         d.Fare,
		RequestTime:  d.RequestTime,
		DriverRating: d.DriverRating,
	}
	if d.DriverID.Valid {
		r.DriverID = d.DriverID.String
	}
	if d.TripID.Valid {
		r.TripID = d.TripID.String
	}
	if d.ArrivalTime.Valid {
		r.ArrivalTime = &d.ArrivalTime.Time
	}
	if d.DropoffTime.Valid {
		r.DropoffTime = &d.DropoffTime.Time
	}
	return r
}

// RideRequestInput is the payload for a rider's new ride request
type RideRequestInput struct {
	MetroStation string `json:"metro_station"`
	Destination  string `json:"destination"`
	RequestID    string `json:"request_id"`
}

// Station is a transit station resolved by the station oracle
type Station struct {
	StationID string  `json:"station_id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
