package models

import (
	"database/sql"
	"time"
)

// MatchStatus represents the status of a match attempt
type MatchStatus string

const (
	// MatchStatusPending indicates no driver is assigned and the request is queued
	MatchStatusPending MatchStatus = "PENDING"
	// MatchStatusMatched indicates a driver is tentatively assigned, not yet confirmed
	MatchStatusMatched MatchStatus = "MATCHED"
	// MatchStatusConfirmed indicates the driver accepted and a trip was created
	MatchStatusConfirmed MatchStatus = "CONFIRMED"
	// MatchStatusCancelled is terminal, rider- or system-initiated
	MatchStatusCancelled MatchStatus = "CANCELLED"
)

// Match is one matching attempt between a rider request and (possibly) a
// driver. The match id doubles as the caller-supplied idempotency key and,
// once confirmed, as the trip id.
type Match struct {
	ID            string      `json:"id" db:"id"`
	RiderID       string      `json:"rider_id" db:"rider_id"`
	DriverID      string      `json:"driver_id,omitempty"`
	PickupStation string      `json:"pickup_station" db:"pickup_station"`
	Destination   string      `json:"destination" db:"destination"`
	Fare          int         `json:"fare" db:"fare"`
	Status        MatchStatus `json:"status" db:"status"`
	CreatedAt     time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at" db:"updated_at"`
}

// MatchDTO maps the matches table row for sqlx scanning
type MatchDTO struct {
	ID            string         `db:"id"`
	RiderID       string         `db:"rider_id"`
	DriverID      sql.NullString `db:"driver_id"`
	PickupStation string         `db:"pickup_station"`
	Destination   string         `db:"destination"`
	Fare          int            `db:"fare"`
	Status        MatchStatus    `db:"status"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

// ToMatch converts a database row to the domain model
func (d *MatchDTO) ToMatch() *Match {
	m := &Match{
		ID:            d.ID,
		RiderID:       d.RiderID,
		PickupStation: d.PickupStation,
		Destination:   d.Destination,
		Fare:          d.Fare,
		Status:        d.Status,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
	if d.DriverID.Valid {
		m.DriverID = d.DriverID.String
	}
	return m
}

// MatchRequest is the payload for requesting a match
type MatchRequest struct {
	RiderID       string `json:"rider_id"`
	PickupStation string `json:"pickup_station"`
	Destination   string `json:"destination"`
	RequestID     string `json:"request_id"`
}

// MatchResult is the response to a match request
type MatchResult struct {
	MatchID  string `json:"match_id"`
	DriverID string `json:"driver_id,omitempty"`
	Fare     int    `json:"fare,omitempty"`
	Found    bool   `json:"found"`
}

// MatchActionRequest carries the acting party for accept/decline/cancel
type MatchActionRequest struct {
	DriverID string `json:"driver_id,omitempty"`
	RiderID  string `json:"rider_id,omitempty"`
}
