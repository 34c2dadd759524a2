// Package events encodes the delimited text records carried on the
// driver-events subject and the per-entity pub/sub channels. Consumers must
// tolerate malformed or short records by ignoring them.
package events

import (
	"strconv"
	"strings"
)

const separator = ","

// Encode joins fields into one record. Embedded separators in a field are
// replaced with spaces so a record always splits back into the same number
// of fields.
func Encode(fields ...string) string {
	sanitized := make([]string, len(fields))
	for i, f := range fields {
		sanitized[i] = strings.ReplaceAll(f, separator, " ")
	}
	return strings.Join(sanitized, separator)
}

// Decode splits a record and checks it carries at least min fields.
// ok is false for short or empty records.
func Decode(record string, min int) ([]string, bool) {
	record = strings.TrimSpace(record)
	if record == "" {
		return nil, false
	}
	fields := strings.Split(record, separator)
	if len(fields) < min {
		return nil, false
	}
	return fields, true
}

// DriverAvailability is the payload on the driver-events subject
type DriverAvailability struct {
	DriverID       string
	AvailableSeats int
	Destination    string
}

// EncodeDriverAvailability renders an AVAILABLE record
func EncodeDriverAvailability(kind string, ev DriverAvailability) string {
	return Encode(kind, ev.DriverID, strconv.Itoa(ev.AvailableSeats), ev.Destination)
}

// DecodeDriverAvailability parses an AVAILABLE record, ok=false when the
// record is malformed or of a different kind.
func DecodeDriverAvailability(kind, record string) (DriverAvailability, bool) {
	fields, ok := Decode(record, 4)
	if !ok || fields[0] != kind {
		return DriverAvailability{}, false
	}
	seats, err := strconv.Atoi(fields[2])
	if err != nil || seats < 0 {
		return DriverAvailability{}, false
	}
	return DriverAvailability{
		DriverID:       fields[1],
		AvailableSeats: seats,
		Destination:    fields[3],
	}, true
}

// EncodeMatchStatus renders a match-status channel record:
// matchId,status,driverId,tripId,fare
func EncodeMatchStatus(matchID, status, driverID, tripID string, fare int) string {
	return Encode(matchID, status, driverID, tripID, strconv.Itoa(fare))
}

// MatchStatusRecord is a decoded match-status channel record
type MatchStatusRecord struct {
	MatchID  string
	Status   string
	DriverID string
	TripID   string
	Fare     int
}

// DecodeMatchStatus parses a match-status record, ok=false when malformed
func DecodeMatchStatus(record string) (MatchStatusRecord, bool) {
	fields, ok := Decode(record, 5)
	if !ok {
		return MatchStatusRecord{}, false
	}
	fare, err := strconv.Atoi(fields[4])
	if err != nil {
		return MatchStatusRecord{}, false
	}
	return MatchStatusRecord{
		MatchID:  fields[0],
		Status:   fields[1],
		DriverID: fields[2],
		TripID:   fields[3],
		Fare:     fare,
	}, true
}

// EncodeTripUpdate renders a trip-updates channel record: tripId,status
func EncodeTripUpdate(tripID, status string) string {
	return Encode(tripID, status)
}

// DecodeTripUpdate parses a trip-updates record, ok=false when malformed
func DecodeTripUpdate(record string) (tripID, status string, ok bool) {
	fields, ok := Decode(record, 2)
	if !ok {
		return "", "", false
	}
	return fields[0], fields[1], true
}
