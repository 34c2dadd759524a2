package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncode_SanitizesEmbeddedSeparators(t *testing.T) {
	record := Encode("MATCH_REQUEST", "req-1", "Central, Platform B")
	assert.Equal(t, "MATCH_REQUEST,req-1,Central  Platform B", record)

	fields, ok := Decode(record, 3)
	assert.True(t, ok)
	assert.Len(t, fields, 3)
}

func TestDecode(t *testing.T) {
	testCases := []struct {
		name     string
		record   string
		min      int
		expectOK bool
	}{
		{name: "Well formed", record: "AVAILABLE,driver-1,2,Uptown", min: 4, expectOK: true},
		{name: "Short record", record: "AVAILABLE,driver-1", min: 4, expectOK: false},
		{name: "Empty record", record: "", min: 1, expectOK: false},
		{name: "Whitespace only", record: "   ", min: 1, expectOK: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := Decode(tc.record, tc.min)
			assert.Equal(t, tc.expectOK, ok)
		})
	}
}

func TestDriverAvailabilityRoundTrip(t *testing.T) {
	ev := DriverAvailability{DriverID: "driver-1", AvailableSeats: 3, Destination: "Uptown"}

	record := EncodeDriverAvailability("AVAILABLE", ev)
	assert.Equal(t, "AVAILABLE,driver-1,3,Uptown", record)

	decoded, ok := DecodeDriverAvailability("AVAILABLE", record)
	assert.True(t, ok)
	assert.Equal(t, ev, decoded)
}

func TestDecodeDriverAvailability_Rejections(t *testing.T) {
	testCases := []struct {
		name   string
		record string
	}{
		{name: "Wrong kind", record: "OFFLINE,driver-1,3,Uptown"},
		{name: "Non-numeric seats", record: "AVAILABLE,driver-1,many,Uptown"},
		{name: "Negative seats", record: "AVAILABLE,driver-1,-1,Uptown"},
		{name: "Truncated", record: "AVAILABLE,driver-1,3"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := DecodeDriverAvailability("AVAILABLE", tc.record)
			assert.False(t, ok)
		})
	}
}

func TestMatchStatusRoundTrip(t *testing.T) {
	record := EncodeMatchStatus("req-1", "CONFIRMED", "driver-1", "req-1", 75)
	assert.Equal(t, "req-1,CONFIRMED,driver-1,req-1,75", record)

	decoded, ok := DecodeMatchStatus(record)
	assert.True(t, ok)
	assert.Equal(t, MatchStatusRecord{
		MatchID:  "req-1",
		Status:   "CONFIRMED",
		DriverID: "driver-1",
		TripID:   "req-1",
		Fare:     75,
	}, decoded)
}

func TestDecodeMatchStatus_MalformedFare(t *testing.T) {
	_, ok := DecodeMatchStatus("req-1,CONFIRMED,driver-1,req-1,free")
	assert.False(t, ok)
}

func TestTripUpdateRoundTrip(t *testing.T) {
	tripID, status, ok := DecodeTripUpdate(EncodeTripUpdate("trip-1", "ACTIVE"))
	assert.True(t, ok)
	assert.Equal(t, "trip-1", tripID)
	assert.Equal(t, "ACTIVE", status)

	_, _, ok = DecodeTripUpdate("trip-1")
	assert.False(t, ok)
}
