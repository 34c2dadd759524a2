package utils

import "math"

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// ManhattanDegrees returns |dLat| + |dLon| between two points. This is the
// coarse proxy the fare formula runs on, not routing distance.
func ManhattanDegrees(a, b GeoPoint) float64 {
	return math.Abs(a.Latitude-b.Latitude) + math.Abs(a.Longitude-b.Longitude)
}
