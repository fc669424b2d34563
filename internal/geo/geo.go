// Package geo provides great-circle navigation math on a spherical Earth
// model. All angles are in decimal degrees unless noted otherwise.
package geo

import "math"

// Mean Earth radius in meters.
const earthRadiusM = 6371000.0

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }

// Distance returns the haversine distance in meters between two points.
//
// Longitude deltas are taken as plain differences; they are never
// normalized into ±180 degrees.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	lat1R := radians(lat1)
	lat2R := radians(lat2)
	dLat := radians(lat2 - lat1)
	dLon := radians(lon2 - lon1)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	a := sinLat*sinLat + math.Cos(lat1R)*math.Cos(lat2R)*sinLon*sinLon
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusM * c
}

// InitialBearing returns the initial compass bearing in degrees [0,360)
// from point 1 toward point 2 along the great-circle path. The degenerate
// identical-point case resolves to 0 (atan2(0,0) == 0).
func InitialBearing(lat1, lon1, lat2, lon2 float64) float64 {
	lat1R := radians(lat1)
	lat2R := radians(lat2)
	dLon := radians(lon2 - lon1)

	y := math.Sin(dLon) * math.Cos(lat2R)
	x := math.Cos(lat1R)*math.Sin(lat2R) - math.Sin(lat1R)*math.Cos(lat2R)*math.Cos(dLon)

	return math.Mod(degrees(math.Atan2(y, x))+360, 360)
}
