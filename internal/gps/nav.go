package gps

import "github.com/relabs-tech/gps_tracker/internal/geo"

// DistanceTo returns the haversine distance in meters from the current
// position to the target, or ok=false when there is no fix. Navigation
// queries never touch the transport.
func (f *Fix) DistanceTo(targetLat, targetLon float64) (float64, bool) {
	lat, lon, ok := f.Location()
	if !ok {
		return 0, false
	}
	return geo.Distance(lat, lon, targetLat, targetLon), true
}

// BearingTo returns the initial great-circle bearing in degrees [0,360)
// from the current position to the target, or ok=false when there is no
// fix.
func (f *Fix) BearingTo(targetLat, targetLon float64) (float64, bool) {
	lat, lon, ok := f.Location()
	if !ok {
		return 0, false
	}
	return geo.InitialBearing(lat, lon, targetLat, targetLon), true
}
