package gps

// Report is a single published GPS snapshot suitable for JSON and MQTT.
// Optional measurements are omitted from the payload while unknown.
type Report struct {
	HasFix     bool     `json:"has_fix"`
	Latitude   *float64 `json:"lat,omitempty"`  // decimal degrees
	Longitude  *float64 `json:"lon,omitempty"`  // decimal degrees
	AltitudeM  *float64 `json:"altitude_m,omitempty"`
	SpeedKMH   *float64 `json:"speed_kmh,omitempty"`
	CourseDeg  *float64 `json:"course_deg,omitempty"`
	Satellites int      `json:"satellites"`
	HDOP       *float64 `json:"hdop,omitempty"`
	FixQuality int      `json:"fix_quality"`
	Date       string   `json:"date,omitempty"` // e.g. "2025-12-06"
	Time       string   `json:"time,omitempty"` // e.g. "12:34:56.000"

	// Filled by the tracker when a target waypoint is configured.
	TargetDistanceM  *float64 `json:"target_distance_m,omitempty"`
	TargetBearingDeg *float64 `json:"target_bearing_deg,omitempty"`
}

// Snapshot copies the current fix state into a Report.
func (f *Fix) Snapshot() Report {
	r := Report{
		HasFix:     f.HasFix(),
		AltitudeM:  f.altitudeM,
		SpeedKMH:   f.speedKMH,
		CourseDeg:  f.courseDeg,
		Satellites: f.satellites,
		HDOP:       f.hdop,
		FixQuality: f.quality,
	}
	if lat, lon, ok := f.Location(); ok {
		r.Latitude, r.Longitude = &lat, &lon
	}
	if f.date != nil {
		r.Date = f.date.String()
	}
	if f.timeOfDay != nil {
		r.Time = f.timeOfDay.String()
	}
	return r
}
