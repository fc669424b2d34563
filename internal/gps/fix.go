package gps

// Fix is the last-known receiver state. It is created once per Driver,
// mutated field by field as sentences are parsed, and never replaced
// wholesale. Optional measurements are pointers so "unknown" is always
// distinct from a legitimate zero; only the satellite count has a
// default-to-zero semantic on the wire.
type Fix struct {
	latitude     *float64 // decimal degrees, set together with longitude
	longitude    *float64
	altitudeM    *float64 // meters, GGA only
	speedKMH     *float64 // km/h, converted from knots at parse time
	courseDeg    *float64 // degrees [0,360), RMC only
	satellites   int
	hdop         *float64
	quality      int // 0 means no fix
	date         *Date
	timeOfDay    *TimeOfDay
	lastSentence string // most recent candidate handed to the parser
}

// HasFix reports whether the receiver has a valid positioning solution:
// nonzero fix quality and a complete coordinate pair. Positional accessors
// route through this predicate so that stale quality or a half-parsed
// sentence can never leak a position.
func (f *Fix) HasFix() bool {
	return f.quality > 0 && f.latitude != nil && f.longitude != nil
}

// Location returns the current position in decimal degrees, or ok=false
// when there is no fix.
func (f *Fix) Location() (lat, lon float64, ok bool) {
	if !f.HasFix() {
		return 0, 0, false
	}
	return *f.latitude, *f.longitude, true
}

// Altitude returns the altitude above mean sea level in meters.
func (f *Fix) Altitude() (float64, bool) {
	if f.altitudeM == nil {
		return 0, false
	}
	return *f.altitudeM, true
}

// Speed returns the ground speed in km/h.
func (f *Fix) Speed() (float64, bool) {
	if f.speedKMH == nil {
		return 0, false
	}
	return *f.speedKMH, true
}

// Course returns the course over ground in degrees.
func (f *Fix) Course() (float64, bool) {
	if f.courseDeg == nil {
		return 0, false
	}
	return *f.courseDeg, true
}

// Satellites returns the number of satellites in use, 0 when unknown.
func (f *Fix) Satellites() int {
	return f.satellites
}

// HDOP returns the horizontal dilution of precision.
func (f *Fix) HDOP() (float64, bool) {
	if f.hdop == nil {
		return 0, false
	}
	return *f.hdop, true
}

// Quality returns the raw fix quality class (0 = no fix).
func (f *Fix) Quality() int {
	return f.quality
}

// DateTime returns the receiver date and UTC time of day. ok is false
// until both have been observed.
func (f *Fix) DateTime() (Date, TimeOfDay, bool) {
	if f.date == nil || f.timeOfDay == nil {
		return Date{}, TimeOfDay{}, false
	}
	return *f.date, *f.timeOfDay, true
}

// LastSentence returns the most recent candidate sentence seen, valid or
// not. Diagnostic only.
func (f *Fix) LastSentence() string {
	return f.lastSentence
}
