package gps

import (
	"strconv"
	"strings"
)

// knots to km/h.
const knotsToKMH = 1.852

// sentenceHandlers dispatches on the 3-character type code that follows
// the 2-character talker prefix. Adding a sentence type means adding one
// entry and one apply method.
var sentenceHandlers = map[string]func(*Fix, []string){
	"GGA": (*Fix).applyGGA,
	"RMC": (*Fix).applyRMC,
}

// parseSentence validates one framed candidate and applies it to the fix
// state. Candidates that fail the '$' or checksum gates, or that carry an
// unrecognized or structurally incomplete payload, leave the state
// untouched.
func (f *Fix) parseSentence(sentence string) {
	if !strings.HasPrefix(sentence, "$") || !checksumValid(sentence) {
		return
	}

	body := sentence
	if star := strings.IndexByte(body, '*'); star >= 0 {
		body = body[:star]
	}
	fields := strings.Split(body, ",")

	// "$GPGGA" -> "GGA"; the talker prefix is skipped, not interpreted.
	if len(fields[0]) < 4 {
		return
	}
	if handler, ok := sentenceHandlers[fields[0][3:]]; ok {
		handler(f, fields)
	}
}

// applyGGA handles fix data: time, position, fix quality, satellites in
// use, HDOP, altitude. Everything overwrites unconditionally — including
// quality 0, which is how the receiver reports losing its fix.
//
// GGA fields: 0 type, 1 time, 2 lat, 3 N/S, 4 lon, 5 E/W, 6 quality,
// 7 satellites, 8 HDOP, 9 altitude, 10 units, 11 geoid sep, 12 units,
// 13 DGPS age, 14 DGPS station.
func (f *Fix) applyGGA(fields []string) {
	if len(fields) < 15 {
		return
	}

	f.timeOfDay = optTimeOfDay(fields[1])
	f.setPosition(fields[2], fields[3], fields[4], fields[5])
	f.quality = intOrZero(fields[6])
	f.satellites = intOrZero(fields[7])
	f.hdop = optFloat(fields[8])
	f.altitudeM = optFloat(fields[9])
}

// applyRMC handles recommended-minimum course data. A void status flag
// stops processing entirely: position, speed, course and date keep their
// values from the last valid sentence.
//
// RMC fields: 0 type, 1 time, 2 status, 3 lat, 4 N/S, 5 lon, 6 E/W,
// 7 speed (knots), 8 course, 9 date, 10 magnetic variation, 11 E/W.
func (f *Fix) applyRMC(fields []string) {
	if len(fields) < 12 {
		return
	}

	f.timeOfDay = optTimeOfDay(fields[1])

	if fields[2] != "A" {
		return
	}

	f.setPosition(fields[3], fields[4], fields[5], fields[6])

	// An empty speed field reads as 0 knots; only a malformed one is
	// unavailable.
	f.speedKMH = nil
	if fields[7] == "" {
		v := 0.0
		f.speedKMH = &v
	} else if kt, err := strconv.ParseFloat(fields[7], 64); err == nil {
		v := kt * knotsToKMH
		f.speedKMH = &v
	}

	f.courseDeg = optFloat(fields[8])
	f.date = optDate(fields[9])
}

// setPosition updates the coordinate pair. A failure on either coordinate
// nulls both; a half-valid position is never published.
func (f *Fix) setPosition(latTok, latHemi, lonTok, lonHemi string) {
	lat, latOK := parseCoordinate(latTok, latHemi)
	lon, lonOK := parseCoordinate(lonTok, lonHemi)
	if latOK && lonOK {
		f.latitude, f.longitude = &lat, &lon
		return
	}
	f.latitude, f.longitude = nil, nil
}

func intOrZero(tok string) int {
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0
	}
	return v
}

func optFloat(tok string) *float64 {
	if tok == "" {
		return nil
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return nil
	}
	return &v
}

func optTimeOfDay(tok string) *TimeOfDay {
	t, ok := parseTimeOfDay(tok)
	if !ok {
		return nil
	}
	return &t
}

func optDate(tok string) *Date {
	d, ok := parseDate(tok)
	if !ok {
		return nil
	}
	return &d
}
