package gps

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// TimeOfDay is a UTC wall-clock timestamp from an NMEA sentence.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second float64
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%06.3f", t.Hour, t.Minute, t.Second)
}

// Date is a calendar date from an NMEA sentence. The wire format carries a
// two-digit year, mapped unconditionally to 2000+YY; dates past 2099 cannot
// be represented by the receiver.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// parseCoordinate converts the NMEA degrees-minutes concatenation
// (DDDMM.MMMM) plus hemisphere letter into signed decimal degrees.
// No range validation is performed: out-of-range tokens produce
// out-of-range decimals, matching receiver permissiveness.
func parseCoordinate(token, hemisphere string) (float64, bool) {
	if token == "" || hemisphere == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, false
	}

	deg := math.Floor(v / 100)
	min := v - deg*100
	dec := deg + min/60

	switch hemisphere {
	case "S", "W":
		dec = -dec
	}
	return dec, true
}

// parseTimeOfDay parses the hhmmss.sss timestamp token. Everything past
// the minutes is taken as (possibly fractional) seconds.
func parseTimeOfDay(token string) (TimeOfDay, bool) {
	if len(token) < 6 {
		return TimeOfDay{}, false
	}
	hour, err := strconv.Atoi(token[0:2])
	if err != nil {
		return TimeOfDay{}, false
	}
	minute, err := strconv.Atoi(token[2:4])
	if err != nil {
		return TimeOfDay{}, false
	}
	second, err := strconv.ParseFloat(token[4:], 64)
	if err != nil {
		return TimeOfDay{}, false
	}
	return TimeOfDay{Hour: hour, Minute: minute, Second: second}, true
}

// parseDate parses the ddmmyy date token.
func parseDate(token string) (Date, bool) {
	if len(token) != 6 {
		return Date{}, false
	}
	day, err := strconv.Atoi(token[0:2])
	if err != nil {
		return Date{}, false
	}
	month, err := strconv.Atoi(token[2:4])
	if err != nil {
		return Date{}, false
	}
	year, err := strconv.Atoi(token[4:6])
	if err != nil {
		return Date{}, false
	}
	return Date{Year: 2000 + year, Month: time.Month(month), Day: day}, true
}
