package gps

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoordinate(t *testing.T) {
	tables := []struct {
		token      string
		hemisphere string
		expected   float64
		ok         bool
	}{
		{"5130.0000", "N", 51.5, true},
		{"00024.0000", "W", -0.4, true},
		{"4807.038", "N", 48.1173, true},
		{"01131.000", "E", 11.5166666, true},
		{"4807.038", "S", -48.1173, true},
		{"", "N", 0, false},
		{"4807.038", "", 0, false},
		{"not-a-number", "N", 0, false},
	}

	for _, table := range tables {
		got, ok := parseCoordinate(table.token, table.hemisphere)
		require.Equal(t, table.ok, ok, "token %q %q", table.token, table.hemisphere)
		if ok {
			assert.InDelta(t, table.expected, got, 1e-6, "token %q %q", table.token, table.hemisphere)
		}
	}
}

// encodeCoordinate renders decimal degrees back into the receiver's
// DDDMM.MMMM concatenation plus hemisphere letter.
func encodeCoordinate(dec float64, positive, negative string) (string, string) {
	hemi := positive
	if dec < 0 {
		hemi = negative
		dec = -dec
	}
	deg := math.Floor(dec)
	min := (dec - deg) * 60
	return fmt.Sprintf("%03d%07.4f", int(deg), min), hemi
}

func TestParseCoordinateRoundTrip(t *testing.T) {
	values := []float64{51.5074, -0.1278, 48.8566, 2.3522, -33.8688, 151.2093, 0, -89.9999}

	for _, want := range values {
		token, hemi := encodeCoordinate(want, "N", "S")
		got, ok := parseCoordinate(token, hemi)
		require.True(t, ok, "token %q", token)
		assert.InDelta(t, want, got, 1e-6, "token %q %q", token, hemi)
	}
}

func TestParseTimeOfDay(t *testing.T) {
	tables := []struct {
		token    string
		expected string
		ok       bool
	}{
		{"123519", "12:35:19.000", true},
		{"123519.537", "12:35:19.537", true},
		{"000000", "00:00:00.000", true},
		{"07025", "", false},  // too short
		{"12a519", "", false}, // non-numeric minutes
		{"1235xx", "", false}, // non-numeric seconds
		{"", "", false},
	}

	for _, table := range tables {
		got, ok := parseTimeOfDay(table.token)
		require.Equal(t, table.ok, ok, "token %q", table.token)
		if ok {
			assert.Equal(t, table.expected, got.String(), "token %q", table.token)
		}
	}
}

func TestParseDate(t *testing.T) {
	tables := []struct {
		token    string
		expected Date
		ok       bool
	}{
		{"230394", Date{Year: 2094, Month: time.March, Day: 23}, true},
		{"061225", Date{Year: 2025, Month: time.December, Day: 6}, true},
		{"010100", Date{Year: 2000, Month: time.January, Day: 1}, true},
		{"23039", Date{}, false},   // too short
		{"2303944", Date{}, false}, // too long
		{"23mar4", Date{}, false},  // non-numeric month
		{"", Date{}, false},
	}

	for _, table := range tables {
		got, ok := parseDate(table.token)
		require.Equal(t, table.ok, ok, "token %q", table.token)
		if ok {
			assert.Equal(t, table.expected, got, "token %q", table.token)
		}
	}
}

func TestDateString(t *testing.T) {
	d := Date{Year: 2025, Month: time.December, Day: 6}
	assert.Equal(t, "2025-12-06", d.String())
}
