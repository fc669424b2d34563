package gps

import (
	"fmt"
	"testing"

	nmea "github.com/adrianmo/go-nmea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	ggaFix    = "$GPGGA,123519,4807.038,N,01131.000,E,1,08,0.9,545.4,M,46.9,M,,*47"
	rmcActive = "$GPRMC,123519,A,4807.038,N,01131.000,E,022.4,084.4,230394,003.1,W*6A"
	rmcVoid   = "$GPRMC,123519,V,4807.038,N,01131.000,E,022.4,084.4,230394,003.1,W*7D"
)

// mk frames a sentence body with its computed checksum.
func mk(body string) string {
	return fmt.Sprintf("$%s*%02X", body, checksum(body))
}

func TestParseGGAAcquiresFix(t *testing.T) {
	f := &Fix{}
	f.parseSentence(ggaFix)

	require.True(t, f.HasFix())

	lat, lon, ok := f.Location()
	require.True(t, ok)
	assert.InDelta(t, 48.1173, lat, 1e-6)
	assert.InDelta(t, 11.5166666, lon, 1e-6)

	assert.Equal(t, 1, f.Quality())
	assert.Equal(t, 8, f.Satellites())

	hdop, ok := f.HDOP()
	require.True(t, ok)
	assert.InDelta(t, 0.9, hdop, 1e-9)

	alt, ok := f.Altitude()
	require.True(t, ok)
	assert.InDelta(t, 545.4, alt, 1e-9)
}

func TestParseRMCUpdatesVelocityAndDate(t *testing.T) {
	f := &Fix{}
	f.parseSentence(ggaFix)
	f.parseSentence(rmcActive)

	speed, ok := f.Speed()
	require.True(t, ok)
	assert.InDelta(t, 22.4*1.852, speed, 1e-9)

	course, ok := f.Course()
	require.True(t, ok)
	assert.InDelta(t, 84.4, course, 1e-9)

	date, tod, ok := f.DateTime()
	require.True(t, ok)
	assert.Equal(t, "2094-03-23", date.String())
	assert.Equal(t, "12:35:19.000", tod.String())
}

func TestParseRMCAloneIsNotAFix(t *testing.T) {
	// Position comes from RMC but fix quality only ever comes from GGA;
	// without it the position must not be published.
	f := &Fix{}
	f.parseSentence(rmcActive)

	assert.False(t, f.HasFix())
	_, _, ok := f.Location()
	assert.False(t, ok)
}

func TestParseRMCVoidPersistsPriorState(t *testing.T) {
	f := &Fix{}
	f.parseSentence(ggaFix)
	f.parseSentence(rmcActive)
	before := f.Snapshot()

	f.parseSentence(rmcVoid)
	assert.Equal(t, before, f.Snapshot())

	// A void sentence with a fresh timestamp still updates the time of
	// day; everything else keeps its last valid value.
	f.parseSentence(mk("GPRMC,134502,V,,,,,,,,,N"))
	after := f.Snapshot()
	assert.Equal(t, "13:45:02.000", after.Time)

	before.Time = after.Time
	assert.Equal(t, before, after)
}

func TestParseChecksumMismatchIgnored(t *testing.T) {
	corrupted := ggaFix[:len(ggaFix)-1] + "6" // *47 -> *46

	f := &Fix{}
	before := f.Snapshot()
	f.parseSentence(corrupted)

	assert.Equal(t, before, f.Snapshot())
	assert.False(t, f.HasFix())
}

func TestParseRejectsWithoutStartMarker(t *testing.T) {
	f := &Fix{}
	f.parseSentence(ggaFix[1:])
	assert.Equal(t, new(Fix).Snapshot(), f.Snapshot())
}

func TestParseUnrecognizedTypeIgnored(t *testing.T) {
	f := &Fix{}
	f.parseSentence(ggaFix)
	before := f.Snapshot()

	f.parseSentence(mk("GPGSV,3,1,11,03,03,111,00,04,15,270,00,06,01,010,00,13,06,292,00"))
	f.parseSentence(mk("GPGSA,A,3,04,05,,09,12,,,24,,,,,2.5,1.3,2.1"))

	assert.Equal(t, before, f.Snapshot())
}

func TestParseShortSentencesIgnored(t *testing.T) {
	f := &Fix{}
	f.parseSentence(ggaFix)
	before := f.Snapshot()

	// Structurally incomplete: too few fields for their type.
	f.parseSentence(mk("GPGGA,123519,4807.038,N"))
	f.parseSentence(mk("GPRMC,123519,A,4807.038,N"))

	assert.Equal(t, before, f.Snapshot())
}

func TestParseGGAOverwritesToNoFix(t *testing.T) {
	f := &Fix{}
	f.parseSentence(ggaFix)
	require.True(t, f.HasFix())

	// Quality 0 with empty fields is how the receiver reports losing
	// the fix; it overwrites unconditionally.
	f.parseSentence(mk("GPGGA,123520,,,,,0,00,,,M,,M,,"))

	assert.False(t, f.HasFix())
	assert.Equal(t, 0, f.Quality())
	assert.Equal(t, 0, f.Satellites())
	_, ok := f.HDOP()
	assert.False(t, ok)
	_, ok = f.Altitude()
	assert.False(t, ok)
	_, _, ok = f.Location()
	assert.False(t, ok)
}

func TestParseSatellitesDefaultToZero(t *testing.T) {
	f := &Fix{}
	f.parseSentence(mk("GPGGA,123519,4807.038,N,01131.000,E,1,,0.9,545.4,M,46.9,M,,"))

	assert.Equal(t, 0, f.Satellites())
	assert.True(t, f.HasFix())
}

func TestParseHalfValidPositionNullsBoth(t *testing.T) {
	f := &Fix{}
	f.parseSentence(ggaFix)
	require.True(t, f.HasFix())

	f.parseSentence(mk("GPGGA,123520,4807.038,N,bogus,E,1,08,0.9,545.4,M,46.9,M,,"))

	assert.False(t, f.HasFix())
	_, _, ok := f.Location()
	assert.False(t, ok)
}

func TestParseRMCEmptySpeedReadsAsZero(t *testing.T) {
	f := &Fix{}
	f.parseSentence(mk("GPRMC,123519,A,4807.038,N,01131.000,E,,084.4,230394,003.1,W"))

	speed, ok := f.Speed()
	require.True(t, ok)
	assert.Zero(t, speed)
}

// The reference NMEA library is used as an oracle: for well-formed
// sentences both parsers must extract the same values.
func TestParserMatchesReferenceLibrary(t *testing.T) {
	f := &Fix{}
	f.parseSentence(ggaFix)
	f.parseSentence(rmcActive)

	refGGA, err := nmea.Parse(ggaFix)
	require.NoError(t, err)
	gga, ok := refGGA.(nmea.GGA)
	require.True(t, ok)

	lat, lon, hasFix := f.Location()
	require.True(t, hasFix)
	assert.InDelta(t, gga.Latitude, lat, 1e-9)
	assert.InDelta(t, gga.Longitude, lon, 1e-9)

	alt, ok := f.Altitude()
	require.True(t, ok)
	assert.InDelta(t, gga.Altitude, alt, 1e-9)

	refRMC, err := nmea.Parse(rmcActive)
	require.NoError(t, err)
	rmc, ok := refRMC.(nmea.RMC)
	require.True(t, ok)

	speed, ok := f.Speed()
	require.True(t, ok)
	assert.InDelta(t, rmc.Speed*1.852, speed, 1e-9)

	course, ok := f.Course()
	require.True(t, ok)
	assert.InDelta(t, rmc.Course, course, 1e-9)
}
