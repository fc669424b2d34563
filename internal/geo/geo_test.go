package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tables := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		expected               float64
	}{
		{"identical point", 51.5074, -0.1278, 51.5074, -0.1278, 0},
		{"quarter circumference", 0, 0, 0, 90, 10007543.398},
		{"london to paris", 51.5074, -0.1278, 48.8566, 2.3522, 343556.060},
		{"across the antimeridian", 0, 179, 0, -179, 222389.853},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			d := Distance(table.lat1, table.lon1, table.lat2, table.lon2)
			assert.InDelta(t, table.expected, d, 0.01)
			assert.False(t, math.IsNaN(d))
		})
	}
}

func TestInitialBearing(t *testing.T) {
	tables := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		expected               float64
	}{
		{"identical point resolves to 0", 51.5074, -0.1278, 51.5074, -0.1278, 0},
		{"due east along the equator", 0, 0, 0, 90, 90},
		{"due north to the pole", 0, 0, 90, 0, 0},
		{"london to paris", 51.5074, -0.1278, 48.8566, 2.3522, 148.1156},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			b := InitialBearing(table.lat1, table.lon1, table.lat2, table.lon2)
			assert.InDelta(t, table.expected, b, 0.0001)
			assert.GreaterOrEqual(t, b, 0.0)
			assert.Less(t, b, 360.0)
		})
	}
}
