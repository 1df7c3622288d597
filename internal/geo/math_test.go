package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestBearing(t *testing.T) {
	tests := []struct {
		name     string
		start    GeoPoint
		end      GeoPoint
		expected float64
	}{
		{"due north", GeoPoint{0, 0}, GeoPoint{1, 0}, 0},
		{"due east", GeoPoint{0, 0}, GeoPoint{0, 1}, 90},
		{"due south", GeoPoint{0, 0}, GeoPoint{-1, 0}, 180},
		{"due west", GeoPoint{0, 0}, GeoPoint{0, -1}, 270},
		{"coincident points", GeoPoint{52.5, 13.4}, GeoPoint{52.5, 13.4}, 0},
		{"eastwards across antimeridian", GeoPoint{0, 179.9}, GeoPoint{0, -179.9}, 90},
		{"westwards across antimeridian", GeoPoint{0, -179.9}, GeoPoint{0, 179.9}, 270},
		{"north east on equator", GeoPoint{0, 0}, GeoPoint{1, 1}, 44.9985},
		{"south pole to itself", GeoPoint{-90, 0}, GeoPoint{-90, 0}, 0},
		{"away from south pole", GeoPoint{-90, 0}, GeoPoint{-80, 0}, 0},
		{"towards south pole", GeoPoint{-80, 0}, GeoPoint{-90, 0}, 180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Bearing(tt.start, tt.end), 0.0001)
		})
	}
}

func TestBearingRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var start = GeoPoint{
			Latitude:  rapid.Float64Range(-90, 90).Draw(t, "startLat"),
			Longitude: rapid.Float64Range(-180, 180).Draw(t, "startLon"),
		}
		var end = GeoPoint{
			Latitude:  rapid.Float64Range(-90, 90).Draw(t, "endLat"),
			Longitude: rapid.Float64Range(-180, 180).Draw(t, "endLon"),
		}

		var b = Bearing(start, end)

		assert.False(t, math.IsNaN(b), "bearing must be a number")
		assert.GreaterOrEqual(t, b, 0.0)
		assert.Less(t, b, 360.0)
	})
}

func TestBearingDegenerate(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var p = GeoPoint{
			Latitude:  rapid.Float64Range(-90, 90).Draw(t, "lat"),
			Longitude: rapid.Float64Range(-180, 180).Draw(t, "lon"),
		}

		assert.Equal(t, 0.0, Bearing(p, p))
	})
}

func TestBucket(t *testing.T) {
	tests := []struct {
		bearing  float64
		expected int
	}{
		{0, 0},
		{0.1, 1},
		{22.5, 1},
		{22.6, 2},
		{90, 4},
		{180, 8},
		{270, 12},
		{337.5, 15},
		{337.6, 0},
		{359.999, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Bucket(tt.bearing), "bucket of %v", tt.bearing)
	}
}

func TestBucketAlwaysInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var b = Bucket(rapid.Float64Range(0, 359.999999).Draw(t, "bearing"))

		assert.GreaterOrEqual(t, b, 0)
		assert.Less(t, b, BucketCount)
	})
}

func TestMercatorY(t *testing.T) {
	assert.InDelta(t, 0.0, MercatorY(0), 1e-12)
	assert.True(t, math.IsInf(MercatorY(Radians(-90)), -1))
	assert.InDelta(t, -MercatorY(Radians(45)), MercatorY(Radians(-45)), 1e-12)
}
