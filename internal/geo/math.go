package geo

import (
	"math"

	"github.com/golang/geo/s1"
)

// BucketWidth is the angular width of one directional bucket in degrees.
const BucketWidth = 22.5

// BucketCount is the number of directional buckets covering a full circle.
const BucketCount = 16

// Radians converts decimal degrees to radians.
func Radians(deg float64) float64 {
	return (s1.Angle(deg) * s1.Degree).Radians()
}

// Degrees converts radians to decimal degrees.
func Degrees(rad float64) float64 {
	return s1.Angle(rad).Degrees()
}

// MercatorY returns the Mercator projected ordinate of a latitude given in radians.
//
// It is the "stretched latitude" used by the rhumb line formula:
// ln(tan(lat/2 + PI/4)). The south pole maps to -Inf, the north pole to a
// very large finite value.
func MercatorY(latRad float64) float64 {
	return math.Log(math.Tan(latRad/2 + math.Pi/4))
}

// Bearing returns the initial rhumb line bearing from start to end in degrees,
// normalised to [0, 360).
//
// A longitude difference larger than 180 degrees is wrapped so the path does
// not go the long way around the antimeridian. Coincident points yield 0.
func Bearing(start, end GeoPoint) float64 {
	startLat := Radians(start.Latitude)
	startLon := Radians(start.Longitude)
	endLat := Radians(end.Latitude)
	endLon := Radians(end.Longitude)

	deltaLon := endLon - startLon
	deltaPhi := math.Log(math.Tan(endLat/2+math.Pi/4) / math.Tan(startLat/2+math.Pi/4))

	// both points on the south pole: 0/0
	if math.IsNaN(deltaPhi) {
		deltaPhi = 0
	}

	if math.Abs(deltaLon) > math.Pi {
		if deltaLon > 0 {
			deltaLon = -(2*math.Pi - deltaLon)
		} else {
			deltaLon = 2*math.Pi + deltaLon
		}
	}

	deg := Degrees(math.Atan2(deltaLon, deltaPhi))

	return math.Mod(deg+360, 360)
}

// Bucket maps a bearing in degrees to one of the 16 directional buckets.
//
// Each 22.5 degree wedge is rounded up to its next boundary, so 0 is bucket 0,
// anything in (0, 22.5] is bucket 1 and (337.5, 360) wraps back to bucket 0.
func Bucket(bearing float64) int {
	b := int(math.Ceil(bearing/BucketWidth)) % BucketCount
	if b < 0 {
		b += BucketCount
	}

	return b
}
