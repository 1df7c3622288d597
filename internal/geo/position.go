// Package geo handles geographic data structures, rhumb line bearings and
// coordinate conversions.
package geo

import "math"

// GeoPoint is a WGS84 position in decimal degrees.
// Values outside [-90, 90] / [-180, 180] are passed through unchanged.
type GeoPoint struct {
	Latitude  float64 `json:"lat" yaml:"lat"`
	Longitude float64 `json:"lng" yaml:"lng"`
}

// IsFinite reports whether both coordinates are finite numbers.
func (p GeoPoint) IsFinite() bool {
	return !math.IsNaN(p.Latitude) && !math.IsInf(p.Latitude, 0) &&
		!math.IsNaN(p.Longitude) && !math.IsInf(p.Longitude, 0)
}

// NamedPosition is a single position with display metadata.
type NamedPosition struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Position    GeoPoint `json:"position" yaml:"position"`
}
