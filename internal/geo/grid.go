package geo

import (
	"fmt"

	"github.com/golang/geo/s2"
	"github.com/tzneal/coordconv"
)

// mgrsPrecision selects 1 m resolution (5 digits per axis).
const mgrsPrecision = 5

// GridReference holds the UTM and MGRS representation of a position.
type GridReference struct {
	UTM  string
	MGRS string
}

// LatLng converts the point to an s2.LatLng.
func (p GeoPoint) LatLng() s2.LatLng {
	return s2.LatLngFromDegrees(p.Latitude, p.Longitude)
}

// Grid converts a position to UTM and MGRS grid references.
func Grid(p GeoPoint) (GridReference, error) {
	ll := p.LatLng()

	utm, err := coordconv.DefaultUTMConverter.ConvertFromGeodetic(ll, 0)
	if err != nil {
		return GridReference{}, fmt.Errorf("convert to UTM: %w", err)
	}

	mgrs, err := coordconv.DefaultMGRSConverter.ConvertFromGeodetic(ll, mgrsPrecision)
	if err != nil {
		return GridReference{}, fmt.Errorf("convert to MGRS: %w", err)
	}

	return GridReference{
		UTM:  fmt.Sprintf("%d%c %.0f %.0f", utm.Zone, hemisphereRune(utm.Hemisphere), utm.Easting, utm.Northing),
		MGRS: mgrs,
	}, nil
}

func hemisphereRune(h coordconv.Hemisphere) rune {
	switch h {
	case coordconv.HemisphereNorth:
		return 'N'
	case coordconv.HemisphereSouth:
		return 'S'
	default:
		return '?'
	}
}
