package geo

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrid(t *testing.T) {
	ref, err := Grid(GeoPoint{Latitude: 52.5, Longitude: 13.4})
	require.NoError(t, err)

	assert.Regexp(t, `^33N \d+ \d+$`, ref.UTM)
	assert.Regexp(t, `^33U`, ref.MGRS)
}

func TestGridSouthernHemisphere(t *testing.T) {
	ref, err := Grid(GeoPoint{Latitude: -33.8688, Longitude: 151.2093})
	require.NoError(t, err)

	assert.Regexp(t, `^56S `, ref.UTM)
}

func TestGridMGRSPrecision(t *testing.T) {
	ref, err := Grid(GeoPoint{Latitude: 52.5, Longitude: 13.4})
	require.NoError(t, err)

	// zone plus 5 digit easting and northing
	digits := regexp.MustCompile(`\d`).FindAllString(ref.MGRS, -1)
	assert.Len(t, digits, 12, ref.MGRS)
	assert.Regexp(t, `^33U[A-Z]{2}`, ref.MGRS)
}
