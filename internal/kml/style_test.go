package kml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStyleFor(t *testing.T) {
	assert.Equal(t, StyleID(0), StyleFor(0))
	assert.Equal(t, StyleID(1), StyleFor(22.5))
	assert.Equal(t, StyleID(15), StyleFor(337.5))
	assert.Equal(t, StyleID(0), StyleFor(359.999))
}

func TestStyleIDNames(t *testing.T) {
	assert.Equal(t, "normalPlacemark", StyleNormal.String())
	assert.Equal(t, "#normalPlacemark", StyleNormal.Ref())
	assert.Equal(t, "bearing0", StyleID(0).String())
	assert.Equal(t, "#bearing15", StyleID(15).Ref())
}

func TestStyleIDIconURL(t *testing.T) {
	assert.Equal(t, "http://earth.google.com/images/kml-icons/track-directional/track-none.png", StyleNormal.IconURL())
	assert.Equal(t, "http://earth.google.com/images/kml-icons/track-directional/track-7.png", StyleID(7).IconURL())
	assert.Equal(t, StyleNormal.IconURL(), StyleID(-1).IconURL(), "out of range falls back to the normal icon")
}

func TestStylesOrder(t *testing.T) {
	all := styles()

	assert.Len(t, all, 17)
	assert.Equal(t, StyleNormal, all[0])
	for i := 0; i < 16; i++ {
		assert.Equal(t, StyleID(i), all[i+1])
	}
}
