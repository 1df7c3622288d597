package kml

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/woozymasta/niu-cloud-cli/internal/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func ptr[T any](v T) *T { return &v }

func TestPoint(t *testing.T) {
	doc, err := Point(PointOptions{
		Name:        ptr("A"),
		Description: ptr("d"),
		Latitude:    ptr(52.5),
		Longitude:   ptr(13.4),
	})
	require.NoError(t, err)

	expected := strings.Join([]string{
		`<?xml version="1.0" encoding="UTF-8"?>`,
		`<kml xmlns="http://www.opengis.net/kml/2.2">`,
		`    <Document>`,
		`        <Placemark>`,
		`            <name>A</name>`,
		`            <description>d</description>`,
		`            <Point>`,
		`                <coordinates>13.4,52.5</coordinates>`,
		`            </Point>`,
		`        </Placemark>`,
		`    </Document>`,
		`</kml>`,
		``,
	}, "\r\n")

	assert.Equal(t, expected, doc)
	assert.Equal(t, 1, strings.Count(doc, "<Placemark>"))
	assert.NotContains(t, doc, "styleUrl", "point documents carry no style")
}

func TestPointMalformed(t *testing.T) {
	tests := []struct {
		name string
		opts PointOptions
	}{
		{"missing name", PointOptions{Description: ptr("d"), Latitude: ptr(1.0), Longitude: ptr(2.0)}},
		{"missing description", PointOptions{Name: ptr("A"), Latitude: ptr(1.0), Longitude: ptr(2.0)}},
		{"missing latitude", PointOptions{Name: ptr("A"), Description: ptr("d"), Longitude: ptr(2.0)}},
		{"missing longitude", PointOptions{Name: ptr("A"), Description: ptr("d"), Latitude: ptr(1.0)}},
		{"empty options", PointOptions{}},
		{"NaN latitude", PointOptions{Name: ptr("A"), Description: ptr("d"), Latitude: ptr(math.NaN()), Longitude: ptr(2.0)}},
		{"infinite longitude", PointOptions{Name: ptr("A"), Description: ptr("d"), Latitude: ptr(1.0), Longitude: ptr(math.Inf(1))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Point(tt.opts)
			assert.ErrorIs(t, err, ErrMalformedInput)
			assert.Equal(t, "", doc)
		})
	}
}

func TestPointEmptyStringsAreValid(t *testing.T) {
	doc, err := Point(PointOptions{Name: ptr(""), Description: ptr(""), Latitude: ptr(0.0), Longitude: ptr(0.0)})
	require.NoError(t, err)
	assert.Contains(t, doc, "<name></name>")
	assert.Contains(t, doc, "<coordinates>0,0</coordinates>")
}

func TestPointEscapesText(t *testing.T) {
	doc, err := Point(PointOf(geo.NamedPosition{
		Name:        "R&D <garage>",
		Description: "Date: today\r\ndTime: -",
		Position:    geo.GeoPoint{Latitude: 1, Longitude: 2},
	}))
	require.NoError(t, err)

	assert.Contains(t, doc, "<name>R&amp;D &lt;garage&gt;</name>")
	assert.Contains(t, doc, "<description>Date: today\r\ndTime: -</description>")
}

func TestTrackEmpty(t *testing.T) {
	doc, err := Track([]geo.NamedPosition{})
	require.NoError(t, err)

	assert.Equal(t, 17, strings.Count(doc, "<Style id="))
	assert.Equal(t, 0, strings.Count(doc, "<Placemark>"))
	assert.Contains(t, doc, `<Style id="normalPlacemark">`)
	for i := 0; i < 16; i++ {
		assert.Contains(t, doc, `<Style id="bearing`+strconv.Itoa(i)+`">`)
		assert.Contains(t, doc, "/track-directional/track-"+strconv.Itoa(i)+".png</href>")
	}
	assert.Contains(t, doc, "/track-directional/track-none.png</href>")

	nilDoc, err := Track(nil)
	require.NoError(t, err)
	assert.Equal(t, doc, nilDoc)
}

func TestTrackTwoPoints(t *testing.T) {
	track := []geo.NamedPosition{
		{Name: "#1", Description: "first", Position: geo.GeoPoint{Latitude: 0, Longitude: 0}},
		{Name: "#2", Description: "second", Position: geo.GeoPoint{Latitude: 0, Longitude: 1}},
	}

	doc, err := Track(track)
	require.NoError(t, err)

	placemarks := strings.Split(doc, "<Placemark>")[1:]
	require.Len(t, placemarks, 2)

	// due east: bearing 90, bucket 4
	assert.Contains(t, placemarks[0], "<styleUrl>#bearing4</styleUrl>")
	assert.Contains(t, placemarks[0], "<coordinates>0,0</coordinates>")
	assert.Contains(t, placemarks[1], "<styleUrl>#normalPlacemark</styleUrl>")
	assert.Contains(t, placemarks[1], "<coordinates>1,0</coordinates>")
	assert.NotContains(t, placemarks[1], "#bearing")
}

func TestTrackSinglePoint(t *testing.T) {
	doc, err := Track([]geo.NamedPosition{{Name: "only", Position: geo.GeoPoint{Latitude: 5, Longitude: 6}}})
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(doc, "<Placemark>"))
	assert.Equal(t, 1, strings.Count(doc, "<styleUrl>#normalPlacemark</styleUrl>"))
}

func TestTrackKeepsOrder(t *testing.T) {
	track := []geo.NamedPosition{
		{Name: "north", Position: geo.GeoPoint{Latitude: 0, Longitude: 0}},
		{Name: "south", Position: geo.GeoPoint{Latitude: 1, Longitude: 0}},
		{Name: "end", Position: geo.GeoPoint{Latitude: 0, Longitude: 0}},
	}

	doc, err := Track(track)
	require.NoError(t, err)

	first := strings.Index(doc, "<name>north</name>")
	second := strings.Index(doc, "<name>south</name>")
	third := strings.Index(doc, "<name>end</name>")
	assert.True(t, first < second && second < third, "placemarks follow track order")

	placemarks := strings.Split(doc, "<Placemark>")[1:]
	require.Len(t, placemarks, 3)
	assert.Contains(t, placemarks[0], "#bearing0")
	assert.Contains(t, placemarks[1], "#bearing8")
	assert.Contains(t, placemarks[2], "#normalPlacemark")
}

func TestTrackDeterministic(t *testing.T) {
	track := []geo.NamedPosition{
		{Name: "#1", Description: "a", Position: geo.GeoPoint{Latitude: 48.137, Longitude: 11.575}},
		{Name: "#2", Description: "b", Position: geo.GeoPoint{Latitude: 48.139, Longitude: 11.580}},
		{Name: "#3", Description: "c", Position: geo.GeoPoint{Latitude: 48.135, Longitude: 11.590}},
	}

	first, err := Track(track)
	require.NoError(t, err)
	second, err := Track(track)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestTrackMalformed(t *testing.T) {
	doc, err := Track([]geo.NamedPosition{
		{Name: "ok", Position: geo.GeoPoint{Latitude: 1, Longitude: 1}},
		{Name: "bad", Position: geo.GeoPoint{Latitude: math.NaN(), Longitude: 1}},
	})

	assert.ErrorIs(t, err, ErrMalformedInput)
	assert.Equal(t, "", doc)
}

func TestTrackIndentation(t *testing.T) {
	doc, err := Track([]geo.NamedPosition{
		{Name: "#1", Position: geo.GeoPoint{Latitude: 0, Longitude: 0}},
		{Name: "#2", Position: geo.GeoPoint{Latitude: 1, Longitude: 1}},
	})
	require.NoError(t, err)

	require.True(t, strings.HasSuffix(doc, "</kml>\r\n"))
	lines := strings.Split(strings.TrimSuffix(doc, "\r\n"), "\r\n")

	depth := 0
	for i, l := range lines {
		assert.NotContains(t, l, "\n", "line endings are CRLF only")

		trimmed := strings.TrimLeft(l, " ")
		indent := len(l) - len(trimmed)

		if strings.HasPrefix(trimmed, "</") {
			depth--
		}
		if i > 1 {
			assert.Equal(t, depth*4, indent, "line %d: %q", i, l)
		}
		if isOpening(trimmed) {
			depth++
		}
	}
	assert.Equal(t, 0, depth, "every element is closed")
}

func TestWriteTrack(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, WriteTrack(&sb, nil))
	assert.Contains(t, sb.String(), "<Document>")

	sb.Reset()
	err := WritePoint(&sb, PointOptions{Name: ptr("x")})
	assert.ErrorIs(t, err, ErrMalformedInput)
	assert.Empty(t, sb.String(), "nothing is written on malformed input")
}

// isOpening reports whether a trimmed line opens an element that is closed on a later line.
func TestTrackStructureProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 20).Draw(t, "n")
		track := make([]geo.NamedPosition, n)
		for i := range track {
			track[i] = geo.NamedPosition{
				Name: rapid.StringMatching(`[a-z<&>]{0,8}`).Draw(t, "name"),
				Position: geo.GeoPoint{
					Latitude:  rapid.Float64Range(-89, 89).Draw(t, "lat"),
					Longitude: rapid.Float64Range(-180, 180).Draw(t, "lon"),
				},
			}
		}

		doc, err := Track(track)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got := strings.Count(doc, "<Placemark>"); got != n {
			t.Fatalf("placemarks: got %d, want %d", got, n)
		}
		if got := strings.Count(doc, "<Style id="); got != geo.BucketCount+1 {
			t.Fatalf("styles: got %d", got)
		}
		if strings.Count(doc, "\n") != strings.Count(doc, "\r\n") {
			t.Fatal("bare LF in document")
		}
		if n > 0 && strings.Count(doc, "#"+StyleNormal.String()) != 1 {
			t.Fatal("only the last placemark carries the normal style")
		}
	})
}

func isOpening(l string) bool {
	if !strings.HasPrefix(l, "<") || strings.HasPrefix(l, "</") || strings.HasPrefix(l, "<?") {
		return false
	}

	return !strings.Contains(l, "</")
}
