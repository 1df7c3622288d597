// Package kml builds KML documents for single positions and tracks.
//
// Both builders are pure: they return either a complete document or an empty
// string together with ErrMalformedInput, never a truncated document.
package kml

import (
	"errors"
	"fmt"
	"io"

	"github.com/woozymasta/niu-cloud-cli/internal/geo"
)

// Namespace is the KML 2.2 XML namespace.
const Namespace = "http://www.opengis.net/kml/2.2"

// ErrMalformedInput is returned when a required field is missing or unusable.
// The accompanying document is always empty.
var ErrMalformedInput = errors.New("malformed position input")

// PointOptions describes the single position of a point document.
// Fields are pointers so that values missing from decoded input can be told
// apart from zero values.
type PointOptions struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

// PointOf returns options with every field set from p.
func PointOf(p geo.NamedPosition) PointOptions {
	return PointOptions{
		Name:        &p.Name,
		Description: &p.Description,
		Latitude:    &p.Position.Latitude,
		Longitude:   &p.Position.Longitude,
	}
}

// Position validates the options and returns the named position.
func (o PointOptions) Position() (geo.NamedPosition, error) {
	var missing []string
	if o.Name == nil {
		missing = append(missing, "name")
	}
	if o.Description == nil {
		missing = append(missing, "description")
	}
	if o.Latitude == nil {
		missing = append(missing, "latitude")
	}
	if o.Longitude == nil {
		missing = append(missing, "longitude")
	}
	if len(missing) > 0 {
		return geo.NamedPosition{}, fmt.Errorf("%w: missing %v", ErrMalformedInput, missing)
	}

	p := geo.NamedPosition{
		Name:        *o.Name,
		Description: *o.Description,
		Position:    geo.GeoPoint{Latitude: *o.Latitude, Longitude: *o.Longitude},
	}
	if !p.Position.IsFinite() {
		return geo.NamedPosition{}, fmt.Errorf("%w: coordinates are not finite", ErrMalformedInput)
	}

	return p, nil
}

// Point builds a document with a single placemark and no style.
func Point(opts PointOptions) (string, error) {
	p, err := opts.Position()
	if err != nil {
		return "", err
	}

	var d docWriter
	d.header()
	d.placemark(p.Name, p.Description, p.Position.Latitude, p.Position.Longitude, "")
	d.footer()

	return d.String(), nil
}

// Track builds a document with the normal and the 16 directional styles
// followed by one placemark per position, in the given order.
//
// Every placemark but the last is styled after the bearing towards its
// successor; the last one gets the normal style. An empty track yields a
// document with the style definitions only.
func Track(track []geo.NamedPosition) (string, error) {
	for i, p := range track {
		if !p.Position.IsFinite() {
			return "", fmt.Errorf("%w: track item %d has non-finite coordinates", ErrMalformedInput, i)
		}
	}

	var d docWriter
	d.header()
	for _, s := range styles() {
		d.style(s)
	}

	for i, p := range track {
		style := StyleNormal
		if i+1 < len(track) {
			style = StyleFor(geo.Bearing(p.Position, track[i+1].Position))
		}

		d.placemark(p.Name, p.Description, p.Position.Latitude, p.Position.Longitude, style.Ref())
	}
	d.footer()

	return d.String(), nil
}

// WritePoint writes the point document to w. Nothing is written on error.
func WritePoint(w io.Writer, opts PointOptions) error {
	doc, err := Point(opts)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, doc)
	return err
}

// WriteTrack writes the track document to w. Nothing is written on error.
func WriteTrack(w io.Writer, track []geo.NamedPosition) error {
	doc, err := Track(track)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, doc)
	return err
}
