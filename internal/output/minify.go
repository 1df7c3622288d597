package output

import (
	"fmt"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/json"
	"github.com/tdewolff/minify/v2/xml"
)

// Media types accepted by Minify.
const (
	MediaKML  = "application/vnd.google-earth.kml+xml"
	MediaJSON = "application/json"
	MediaXML  = "text/xml"
)

var minifier = newMinifier()

func newMinifier() *minify.M {
	m := minify.New()
	m.AddFunc(MediaXML, xml.Minify)
	m.AddFunc(MediaKML, xml.Minify)
	m.AddFunc(MediaJSON, json.Minify)
	m.AddFunc("application/geo+json", json.Minify)
	return m
}

// Minify compacts a KML/XML or JSON document. Whitespace inside text
// content is collapsed as well, so multi-line descriptions become one line.
func Minify(mediaType string, data []byte) ([]byte, error) {
	out, err := minifier.Bytes(mediaType, data)
	if err != nil {
		return nil, fmt.Errorf("minify %s: %w", mediaType, err)
	}

	return out, nil
}
