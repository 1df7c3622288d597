package kml

import (
	"bytes"
	"strconv"
	"strings"
)

const (
	lineEnding  = "\r\n"
	indentWidth = 4
)

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// docWriter accumulates an indented document. Every opened element raises the
// indentation by one level, the matching close restores it.
type docWriter struct {
	buf   bytes.Buffer
	depth int
}

func (d *docWriter) line(s string) {
	d.buf.WriteString(strings.Repeat(" ", d.depth*indentWidth))
	d.buf.WriteString(s)
	d.buf.WriteString(lineEnding)
}

func (d *docWriter) open(tag string) {
	d.line("<" + tag + ">")
	d.depth++
}

func (d *docWriter) openWithID(tag, id string) {
	d.line("<" + tag + " id=\"" + id + "\">")
	d.depth++
}

func (d *docWriter) close(tag string) {
	d.depth--
	d.line("</" + tag + ">")
}

// text writes a leaf element with escaped character data.
func (d *docWriter) text(tag, value string) {
	d.line("<" + tag + ">" + textEscaper.Replace(value) + "</" + tag + ">")
}

func (d *docWriter) header() {
	d.line(`<?xml version="1.0" encoding="UTF-8"?>`)
	d.line(`<kml xmlns="` + Namespace + `">`)
	d.depth++
	d.open("Document")
}

func (d *docWriter) footer() {
	d.close("Document")
	d.close("kml")
}

func (d *docWriter) style(s StyleID) {
	d.openWithID("Style", s.String())
	d.open("IconStyle")
	d.open("Icon")
	d.text("href", s.IconURL())
	d.close("Icon")
	d.close("IconStyle")
	d.close("Style")
}

// placemark writes one placemark; an empty styleRef omits the styleUrl element.
func (d *docWriter) placemark(name, description string, lat, lon float64, styleRef string) {
	d.open("Placemark")
	d.text("name", name)
	d.text("description", description)
	d.open("Point")
	d.text("coordinates", formatCoord(lon)+","+formatCoord(lat))
	d.close("Point")
	if styleRef != "" {
		d.text("styleUrl", styleRef)
	}
	d.close("Placemark")
}

func (d *docWriter) String() string {
	return d.buf.String()
}

// formatCoord renders the shortest decimal form that round-trips, e.g. 13.4.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
