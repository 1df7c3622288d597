package kml

import (
	"strconv"

	"github.com/woozymasta/niu-cloud-cli/internal/geo"
)

const iconBaseURL = "http://earth.google.com/images/kml-icons/track-directional/"

// StyleID identifies one of the 17 shared placemark styles of a track document:
// 16 directional styles, one per bearing bucket, and the normal style.
type StyleID int

// StyleNormal marks a placemark without direction (the last point of a track).
const StyleNormal StyleID = geo.BucketCount

// normalIconURL is the icon of the normal style.
const normalIconURL = iconBaseURL + "track-none.png"

// bearingIconURLs holds the directional icon of each bucket, indexed by bucket.
var bearingIconURLs = [geo.BucketCount]string{
	iconBaseURL + "track-0.png",
	iconBaseURL + "track-1.png",
	iconBaseURL + "track-2.png",
	iconBaseURL + "track-3.png",
	iconBaseURL + "track-4.png",
	iconBaseURL + "track-5.png",
	iconBaseURL + "track-6.png",
	iconBaseURL + "track-7.png",
	iconBaseURL + "track-8.png",
	iconBaseURL + "track-9.png",
	iconBaseURL + "track-10.png",
	iconBaseURL + "track-11.png",
	iconBaseURL + "track-12.png",
	iconBaseURL + "track-13.png",
	iconBaseURL + "track-14.png",
	iconBaseURL + "track-15.png",
}

// StyleFor returns the directional style for a bearing in degrees.
func StyleFor(bearing float64) StyleID {
	return StyleID(geo.Bucket(bearing))
}

// String returns the style id as used in the document ("normalPlacemark", "bearing<N>").
func (s StyleID) String() string {
	if s == StyleNormal {
		return "normalPlacemark"
	}

	return "bearing" + strconv.Itoa(int(s))
}

// Ref returns the styleUrl reference to the style.
func (s StyleID) Ref() string {
	return "#" + s.String()
}

// IconURL returns the icon resource of the style.
func (s StyleID) IconURL() string {
	if s == StyleNormal || s < 0 || int(s) >= len(bearingIconURLs) {
		return normalIconURL
	}

	return bearingIconURLs[s]
}

// styles lists every style in declaration order: normal first, then bearing0..15.
func styles() []StyleID {
	out := make([]StyleID, 0, geo.BucketCount+1)
	out = append(out, StyleNormal)
	for i := 0; i < geo.BucketCount; i++ {
		out = append(out, StyleID(i))
	}

	return out
}
