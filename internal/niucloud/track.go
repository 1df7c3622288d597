package niucloud

import (
	"strconv"
	"time"

	"github.com/woozymasta/niu-cloud-cli/internal/geo"

	"github.com/rs/zerolog/log"
)

// Positions converts the fixes of a ride into an oldest-first track.
//
// Positions are named "#1".."#N". The description carries the fix time and
// the time since the previous fix, measured on the clock of the day as the
// mobile app does (a ride across midnight yields a negative delta).
// Fixes without latitude or longitude are skipped.
func (d TrackDetail) Positions(loc *time.Location, format func(time.Time) string) []geo.NamedPosition {
	n := len(d.TrackItems)
	out := make([]geo.NamedPosition, 0, n)

	var prev time.Time
	for i := n - 1; i >= 0; i-- {
		item := d.TrackItems[i]
		if !item.Valid() {
			log.Debug().Int("item", i).Msg("Skipping track fix without coordinates")
			continue
		}

		at := item.Date.Time(loc)

		delta := "-"
		if len(out) > 0 {
			delta = strconv.Itoa(secondsOfDay(at)-secondsOfDay(prev)) + " seconds"
		}

		out = append(out, geo.NamedPosition{
			Name:        "#" + strconv.Itoa(len(out)+1),
			Description: "Date: " + format(at) + "\r\ndTime: " + delta,
			Position: geo.GeoPoint{
				Latitude:  item.Latitude.Float(),
				Longitude: item.Longitude.Float(),
			},
		})

		prev = at
	}

	return out
}

func secondsOfDay(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}
