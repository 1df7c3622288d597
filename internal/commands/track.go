package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/woozymasta/niu-cloud-cli/internal/geo"
	"github.com/woozymasta/niu-cloud-cli/internal/kml"
	"github.com/woozymasta/niu-cloud-cli/internal/output"
	"github.com/woozymasta/niu-cloud-cli/internal/preview"

	"github.com/rs/zerolog/log"
)

// GetTracks prints a page of recorded rides.
type GetTracks struct {
	app *App

	VehicleOption
	Start int `long:"start" description:"Track start index (0..N)" default:"0"`
	Num   int `long:"num"   description:"Number of tracks"          default:"10"`
	JSONOption
}

// Execute implements flags.Commander.
func (c *GetTracks) Execute(_ []string) error {
	a := c.app

	s, err := a.open(c.Serial, true)
	if err != nil {
		return err
	}

	res, err := s.client.Tracks(a.ctx(), s.serial, c.Start, c.Num)
	if err != nil {
		return err
	}

	if c.JSON {
		return output.Value(a.Stdout, res.Data.Items)
	}

	for i, t := range res.Data.Items {
		a.printf("Track #%d\n", i+1)
		a.printf("\tTrack id        : %s\n", t.TrackID)
		a.printf("\tTrack date      : %s\n", t.Date)
		a.printf("\tTrack start time: %s\n", s.times.Millis(int64(t.StartTime)))
		a.printf("\tTrack end time  : %s\n", s.times.Millis(int64(t.EndTime)))
		a.printf("\tDistance        : %s m\n", t.Distance)
		a.printf("\tAverage speed   : %s km/h\n", t.AveSpeed)
		a.printf("\tRiding time     : %s min.\n", t.RidingTime)
		a.printf("\tStart point     : \n")
		a.printf("\t\tLatitude : %s\n", t.StartPoint.Latitude)
		a.printf("\t\tLongitude: %s\n", t.StartPoint.Longitude)
		a.printf("\tEnd point       : \n")
		a.printf("\t\tLatitude : %s\n", t.LastPoint.Latitude)
		a.printf("\t\tLongitude: %s\n", t.LastPoint.Longitude)
	}

	return nil
}

// GetTrackDetail prints the GPS fixes of a ride, as list, KML track,
// GeoJSON or preview image.
type GetTrackDetail struct {
	app *App

	VehicleOption
	TrackID   string `long:"track-id"   description:"Track id"                           required:"true"`
	TrackDate string `long:"track-date" description:"Track date as listed by get-tracks" required:"true"`
	JSONOption
	KML         bool   `short:"k" long:"kml"     description:"Output result as KML track document"`
	GeoJSON     bool   `short:"g" long:"geojson" description:"Output result as GeoJSON feature collection"`
	Preview     string `long:"preview"           description:"Render a WebP preview of the track to this file"`
	PreviewSize int    `long:"preview-size"      description:"Preview edge length in pixels (max 4096)" default:"512"`
	DocumentOptions
}

// Execute implements flags.Commander.
func (c *GetTrackDetail) Execute(_ []string) error {
	a := c.app
	if err := onlyOne(option{"--json", c.JSON}, option{"--kml", c.KML}, option{"--geojson", c.GeoJSON}); err != nil {
		return err
	}
	if c.PreviewSize > preview.MaxSize {
		return fmt.Errorf("--preview-size %d: %w", c.PreviewSize, preview.ErrSizeTooLarge)
	}

	s, err := a.open(c.Serial, true)
	if err != nil {
		return err
	}

	res, err := s.client.TrackDetail(a.ctx(), s.serial, c.TrackID, c.TrackDate)
	if err != nil {
		return err
	}

	positions := res.Data.Positions(s.times.Location(), s.times.Format)

	if c.Preview != "" {
		if err := writePreview(c.Preview, positions, c.PreviewSize); err != nil {
			return err
		}
	}

	switch {
	case c.JSON:
		return output.JSON(a.Stdout, res.Raw)

	case c.KML:
		doc, err := kml.Track(positions)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrNothingToRender, err)
		}
		return a.emit([]byte(doc), output.MediaKML, c.Minify, c.Out)

	case c.GeoJSON:
		data, err := json.MarshalIndent(geo.TrackFeatures(positions), "", "  ")
		if err != nil {
			return err
		}
		return a.emit(append(data, '\n'), output.MediaJSON, c.Minify, c.Out)

	case c.Preview != "":
		return nil
	}

	items := res.Data.TrackItems
	a.printf("Track %q detail from %s\n", c.TrackID, c.TrackDate)
	for i, item := range items {
		a.printf("\tItem #%d\n", i+1)
		a.printf("\t\tLongitude: %s\n", item.Longitude)
		a.printf("\t\tLatitude: %s\n", item.Latitude)
	}

	return nil
}

func writePreview(path string, positions []geo.NamedPosition, size int) error {
	img, err := preview.Render(positions, size)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNothingToRender, err)
	}

	err = writeFile(path, func(w io.Writer) error {
		return preview.Encode(w, img, preview.DefaultQuality)
	})
	if err != nil {
		return fmt.Errorf("write preview: %w", err)
	}

	log.Info().Str("path", path).Int("positions", len(positions)).Msg("Preview written")

	return nil
}
