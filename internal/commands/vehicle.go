package commands

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/woozymasta/niu-cloud-cli/internal/geo"
	"github.com/woozymasta/niu-cloud-cli/internal/kml"
	"github.com/woozymasta/niu-cloud-cli/internal/output"

	"github.com/rs/zerolog/log"
)

// GetVehicles lists the vehicles of the account.
type GetVehicles struct {
	app *App

	JSONOption
	FilterOption
}

// Execute implements flags.Commander.
func (c *GetVehicles) Execute(_ []string) error {
	a := c.app
	if err := onlyOne(option{"--json", c.JSON}, option{"--filter", c.Filter != ""}); err != nil {
		return err
	}

	s, err := a.open("", false)
	if err != nil {
		return err
	}

	res, err := s.client.Vehicles(a.ctx())
	if err != nil {
		return err
	}

	if done, err := a.printRaw(res.Raw, c.JSON, c.Filter); done {
		return err
	}

	if len(res.Data) == 0 {
		a.printf("No vehicles available.\n")
		return nil
	}

	for i, v := range res.Data {
		a.printf("%d. %s\n", i+1, v.Type)
		a.printf("\tName         : %s\n", v.Name)
		a.printf("\tSerial number: %s\n", v.Serial)
		a.printf("\tFrame number : %s\n", v.FrameNo)
		a.printf("\tEngine number: %s\n", v.EngineNo)
	}

	return nil
}

// GetVehiclePos prints the last known position of a vehicle.
type GetVehiclePos struct {
	app *App

	VehicleOption
	JSONOption
	KML     bool `short:"k" long:"kml"     description:"Output result as KML document"`
	GeoJSON bool `short:"g" long:"geojson" description:"Output result as GeoJSON feature"`
	DocumentOptions
}

// Execute implements flags.Commander.
func (c *GetVehiclePos) Execute(_ []string) error {
	a := c.app
	if err := onlyOne(option{"--json", c.JSON}, option{"--kml", c.KML}, option{"--geojson", c.GeoJSON}); err != nil {
		return err
	}

	s, err := a.open(c.Serial, true)
	if err != nil {
		return err
	}

	res, err := s.client.VehiclePosition(a.ctx(), s.serial)
	if err != nil {
		return err
	}
	pos := res.Data

	name := s.serial
	description := "Last known position from " + s.times.Millis(int64(pos.Timestamp))
	opts := kml.PointOptions{
		Name:        &name,
		Description: &description,
		Latitude:    pos.Latitude,
		Longitude:   pos.Longitude,
	}

	switch {
	case c.JSON:
		return output.JSON(a.Stdout, res.Raw)

	case c.KML:
		doc, err := kml.Point(opts)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrNothingToRender, err)
		}
		return a.emit([]byte(doc), output.MediaKML, c.Minify, c.Out)

	case c.GeoJSON:
		p, err := opts.Position()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrNothingToRender, err)
		}
		data, err := json.MarshalIndent(geo.PointFeature(p), "", "  ")
		if err != nil {
			return err
		}
		return a.emit(append(data, '\n'), output.MediaJSON, c.Minify, c.Out)
	}

	a.printf("Latitude     : %s\n", optionalFloat(pos.Latitude))
	a.printf("Longitude    : %s\n", optionalFloat(pos.Longitude))
	a.printf("Timestamp    : %s\n", s.times.Millis(int64(pos.Timestamp)))
	a.printf("GPS          : %s\n", pos.GPS)
	a.printf("GPS precision: %s\n", pos.GPSPrecision)

	if pos.Latitude == nil || pos.Longitude == nil {
		return nil
	}

	grid, err := geo.Grid(geo.GeoPoint{Latitude: *pos.Latitude, Longitude: *pos.Longitude})
	if err != nil {
		log.Debug().Err(err).Msg("No grid reference for position")
		return nil
	}
	a.printf("UTM          : %s\n", grid.UTM)
	a.printf("MGRS         : %s\n", grid.MGRS)

	return nil
}

// GetFirmwareVersion prints the firmware state of a vehicle.
type GetFirmwareVersion struct {
	app *App

	VehicleOption
	JSONOption
}

// Execute implements flags.Commander.
func (c *GetFirmwareVersion) Execute(_ []string) error {
	a := c.app

	s, err := a.open(c.Serial, true)
	if err != nil {
		return err
	}

	res, err := s.client.FirmwareVersion(a.ctx(), s.serial)
	if err != nil {
		return err
	}

	if done, err := a.printRaw(res.Raw, c.JSON, ""); done {
		return err
	}

	fw := res.Data
	a.printf("Now version        : %s\n", fw.NowVersion)
	a.printf("Version            : %s\n", fw.Version)
	a.printf("Hard version       : %s\n", fw.HardVersion)
	a.printf("SS protocol version: %s\n", fw.SSProtocolVersion)
	a.printf("Byte size          : %s\n", fw.ByteSize)
	a.printf("Date               : %s\n", s.times.Millis(int64(fw.Date)))
	a.printf("Is support update? : %s\n", fw.IsSupportUpdate)
	a.printf("Is update needed?  : %s\n", fw.NeedUpdate)
	a.printf("OTA description    : %s\n", fw.OTADescribe)

	return nil
}

// GetUpdateInfo prints the connectivity module state of a vehicle.
type GetUpdateInfo struct {
	app *App

	VehicleOption
	JSONOption
	FilterOption
}

// Execute implements flags.Commander.
func (c *GetUpdateInfo) Execute(_ []string) error {
	a := c.app
	if err := onlyOne(option{"--json", c.JSON}, option{"--filter", c.Filter != ""}); err != nil {
		return err
	}

	s, err := a.open(c.Serial, true)
	if err != nil {
		return err
	}

	res, err := s.client.UpdateInfo(a.ctx(), s.serial)
	if err != nil {
		return err
	}

	if done, err := a.printRaw(res.Raw, c.JSON, c.Filter); done {
		return err
	}

	a.printf("CSQ                   : %s\n", res.Data.CSQ)
	a.printf("Centre control battery: %s\n", res.Data.CentreCtrlBattery)
	a.printf("Date                  : %s\n", s.times.Millis(int64(res.Data.Date)))

	return nil
}

// GetMotorInfo prints the live status of a vehicle.
type GetMotorInfo struct {
	app *App

	VehicleOption
	JSONOption
	FilterOption
}

// Execute implements flags.Commander.
func (c *GetMotorInfo) Execute(_ []string) error {
	a := c.app
	if err := onlyOne(option{"--json", c.JSON}, option{"--filter", c.Filter != ""}); err != nil {
		return err
	}

	s, err := a.open(c.Serial, true)
	if err != nil {
		return err
	}

	res, err := s.client.MotorInfo(a.ctx(), s.serial)
	if err != nil {
		return err
	}

	if done, err := a.printRaw(res.Raw, c.JSON, c.Filter); done {
		return err
	}

	m := res.Data
	a.printf("Is charging                     : %s\n", m.IsCharging)
	a.printf("Lock status                     : %s\n", m.LockStatus)
	a.printf("Is adaptive cruise control on   : %s\n", m.IsAccOn)
	a.printf("Is fortification on             : %s\n", m.IsFortificationOn)
	a.printf("Is connected                    : %s\n", m.IsConnected)
	a.printf("Current position                : \n")
	a.printf("\tLatitude : %s\n", m.Position.Latitude)
	a.printf("\tLongitude: %s\n", m.Position.Longitude)
	a.printf("Horizontal dilution of precision: %s\n", m.HDOP)
	a.printf("Time                            : %s\n", s.times.Millis(int64(m.Time)))

	for _, b := range m.Batteries.List() {
		a.printf("Battery %s                       :\n", b.Label)
		a.printf("\tBMS id         : %s\n", b.BMSID)
		a.printf("\tIs connected   : %s\n", b.IsConnected)
		a.printf("\tState of charge: %s %%\n", b.BatteryCharging)
		a.printf("\tGrade          : %s\n", b.GradeBattery)
	}

	a.printf("Left time                       : %s\n", m.LeftTime)
	a.printf("Estimated mileage               : %s km\n", m.EstimatedMileage)
	a.printf("GPS timestamp                   : %s\n", s.times.Millis(int64(m.GPSTimestamp)))
	a.printf("Info timestamp                  : %s\n", s.times.Millis(int64(m.InfoTimestamp)))
	a.printf("Current speed                   : %s km/h\n", m.NowSpeed)
	a.printf("Battery detail                  : %s\n", m.BatteryDetail)
	a.printf("Centre control battery          : %s\n", m.CentreCtrlBattery)
	a.printf("SS protocol version             : %s\n", m.SSProtocolVersion)
	a.printf("SS online status                : %s\n", m.SSOnlineStatus)
	a.printf("GPS signal strength             : %s\n", m.GPS)
	a.printf("GSM signal strength             : %s\n", m.GSM)
	a.printf("Last track                      : \n")
	a.printf("\tRiding time: %s s\n", m.LastTrack.RidingTime)
	a.printf("\tDistance   : %s m\n", m.LastTrack.Distance)
	a.printf("\tTime       : %s\n", s.times.Millis(int64(m.LastTrack.Time)))

	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func optionalFloat(v *float64) string {
	if v == nil {
		return "-"
	}
	return formatFloat(*v)
}
