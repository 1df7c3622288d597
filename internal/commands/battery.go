package commands

import (
	"math"

	"github.com/woozymasta/niu-cloud-cli/internal/niucloud"
	"github.com/woozymasta/niu-cloud-cli/internal/output"
)

const chartHeader = "\"Mileage [km]\";\"Battery status [%]\"\n"

// GetBatteryInfo prints the battery state of a vehicle.
type GetBatteryInfo struct {
	app *App

	VehicleOption
	JSONOption
	FilterOption
}

// Execute implements flags.Commander.
func (c *GetBatteryInfo) Execute(_ []string) error {
	a := c.app
	if err := onlyOne(option{"--json", c.JSON}, option{"--filter", c.Filter != ""}); err != nil {
		return err
	}

	s, err := a.open(c.Serial, true)
	if err != nil {
		return err
	}

	res, err := s.client.BatteryInfo(a.ctx(), s.serial)
	if err != nil {
		return err
	}

	if done, err := a.printRaw(res.Raw, c.JSON, c.Filter); done {
		return err
	}

	for _, b := range res.Data.Batteries.List() {
		a.printf("Battery %s        :\n", b.Label)
		a.printf("\tBMS id         : %s\n", b.BMSID)
		a.printf("\tIs connected   : %s\n", b.IsConnected)
		a.printf("\tState of charge: %s %%\n", b.BatteryCharging)
		a.printf("\tCharge cycles  : %s\n", b.ChargedTimes)
		a.printf("\tTemperature    : %s °C\n", b.Temperature)
		a.printf("\tGrade          : %s\n", b.GradeBattery)
	}
	a.printf("Estimated mileage: %s km\n", res.Data.EstimatedMileage)

	return nil
}

// GetBatteryHealth prints the battery health history of a vehicle.
type GetBatteryHealth struct {
	app *App

	VehicleOption
	JSONOption
	FilterOption
}

// Execute implements flags.Commander.
func (c *GetBatteryHealth) Execute(_ []string) error {
	a := c.app
	if err := onlyOne(option{"--json", c.JSON}, option{"--filter", c.Filter != ""}); err != nil {
		return err
	}

	s, err := a.open(c.Serial, true)
	if err != nil {
		return err
	}

	res, err := s.client.BatteryHealth(a.ctx(), s.serial)
	if err != nil {
		return err
	}

	if done, err := a.printRaw(res.Raw, c.JSON, c.Filter); done {
		return err
	}

	for _, b := range res.Data.Batteries.List() {
		a.printf("Battery %s        :\n", b.Label)
		a.printf("\tBMS id         : %s\n", b.BMSID)
		a.printf("\tIs connected   : %s\n", b.IsConnected)
		a.printf("\tGrade          : %s\n", b.GradeBattery)
		a.printf("\tHealth records : \n")

		for _, r := range b.HealthRecords {
			a.printf("\t\tResult      : %s\n", r.Result)
			a.printf("\t\tCharge count: %s\n", r.ChargeCount)
			a.printf("\t\tColor       : %s\n", r.Color)
			a.printf("\t\tTime        : %s\n", s.times.Millis(int64(r.Time)))
			a.printf("\t\tName        : %s\n", r.Name)
		}
	}
	a.printf("Is double battery: %s\n", res.Data.IsDoubleBattery)

	return nil
}

// GetBatteryChart prints the complete battery chart of one battery as CSV.
type GetBatteryChart struct {
	app *App

	VehicleOption
	Battery string `short:"b" long:"battery" description:"Select battery" choice:"A" choice:"B" default:"A"`
	Pages   int    `short:"p" long:"pages"   description:"Number of pages to get, 0 gets all"  default:"0"`
	JSONOption
}

// Execute implements flags.Commander.
func (c *GetBatteryChart) Execute(_ []string) error {
	a := c.app

	s, err := a.open(c.Serial, true)
	if err != nil {
		return err
	}

	bmsID := 1
	if c.Battery == "B" {
		bmsID = 2
	}

	points, err := s.client.BatteryChartHistory(a.ctx(), s.serial, bmsID, c.Pages)
	if err != nil {
		return err
	}

	if c.JSON {
		return output.Value(a.Stdout, points)
	}

	a.printf("%s", chartHeader)
	a.printChart(points)

	return nil
}

// GetBatteryChartRaw prints a single battery chart page.
type GetBatteryChartRaw struct {
	app *App

	VehicleOption
	BMSID      int    `long:"bms-id"      description:"BMS id (1 = battery A, 2 = battery B)" required:"true"`
	Page       int    `long:"page"        description:"Page, starting at 1"                  required:"true"`
	PageSize   string `long:"page-size"   description:"Page size (A, B, ...)"                required:"true"`
	PageLength int    `long:"page-length" description:"Page length"                          required:"true"`
	JSONOption
}

// Execute implements flags.Commander.
func (c *GetBatteryChartRaw) Execute(_ []string) error {
	a := c.app

	s, err := a.open(c.Serial, true)
	if err != nil {
		return err
	}

	res, err := s.client.BatteryChart(a.ctx(), niucloud.ChartQuery{
		Serial:     s.serial,
		BMSID:      c.BMSID,
		Page:       c.Page,
		PageSize:   c.PageSize,
		PageLength: c.PageLength,
	})
	if err != nil {
		return err
	}

	if c.JSON {
		return output.JSON(a.Stdout, res.Raw)
	}

	a.printf("%s", chartHeader)
	a.printChart(res.Data.Items2)
	a.printChart(res.Data.Items1)

	return nil
}

// printChart prints mileage and state of charge as whole numbers.
func (a *App) printChart(points []niucloud.ChartPoint) {
	for _, p := range points {
		a.printf("%d;%d\n", int64(math.Trunc(p.Mileage.Float())), int64(math.Trunc(p.Battery.Float())))
	}
}
