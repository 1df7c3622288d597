package niucloud

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
)

const appID = "niu_ktdrr960"

// CreateToken logs in and returns a session token. The token is also kept
// by the client for subsequent calls.
func (c *Client) CreateToken(ctx context.Context, account, password, countryCode string) (string, error) {
	res, err := fetch[struct {
		Token struct {
			AccessToken string `json:"access_token"`
		} `json:"token"`
	}](ctx, c, request{
		method: http.MethodPost,
		base:   c.accountURL,
		path:   "/v3/api/oauth2/token",
		form: url.Values{
			"account":     {account},
			"password":    {password},
			"countryCode": {countryCode},
			"grant_type":  {"password"},
			"scope":       {"base"},
			"app_id":      {appID},
		},
	})
	if err != nil {
		return "", err
	}

	token := res.Data.Token.AccessToken
	if token == "" {
		return "", errors.New("login response carries no token")
	}

	c.token = token
	return token, nil
}

// Vehicles lists the vehicles of the account.
func (c *Client) Vehicles(ctx context.Context) (*Result[[]Vehicle], error) {
	res, err := fetch[[]Vehicle](ctx, c, c.apiForm("/motoinfo/list", url.Values{}))
	if err != nil {
		return nil, err
	}
	if res.Data == nil {
		res.Data = []Vehicle{}
	}

	return res, nil
}

// VehiclePosition returns the last known position of a vehicle.
func (c *Client) VehiclePosition(ctx context.Context, sn string) (*Result[VehiclePosition], error) {
	return fetch[VehiclePosition](ctx, c, c.apiForm("/motoinfo/currentpos", url.Values{"sn": {sn}}))
}

// BatteryInfo returns the battery state of a vehicle.
func (c *Client) BatteryInfo(ctx context.Context, sn string) (*Result[BatteryInfo], error) {
	return fetch[BatteryInfo](ctx, c, c.apiGet("/v3/motor_data/battery_info", url.Values{"sn": {sn}}))
}

// BatteryHealth returns the battery health history of a vehicle.
func (c *Client) BatteryHealth(ctx context.Context, sn string) (*Result[BatteryHealth], error) {
	return fetch[BatteryHealth](ctx, c, c.apiGet("/v3/motor_data/battery_info/health", url.Values{"sn": {sn}}))
}

// BatteryChart returns one page of the battery chart.
func (c *Client) BatteryChart(ctx context.Context, q ChartQuery) (*Result[BatteryChart], error) {
	return fetch[BatteryChart](ctx, c, c.apiGet("/v3/motor_data/battery_chart/", url.Values{
		"sn":         {q.Serial},
		"bmsId":      {strconv.Itoa(q.BMSID)},
		"page":       {strconv.Itoa(q.Page)},
		"page_size":  {q.PageSize},
		"pageLength": {strconv.Itoa(q.PageLength)},
	}))
}

// BatteryChartHistory pages through the battery chart of one battery,
// oldest samples first. It stops at the first empty page or after maxPages
// pages; maxPages <= 0 means no limit.
func (c *Client) BatteryChartHistory(ctx context.Context, sn string, bmsID, maxPages int) ([]ChartPoint, error) {
	points := []ChartPoint{}

	for page := 1; maxPages <= 0 || page <= maxPages; page++ {
		res, err := c.BatteryChart(ctx, ChartQuery{
			Serial:     sn,
			BMSID:      bmsID,
			Page:       page,
			PageSize:   "B",
			PageLength: 1,
		})
		if err != nil {
			return nil, err
		}

		items := res.Data.Items1
		if len(items) == 0 {
			break
		}

		// later pages hold older samples
		points = append(append(make([]ChartPoint, 0, len(items)+len(points)), items...), points...)
	}

	return points, nil
}

// Tracks returns a page of recorded rides, newest first.
func (c *Client) Tracks(ctx context.Context, sn string, index, pageSize int) (*Result[TrackList], error) {
	res, err := fetch[TrackList](ctx, c, request{
		method: http.MethodPost,
		base:   c.apiURL,
		path:   "/v5/track/list/v2",
		auth:   true,
		body: map[string]any{
			"index":    index,
			"pagesize": pageSize,
			"sn":       sn,
		},
	})
	if err != nil {
		return nil, err
	}
	if res.Data.Items == nil {
		res.Data.Items = []Track{}
	}

	return res, nil
}

// TrackDetail returns the GPS fixes of a ride.
func (c *Client) TrackDetail(ctx context.Context, sn, trackID, trackDate string) (*Result[TrackDetail], error) {
	return fetch[TrackDetail](ctx, c, request{
		method: http.MethodPost,
		base:   c.apiURL,
		path:   "/v5/track/detail",
		auth:   true,
		body: map[string]any{
			"sn":      sn,
			"trackId": trackID,
			"date":    trackDate,
		},
	})
}

// FirmwareVersion returns the firmware state of a vehicle.
func (c *Client) FirmwareVersion(ctx context.Context, sn string) (*Result[FirmwareVersion], error) {
	return fetch[FirmwareVersion](ctx, c, c.apiForm("/motorota/getfirmwareversion", url.Values{"sn": {sn}}))
}

// UpdateInfo returns the connectivity module state of a vehicle.
func (c *Client) UpdateInfo(ctx context.Context, sn string) (*Result[UpdateInfo], error) {
	return fetch[UpdateInfo](ctx, c, c.apiForm("/motorota/getupdateinfo", url.Values{"sn": {sn}}))
}

// MotorInfo returns the live status of a vehicle.
func (c *Client) MotorInfo(ctx context.Context, sn string) (*Result[MotorInfo], error) {
	return fetch[MotorInfo](ctx, c, c.apiGet("/v3/motor_data/index_info", url.Values{"sn": {sn}}))
}

func (c *Client) apiGet(path string, query url.Values) request {
	return request{method: http.MethodGet, base: c.apiURL, path: path, query: query, auth: true}
}

func (c *Client) apiForm(path string, form url.Values) request {
	return request{method: http.MethodPost, base: c.apiURL, path: path, form: form, auth: true}
}
