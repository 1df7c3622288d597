package niucloud

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`"abc"`, "abc"},
		{`12`, "12"},
		{`12.5`, "12.5"},
		{`true`, "true"},
		{`null`, "-"},
		{`{"a":1}`, `{"a":1}`},
	}

	for _, tt := range tests {
		var v Value
		require.NoError(t, json.Unmarshal([]byte(tt.in), &v))
		assert.Equal(t, tt.want, v.String(), tt.in)
	}

	var absent struct {
		V Value `json:"v"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{}`), &absent))
	assert.Equal(t, "-", absent.V.String())
}

func TestValueRoundTripKeepsText(t *testing.T) {
	var v struct {
		A Value `json:"a"`
		B Value `json:"b"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"1.50"}`), &v))

	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"1.50","b":null}`, string(out))
}

func TestNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{`1.5`, 1.5},
		{`"1.5"`, 1.5},
		{`"-3"`, -3},
		{`""`, 0},
		{`null`, 0},
	}

	for _, tt := range tests {
		var n Number
		require.NoError(t, json.Unmarshal([]byte(tt.in), &n), tt.in)
		assert.Equal(t, tt.want, n.Float(), tt.in)
	}

	var n Number
	assert.Error(t, json.Unmarshal([]byte(`"north"`), &n))
}

func TestCoordinate(t *testing.T) {
	tests := []struct {
		in    string
		valid bool
		want  float64
	}{
		{`48.1`, true, 48.1},
		{`"11.5"`, true, 11.5},
		{`0`, true, 0},
		{`""`, false, 0},
		{`null`, false, 0},
	}

	for _, tt := range tests {
		var c Coordinate
		require.NoError(t, json.Unmarshal([]byte(tt.in), &c), tt.in)
		assert.Equal(t, tt.valid, c.Valid, tt.in)
		assert.Equal(t, tt.want, c.Float(), tt.in)
	}

	var p TrackPoint
	require.NoError(t, json.Unmarshal([]byte(`{"lat":48.1}`), &p))
	assert.False(t, p.Valid(), "missing lng")
	assert.Equal(t, "-", p.Longitude.String())
	assert.Equal(t, "48.1", p.Latitude.String())

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"lat":48.1,"lng":null}`, string(out))

	var c Coordinate
	assert.Error(t, json.Unmarshal([]byte(`"north"`), &c))
}

func TestMillis(t *testing.T) {
	var m Millis
	require.NoError(t, json.Unmarshal([]byte(`"1700000000000"`), &m))
	assert.Equal(t, Millis(1700000000000), m)

	at := m.Time(time.UTC)
	assert.Equal(t, time.Date(2023, time.November, 14, 22, 13, 20, 0, time.UTC), at)
}
