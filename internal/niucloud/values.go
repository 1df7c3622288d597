package niucloud

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Value keeps a JSON value exactly as the server sent it. It is used for
// fields that are only displayed, whose type the API does not keep stable.
type Value json.RawMessage

// UnmarshalJSON stores a copy of the raw value.
func (v *Value) UnmarshalJSON(data []byte) error {
	*v = append((*v)[0:0], data...)
	return nil
}

// MarshalJSON returns the raw value, or null when unset.
func (v Value) MarshalJSON() ([]byte, error) {
	if len(v) == 0 {
		return []byte("null"), nil
	}
	return v, nil
}

// String renders the value for display: strings unquoted, anything else as
// its JSON text, "-" when absent.
func (v Value) String() string {
	if len(v) == 0 || bytes.Equal(v, []byte("null")) {
		return "-"
	}

	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s
	}

	return string(v)
}

// Number is a float that decodes from a JSON number or a numeric string.
type Number float64

// UnmarshalJSON accepts 1.5, "1.5", "" and null.
func (n *Number) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*n = 0
		return nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid number %s: %w", data, err)
	}

	*n = Number(f)
	return nil
}

// Float returns the number as float64.
func (n Number) Float() float64 {
	return float64(n)
}

// Coordinate is a latitude or longitude that may be absent from a fix.
// Valid is false for a missing field, null or "".
type Coordinate struct {
	Number
	Valid bool
}

// Coord returns a present coordinate.
func Coord(f float64) Coordinate {
	return Coordinate{Number: Number(f), Valid: true}
}

// UnmarshalJSON accepts 1.5, "1.5", "" and null.
func (c *Coordinate) UnmarshalJSON(data []byte) error {
	*c = Coordinate{}

	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}

	if err := c.Number.UnmarshalJSON(data); err != nil {
		return err
	}
	c.Valid = true

	return nil
}

// MarshalJSON writes the number, or null when absent.
func (c Coordinate) MarshalJSON() ([]byte, error) {
	if !c.Valid {
		return []byte("null"), nil
	}

	return []byte(strconv.FormatFloat(c.Float(), 'f', -1, 64)), nil
}

// String returns the shortest decimal form, or "-" when absent.
func (c Coordinate) String() string {
	if !c.Valid {
		return "-"
	}

	return strconv.FormatFloat(c.Float(), 'f', -1, 64)
}

// Millis is a unix timestamp in milliseconds, decoded from a number or a numeric string.
type Millis int64

// UnmarshalJSON accepts 1700000000000, "1700000000000", "" and null.
func (m *Millis) UnmarshalJSON(data []byte) error {
	var n Number
	if err := n.UnmarshalJSON(data); err != nil {
		return err
	}

	*m = Millis(n)
	return nil
}

// Time converts the timestamp to a time in the given location.
func (m Millis) Time(loc *time.Location) time.Time {
	return time.UnixMilli(int64(m)).In(loc)
}
