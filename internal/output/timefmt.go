package output

import (
	"fmt"
	"time"

	"github.com/lestrrat-go/strftime"
)

// DefaultTimeFormat is the strftime layout used when none is configured.
const DefaultTimeFormat = "%Y-%m-%d %H:%M:%S"

// TimeFormatter formats timestamps with a strftime layout in a fixed location.
type TimeFormatter struct {
	f   *strftime.Strftime
	loc *time.Location
}

// NewTimeFormatter compiles layout; an empty layout selects DefaultTimeFormat
// and a nil location selects time.Local.
func NewTimeFormatter(layout string, loc *time.Location) (*TimeFormatter, error) {
	if layout == "" {
		layout = DefaultTimeFormat
	}
	if loc == nil {
		loc = time.Local
	}

	f, err := strftime.New(layout)
	if err != nil {
		return nil, fmt.Errorf("time format %q: %w", layout, err)
	}

	return &TimeFormatter{f: f, loc: loc}, nil
}

// Location returns the location timestamps are shown in.
func (t *TimeFormatter) Location() *time.Location {
	return t.loc
}

// Format formats tm in the formatter's location.
func (t *TimeFormatter) Format(tm time.Time) string {
	return t.f.FormatString(tm.In(t.loc))
}

// Millis formats a unix timestamp in milliseconds. Zero yields "-".
func (t *TimeFormatter) Millis(ms int64) string {
	if ms == 0 {
		return "-"
	}
	return t.Format(time.UnixMilli(ms))
}
