// Package datex parses client-supplied dates and builds the calendar ranges
// used by list filters and summaries. All ranges are computed in UTC.
package datex

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date/time format")

// endOfDayOffset is the last millisecond of a calendar day.
const endOfDayOffset = 24*time.Hour - time.Millisecond

// Parse accepts "YYYY-MM-DD" (as from <input type="date">), RFC 3339 with or
// without fractional seconds, and RFC 3339 without a zone. The bool result
// reports whether the input was date-only.
func Parse(raw string) (time.Time, bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false, ErrInvalidDate
	}
	if t, err := time.Parse(DateLayout, raw); err == nil {
		return t.UTC(), true, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t.UTC(), false, nil
	}
	if t, err := time.Parse("2006-01-02T15:04:05", raw); err == nil {
		return t.UTC(), false, nil
	}
	return time.Time{}, false, ErrInvalidDate
}

// StartOfDay truncates t to 00:00:00.000 UTC of its calendar day.
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DayRange returns the inclusive [00:00:00.000, 23:59:59.999] range of t's day.
func DayRange(t time.Time) (time.Time, time.Time) {
	start := StartOfDay(t)
	return start, start.Add(endOfDayOffset)
}

// MonthRange returns [first instant of month, first instant of next month).
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// Time is a JSON time that also accepts the date-only form.
type Time struct {
	time.Time
}

func (ft *Time) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if strings.TrimSpace(s) == "" {
		return nil
	}
	t, _, err := Parse(s)
	if err != nil {
		return err
	}
	ft.Time = t
	return nil
}

// Ptr returns nil for the zero value so optional fields stay optional.
func (ft *Time) Ptr() *time.Time {
	if ft == nil || ft.Time.IsZero() {
		return nil
	}
	t := ft.Time
	return &t
}
