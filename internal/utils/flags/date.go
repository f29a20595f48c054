package flags

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02",
}

// Date is a date flag.
// It accepts an absolute date or a duration into the past such as "36h" or "7d".
type Date struct {
	Time time.Time

	now func() time.Time
}

// Type returns the date flag type
func (d Date) Type() string {
	return "Date"
}

func (d Date) String() string {
	if d.Time.IsZero() {
		return ""
	}
	return d.Time.Format(time.RFC3339)
}

// Set parses the date flag value
func (d *Date) Set(val string) error {
	if t, ok := d.parseRelative(val); ok {
		d.Time = t
		return nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, val); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("unrecognized date string: %s", val)
}

func (d *Date) parseRelative(val string) (time.Time, bool) {
	now := time.Now
	if d.now != nil {
		now = d.now
	}

	if days := strings.TrimSuffix(val, "d"); days != val {
		n, err := strconv.Atoi(days)
		if err != nil || n < 0 {
			return time.Time{}, false
		}
		return now().AddDate(0, 0, -n), true
	}

	duration, err := time.ParseDuration(val)
	if err != nil || duration < 0 {
		return time.Time{}, false
	}
	return now().Add(-duration), true
}
