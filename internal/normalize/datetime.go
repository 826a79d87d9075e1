// Package normalize provides the pure field-derivation functions shared by
// every list-shape converter: localised date/time formatting, sitting
// durations, party and judiciary naming, address concatenation, reporting
// restrictions, and unallocated-room detection. All functions tolerate
// blank input and return empty strings rather than failing.
package normalize

import (
	"fmt"
	"strings"
	"time"

	"listpub/internal/language"
)

// displayZone is the timezone all source timestamps are rendered in.
var displayZone = loadDisplayZone()

func loadDisplayZone() *time.Location {
	loc, err := time.LoadLocation("Europe/London")
	if err != nil {
		return time.UTC
	}
	return loc
}

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTime parses a source timestamp in any of the accepted layouts and
// shifts it into the display timezone. The second return is false when the
// value is blank or unparseable.
func ParseTime(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.In(displayZone), true
		}
	}
	return time.Time{}, false
}

// FormatDate renders a timestamp as a localised date, e.g. "14 February 2026"
// or "14 Chwefror 2026". Unparseable input yields "".
func FormatDate(value string, res *language.Resources) string {
	t, ok := ParseTime(value)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%d %s %d", t.Day(), res.Month(int(t.Month())), t.Year())
}

// FormatDateValue renders an already-parsed time as a localised date.
// The zero time yields "".
func FormatDateValue(t time.Time, res *language.Resources) string {
	if t.IsZero() {
		return ""
	}
	t = t.In(displayZone)
	return fmt.Sprintf("%d %s %d", t.Day(), res.Month(int(t.Month())), t.Year())
}

// FormatTime renders the time-of-day portion of a timestamp, e.g. "10am" or
// "2:30pm". Unparseable input yields "".
func FormatTime(value string) string {
	t, ok := ParseTime(value)
	if !ok {
		return ""
	}
	return clockLabel(t)
}

// FormatDateTime renders date and time together, e.g.
// "14 February 2026 at 2:30pm".
func FormatDateTime(value string, res *language.Resources) string {
	t, ok := ParseTime(value)
	if !ok {
		return ""
	}
	date := fmt.Sprintf("%d %s %d", t.Day(), res.Month(int(t.Month())), t.Year())
	return date + " at " + clockLabel(t)
}

func clockLabel(t time.Time) string {
	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	suffix := "am"
	if t.Hour() >= 12 {
		suffix = "pm"
	}
	if t.Minute() == 0 {
		return fmt.Sprintf("%d%s", hour, suffix)
	}
	return fmt.Sprintf("%d:%02d%s", hour, t.Minute(), suffix)
}

// Duration renders the elapsed time between a sitting start and end as a
// localised phrase, e.g. "1 hour 30 mins" or "1 awr 30 munud". Blank or
// inverted ranges yield "".
func Duration(start, end string, res *language.Resources) string {
	from, okFrom := ParseTime(start)
	to, okTo := ParseTime(end)
	if !okFrom || !okTo || to.Before(from) {
		return ""
	}
	minutes := int(to.Sub(from).Minutes())
	hours := minutes / 60
	minutes = minutes % 60

	parts := make([]string, 0, 2)
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", hours, res.HourWord(hours)))
	}
	if minutes > 0 || hours == 0 {
		parts = append(parts, fmt.Sprintf("%d %s", minutes, res.MinuteWord(minutes)))
	}
	return strings.Join(parts, " ")
}

// SortableDate renders a timestamp as an ISO date string used as a stable
// grouping key ("2006-01-02"). Unparseable input yields "".
func SortableDate(value string) string {
	t, ok := ParseTime(value)
	if !ok {
		return ""
	}
	return t.Format("2006-01-02")
}
