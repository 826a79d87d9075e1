// Package language provides the bilingual display resources used when
// rendering documents: month names, duration phrasing, and shared labels.
//
// English is the primary publication language; Welsh resources are used for
// the secondary-language document of Welsh-flagged list types. All lookups
// fall back to English so a missing Welsh label never produces a blank.
package language

import (
	xtext "golang.org/x/text/language"
)

// Resources holds the display vocabulary for one publication language.
type Resources struct {
	tag    xtext.Tag
	months [12]string
	hour   string
	hours  string
	minute string
	minutes string
	labels map[string]string
}

var english = &Resources{
	tag: xtext.English,
	months: [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	hour:    "hour",
	hours:   "hours",
	minute:  "min",
	minutes: "mins",
	labels: map[string]string{
		"list_for":        "List for",
		"last_updated":    "Last updated",
		"published":       "Published",
		"court_room":      "Courtroom",
		"to_be_allocated": "To be allocated",
		"before":          "Before",
		"venue":           "Venue",
		"hearing_channel": "Hearing channel",
	},
}

var welsh = &Resources{
	tag: xtext.MustParse("cy"),
	months: [12]string{
		"Ionawr", "Chwefror", "Mawrth", "Ebrill", "Mai", "Mehefin",
		"Gorffennaf", "Awst", "Medi", "Hydref", "Tachwedd", "Rhagfyr",
	},
	hour:    "awr",
	hours:   "awr",
	minute:  "munud",
	minutes: "munud",
	labels: map[string]string{
		"list_for":        "Rhestr ar gyfer",
		"last_updated":    "Diweddarwyd diwethaf",
		"published":       "Cyhoeddwyd",
		"court_room":      "Ystafell y llys",
		"to_be_allocated": "I'w ddyrannu",
		"before":          "Gerbron",
		"venue":           "Lleoliad",
		"hearing_channel": "Sianel y gwrandawiad",
	},
}

// English returns the primary-language resource set.
func English() *Resources { return english }

// Welsh returns the secondary-language resource set.
func Welsh() *Resources { return welsh }

// Tag returns the BCP 47 tag for the resource language.
func (r *Resources) Tag() xtext.Tag { return r.tag }

// Welsh reports whether this is the Welsh resource set.
func (r *Resources) Welsh() bool { return r == welsh }

// Month returns the display name for a 1-based month number. Out-of-range
// values return an empty string.
func (r *Resources) Month(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return r.months[month-1]
}

// HourWord returns the duration word for the given number of hours.
func (r *Resources) HourWord(n int) string {
	if n == 1 {
		return r.hour
	}
	return r.hours
}

// MinuteWord returns the duration word for the given number of minutes.
func (r *Resources) MinuteWord(n int) string {
	if n == 1 {
		return r.minute
	}
	return r.minutes
}

// Label resolves a shared display label by key, falling back to the English
// vocabulary and finally to the key itself.
func (r *Resources) Label(key string) string {
	if v, ok := r.labels[key]; ok {
		return v
	}
	if v, ok := english.labels[key]; ok {
		return v
	}
	return key
}
