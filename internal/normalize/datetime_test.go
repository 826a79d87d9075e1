package normalize

import (
	"testing"
	"time"

	"listpub/internal/language"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name  string
		value string
		res   *language.Resources
		want  string
	}{
		{"rfc3339", "2026-02-14T10:30:00Z", language.English(), "14 February 2026"},
		{"no zone", "2026-02-14T10:30:00", language.English(), "14 February 2026"},
		{"date only", "2026-12-01", language.English(), "1 December 2026"},
		{"welsh months", "2026-02-14T10:30:00Z", language.Welsh(), "14 Chwefror 2026"},
		{"blank", "", language.English(), ""},
		{"garbage", "not-a-date", language.English(), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDate(tt.value, tt.res); got != tt.want {
				t.Errorf("FormatDate(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestFormatDateValueZero(t *testing.T) {
	if got := FormatDateValue(time.Time{}, language.English()); got != "" {
		t.Errorf("FormatDateValue(zero) = %q, want empty", got)
	}
	when := time.Date(2026, time.February, 14, 0, 0, 0, 0, time.UTC)
	if got := FormatDateValue(when, language.English()); got != "14 February 2026" {
		t.Errorf("FormatDateValue() = %q", got)
	}
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"on the hour morning", "2026-02-14T10:00:00Z", "10am"},
		{"afternoon with minutes", "2026-02-14T14:30:00Z", "2:30pm"},
		{"midnight", "2026-02-14T00:00:00Z", "12am"},
		{"noon", "2026-02-14T12:00:00Z", "12pm"},
		{"single digit minutes", "2026-02-14T09:05:00Z", "9:05am"},
		{"blank", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTime(tt.value); got != tt.want {
				t.Errorf("FormatTime(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestFormatDateTime(t *testing.T) {
	got := FormatDateTime("2026-02-14T14:30:00Z", language.English())
	want := "14 February 2026 at 2:30pm"
	if got != want {
		t.Errorf("FormatDateTime() = %q, want %q", got, want)
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		res   *language.Resources
		want  string
	}{
		{"hour and minutes", "2026-02-14T10:00:00Z", "2026-02-14T11:30:00Z", language.English(), "1 hour 30 mins"},
		{"plural hours", "2026-02-14T09:00:00Z", "2026-02-14T12:00:00Z", language.English(), "3 hours"},
		{"minutes only", "2026-02-14T10:00:00Z", "2026-02-14T10:45:00Z", language.English(), "45 mins"},
		{"single minute", "2026-02-14T10:00:00Z", "2026-02-14T10:01:00Z", language.English(), "1 min"},
		{"zero length", "2026-02-14T10:00:00Z", "2026-02-14T10:00:00Z", language.English(), "0 mins"},
		{"welsh", "2026-02-14T10:00:00Z", "2026-02-14T11:30:00Z", language.Welsh(), "1 awr 30 munud"},
		{"inverted", "2026-02-14T11:00:00Z", "2026-02-14T10:00:00Z", language.English(), ""},
		{"missing end", "2026-02-14T10:00:00Z", "", language.English(), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Duration(tt.start, tt.end, tt.res); got != tt.want {
				t.Errorf("Duration(%q, %q) = %q, want %q", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestSortableDate(t *testing.T) {
	if got := SortableDate("2026-02-14T10:30:00Z"); got != "2026-02-14" {
		t.Errorf("SortableDate() = %q", got)
	}
	if got := SortableDate("junk"); got != "" {
		t.Errorf("SortableDate(junk) = %q, want empty", got)
	}
}
