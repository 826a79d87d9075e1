package normalize

import (
	"testing"

	"listpub/internal/language"
	"listpub/internal/payload"
)

func TestIsUnallocatedRoom(t *testing.T) {
	tests := []struct {
		name string
		room string
		want bool
	}{
		{"exact phrase", "to be allocated", true},
		{"mixed case", "To Be Allocated", true},
		{"decorated", "Court 3 - to be allocated", true},
		{"real room", "Courtroom 1", false},
		{"blank", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUnallocatedRoom(tt.room); got != tt.want {
				t.Errorf("IsUnallocatedRoom(%q) = %v, want %v", tt.room, got, tt.want)
			}
		})
	}
}

func TestRoomLabel(t *testing.T) {
	if got := RoomLabel("Courtroom 1", language.English()); got != "Courtroom 1" {
		t.Errorf("RoomLabel(real) = %q", got)
	}
	if got := RoomLabel("TO BE ALLOCATED", language.English()); got != "To be allocated" {
		t.Errorf("RoomLabel(unallocated) = %q", got)
	}
	if got := RoomLabel("to be allocated", language.Welsh()); got != "I'w ddyrannu" {
		t.Errorf("RoomLabel(unallocated, welsh) = %q", got)
	}
}

func TestCourtHouseName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"upper case source", "MANCHESTER CROWN COURT", "Manchester Crown Court"},
		{"already cased", "Leeds Combined Court", "Leeds Combined Court"},
		{"blank", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CourtHouseName(tt.in, language.English()); got != tt.want {
				t.Errorf("CourtHouseName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestJudiciary(t *testing.T) {
	tests := []struct {
		name    string
		members []payload.Judiciary
		want    string
	}{
		{"empty", nil, ""},
		{
			"source order",
			[]payload.Judiciary{
				{Title: "Judge", KnownAs: "Alpha"},
				{Title: "Judge", KnownAs: "Beta"},
			},
			"Judge Alpha, Judge Beta",
		},
		{
			"presiding first",
			[]payload.Judiciary{
				{Title: "Judge", KnownAs: "Alpha"},
				{Title: "Judge", KnownAs: "Beta", IsPresiding: true},
			},
			"Judge Beta, Judge Alpha",
		},
		{
			"blank names skipped",
			[]payload.Judiciary{
				{},
				{KnownAs: "Gamma"},
			},
			"Gamma",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Judiciary(tt.members); got != tt.want {
				t.Errorf("Judiciary() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHearingChannel(t *testing.T) {
	if got := HearingChannel([]string{"In person"}, []string{"Video"}); got != "In person" {
		t.Errorf("sitting channel should win, got %q", got)
	}
	if got := HearingChannel(nil, []string{"Video", "Telephone"}); got != "Video, Telephone" {
		t.Errorf("session fallback = %q", got)
	}
	if got := HearingChannel(nil, nil); got != "" {
		t.Errorf("no channels = %q, want empty", got)
	}
}
