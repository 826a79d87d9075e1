package language

import "testing"

func TestMonth(t *testing.T) {
	tests := []struct {
		res   *Resources
		month int
		want  string
	}{
		{English(), 1, "January"},
		{English(), 12, "December"},
		{Welsh(), 2, "Chwefror"},
		{Welsh(), 9, "Medi"},
		{English(), 0, ""},
		{English(), 13, ""},
	}
	for _, tt := range tests {
		if got := tt.res.Month(tt.month); got != tt.want {
			t.Errorf("Month(%d) = %q, want %q", tt.month, got, tt.want)
		}
	}
}

func TestDurationWords(t *testing.T) {
	if got := English().HourWord(1); got != "hour" {
		t.Errorf("HourWord(1) = %q", got)
	}
	if got := English().HourWord(3); got != "hours" {
		t.Errorf("HourWord(3) = %q", got)
	}
	if got := English().MinuteWord(1); got != "min" {
		t.Errorf("MinuteWord(1) = %q", got)
	}
	if got := Welsh().HourWord(2); got != "awr" {
		t.Errorf("welsh HourWord(2) = %q", got)
	}
	if got := Welsh().MinuteWord(30); got != "munud" {
		t.Errorf("welsh MinuteWord(30) = %q", got)
	}
}

func TestLabelFallsBackToEnglishThenKey(t *testing.T) {
	if got := Welsh().Label("to_be_allocated"); got != "I'w ddyrannu" {
		t.Errorf("welsh label = %q", got)
	}
	if got := Welsh().Label("nonexistent_key"); got != "nonexistent_key" {
		t.Errorf("unknown key = %q, want the key itself", got)
	}
	if got := English().Label("venue"); got != "Venue" {
		t.Errorf("english label = %q", got)
	}
}

func TestWelshPredicate(t *testing.T) {
	if English().Welsh() {
		t.Error("English() reported Welsh")
	}
	if !Welsh().Welsh() {
		t.Error("Welsh() not reported Welsh")
	}
}
