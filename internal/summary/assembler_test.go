package summary

import (
	"strings"
	"testing"

	"listpub/internal/rows"
)

func row(pairs ...string) rows.Row {
	var r rows.Row
	for i := 0; i+1 < len(pairs); i += 2 {
		r.Add(pairs[i], pairs[i+1])
	}
	return r
}

func TestAssembleUngroupedRows(t *testing.T) {
	groups := []rows.Group{{
		Rows: []rows.Row{
			row("Case reference", "T2026001", "Hearing type", "Trial"),
			row("Case reference", "T2026002"),
		},
	}}

	got := Assemble(groups)
	want := strings.Join([]string{
		"•Case reference - T2026001",
		"•Hearing type - Trial",
		"---",
		"•Case reference - T2026002",
	}, "\n")
	if got != want {
		t.Errorf("Assemble() = %q, want %q", got, want)
	}
}

func TestAssembleKeyedGroups(t *testing.T) {
	groups := []rows.Group{
		{Key: "Courtroom 1", Rows: []rows.Row{
			row("Case reference", "T2026001"),
			row("Case reference", "T2026002"),
		}},
		{Key: "Courtroom 2", Rows: []rows.Row{
			row("Case reference", "T2026003"),
		}},
	}

	got := Assemble(groups)
	want := strings.Join([]string{
		"## Courtroom 1",
		"•Case reference - T2026001",
		"•Case reference - T2026002",
		"---",
		"## Courtroom 2",
		"•Case reference - T2026003",
	}, "\n")
	if got != want {
		t.Errorf("Assemble() = %q, want %q", got, want)
	}
}

func TestAssembleNoTrailingSeparator(t *testing.T) {
	groups := []rows.Group{{Key: "Courtroom 1", Rows: []rows.Row{row("A", "1")}}}
	got := Assemble(groups)
	if strings.HasSuffix(got, "---") || strings.HasSuffix(got, "\n") {
		t.Errorf("Assemble() ends with separator or newline: %q", got)
	}
}

func TestAssembleSkipsEmptyGroups(t *testing.T) {
	groups := []rows.Group{
		{Key: "Empty"},
		{Key: "Courtroom 1", Rows: []rows.Row{row("A", "1")}},
	}
	got := Assemble(groups)
	if strings.Contains(got, "Empty") {
		t.Errorf("empty group rendered: %q", got)
	}
}

func TestAssembleBlankValueKept(t *testing.T) {
	// Absent source fields arrive as "" and still render their label.
	got := Assemble([]rows.Group{{Rows: []rows.Row{row("Prosecutor", "")}}})
	if got != "•Prosecutor - " {
		t.Errorf("Assemble() = %q", got)
	}
}

func TestAssembleEmptyInput(t *testing.T) {
	if got := Assemble(nil); got != "" {
		t.Errorf("Assemble(nil) = %q, want empty", got)
	}
}
