package tribunal

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"listpub/internal/artefact"
	"listpub/internal/language"
	"listpub/internal/listtype"
)

// weeklyPayload holds sittings on two dates, supplied out of order and
// with one date duplicated.
const weeklyPayload = `{
	"document": {"publicationDate": "2026-02-13T18:00:00Z"},
	"venue": {"venueName": "Employment Tribunal"},
	"sittings": [
		{"sittingStart": "2026-02-17T10:00:00Z", "caseNumber": "1800003/2026", "caseName": "C v E Ltd", "hearingType": "Preliminary"},
		{"sittingStart": "2026-02-16T10:00:00Z", "caseNumber": "1800001/2026", "caseName": "A v B Ltd", "hearingType": "Final", "hearingChannel": "Video"},
		{"sittingStart": "2026-02-16T14:00:00Z", "caseNumber": "1800002/2026", "caseName": "B v D Ltd", "hearingType": "Final"}
	]
}`

func tribunalMetadata(lt listtype.ListType) artefact.Metadata {
	return artefact.Metadata{
		ID:          uuid.New(),
		ListType:    lt,
		Language:    artefact.LanguageEnglish,
		ContentDate: time.Date(2026, time.February, 16, 0, 0, 0, 0, time.UTC),
	}
}

func TestWeeklySplitsByDate(t *testing.T) {
	converter := NewWeeklyList(EmploymentFortnightly)
	ctx, err := converter.DocumentContext([]byte(weeklyPayload), tribunalMetadata(listtype.ETFortnightlyPressList), language.English())
	if err != nil {
		t.Fatalf("DocumentContext: %v", err)
	}
	if len(ctx.Sections) != 2 {
		t.Fatalf("sections = %d, want one per unique date", len(ctx.Sections))
	}
	if ctx.Sections[0].Heading != "16 February 2026" || ctx.Sections[1].Heading != "17 February 2026" {
		t.Errorf("date sections out of order: %q, %q", ctx.Sections[0].Heading, ctx.Sections[1].Heading)
	}
	if got := len(ctx.Sections[0].Table.Rows); got != 2 {
		t.Errorf("16 Feb rows = %d, want 2", got)
	}
	if got := ctx.Sections[0].Table.Rows[0][1]; got != "1800001/2026" {
		t.Errorf("first 16 Feb case = %q", got)
	}
}

func TestWeeklySummaryKeyedByDisplayDate(t *testing.T) {
	converter := NewWeeklyList(CareStandardsWeekly)
	groups, err := converter.SummaryRows([]byte(weeklyPayload))
	if err != nil {
		t.Fatalf("SummaryRows: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("groups = %d, want 2", len(groups))
	}
	if groups[0].Key != "16 February 2026" || groups[1].Key != "17 February 2026" {
		t.Errorf("group keys = %q, %q", groups[0].Key, groups[1].Key)
	}
	if len(groups[0].Rows) != 2 || len(groups[1].Rows) != 1 {
		t.Errorf("row counts = %d, %d", len(groups[0].Rows), len(groups[1].Rows))
	}
}

func TestWeeklyTableDataLeadsWithDate(t *testing.T) {
	converter := NewWeeklyList(GeneralRegulatoryWeekly)
	data, err := converter.TableData([]byte(weeklyPayload))
	if err != nil {
		t.Fatalf("TableData: %v", err)
	}
	if data.Headers[0] != "Hearing date" {
		t.Errorf("first header = %q", data.Headers[0])
	}
	if len(data.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(data.Rows))
	}
	if data.Rows[0][0] != "16 February 2026" || data.Rows[2][0] != "17 February 2026" {
		t.Errorf("date ordering in export = %q ... %q", data.Rows[0][0], data.Rows[2][0])
	}
}

func TestUpperDailySingleSection(t *testing.T) {
	raw := `{
		"venue": {"venueName": "Upper Tribunal (Lands Chamber)"},
		"sittings": [
			{"sittingStart": "2026-02-16T10:30:00Z", "caseNumber": "LC-2026-001", "caseName": "X v Y",
			 "judiciary": [{"johTitle": "Judge", "johKnownAs": "Alpha"}], "additionalInformation": "Hybrid"}
		]
	}`
	converter := NewUpperDailyList(UpperLands)
	ctx, err := converter.DocumentContext([]byte(raw), tribunalMetadata(listtype.UTLCDailyHearingList), language.English())
	if err != nil {
		t.Fatalf("DocumentContext: %v", err)
	}
	if len(ctx.Sections) != 1 || ctx.Sections[0].Heading != "" {
		t.Fatalf("expected a single unheaded section, got %d", len(ctx.Sections))
	}
	row := ctx.Sections[0].Table.Rows[0]
	if row[0] != "10:30am" || row[3] != "Judge Alpha" || row[7] != "Hybrid" {
		t.Errorf("upper row = %v", row)
	}
}
