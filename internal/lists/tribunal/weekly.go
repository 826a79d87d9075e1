package tribunal

import (
	"sort"

	"listpub/internal/artefact"
	"listpub/internal/language"
	"listpub/internal/lists"
	"listpub/internal/normalize"
	"listpub/internal/payload"
	"listpub/internal/rows"
)

// WeeklyKind selects the weekly or fortnightly hearing list variant.
type WeeklyKind int

const (
	EmploymentFortnightly WeeklyKind = iota
	CareStandardsWeekly
	PrimaryHealthWeekly
	GeneralRegulatoryWeekly
	WarPensionsWeekly
)

// WeeklyList converts the weekly and fortnightly tribunal lists. A single
// payload splits into one sub-list per unique sitting-start date, with the
// dates de-duplicated and sorted ascending.
type WeeklyList struct {
	kind WeeklyKind
}

// NewWeeklyList builds a converter for the given weekly variant.
func NewWeeklyList(kind WeeklyKind) *WeeklyList {
	return &WeeklyList{kind: kind}
}

var weeklyHeaders = []string{"Hearing time", "Case number", "Case name", "Hearing type", "Venue", "Hearing channel", "Duration"}

// splitDates returns the unique sitting-start dates in ascending order as
// ISO date keys.
func splitDates(sittings []payload.WeeklySitting) []string {
	seen := make(map[string]bool)
	var dates []string
	for _, sitting := range sittings {
		key := normalize.SortableDate(sitting.Start)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		dates = append(dates, key)
	}
	sort.Strings(dates)
	return dates
}

func weeklyCells(sitting payload.WeeklySitting) []string {
	return []string{
		normalize.FormatTime(sitting.Start),
		sitting.CaseNumber,
		sitting.CaseName,
		sitting.HearingType,
		sitting.Venue,
		sitting.Channel,
		sitting.Duration,
	}
}

// DocumentContext renders one dated section per unique sitting date, each
// holding that date's sittings in traversal order.
func (c *WeeklyList) DocumentContext(raw []byte, meta artefact.Metadata, res *language.Resources) (*lists.Context, error) {
	listing, err := payload.DecodeWeekly(raw)
	if err != nil {
		return nil, err
	}
	ctx := &lists.Context{
		ListType: meta.ListType,
		Title:    meta.ListType.FriendlyName(),
		Language: meta.Language,
		Fields: []rows.Field{
			{Label: res.Label("venue"), Value: listing.Venue.Name},
			{Label: res.Label("published"), Value: normalize.FormatDateTime(listing.Document.PublicationDate, res)},
		},
	}
	for _, date := range splitDates(listing.Sittings) {
		section := lists.Section{Heading: normalize.FormatDate(date, res)}
		table := &lists.Table{Headers: weeklyHeaders}
		for _, sitting := range listing.Sittings {
			if normalize.SortableDate(sitting.Start) != date {
				continue
			}
			table.Rows = append(table.Rows, weeklyCells(sitting))
		}
		section.Table = table
		ctx.Sections = append(ctx.Sections, section)
	}
	return ctx, nil
}

// TableData flattens every sitting into one spreadsheet row, ordered by the
// same date split as the document.
func (c *WeeklyList) TableData(raw []byte) (*lists.TableData, error) {
	listing, err := payload.DecodeWeekly(raw)
	if err != nil {
		return nil, err
	}
	res := language.English()
	data := &lists.TableData{
		SheetName: "Hearings",
		Headers:   append([]string{"Hearing date"}, weeklyHeaders...),
	}
	for _, date := range splitDates(listing.Sittings) {
		for _, sitting := range listing.Sittings {
			if normalize.SortableDate(sitting.Start) != date {
				continue
			}
			data.Rows = append(data.Rows, append([]string{normalize.FormatDate(date, res)}, weeklyCells(sitting)...))
		}
	}
	return data, nil
}

// SummaryRows groups sittings by hearing date, ascending, using the display
// date as the section key.
func (c *WeeklyList) SummaryRows(raw []byte) ([]rows.Group, error) {
	listing, err := payload.DecodeWeekly(raw)
	if err != nil {
		return nil, err
	}
	res := language.English()
	var all []rows.Row
	for _, sitting := range listing.Sittings {
		row := rows.Row{GroupKey: normalize.SortableDate(sitting.Start)}
		row.Add("Case name", sitting.CaseName)
		row.Add("Case number", sitting.CaseNumber)
		row.Add("Hearing type", sitting.HearingType)
		row.Add("Hearing time", normalize.FormatTime(sitting.Start))
		all = append(all, row)
	}
	groups := rows.Collect(all)
	rows.SortGroupsByKey(groups)
	for i := range groups {
		groups[i].Key = normalize.FormatDate(groups[i].Key, res)
	}
	return groups, nil
}
