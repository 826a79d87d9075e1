package tribunal

import (
	"listpub/internal/artefact"
	"listpub/internal/language"
	"listpub/internal/lists"
	"listpub/internal/normalize"
	"listpub/internal/payload"
	"listpub/internal/rows"
)

// UpperKind selects the upper tribunal daily hearing list variant.
type UpperKind int

const (
	UpperIACStatutoryAppeals UpperKind = iota
	UpperIACJudicialReview
	UpperLands
	UpperTaxAndChancery
	UpperAdministrativeAppeals
)

// UpperDailyList converts the upper tribunal daily hearing lists. They use
// the flat sitting spine without the date split: one list covers one day.
type UpperDailyList struct {
	kind UpperKind
}

// NewUpperDailyList builds a converter for the given upper tribunal variant.
func NewUpperDailyList(kind UpperKind) *UpperDailyList {
	return &UpperDailyList{kind: kind}
}

var upperHeaders = []string{"Hearing time", "Case reference", "Case name", "Judge(s)", "Hearing type", "Venue", "Hearing channel", "Additional information"}

func upperCells(sitting payload.WeeklySitting) []string {
	return []string{
		normalize.FormatTime(sitting.Start),
		sitting.CaseNumber,
		sitting.CaseName,
		normalize.Judiciary(sitting.Judiciary),
		sitting.HearingType,
		sitting.Venue,
		sitting.Channel,
		sitting.AdditionalInfo,
	}
}

// DocumentContext renders a single section holding the day's sittings in
// traversal order.
func (c *UpperDailyList) DocumentContext(raw []byte, meta artefact.Metadata, res *language.Resources) (*lists.Context, error) {
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
			{Label: res.Label("list_for"), Value: normalize.FormatDateValue(meta.ContentDate, res)},
			{Label: res.Label("published"), Value: normalize.FormatDateTime(listing.Document.PublicationDate, res)},
		},
	}
	table := &lists.Table{Headers: upperHeaders}
	for _, sitting := range listing.Sittings {
		table.Rows = append(table.Rows, upperCells(sitting))
	}
	ctx.Sections = append(ctx.Sections, lists.Section{Table: table})
	return ctx, nil
}

// TableData flattens every sitting into one spreadsheet row.
func (c *UpperDailyList) TableData(raw []byte) (*lists.TableData, error) {
	listing, err := payload.DecodeWeekly(raw)
	if err != nil {
		return nil, err
	}
	data := &lists.TableData{
		SheetName: "Hearings",
		Headers:   upperHeaders,
	}
	for _, sitting := range listing.Sittings {
		data.Rows = append(data.Rows, upperCells(sitting))
	}
	return data, nil
}

// SummaryRows emits ungrouped rows, one per sitting.
func (c *UpperDailyList) SummaryRows(raw []byte) ([]rows.Group, error) {
	listing, err := payload.DecodeWeekly(raw)
	if err != nil {
		return nil, err
	}
	var all []rows.Row
	for _, sitting := range listing.Sittings {
		var row rows.Row
		row.Add("Case name", sitting.CaseName)
		row.Add("Case reference", sitting.CaseNumber)
		row.Add("Hearing type", sitting.HearingType)
		row.Add("Hearing time", normalize.FormatTime(sitting.Start))
		all = append(all, row)
	}
	return rows.Collect(all), nil
}
