package crime

import (
	"strings"

	"listpub/internal/artefact"
	"listpub/internal/language"
	"listpub/internal/lists"
	"listpub/internal/normalize"
	"listpub/internal/payload"
	"listpub/internal/rows"
)

// PDDACrownDailyList converts the PDDA-sourced crown daily feed, whose
// spine flattens hearings directly under each room. The unallocated-room
// rule applies here the same as on the common spine.
type PDDACrownDailyList struct{}

// NewPDDACrownDailyList builds the PDDA crown converter.
func NewPDDACrownDailyList() *PDDACrownDailyList {
	return &PDDACrownDailyList{}
}

type pddaBlock struct {
	heading     string
	courtHouse  string
	room        payload.PDDARoom
}

func splitPDDARooms(listing *payload.PDDAListing, res *language.Resources) []pddaBlock {
	var allocated, unallocated []pddaBlock
	for _, house := range listing.CourtHouses {
		houseName := normalize.CourtHouseName(house.Name, res)
		for _, room := range house.Rooms {
			block := pddaBlock{courtHouse: house.Name, room: room}
			if normalize.IsUnallocatedRoom(room.Name) {
				block.heading = joinHeading(houseName, res.Label("to_be_allocated"))
				unallocated = append(unallocated, block)
				continue
			}
			block.heading = joinHeading(houseName, strings.TrimSpace(room.Name))
			allocated = append(allocated, block)
		}
	}
	return append(allocated, unallocated...)
}

var pddaHeaders = []string{"Sitting at", "Case reference", "Defendant name(s)", "Hearing type", "Prosecuting authority", "Before", "Hearing note"}

// DocumentContext renders one section per room with the flattened hearings.
func (c *PDDACrownDailyList) DocumentContext(raw []byte, meta artefact.Metadata, res *language.Resources) (*lists.Context, error) {
	listing, err := payload.DecodePDDA(raw)
	if err != nil {
		return nil, err
	}
	ctx := &lists.Context{
		ListType: meta.ListType,
		Title:    meta.ListType.FriendlyName(),
		Language: meta.Language,
		Fields: []rows.Field{
			{Label: res.Label("list_for"), Value: normalize.FormatDate(listing.ListDate, res)},
			{Label: res.Label("published"), Value: normalize.FormatDateTime(listing.PublicationDate, res)},
		},
	}
	for _, block := range splitPDDARooms(listing, res) {
		section := lists.Section{Heading: block.heading}
		table := &lists.Table{Headers: pddaHeaders}
		for _, hearing := range block.room.Hearings {
			table.Rows = append(table.Rows, []string{
				normalize.FormatTime(hearing.Time),
				hearing.CaseNumber,
				hearing.DefendantName,
				hearing.HearingType,
				hearing.Prosecutor,
				hearing.JudgeName,
				hearing.HearingNote,
			})
		}
		section.Table = table
		ctx.Sections = append(ctx.Sections, section)
	}
	return ctx, nil
}

// TableData flattens every hearing into one spreadsheet row.
func (c *PDDACrownDailyList) TableData(raw []byte) (*lists.TableData, error) {
	listing, err := payload.DecodePDDA(raw)
	if err != nil {
		return nil, err
	}
	res := language.English()
	data := &lists.TableData{
		SheetName: "Hearings",
		Headers:   []string{"Court house", "Court room", "Sitting time", "Case reference", "Defendant name(s)", "Hearing type", "Prosecuting authority", "Reporting restriction"},
	}
	for _, block := range splitPDDARooms(listing, res) {
		for _, hearing := range block.room.Hearings {
			data.Rows = append(data.Rows, []string{
				block.courtHouse,
				normalize.RoomLabel(block.room.Name, res),
				normalize.FormatTime(hearing.Time),
				hearing.CaseNumber,
				hearing.DefendantName,
				hearing.HearingType,
				hearing.Prosecutor,
				hearing.ReportingRestriction,
			})
		}
	}
	return data, nil
}

// SummaryRows groups hearings by room heading, unallocated last.
func (c *PDDACrownDailyList) SummaryRows(raw []byte) ([]rows.Group, error) {
	listing, err := payload.DecodePDDA(raw)
	if err != nil {
		return nil, err
	}
	res := language.English()
	var all []rows.Row
	for _, block := range splitPDDARooms(listing, res) {
		for _, hearing := range block.room.Hearings {
			row := rows.Row{GroupKey: block.heading}
			row.Add("Defendant(s)", hearing.DefendantName)
			row.Add("Prosecuting authority", hearing.Prosecutor)
			row.Add("Case reference", hearing.CaseNumber)
			row.Add("Hearing type", hearing.HearingType)
			row.Add("Sitting at", normalize.FormatTime(hearing.Time))
			all = append(all, row)
		}
	}
	groups := rows.Collect(all)
	rows.SortGroups(groups, nil)
	return groups, nil
}
