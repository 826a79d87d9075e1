package crime

import (
	"listpub/internal/artefact"
	"listpub/internal/language"
	"listpub/internal/lists"
	"listpub/internal/normalize"
	"listpub/internal/payload"
	"listpub/internal/rows"
)

// MagistratesPublicList converts the magistrates public list: the same
// room-ordered walk as the crown lists with a reduced public field set.
type MagistratesPublicList struct{}

// NewMagistratesPublicList builds the public list converter.
func NewMagistratesPublicList() *MagistratesPublicList {
	return &MagistratesPublicList{}
}

var magistratesPublicHeaders = []string{"Sitting at", "Case reference", "Defendant name(s)", "Hearing type", "Prosecuting authority", "Duration"}

// DocumentContext renders one section per allocated room, unallocated last.
func (c *MagistratesPublicList) DocumentContext(raw []byte, meta artefact.Metadata, res *language.Resources) (*lists.Context, error) {
	listing, err := payload.Decode(raw)
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
	for _, block := range splitRooms(listing, res) {
		section := lists.Section{Heading: block.heading}
		table := &lists.Table{Headers: magistratesPublicHeaders}
		for _, session := range block.room.Sessions {
			for _, sitting := range session.Sittings {
				for _, hearing := range sitting.Hearings {
					for _, kase := range hearing.Cases {
						table.Rows = append(table.Rows, []string{
							normalize.FormatTime(sitting.Start),
							caseRef(kase),
							defendants(kase),
							hearing.Type,
							prosecutor(kase),
							normalize.Duration(sitting.Start, sitting.End, res),
						})
					}
				}
			}
		}
		section.Table = table
		ctx.Sections = append(ctx.Sections, section)
	}
	return ctx, nil
}

// TableData flattens every case into one spreadsheet row.
func (c *MagistratesPublicList) TableData(raw []byte) (*lists.TableData, error) {
	listing, err := payload.Decode(raw)
	if err != nil {
		return nil, err
	}
	res := language.English()
	data := &lists.TableData{
		SheetName: "Hearings",
		Headers:   []string{"Court house", "Court room", "Sitting time", "Case reference", "Defendant name(s)", "Hearing type", "Prosecuting authority"},
	}
	for _, block := range splitRooms(listing, res) {
		for _, session := range block.room.Sessions {
			for _, sitting := range session.Sittings {
				for _, hearing := range sitting.Hearings {
					for _, kase := range hearing.Cases {
						data.Rows = append(data.Rows, []string{
							block.courtHouse.Name,
							normalize.RoomLabel(block.room.Name, res),
							normalize.FormatTime(sitting.Start),
							caseRef(kase),
							defendants(kase),
							hearing.Type,
							prosecutor(kase),
						})
					}
				}
			}
		}
	}
	return data, nil
}

// SummaryRows groups cases by room heading, unallocated last.
func (c *MagistratesPublicList) SummaryRows(raw []byte) ([]rows.Group, error) {
	listing, err := payload.Decode(raw)
	if err != nil {
		return nil, err
	}
	res := language.English()
	var all []rows.Row
	for _, block := range splitRooms(listing, res) {
		for _, session := range block.room.Sessions {
			for _, sitting := range session.Sittings {
				for _, hearing := range sitting.Hearings {
					for _, kase := range hearing.Cases {
						row := rows.Row{GroupKey: block.heading}
						row.Add("Defendant(s)", defendants(kase))
						row.Add("Case reference", caseRef(kase))
						row.Add("Hearing type", hearing.Type)
						row.Add("Sitting at", normalize.FormatTime(sitting.Start))
						all = append(all, row)
					}
				}
			}
		}
	}
	groups := rows.Collect(all)
	rows.SortGroups(groups, nil)
	return groups, nil
}

// foldedCase is one logical standard-list case: a defendant heading plus
// every sitting appearance folded under it.
type foldedCase struct {
	heading  string
	sittings []foldedSitting
}

// foldedSitting is one appearance of a defendant within the day.
type foldedSitting struct {
	time        string
	caseRef     string
	hearingType string
	offences    string
	prosecutor  string
	convicted   string
	adjourned   string
}

// MagistratesStandardList converts the magistrates standard list, which
// pages by defendant across the day's sittings. Case rows sharing the same
// fully formatted defendant heading fold into one logical case; the
// same-defendant test is exact string equality of the heading, annotations
// included.
type MagistratesStandardList struct{}

// NewMagistratesStandardList builds the standard list converter.
func NewMagistratesStandardList() *MagistratesStandardList {
	return &MagistratesStandardList{}
}

func (c *MagistratesStandardList) fold(listing *payload.Listing, res *language.Resources) []foldedCase {
	var order []foldedCase
	index := make(map[string]int)
	for _, block := range splitRooms(listing, res) {
		for _, session := range block.room.Sessions {
			for _, sitting := range session.Sittings {
				for _, hearing := range sitting.Hearings {
					for _, kase := range hearing.Cases {
						for _, party := range kase.Parties {
							if normalize.ClassifyRole(party.Role) != normalize.RoleDefendant || party.Individual == nil {
								continue
							}
							heading := defendantHeading(party.Individual)
							if heading == "" {
								continue
							}
							charged := make([]payload.Offence, 0, len(kase.Offences)+len(party.Offences))
							charged = append(charged, kase.Offences...)
							charged = append(charged, party.Offences...)
							appearance := foldedSitting{
								time:        normalize.FormatTime(sitting.Start),
								caseRef:     caseRef(kase),
								hearingType: hearing.Type,
								offences:    offenceTitles(charged),
								prosecutor:  prosecutor(kase),
								convicted:   normalize.FormatDate(kase.ConvictionDate, res),
								adjourned:   normalize.FormatDate(kase.AdjournedDate, res),
							}
							pos, ok := index[heading]
							if !ok {
								pos = len(order)
								index[heading] = pos
								order = append(order, foldedCase{heading: heading})
							}
							order[pos].sittings = append(order[pos].sittings, appearance)
						}
					}
				}
			}
		}
	}
	return order
}

var magistratesStandardHeaders = []string{"Sitting at", "Case reference", "Hearing type", "Offence", "Prosecuting authority", "Convicted on", "Adjourned from"}

// DocumentContext renders one section per folded defendant.
func (c *MagistratesStandardList) DocumentContext(raw []byte, meta artefact.Metadata, res *language.Resources) (*lists.Context, error) {
	listing, err := payload.Decode(raw)
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
	for _, folded := range c.fold(listing, res) {
		section := lists.Section{Heading: folded.heading}
		table := &lists.Table{Headers: magistratesStandardHeaders}
		for _, appearance := range folded.sittings {
			table.Rows = append(table.Rows, []string{
				appearance.time,
				appearance.caseRef,
				appearance.hearingType,
				appearance.offences,
				appearance.prosecutor,
				appearance.convicted,
				appearance.adjourned,
			})
		}
		section.Table = table
		ctx.Sections = append(ctx.Sections, section)
	}
	return ctx, nil
}

// TableData emits one spreadsheet row per folded sitting appearance.
func (c *MagistratesStandardList) TableData(raw []byte) (*lists.TableData, error) {
	listing, err := payload.Decode(raw)
	if err != nil {
		return nil, err
	}
	res := language.English()
	data := &lists.TableData{
		SheetName: "Defendants",
		Headers:   []string{"Defendant", "Sitting time", "Case reference", "Hearing type", "Offence", "Prosecuting authority"},
	}
	for _, folded := range c.fold(listing, res) {
		for _, appearance := range folded.sittings {
			data.Rows = append(data.Rows, []string{
				folded.heading,
				appearance.time,
				appearance.caseRef,
				appearance.hearingType,
				appearance.offences,
				appearance.prosecutor,
			})
		}
	}
	return data, nil
}

// SummaryRows groups sitting appearances under their defendant heading.
func (c *MagistratesStandardList) SummaryRows(raw []byte) ([]rows.Group, error) {
	listing, err := payload.Decode(raw)
	if err != nil {
		return nil, err
	}
	res := language.English()
	var all []rows.Row
	for _, folded := range c.fold(listing, res) {
		for _, appearance := range folded.sittings {
			row := rows.Row{GroupKey: folded.heading}
			row.Add("Sitting at", appearance.time)
			row.Add("Case reference", appearance.caseRef)
			row.Add("Hearing type", appearance.hearingType)
			row.Add("Offence", appearance.offences)
			all = append(all, row)
		}
	}
	return rows.Collect(all), nil
}
