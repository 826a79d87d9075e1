package crime

import (
	"listpub/internal/artefact"
	"listpub/internal/language"
	"listpub/internal/lists"
	"listpub/internal/normalize"
	"listpub/internal/payload"
	"listpub/internal/rows"
)

// CrownKind selects the crown list variant a converter renders.
type CrownKind int

const (
	CrownDaily CrownKind = iota
	CrownFirm
	CrownWarned
)

// CrownList converts the crown daily, firm and warned lists. All three walk
// the common spine; the warned list leads each row with the fixture date
// instead of the sitting time.
type CrownList struct {
	kind CrownKind
}

// NewCrownList builds a converter for the given crown variant.
func NewCrownList(kind CrownKind) *CrownList {
	return &CrownList{kind: kind}
}

// DocumentContext renders the annotated section tree for the document
// renderer: one section per allocated room in traversal order, then the
// synthetic unallocated section.
func (c *CrownList) DocumentContext(raw []byte, meta artefact.Metadata, res *language.Resources) (*lists.Context, error) {
	listing, err := payload.Decode(raw)
	if err != nil {
		return nil, err
	}

	ctx := &lists.Context{
		ListType: meta.ListType,
		Title:    meta.ListType.FriendlyName(),
		Language: meta.Language,
	}
	ctx.Fields = append(ctx.Fields,
		rows.Field{Label: res.Label("venue"), Value: listing.Venue.Name},
		rows.Field{Label: res.Label("list_for"), Value: normalize.FormatDateValue(meta.ContentDate, res)},
		rows.Field{Label: res.Label("published"), Value: normalize.FormatDateTime(listing.Document.PublicationDate, res)},
	)

	for _, block := range splitRooms(listing, res) {
		section := lists.Section{Heading: block.heading}
		table := &lists.Table{Headers: c.headers()}
		for _, session := range block.room.Sessions {
			if before := normalize.Judiciary(session.Judiciary); before != "" {
				section.Lines = append(section.Lines, res.Label("before")+" "+before)
			}
			for _, sitting := range session.Sittings {
				for _, hearing := range sitting.Hearings {
					for _, kase := range hearing.Cases {
						table.Rows = append(table.Rows, c.caseCells(session, sitting, hearing, kase, res))
					}
				}
			}
		}
		section.Table = table
		ctx.Sections = append(ctx.Sections, section)
	}
	return ctx, nil
}

func (c *CrownList) headers() []string {
	if c.kind == CrownWarned {
		return []string{"Fixed for", "Case reference", "Defendant name(s)", "Hearing type", "Prosecuting authority", "Linked cases", "Listing notes"}
	}
	return []string{"Sitting at", "Case reference", "Defendant name(s)", "Hearing type", "Duration", "Prosecuting authority", "Reporting restrictions", "Listing notes"}
}

func (c *CrownList) caseCells(session payload.Session, sitting payload.Sitting, hearing payload.Hearing, kase payload.Case, res *language.Resources) []string {
	if c.kind == CrownWarned {
		return []string{
			normalize.FormatDate(sitting.Start, res),
			caseRef(kase),
			defendants(kase),
			hearing.Type,
			prosecutor(kase),
			linkedCases(kase),
			kase.ListingNotes,
		}
	}
	return []string{
		normalize.FormatTime(sitting.Start),
		caseRef(kase),
		defendants(kase),
		hearing.Type,
		normalize.Duration(sitting.Start, sitting.End, res),
		prosecutor(kase),
		normalize.ReportingRestrictions(kase.ReportingRestrictions),
		kase.ListingNotes,
	}
}

// TableData flattens every case into one spreadsheet row.
func (c *CrownList) TableData(raw []byte) (*lists.TableData, error) {
	listing, err := payload.Decode(raw)
	if err != nil {
		return nil, err
	}
	res := language.English()
	data := &lists.TableData{
		SheetName: "Hearings",
		Headers: []string{
			"Court house", "Court room", "Sitting date", "Sitting time",
			"Case reference", "Defendant name(s)", "Hearing type",
			"Prosecuting authority", "Duration", "Reporting restrictions",
		},
	}
	for _, block := range splitRooms(listing, res) {
		for _, session := range block.room.Sessions {
			for _, sitting := range session.Sittings {
				for _, hearing := range sitting.Hearings {
					for _, kase := range hearing.Cases {
						data.Rows = append(data.Rows, []string{
							block.courtHouse.Name,
							normalize.RoomLabel(block.room.Name, res),
							normalize.FormatDate(sitting.Start, res),
							normalize.FormatTime(sitting.Start),
							caseRef(kase),
							defendants(kase),
							hearing.Type,
							prosecutor(kase),
							normalize.Duration(sitting.Start, sitting.End, res),
							normalize.ReportingRestrictions(kase.ReportingRestrictions),
						})
					}
				}
			}
		}
	}
	return data, nil
}

// SummaryRows groups cases by room heading, unallocated rooms last.
func (c *CrownList) SummaryRows(raw []byte) ([]rows.Group, error) {
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
						row.Add("Prosecuting authority", prosecutor(kase))
						row.Add("Case reference", caseRef(kase))
						row.Add("Hearing type", hearing.Type)
						if c.kind == CrownWarned {
							row.Add("Fixed for", normalize.FormatDate(sitting.Start, res))
						} else {
							row.Add("Sitting at", normalize.FormatTime(sitting.Start))
						}
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
