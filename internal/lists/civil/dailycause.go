// Package civil implements the daily cause list converters for the civil,
// family, mixed civil-and-family and Court of Protection jurisdictions.
// All four walk the common spine room by room; the variants differ only in
// the projected columns and in the COP name-suppression rule, where a
// masked party name stands in for the real case details.
package civil

import (
	"strings"

	"listpub/internal/artefact"
	"listpub/internal/language"
	"listpub/internal/lists"
	"listpub/internal/normalize"
	"listpub/internal/payload"
	"listpub/internal/rows"
)

// Kind selects the daily cause list variant.
type Kind int

const (
	Civil Kind = iota
	Family
	Mixed
	COP
)

// DailyCauseList converts one daily cause list variant.
type DailyCauseList struct {
	kind Kind
}

// NewDailyCauseList builds a converter for the given variant.
func NewDailyCauseList(kind Kind) *DailyCauseList {
	return &DailyCauseList{kind: kind}
}

func (c *DailyCauseList) headers() []string {
	switch c.kind {
	case COP:
		return []string{"Time", "Case reference", "Case details", "Hearing type", "Hearing channel", "Duration", "Reporting restrictions"}
	case Civil:
		return []string{"Time", "Case reference", "Case name", "Case type", "Hearing type", "Hearing channel", "Duration"}
	default:
		return []string{"Time", "Case reference", "Case name", "Applicant", "Respondent", "Hearing type", "Hearing channel", "Duration", "Reporting restrictions"}
	}
}

func (c *DailyCauseList) caseCells(session payload.Session, sitting payload.Sitting, hearing payload.Hearing, kase payload.Case, res *language.Resources) []string {
	channel := normalize.HearingChannel(sitting.Channel, session.Channel)
	duration := normalize.Duration(sitting.Start, sitting.End, res)
	switch c.kind {
	case COP:
		return []string{
			normalize.FormatTime(sitting.Start),
			kase.Number,
			copCaseDetails(kase),
			hearing.Type,
			channel,
			duration,
			normalize.ReportingRestrictions(kase.ReportingRestrictions),
		}
	case Civil:
		return []string{
			normalize.FormatTime(sitting.Start),
			kase.Number,
			kase.Name,
			kase.Type,
			hearing.Type,
			channel,
			duration,
		}
	default:
		return []string{
			normalize.FormatTime(sitting.Start),
			kase.Number,
			kase.Name,
			partiesByRole(kase, normalize.RoleApplicant, normalize.RoleClaimant),
			partiesByRole(kase, normalize.RoleRespondent),
			hearing.Type,
			channel,
			duration,
			normalize.ReportingRestrictions(kase.ReportingRestrictions),
		}
	}
}

// copCaseDetails substitutes the masked party name for the case name when
// one is supplied, keeping protected parties out of the published list.
func copCaseDetails(kase payload.Case) string {
	for _, party := range kase.Parties {
		if party.Individual != nil && strings.TrimSpace(party.Individual.MaskedName) != "" {
			return strings.TrimSpace(party.Individual.MaskedName)
		}
	}
	return kase.Name
}

func partiesByRole(kase payload.Case, roles ...normalize.Role) string {
	wanted := make(map[normalize.Role]bool, len(roles))
	for _, role := range roles {
		wanted[role] = true
	}
	names := make([]string, 0, len(kase.Parties))
	for _, party := range kase.Parties {
		if !wanted[normalize.ClassifyRole(party.Role)] {
			continue
		}
		if name := normalize.PartyName(party); name != "" {
			names = append(names, name)
		}
	}
	return strings.Join(names, ", ")
}

// DocumentContext renders one section per court house and room, with the
// presiding judiciary named above each room's table.
func (c *DailyCauseList) DocumentContext(raw []byte, meta artefact.Metadata, res *language.Resources) (*lists.Context, error) {
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
	for _, list := range listing.CourtLists {
		house := list.CourtHouse
		houseName := normalize.CourtHouseName(house.Name, res)
		for _, room := range house.Rooms {
			section := lists.Section{Heading: headingFor(houseName, room.Name, res)}
			table := &lists.Table{Headers: c.headers()}
			for _, session := range room.Sessions {
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
	}
	return ctx, nil
}

func headingFor(houseName, roomName string, res *language.Resources) string {
	room := normalize.RoomLabel(roomName, res)
	switch {
	case houseName == "":
		return room
	case room == "":
		return houseName
	default:
		return houseName + ", " + room
	}
}

// TableData flattens every case into one spreadsheet row.
func (c *DailyCauseList) TableData(raw []byte) (*lists.TableData, error) {
	listing, err := payload.Decode(raw)
	if err != nil {
		return nil, err
	}
	res := language.English()
	data := &lists.TableData{
		SheetName: "Hearings",
		Headers:   append([]string{"Court house", "Court room"}, c.headers()...),
	}
	for _, list := range listing.CourtLists {
		house := list.CourtHouse
		for _, room := range house.Rooms {
			for _, session := range room.Sessions {
				for _, sitting := range session.Sittings {
					for _, hearing := range sitting.Hearings {
						for _, kase := range hearing.Cases {
							cells := append([]string{house.Name, normalize.RoomLabel(room.Name, res)}, c.caseCells(session, sitting, hearing, kase, res)...)
							data.Rows = append(data.Rows, cells)
						}
					}
				}
			}
		}
	}
	return data, nil
}

// SummaryRows emits ungrouped rows, one per case in traversal order.
func (c *DailyCauseList) SummaryRows(raw []byte) ([]rows.Group, error) {
	listing, err := payload.Decode(raw)
	if err != nil {
		return nil, err
	}
	res := language.English()
	var all []rows.Row
	for _, list := range listing.CourtLists {
		for _, room := range list.CourtHouse.Rooms {
			for _, session := range room.Sessions {
				for _, sitting := range session.Sittings {
					for _, hearing := range sitting.Hearings {
						for _, kase := range hearing.Cases {
							var row rows.Row
							if c.kind == COP {
								row.Add("Case details", copCaseDetails(kase))
							} else {
								row.Add("Case name", kase.Name)
							}
							row.Add("Case reference", kase.Number)
							row.Add("Hearing type", hearing.Type)
							row.Add("Time", normalize.FormatTime(sitting.Start))
							row.Add("Duration", normalize.Duration(sitting.Start, sitting.End, res))
							all = append(all, row)
						}
					}
				}
			}
		}
	}
	return rows.Collect(all), nil
}
