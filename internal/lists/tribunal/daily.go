// Package tribunal implements the converter families for the first-tier
// and upper tribunal lists: the daily lists on the common spine, the
// weekly and fortnightly lists on the flat sitting spine with the
// per-date split, and the upper tribunal daily hearing lists.
package tribunal

import (
	"strings"

	"listpub/internal/artefact"
	"listpub/internal/language"
	"listpub/internal/lists"
	"listpub/internal/normalize"
	"listpub/internal/payload"
	"listpub/internal/rows"
)

// DailyKind selects the first-tier tribunal daily list variant.
type DailyKind int

const (
	EmploymentDaily DailyKind = iota
	ImmigrationDaily
	SocialSecurityDaily
	CareStandardsDaily
	PrimaryHealthDaily
)

// DailyList converts the first-tier tribunal daily lists. The employment
// variant labels its parties claimant and respondent; the rest use
// appellant and respondent.
type DailyList struct {
	kind DailyKind
}

// NewDailyList builds a converter for the given tribunal daily variant.
func NewDailyList(kind DailyKind) *DailyList {
	return &DailyList{kind: kind}
}

func (c *DailyList) claimantLabel() string {
	if c.kind == EmploymentDaily {
		return "Claimant"
	}
	return "Appellant"
}

func (c *DailyList) claimantRoles() []normalize.Role {
	if c.kind == EmploymentDaily {
		return []normalize.Role{normalize.RoleClaimant, normalize.RoleApplicant}
	}
	return []normalize.Role{normalize.RoleAppellant, normalize.RoleApplicant}
}

func (c *DailyList) headers() []string {
	return []string{"Hearing time", "Case number", c.claimantLabel(), "Respondent", "Hearing type", "Hearing channel", "Duration"}
}

func (c *DailyList) caseCells(session payload.Session, sitting payload.Sitting, hearing payload.Hearing, kase payload.Case, res *language.Resources) []string {
	parties := kase.Parties
	if len(parties) == 0 {
		parties = hearing.Parties
	}
	return []string{
		normalize.FormatTime(sitting.Start),
		kase.Number,
		namesByRole(parties, c.claimantRoles()...),
		namesByRole(parties, normalize.RoleRespondent),
		hearing.Type,
		normalize.HearingChannel(sitting.Channel, session.Channel),
		normalize.Duration(sitting.Start, sitting.End, res),
	}
}

func namesByRole(parties []payload.Party, roles ...normalize.Role) string {
	wanted := make(map[normalize.Role]bool, len(roles))
	for _, role := range roles {
		wanted[role] = true
	}
	names := make([]string, 0, len(parties))
	for _, party := range parties {
		if !wanted[normalize.ClassifyRole(party.Role)] {
			continue
		}
		if name := normalize.PartyName(party); name != "" {
			names = append(names, name)
		}
	}
	return strings.Join(names, ", ")
}

// DocumentContext renders one section per court house and room.
func (c *DailyList) DocumentContext(raw []byte, meta artefact.Metadata, res *language.Resources) (*lists.Context, error) {
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
			heading := houseName
			if label := normalize.RoomLabel(room.Name, res); label != "" {
				if heading != "" {
					heading += ", "
				}
				heading += label
			}
			section := lists.Section{Heading: heading}
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

// TableData flattens every case into one spreadsheet row.
func (c *DailyList) TableData(raw []byte) (*lists.TableData, error) {
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

// SummaryRows groups cases by hearing type, preserving traversal order
// within each group.
func (c *DailyList) SummaryRows(raw []byte) ([]rows.Group, error) {
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
							parties := kase.Parties
							if len(parties) == 0 {
								parties = hearing.Parties
							}
							row := rows.Row{GroupKey: hearing.Type}
							row.Add("Case number", kase.Number)
							row.Add(c.claimantLabel(), namesByRole(parties, c.claimantRoles()...))
							row.Add("Respondent", namesByRole(parties, normalize.RoleRespondent))
							row.Add("Hearing time", normalize.FormatTime(sitting.Start))
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
