// Package sjp implements the single justice procedure list converters.
// SJP payloads carry the common spine but with a flattened meaning: every
// hearing is exactly one case against one accused. The press variant
// publishes the accused's full details and offence wording; the public
// variant is reduced to name, postcode, offence and prosecutor, and has no
// summary strategy at all.
package sjp

import (
	"strings"

	"listpub/internal/artefact"
	"listpub/internal/language"
	"listpub/internal/lists"
	"listpub/internal/normalize"
	"listpub/internal/payload"
	"listpub/internal/rows"
)

// Kind selects the SJP list variant.
type Kind int

const (
	Public Kind = iota
	Press
)

// List converts one SJP list variant.
type List struct {
	kind Kind
}

// NewList builds a converter for the given SJP variant.
func NewList(kind Kind) *List {
	return &List{kind: kind}
}

// sjpCase is one flattened SJP entry.
type sjpCase struct {
	name       string
	address    string
	postcode   string
	dob        string
	caseRef    string
	prosecutor string
	offences   []payload.Offence
}

func flatten(listing *payload.Listing, res *language.Resources) []sjpCase {
	var entries []sjpCase
	for _, list := range listing.CourtLists {
		for _, room := range list.CourtHouse.Rooms {
			for _, session := range room.Sessions {
				for _, sitting := range session.Sittings {
					for _, hearing := range sitting.Hearings {
						entries = append(entries, flattenHearing(hearing, res)...)
					}
				}
			}
		}
	}
	return entries
}

func flattenHearing(hearing payload.Hearing, res *language.Resources) []sjpCase {
	cases := hearing.Cases
	if len(cases) == 0 {
		cases = []payload.Case{{}}
	}
	var entries []sjpCase
	for _, kase := range cases {
		// Each case uses its own parties; a case without any falls back
		// to the hearing-level attachment.
		parties := hearing.Parties
		if len(kase.Parties) > 0 {
			parties = kase.Parties
		}
		entry := sjpCase{caseRef: kase.URN}
		if entry.caseRef == "" {
			entry.caseRef = kase.Number
		}
		for _, party := range parties {
			switch normalize.ClassifyRole(party.Role) {
			case normalize.RoleDefendant:
				if party.Individual != nil {
					entry.name = normalize.IndividualName(party.Individual)
					entry.address = normalize.AddressWithoutPostcode(party.Individual.Address)
					entry.postcode = strings.TrimSpace(party.Individual.Address.PostCode)
					entry.dob = normalize.FormatDate(party.Individual.DateOfBirth, res)
				} else {
					entry.name = normalize.PartyName(party)
				}
				entry.offences = append(entry.offences, party.Offences...)
			case normalize.RoleProsecutor, normalize.RoleInformant:
				if entry.prosecutor == "" {
					entry.prosecutor = normalize.PartyName(party)
				}
			}
		}
		entry.offences = append(entry.offences, kase.Offences...)
		entries = append(entries, entry)
	}
	return entries
}

func offenceSummary(offences []payload.Offence) string {
	titles := make([]string, 0, len(offences))
	for _, offence := range offences {
		if title := strings.TrimSpace(offence.Title); title != "" {
			titles = append(titles, title)
		}
	}
	return strings.Join(titles, ", ")
}

// DocumentContext renders the press variant as one section per accused and
// the public variant as a single four-column table.
func (c *List) DocumentContext(raw []byte, meta artefact.Metadata, res *language.Resources) (*lists.Context, error) {
	listing, err := payload.Decode(raw)
	if err != nil {
		return nil, err
	}
	ctx := &lists.Context{
		ListType: meta.ListType,
		Title:    meta.ListType.FriendlyName(),
		Language: meta.Language,
		Fields: []rows.Field{
			{Label: res.Label("list_for"), Value: normalize.FormatDateValue(meta.ContentDate, res)},
			{Label: res.Label("published"), Value: normalize.FormatDateTime(listing.Document.PublicationDate, res)},
		},
	}
	entries := flatten(listing, res)
	if c.kind == Public {
		table := &lists.Table{Headers: []string{"Name", "Postcode", "Offence", "Prosecuting authority"}}
		for _, entry := range entries {
			table.Rows = append(table.Rows, []string{entry.name, entry.postcode, offenceSummary(entry.offences), entry.prosecutor})
		}
		ctx.Sections = append(ctx.Sections, lists.Section{Table: table})
		return ctx, nil
	}
	for _, entry := range entries {
		section := lists.Section{Heading: entry.name}
		section.Lines = append(section.Lines,
			"Address: "+entry.address,
			"Postcode: "+entry.postcode,
			"Date of birth: "+entry.dob,
			"Case reference: "+entry.caseRef,
			"Prosecuting authority: "+entry.prosecutor,
		)
		table := &lists.Table{Headers: []string{"Offence", "Wording", "Reporting restriction"}}
		for _, offence := range entry.offences {
			restriction := ""
			if offence.ReportingRestriction {
				restriction = "Active"
			}
			table.Rows = append(table.Rows, []string{offence.Title, offence.Wording, restriction})
		}
		section.Table = table
		ctx.Sections = append(ctx.Sections, section)
	}
	return ctx, nil
}

// TableData flattens every accused into one spreadsheet row.
func (c *List) TableData(raw []byte) (*lists.TableData, error) {
	listing, err := payload.Decode(raw)
	if err != nil {
		return nil, err
	}
	res := language.English()
	data := &lists.TableData{SheetName: "Cases"}
	if c.kind == Public {
		data.Headers = []string{"Name", "Postcode", "Offence", "Prosecuting authority"}
	} else {
		data.Headers = []string{"Name", "Address", "Postcode", "Date of birth", "Case reference", "Offence", "Prosecuting authority"}
	}
	for _, entry := range flatten(listing, res) {
		if c.kind == Public {
			data.Rows = append(data.Rows, []string{entry.name, entry.postcode, offenceSummary(entry.offences), entry.prosecutor})
			continue
		}
		data.Rows = append(data.Rows, []string{
			entry.name,
			entry.address,
			entry.postcode,
			entry.dob,
			entry.caseRef,
			offenceSummary(entry.offences),
			entry.prosecutor,
		})
	}
	return data, nil
}

// SummaryRows emits the press summary: one ungrouped row per accused. The
// public variant has no summary strategy; its registry entry carries a nil
// extractor, so this is only reachable for the press list.
func (c *List) SummaryRows(raw []byte) ([]rows.Group, error) {
	listing, err := payload.Decode(raw)
	if err != nil {
		return nil, err
	}
	var all []rows.Row
	for _, entry := range flatten(listing, language.English()) {
		var row rows.Row
		row.Add("Accused", entry.name)
		row.Add("Postcode", entry.postcode)
		row.Add("Prosecuting authority", entry.prosecutor)
		row.Add("Case reference", entry.caseRef)
		row.Add("Offence", offenceSummary(entry.offences))
		all = append(all, row)
	}
	return rows.Collect(all), nil
}
