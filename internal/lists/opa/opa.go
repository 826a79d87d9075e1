// Package opa implements the online plea and allocation list converters.
// The press and public lists group cases by plea date; the results list
// groups by decision date. The public variant strips personal details and
// carries no summary strategy.
package opa

import (
	"sort"
	"strings"

	"listpub/internal/artefact"
	"listpub/internal/language"
	"listpub/internal/lists"
	"listpub/internal/normalize"
	"listpub/internal/payload"
	"listpub/internal/rows"
)

// Kind selects the online plea list variant.
type Kind int

const (
	Press Kind = iota
	Public
	Results
)

// List converts one online plea list variant.
type List struct {
	kind Kind
}

// NewList builds a converter for the given variant.
func NewList(kind Kind) *List {
	return &List{kind: kind}
}

// opaEntry is one charged offence with its defendant context, keyed by the
// plea or decision date it groups under.
type opaEntry struct {
	dateKey    string
	defendant  string
	postcode   string
	caseRef    string
	prosecutor string
	offence    payload.Offence
}

func (c *List) flatten(listing *payload.Listing) []opaEntry {
	var entries []opaEntry
	for _, list := range listing.CourtLists {
		for _, room := range list.CourtHouse.Rooms {
			for _, session := range room.Sessions {
				for _, sitting := range session.Sittings {
					for _, hearing := range sitting.Hearings {
						for _, kase := range hearing.Cases {
							entries = append(entries, c.flattenCase(kase)...)
						}
					}
				}
			}
		}
	}
	return entries
}

func (c *List) flattenCase(kase payload.Case) []opaEntry {
	ref := kase.URN
	if ref == "" {
		ref = kase.Number
	}
	base := opaEntry{caseRef: ref}
	var names []string
	for _, party := range kase.Parties {
		switch normalize.ClassifyRole(party.Role) {
		case normalize.RoleDefendant:
			if name := normalize.PartyName(party); name != "" {
				names = append(names, name)
			}
			if base.postcode == "" && party.Individual != nil {
				base.postcode = strings.TrimSpace(party.Individual.Address.PostCode)
			}
		case normalize.RoleProsecutor:
			if base.prosecutor == "" {
				base.prosecutor = normalize.PartyName(party)
			}
		}
	}
	// Case-level offences name every accused; an offence attached to one
	// party names that party alone.
	base.defendant = strings.Join(names, ", ")
	var entries []opaEntry
	for _, party := range kase.Parties {
		if normalize.ClassifyRole(party.Role) != normalize.RoleDefendant {
			continue
		}
		for _, offence := range party.Offences {
			entry := base
			entry.defendant = normalize.PartyName(party)
			entry.postcode = ""
			if party.Individual != nil {
				entry.postcode = strings.TrimSpace(party.Individual.Address.PostCode)
			}
			entry.offence = offence
			entry.dateKey = c.dateKey(offence)
			entries = append(entries, entry)
		}
	}
	for _, offence := range kase.Offences {
		entry := base
		entry.offence = offence
		entry.dateKey = c.dateKey(offence)
		entries = append(entries, entry)
	}
	return entries
}

func (c *List) dateKey(offence payload.Offence) string {
	if c.kind == Results {
		return normalize.SortableDate(offence.DecisionDate)
	}
	return normalize.SortableDate(offence.PleaDate)
}

func (c *List) dateLabel() string {
	if c.kind == Results {
		return "Decision date"
	}
	return "Plea date"
}

func (c *List) headers() []string {
	switch c.kind {
	case Results:
		return []string{"Defendant", "Case reference", "Offence", "Decision", "Prosecuting authority"}
	case Public:
		return []string{"Defendant", "Postcode", "Case reference", "Offence", "Plea"}
	default:
		return []string{"Defendant", "Case reference", "Offence", "Plea", "Prosecuting authority"}
	}
}

func (c *List) cells(entry opaEntry) []string {
	switch c.kind {
	case Results:
		return []string{entry.defendant, entry.caseRef, entry.offence.Title, entry.offence.Decision, entry.prosecutor}
	case Public:
		return []string{entry.defendant, entry.postcode, entry.caseRef, entry.offence.Title, entry.offence.Plea}
	default:
		return []string{entry.defendant, entry.caseRef, entry.offence.Title, entry.offence.Plea, entry.prosecutor}
	}
}

// groupedEntries orders entries by their date key ascending, preserving
// traversal order within a date. Entries without a parseable date come
// first under an empty key.
func (c *List) groupedEntries(entries []opaEntry) ([]string, map[string][]opaEntry) {
	byDate := make(map[string][]opaEntry)
	var keys []string
	for _, entry := range entries {
		if _, ok := byDate[entry.dateKey]; !ok {
			keys = append(keys, entry.dateKey)
		}
		byDate[entry.dateKey] = append(byDate[entry.dateKey], entry)
	}
	// ISO date keys sort lexically, so ascending string order is
	// chronological.
	sort.Strings(keys)
	return keys, byDate
}

// DocumentContext renders one section per plea or decision date, ascending.
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
	keys, byDate := c.groupedEntries(c.flatten(listing))
	for _, key := range keys {
		heading := ""
		if key != "" {
			heading = c.dateLabel() + ": " + normalize.FormatDate(key, res)
		}
		section := lists.Section{Heading: heading}
		table := &lists.Table{Headers: c.headers()}
		for _, entry := range byDate[key] {
			table.Rows = append(table.Rows, c.cells(entry))
		}
		section.Table = table
		ctx.Sections = append(ctx.Sections, section)
	}
	return ctx, nil
}

// TableData flattens every charged offence into one spreadsheet row.
func (c *List) TableData(raw []byte) (*lists.TableData, error) {
	listing, err := payload.Decode(raw)
	if err != nil {
		return nil, err
	}
	res := language.English()
	data := &lists.TableData{
		SheetName: "Cases",
		Headers:   append([]string{c.dateLabel()}, c.headers()...),
	}
	keys, byDate := c.groupedEntries(c.flatten(listing))
	for _, key := range keys {
		for _, entry := range byDate[key] {
			data.Rows = append(data.Rows, append([]string{normalize.FormatDate(key, res)}, c.cells(entry)...))
		}
	}
	return data, nil
}

// SummaryRows groups rows by plea or decision date, ascending. The public
// variant's registry entry carries no extractor, so this serves the press
// and results lists.
func (c *List) SummaryRows(raw []byte) ([]rows.Group, error) {
	listing, err := payload.Decode(raw)
	if err != nil {
		return nil, err
	}
	res := language.English()
	var all []rows.Row
	for _, entry := range c.flatten(listing) {
		row := rows.Row{GroupKey: entry.dateKey}
		row.Add("Defendant", entry.defendant)
		row.Add("Case reference", entry.caseRef)
		row.Add("Offence", entry.offence.Title)
		if c.kind == Results {
			row.Add("Decision", entry.offence.Decision)
		} else {
			row.Add("Plea", entry.offence.Plea)
		}
		all = append(all, row)
	}
	groups := rows.Collect(all)
	rows.SortGroupsByKey(groups)
	for i := range groups {
		if groups[i].Key != "" {
			groups[i].Key = c.dateLabel() + ": " + normalize.FormatDate(groups[i].Key, res)
		}
	}
	return groups, nil
}
