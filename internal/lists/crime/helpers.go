// Package crime implements the converter families for the crown and
// magistrates court lists, including the PDDA-sourced crown feed. Crime
// lists share the unallocated-section rule: rooms marked "to be allocated"
// are cloned out of their traversal position into one synthetic final
// section.
package crime

import (
	"strings"

	"listpub/internal/language"
	"listpub/internal/normalize"
	"listpub/internal/payload"
)

// roomBlock is one room with its resolved display heading, in output order.
type roomBlock struct {
	heading     string
	unallocated bool
	courtHouse  payload.CourtHouse
	room        payload.CourtRoom
}

// splitRooms walks the court lists and returns the allocated rooms in
// traversal order followed by every unallocated room, re-headed with the
// localised "to be allocated" label. The original position of an
// unallocated room carries nothing; its content appears only in the final
// synthetic section.
func splitRooms(listing *payload.Listing, res *language.Resources) []roomBlock {
	var allocated, unallocated []roomBlock
	for _, list := range listing.CourtLists {
		house := list.CourtHouse
		houseName := normalize.CourtHouseName(house.Name, res)
		for _, room := range house.Rooms {
			block := roomBlock{courtHouse: house, room: room}
			if normalize.IsUnallocatedRoom(room.Name) {
				block.unallocated = true
				block.heading = joinHeading(houseName, res.Label("to_be_allocated"))
				unallocated = append(unallocated, block)
				continue
			}
			block.heading = joinHeading(houseName, normalize.RoomLabel(room.Name, res))
			allocated = append(allocated, block)
		}
	}
	return append(allocated, unallocated...)
}

func joinHeading(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			kept = append(kept, trimmed)
		}
	}
	return strings.Join(kept, ", ")
}

// defendantHeading formats the heading identity of an individual defendant,
// including the masked-name substitution and the gender and custody
// annotations. Folding compares these headings with exact string equality.
func defendantHeading(ind *payload.Individual) string {
	name := normalize.SurnameFirstName(ind)
	if name == "" {
		return ""
	}
	if ind.MaskedName == "" {
		if gender := strings.TrimSpace(ind.Gender); gender != "" {
			name += " (" + gender + ")"
		}
		if ind.InCustody {
			name += " (in custody)"
		}
	}
	return name
}

// defendants joins the case's defendant names with ", ", organisations by
// organisation name and individuals in surname-first heading form.
func defendants(c payload.Case) string {
	names := make([]string, 0, len(c.Parties))
	for _, party := range c.Parties {
		if normalize.ClassifyRole(party.Role) != normalize.RoleDefendant {
			continue
		}
		var name string
		if party.Individual != nil {
			name = defendantHeading(party.Individual)
		} else {
			name = normalize.PartyName(party)
		}
		if name != "" {
			names = append(names, name)
		}
	}
	return strings.Join(names, ", ")
}

// prosecutor returns the first prosecuting authority named on the case.
func prosecutor(c payload.Case) string {
	for _, party := range c.Parties {
		if normalize.ClassifyRole(party.Role) == normalize.RoleProsecutor {
			if name := normalize.PartyName(party); name != "" {
				return name
			}
		}
	}
	return ""
}

// caseRef appends the case-sequence indicator to the case number when one
// is supplied.
func caseRef(c payload.Case) string {
	number := strings.TrimSpace(c.Number)
	if number == "" {
		number = strings.TrimSpace(c.URN)
	}
	if seq := strings.TrimSpace(c.SequenceIndicator); seq != "" && number != "" {
		return number + " [" + seq + "]"
	}
	return number
}

// linkedCases joins the linked case ids with ", ".
func linkedCases(c payload.Case) string {
	ids := make([]string, 0, len(c.LinkedCases))
	for _, link := range c.LinkedCases {
		if trimmed := strings.TrimSpace(link.CaseID); trimmed != "" {
			ids = append(ids, trimmed)
		}
	}
	return strings.Join(ids, ", ")
}

// offenceTitles joins the offence titles charged on a case or party.
func offenceTitles(offences []payload.Offence) string {
	titles := make([]string, 0, len(offences))
	for _, offence := range offences {
		title := strings.TrimSpace(offence.Title)
		if title == "" {
			continue
		}
		if section := strings.TrimSpace(offence.Section); section != "" {
			title += " (" + section + ")"
		}
		titles = append(titles, title)
	}
	return strings.Join(titles, ", ")
}
