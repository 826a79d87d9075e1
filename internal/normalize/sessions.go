package normalize

import (
	"strings"

	"golang.org/x/text/cases"

	"listpub/internal/language"
	"listpub/internal/payload"
)

// unallocatedMarker flags rooms that have no real allocation yet. The match
// is a case-insensitive substring test so feeds are free to decorate the
// phrase ("Court 3 - to be allocated").
const unallocatedMarker = "to be allocated"

// IsUnallocatedRoom reports whether a room name marks the room as not yet
// allocated. Unallocated rooms are segregated into a synthetic final
// section instead of being interleaved with real rooms.
func IsUnallocatedRoom(name string) bool {
	return strings.Contains(strings.ToLower(name), unallocatedMarker)
}

// RoomLabel returns the display label for a room, substituting the
// localised "to be allocated" label for unallocated rooms.
func RoomLabel(name string, res *language.Resources) string {
	if IsUnallocatedRoom(name) {
		return res.Label("to_be_allocated")
	}
	return strings.TrimSpace(name)
}

// CourtHouseName title-cases a court house name for document headings.
func CourtHouseName(name string, res *language.Resources) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	return cases.Title(res.Tag(), cases.Compact).String(strings.ToLower(trimmed))
}

// Judiciary concatenates judicial office holder names with ", ", listing
// the presiding holder first and otherwise preserving source order. Blank
// names are skipped.
func Judiciary(members []payload.Judiciary) string {
	names := make([]string, 0, len(members))
	var presiding string
	for _, member := range members {
		name := joinNonBlank(" ", member.Title, member.KnownAs)
		if name == "" {
			continue
		}
		if member.IsPresiding && presiding == "" {
			presiding = name
			continue
		}
		names = append(names, name)
	}
	if presiding != "" {
		names = append([]string{presiding}, names...)
	}
	return strings.Join(names, ", ")
}

// HearingChannel concatenates the sitting's channel entries with ", ",
// falling back to the session channel when the sitting has none.
func HearingChannel(sittingChannel, sessionChannel []string) string {
	joined := joinNonBlank(", ", sittingChannel...)
	if joined != "" {
		return joined
	}
	return joinNonBlank(", ", sessionChannel...)
}
