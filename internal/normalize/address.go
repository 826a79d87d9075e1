package normalize

import (
	"strings"

	"listpub/internal/payload"
)

// Address concatenates the non-blank elements of an address, postcode
// included, with ", ".
func Address(addr payload.Address) string {
	return joinAddress(addr, true)
}

// AddressWithoutPostcode concatenates the non-blank elements of an address
// with ", ", omitting the postcode for shapes that surface it separately.
func AddressWithoutPostcode(addr payload.Address) string {
	return joinAddress(addr, false)
}

func joinAddress(addr payload.Address, includePostcode bool) string {
	parts := make([]string, 0, len(addr.Line)+3)
	for _, line := range addr.Line {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	for _, part := range []string{addr.Town, addr.County} {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	if includePostcode {
		if trimmed := strings.TrimSpace(addr.PostCode); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, ", ")
}

// ReportingRestrictions concatenates free-text restriction entries with
// ", ". A missing or empty collection yields "", never a null-ish value.
func ReportingRestrictions(entries []string) string {
	kept := make([]string, 0, len(entries))
	for _, entry := range entries {
		if trimmed := strings.TrimSpace(entry); trimmed != "" {
			kept = append(kept, trimmed)
		}
	}
	return strings.Join(kept, ", ")
}
