package normalize

import (
	"strings"

	"listpub/internal/payload"
)

// Role classifies a party's part in a case. Unrecognised role codes map to
// RoleUnknown and are ignored by the converters rather than treated as an
// error.
type Role int

const (
	RoleUnknown Role = iota
	RoleDefendant
	RoleAppellant
	RoleApplicant
	RoleClaimant
	RoleRespondent
	RoleProsecutor
	RoleInformant
	RoleRepresentative
)

var roleVocabulary = map[string]Role{
	"DEFENDANT":                           RoleDefendant,
	"APPELLANT":                           RoleAppellant,
	"APPLICANT_PETITIONER":                RoleApplicant,
	"CLAIMANT_PETITIONER":                 RoleClaimant,
	"RESPONDENT":                          RoleRespondent,
	"PROSECUTING_AUTHORITY":               RoleProsecutor,
	"INFORMANT":                           RoleInformant,
	"DEFENDANT_REPRESENTATIVE":            RoleRepresentative,
	"APPLICANT_PETITIONER_REPRESENTATIVE": RoleRepresentative,
	"CLAIMANT_PETITIONER_REPRESENTATIVE":  RoleRepresentative,
	"RESPONDENT_REPRESENTATIVE":           RoleRepresentative,
}

// ClassifyRole maps a raw role code onto the fixed vocabulary.
func ClassifyRole(code string) Role {
	return roleVocabulary[strings.ToUpper(strings.TrimSpace(code))]
}

// IndividualName formats an individual's display name by joining the
// non-blank name parts. A non-blank masked name replaces the real name
// wholesale.
func IndividualName(ind *payload.Individual) string {
	if ind == nil {
		return ""
	}
	if masked := strings.TrimSpace(ind.MaskedName); masked != "" {
		return masked
	}
	return joinNonBlank(" ", ind.Forenames, ind.MiddleName, ind.Surname)
}

// SurnameFirstName formats an individual as "Surname, Forenames", the form
// used for defendant headings. Masked names pass through unchanged.
func SurnameFirstName(ind *payload.Individual) string {
	if ind == nil {
		return ""
	}
	if masked := strings.TrimSpace(ind.MaskedName); masked != "" {
		return masked
	}
	surname := strings.TrimSpace(ind.Surname)
	rest := joinNonBlank(" ", ind.Forenames, ind.MiddleName)
	switch {
	case surname == "":
		return rest
	case rest == "":
		return surname
	default:
		return surname + ", " + rest
	}
}

// PartyName formats any party's display name: individuals by their name
// parts, organisations by their organisation name.
func PartyName(party payload.Party) string {
	if party.Individual != nil {
		return IndividualName(party.Individual)
	}
	if party.Organisation != nil {
		return strings.TrimSpace(party.Organisation.Name)
	}
	return ""
}

func joinNonBlank(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			kept = append(kept, trimmed)
		}
	}
	return strings.Join(kept, sep)
}
