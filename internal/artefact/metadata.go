// Package artefact defines the metadata record attached to every published
// hearing list. The record is supplied by the ingestion side and is treated
// as read-only by the rendering pipeline.
package artefact

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"listpub/internal/listtype"
)

// Language is the language an artefact was supplied in.
type Language string

const (
	LanguageEnglish   Language = "ENGLISH"
	LanguageWelsh     Language = "WELSH"
	LanguageBilingual Language = "BI_LINGUAL"
)

// ParseLanguage normalises a language label, defaulting to English for blank
// or unrecognised values.
func ParseLanguage(value string) Language {
	switch Language(strings.ToUpper(strings.TrimSpace(value))) {
	case LanguageWelsh:
		return LanguageWelsh
	case LanguageBilingual:
		return LanguageBilingual
	default:
		return LanguageEnglish
	}
}

// Sensitivity is the access tier gating retrieval of an artefact.
type Sensitivity string

const (
	SensitivityPublic     Sensitivity = "PUBLIC"
	SensitivityPrivate    Sensitivity = "PRIVATE"
	SensitivityClassified Sensitivity = "CLASSIFIED"
)

// ParseSensitivity normalises a sensitivity label, defaulting to public.
func ParseSensitivity(value string) Sensitivity {
	switch Sensitivity(strings.ToUpper(strings.TrimSpace(value))) {
	case SensitivityPrivate:
		return SensitivityPrivate
	case SensitivityClassified:
		return SensitivityClassified
	default:
		return SensitivityPublic
	}
}

// Public reports whether artefacts of this tier are retrievable without an
// authorization check.
func (s Sensitivity) Public() bool {
	return s == SensitivityPublic || s == ""
}

// Metadata describes one published listing instance. Fields mirror what the
// ingestion side records; the pipeline never mutates them.
type Metadata struct {
	ID          uuid.UUID
	ListType    listtype.ListType
	Language    Language
	Sensitivity Sensitivity
	Provenance  string
	ContentDate time.Time
	DisplayFrom time.Time
	DisplayTo   time.Time
	LocationID  string
}

// RequiresWelshDocument reports whether generation should produce a second,
// Welsh-language document for this artefact: the list type must be flagged
// for Welsh output and the artefact must not be English-only.
func (m Metadata) RequiresWelshDocument() bool {
	return m.ListType.WelshDocument() && m.Language != LanguageEnglish && m.Language != ""
}
