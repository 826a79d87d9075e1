// Package publication is the management facade over the rendering
// pipeline: it generates an artefact's outputs, stores them under the
// fixed naming convention, and enforces sensitivity and size limits on
// retrieval.
package publication

import (
	"fmt"

	"github.com/google/uuid"
)

// FileKind identifies one stored output of a publication.
type FileKind int

const (
	// FilePrimary is the primary rendered document.
	FilePrimary FileKind = iota
	// FileWelsh is the secondary-language document, present only for
	// Welsh-flagged list types.
	FileWelsh
	// FileTabular is the flattened spreadsheet export.
	FileTabular
)

// ParseFileKind maps a CLI/API label onto a file kind.
func ParseFileKind(value string) (FileKind, error) {
	switch value {
	case "", "pdf", "primary":
		return FilePrimary, nil
	case "welsh", "cy":
		return FileWelsh, nil
	case "excel", "xlsx", "tabular":
		return FileTabular, nil
	default:
		return FilePrimary, fmt.Errorf("unknown file kind %q", value)
	}
}

// Filename returns the stored blob name for an artefact's file of this
// kind: {id}.pdf, {id}_cy.pdf or {id}.xlsx.
func (k FileKind) Filename(id uuid.UUID) string {
	switch k {
	case FileWelsh:
		return id.String() + "_cy.pdf"
	case FileTabular:
		return id.String() + ".xlsx"
	default:
		return id.String() + ".pdf"
	}
}

// String returns the kind's display label.
func (k FileKind) String() string {
	switch k {
	case FileWelsh:
		return "welsh"
	case FileTabular:
		return "tabular"
	default:
		return "primary"
	}
}
