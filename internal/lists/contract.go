// Package lists defines the contract every list-shape converter family
// implements and the renderer-facing context model the document stage
// consumes. One converter family owns exactly one traversal shape; the
// registry maps each supported list type onto one converter plus an
// optional summary extractor.
package lists

import (
	"listpub/internal/artefact"
	"listpub/internal/language"
	"listpub/internal/listtype"
	"listpub/internal/rows"
)

// Context is the fully annotated structure handed to the external document
// renderer: publication-level fields plus the ordered section tree derived
// from the payload.
type Context struct {
	ListType listtype.ListType
	Title    string
	Language artefact.Language
	Fields   []rows.Field
	Sections []Section
}

// Section is one ordered slice of the document: an optional heading, free
// lines, an optional table, and nested child sections.
type Section struct {
	Heading  string
	Lines    []string
	Table    *Table
	Children []Section
}

// Table is a renderer-agnostic grid.
type Table struct {
	Headers []string
	Rows    [][]string
}

// TableData is the flattened grid consumed by the spreadsheet path of the
// renderer. A nil TableData means the list type has no tabular export.
type TableData struct {
	SheetName string
	Headers   []string
	Rows      [][]string
}

// DocumentConverter walks one payload shape and produces the document
// context and the tabular export data. Converters decode the raw payload
// themselves; decode failures wrap payload.ErrMalformed and abort the
// render.
type DocumentConverter interface {
	DocumentContext(raw []byte, meta artefact.Metadata, res *language.Resources) (*Context, error)
	TableData(raw []byte) (*TableData, error)
}

// SummaryExtractor walks the same shape but emits only the minimal grouped
// rows the summary assembler needs.
type SummaryExtractor interface {
	SummaryRows(raw []byte) ([]rows.Group, error)
}
