package render

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"listpub/internal/lists"
)

// PlainRenderer is the built-in rendering capability: plain-text documents
// and CSV spreadsheets. Production deployments substitute the real
// PDF/XLSX renderer behind the same interface; this one keeps the CLI and
// the tests self-contained and is strictly deterministic.
type PlainRenderer struct{}

// NewPlainRenderer returns the built-in renderer.
func NewPlainRenderer() *PlainRenderer {
	return &PlainRenderer{}
}

// RenderDocument renders the context as plain text. Accessibility mode
// prefixes every section with structural tags and emits a contents
// outline, mirroring how tagged documents grow larger than untagged ones.
func (r *PlainRenderer) RenderDocument(_ context.Context, doc *lists.Context, opts DocumentOptions) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("render document: nil context")
	}
	var b strings.Builder
	b.WriteString(doc.Title + "\n")
	b.WriteString(strings.Repeat("=", len(doc.Title)) + "\n\n")
	for _, field := range doc.Fields {
		if field.Value != "" {
			b.WriteString(field.Label + ": " + field.Value + "\n")
		}
	}
	if opts.Accessibility {
		b.WriteString("\nContents\n")
		for _, section := range doc.Sections {
			if section.Heading != "" {
				b.WriteString("  - " + section.Heading + "\n")
			}
		}
	}
	for _, section := range doc.Sections {
		writeSection(&b, section, 0, opts.Accessibility)
	}
	return []byte(b.String()), nil
}

func writeSection(b *strings.Builder, section lists.Section, depth int, tagged bool) {
	indent := strings.Repeat("  ", depth)
	if section.Heading != "" {
		b.WriteString("\n")
		if tagged {
			b.WriteString(indent + fmt.Sprintf("[section level=%d]\n", depth+1))
		}
		b.WriteString(indent + section.Heading + "\n")
		b.WriteString(indent + strings.Repeat("-", len(section.Heading)) + "\n")
	}
	for _, line := range section.Lines {
		b.WriteString(indent + line + "\n")
	}
	if section.Table != nil && len(section.Table.Rows) > 0 {
		if tagged {
			b.WriteString(indent + fmt.Sprintf("[table rows=%d]\n", len(section.Table.Rows)))
		}
		b.WriteString(renderGrid(section.Table) + "\n")
	}
	for _, child := range section.Children {
		writeSection(b, child, depth+1, tagged)
	}
}

func renderGrid(grid *lists.Table) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	header := make(table.Row, len(grid.Headers))
	for i, h := range grid.Headers {
		header[i] = h
	}
	tw.AppendHeader(header)
	for _, cells := range grid.Rows {
		row := make(table.Row, len(grid.Headers))
		for i := range grid.Headers {
			if i < len(cells) {
				row[i] = cells[i]
			} else {
				row[i] = ""
			}
		}
		tw.AppendRow(row)
	}
	return tw.Render()
}

// RenderSpreadsheet renders the tabular data as CSV bytes.
func (r *PlainRenderer) RenderSpreadsheet(_ context.Context, data *lists.TableData) ([]byte, error) {
	if data == nil {
		return nil, nil
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(data.Headers); err != nil {
		return nil, fmt.Errorf("write spreadsheet header: %w", err)
	}
	for _, row := range data.Rows {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write spreadsheet row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush spreadsheet: %w", err)
	}
	return buf.Bytes(), nil
}
