// Package summary turns grouped case rows into the plain-text summary used
// in notification messages.
package summary

import (
	"strings"

	"listpub/internal/rows"
)

const separator = "---"

// Assemble renders grouped rows as summary text.
//
// Rows in an unkeyed group render standalone, separated by a horizontal
// rule. A keyed group renders its key once as a "##" heading followed by
// every row in the group, and groups are separated by the same rule. Each
// row is a bulleted block of "Label - Value" lines in the row's insertion
// order. There is no trailing separator after the last block.
func Assemble(groups []rows.Group) string {
	var blocks []string
	for _, group := range groups {
		if len(group.Rows) == 0 {
			continue
		}
		if group.Key == "" {
			for _, row := range group.Rows {
				if block := renderRow(row); block != "" {
					blocks = append(blocks, block)
				}
			}
			continue
		}
		var b strings.Builder
		b.WriteString("## " + group.Key)
		for _, row := range group.Rows {
			if block := renderRow(row); block != "" {
				b.WriteString("\n" + block)
			}
		}
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n"+separator+"\n")
}

func renderRow(row rows.Row) string {
	fields := row.Fields()
	lines := make([]string, 0, len(fields))
	for _, field := range fields {
		lines = append(lines, "•"+field.Label+" - "+field.Value)
	}
	return strings.Join(lines, "\n")
}
