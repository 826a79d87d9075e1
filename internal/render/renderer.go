// Package render coordinates the generation of a publication's outputs:
// the tabular export, the primary document and, for Welsh-flagged list
// types, the secondary-language document, applying the size-based
// accessibility fallback.
package render

import (
	"context"

	"listpub/internal/lists"
)

// SizeThreshold is the document size, in bytes, above which the
// accessibility-enabled render is replaced by a second render with
// accessibility features disabled. There is no third attempt.
const SizeThreshold = 2_000_000

// DocumentOptions selects the rendering mode for one document pass.
type DocumentOptions struct {
	// Accessibility enables the structurally tagged output mode, which
	// produces larger documents.
	Accessibility bool
}

// Renderer is the external document and spreadsheet capability the
// orchestrator calls into. Both methods must be deterministic: the same
// context must produce the same bytes, or the two-pass size fallback stops
// being reproducible.
type Renderer interface {
	RenderDocument(ctx context.Context, doc *lists.Context, opts DocumentOptions) ([]byte, error)
	RenderSpreadsheet(ctx context.Context, data *lists.TableData) ([]byte, error)
}

// Outputs holds the rendered artefacts for one publication. Any member may
// legitimately be empty: Welsh for non-Welsh list types, Tabular for list
// types with no spreadsheet path.
type Outputs struct {
	Primary []byte
	Welsh   []byte
	Tabular []byte
}
