package render

import (
	"context"
	"fmt"
	"log/slog"

	"listpub/internal/artefact"
	"listpub/internal/language"
	"listpub/internal/payload"
	"listpub/internal/registry"
	"listpub/internal/summary"
)

// Orchestrator drives the straight-line render pipeline for one artefact.
// It holds no per-render state; a single instance is safe for concurrent
// use.
type Orchestrator struct {
	registry *registry.Registry
	renderer Renderer
	logger   *slog.Logger
}

// NewOrchestrator wires the dispatch table and the external renderer.
func NewOrchestrator(reg *registry.Registry, renderer Renderer, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{registry: reg, renderer: renderer, logger: logger}
}

// Generate produces the document and tabular outputs for an artefact. A nil
// result with a nil error means the list type has no registered strategy;
// callers skip storage for such artefacts. A malformed payload fails the
// whole operation with no partial outputs.
func (o *Orchestrator) Generate(ctx context.Context, meta artefact.Metadata, raw []byte) (*Outputs, error) {
	if !payload.Valid(raw) {
		return nil, fmt.Errorf("artefact %s: %w", meta.ID, payload.ErrMalformed)
	}
	strategy, ok := o.registry.Lookup(meta.ListType)
	if !ok {
		o.logger.Debug("no strategy registered, skipping generation",
			slog.String("artefact_id", meta.ID.String()),
			slog.String("list_type", string(meta.ListType)))
		return nil, nil
	}

	outputs := &Outputs{}

	data, err := strategy.Converter.TableData(raw)
	if err != nil {
		return nil, fmt.Errorf("tabular export for artefact %s: %w", meta.ID, err)
	}
	if data != nil {
		outputs.Tabular, err = o.renderer.RenderSpreadsheet(ctx, data)
		if err != nil {
			return nil, fmt.Errorf("render spreadsheet for artefact %s: %w", meta.ID, err)
		}
	}

	outputs.Primary, err = o.renderDocument(ctx, strategy, meta, raw, language.English())
	if err != nil {
		return nil, err
	}

	if meta.RequiresWelshDocument() {
		outputs.Welsh, err = o.renderDocument(ctx, strategy, meta, raw, language.Welsh())
		if err != nil {
			return nil, err
		}
	}
	return outputs, nil
}

// renderDocument runs the two-pass size fallback: one render with
// accessibility enabled, and a single re-render with accessibility disabled
// when the first pass exceeds the threshold. The second pass is final even
// if still oversized; oversize only surfaces at retrieval time.
func (o *Orchestrator) renderDocument(ctx context.Context, strategy registry.Strategy, meta artefact.Metadata, raw []byte, res *language.Resources) ([]byte, error) {
	doc, err := strategy.Converter.DocumentContext(raw, meta, res)
	if err != nil {
		return nil, fmt.Errorf("document context for artefact %s: %w", meta.ID, err)
	}
	rendered, err := o.renderer.RenderDocument(ctx, doc, DocumentOptions{Accessibility: true})
	if err != nil {
		return nil, fmt.Errorf("render document for artefact %s: %w", meta.ID, err)
	}
	if len(rendered) <= SizeThreshold {
		return rendered, nil
	}

	o.logger.Info("document exceeds size threshold, re-rendering without accessibility",
		slog.String("artefact_id", meta.ID.String()),
		slog.Int("size", len(rendered)),
		slog.Int("threshold", SizeThreshold))
	fallback, err := o.renderer.RenderDocument(ctx, doc, DocumentOptions{Accessibility: false})
	if err != nil {
		return nil, fmt.Errorf("fallback render for artefact %s: %w", meta.ID, err)
	}
	if len(fallback) > SizeThreshold {
		o.logger.Warn("fallback render still exceeds size threshold, storing as-is",
			slog.String("artefact_id", meta.ID.String()),
			slog.Int("size", len(fallback)))
	}
	return fallback, nil
}

// Summary produces the notification summary text for an artefact. List
// types with no strategy, or with an intentionally absent summary strategy,
// yield an empty string.
func (o *Orchestrator) Summary(ctx context.Context, meta artefact.Metadata, raw []byte) (string, error) {
	if !payload.Valid(raw) {
		return "", fmt.Errorf("artefact %s: %w", meta.ID, payload.ErrMalformed)
	}
	strategy, ok := o.registry.Lookup(meta.ListType)
	if !ok || strategy.Summary == nil {
		return "", nil
	}
	groups, err := strategy.Summary.SummaryRows(raw)
	if err != nil {
		return "", fmt.Errorf("summary rows for artefact %s: %w", meta.ID, err)
	}
	return summary.Assemble(groups), nil
}
