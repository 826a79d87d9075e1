package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"listpub/internal/artefact"
	"listpub/internal/listtype"
	"listpub/internal/publication"
)

// metadataFlags are the artefact fields supplied on the command line for
// ad-hoc rendering and ingestion.
type metadataFlags struct {
	listType    string
	language    string
	sensitivity string
	provenance  string
	contentDate string
	locationID  string
}

func (f *metadataFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.listType, "list-type", "", "List type identifier (e.g. CROWN_DAILY_LIST)")
	cmd.Flags().StringVar(&f.language, "language", "ENGLISH", "Artefact language (ENGLISH, WELSH, BI_LINGUAL)")
	cmd.Flags().StringVar(&f.sensitivity, "sensitivity", "PUBLIC", "Sensitivity tier (PUBLIC, PRIVATE, CLASSIFIED)")
	cmd.Flags().StringVar(&f.provenance, "provenance", "MANUAL_UPLOAD", "Provenance label")
	cmd.Flags().StringVar(&f.contentDate, "content-date", "", "Content date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.locationID, "location", "", "Owning location id")
	_ = cmd.MarkFlagRequired("list-type")
}

func (f *metadataFlags) metadata(id uuid.UUID) (artefact.Metadata, error) {
	lt, _ := listtype.Parse(f.listType)
	meta := artefact.Metadata{
		ID:          id,
		ListType:    lt,
		Language:    artefact.ParseLanguage(f.language),
		Sensitivity: artefact.ParseSensitivity(f.sensitivity),
		Provenance:  f.provenance,
		LocationID:  f.locationID,
	}
	if f.contentDate != "" {
		parsed, err := time.Parse("2006-01-02", f.contentDate)
		if err != nil {
			return meta, fmt.Errorf("parse content date %q: %w", f.contentDate, err)
		}
		meta.ContentDate = parsed
	}
	return meta, nil
}

func newRenderCommand(ctx *commandContext) *cobra.Command {
	var flags metadataFlags
	var payloadPath string
	var outDir string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a listing payload to local files without storing it",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(payloadPath)
			if err != nil {
				return fmt.Errorf("read payload: %w", err)
			}
			meta, err := flags.metadata(uuid.New())
			if err != nil {
				return err
			}
			orchestrator, err := ctx.orchestrator()
			if err != nil {
				return err
			}

			outputs, err := orchestrator.Generate(cmd.Context(), meta, raw)
			if err != nil {
				return err
			}
			if outputs == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "no strategy registered for list type %s, nothing rendered\n", meta.ListType)
				return nil
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}

			files := []struct {
				kind publication.FileKind
				data []byte
			}{
				{publication.FilePrimary, outputs.Primary},
				{publication.FileWelsh, outputs.Welsh},
				{publication.FileTabular, outputs.Tabular},
			}
			for _, file := range files {
				if len(file.data) == 0 {
					continue
				}
				path := filepath.Join(outDir, file.kind.Filename(meta.ID))
				if err := os.WriteFile(path, file.data, 0o644); err != nil {
					return fmt.Errorf("write %s: %w", path, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&payloadPath, "payload", "", "Path to the raw listing payload (JSON)")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "Output directory")
	_ = cmd.MarkFlagRequired("payload")
	return cmd
}

func newSummaryCommand(ctx *commandContext) *cobra.Command {
	var flags metadataFlags
	var payloadPath string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the notification summary for a listing payload",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(payloadPath)
			if err != nil {
				return fmt.Errorf("read payload: %w", err)
			}
			meta, err := flags.metadata(uuid.New())
			if err != nil {
				return err
			}
			orchestrator, err := ctx.orchestrator()
			if err != nil {
				return err
			}

			text, err := orchestrator.Summary(cmd.Context(), meta, raw)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&payloadPath, "payload", "", "Path to the raw listing payload (JSON)")
	_ = cmd.MarkFlagRequired("payload")
	return cmd
}
