package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"listpub/internal/language"
	"listpub/internal/normalize"
)

func newArtefactsCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "artefacts",
		Short: "List stored artefacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			metas, err := store.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(metas) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no artefacts stored")
				return nil
			}

			rows := make([][]string, 0, len(metas))
			for _, meta := range metas {
				rows = append(rows, []string{
					meta.ID.String(),
					string(meta.ListType),
					string(meta.Language),
					string(meta.Sensitivity),
					normalize.FormatDateValue(meta.ContentDate, language.English()),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderCLITable(
				[]string{"ID", "List Type", "Language", "Sensitivity", "Content Date"},
				rows,
			))
			return nil
		},
	}

	cmd.AddCommand(newArtefactsDeleteCommand(ctx))
	return cmd
}

func newArtefactsDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <artefact-id>",
		Short: "Remove a stored artefact and its payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("parse artefact id: %w", err)
			}
			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", id)
			return nil
		},
	}
}
