package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newPublishCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish <artefact-id>",
		Short: "Generate and store the publication files for a stored artefact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("parse artefact id: %w", err)
			}

			service, cleanup, err := ctx.openService()
			if err != nil {
				return err
			}
			defer cleanup()

			receipt, err := service.Publish(cmd.Context(), id)
			if err != nil {
				return err
			}
			if receipt.Skipped {
				fmt.Fprintf(cmd.OutOrStdout(), "artefact %s skipped: no strategy registered for its list type\n", id)
				return nil
			}
			for _, name := range receipt.Files {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			if receipt.Summary != "" {
				fmt.Fprintln(cmd.OutOrStdout())
				fmt.Fprintln(cmd.OutOrStdout(), receipt.Summary)
			}
			return nil
		},
	}
	return cmd
}
