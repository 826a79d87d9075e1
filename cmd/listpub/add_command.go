package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"listpub/internal/payload"
)

func newAddCommand(ctx *commandContext) *cobra.Command {
	var flags metadataFlags
	var payloadPath string
	var idFlag string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Store a listing payload and its metadata for later publication",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(payloadPath)
			if err != nil {
				return fmt.Errorf("read payload: %w", err)
			}
			if !payload.Valid(raw) {
				return fmt.Errorf("payload %s: %w", payloadPath, payload.ErrMalformed)
			}

			id := uuid.New()
			if idFlag != "" {
				id, err = uuid.Parse(idFlag)
				if err != nil {
					return fmt.Errorf("parse artefact id: %w", err)
				}
			}
			meta, err := flags.metadata(id)
			if err != nil {
				return err
			}

			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Save(cmd.Context(), meta, raw); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&payloadPath, "payload", "", "Path to the raw listing payload (JSON)")
	cmd.Flags().StringVar(&idFlag, "id", "", "Artefact id (defaults to a new UUID)")
	_ = cmd.MarkFlagRequired("payload")
	return cmd
}
