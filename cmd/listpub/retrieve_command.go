package main

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"listpub/internal/publication"
)

func newRetrieveCommand(ctx *commandContext) *cobra.Command {
	var kindFlag string
	var maxBytes int64
	var userID string
	var system bool
	var outPath string

	cmd := &cobra.Command{
		Use:   "retrieve <artefact-id>",
		Short: "Fetch one stored publication file, enforcing sensitivity and size limits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("parse artefact id: %w", err)
			}
			kind, err := publication.ParseFileKind(kindFlag)
			if err != nil {
				return err
			}

			service, cleanup, err := ctx.openService()
			if err != nil {
				return err
			}
			defer cleanup()

			file, err := service.Retrieve(cmd.Context(), id, kind, publication.RetrieveOptions{
				User:     publication.UserContext{UserID: userID, System: system},
				MaxBytes: maxBytes,
			})
			if err != nil {
				return err
			}

			if outPath != "" {
				data, err := base64.StdEncoding.DecodeString(file.ContentBase64)
				if err != nil {
					return fmt.Errorf("decode file content: %w", err)
				}
				if err := os.WriteFile(outPath, data, 0o644); err != nil {
					return fmt.Errorf("write %s: %w", outPath, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", outPath, file.SizeBytes)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), file.ContentBase64)
			return nil
		},
	}

	cmd.Flags().StringVar(&kindFlag, "kind", "primary", "File kind (primary, welsh, tabular)")
	cmd.Flags().Int64Var(&maxBytes, "max-bytes", 0, "Reject files larger than this size (0 = no limit)")
	cmd.Flags().StringVar(&userID, "user", "", "Requesting user id for the authorization check")
	cmd.Flags().BoolVar(&system, "system", false, "Bypass the authorization check as a system caller")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Decode and write the file here instead of printing base64")
	return cmd
}
