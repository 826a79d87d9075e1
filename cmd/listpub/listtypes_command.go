package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"listpub/internal/listtype"
)

func newListTypesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list-types",
		Short: "Show the supported list types and their capabilities",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(listtype.All()))
			for _, lt := range listtype.All() {
				strategy, ok := ctx.reg.Lookup(lt)
				rendered := "no"
				summarised := "no"
				if ok {
					rendered = "yes"
					if strategy.Summary != nil {
						summarised = "yes"
					}
				}
				welsh := "no"
				if lt.WelshDocument() {
					welsh = "yes"
				}
				rows = append(rows, []string{
					string(lt),
					lt.FriendlyName(),
					rendered,
					summarised,
					welsh,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderCLITable(
				[]string{"List Type", "Name", "Rendered", "Summarised", "Welsh Doc"},
				rows,
			))
			return nil
		},
	}
}
