package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"monedero/internal/cli"
)

func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Export all transactions as JSON and share the file",
		Long: `Serialize the whole collection to a pretty-printed JSON file and hand it
to the share directory. Fails when the collection is empty.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, cleanup, err := openLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			path, err := l.Export(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Exported %d transactions (%s)", l.Count(), path)))
			return nil
		},
	}
}
