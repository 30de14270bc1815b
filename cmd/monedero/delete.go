package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"monedero/internal/cli"
)

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a transaction by ID",
		Long: `Delete the transaction with the given ID. Deleting an unknown ID is a
no-op, not an error.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, cleanup, err := openLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			before := l.Count()
			if err := l.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}

			if l.Count() == before {
				fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("No transaction with ID %q", args[0])))
			} else {
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted transaction %s", args[0])))
			}
			return nil
		},
	}
}
