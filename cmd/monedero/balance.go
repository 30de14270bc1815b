package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"monedero/internal/cli"
)

func balanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Print the balance over the whole collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, cleanup, err := openLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			fmt.Printf("%s  (%d transactions)\n", cli.FormatAmount(l.Balance()), l.Count())
			return nil
		},
	}
}
