package main

import (
	"github.com/spf13/cobra"

	"monedero/internal/tui"
)

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse transactions interactively",
		Long: `Open the interactive transaction browser: day sections with balances,
expandable rows, month navigation and in-place deletion.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, cleanup, err := openLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.Run(l)
		},
	}
}
