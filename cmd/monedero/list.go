package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"monedero/internal/cli"
	"monedero/internal/sections"
)

func listCmd() *cobra.Command {
	var fromFlag, toFlag, monthFlag string
	var expand bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show transactions grouped by day",
		Long: `Show the collection grouped into day sections, newest first, each with
its own balance. With --from/--to the inclusive date window applies;
otherwise a single month is shown (default: the current one).`,
		Example: `  monedero list
  monedero list --month 2024-01 --expand
  monedero list --from 2024-01-01 --to 2024-03-31`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			from, err := parseDayFlag(fromFlag, false)
			if err != nil {
				return err
			}
			to, err := parseDayFlag(toFlag, true)
			if err != nil {
				return err
			}

			month := time.Now()
			if monthFlag != "" {
				month, err = time.Parse("2006-01", monthFlag)
				if err != nil {
					return fmt.Errorf("invalid month %q, want yyyy-mm", monthFlag)
				}
			}

			l, cleanup, err := openLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			txns := l.Transactions()
			filtered := sections.Filter(txns, from, to, month)
			secs := sections.Group(filtered)

			if from == nil && to == nil {
				fmt.Println(cli.FormatTitle(fmt.Sprintf("%s  %s",
					month.Format("January 2006"),
					cli.FormatAmount(sections.MonthBalance(txns, month)))))
			} else {
				fmt.Println(cli.FormatTitle(fmt.Sprintf("%s to %s",
					boundLabel(from, "beginning"), boundLabel(to, "end"))))
			}

			if len(secs) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No transactions"))
				return nil
			}

			for _, sec := range secs {
				fmt.Printf("%s  %s\n", cli.SectionStyle.Render(sec.Title), cli.FormatAmount(sec.Balance))
				if !expand {
					continue
				}
				for _, txn := range sec.Rows {
					fmt.Printf("    %-32s %s  %s  %s\n",
						txn.Description,
						cli.SubtleStyle.Render(txn.Date.Format("15:04")),
						cli.FormatAmount(txn.SignedAmount()),
						cli.SubtleStyle.Render(txn.ID))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&fromFlag, "from", "", "start date (yyyy-mm-dd, inclusive)")
	cmd.Flags().StringVar(&toFlag, "to", "", "end date (yyyy-mm-dd, inclusive)")
	cmd.Flags().StringVar(&monthFlag, "month", "", "month to show when no range is set (yyyy-mm)")
	cmd.Flags().BoolVar(&expand, "expand", false, "show each day's rows, not just its balance")
	return cmd
}

func boundLabel(t *time.Time, fallback string) string {
	if t == nil {
		return fallback
	}
	return t.Format("02/01/2006")
}
