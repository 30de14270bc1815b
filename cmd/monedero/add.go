package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"monedero/internal/cli"
	"monedero/internal/model"
)

func addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record income or expense transactions",
	}
	cmd.AddCommand(addExpenseCmd())
	cmd.AddCommand(addIncomeCmd())
	return cmd
}

func addExpenseCmd() *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "expense DESCRIPTION AMOUNT",
		Short: "Record a single expense",
		Example: `  monedero add expense "Fuel" 42.50
  monedero add expense "Car wash" 12 --date 2024-01-05`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			date, err := resolveDate(dateFlag)
			if err != nil {
				return err
			}

			l, cleanup, err := openLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			added, err := l.Add(cmd.Context(), model.Transaction{
				Description: args[0],
				Amount:      amount,
				Type:        model.TypeExpense,
				Date:        date,
			})
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded expense %q (%s)",
				added[0].Description, cli.FormatAmount(added[0].SignedAmount()))))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "transaction date (yyyy-mm-dd, default today)")
	return cmd
}

func addIncomeCmd() *cobra.Command {
	var dateFlag string
	var listSources bool

	cmd := &cobra.Command{
		Use:   "income SOURCE=AMOUNT [SOURCE=AMOUNT...]",
		Short: "Record one or more income rows in a single batch",
		Long: `Record income, one row per source, submitted together the way a day's
takings are entered. Sources are free text; the configured income.sources
list is the usual set.`,
		Example: `  monedero add income "Taximeter Card=120.50" "Tips and other=15"
  monedero add income "Taximeter Cash=80" --date 2024-01-05`,
		Args: func(cmd *cobra.Command, args []string) error {
			if list, _ := cmd.Flags().GetBool("list-sources"); list {
				return nil
			}
			return cobra.MinimumNArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if listSources {
				for _, source := range incomeSources() {
					fmt.Println(source)
				}
				return nil
			}

			date, err := resolveDate(dateFlag)
			if err != nil {
				return err
			}

			batch := make([]model.Transaction, 0, len(args))
			for _, arg := range args {
				source, amountStr, ok := strings.Cut(arg, "=")
				if !ok {
					return fmt.Errorf("invalid income row %q, want SOURCE=AMOUNT", arg)
				}
				amount, err := parseAmount(amountStr)
				if err != nil {
					return err
				}
				batch = append(batch, model.Transaction{
					Description: strings.TrimSpace(source),
					Amount:      amount,
					Type:        model.TypeIncome,
					Date:        date,
				})
			}

			l, cleanup, err := openLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			added, err := l.Add(cmd.Context(), batch...)
			if err != nil {
				return err
			}

			var total float64
			for _, txn := range added {
				total += txn.Amount
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %d income rows, total %s",
				len(added), cli.FormatAmount(total))))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "transaction date (yyyy-mm-dd, default today)")
	cmd.Flags().BoolVar(&listSources, "list-sources", false, "print the configured income sources and exit")
	return cmd
}

// incomeSources returns the configured income source presets.
func incomeSources() []string {
	return viper.GetStringSlice("income.sources")
}

func resolveDate(flag string) (time.Time, error) {
	if flag == "" {
		return time.Now(), nil
	}
	return parseDay(flag)
}
