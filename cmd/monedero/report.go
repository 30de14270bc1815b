package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"monedero/internal/cli"
	"monedero/internal/config"
	"monedero/internal/report"
	"monedero/internal/share"
)

func reportCmd() *cobra.Command {
	var fromFlag, toFlag, htmlOut string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate a PDF transaction report",
		Long: `Render the transactions in the given period as an HTML document, convert
it to PDF and place it in the share directory. With --html the intermediate
document is written to a file instead and no converter is needed.`,
		Example: `  monedero report
  monedero report --from 2024-01-01 --to 2024-03-31
  monedero report --html /tmp/report.html`,
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

			l, cleanup, err := openLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			document := report.Build(l.Transactions(), report.Options{From: from, To: to})

			if htmlOut != "" {
				if err := os.WriteFile(htmlOut, []byte(document), 0o644); err != nil {
					return fmt.Errorf("failed to write HTML report: %w", err)
				}
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Wrote HTML report to %s", htmlOut)))
				return nil
			}

			printer := &report.ExecPrinter{Binary: viper.GetString("pdf.binary")}
			if !printer.Available() {
				return fmt.Errorf("%w: %s not found in PATH (try --html)",
					report.ErrPDFGeneration, viper.GetString("pdf.binary"))
			}

			pdfPath, err := printer.PrintToFile(cmd.Context(), document)
			if err != nil {
				return err
			}
			defer func() { _ = os.Remove(pdfPath) }()

			sharer := &share.FileSharer{
				Dir:      config.ExpandPath(viper.GetString("share.dir")),
				OpenWith: viper.GetString("share.open_with"),
			}
			if err := sharer.Share(cmd.Context(), pdfPath, "application/pdf"); err != nil {
				return fmt.Errorf("failed to share report: %w", err)
			}

			fmt.Println(cli.FormatSuccess("Report generated"))
			return nil
		},
	}

	cmd.Flags().StringVar(&fromFlag, "from", "", "start date (yyyy-mm-dd, inclusive)")
	cmd.Flags().StringVar(&toFlag, "to", "", "end date (yyyy-mm-dd, inclusive)")
	cmd.Flags().StringVar(&htmlOut, "html", "", "write the HTML document to this path instead of printing a PDF")
	return cmd
}
