package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"monedero/internal/cli"
	"monedero/internal/common"
	"monedero/internal/ledger"
	"monedero/internal/ofx"
)

func importCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import FILE...",
		Short: "Import transactions from JSON or OFX files",
		Long: `Merge transactions from exported JSON documents (or bank OFX/QFX
statements with --format ofx) into the collection. Records whose ID already
exists are skipped, so re-importing the same file never duplicates anything.
A malformed document is rejected in its entirety.`,
		Example: `  monedero import backup.json
  monedero import --format ofx ~/Downloads/statement_jan.qfx ~/Downloads/statement_feb.qfx`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := expandPatterns(args)
			if err != nil {
				return err
			}

			switch format {
			case "json":
				return runImportJSON(cmd.Context(), files)
			case "ofx":
				return runImportOFX(cmd.Context(), files)
			default:
				return fmt.Errorf("invalid format %q (want json or ofx)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "input format (json, ofx)")
	return cmd
}

// expandPatterns resolves glob patterns and plain paths into a file list.
func expandPatterns(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			if _, err := os.Stat(pattern); err != nil {
				return nil, fmt.Errorf("no files match %s", pattern)
			}
			files = append(files, pattern)
			continue
		}
		files = append(files, matches...)
	}
	return files, nil
}

func runImportJSON(ctx context.Context, files []string) error {
	// The single-file path goes through the ledger's picker so the
	// single-flight import guard is exercised end to end.
	if len(files) == 1 {
		path := files[0]
		l, cleanup, err := openLedger(ctx, ledger.WithPicker(ledger.PickerFunc(
			func(context.Context) ([]byte, error) {
				return os.ReadFile(path)
			})))
		if err != nil {
			return err
		}
		defer cleanup()

		res, err := l.Import(ctx)
		if errors.Is(err, ledger.ErrImportInFlight) {
			return nil
		}
		if err != nil {
			return importError(path, err)
		}
		printImportResult(path, res)
		return nil
	}

	l, cleanup, err := openLedger(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	bar := importProgress(len(files))
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		res, err := l.ImportJSON(ctx, data)
		if err != nil {
			return importError(path, err)
		}
		_ = bar.Add(1)
		printImportResult(path, res)
	}
	return nil
}

func runImportOFX(ctx context.Context, files []string) error {
	l, cleanup, err := openLedger(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	parser := ofx.NewParser()
	bar := importProgress(len(files))

	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", path, err)
		}
		txns, err := parser.ParseFile(f)
		_ = f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		res, err := l.Merge(ctx, txns)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		_ = bar.Add(1)
		printImportResult(path, res)
	}
	return nil
}

// importError keeps the operator-facing message separate from the cause when
// a document is rejected.
func importError(path string, err error) error {
	if errors.Is(err, ledger.ErrInvalidFormat) {
		return common.NewUserError(
			fmt.Sprintf("%s is not a valid transaction export", filepath.Base(path)), err)
	}
	return fmt.Errorf("%s: %w", path, err)
}

func importProgress(total int) *progressbar.ProgressBar {
	if total < 2 {
		return progressbar.DefaultSilent(int64(total))
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Importing files..."),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionClearOnFinish(),
	)
}

func printImportResult(path string, res ledger.ImportResult) {
	fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s: %d added, %d skipped",
		filepath.Base(path), res.Added, res.Skipped)))
}
