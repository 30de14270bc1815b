package report

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// ErrPDFGeneration means the print-to-file step failed.
var ErrPDFGeneration = errors.New("failed to render PDF report")

// Printer renders a report document to a PDF file and returns its path.
type Printer interface {
	PrintToFile(ctx context.Context, document string) (string, error)
}

// ExecPrinter shells out to an HTML-to-PDF converter (wkhtmltopdf by
// default), the local stand-in for a platform print facility.
type ExecPrinter struct {
	// Binary is the converter executable. Empty means "wkhtmltopdf".
	Binary string
}

func (p *ExecPrinter) binary() string {
	if p.Binary != "" {
		return p.Binary
	}
	return "wkhtmltopdf"
}

// Available reports whether the converter binary can be found.
func (p *ExecPrinter) Available() bool {
	_, err := exec.LookPath(p.binary())
	return err == nil
}

// PrintToFile writes document to a transient HTML file and converts it.
func (p *ExecPrinter) PrintToFile(ctx context.Context, document string) (string, error) {
	htmlFile, err := os.CreateTemp("", "monedero-report-*.html")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	htmlPath := htmlFile.Name()
	defer func() { _ = os.Remove(htmlPath) }()

	if _, err := htmlFile.WriteString(document); err != nil {
		_ = htmlFile.Close()
		return "", fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	if err := htmlFile.Close(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdfFile, err := os.CreateTemp("", "monedero-report-*.pdf")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	pdfPath := pdfFile.Name()
	if err := pdfFile.Close(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	cmd := exec.CommandContext(ctx, p.binary(), "--quiet", htmlPath, pdfPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		_ = os.Remove(pdfPath)
		return "", fmt.Errorf("%w: %v: %s", ErrPDFGeneration, err, out)
	}

	return pdfPath, nil
}
