// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	// PrimaryColor is the main theme color (teal-blue).
	PrimaryColor = lipgloss.Color("#2C7A9B")
	// IncomeColor marks income amounts.
	IncomeColor = lipgloss.Color("#4CAF50") // Sage green
	// ExpenseColor marks expense amounts.
	ExpenseColor = lipgloss.Color("#CF6679") // Muted rose
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#5A6677") // Slate gray

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SectionStyle formats day-section headers.
	SectionStyle = lipgloss.NewStyle().
			Bold(true)

	// IncomeStyle formats positive amounts.
	IncomeStyle = lipgloss.NewStyle().
			Foreground(IncomeColor)

	// ExpenseStyle formats negative amounts.
	ExpenseStyle = lipgloss.NewStyle().
			Foreground(ExpenseColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ExpenseColor)

	// SuccessStyle formats success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(IncomeColor)
)

// Icons.
const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
)

// FormatAmount renders a signed euro amount colored by direction.
func FormatAmount(v float64) string {
	if v >= 0 {
		return IncomeStyle.Render(fmt.Sprintf("+€%.2f", v))
	}
	return ExpenseStyle.Render(fmt.Sprintf("-€%.2f", -v))
}

// FormatSuccess formats a success message with icon.
func FormatSuccess(message string) string {
	return SuccessStyle.Render(SuccessIcon + " " + message)
}

// FormatError formats an error message with icon.
func FormatError(message string) string {
	return ErrorStyle.Render(ErrorIcon + " " + message)
}

// FormatTitle formats a title.
func FormatTitle(title string) string {
	return TitleStyle.Render(title)
}
