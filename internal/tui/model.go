// Package tui implements the interactive grouped transaction list: one
// collapsible section per calendar day inside the selected month, with the
// month's balance in the header.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"monedero/internal/cli"
	"monedero/internal/ledger"
	"monedero/internal/sections"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(cli.PrimaryColor).
			Padding(0, 1)

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(cli.PrimaryColor)

	rowStyle = lipgloss.NewStyle().PaddingLeft(4)
)

// entry is one selectable line: a section header (row == -1) or a transaction
// row inside an expanded section.
type entry struct {
	section int
	row     int
}

// Model is the Bubble Tea model for the grouped list view.
type Model struct {
	ledger   *ledger.Ledger
	keys     KeyMap
	help     help.Model
	expanded sections.Expanded
	secs     []sections.Section
	entries  []entry
	status   string
	month    time.Time
	cursor   int
	width    int
	height   int
	showHelp bool
}

// New creates the list view over l, showing the month containing now.
func New(l *ledger.Ledger, now time.Time) Model {
	m := Model{
		ledger:   l,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		expanded: sections.Expanded{},
		month:    time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()),
	}
	m.reload()
	return m
}

// reload recomputes sections and the flattened entry list from the ledger.
func (m *Model) reload() {
	filtered := sections.Filter(m.ledger.Transactions(), nil, nil, m.month)
	m.secs = sections.Group(filtered)

	m.entries = m.entries[:0]
	for si, sec := range m.secs {
		m.entries = append(m.entries, entry{section: si, row: -1})
		if m.expanded[sec.ID] {
			for ri := range sec.Rows {
				m.entries = append(m.entries, entry{section: si, row: ri})
			}
		}
	}
	if m.cursor >= len(m.entries) {
		m.cursor = len(m.entries) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.PrevMonth):
			m.month = m.month.AddDate(0, -1, 0)
			m.cursor = 0
			m.reload()

		case key.Matches(msg, m.keys.NextMonth):
			m.month = m.month.AddDate(0, 1, 0)
			m.cursor = 0
			m.reload()

		case key.Matches(msg, m.keys.Toggle):
			if e, ok := m.current(); ok {
				m.expanded.Toggle(m.secs[e.section].ID)
				m.reload()
			}

		case key.Matches(msg, m.keys.Delete):
			if e, ok := m.current(); ok && e.row >= 0 {
				txn := m.secs[e.section].Rows[e.row]
				if err := m.ledger.Delete(context.Background(), txn.ID); err != nil {
					m.status = cli.FormatError(err.Error())
				} else {
					m.status = cli.FormatSuccess(fmt.Sprintf("Deleted %q", txn.Description))
				}
				m.reload()
			}

		case key.Matches(msg, m.keys.Refresh):
			m.reload()

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
		}
	}

	return m, nil
}

func (m *Model) current() (entry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return entry{}, false
	}
	return m.entries[m.cursor], true
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	balance := sections.MonthBalance(m.ledger.Transactions(), m.month)
	header := fmt.Sprintf("%s  %s", m.month.Format("January 2006"), cli.FormatAmount(balance))
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n\n")

	if len(m.entries) == 0 {
		b.WriteString(cli.SubtleStyle.Render("No transactions this month"))
		b.WriteString("\n")
	}

	for i, e := range m.entries {
		prefix := "  "
		if i == m.cursor {
			prefix = cursorStyle.Render("> ")
		}

		if e.row < 0 {
			sec := m.secs[e.section]
			marker := "▸"
			if m.expanded[sec.ID] {
				marker = "▾"
			}
			line := fmt.Sprintf("%s %s  %s", marker, cli.SectionStyle.Render(sec.Title), cli.FormatAmount(sec.Balance))
			b.WriteString(prefix + line + "\n")
			continue
		}

		txn := m.secs[e.section].Rows[e.row]
		line := fmt.Sprintf("%-30s %s  %s",
			truncate(txn.Description, 30),
			cli.SubtleStyle.Render(txn.Date.Format("15:04")),
			cli.FormatAmount(txn.SignedAmount()))
		b.WriteString(prefix + rowStyle.Render(line) + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	b.WriteString("\n")
	if m.showHelp {
		b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	} else {
		b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	}

	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

// Run starts the interactive list view.
func Run(l *ledger.Ledger) error {
	p := tea.NewProgram(New(l, time.Now()), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
