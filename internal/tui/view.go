package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/nkzrv/cyberdeck/internal/domain"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Jacking in..."
	}
	sections := []string{
		m.renderHeader(),
		m.rule(strings.ToUpper(string(m.view))),
		m.renderPane(),
		m.rule("CONSOLE"),
		m.transcript.View(),
		m.renderPrompt(),
		m.renderStatus(),
	}
	return strings.Join(sections, "\n")
}

func (m Model) renderHeader() string {
	title := lipgloss.NewStyle().
		Background(m.pal.Accent).
		Foreground(m.pal.HeaderForeground).
		Bold(true).
		Render(" CYBERDECK ")

	active := lipgloss.NewStyle().Foreground(m.pal.Accent).Bold(true)
	inactive := lipgloss.NewStyle().Foreground(m.pal.FaintText)

	tabs := make([]string, 0, len(domain.Views()))
	for _, view := range domain.Views() {
		name := strings.ToUpper(string(view))
		if view == m.view {
			tabs = append(tabs, active.Render(name))
		} else {
			tabs = append(tabs, inactive.Render(name))
		}
	}
	return title + "  " + strings.Join(tabs, "  ")
}

// rule draws a labeled horizontal divider across the full width.
func (m Model) rule(label string) string {
	text := "-- " + label + " "
	if fill := m.width - len(text); fill > 0 {
		text += strings.Repeat("-", fill)
	}
	return lipgloss.NewStyle().Foreground(m.pal.AccentDim).Render(text)
}

// renderPane prints the data pane padded to its fixed row count. When
// the content overflows, the last row becomes an overflow marker; the
// console commands are the way to page through full listings.
func (m Model) renderPane() string {
	style := lipgloss.NewStyle().Foreground(m.pal.NormalText)
	rows := make([]string, m.paneRows)
	for i := 0; i < m.paneRows; i++ {
		if i < len(m.paneLines) {
			rows[i] = style.Render(" " + m.paneLines[i])
		}
	}
	if len(m.paneLines) > m.paneRows {
		marker := fmt.Sprintf(" +%d more", len(m.paneLines)-m.paneRows+1)
		rows[m.paneRows-1] = lipgloss.NewStyle().Foreground(m.pal.FaintText).Render(marker)
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderPrompt() string {
	if m.busy {
		return m.input.View() + " " + m.spin.View()
	}
	return m.input.View()
}

func (m Model) renderStatus() string {
	left := lipgloss.NewStyle().
		Background(m.pal.StatusBackground).
		Foreground(m.pal.StatusForeground)
	right := lipgloss.NewStyle().
		Background(m.pal.StatusBackground).
		Foreground(m.pal.Accent)

	help := m.helpLine()

	var trailer string
	if timer, ok := m.deps.Console.Session().Timer(); ok {
		trailer = fmt.Sprintf("REC %s %dm", timer.Activity, timer.ElapsedMinutes(m.deps.Clock.Now()))
	}
	if m.notice != "" {
		if trailer != "" {
			trailer += "  "
		}
		trailer += m.notice
	}

	gap := m.width - lipgloss.Width(help) - lipgloss.Width(trailer) - 2
	if gap < 1 {
		gap = 1
	}
	return left.Render(" "+help+strings.Repeat(" ", gap)) + right.Render(trailer+" ")
}

func (m Model) helpLine() string {
	bindings := []key.Binding{m.keys.Submit, m.keys.RecallPrev, m.keys.ClearScreen, m.keys.CopyOutput, m.keys.Quit}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, "  ")
}
