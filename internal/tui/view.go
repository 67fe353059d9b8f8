package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/moodcount/internal/model"
)

const (
	title        = "Count your recorded days. This is to manually import from Samsung Health / Mood Check-in"
	recentWidth  = 50
	recentJoiner = ", "
)

var (
	categoryStyles = [model.CategoryCount]lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
	titleStyle    = lipgloss.NewStyle().Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	positionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

// View implements tea.Model.
func (m *Model) View() string {
	sections := []string{
		titleStyle.Render(title),
		m.help.View(m.keys),
		"",
		m.renderCounts(),
		"",
		mutedStyle.Render(m.renderRecent()),
		positionStyle.Render(m.renderPosition()),
	}
	if status := m.renderStatus(); status != "" {
		sections = append(sections, status)
	}
	view := strings.Join(sections, "\n")
	if m.width > 0 {
		view = lipgloss.NewStyle().MaxWidth(m.width).Render(view)
	}
	return view
}

func (m *Model) renderCounts() string {
	labelWidth := 0
	for _, c := range model.Categories {
		if w := runewidth.StringWidth(c.String()); w > labelWidth {
			labelWidth = w
		}
	}
	counts := m.log.Counts()
	lines := make([]string, 0, model.CategoryCount)
	for i, c := range model.Categories {
		line := fmt.Sprintf("%s: %d", runewidth.FillRight(c.String(), labelWidth), counts.Get(c))
		lines = append(lines, categoryStyles[i].Render(line))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderRecent() string {
	recent := m.log.RecentWindow(m.config.Recent)
	names := make([]string, len(recent))
	for i, c := range recent {
		names[i] = c.String()
	}
	return runewidth.Truncate(strings.Join(names, recentJoiner), recentWidth, "")
}

func (m *Model) renderPosition() string {
	return fmt.Sprintf("--> History: %d / %d", m.log.Cursor(), m.log.Len())
}

func (m *Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return errorStyle.Render(m.status)
	}
	return statusStyle.Render(m.status)
}
