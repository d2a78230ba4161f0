package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	headerHeight := 1
	footerHeight := 2
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 4 {
		contentHeight = 4
	}
	contentWidth := max(10, m.width)

	header := titleStyle.Render(" gotransect ─ channel cross-section preview ")
	header = lipgloss.NewStyle().Width(contentWidth).Render(header)

	m.mapW = contentWidth
	m.mapH = max(4, contentHeight)

	var body string
	switch {
	case m.showTable:
		m.tbl.SetHeight(min(contentHeight-2, 20))
		box := boxStyle.Render(m.tbl.View())
		body = lipgloss.Place(contentWidth, contentHeight, lipgloss.Center, lipgloss.Center, box)
	case m.pasteMode:
		m.ta.SetWidth(min(m.mapW, 72))
		m.ta.SetHeight(min(m.mapH, 12))
		body = lipgloss.Place(contentWidth, contentHeight, lipgloss.Center, lipgloss.Center, m.ta.View())
	default:
		plot := m.renderCanvas(m.mapW, m.mapH)
		body = lipgloss.NewStyle().Width(contentWidth).Height(contentHeight).Render(plot)
	}

	status := dimStyle.Render(" " + m.status + " ")
	help := m.renderHelp()
	coords := ""
	if m.hovering {
		coords = dimStyle.Render(fmt.Sprintf("  x=%.2f y=%.2f  ", m.hoverX, m.hoverY))
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, help)
	spacerW := max(0, contentWidth-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	footer := lipgloss.NewStyle().Width(contentWidth).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"↑↓←→ pan",
		"+/- zoom",
		"[/] spacing",
		"{/} length",
		"</> resolution",
		"1/2/3 layers",
		"p paste",
		"t table",
		"r reset",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
