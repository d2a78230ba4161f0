package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"gotransect/internal/geom"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		if m.pasteMode {
			switch msg.String() {
			case "esc":
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			case "enter":
				text := strings.TrimSpace(m.ta.Value())
				if text == "" {
					m.status = "paste: empty"
					return m, nil
				}
				line, err := geom.ParseXY(text)
				if err != nil {
					m.status = err.Error()
					return m, nil
				}
				m.center = line
				m.zoom = 1.0
				m.offsetX, m.offsetY = 0, 0
				m.regenerate()
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		if m.showTable {
			switch msg.String() {
			case "esc", "t", "q":
				m.showTable = false
				return m, nil
			}
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "1":
			m.showCenter = !m.showCenter
		case "2":
			m.showSamples = !m.showSamples
		case "3":
			m.showTransects = !m.showTransects
		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= 1.2
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= 1.2
			}
		case "r":
			m.zoom = 1.0
			m.offsetX, m.offsetY = 0, 0
			m.status = "view reset"
		case "[":
			m.params.Spacing /= 1.25
			m.regenerate()
		case "]":
			m.params.Spacing *= 1.25
			m.regenerate()
		case "{":
			m.params.Length /= 1.25
			m.regenerate()
		case "}":
			m.params.Length *= 1.25
			m.regenerate()
		case "<":
			m.params.Resolution /= 1.25
			m.regenerate()
		case ">":
			m.params.Resolution *= 1.25
			m.regenerate()
		case "p":
			m.pasteMode = true
			m.ta.SetValue("")
			m.ta.Focus()
			m.status = "paste mode"
		case "t":
			m.showTable = !m.showTable
		case "h":
			m.helpVisible = !m.helpVisible
		case "up":
			m.offsetY -= 1
		case "down":
			m.offsetY += 1
		case "left":
			m.offsetX -= 2
		case "right":
			m.offsetX += 2
		}
	case tea.MouseMsg:
		// map the hovered cell back to map units for the footer readout;
		// the layout math must match View
		headerHeight := 1
		footerHeight := 2
		contentHeight := m.height - headerHeight - footerHeight
		if contentHeight < 4 {
			contentHeight = 4
		}
		m.mapW = max(10, m.width)
		m.mapH = max(4, contentHeight)
		cx := msg.X
		cy := msg.Y - headerHeight
		if cx >= 0 && cx < m.mapW && cy >= 0 && cy < m.mapH {
			if x, y, ok := m.cellToWorld(cx, cy, m.mapW, m.mapH); ok {
				m.hovering = true
				m.hoverX, m.hoverY = x, y
				break
			}
		}
		m.hovering = false
	}
	return m, nil
}
