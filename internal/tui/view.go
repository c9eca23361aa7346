package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	contentWidth := m.width
	gw, gh := m.globeArea()
	gh = max(0, gh)

	// Header
	header := titleStyle.Render(m.tr.T("app.title"))
	header = lipgloss.NewStyle().Width(contentWidth).MaxHeight(headerHeight).Render(header)

	var body string
	switch {
	case m.loadErr != nil:
		box := errorStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			errTitle.Render(m.tr.T("globe.error.title")),
			m.tr.T("globe.error.land"),
		))
		body = lipgloss.Place(gw, gh, lipgloss.Center, lipgloss.Center, box)
	case m.loading:
		body = lipgloss.Place(gw, gh, lipgloss.Center, lipgloss.Center,
			m.spin.View()+" "+m.tr.T("globe.loading"))
	case m.noCanvas:
		body = lipgloss.NewStyle().Width(gw).Height(gh).Render("")
	case m.showMarkers:
		box := boxStyle.Width(min(gw, m.markersWidth()+4)).Render(m.tbl.View())
		body = lipgloss.Place(gw, gh, lipgloss.Center, lipgloss.Center, box)
	default:
		body = m.frame
	}

	// Footer / help
	status := dimStyle.Render(" " + m.status + " ")
	coords := ""
	if m.hoverHasGeo {
		coords = dimStyle.Render(fmt.Sprintf("  lon=%.5f lat=%.5f  ", m.hoverLon, m.hoverLat))
	}
	spacerW := max(0, contentWidth-lipgloss.Width(status)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	statusLine := lipgloss.JoinHorizontal(lipgloss.Bottom, status, right)
	helpLine := " " + m.help.View(m.keys)
	footer := lipgloss.NewStyle().Width(contentWidth).Render(lipgloss.JoinVertical(lipgloss.Left, statusLine, helpLine))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).MaxHeight(m.height).Render(ui)
}
