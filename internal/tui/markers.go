package tui

import (
	"fmt"
	"math"

	table "github.com/charmbracelet/bubbles/table"

	"globeview/internal/globe"
)

// refreshMarkers rebuilds the markers table for the current rotation and
// language.
func (m *Model) refreshMarkers() {
	proj := m.ctl.State().Projection()
	clon, clat := proj.Center()

	cols := []table.Column{
		{Title: m.tr.T("markers.name"), Width: 24},
		{Title: m.tr.T("markers.lon"), Width: 10},
		{Title: m.tr.T("markers.lat"), Width: 10},
		{Title: m.tr.T("markers.distance"), Width: 8},
		{Title: m.tr.T("markers.visible"), Width: 9},
	}
	rows := make([]table.Row, 0, len(m.scene.Markers))
	for _, mk := range m.scene.Markers {
		vis := m.tr.T("no")
		if proj.Visible(mk.Lon, mk.Lat) {
			vis = m.tr.T("yes")
		}
		rows = append(rows, table.Row{
			m.tr.T("marker." + mk.Name),
			fmt.Sprintf("%.4f", mk.Lon),
			fmt.Sprintf("%.4f", mk.Lat),
			fmt.Sprintf("%.1f", globe.AngularDistance(clon, clat, mk.Lon, mk.Lat)*180/math.Pi),
			vis,
		})
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}

func (m Model) markersWidth() int {
	w := 0
	for _, c := range m.tbl.Columns() {
		w += c.Width + 2
	}
	return w
}
