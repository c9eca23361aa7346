package tui

import (
	"github.com/rs/zerolog/log"

	"globeview/internal/globe"
)

// layout sizes the canvas and controller to the terminal.
func (m *Model) layout() {
	w, h := m.globeArea()
	c, err := newBrailleCanvas(w, h, m.scene.Palette.Background)
	if err != nil {
		if !m.noCanvas {
			log.Warn().Int("width", m.width).Int("height", m.height).Err(err).Msg("Globe area too small")
		}
		m.canvas, m.noCanvas = nil, true
		m.frame = ""
		return
	}
	m.canvas, m.noCanvas = c, false
	m.ctl.Resize(c.Size())
}

// render draws the current state into the cached frame.
func (m *Model) render() {
	if m.canvas == nil || m.loadErr != nil {
		return
	}
	m.canvas.setBackground(m.scene.Palette.Background)
	globe.Render(m.ctl.State(), m.scene, m.canvas, m.now())
	m.frame = m.canvas.render()
	m.anim.Rendered()
	if m.showMarkers {
		m.refreshMarkers()
	}
}

// teardown ends the frame loop and any open drag.
func (m *Model) teardown() {
	m.anim.Stop()
	if m.session != nil {
		m.session.Close()
		m.session = nil
	}
}
