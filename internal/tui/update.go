package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"globeview/internal/globe"
)

// degrees per arrow key press
const nudgeStep = 5.0

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.layout()
		m.render()

	case frameMsg:
		if !m.anim.Accept(msg.gen) {
			return m, nil
		}
		m.ctl.Tick()
		m.render()
		return m, m.tick(msg.gen)

	case resumeMsg:
		if m.ctl.Resume(msg.gen) {
			m.render()
		}

	case landLoadedMsg:
		m.loading = false
		m.scene.SetLand(msg.land, m.opts.DotSpacing)
		m.status = m.tr.Tf("status.loaded", len(msg.land.Features), len(m.scene.Dots))
		m.render()

	case landErrMsg:
		m.loading = false
		m.loadErr = msg.err
		m.status = m.tr.T("globe.error.land")
		// nothing is drawn over the error panel
		m.anim.Stop()
		log.Error().Err(msg.err).Msg("Failed to load land data")

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showMarkers {
		switch {
		case key.Matches(msg, m.keys.Quit):
		case key.Matches(msg, m.keys.Markers), msg.String() == "esc":
			m.showMarkers = false
			return m, nil
		default:
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.teardown()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Theme):
		m.theme = m.theme.Toggle()
		m.scene.Palette = globe.PaletteFor(m.theme)
		m.status = m.tr.Tf("status.theme", m.theme)
		m.savePrefs()
	case key.Matches(msg, m.keys.Language):
		m.tr.Toggle()
		m.keys = newKeyMap(m.tr)
		m.status = m.tr.T("status.language")
		m.savePrefs()
	case key.Matches(msg, m.keys.Help):
		m.helpVisible = !m.helpVisible
		m.help.ShowAll = m.helpVisible
		m.layout()
	case key.Matches(msg, m.keys.Markers):
		m.showMarkers = true
	case key.Matches(msg, m.keys.Layer1):
		m.scene.Layers.Graticule = !m.scene.Layers.Graticule
		m.status = m.layersStatus()
	case key.Matches(msg, m.keys.Layer2):
		m.scene.Layers.Outlines = !m.scene.Layers.Outlines
		m.status = m.layersStatus()
	case key.Matches(msg, m.keys.Layer3):
		m.scene.Layers.Dots = !m.scene.Layers.Dots
		m.status = m.layersStatus()
	case key.Matches(msg, m.keys.ZoomIn):
		m.ctl.Wheel(-1)
		m.status = m.tr.Tf("status.zoom", m.ctl.State().ScaleFactor())
	case key.Matches(msg, m.keys.ZoomOut):
		m.ctl.Wheel(1)
		m.status = m.tr.Tf("status.zoom", m.ctl.State().ScaleFactor())
	case key.Matches(msg, m.keys.Pause):
		on := !m.ctl.State().AutoRotate
		m.ctl.SetAutoRotate(on)
		if on {
			m.status = m.tr.T("status.resumed")
		} else {
			m.status = m.tr.T("status.paused")
		}
	case key.Matches(msg, m.keys.Up):
		m.ctl.Nudge(0, -nudgeStep)
	case key.Matches(msg, m.keys.Down):
		m.ctl.Nudge(0, nudgeStep)
	case key.Matches(msg, m.keys.Left):
		m.ctl.Nudge(-nudgeStep, 0)
	case key.Matches(msg, m.keys.Right):
		m.ctl.Nudge(nudgeStep, 0)
	default:
		return m, nil
	}
	m.render()
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	mx, my, inside := m.toMicro(msg.X, msg.Y)
	m.hover(mx, my, inside)

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			if !inside || m.canvas == nil {
				return m, nil
			}
			m.session = m.ctl.BeginDrag(mx, my)
		case tea.MouseButtonWheelUp:
			m.ctl.Wheel(-1)
		case tea.MouseButtonWheelDown:
			m.ctl.Wheel(1)
		default:
			return m, nil
		}
		m.render()

	case tea.MouseActionMotion:
		if m.session == nil {
			return m, nil
		}
		m.session.Move(mx, my)
		m.render()

	case tea.MouseActionRelease:
		if m.session == nil {
			return m, nil
		}
		gen := m.session.Gen()
		m.session.Close()
		m.session = nil
		return m, tea.Tick(globe.ResumeDelay, func(time.Time) tea.Msg { return resumeMsg{gen: gen} })
	}
	return m, nil
}

// toMicro maps a terminal cell to the center of its micro-pixel block.
func (m Model) toMicro(x, y int) (float64, float64, bool) {
	w, h := m.globeArea()
	cx, cy := x, y-headerHeight
	inside := cx >= 0 && cx < w && cy >= 0 && cy < h
	return float64(cx*2) + 1, float64(cy*4) + 2, inside
}

func (m *Model) hover(mx, my float64, inside bool) {
	m.hoverHasGeo = false
	if !inside || !m.scene.Loaded() {
		return
	}
	lon, lat, ok := m.ctl.State().Projection().Invert(mx, my)
	if ok {
		m.hoverHasGeo, m.hoverLon, m.hoverLat = true, lon, lat
	}
}

func (m Model) layersStatus() string {
	l := m.scene.Layers
	return m.tr.Tf("status.layers", l.Graticule, l.Outlines, l.Dots)
}

func (m Model) savePrefs() {
	if m.opts.OnPrefs != nil {
		m.opts.OnPrefs(m.theme, m.tr.Language())
	}
}
