package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	table "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"globeview/internal/geom"
	"globeview/internal/globe"
	"globeview/internal/i18n"
)

// LoadFunc fetches the land set.
type LoadFunc func(ctx context.Context) (geom.Land, error)

// Options configure a Model.
type Options struct {
	Theme         globe.Theme
	Lang          i18n.Language
	DotSpacing    float64
	FrameInterval time.Duration
	Load          LoadFunc
	// OnPrefs is called after the theme or language changed.
	OnPrefs func(globe.Theme, i18n.Language)
}

const headerHeight = 1

type Model struct {
	width  int
	height int

	opts Options

	ctl     *globe.Controller
	scene   *globe.Scene
	anim    *globe.Animator
	session *globe.Session
	canvas  *brailleCanvas
	frame   string
	gen     uint64

	tr    *i18n.Translator
	theme globe.Theme
	keys  keyMap
	help  help.Model
	spin  spinner.Model

	loading  bool
	loadErr  error
	noCanvas bool

	helpVisible bool
	status      string

	// hover state
	hoverHasGeo bool
	hoverLon    float64
	hoverLat    float64

	// markers table
	showMarkers bool
	tbl         table.Model

	now func() time.Time
}

func New(opts Options) Model {
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = globe.DefaultFrameInterval
	}
	if opts.DotSpacing <= 0 {
		opts.DotSpacing = geom.DefaultDotSpacing
	}
	if opts.Lang == "" {
		opts.Lang = i18n.English
	}
	if opts.Theme == "" {
		opts.Theme = globe.ThemeLight
	}

	tr := i18n.New(opts.Lang)
	m := Model{
		opts:    opts,
		ctl:     globe.NewController(160, 88),
		scene:   globe.NewScene(opts.Theme),
		anim:    &globe.Animator{},
		tr:      tr,
		theme:   opts.Theme,
		keys:    newKeyMap(tr),
		help:    help.New(),
		spin:    spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(titleStyle)),
		loading: opts.Load != nil,
		now:     time.Now,
	}
	m.scene.Label = func(mk globe.Marker) string { return tr.T("marker." + mk.Name) }
	m.status = tr.T("status.ready")
	m.gen = m.anim.Start()
	m.tbl = table.New(table.WithFocused(true), table.WithHeight(len(globe.Locations)+1))
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.tick(m.gen)}
	if m.loading {
		cmds = append(cmds, m.spin.Tick, m.loadCmd())
	}
	return tea.Batch(cmds...)
}

type frameMsg struct{ gen uint64 }

type resumeMsg struct{ gen uint64 }

type landLoadedMsg struct{ land geom.Land }

type landErrMsg struct{ err error }

func (m Model) tick(gen uint64) tea.Cmd {
	return tea.Tick(m.opts.FrameInterval, func(time.Time) tea.Msg { return frameMsg{gen: gen} })
}

func (m Model) loadCmd() tea.Cmd {
	load := m.opts.Load
	return func() tea.Msg {
		land, err := load(context.Background())
		if err != nil {
			return landErrMsg{err: err}
		}
		return landLoadedMsg{land: land}
	}
}

// globeArea returns the size of the globe viewport in cells.
func (m Model) globeArea() (int, int) {
	return m.width, m.height - headerHeight - m.footerHeight()
}

// footerHeight is the status line plus one or three help rows.
func (m Model) footerHeight() int {
	if m.help.ShowAll {
		return 4
	}
	return 2
}

// Stopped reports whether teardown ran.
func (m Model) Stopped() bool { return m.anim.Stopped() }
