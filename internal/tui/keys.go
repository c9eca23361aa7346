package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"globeview/internal/i18n"
)

type keyMap struct {
	Rotate   key.Binding
	ZoomIn   key.Binding
	ZoomOut  key.Binding
	Pause    key.Binding
	Theme    key.Binding
	Language key.Binding
	Markers  key.Binding
	Layer1   key.Binding
	Layer2   key.Binding
	Layer3   key.Binding
	Help     key.Binding
	Quit     key.Binding

	Up, Down, Left, Right key.Binding
}

// newKeyMap builds the bindings with help text in the translator's
// language.
func newKeyMap(tr *i18n.Translator) keyMap {
	return keyMap{
		Rotate:   key.NewBinding(key.WithKeys("up", "down", "left", "right"), key.WithHelp("↑↓←→", tr.T("help.rotate"))),
		ZoomIn:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", tr.T("help.zoom"))),
		ZoomOut:  key.NewBinding(key.WithKeys("-", "_")),
		Pause:    key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", tr.T("help.pause"))),
		Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", tr.T("help.theme"))),
		Language: key.NewBinding(key.WithKeys("L"), key.WithHelp("L", tr.T("help.language"))),
		Markers:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m", tr.T("help.markers"))),
		Layer1:   key.NewBinding(key.WithKeys("1"), key.WithHelp("1/2/3", tr.T("help.layers"))),
		Layer2:   key.NewBinding(key.WithKeys("2")),
		Layer3:   key.NewBinding(key.WithKeys("3")),
		Help:     key.NewBinding(key.WithKeys("h"), key.WithHelp("h", tr.T("help.help"))),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", tr.T("help.quit"))),

		Up:    key.NewBinding(key.WithKeys("up")),
		Down:  key.NewBinding(key.WithKeys("down")),
		Left:  key.NewBinding(key.WithKeys("left")),
		Right: key.NewBinding(key.WithKeys("right")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Rotate, k.ZoomIn, k.Pause, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Rotate, k.ZoomIn, k.Pause},
		{k.Theme, k.Language, k.Markers},
		{k.Layer1, k.Help, k.Quit},
	}
}
