package globe

import (
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme accepts "light" or "dark" in any case.
func ParseTheme(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeLight:
		return ThemeLight, nil
	case ThemeDark:
		return ThemeDark, nil
	}
	return "", fmt.Errorf("unknown theme %q", s)
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

type Palette struct {
	Background color.NRGBA
	Outline    color.NRGBA
	Graticule  color.NRGBA
	Land       color.NRGBA
	Dot        color.NRGBA
	Marker     color.NRGBA
	Text       color.NRGBA
}

// PaletteFor returns the colors of a theme. Anything but dark is light.
func PaletteFor(t Theme) Palette {
	if t == ThemeDark {
		return Palette{
			Background: hex("#0b0f14"),
			Outline:    hex("#ffffff"),
			Graticule:  hex("#ffffff"),
			Land:       hex("#ffffff"),
			Dot:        hex("#999999"),
			Marker:     hex("#ff3b3b"),
			Text:       hex("#ffffff"),
		}
	}
	return Palette{
		Background: hex("#ffffff"),
		Outline:    hex("#4a4a4a"),
		Graticule:  hex("#9ca3af"),
		Land:       hex("#4a4a4a"),
		Dot:        hex("#4b5563"),
		Marker:     hex("#ff3b3b"),
		Text:       hex("#000000"),
	}
}

// Hex formats c as #rrggbb.
func Hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func hex(s string) color.NRGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}
