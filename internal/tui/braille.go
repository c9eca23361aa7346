package tui

import (
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"globeview/internal/globe"
)

// brailleCanvas is a globe.Canvas over terminal cells. Each cell holds a 2x4
// grid of micro-pixels and a single foreground color; text replaces whole
// cells.
type brailleCanvas struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
	fg   [][]color.NRGBA
	text [][]rune
	bg   color.NRGBA
}

func newBrailleCanvas(w, h int, bg color.NRGBA) (*brailleCanvas, error) {
	if w <= 0 || h <= 0 {
		return nil, globe.ErrCanvasUnavailable
	}
	b := &brailleCanvas{w: w, h: h, bg: bg}
	b.m = make([][]uint8, h)
	b.fg = make([][]color.NRGBA, h)
	b.text = make([][]rune, h)
	for i := range b.m {
		b.m[i] = make([]uint8, w)
		b.fg[i] = make([]color.NRGBA, w)
		b.text[i] = make([]rune, w)
	}
	return b, nil
}

// Size is in micro-pixels.
func (b *brailleCanvas) Size() (float64, float64) {
	return float64(b.w * 2), float64(b.h * 4)
}

func (b *brailleCanvas) Clear() {
	for y := range b.m {
		clear(b.m[y])
		clear(b.fg[y])
		clear(b.text[y])
	}
}

func (b *brailleCanvas) setBackground(bg color.NRGBA) { b.bg = bg }

var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleCanvas) setPixel(mx, my int, c color.NRGBA) {
	if mx < 0 || my < 0 {
		return
	}
	cx, cy := mx/2, my/4
	if cy >= b.h || cx >= b.w {
		return
	}
	b.m[cy][cx] |= dotBits[mx%2][my%4]
	b.fg[cy][cx] = c
}

// 2x2 ordered dither thresholds for translucent fills
var bayer = [2][2]float64{{0.125, 0.625}, {0.875, 0.375}}

func (b *brailleCanvas) FillCircle(cx, cy, r float64, p globe.Paint) {
	c := b.blend(p)
	x0, x1 := int(math.Floor(cx-r)), int(math.Ceil(cx+r))
	y0, y1 := int(math.Floor(cy-r)), int(math.Ceil(cy+r))
	hit := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx, dy := float64(x)+0.5-cx, float64(y)+0.5-cy
			if dx*dx+dy*dy > r*r {
				continue
			}
			hit = true
			if p.Alpha < 1 && bayer[abs(y)%2][abs(x)%2] >= p.Alpha {
				continue
			}
			b.setPixel(x, y, c)
		}
	}
	// small dots still leave a mark
	if !hit && p.Alpha >= 0.5 {
		b.setPixel(int(math.Floor(cx)), int(math.Floor(cy)), c)
	}
}

func (b *brailleCanvas) StrokeCircle(cx, cy, r float64, p globe.Paint) {
	if r <= 0 {
		return
	}
	c := b.blend(p)
	n := int(math.Max(16, 2*math.Pi*r))
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		b.setPixel(int(math.Floor(cx+r*math.Cos(a))), int(math.Floor(cy+r*math.Sin(a))), c)
	}
}

func (b *brailleCanvas) Line(x0, y0, x1, y1 float64, p globe.Paint) {
	b.drawLineMicro(int(math.Floor(x0)), int(math.Floor(y0)), int(math.Floor(x1)), int(math.Floor(y1)), b.blend(p))
}

func (b *brailleCanvas) Polyline(pts [][2]float64, p globe.Paint) {
	c := b.blend(p)
	for i := 1; i < len(pts); i++ {
		b.drawLineMicro(
			int(math.Floor(pts[i-1][0])), int(math.Floor(pts[i-1][1])),
			int(math.Floor(pts[i][0])), int(math.Floor(pts[i][1])), c)
	}
}

// Text writes s into whole cells, centered on x, on the row holding y.
func (b *brailleCanvas) Text(x, y float64, s string, p globe.Paint) {
	rs := []rune(s)
	cy := int(math.Floor(y / 4))
	if cy < 0 || cy >= b.h {
		return
	}
	cx := int(math.Floor(x/2)) - len(rs)/2
	c := b.blend(p)
	for i, r := range rs {
		if px := cx + i; px >= 0 && px < b.w {
			b.text[cy][px] = r
			b.fg[cy][px] = c
		}
	}
}

// drawLineMicro draws a line on the microgrid using Bresenham
func (b *brailleCanvas) drawLineMicro(x0, y0, x1, y1 int, c color.NRGBA) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// blend mixes the paint color toward the background by its alpha.
func (b *brailleCanvas) blend(p globe.Paint) color.NRGBA {
	if p.Alpha >= 1 {
		return p.Color
	}
	fg, _ := colorful.MakeColor(opaque(p.Color))
	bg, _ := colorful.MakeColor(opaque(b.bg))
	r, g, bl := bg.BlendRgb(fg, math.Max(0, p.Alpha)).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: bl, A: 255}
}

func opaque(c color.NRGBA) color.NRGBA {
	c.A = 255
	return c
}

// cell returns the glyph shown in a cell.
func (b *brailleCanvas) cell(x, y int) rune {
	if r := b.text[y][x]; r != 0 {
		return r
	}
	if mask := b.m[y][x]; mask != 0 {
		return rune(0x2800 + int(mask))
	}
	return ' '
}

// toLines returns the plain glyph rows.
func (b *brailleCanvas) toLines() []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		row := make([]rune, b.w)
		for x := 0; x < b.w; x++ {
			row[x] = b.cell(x, y)
		}
		out[y] = string(row)
	}
	return out
}

// render styles the rows, one lipgloss call per run of equal color.
func (b *brailleCanvas) render() string {
	bg := lipgloss.Color(globe.Hex(b.bg))
	base := lipgloss.NewStyle().Background(bg)
	lines := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		var sb, run strings.Builder
		var cur color.NRGBA
		flush := func() {
			if run.Len() == 0 {
				return
			}
			st := base
			if cur.A != 0 {
				st = st.Foreground(lipgloss.Color(globe.Hex(cur)))
			}
			sb.WriteString(st.Render(run.String()))
			run.Reset()
		}
		for x := 0; x < b.w; x++ {
			r := b.cell(x, y)
			c := b.fg[y][x]
			if r == ' ' {
				c = color.NRGBA{}
			}
			if c != cur {
				flush()
				cur = c
			}
			run.WriteRune(r)
		}
		flush()
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
