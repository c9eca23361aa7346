// Package raster implements the globe canvas over an in-memory image, for
// headless snapshots.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"globeview/internal/globe"
)

// minimum stroke width in pixels
const hairline = 0.75

type Canvas struct {
	img  *image.NRGBA
	bg   color.NRGBA
	z    *vector.Rasterizer
	face font.Face
}

// New returns a w x h canvas cleared to bg.
func New(w, h int, bg color.NRGBA) (*Canvas, error) {
	if w <= 0 || h <= 0 {
		return nil, globe.ErrCanvasUnavailable
	}
	c := &Canvas{
		img:  image.NewNRGBA(image.Rect(0, 0, w, h)),
		bg:   bg,
		z:    vector.NewRasterizer(w, h),
		face: basicfont.Face7x13,
	}
	c.Clear()
	return c, nil
}

func (c *Canvas) Image() *image.NRGBA { return c.img }

// Encode writes the canvas as PNG.
func (c *Canvas) Encode(w io.Writer) error {
	return png.Encode(w, c.img)
}

func (c *Canvas) Size() (float64, float64) {
	b := c.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (c *Canvas) Clear() {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(c.bg), image.Point{}, draw.Src)
}

func (c *Canvas) StrokeCircle(cx, cy, r float64, p globe.Paint) {
	hw := math.Max(p.Width, hairline) / 2
	c.begin()
	c.circle(cx, cy, r+hw, false)
	if r-hw > 0 {
		c.circle(cx, cy, r-hw, true)
	}
	c.fill(p)
}

func (c *Canvas) FillCircle(cx, cy, r float64, p globe.Paint) {
	if r <= 0 {
		return
	}
	c.begin()
	c.circle(cx, cy, r, false)
	c.fill(p)
}

func (c *Canvas) Line(x0, y0, x1, y1 float64, p globe.Paint) {
	c.begin()
	c.segment(x0, y0, x1, y1, math.Max(p.Width, hairline)/2)
	c.fill(p)
}

func (c *Canvas) Polyline(pts [][2]float64, p globe.Paint) {
	if len(pts) < 2 {
		return
	}
	hw := math.Max(p.Width, hairline) / 2
	c.begin()
	for i := 1; i < len(pts); i++ {
		c.segment(pts[i-1][0], pts[i-1][1], pts[i][0], pts[i][1], hw)
	}
	c.fill(p)
}

func (c *Canvas) Text(x, y float64, s string, p globe.Paint) {
	w := font.MeasureString(c.face, s).Round()
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(paintColor(p)),
		Face: c.face,
		Dot:  fixed.P(int(math.Round(x))-w/2, int(math.Round(y))),
	}
	d.DrawString(s)
}

func (c *Canvas) begin() {
	b := c.img.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
}

func (c *Canvas) fill(p globe.Paint) {
	c.z.Draw(c.img, c.img.Bounds(), image.NewUniform(paintColor(p)), image.Point{})
}

// circle adds a closed polygonal circle; reverse flips the winding so an
// inner circle cuts a hole.
func (c *Canvas) circle(cx, cy, r float64, reverse bool) {
	n := int(math.Min(96, math.Max(12, r*2)))
	for i := 0; i <= n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		if reverse {
			a = -a
		}
		x := float32(cx + r*math.Cos(a))
		y := float32(cy + r*math.Sin(a))
		if i == 0 {
			c.z.MoveTo(x, y)
		} else {
			c.z.LineTo(x, y)
		}
	}
	c.z.ClosePath()
}

// segment adds a quad of half-width hw around the line p0-p1.
func (c *Canvas) segment(x0, y0, x1, y1, hw float64) {
	dx, dy := x1-x0, y1-y0
	l := math.Hypot(dx, dy)
	if l == 0 {
		dx, l = 1, 1
	}
	nx, ny := -dy/l*hw, dx/l*hw
	c.z.MoveTo(float32(x0+nx), float32(y0+ny))
	c.z.LineTo(float32(x1+nx), float32(y1+ny))
	c.z.LineTo(float32(x1-nx), float32(y1-ny))
	c.z.LineTo(float32(x0-nx), float32(y0-ny))
	c.z.ClosePath()
}

func paintColor(p globe.Paint) color.NRGBA {
	a := math.Max(0, math.Min(1, p.Alpha))
	col := p.Color
	col.A = uint8(math.Round(float64(col.A) * a))
	return col
}
