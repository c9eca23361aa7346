package globe

import (
	"errors"
	"image/color"
)

// ErrCanvasUnavailable is returned when a drawing surface cannot be set up,
// e.g. a zero-sized terminal or image.
var ErrCanvasUnavailable = errors.New("canvas unavailable")

// Paint is the color, opacity and stroke width of one draw call.
type Paint struct {
	Color color.NRGBA
	Alpha float64
	Width float64
}

// Canvas is the drawing surface Render writes to. Coordinates are pixels
// with the origin at the top-left corner.
type Canvas interface {
	Size() (w, h float64)
	Clear()
	StrokeCircle(cx, cy, r float64, p Paint)
	FillCircle(cx, cy, r float64, p Paint)
	Line(x0, y0, x1, y1 float64, p Paint)
	Polyline(pts [][2]float64, p Paint)
	// Text draws s horizontally centered on x with its baseline at y.
	Text(x, y float64, s string, p Paint)
}
