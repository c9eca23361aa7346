package globe

import (
	"math"
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"globeview/internal/geom"
)

func TestProjection_CenterAndVisibility(t *testing.T) {
	p := Projection{Scale: 100, TX: 200, TY: 150}

	x, y, vis := p.Project(0, 0)
	assert.True(t, vis)
	assert.InDelta(t, 200, x, 1e-9)
	assert.InDelta(t, 150, y, 1e-9)

	_, _, vis = p.Project(180, 0)
	assert.False(t, vis)

	assert.True(t, p.Visible(0, 0))
	assert.False(t, p.Visible(180, 0))
	assert.True(t, p.Visible(89, 0))
	assert.False(t, p.Visible(91, 0))
}

func TestProjection_RotationMovesCenter(t *testing.T) {
	p := Projection{Lambda: -30, Phi: -40, Scale: 100, TX: 0, TY: 0}
	lon, lat := p.Center()
	assert.InDelta(t, 30, lon, 1e-9)
	assert.InDelta(t, 40, lat, 1e-9)

	x, y, vis := p.Project(30, 40)
	assert.True(t, vis)
	assert.InDelta(t, 0, x, 1e-9)
	assert.InDelta(t, 0, y, 1e-9)
}

func TestProjection_NorthIsUp(t *testing.T) {
	p := Projection{Scale: 100, TX: 0, TY: 0}
	_, y, _ := p.Project(0, 45)
	assert.Less(t, y, 0.0)
	x, _, _ := p.Project(45, 0)
	assert.Greater(t, x, 0.0)
}

func TestProjection_InvertRoundTrip(t *testing.T) {
	p := Projection{Lambda: 37, Phi: -22, Scale: 120, TX: 160, TY: 100}
	for _, ll := range [][2]float64{{-37, 22}, {-10, 40}, {-60, 0}, {-37, 60}} {
		x, y, vis := p.Project(ll[0], ll[1])
		require.True(t, vis, "point %v", ll)
		lon, lat, ok := p.Invert(x, y)
		require.True(t, ok)
		assert.InDelta(t, ll[0], lon, 1e-6)
		assert.InDelta(t, ll[1], lat, 1e-6)
	}
	_, _, ok := p.Invert(160+121, 100)
	assert.False(t, ok)
}

func TestAngularDistance(t *testing.T) {
	assert.InDelta(t, math.Pi, AngularDistance(0, 0, 180, 0), 1e-9)
	assert.InDelta(t, math.Pi/2, AngularDistance(0, 0, 0, 90), 1e-9)
	assert.InDelta(t, 0, AngularDistance(10, 10, 10, 10), 1e-12)
}

func TestController_InitialState(t *testing.T) {
	c := NewController(500, 400)
	st := c.State()
	assert.Equal(t, AutoRotating, c.Mode())
	assert.True(t, st.AutoRotate)
	assert.Equal(t, 0.0, st.Lambda)
	assert.Equal(t, 0.0, st.Phi)
	assert.InDelta(t, 160, st.BaseRadius, 1e-9)
	assert.InDelta(t, st.BaseRadius, st.Scale, 1e-9)
}

func TestController_TickAdvancesLongitude(t *testing.T) {
	c := NewController(500, 400)
	for i := 0; i < 4; i++ {
		assert.True(t, c.Tick())
	}
	assert.InDelta(t, 2.0, c.State().Lambda, 1e-12)
}

func TestController_DragSuspendsRotation(t *testing.T) {
	c := NewController(500, 400)
	c.Tick()
	s := c.BeginDrag(100, 100)
	assert.Equal(t, Dragging, c.Mode())
	assert.False(t, c.State().AutoRotate)
	assert.False(t, c.Tick())

	s.Move(120, 90)
	st := c.State()
	assert.InDelta(t, 0.5+20*0.5, st.Lambda, 1e-12)
	assert.InDelta(t, 5, st.Phi, 1e-12)

	s.Close()
	assert.Equal(t, AutoRotating, c.Mode())
	assert.False(t, c.State().AutoRotate, "resumes only after the delay")
	assert.True(t, c.Resume(s.Gen()))
	assert.True(t, c.State().AutoRotate)
	assert.True(t, c.Tick())
}

func TestController_LatitudeAlwaysClamped(t *testing.T) {
	c := NewController(500, 400)
	s := c.BeginDrag(0, 0)
	for _, dy := range []float64{-1e6, -400, -181, 0, 179, 181, 5000, 1e9} {
		s.Move(0, dy)
		phi := c.State().Phi
		assert.GreaterOrEqual(t, phi, -90.0, "dy=%v", dy)
		assert.LessOrEqual(t, phi, 90.0, "dy=%v", dy)
	}
	s.Move(0, -1000)
	assert.Equal(t, 90.0, c.State().Phi)
	s.Move(0, 1000)
	assert.Equal(t, -90.0, c.State().Phi)

	// longitude is unbounded
	s.Move(10000, 0)
	assert.InDelta(t, 5000, c.State().Lambda, 1e-9)
}

func TestController_StaleResumeIgnored(t *testing.T) {
	c := NewController(500, 400)
	first := c.BeginDrag(0, 0)
	first.Close()
	second := c.BeginDrag(5, 5)

	assert.False(t, c.Resume(first.Gen()))
	assert.False(t, c.State().AutoRotate)
	assert.Equal(t, Dragging, c.Mode())

	second.Close()
	assert.True(t, c.Resume(second.Gen()))
}

func TestSession_CloseIsIdempotentAndFinal(t *testing.T) {
	c := NewController(500, 400)
	s := c.BeginDrag(0, 0)
	s.Close()
	s.Close()
	assert.True(t, s.Closed())
	assert.Nil(t, c.Session())

	before := c.State()
	s.Move(300, 300)
	assert.Equal(t, before, c.State())
}

func TestController_BeginDragClosesPrevious(t *testing.T) {
	c := NewController(500, 400)
	a := c.BeginDrag(0, 0)
	b := c.BeginDrag(10, 10)
	assert.True(t, a.Closed())
	assert.False(t, b.Closed())
	assert.Same(t, b, c.Session())
}

func TestController_WheelClamped(t *testing.T) {
	c := NewController(500, 400)
	base := c.State().BaseRadius
	for i := 0; i < 50; i++ {
		c.Wheel(-1)
		assert.LessOrEqual(t, c.State().Scale, base*MaxZoom+1e-9)
	}
	assert.InDelta(t, base*MaxZoom, c.State().Scale, 1e-9)
	for i := 0; i < 50; i++ {
		c.Wheel(3)
		assert.GreaterOrEqual(t, c.State().Scale, base*MinZoom-1e-9)
	}
	assert.InDelta(t, base*MinZoom, c.State().Scale, 1e-9)

	c.Wheel(-1)
	assert.InDelta(t, base*MinZoom*1.1, c.State().Scale, 1e-9)
}

func TestController_WheelKeepsMode(t *testing.T) {
	c := NewController(500, 400)
	s := c.BeginDrag(0, 0)
	c.Wheel(1)
	assert.Equal(t, Dragging, c.Mode())
	assert.Same(t, s, c.Session())
}

func TestController_NudgeAndResize(t *testing.T) {
	c := NewController(500, 400)
	c.Nudge(10, 200)
	assert.Equal(t, 90.0, c.State().Phi)
	assert.Equal(t, 10.0, c.State().Lambda)

	c.Wheel(-1)
	zoom := c.State().ScaleFactor()
	c.Resize(1000, 1000)
	st := c.State()
	assert.InDelta(t, 400, st.BaseRadius, 1e-9)
	assert.InDelta(t, zoom, st.ScaleFactor(), 1e-9)
}

func TestController_PauseSurvivesDrag(t *testing.T) {
	c := NewController(100, 100)
	c.SetAutoRotate(false)
	s := c.BeginDrag(0, 0)
	s.Move(10, 0)
	s.Close()

	assert.False(t, c.Resume(s.Gen()))
	assert.False(t, c.State().AutoRotate)

	c.SetAutoRotate(true)
	assert.True(t, c.State().AutoRotate)
	assert.True(t, c.Tick())
}

func TestController_Zoom(t *testing.T) {
	c := NewController(500, 500)
	c.Zoom(1.5)
	assert.InDelta(t, 1.5, c.State().ScaleFactor(), 1e-9)
	c.Zoom(10)
	assert.InDelta(t, MaxZoom, c.State().ScaleFactor(), 1e-9)
	c.Zoom(0)
	assert.InDelta(t, MinZoom, c.State().ScaleFactor(), 1e-9)
}

func TestController_SetAutoRotateIgnoredWhileDragging(t *testing.T) {
	c := NewController(100, 100)
	c.SetAutoRotate(false)
	assert.False(t, c.Tick())
	c.SetAutoRotate(true)
	c.BeginDrag(0, 0)
	c.SetAutoRotate(true)
	assert.False(t, c.State().AutoRotate)
}

func TestAnimator_StopRejectsFrames(t *testing.T) {
	var a Animator
	g1 := a.Start()
	assert.True(t, a.Accept(g1))
	g2 := a.Start()
	assert.False(t, a.Accept(g1), "stale loop")
	assert.True(t, a.Accept(g2))

	a.Stop()
	assert.False(t, a.Accept(g2))
	assert.Equal(t, uint64(0), a.Start())
	assert.True(t, a.Stopped())
}

func TestParseTheme(t *testing.T) {
	th, err := ParseTheme(" Dark ")
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, th)
	assert.Equal(t, ThemeLight, th.Toggle())
	_, err = ParseTheme("sepia")
	assert.Error(t, err)
	assert.Equal(t, "#ff3b3b", Hex(PaletteFor(ThemeLight).Marker))
	assert.Equal(t, "#999999", Hex(PaletteFor(ThemeDark).Dot))
}

// recorder is a Canvas that records draw calls.
type recorder struct {
	w, h    float64
	clears  int
	strokes []call
	fills   []call
	lines   []call
	polys   int
	texts   []string
}

type call struct {
	x, y, r float64
	p       Paint
}

func (r *recorder) Size() (float64, float64) { return r.w, r.h }
func (r *recorder) Clear()                    { r.clears++ }
func (r *recorder) StrokeCircle(cx, cy, rad float64, p Paint) {
	r.strokes = append(r.strokes, call{cx, cy, rad, p})
}
func (r *recorder) FillCircle(cx, cy, rad float64, p Paint) {
	r.fills = append(r.fills, call{cx, cy, rad, p})
}
func (r *recorder) Line(x0, y0, x1, y1 float64, p Paint) {
	r.lines = append(r.lines, call{x0, y0, y0 - y1, p})
}
func (r *recorder) Polyline(pts [][2]float64, p Paint) { r.polys++ }
func (r *recorder) Text(x, y float64, s string, p Paint) {
	r.texts = append(r.texts, s)
}

func squareLand() geom.Land {
	return geom.Land{Features: []orb.Geometry{
		orb.Polygon{{{-10, -10}, {-10, 10}, {10, 10}, {10, -10}}},
	}}
}

func TestRender_BeforeLoadOnlyOutline(t *testing.T) {
	c := NewController(400, 400)
	sc := NewScene(ThemeLight)
	rec := &recorder{w: 400, h: 400}
	Render(c.State(), sc, rec, time.Unix(0, 0))

	assert.Equal(t, 1, rec.clears)
	require.Len(t, rec.strokes, 1)
	assert.InDelta(t, 160, rec.strokes[0].r, 1e-9)
	assert.InDelta(t, 2, rec.strokes[0].p.Width, 1e-9)
	assert.Empty(t, rec.fills)
	assert.Zero(t, rec.polys)
	assert.Empty(t, rec.texts)
}

func TestRender_MarkersOnlyOnNearSide(t *testing.T) {
	c := NewController(400, 400)
	sc := NewScene(ThemeDark)
	sc.SetLand(squareLand(), 16)
	sc.Markers = []Marker{{Lon: 0, Lat: 0, Name: "front"}, {Lon: 180, Lat: 0, Name: "back"}}

	rec := &recorder{w: 400, h: 400}
	Render(c.State(), sc, rec, time.Unix(0, 0))
	assert.Equal(t, []string{"front"}, rec.texts)
	require.Len(t, rec.lines, 1)
	assert.InDelta(t, 20, rec.lines[0].r, 1e-9, "pin length")

	// rotate the back marker to the front
	c.Nudge(180, 0)
	rec = &recorder{w: 400, h: 400}
	Render(c.State(), sc, rec, time.Unix(0, 0))
	assert.Equal(t, []string{"back"}, rec.texts)
}

func TestRender_MarkerVisibilityMatchesDistance(t *testing.T) {
	c := NewController(600, 600)
	sc := NewScene(ThemeLight)
	sc.SetLand(squareLand(), 16)
	for step := 0; step < 72; step++ {
		c.Nudge(5, 0)
		st := c.State()
		rec := &recorder{w: 600, h: 600}
		Render(st, sc, rec, time.Unix(0, 0))
		var want []string
		clon, clat := st.Projection().Center()
		for _, m := range Locations {
			if AngularDistance(m.Lon, m.Lat, clon, clat) < math.Pi/2 {
				want = append(want, m.Name)
			}
		}
		assert.Equal(t, want, rec.texts, "lambda=%v", st.Lambda)
	}
}

func TestRender_DotsAndLayers(t *testing.T) {
	c := NewController(400, 400)
	sc := NewScene(ThemeLight)
	sc.SetLand(squareLand(), 16)
	sc.Markers = nil
	require.NotEmpty(t, sc.Dots)

	rec := &recorder{w: 400, h: 400}
	Render(c.State(), sc, rec, time.Unix(0, 0))
	assert.Len(t, rec.fills, len(sc.Dots))
	for _, f := range rec.fills {
		assert.InDelta(t, 1.2, f.r, 1e-9)
	}
	assert.Greater(t, rec.polys, 0)

	// the square sits behind the globe after half a turn
	c.Nudge(180, 0)
	rec = &recorder{w: 400, h: 400}
	Render(c.State(), sc, rec, time.Unix(0, 0))
	assert.Empty(t, rec.fills)

	sc.Layers = Layers{}
	c.Nudge(180, 0)
	rec = &recorder{w: 400, h: 400}
	Render(c.State(), sc, rec, time.Unix(0, 0))
	assert.Empty(t, rec.fills)
	assert.Zero(t, rec.polys)
	assert.Len(t, rec.strokes, 1)
}

func TestRender_ScaleFactorFollowsZoom(t *testing.T) {
	c := NewController(400, 400)
	sc := NewScene(ThemeLight)
	sc.SetLand(squareLand(), 16)
	sc.Markers = []Marker{{Name: "origin"}}
	c.Wheel(-1)

	rec := &recorder{w: 400, h: 400}
	Render(c.State(), sc, rec, time.Unix(0, 0))
	assert.InDelta(t, 2*1.1, rec.strokes[0].p.Width, 1e-9)
	// halo, ring, dot for the single marker are the last three fills
	n := len(rec.fills)
	require.GreaterOrEqual(t, n, 3)
	assert.InDelta(t, 8*1.1, rec.fills[n-2].r, 1e-9)
	assert.InDelta(t, 4*1.1, rec.fills[n-1].r, 1e-9)
	assert.InDelta(t, 0.2, rec.fills[n-3].p.Alpha, 1e-9)
}

func TestRender_LabelFunc(t *testing.T) {
	c := NewController(400, 400)
	sc := NewScene(ThemeLight)
	sc.SetLand(squareLand(), 16)
	sc.Markers = []Marker{{Name: "Germany"}}
	sc.Label = func(m Marker) string { return "Deutschland" }
	rec := &recorder{w: 400, h: 400}
	Render(c.State(), sc, rec, time.Unix(0, 0))
	assert.Equal(t, []string{"Deutschland"}, rec.texts)
}

func TestGraticuleShape(t *testing.T) {
	// 36 meridians and 17 parallels
	assert.Len(t, graticuleLines, 36+17)
	first := graticuleLines[0]
	assert.Equal(t, [2]float64{-180, -90}, first[0])
	assert.Equal(t, [2]float64{-180, 90}, first[len(first)-1])
	second := graticuleLines[1]
	assert.Equal(t, [2]float64{-170, -80}, second[0])
}
