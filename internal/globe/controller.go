package globe

import (
	"math"
	"time"
)

const (
	// RotationSpeed is the longitude advance per animation tick, degrees.
	RotationSpeed = 0.5
	// DragSensitivity converts pointer deltas to degrees.
	DragSensitivity = 0.5
	// ResumeDelay is how long after a drag ends auto-rotation restarts.
	ResumeDelay = 10 * time.Millisecond

	MinZoom = 0.8
	MaxZoom = 2.0

	zoomOut = 0.9
	zoomIn  = 1.1

	radiusDivisor = 2.5
)

type Mode int

const (
	AutoRotating Mode = iota
	Dragging
)

func (m Mode) String() string {
	if m == Dragging {
		return "dragging"
	}
	return "auto-rotating"
}

// State is the mutable view of the globe. Phi stays within [-90, 90] and
// Scale within [MinZoom, MaxZoom] x BaseRadius.
type State struct {
	Lambda     float64
	Phi        float64
	Scale      float64
	BaseRadius float64
	Width      float64
	Height     float64
	AutoRotate bool
}

// ScaleFactor is the current zoom relative to the base radius.
func (s State) ScaleFactor() float64 {
	if s.BaseRadius <= 0 {
		return 1
	}
	return s.Scale / s.BaseRadius
}

// Projection returns the orthographic projection for the state, centered
// in the container.
func (s State) Projection() Projection {
	return Projection{
		Lambda: s.Lambda,
		Phi:    s.Phi,
		Scale:  s.Scale,
		TX:     s.Width / 2,
		TY:     s.Height / 2,
	}
}

// BaseRadius returns the unzoomed globe radius for a container size.
func BaseRadius(w, h float64) float64 {
	return math.Min(w, h) / radiusDivisor
}

// Controller owns the State and moves it between auto-rotation and drags.
type Controller struct {
	state   State
	mode    Mode
	session *Session
	gen     uint64
	paused  bool
}

// NewController creates a controller for a w x h container, rotation
// (0, 0), auto-rotating.
func NewController(w, h float64) *Controller {
	r := BaseRadius(w, h)
	return &Controller{
		state: State{
			Scale:      r,
			BaseRadius: r,
			Width:      w,
			Height:     h,
			AutoRotate: true,
		},
		mode: AutoRotating,
	}
}

func (c *Controller) State() State { return c.state }
func (c *Controller) Mode() Mode   { return c.mode }

// Tick advances auto-rotation by one frame. It reports whether the state
// changed.
func (c *Controller) Tick() bool {
	if !c.state.AutoRotate {
		return false
	}
	c.state.Lambda += RotationSpeed
	return true
}

// BeginDrag starts a drag at pointer position x, y. An open session is
// closed first.
func (c *Controller) BeginDrag(x, y float64) *Session {
	if c.session != nil {
		c.session.Close()
	}
	c.gen++
	c.mode = Dragging
	c.state.AutoRotate = false
	c.session = &Session{
		c:           c,
		gen:         c.gen,
		startX:      x,
		startY:      y,
		startLambda: c.state.Lambda,
		startPhi:    c.state.Phi,
	}
	return c.session
}

// Session returns the active drag session, or nil.
func (c *Controller) Session() *Session { return c.session }

// Resume re-enables auto-rotation for the drag that ended with generation
// gen. It is a no-op if another drag started since or rotation was paused.
func (c *Controller) Resume(gen uint64) bool {
	if gen != c.gen || c.mode != AutoRotating || c.state.AutoRotate || c.paused {
		return false
	}
	c.state.AutoRotate = true
	return true
}

// SetAutoRotate pauses or resumes auto-rotation outside of drags.
func (c *Controller) SetAutoRotate(on bool) {
	if c.mode == Dragging {
		return
	}
	c.paused = !on
	c.state.AutoRotate = on
}

// Wheel zooms by one step: out when deltaY > 0, in otherwise.
func (c *Controller) Wheel(deltaY float64) {
	f := zoomIn
	if deltaY > 0 {
		f = zoomOut
	}
	c.state.Scale = c.clampScale(c.state.Scale * f)
}

// Zoom sets the scale to f times the base radius, within the zoom limits.
func (c *Controller) Zoom(f float64) {
	c.state.Scale = c.clampScale(c.state.BaseRadius * f)
}

// Nudge rotates by the given degrees, keeping Phi within [-90, 90].
func (c *Controller) Nudge(dLambda, dPhi float64) {
	c.state.Lambda += dLambda
	c.state.Phi = clampLat(c.state.Phi + dPhi)
}

// Resize adapts to a new container size and keeps the zoom multiple.
func (c *Controller) Resize(w, h float64) {
	zoom := c.state.ScaleFactor()
	c.state.Width, c.state.Height = w, h
	c.state.BaseRadius = BaseRadius(w, h)
	c.state.Scale = c.clampScale(c.state.BaseRadius * zoom)
}

func (c *Controller) clampScale(s float64) float64 {
	lo := c.state.BaseRadius * MinZoom
	hi := c.state.BaseRadius * MaxZoom
	return math.Max(lo, math.Min(hi, s))
}

func clampLat(v float64) float64 {
	return math.Max(-90, math.Min(90, v))
}

// Session is one pointer drag. It snapshots the pointer and rotation at
// drag start and is released exactly once by Close.
type Session struct {
	c           *Controller
	gen         uint64
	startX      float64
	startY      float64
	startLambda float64
	startPhi    float64
	closed      bool
}

// Gen identifies the session for Controller.Resume.
func (s *Session) Gen() uint64 { return s.gen }

// Closed reports whether Close has run.
func (s *Session) Closed() bool { return s.closed }

// Move applies the pointer position x, y relative to the drag start.
func (s *Session) Move(x, y float64) {
	if s.closed {
		return
	}
	dx := x - s.startX
	dy := y - s.startY
	st := &s.c.state
	st.Lambda = s.startLambda + dx*DragSensitivity
	st.Phi = clampLat(s.startPhi - dy*DragSensitivity)
}

// Close ends the drag. Auto-rotation stays off until Controller.Resume is
// called for this session's generation.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	if s.c.session == s {
		s.c.session = nil
		s.c.mode = AutoRotating
	}
}
