package globe

import "time"

// DefaultFrameInterval paces auto-rotation ticks.
const DefaultFrameInterval = time.Second / 30

// Animator hands out frame generations and counts renders. After Stop no
// generation is accepted, which ends the tick loop of whoever drives it.
type Animator struct {
	gen     uint64
	stopped bool
	renders int
}

// Start begins a new tick loop and returns its generation. Loops started
// earlier become stale.
func (a *Animator) Start() uint64 {
	if a.stopped {
		return 0
	}
	a.gen++
	return a.gen
}

// Accept reports whether a tick of generation gen should still run.
func (a *Animator) Accept(gen uint64) bool {
	return !a.stopped && gen != 0 && gen == a.gen
}

// Stop ends the current loop for good.
func (a *Animator) Stop() { a.stopped = true }

func (a *Animator) Stopped() bool { return a.stopped }

// Rendered records one render call.
func (a *Animator) Rendered() { a.renders++ }

// Renders returns the number of recorded render calls.
func (a *Animator) Renders() int { return a.renders }
