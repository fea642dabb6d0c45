package carousel

import (
	"time"

	"github.com/tanema/gween/ease"
)

// Animation is an eased horizontal translation from Start to Start+Flick.
type Animation struct {
	Start    float64
	Flick    float64
	Duration time.Duration

	// StartedAt is captured on the first frame after the move was issued.
	StartedAt time.Duration
	started   bool
}

// Target returns the offset the animation settles on.
func (a Animation) Target() float64 { return a.Start + a.Flick }

// Sample returns the eased offset elapsed into the animation.
func (a Animation) Sample(elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return a.Start
	}
	if elapsed >= a.Duration {
		return a.Target()
	}
	// Progress is eased in [0, 1] and scaled in float64.
	p := ease.InOutQuad(float32(elapsed), 0, 1, float32(a.Duration))
	return a.Start + a.Flick*float64(p)
}

// frame advances the animation to now and reports the offset to draw and
// whether the animation has run its course.
func (a Animation) frame(now time.Duration) (Animation, float64, bool) {
	if !a.started {
		a.started = true
		a.StartedAt = now
	}
	elapsed := now - a.StartedAt
	if elapsed < a.Duration {
		return a, a.Sample(elapsed), false
	}
	return a, a.Target(), true
}
