package carousel

import "time"

type autoplay struct {
	enabled  bool
	interval time.Duration
	anchor   time.Duration
	anchored bool
	sub      *Subscription
}

// StartAutoplay begins advancing one step every interval. It is a no-op
// when the interval is too short.
func (c *Carousel) StartAutoplay() {
	if c.auto.interval < MinAutoplayInterval {
		return
	}
	c.auto.sub.Cancel()
	c.auto.enabled = true
	c.auto.anchored = false
	c.auto.sub = c.frames.Subscribe(c.autoplayTick)
}

// StopAutoplay disables autoplay. The loop notices on its next tick.
func (c *Carousel) StopAutoplay() {
	c.auto.enabled = false
}

// Autoplaying reports whether autoplay is enabled.
func (c *Carousel) Autoplaying() bool {
	return c.auto.enabled
}

func (c *Carousel) autoplayTick(now time.Duration) bool {
	if !c.auto.enabled {
		return false
	}
	if !c.auto.anchored {
		c.auto.anchor = now
		c.auto.anchored = true
		return true
	}
	if now-c.auto.anchor < c.auto.interval {
		return true
	}
	c.auto.anchor = now
	if c.state.Phase == PhaseIdle {
		c.move(1, c.opts.Duration)
	}
	return true
}
