// Package carousel is an infinitely looping, gesture-driven gallery engine.
//
// The engine keeps a ring of at least seven items, lays the current item and
// three neighbours on each side out contiguously, and animates between them
// with a quadratic ease. It owns no rendering: the host measures the
// viewport with Resize, drives time with Tick, forwards pointer and wheel
// input, and draws items at the boxes returned by Rects.
package carousel

import (
	"errors"
	"time"
)

// ErrNoItems is returned by New when there is nothing to show. Hosts treat
// it as an inert widget.
var ErrNoItems = errors.New("carousel: no items")

// Slide describes one original item.
type Slide struct {
	// Aspect is the slide's width/height ratio; zero uses Options.AspectRatio.
	Aspect float64
}

// Item is one entry in the ring. Padding clones are separate items that
// share their Origin with the original.
type Item struct {
	Origin int
	Clone  bool
	Aspect float64
	Slot   int
	Active bool

	Width, Height float64
}

// Carousel is the engine. It is not safe for concurrent use; every method
// is meant to run on the host's update loop.
type Carousel struct {
	opts      Options
	originals int
	items     []Item
	ring      Ring
	head      int
	state     State
	frames    Frames
	anim      *Subscription
	auto      autoplay

	viewW, viewH float64

	// OnSettle is called after an animation finishes, with the new current
	// ring position.
	OnSettle func(pos int)
}

// New builds a carousel over slides, padding the ring up to MinRingSize
// with copies of the original sequence. Autoplay starts when the interval
// allows it.
func New(slides []Slide, opts Options) (*Carousel, error) {
	if len(slides) == 0 {
		return nil, ErrNoItems
	}
	opts = opts.normalized()

	n := PaddedCount(len(slides))
	items := make([]Item, n)
	for i := range items {
		origin := i % len(slides)
		aspect := slides[origin].Aspect
		if aspect <= 0 {
			aspect = opts.AspectRatio
		}
		items[i] = Item{Origin: origin, Clone: i >= len(slides), Aspect: aspect}
	}

	c := &Carousel{
		opts:      opts,
		originals: len(slides),
		items:     items,
		ring:      NewRing(n),
		auto:      autoplay{interval: opts.Interval},
	}
	c.state.Current = c.ring.IndexAfter(0, opts.Start%len(slides))
	c.anchor(c.state.Current)
	c.refreshActive()
	c.StartAutoplay()
	return c, nil
}

// Resize measures every item for a viewport of w by h and re-centers the
// current item unless an animation is running; the animation re-centers
// when it settles. It is idempotent.
func (c *Carousel) Resize(w, h float64) {
	c.viewW, c.viewH = w, h
	for i := range c.items {
		c.items[i].Height = h
		c.items[i].Width = h * c.items[i].Aspect
	}
	if c.state.Phase != PhaseAnimating {
		c.recenter()
	}
}

func (c *Carousel) recenter() {
	c.state = c.state.centered(c.AdjustedDistance(c.state.Current))
}

// Tick advances animation and autoplay to now.
func (c *Carousel) Tick(now time.Duration) {
	c.frames.Tick(now)
}

// move shifts the ring size steps and starts animating. Callers check for
// a running animation first; a request during one is dropped here too.
func (c *Carousel) move(size int, d time.Duration) {
	if size == 0 || c.state.Phase == PhaseAnimating {
		return
	}
	next := c.ring.IndexAfter(c.state.Current, size)
	shift, stop := c.readyMove(size)
	start := c.state.Distance + shift
	c.state = c.state.animate(next, Animation{Start: start, Flick: stop - start, Duration: d})
	c.anim = c.frames.Subscribe(c.animationTick)
}

func (c *Carousel) animationTick(now time.Duration) bool {
	st, done := c.state.frame(now)
	c.state = st
	if done {
		c.settle()
		return false
	}
	return true
}

func (c *Carousel) settle() {
	c.anim = nil
	c.anchor(c.state.Current)
	c.refreshActive()
	c.Resize(c.viewW, c.viewH)
	if c.OnSettle != nil {
		c.OnSettle(c.state.Current)
	}
}

func (c *Carousel) refreshActive() {
	for i := range c.items {
		c.items[i].Active = i == c.state.Current
	}
}

// Prev moves one step back. Ignored unless idle.
func (c *Carousel) Prev() {
	c.StopAutoplay()
	if c.state.Phase != PhaseIdle {
		return
	}
	c.move(-1, c.opts.Duration)
}

// Next moves one step forward. Ignored unless idle.
func (c *Carousel) Next() {
	c.StopAutoplay()
	if c.state.Phase != PhaseIdle {
		return
	}
	c.move(1, c.opts.Duration)
}

// GoTo moves to the original item target. The step count is the difference
// between target and the current item's original index, so a jump never
// crosses more than one copy of the originals.
func (c *Carousel) GoTo(target int) {
	c.StopAutoplay()
	if c.state.Phase != PhaseIdle || target < 0 || target >= c.originals {
		return
	}
	c.move(target-c.state.Current%c.originals, c.opts.Duration)
}

// Indicators returns the number of original items.
func (c *Carousel) Indicators() int { return c.originals }

// ActiveIndicator returns the original index of the active item.
func (c *Carousel) ActiveIndicator() int {
	for i, it := range c.items {
		if it.Active {
			return i % c.originals
		}
	}
	return c.state.Current % c.originals
}

// Current returns the current ring position. During an animation this is
// already the destination.
func (c *Carousel) Current() int { return c.state.Current }

// Distance returns the row's horizontal offset.
func (c *Carousel) Distance() float64 { return c.state.Distance }

// Animating reports whether an animation is in flight.
func (c *Carousel) Animating() bool { return c.state.Phase == PhaseAnimating }

// Phase returns the current interaction mode.
func (c *Carousel) Phase() Phase { return c.state.Phase }

// State returns a copy of the engine state.
func (c *Carousel) State() State {
	st := c.state
	st.Drag.Trail = append([]float64(nil), st.Drag.Trail...)
	return st
}

// Size returns the ring size including padding clones.
func (c *Carousel) Size() int { return c.ring.Size() }

// IndexAfter wraps current+steps into the ring.
func (c *Carousel) IndexAfter(current, steps int) int {
	return c.ring.IndexAfter(current, steps)
}

// Item returns the ring item at pos.
func (c *Carousel) Item(pos int) Item { return c.items[pos] }

// Items returns a copy of the ring.
func (c *Carousel) Items() []Item {
	return append([]Item(nil), c.items...)
}

// Options returns the normalized options.
func (c *Carousel) Options() Options { return c.opts }
