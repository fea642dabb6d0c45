package carousel

import (
	"testing"
	"time"
)

func autoOptions() Options {
	o := DefaultOptions()
	o.Interval = 2 * time.Second
	o.Duration = 500 * time.Millisecond
	return o
}

func TestAutoplayAdvancesOncePerInterval(t *testing.T) {
	c := newTestCarousel(t, 10, autoOptions())
	k := &clock{c: c}

	var settles []time.Duration
	c.OnSettle = func(int) { settles = append(settles, k.now) }

	k.advance(10*time.Second + 600*time.Millisecond)

	if len(settles) != 5 {
		t.Fatalf("got %d automatic moves, want 5", len(settles))
	}
	for i := 1; i < len(settles); i++ {
		if gap := settles[i] - settles[i-1]; gap < 2*time.Second-frameStep || gap > 2*time.Second+frameStep {
			t.Errorf("moves %d and %d are %v apart", i-1, i, gap)
		}
	}
	if c.Current() != 5 {
		t.Errorf("Current() = %d, want 5", c.Current())
	}
}

func TestAutoplayStopPreventsFurtherMoves(t *testing.T) {
	for _, at := range []time.Duration{0, time.Second, 2005 * time.Millisecond, 2300 * time.Millisecond, 5 * time.Second} {
		c := newTestCarousel(t, 10, autoOptions())
		k := &clock{c: c}

		k.advance(at)
		c.StopAutoplay()
		k.settle(t)
		cur := c.Current()

		k.advance(10 * time.Second)
		if c.Current() != cur {
			t.Errorf("stopped at %v: moved from %d to %d", at, cur, c.Current())
		}
		if c.frames.Len() != 0 {
			t.Errorf("stopped at %v: %d subscriptions left", at, c.frames.Len())
		}
	}
}

func TestAutoplayDisabledBelowMinimum(t *testing.T) {
	o := autoOptions()
	o.Interval = 999 * time.Millisecond
	c := newTestCarousel(t, 8, o)
	if c.Autoplaying() {
		t.Fatal("autoplay enabled below the minimum interval")
	}
	k := &clock{c: c}
	k.advance(5 * time.Second)
	if c.Current() != 0 {
		t.Errorf("Current() = %d, want 0", c.Current())
	}
}

func TestNavigationStopsAutoplay(t *testing.T) {
	actions := map[string]func(*Carousel){
		"prev": (*Carousel).Prev,
		"next": (*Carousel).Next,
		"goto": func(c *Carousel) { c.GoTo(3) },
	}
	for name, act := range actions {
		c := newTestCarousel(t, 8, autoOptions())
		act(c)
		if c.Autoplaying() {
			t.Errorf("%s did not stop autoplay", name)
		}
		k := &clock{c: c}
		k.settle(t)
		cur := c.Current()
		k.advance(6 * time.Second)
		if c.Current() != cur {
			t.Errorf("%s: autoplay resumed", name)
		}
	}
}

func TestStartAutoplayDoesNotDoubleSubscribe(t *testing.T) {
	c := newTestCarousel(t, 8, autoOptions())
	c.StartAutoplay()
	c.StartAutoplay()
	if n := c.frames.Len(); n != 1 {
		t.Errorf("frames.Len() = %d, want 1", n)
	}
}
