package carousel

import (
	"testing"
	"time"
)

const (
	testViewW = 1600
	testViewH = 500
	frameStep = 10 * time.Millisecond
)

// newTestCarousel builds a measured carousel over n default slides.
func newTestCarousel(t *testing.T, n int, opts Options) *Carousel {
	t.Helper()
	c, err := New(make([]Slide, n), opts)
	if err != nil {
		t.Fatalf("New(%d) error: %v", n, err)
	}
	c.Resize(testViewW, testViewH)
	return c
}

// manualOptions disables autoplay so tests only see the moves they issue.
func manualOptions() Options {
	o := DefaultOptions()
	o.Interval = 0
	return o
}

// clock drives a carousel with a virtual frame clock.
type clock struct {
	now time.Duration
	c   *Carousel
}

func (k *clock) advance(d time.Duration) {
	end := k.now + d
	for k.now < end {
		k.now += frameStep
		k.c.Tick(k.now)
	}
}

func (k *clock) settle(t *testing.T) {
	t.Helper()
	for i := 0; k.c.Animating(); i++ {
		if i > 10000 {
			t.Fatal("animation never settled")
		}
		k.advance(frameStep)
	}
}
