package carousel

import (
	"fmt"
	"math"
	"testing"
)

func TestSlotForKeepsWindowContiguous(t *testing.T) {
	for _, n := range []int{7, 8, 13} {
		for anchor := 0; anchor < n; anchor++ {
			r := NewRing(n)
			for k := -Reach; k <= Reach; k++ {
				pos := r.IndexAfter(anchor, k)
				if got := SlotFor(pos, anchor, n); got != k+Reach {
					t.Fatalf("n=%d anchor=%d: SlotFor(%d) = %d, want %d", n, anchor, pos, got, k+Reach)
				}
			}
		}
	}
}

func TestSlotsAreAPermutation(t *testing.T) {
	c := newTestCarousel(t, 11, manualOptions())
	seen := make(map[int]bool)
	for _, it := range c.Items() {
		if it.Slot < 0 || it.Slot >= c.Size() || seen[it.Slot] {
			t.Fatalf("slot %d duplicated or out of range", it.Slot)
		}
		seen[it.Slot] = true
	}
}

func TestAdjustedDistanceCentersCurrent(t *testing.T) {
	c := newTestCarousel(t, 5, manualOptions())

	// 500 * 8/5 = 800 wide items, 96 gap: 800 - 400 - 3*896.
	if got, want := c.Distance(), -2288.0; got != want {
		t.Fatalf("Distance() = %v, want %v", got, want)
	}

	r := c.ItemRect(c.Current())
	if center := r.X + r.W/2; math.Abs(center-testViewW/2) > 1e-9 {
		t.Errorf("current item centered at %v, want %v", center, testViewW/2.0)
	}
}

func TestAdjustedDistanceWithMixedWidths(t *testing.T) {
	slides := []Slide{{Aspect: 2.0 / 3}, {Aspect: 16.0 / 9}, {Aspect: 1}, {Aspect: 2.0 / 3}}
	c, err := New(slides, manualOptions())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	c.Resize(testViewW, testViewH)
	k := &clock{c: c}

	for i := 0; i < c.Size()+2; i++ {
		r := c.ItemRect(c.Current())
		if center := r.X + r.W/2; math.Abs(center-testViewW/2) > 1e-6 {
			t.Fatalf("step %d: current item centered at %v", i, center)
		}
		c.Next()
		k.settle(t)
	}
}

func TestReadyMoveKeepsOutgoingItemInPlace(t *testing.T) {
	slides := []Slide{{Aspect: 1.5}, {Aspect: 0.7}, {Aspect: 1}, {Aspect: 2}, {Aspect: 1.2}, {Aspect: 0.9}, {Aspect: 1.7}, {Aspect: 1.1}, {Aspect: 0.6}}
	for size := -8; size <= 8; size++ {
		if size == 0 {
			continue
		}
		c, err := New(slides, manualOptions())
		if err != nil {
			t.Fatalf("New() error: %v", err)
		}
		c.Resize(testViewW, testViewH)

		cur := c.Current()
		before := c.ItemRect(cur).X
		c.move(size, c.Options().Duration)
		after := c.ItemRect(cur).X
		if math.Abs(before-after) > 1e-9 {
			t.Errorf("size %d: outgoing item jumped from %v to %v", size, before, after)
		}
		if c.Current() != c.IndexAfter(cur, size) {
			t.Errorf("size %d: Current() = %d, want %d", size, c.Current(), c.IndexAfter(cur, size))
		}
	}
}

func TestReadyMoveForwardKeepsWindowHead(t *testing.T) {
	c := newTestCarousel(t, 8, manualOptions())
	d := c.Distance()
	c.Next()
	if got := c.State().Anim.Start; got != d {
		t.Errorf("animation start = %v, want %v", got, d)
	}
	// One 800px item plus the 96px gap.
	if got := c.State().Anim.Flick; got != -896 {
		t.Errorf("animation flick = %v, want -896", got)
	}
}

func TestReadyMoveBackwardShiftsByEnteringItem(t *testing.T) {
	c := newTestCarousel(t, 8, manualOptions())
	d := c.Distance()
	c.Prev()
	if got := c.State().Anim.Start; got != d-896 {
		t.Errorf("animation start = %v, want %v", got, d-896)
	}
	if got := c.State().Anim.Flick; got != 896 {
		t.Errorf("animation flick = %v, want 896", got)
	}
}

func TestGoToLongJumpsTravelTheDirectPath(t *testing.T) {
	const span = 896.0
	tests := []struct {
		originals int
		from, to  int
	}{
		{5, 0, 4},
		{5, 4, 0},
		{6, 0, 4},
		{6, 0, 5},
		{6, 5, 0},
		{6, 5, 1},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d originals %d to %d", tt.originals, tt.from, tt.to), func(t *testing.T) {
			o := manualOptions()
			o.Start = tt.from
			c := newTestCarousel(t, tt.originals, o)
			k := &clock{c: c}

			cur := c.Current()
			size := tt.to - tt.from
			c.GoTo(tt.to)
			if !c.Animating() {
				t.Fatal("GoTo did not animate")
			}
			flick := c.State().Anim.Flick
			if want := -float64(size) * span; math.Abs(flick-want) > 1e-9 {
				t.Errorf("flick = %v, want %v", flick, want)
			}
			// Every item along the way sits next to the previous one.
			for i := 1; i <= abs(size); i++ {
				step := i * signOf(size)
				prev := c.ItemRect(c.IndexAfter(cur, step-signOf(size)))
				got := c.ItemRect(c.IndexAfter(cur, step))
				gap := got.X - prev.X
				if size < 0 {
					gap = -gap
				}
				if math.Abs(gap-span) > 1e-9 {
					t.Errorf("step %d: items %v apart, want %v", step, gap, span)
				}
			}

			k.settle(t)
			if c.Current()%tt.originals != tt.to {
				t.Errorf("Current() = %d, want original %d", c.Current(), tt.to)
			}
			if c.Distance() != c.AdjustedDistance(c.Current()) {
				t.Errorf("Distance() = %v, want %v", c.Distance(), c.AdjustedDistance(c.Current()))
			}
		})
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func signOf(n int) int {
	if n < 0 {
		return -1
	}
	return 1
}
