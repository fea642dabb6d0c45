package carousel

import "math"

// TapSlop is the largest net drag, in pixels, treated as a tap.
const TapSlop = 10

// ClassifyDrag turns a released drag into a step count. net is the first
// pointer sample minus the last; w1 and w2 are the widths of the next one
// and two items in the direction of travel. Crossing a third of w1 is one
// step, crossing two thirds of w1+w2 is two. Longer drags stay at two.
func ClassifyDrag(net, w1, w2 float64) int {
	dist := math.Abs(net)
	if dist <= TapSlop {
		return 0
	}
	steps := 0
	if dist > w1/3 {
		steps = 1
	}
	if dist > (w1+w2)*2/3 {
		steps = 2
	}
	if net < 0 {
		return -steps
	}
	return steps
}

// Press starts a drag at (x, y). It does nothing unless the carousel is
// flickable; otherwise it stops autoplay and the drag begins when idle.
func (c *Carousel) Press(x, y float64) {
	if !c.opts.Flickable {
		return
	}
	c.StopAutoplay()
	if c.state.Phase != PhaseIdle {
		return
	}
	c.state = c.state.pressed(x, y)
}

// DragTo follows the pointer 1:1 while a drag is active.
func (c *Carousel) DragTo(x float64) {
	if c.state.Phase != PhaseDragging {
		return
	}
	c.state = c.state.dragged(x)
}

// Release ends the drag. Short drags snap back; longer ones move one or two
// steps in half the configured duration.
func (c *Carousel) Release() {
	if c.state.Phase != PhaseDragging {
		return
	}
	st, net := c.state.released()
	c.state = st

	dir := 1
	if net < 0 {
		dir = -1
	}
	cur := c.state.Current
	w1 := c.items[c.ring.IndexAfter(cur, dir)].Width
	w2 := c.items[c.ring.IndexAfter(cur, 2*dir)].Width

	steps := ClassifyDrag(net, w1, w2)
	if steps == 0 {
		c.recenter()
		return
	}
	c.move(steps, c.opts.Duration/2)
}

// Dragging reports whether a drag is in progress.
func (c *Carousel) Dragging() bool {
	return c.state.Phase == PhaseDragging
}

// Wheel moves one step in the direction of dy (positive is forward).
func (c *Carousel) Wheel(dy float64) {
	if !c.opts.Flickable {
		return
	}
	c.StopAutoplay()
	if c.state.Phase != PhaseIdle || dy == 0 {
		return
	}
	if dy > 0 {
		c.move(1, c.opts.Duration)
	} else {
		c.move(-1, c.opts.Duration)
	}
}
