package carousel

// SlotFor returns the layout slot of ring position pos when the window is
// anchored on anchor. Slots 0..2*Reach hold anchor-Reach..anchor+Reach in
// order; the rest of the ring follows.
func SlotFor(pos, anchor, n int) int {
	return slotFrom(pos, anchor-Reach, n)
}

// slotFrom returns the slot of pos when the layout starts at head.
func slotFrom(pos, head, n int) int {
	return ((pos-head)%n + n) % n
}

// assignSlots lays the ring out starting at head.
func (c *Carousel) assignSlots(head int) {
	n := c.ring.Size()
	c.head = c.ring.IndexAfter(head, 0)
	for i := range c.items {
		c.items[i].Slot = slotFrom(i, c.head, n)
	}
}

// anchor lays the ring out with pos centered in a 2*Reach+1 window.
func (c *Carousel) anchor(pos int) {
	c.assignSlots(c.ring.IndexAfter(pos, -Reach))
}

// span is an item's width plus the trailing gap.
func (c *Carousel) span(pos int) float64 {
	return c.items[pos].Width + c.opts.Gap
}

// prefix returns the layout x of pos, relative to the row origin, when the
// layout starts at head.
func (c *Carousel) prefix(head, pos int) float64 {
	x := 0.0
	for k := range slotFrom(pos, head, c.ring.Size()) {
		x += c.span(c.ring.IndexAfter(head, k))
	}
	return x
}

// centeredAt returns the row offset that centers index when the layout
// starts at head.
func (c *Carousel) centeredAt(head, index int) float64 {
	return c.viewW/2 - c.items[index].Width/2 - c.prefix(head, index)
}

// readyMove lays the slots out so every item from the current one to the
// one size steps away sits in a single run in the direction of travel, with
// Reach neighbours beyond each end. It returns how far the row origin has to
// move so the outgoing item keeps its screen position, and the offset that
// centers the destination under the new layout.
//
// A forward move keeps the head at current-Reach, so the shift is zero. A
// backward move starts the layout at next-Reach and the shift is minus the
// span of every item that entered the head.
func (c *Carousel) readyMove(size int) (shift, stop float64) {
	cur := c.state.Current
	next := c.ring.IndexAfter(cur, size)
	head := c.ring.IndexAfter(cur, -Reach)
	if size < 0 {
		head = c.ring.IndexAfter(next, -Reach)
	}
	shift = c.prefix(c.head, cur) - c.prefix(head, cur)
	c.assignSlots(head)
	return shift, c.centeredAt(head, next)
}

// AdjustedDistance returns the row offset that centers index in the viewport
// once the window is anchored on it.
func (c *Carousel) AdjustedDistance(index int) float64 {
	return c.centeredAt(c.ring.IndexAfter(index, -Reach), index)
}

// Rect is an on-screen item box relative to the carousel's origin.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the rect's right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Rects lays out every ring item by slot and returns their boxes indexed by
// ring position.
func (c *Carousel) Rects() []Rect {
	n := c.ring.Size()
	order := make([]int, n)
	for i, it := range c.items {
		order[it.Slot] = i
	}
	rects := make([]Rect, n)
	x := c.state.Distance
	for _, pos := range order {
		it := c.items[pos]
		rects[pos] = Rect{X: x, Y: 0, W: it.Width, H: it.Height}
		x += it.Width + c.opts.Gap
	}
	return rects
}

// ItemRect returns the on-screen box of the item at ring position pos.
func (c *Carousel) ItemRect(pos int) Rect {
	return c.Rects()[pos]
}
