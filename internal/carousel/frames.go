package carousel

import "time"

// TickFunc is called once per frame with the host's monotonic clock.
// Returning false drops the subscription.
type TickFunc func(now time.Duration) bool

// Subscription is a handle to a TickFunc registered with Frames.
type Subscription struct {
	fn        TickFunc
	cancelled bool
}

// Cancel stops the subscription. It will not be called again.
func (s *Subscription) Cancel() {
	if s != nil {
		s.cancelled = true
	}
}

// Active reports whether the subscription will still receive ticks.
func (s *Subscription) Active() bool {
	return s != nil && !s.cancelled
}

// Frames is a repeating tick source. The host calls Tick from its render
// loop (or a test drives it with a virtual clock); subscribers registered
// during a tick first run on the next one.
type Frames struct {
	subs []*Subscription
	now  time.Duration
}

// Subscribe registers fn for every following tick.
func (f *Frames) Subscribe(fn TickFunc) *Subscription {
	s := &Subscription{fn: fn}
	f.subs = append(f.subs, s)
	return s
}

// Tick delivers now to every live subscriber.
func (f *Frames) Tick(now time.Duration) {
	f.now = now
	pending := f.subs
	f.subs = nil
	kept := pending[:0:0]
	for _, s := range pending {
		if s.cancelled {
			continue
		}
		if !s.fn(now) {
			s.cancelled = true
			continue
		}
		if !s.cancelled {
			kept = append(kept, s)
		}
	}
	// Subscribe calls made by callbacks landed in f.subs.
	f.subs = append(kept, f.subs...)
}

// Now returns the time of the last tick.
func (f *Frames) Now() time.Duration { return f.now }

// Len returns the number of live subscriptions.
func (f *Frames) Len() int {
	n := 0
	for _, s := range f.subs {
		if !s.cancelled {
			n++
		}
	}
	return n
}
