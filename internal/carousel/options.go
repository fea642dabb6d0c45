package carousel

import "time"

// Defaults for Options fields left at their zero value.
const (
	DefaultAspectRatio = 8.0 / 5.0
	DefaultGap         = 96
	DefaultInterval    = 3000 * time.Millisecond
	DefaultDuration    = 500 * time.Millisecond

	// MinAutoplayInterval is the shortest interval that enables autoplay.
	MinAutoplayInterval = 1000 * time.Millisecond
)

// Options configures a Carousel. It is read once by New.
type Options struct {
	// Flickable enables drag and wheel input.
	Flickable bool
	// AspectRatio is the width/height ratio of an item box. Slides with
	// their own aspect override it.
	AspectRatio float64
	// Gap is the horizontal spacing between items in pixels.
	Gap float64
	// Interval is the autoplay period. Values below MinAutoplayInterval
	// disable autoplay.
	Interval time.Duration
	// Duration is the length of a full one-step animation.
	Duration time.Duration
	// Start is the original index shown first.
	Start int
}

// DefaultOptions returns the stock configuration.
func DefaultOptions() Options {
	return Options{
		AspectRatio: DefaultAspectRatio,
		Gap:         DefaultGap,
		Interval:    DefaultInterval,
		Duration:    DefaultDuration,
	}
}

// normalized clamps out-of-range values back to their defaults.
func (o Options) normalized() Options {
	if o.AspectRatio <= 0 {
		o.AspectRatio = DefaultAspectRatio
	}
	if o.Gap < 0 {
		o.Gap = DefaultGap
	}
	if o.Interval < 0 {
		o.Interval = 0
	}
	if o.Duration <= 0 {
		o.Duration = DefaultDuration
	}
	return o
}

// Autoplay reports whether the interval is long enough to enable autoplay.
func (o Options) Autoplay() bool {
	return o.Interval >= MinAutoplayInterval
}
