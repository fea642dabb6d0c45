package carousel

const (
	// MinRingSize is the smallest ring the carousel runs on. Shorter source
	// lists are padded with copies of themselves.
	MinRingSize = 7
	// Reach is how many neighbours on each side of the current item stay
	// laid out contiguously.
	Reach = 3
)

// Ring is circular index arithmetic over a fixed number of items.
type Ring struct {
	n int
}

// NewRing returns a ring of n items. n must be positive.
func NewRing(n int) Ring {
	return Ring{n: n}
}

// Size returns the number of items in the ring.
func (r Ring) Size() int { return r.n }

// IndexAfter returns the index steps away from current, wrapped into [0, Size).
// steps may be negative or larger than the ring.
func (r Ring) IndexAfter(current, steps int) int {
	return ((current+steps)%r.n + r.n) % r.n
}

// PaddedCount returns the smallest multiple of n that is at least MinRingSize.
func PaddedCount(n int) int {
	if n <= 0 {
		return 0
	}
	copies := (MinRingSize + n - 1) / n
	return n * copies
}
