package myersdiff

// Direction distinguishes a k-line vector's search direction.
type Direction int

const (
	// Forward vectors search from (0, 0) toward (N, M).
	Forward Direction = iota
	// Reverse vectors search from (N, M) toward (0, 0).
	Reverse
)

// String returns a lower-case name for d.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	default:
		return "unknown"
	}
}

// V is the k-line vector described in spec §4.1: a translated, sign-
// symmetric buffer storing the furthest-reaching x-coordinate on each
// diagonal k = x - y. It is addressed as data[k - delta + maxSize], which
// avoids per-access branching and keeps the diagonal range centered on
// whichever sub-rectangle initStub was last called for.
type V struct {
	direction  Direction
	sourceSize int // N, the size of the top-level source sequence
	destSize   int // M, the size of the top-level dest sequence
	maxSize    int
	delta      int
	data       []int
}

// newV allocates a vector of the given direction sized to hold diagonals
// k in [delta-maxSize, delta+maxSize] for a rectangle of size (n, m).
// maxSize must be >= 1.
func newV(n, m int, direction Direction, maxSize int) *V {
	if maxSize < 1 {
		maxSize = 1
	}
	delta := 0
	if direction == Reverse {
		delta = n - m
	}
	return &V{
		direction:  direction,
		sourceSize: n,
		destSize:   m,
		maxSize:    maxSize,
		delta:      delta,
		data:       make([]int, 2*maxSize+1),
	}
}

// idx translates diagonal k into an offset into data.
func (v *V) idx(k int) int { return k - v.delta + v.maxSize }

// inBounds reports whether the translated index for k falls within data.
func (v *V) inBounds(k int) bool {
	i := v.idx(k)
	return i >= 0 && i < len(v.data)
}

// get returns V[k]. It panics with a *BoundsError if k is out of range;
// this is a programmer error, never a property of the input sequences.
func (v *V) get(k int) int {
	if !v.inBounds(k) {
		panic(&BoundsError{K: k, Delta: v.delta, MaxSize: v.maxSize})
	}
	return v.data[v.idx(k)]
}

// set writes V[k] = value under the same bounds precondition as get.
func (v *V) set(k, value int) {
	if !v.inBounds(k) {
		panic(&BoundsError{K: k, Delta: v.delta, MaxSize: v.maxSize})
	}
	v.data[v.idx(k)] = value
}

// y returns the implied y-coordinate of the furthest-reaching point on
// diagonal k.
func (v *V) y(k int) int { return v.get(k) - k }

// initStub resets delta for the sub-rectangle (n, m) currently being
// searched and seeds the single stub entry the search loops read before
// any d-step has executed. Forward vectors always have delta = 0; reverse
// vectors take delta = n - m for whichever sub-rectangle initStub was
// called with, which is why middle reinitializes both vectors on every
// recursion level instead of reusing a fixed top-level delta.
func (v *V) initStub(n, m int) {
	switch v.direction {
	case Forward:
		v.delta = 0
		v.set(1, 0)
	case Reverse:
		v.delta = n - m
		v.set(v.delta-1, n)
	}
}

// createCopy produces a compact snapshot of the current furthest-reaching
// frontier for iteration count d, used by trace reconstruction to re-derive
// which k-line produced the advance at each d. It returns a
// *SnapshotCapacityError if d (floored at 1) exceeds v.maxSize.
func (v *V) createCopy(d int, isForward bool, deltaSize int) (*V, error) {
	dprime := d
	if dprime < 1 {
		dprime = 1
	}
	if dprime > v.maxSize {
		return nil, &SnapshotCapacityError{D: d, MaxSize: v.maxSize}
	}

	copyDelta := 0
	if !isForward {
		copyDelta = deltaSize
	}

	cp := &V{
		direction:  v.direction,
		sourceSize: v.sourceSize,
		destSize:   v.destSize,
		maxSize:    dprime,
		delta:      copyDelta,
		data:       make([]int, 2*dprime+1),
	}

	startPos := (v.maxSize - deltaSize) - (dprime - cp.delta)
	for i := 0; i <= 2*dprime; i++ {
		cp.data[i] = v.data[i+startPos]
	}
	return cp, nil
}
