package myersdiff

import "fmt"

// BoundsError reports an out-of-range access into a k-line vector's
// backing buffer. It signals a programmer error in the engine itself
// rather than any property of the input sequences, so it is always raised
// as a panic, never returned as an error value.
type BoundsError struct {
	K, Delta, MaxSize int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("myersdiff: k-line %d out of bounds (delta=%d, maxSize=%d)", e.K, e.Delta, e.MaxSize)
}

// SnapshotCapacityError is returned by V.createCopy when the requested
// snapshot depth exceeds the vector's maxSize. Callers taking snapshots
// opportunistically (the middle-snake loop) should treat this as
// recoverable and simply skip the snapshot.
type SnapshotCapacityError struct {
	D, MaxSize int
}

func (e *SnapshotCapacityError) Error() string {
	return fmt.Sprintf("myersdiff: snapshot at d=%d exceeds maxSize=%d", e.D, e.MaxSize)
}

// SearchExhaustedError is returned by forward, reverse, and middle when the
// search runs to its iteration bound without finding a terminating or
// overlapping path. For valid inputs this should never happen; it signals
// an algorithm or input invariant violation.
type SearchExhaustedError struct {
	Search string // "forward", "reverse", or "middle"
	MaxD   int
}

func (e *SearchExhaustedError) Error() string {
	return fmt.Sprintf("myersdiff: %s search exhausted without termination at d=%d", e.Search, e.MaxD)
}

// TraceMismatchError is returned when a reconstructed trace disagrees with
// the furthest-reaching frontier recorded in V: by the greedy reconstructor
// walking its V-snapshots, or by the linear comparator's D0 edge-case
// branches checking that a leading or trailing diagonal's x- and y-gaps
// agree.
type TraceMismatchError struct {
	Context               string
	D, K                   int
	ExpectedX, ExpectedY   int
	ActualX, ActualY       int
}

func (e *TraceMismatchError) Error() string {
	return fmt.Sprintf("myersdiff: trace mismatch in %s at d=%d k=%d: expected (%d,%d), got (%d,%d)",
		e.Context, e.D, e.K, e.ExpectedX, e.ExpectedY, e.ActualX, e.ActualY)
}
