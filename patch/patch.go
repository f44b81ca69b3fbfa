// Package patch reconstructs a destination sequence from a source sequence
// and a myersdiff.Results, as a round-trip check on the edit script: spec's
// round-trip law says replaying a Results against source must reproduce
// dest exactly.
package patch

import (
	"fmt"

	"github.com/ksnake/myersdiff"
)

// MismatchError reports that Apply's reconstructed sequence did not match
// the length of dest — an internal consistency
// failure, not one of myersdiff's own error kinds, since it can only arise
// from a caller passing a Results that was not produced by the same
// source/dest pair.
type MismatchError struct {
	ExpectedLen, ActualLen int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("patch: reconstructed length %d, want %d", e.ActualLen, e.ExpectedLen)
}

// Apply replays r's snake list against source and returns the resulting
// sequence, which must equal dest element-for-element when r was produced
// by myersdiff.Compare(source, dest, ...). Each snake's ranges are read in
// ascending index order regardless of whether the snake was discovered by
// a forward or a reverse search: a reverse snake stores XStart as its high
// endpoint, so min/max rather than XStart+i addresses its elements. A
// reverse snake's diagonal run sits below its axis move in index order, so
// the insert and diagonal slices must be emitted diagonal-first for reverse
// snakes and insert-first for forward snakes.
func Apply[T comparable](r *myersdiff.Results, source, dest myersdiff.Sequence[T]) ([]T, error) {
	var out []T
	for _, s := range r.Snakes() {
		appendInsert := func() {
			if s.Inserted() > 0 {
				lo, hi := minMax(s.YStart(), s.YMid())
				for i := lo; i < hi; i++ {
					out = append(out, dest.At(i))
				}
			}
		}
		appendDiagonal := func() {
			lo, hi := minMax(s.XMid(), s.XEnd())
			for i := lo; i < hi; i++ {
				out = append(out, source.At(i))
			}
		}
		if s.IsForward() {
			appendInsert()
			appendDiagonal()
		} else {
			appendDiagonal()
			appendInsert()
		}
	}
	if len(out) != dest.Len() {
		return out, &MismatchError{ExpectedLen: dest.Len(), ActualLen: len(out)}
	}
	return out, nil
}

func minMax(a, b int) (int, int) {
	if a < b {
		return a, b
	}
	return b, a
}
