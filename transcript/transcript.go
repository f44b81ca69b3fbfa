// Package transcript renders a myersdiff.Results as a human-readable edit
// transcript: one line per retained element, prefixed "-" for a deletion,
// "+" for an insertion, "=" for an unchanged element. It has no dependency
// on the myersdiff package's internals beyond the public Snake accessors.
package transcript

import (
	"fmt"
	"io"

	"github.com/ksnake/myersdiff"
)

// Write emits the transcript of r to w, reading deleted elements from
// source and inserted elements from dest. stringify converts a single
// element to its display form.
func Write[T comparable](w io.Writer, r *myersdiff.Results, source, dest myersdiff.Sequence[T], stringify func(T) string) error {
	for _, s := range r.Snakes() {
		if err := writeSnake(w, s, source, dest, stringify); err != nil {
			return err
		}
	}
	return nil
}

// writeSnake prints a snake's elements in ascending index order. A snake
// found by a reverse search stores XStart as its high endpoint (XStart >=
// XMid >= XEnd), the opposite of a forward snake's layout, so every range
// below is read from min to max rather than from XStart forward. It also
// means a reverse snake's diagonal run sits below its axis move in index
// order, so the axis-move and diagonal blocks print diagonal-first for
// reverse snakes and axis-move-first for forward snakes.
func writeSnake[T comparable](w io.Writer, s myersdiff.Snake, source, dest myersdiff.Sequence[T], stringify func(T) string) error {
	writeAxis := func() error {
		if s.Deleted() > 0 {
			lo, hi := minMax(s.XStart(), s.XMid())
			for i := lo; i < hi; i++ {
				if err := writeLine(w, "-", stringify(source.At(i))); err != nil {
					return err
				}
			}
		}
		if s.Inserted() > 0 {
			lo, hi := minMax(s.YStart(), s.YMid())
			for i := lo; i < hi; i++ {
				if err := writeLine(w, "+", stringify(dest.At(i))); err != nil {
					return err
				}
			}
		}
		return nil
	}
	writeDiagonal := func() error {
		lo, hi := minMax(s.XMid(), s.XEnd())
		for i := lo; i < hi; i++ {
			if err := writeLine(w, "=", stringify(source.At(i))); err != nil {
				return err
			}
		}
		return nil
	}
	if s.IsForward() {
		if err := writeAxis(); err != nil {
			return err
		}
		return writeDiagonal()
	}
	if err := writeDiagonal(); err != nil {
		return err
	}
	return writeAxis()
}

func minMax(a, b int) (int, int) {
	if a < b {
		return a, b
	}
	return b, a
}

func writeLine(w io.Writer, prefix, text string) error {
	_, err := fmt.Fprintf(w, "  %s %s\n", prefix, text)
	return err
}
