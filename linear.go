package myersdiff

// linearComparator is the recursive divide-and-conquer driver described in
// spec §4.5. It reuses a single pair of V buffers across every recursion
// level: middle reinitializes them via initStub on entry, so sibling
// recursions never observe each other's live state even though they share
// the same backing arrays. The recursion is strictly depth-first — the
// top-left rectangle is fully solved before the bottom-right one starts —
// which is what makes that sharing safe.
type linearComparator[T comparable] struct {
	source, dest         Sequence[T]
	vForward, vReverse    *V
	snakes                []Snake
	forwardVs, reverseVs   []*V
	capture                bool
}

// compareLinear runs the linear comparator over the full (source, dest)
// rectangle.
func compareLinear[T comparable](source, dest Sequence[T], capture bool) (*Results, error) {
	n, m := source.Len(), dest.Len()
	maxSize := (n+m)/2 + 1
	lc := &linearComparator[T]{
		source:   source,
		dest:     dest,
		vForward: newV(n, m, Forward, maxSize),
		vReverse: newV(n, m, Reverse, maxSize),
		capture:  capture,
	}
	if err := lc.compare(0, 0, n, 0, m); err != nil {
		return nil, err
	}
	return newResults(lc.snakes, lc.forwardVs, lc.reverseVs), nil
}

// compare is the recursive helper of spec §4.5. depth is used only to
// decide whether this call's middle-snake search should record V-snapshots
// (only the top-level call does) and whether its middle snake is marked
// IsMiddle.
func (lc *linearComparator[T]) compare(depth, a0, n, b0, m int) error {
	if m == 0 && n > 0 {
		lc.snakes = appendSnake(lc.snakes, newFullSnake(a0, n, b0, 0, true, a0, b0, n, 0, 0))
		return nil
	}
	if n == 0 && m > 0 {
		lc.snakes = appendSnake(lc.snakes, newFullSnake(a0, 0, b0, m, true, a0, b0, 0, m, 0))
		return nil
	}
	if n <= 0 || m <= 0 {
		return nil
	}

	var forwardVs, reverseVs *[]*V
	if depth == 0 && lc.capture {
		forwardVs, reverseVs = &lc.forwardVs, &lc.reverseVs
	}

	pair, err := middle(lc.source, lc.dest, a0, n, b0, m, lc.vForward, lc.vReverse, forwardVs, reverseVs)
	if err != nil {
		return err
	}
	if depth == 0 {
		if pair.Forward != nil {
			pair.Forward.isMiddle = true
		}
		if pair.Reverse != nil {
			pair.Reverse.isMiddle = true
		}
	}

	if pair.D > 1 {
		var x, y int
		if pair.Forward != nil {
			x, y = pair.Forward.XStart(), pair.Forward.YStart()
		} else {
			x, y = pair.Reverse.XEnd(), pair.Reverse.YEnd()
		}
		if err := lc.compare(depth+1, a0, x-a0, b0, y-b0); err != nil {
			return err
		}

		if pair.Forward != nil {
			lc.snakes = appendSnake(lc.snakes, *pair.Forward)
		}
		if pair.Reverse != nil {
			lc.snakes = appendSnake(lc.snakes, *pair.Reverse)
		}

		var u, v int
		if pair.Reverse != nil {
			u, v = pair.Reverse.XStart(), pair.Reverse.YStart()
		} else {
			u, v = pair.Forward.XEnd(), pair.Forward.YEnd()
		}
		return lc.compare(depth+1, u, a0+n-u, v, b0+m-v)
	}

	if pair.Forward != nil {
		f := pair.Forward
		if f.XStart() > a0 {
			xgap, ygap := f.XStart()-a0, f.YStart()-b0
			if xgap != ygap {
				return &TraceMismatchError{Context: "missed D0 forward", D: pair.D, ExpectedX: xgap, ExpectedY: xgap, ActualX: xgap, ActualY: ygap}
			}
			lc.snakes = appendSnake(lc.snakes, newDiagonalSnake(a0, n, b0, m, true, a0, b0, xgap))
		}
		lc.snakes = appendSnake(lc.snakes, *f)
	}
	if pair.Reverse != nil {
		r := pair.Reverse
		lc.snakes = appendSnake(lc.snakes, *r)
		if r.XStart() < a0+n {
			xgap, ygap := a0+n-r.XStart(), b0+m-r.YStart()
			if xgap != ygap {
				return &TraceMismatchError{Context: "missed D0 reverse", D: pair.D, ExpectedX: xgap, ExpectedY: xgap, ActualX: xgap, ActualY: ygap}
			}
			lc.snakes = appendSnake(lc.snakes, newDiagonalSnake(a0, n, b0, m, false, a0+n, b0+m, xgap))
		}
	}
	return nil
}
