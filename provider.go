package myersdiff

// This file implements the LCS snake provider: forward, reverse, and
// middle-snake searches over a sub-rectangle of (source, dest). forward and
// reverse are complete single-direction searches that can build a
// V-snapshot trail (the greedy comparator uses forward; solveReverse
// consumes a trail built by reverse); middle is the bidirectional
// search the linear comparator uses to split a rectangle in two.

// forward searches from (0, 0) toward (n, m), advancing v one d-step at a
// time until it finds a terminating d-path. If collectSnapshots is true,
// every snapshot taken along the way is returned so a greedy reconstructor
// can walk it backward afterward.
func forward[T comparable](source, dest Sequence[T], n, m int, v *V, collectSnapshots bool) (Snake, []*V, error) {
	v.initStub(n, m)
	maxD := n + m
	var vs []*V
	if collectSnapshots {
		vs = make([]*V, 0, maxD+1)
	}
	for d := 0; d <= maxD; d++ {
		for k := -d; k <= d; k += 2 {
			s := calculateForward(v, k, d, 0, n, 0, m, source, dest)
			if s.XEnd() >= n && s.YEnd() >= m {
				return s, vs, nil
			}
		}
		if collectSnapshots {
			if cp, err := v.createCopy(d, true, 0); err == nil {
				vs = append(vs, cp)
			}
		}
	}
	return Snake{}, vs, &SearchExhaustedError{Search: "forward", MaxD: maxD}
}

// reverse searches from (n, m) toward (0, 0), the mirror image of forward.
func reverse[T comparable](source, dest Sequence[T], n, m int, v *V, collectSnapshots bool) (Snake, []*V, error) {
	v.initStub(n, m)
	delta := n - m
	maxD := n + m
	var vs []*V
	if collectSnapshots {
		vs = make([]*V, 0, maxD+1)
	}
	for d := 0; d <= maxD; d++ {
		for k := -d + delta; k <= d+delta; k += 2 {
			s := calculateReverse(v, k, d, 0, n, 0, m, delta, source, dest)
			if s.XEnd() <= 0 && s.YEnd() <= 0 {
				return s, vs, nil
			}
		}
		if collectSnapshots {
			if cp, err := v.createCopy(d, false, delta); err == nil {
				vs = append(vs, cp)
			}
		}
	}
	return Snake{}, vs, &SearchExhaustedError{Search: "reverse", MaxD: maxD}
}

// middle is the bidirectional search that finds the first overlap between
// a forward path from (a0, b0) and a reverse path from (a0+n, b0+m),
// splitting the sub-rectangle for the linear comparator's recursion.
//
// Myers' correctness condition governs when the overlap can be detected:
// when delta = n-m is odd, only the forward pass can discover it, at
// iteration 2d-1; when delta is even, only the reverse pass can, at
// iteration 2d. Snapshots are taken after every executed pass regardless of
// which one produces the returned snake, including the terminating pass
// itself — implemented below as a deferred, scope-exit action so a partial
// pass (one that returns before exhausting its k-range) still records its
// snapshot exactly once.
func middle[T comparable](source, dest Sequence[T], a0, n, b0, m int, vForward, vReverse *V, forwardVs, reverseVs *[]*V) (SnakePair, error) {
	maxSize := (n + m + 1) / 2
	delta := n - m
	deltaIsEven := delta%2 == 0

	vForward.initStub(n, m)
	vReverse.initStub(n, m)

	for d := 0; d <= maxSize; d++ {
		var found *Snake
		func() {
			if forwardVs != nil {
				defer func() {
					if cp, err := vForward.createCopy(d, true, 0); err == nil {
						*forwardVs = append(*forwardVs, cp)
					}
				}()
			}
			for k := -d; k <= d; k += 2 {
				s := calculateForward(vForward, k, d, a0, n, b0, m, source, dest)
				if !deltaIsEven && k >= delta-(d-1) && k <= delta+(d-1) && vForward.get(k) >= vReverse.get(k) {
					s.d = 2*d - 1
					found = &s
					return
				}
			}
		}()
		if found != nil {
			return SnakePair{D: found.d, Forward: found}, nil
		}

		func() {
			if reverseVs != nil {
				defer func() {
					if cp, err := vReverse.createCopy(d, false, delta); err == nil {
						*reverseVs = append(*reverseVs, cp)
					}
				}()
			}
			for k := -d + delta; k <= d+delta; k += 2 {
				s := calculateReverse(vReverse, k, d, a0, n, b0, m, delta, source, dest)
				if deltaIsEven && k >= -d && k <= d && vReverse.get(k) <= vForward.get(k) {
					s.d = 2 * d
					found = &s
					return
				}
			}
		}()
		if found != nil {
			return SnakePair{D: found.d, Reverse: found}, nil
		}
	}
	return SnakePair{}, &SearchExhaustedError{Search: "middle", MaxD: maxSize}
}
