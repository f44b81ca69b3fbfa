package myersdiff

// point is a coordinate in the edit graph, used only to track the greedy
// reconstructor's current position as it walks a V-snapshot trail.
type point struct{ x, y int }

// compareGreedy runs the non-recursive greedy comparator of spec §4.6. It
// drives a single-direction search (forward) with the non-linear V sizing
// (maxSize = N+M) so that every snapshot survives for the full duration of
// the search, then reconstructs the snake list by walking the snapshot
// trail backward from the terminating snake forward returns.
func compareGreedy[T comparable](source, dest Sequence[T]) (*Results, error) {
	n, m := source.Len(), dest.Len()
	switch {
	case n == 0 && m == 0:
		return newPartialResults(nil, true, nil), nil
	case n == 0:
		return newPartialResults([]Snake{newFullSnake(0, 0, 0, m, true, 0, 0, 0, m, 0)}, true, nil), nil
	case m == 0:
		return newPartialResults([]Snake{newFullSnake(0, n, 0, 0, true, 0, 0, n, 0, 0)}, true, nil), nil
	}

	v := newV(n, m, Forward, n+m)
	terminal, vs, err := forward(source, dest, n, m, v, true)
	if err != nil {
		return nil, err
	}
	snakes, err := solveForward(terminal, vs, n, m)
	if err != nil {
		return nil, err
	}
	return newPartialResults(snakes, true, vs), nil
}

// snakeFromForwardSnapshot reconstructs the snake that advanced diagonal k
// to cost d, given the snapshot taken at d (cur) and the one taken at d-1
// (prev, or the initial stub when d == 0). Unlike calculateForward, it
// never touches source/dest: the diagonal length is recovered purely from
// the difference between the post-axis-move position and cur's recorded
// frontier.
func snakeFromForwardSnapshot(prev, cur *V, k, d, a0, n, b0, m int) Snake {
	down := k == -d || (k != d && prev.get(k-1) < prev.get(k+1))

	var xStart int
	prevK := k - 1
	if down {
		prevK = k + 1
		xStart = prev.get(k + 1)
	} else {
		xStart = prev.get(k - 1)
	}
	yStart := xStart - prevK

	xAxis := xStart
	if !down {
		xAxis++
	}
	xEnd := cur.get(k)
	diagonalLength := xEnd - xAxis

	s := newAxisSnake(a0, n, b0, m, true, xStart+a0, yStart+b0, down, diagonalLength)
	s.removeStubs(a0, n, b0, m)
	return s
}

// snakeFromReverseSnapshot is snakeFromForwardSnapshot's mirror image for a
// reverse-direction snapshot trail.
func snakeFromReverseSnapshot(prev, cur *V, k, d, delta, a0, n, b0, m int) Snake {
	up := k == d+delta || (k != -d+delta && prev.get(k-1) < prev.get(k+1))

	var xStart int
	prevK := k + 1
	if up {
		prevK = k - 1
		xStart = prev.get(k - 1)
	} else {
		xStart = prev.get(k + 1)
	}
	yStart := xStart - prevK

	xAxis := xStart
	if !up {
		xAxis--
	}
	xEnd := cur.get(k)
	diagonalLength := xAxis - xEnd

	s := newAxisSnake(a0, n, b0, m, false, xStart+a0, yStart+b0, up, diagonalLength)
	s.removeStubs(a0, n, b0, m)
	return s
}

// solveForward reconstructs the full snake list from a forward search's
// terminating snake and the snapshot trail taken on the way there. It
// starts from terminal itself (the d = len(vs) snake, known exactly, never
// snapshotted) and walks vs backward from d = len(vs)-1 to 0, prepending
// each recovered snake and re-deriving the current position from it, until
// the position reaches the origin.
func solveForward(terminal Snake, vs []*V, n, m int) ([]Snake, error) {
	snakes := []Snake{terminal}
	p := point{terminal.XStart(), terminal.YStart()}
	stub := newV(n, m, Forward, 1)
	stub.initStub(n, m)

	for d := len(vs) - 1; d >= 0 && p != (point{0, 0}); d-- {
		cur := vs[d]
		k := p.x - p.y
		xEnd, yEnd := cur.get(k), cur.get(k)-k
		if xEnd != p.x || yEnd != p.y {
			return nil, &TraceMismatchError{Context: "greedy solveForward", D: d, K: k, ExpectedX: p.x, ExpectedY: p.y, ActualX: xEnd, ActualY: yEnd}
		}

		prev := stub
		if d > 0 {
			prev = vs[d-1]
		}
		s := snakeFromForwardSnapshot(prev, cur, k, d, 0, n, 0, m)
		if s.XEnd() != p.x || s.YEnd() != p.y {
			return nil, &TraceMismatchError{Context: "greedy solveForward endpoint", D: d, K: k, ExpectedX: p.x, ExpectedY: p.y, ActualX: s.XEnd(), ActualY: s.YEnd()}
		}

		snakes = prependSnake(snakes, s)
		p = point{s.XStart(), s.YStart()}
	}
	return snakes, nil
}

// solveReverse is solveForward's mirror image for a reverse search's
// terminal snake and snapshot trail. terminal is closest to the origin and
// goes first; the loop walks vs from d = len(vs)-1 down to 0, each step
// recovering the snake one pass further back toward (n, m), and appends it
// after what has been recovered so far, until the position reaches (n, m).
func solveReverse(terminal Snake, vs []*V, n, m int) ([]Snake, error) {
	snakes := []Snake{terminal}
	delta := n - m
	p := point{terminal.XStart(), terminal.YStart()}
	stub := newV(n, m, Reverse, 1)
	stub.initStub(n, m)

	for d := len(vs) - 1; d >= 0 && p != (point{n, m}); d-- {
		cur := vs[d]
		k := p.x - p.y
		xEnd, yEnd := cur.get(k), cur.get(k)-k
		if xEnd != p.x || yEnd != p.y {
			return nil, &TraceMismatchError{Context: "greedy solveReverse", D: d, K: k, ExpectedX: p.x, ExpectedY: p.y, ActualX: xEnd, ActualY: yEnd}
		}

		prev := stub
		if d > 0 {
			prev = vs[d-1]
		}
		s := snakeFromReverseSnapshot(prev, cur, k, d, delta, 0, n, 0, m)
		if s.XEnd() != p.x || s.YEnd() != p.y {
			return nil, &TraceMismatchError{Context: "greedy solveReverse endpoint", D: d, K: k, ExpectedX: p.x, ExpectedY: p.y, ActualX: s.XEnd(), ActualY: s.YEnd()}
		}

		snakes = appendSnake(snakes, s)
		p = point{s.XStart(), s.YStart()}
	}
	return snakes, nil
}
