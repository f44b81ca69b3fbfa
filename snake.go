package myersdiff

// Snake is an immutable-after-construction record of one diff segment: up
// to one axis move (a deletion or an insertion, never both) followed by a
// diagonal run of matching elements. xStart/yStart are stored in the
// top-level rectangle's global coordinates; xMid/yMid/xEnd/yEnd are derived
// from them on read.
type Snake struct {
	xStart, yStart int
	deleted        int
	inserted       int
	diagonalLength int
	isForward      bool
	delta          int
	isMiddle       bool
	d              int
}

func (s Snake) sign() int {
	if s.isForward {
		return 1
	}
	return -1
}

// XStart returns the snake's starting x-coordinate in global rectangle
// coordinates.
func (s Snake) XStart() int { return s.xStart }

// YStart returns the snake's starting y-coordinate in global rectangle
// coordinates.
func (s Snake) YStart() int { return s.yStart }

// Deleted returns the number of elements of the source consumed by this
// snake's axis move. At most one of Deleted/Inserted is positive unless the
// snake was produced by combining same-axis neighbors.
func (s Snake) Deleted() int { return s.deleted }

// Inserted returns the number of elements of the dest produced by this
// snake's axis move.
func (s Snake) Inserted() int { return s.inserted }

// DiagonalLength returns the length of the matching run that follows the
// axis move.
func (s Snake) DiagonalLength() int { return s.diagonalLength }

// IsForward reports whether this snake was produced by a forward search.
func (s Snake) IsForward() bool { return s.isForward }

// IsMiddle reports whether this snake was the middle snake of the linear
// comparator's top-level (depth 0) search; middle snakes of deeper
// recursion levels are not marked.
func (s Snake) IsMiddle() bool { return s.isMiddle }

// D returns the iteration count at which this snake's overlap or
// termination was detected, or 0 if no cost label was recorded.
func (s Snake) D() int { return s.d }

// XMid returns the x-coordinate after the axis move, before the diagonal
// run.
func (s Snake) XMid() int { return s.xStart + s.sign()*s.deleted }

// YMid returns the y-coordinate after the axis move, before the diagonal
// run.
func (s Snake) YMid() int { return s.yStart + s.sign()*s.inserted }

// XEnd returns the x-coordinate after the axis move and the diagonal run.
func (s Snake) XEnd() int { return s.xStart + s.sign()*(s.deleted+s.diagonalLength) }

// YEnd returns the y-coordinate after the axis move and the diagonal run.
func (s Snake) YEnd() int { return s.yStart + s.sign()*(s.inserted+s.diagonalLength) }

// newFullSnake constructs a snake directly from its edit-graph fields.
// sourceStart, n, destStart, m describe the sub-rectangle the snake belongs
// to; they are only used to derive delta for reverse snakes.
func newFullSnake(sourceStart, n, destStart, m int, isForward bool, xStart, yStart, deleted, inserted, diagonalLength int) Snake {
	s := Snake{
		xStart:         xStart,
		yStart:         yStart,
		deleted:        deleted,
		inserted:       inserted,
		diagonalLength: diagonalLength,
		isForward:      isForward,
	}
	if !isForward {
		s.delta = (sourceStart + n) - (destStart + m)
	}
	return s
}

// newAxisSnake constructs a snake whose axis move is a single deletion
// (down == false) or a single insertion (down == true), as produced
// directly by calculateForward/calculateReverse.
func newAxisSnake(sourceStart, n, destStart, m int, isForward bool, xStart, yStart int, down bool, diagonalLength int) Snake {
	deleted, inserted := 1, 0
	if down {
		deleted, inserted = 0, 1
	}
	return newFullSnake(sourceStart, n, destStart, m, isForward, xStart, yStart, deleted, inserted, diagonalLength)
}

// newDiagonalSnake constructs a snake with no axis move at all: a pure run
// of matches, as emitted for the leading/trailing diagonal of a rectangle
// in the linear comparator's D0 edge case.
func newDiagonalSnake(sourceStart, n, destStart, m int, isForward bool, xStart, yStart, diagonalLength int) Snake {
	return newFullSnake(sourceStart, n, destStart, m, isForward, xStart, yStart, 0, 0, diagonalLength)
}

// removeStubs cancels a spurious single-insertion axis move that the
// search introduces at the rectangle's boundary when the furthest-reaching
// stub value is read back as if it were a real advance.
func (s *Snake) removeStubs(a0, n, b0, m int) {
	if s.inserted == 1 && s.isForward && s.xStart == a0 && s.yStart == b0-1 {
		s.yStart++
		s.inserted = 0
	}
	if s.inserted == 1 && !s.isForward && s.xStart == a0+n && s.yStart == b0+m+1 {
		s.yStart--
		s.inserted = 0
	}
}

// append merges other into s as a trailing continuation of the same axis
// move, succeeding only when both snakes move along the same axis (both
// deletions or both insertions, never mixed), s has no diagonal run of its
// own yet (so it is still a "trailing" axis-only segment), and s's
// axis-moved point coincides with other's starting point so that combining
// them drops no edit. On success s absorbs other's counts and contracts its
// start to whichever of the two starts is closer to the rectangle's origin
// (forward) or far corner (reverse).
func (s *Snake) append(other Snake) bool {
	if s.isForward != other.isForward {
		return false
	}
	sameAxis := (s.deleted > 0 && other.deleted > 0) || (s.inserted > 0 && other.inserted > 0)
	if !sameAxis || s.diagonalLength > 0 {
		return false
	}
	if s.isForward {
		if s.xStart+s.deleted != other.xStart || s.yStart+s.inserted != other.yStart {
			return false
		}
		s.xStart = min(s.xStart, other.xStart)
		s.yStart = min(s.yStart, other.yStart)
	} else {
		if s.xStart-s.deleted != other.xStart || s.yStart-s.inserted != other.yStart {
			return false
		}
		s.xStart = max(s.xStart, other.xStart)
		s.yStart = max(s.yStart, other.yStart)
	}
	s.deleted += other.deleted
	s.inserted += other.inserted
	s.diagonalLength += other.diagonalLength
	return true
}

// calculateForward performs one forward d-step on diagonal k over the
// sub-rectangle (a0, n, b0, m), mutating v in place and returning the
// resulting snake in global coordinates.
func calculateForward[T comparable](v *V, k, d, a0, n, b0, m int, source, dest Sequence[T]) Snake {
	down := k == -d || (k != d && v.get(k-1) < v.get(k+1))

	var xStart int
	prevK := k - 1
	if down {
		prevK = k + 1
		xStart = v.get(k + 1)
	} else {
		xStart = v.get(k - 1)
	}
	yStart := xStart - prevK

	xEnd := xStart
	if !down {
		xEnd++
	}
	yEnd := xEnd - k

	diagonalLength := 0
	for xEnd < n && yEnd < m && source.At(xEnd+a0) == dest.At(yEnd+b0) {
		xEnd++
		yEnd++
		diagonalLength++
	}
	v.set(k, xEnd)

	s := newAxisSnake(a0, n, b0, m, true, xStart+a0, yStart+b0, down, diagonalLength)
	s.removeStubs(a0, n, b0, m)
	return s
}

// calculateReverse performs one reverse d-step on diagonal k over the
// sub-rectangle (a0, n, b0, m) whose delta is n-m, mutating v in place and
// returning the resulting snake in global coordinates.
func calculateReverse[T comparable](v *V, k, d, a0, n, b0, m, delta int, source, dest Sequence[T]) Snake {
	up := k == d+delta || (k != -d+delta && v.get(k-1) < v.get(k+1))

	var xStart int
	prevK := k + 1
	if up {
		prevK = k - 1
		xStart = v.get(k - 1)
	} else {
		xStart = v.get(k + 1)
	}
	yStart := xStart - prevK

	xEnd := xStart
	if !up {
		xEnd--
	}
	yEnd := xEnd - k

	diagonalLength := 0
	for xEnd > 0 && yEnd > 0 && source.At(xEnd+a0-1) == dest.At(yEnd+b0-1) {
		xEnd--
		yEnd--
		diagonalLength++
	}
	v.set(k, xEnd)

	s := newAxisSnake(a0, n, b0, m, false, xStart+a0, yStart+b0, up, diagonalLength)
	s.removeStubs(a0, n, b0, m)
	return s
}
