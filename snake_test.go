package myersdiff

import "testing"

func TestSnakeDerivedCoordinatesForward(t *testing.T) {
	s := newAxisSnake(0, 10, 0, 10, true, 2, 3, false, 4)
	if got := s.XMid(); got != 3 {
		t.Errorf("XMid() = %d, want 3", got)
	}
	if got := s.YMid(); got != 3 {
		t.Errorf("YMid() = %d, want 3", got)
	}
	if got := s.XEnd(); got != 7 {
		t.Errorf("XEnd() = %d, want 7", got)
	}
	if got := s.YEnd(); got != 7 {
		t.Errorf("YEnd() = %d, want 7", got)
	}
}

func TestSnakeDerivedCoordinatesReverse(t *testing.T) {
	s := newAxisSnake(0, 10, 0, 10, false, 8, 7, false, 3)
	if got := s.XEnd(); got != 4 {
		t.Errorf("XEnd() = %d, want 4", got)
	}
	if got := s.YEnd(); got != 4 {
		t.Errorf("YEnd() = %d, want 4", got)
	}
}

func TestRemoveStubsForward(t *testing.T) {
	s := newAxisSnake(0, 5, 0, 5, true, 0, -1, true, 0)
	s.removeStubs(0, 5, 0, 5)
	if s.Inserted() != 0 {
		t.Errorf("Inserted() = %d, want 0 after removeStubs", s.Inserted())
	}
	if s.YStart() != 0 {
		t.Errorf("YStart() = %d, want 0 after removeStubs", s.YStart())
	}
}

func TestRemoveStubsReverse(t *testing.T) {
	s := newAxisSnake(0, 5, 0, 5, false, 5, 6, true, 0)
	s.removeStubs(0, 5, 0, 5)
	if s.Inserted() != 0 {
		t.Errorf("Inserted() = %d, want 0 after removeStubs", s.Inserted())
	}
	if s.YStart() != 5 {
		t.Errorf("YStart() = %d, want 5 after removeStubs", s.YStart())
	}
}

func TestSnakeAppendMergesAdjacentDeletions(t *testing.T) {
	s := newAxisSnake(0, 10, 0, 10, true, 0, 0, false, 0)
	other := newAxisSnake(0, 10, 0, 10, true, 1, 0, false, 0)
	if !s.append(other) {
		t.Fatal("append() = false, want true")
	}
	if s.Deleted() != 2 {
		t.Errorf("Deleted() = %d, want 2", s.Deleted())
	}
	if s.XStart() != 0 {
		t.Errorf("XStart() = %d, want 0", s.XStart())
	}
}

func TestSnakeAppendRejectsMismatchedAxis(t *testing.T) {
	s := newAxisSnake(0, 10, 0, 10, true, 0, 0, false, 0)
	other := newAxisSnake(0, 10, 0, 10, true, 1, 0, true, 0)
	if s.append(other) {
		t.Fatal("append() = true, want false for mismatched axis")
	}
}

func TestSnakeAppendRejectsNonAdjacent(t *testing.T) {
	s := newAxisSnake(0, 10, 0, 10, true, 0, 0, false, 0)
	other := newAxisSnake(0, 10, 0, 10, true, 5, 0, false, 0)
	if s.append(other) {
		t.Fatal("append() = true, want false for non-adjacent snakes")
	}
}

func TestSnakeAppendRejectsWhenTailHasDiagonal(t *testing.T) {
	s := newAxisSnake(0, 10, 0, 10, true, 0, 0, false, 3)
	other := newAxisSnake(0, 10, 0, 10, true, 4, 1, false, 0)
	if s.append(other) {
		t.Fatal("append() = true, want false when tail already has a diagonal run")
	}
}
