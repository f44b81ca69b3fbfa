package myersdiff

import "testing"

func TestCompareLinearEmptyEmpty(t *testing.T) {
	r, err := compareLinear[byte](Slice[byte](nil), Slice[byte](nil), false)
	if err != nil {
		t.Fatalf("compareLinear: %v", err)
	}
	if len(r.Snakes()) != 0 {
		t.Errorf("Snakes() = %v, want empty", r.Snakes())
	}
}

func TestCompareLinearEmptySource(t *testing.T) {
	r, err := compareLinear[byte](Slice[byte](nil), Slice[byte]("abc"), false)
	if err != nil {
		t.Fatalf("compareLinear: %v", err)
	}
	snakes := r.Snakes()
	if len(snakes) != 1 {
		t.Fatalf("Snakes() has %d entries, want 1", len(snakes))
	}
	s := snakes[0]
	if s.Inserted() != 3 || s.Deleted() != 0 || s.DiagonalLength() != 0 {
		t.Errorf("snake = %+v, want a pure insert of length 3", s)
	}
}

func TestCompareLinearEmptyDest(t *testing.T) {
	r, err := compareLinear[byte](Slice[byte]("abc"), Slice[byte](nil), false)
	if err != nil {
		t.Fatalf("compareLinear: %v", err)
	}
	snakes := r.Snakes()
	if len(snakes) != 1 {
		t.Fatalf("Snakes() has %d entries, want 1", len(snakes))
	}
	s := snakes[0]
	if s.Deleted() != 3 || s.Inserted() != 0 || s.DiagonalLength() != 0 {
		t.Errorf("snake = %+v, want a pure delete of length 3", s)
	}
}

func TestCompareLinearIdentical(t *testing.T) {
	r, err := compareLinear[byte](Slice[byte]("abc"), Slice[byte]("abc"), false)
	if err != nil {
		t.Fatalf("compareLinear: %v", err)
	}
	snakes := r.Snakes()
	if len(snakes) != 1 {
		t.Fatalf("Snakes() has %d entries, want 1", len(snakes))
	}
	s := snakes[0]
	if s.Deleted() != 0 || s.Inserted() != 0 || s.DiagonalLength() != 3 {
		t.Errorf("snake = %+v, want a pure diagonal of length 3", s)
	}
}

func TestCompareLinearSingleSubstitution(t *testing.T) {
	r, err := compareLinear[byte](Slice[byte]("a"), Slice[byte]("b"), false)
	if err != nil {
		t.Fatalf("compareLinear: %v", err)
	}
	snakes := r.Snakes()
	if len(snakes) != 2 {
		t.Fatalf("Snakes() has %d entries, want 2: %+v", len(snakes), snakes)
	}
	var deleted, inserted int
	for _, s := range snakes {
		deleted += s.Deleted()
		inserted += s.Inserted()
	}
	if deleted != 1 || inserted != 1 {
		t.Errorf("deleted=%d inserted=%d, want 1 and 1", deleted, inserted)
	}
}
