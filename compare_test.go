package myersdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCompareDefaultsToLinear(t *testing.T) {
	linear, err := Compare[byte](Slice[byte]("abcabba"), Slice[byte]("cbabac"))
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if linear.ForwardVs() != nil {
		t.Error("ForwardVs() populated without WithCapture")
	}
}

func TestCompareWithCaptureRecordsSnapshots(t *testing.T) {
	r, err := Compare[byte](Slice[byte]("a"), Slice[byte]("b"), WithCapture(true))
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if r.ForwardVs() == nil || r.ReverseVs() == nil {
		t.Error("expected both snapshot arrays to be populated at depth 0 with WithCapture(true)")
	}
}

func TestCompareLinearAndGreedyAgreeOnEditCounts(t *testing.T) {
	source, dest := Slice[byte]("abcabba"), Slice[byte]("cbabac")
	linear, err := Compare[byte](source, dest)
	if err != nil {
		t.Fatalf("Compare (linear): %v", err)
	}
	greedy, err := Compare[byte](source, dest, WithGreedy(true))
	if err != nil {
		t.Fatalf("Compare (greedy): %v", err)
	}
	if got, want := editCount(linear), editCount(greedy); got != want {
		t.Errorf("linear edit count = %d, greedy edit count = %d, want equal", got, want)
	}
}

func editCount(r *Results) int {
	n := 0
	for _, s := range r.Snakes() {
		n += s.Deleted() + s.Inserted()
	}
	return n
}

func TestCompareBoundaryLiterals(t *testing.T) {
	tests := []struct {
		name       string
		source     Sequence[byte]
		dest       Sequence[byte]
		destLength int
	}{
		{"abcdabcd-abcdbcda", Slice[byte]("abcdabcd"), Slice[byte]("abcdbcda"), 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Compare[byte](tt.source, tt.dest)
			if err != nil {
				t.Fatalf("Compare: %v", err)
			}
			var destLen int
			for _, s := range r.Snakes() {
				destLen += s.Inserted() + s.DiagonalLength()
			}
			if destLen != tt.destLength {
				t.Errorf("reconstructed dest length = %d, want %d", destLen, tt.destLength)
			}
		})
	}

	intSource, intDest := Slice[int]([]int{0, 1, 2, 0, 0}), Slice[int]([]int{1, 2, 0, 0, 0})
	r, err := Compare[int](intSource, intDest)
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	var destLen int
	for _, s := range r.Snakes() {
		destLen += s.Inserted() + s.DiagonalLength()
	}
	if destLen != intDest.Len() {
		t.Errorf("reconstructed dest length = %d, want %d", destLen, intDest.Len())
	}
}

// TestCompareReverseSnakeCarriesBothInsertAndDiagonal exercises the one
// snake shape that distinguishes a correct diagonal/axis-move ordering from
// an incorrect one: a reverse-discovered snake with a non-zero insert
// followed by a non-zero diagonal run. "bbb" vs "babab" forces the middle
// snake search to return exactly such a snake.
func TestCompareReverseSnakeCarriesBothInsertAndDiagonal(t *testing.T) {
	r, err := Compare[byte](Slice[byte]("bbb"), Slice[byte]("babab"))
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	found := false
	for _, s := range r.Snakes() {
		if !s.IsForward() && s.Inserted() > 0 && s.DiagonalLength() > 0 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a reverse snake with Inserted()>0 and DiagonalLength()>0, snakes: %+v", r.Snakes())
	}
}

func TestResultsSnakesComparableWithGoCmp(t *testing.T) {
	a, err := Compare[byte](Slice[byte]("abc"), Slice[byte]("abc"))
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	b, err := Compare[byte](Slice[byte]("abc"), Slice[byte]("abc"))
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if diff := cmp.Diff(a.Snakes(), b.Snakes(), cmp.AllowUnexported(Snake{}), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Snakes() mismatch between two identical runs (-a +b):\n%s", diff)
	}
}
