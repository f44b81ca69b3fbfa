package myersdiff

import "testing"

func TestSnakePairZeroValue(t *testing.T) {
	var p SnakePair
	if p.Forward != nil || p.Reverse != nil || p.D != 0 {
		t.Errorf("zero value SnakePair = %+v, want all zero", p)
	}
}
