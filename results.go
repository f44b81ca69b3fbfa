package myersdiff

// Results is the immutable outcome of a comparison: the ordered snake list
// plus whichever V-snapshot arrays were recorded along the way. The linear
// comparator populates both ForwardVs and ReverseVs when run with
// WithCapture(true) and neither otherwise; the greedy comparator populates
// only the one matching its search direction.
type Results struct {
	snakes    []Snake
	forwardVs []*V
	reverseVs []*V
}

// newResults packages a snake list with both snapshot arrays, as produced
// by the linear comparator.
func newResults(snakes []Snake, forwardVs, reverseVs []*V) *Results {
	return &Results{snakes: snakes, forwardVs: forwardVs, reverseVs: reverseVs}
}

// newPartialResults packages a snake list with only one snapshot array
// populated, as produced by the greedy comparator.
func newPartialResults(snakes []Snake, isForward bool, vs []*V) *Results {
	r := &Results{snakes: snakes}
	if isForward {
		r.forwardVs = vs
	} else {
		r.reverseVs = vs
	}
	return r
}

// Snakes returns the ordered snake list: left-to-right for the linear
// comparator, arbitrary order for the greedy comparator.
func (r *Results) Snakes() []Snake { return r.snakes }

// ForwardVs returns the forward V-snapshot array indexed by d, or nil if
// none were recorded.
func (r *Results) ForwardVs() []*V { return r.forwardVs }

// ReverseVs returns the reverse V-snapshot array indexed by d, or nil if
// none were recorded.
func (r *Results) ReverseVs() []*V { return r.reverseVs }
