package myersdiff

// Compare finds the shortest edit script between source and dest and
// returns it as a Results of Snake records. By default it runs the linear
// (O(N+M)-space) divide-and-conquer comparator; pass WithGreedy(true) to
// use the non-recursive O(ND)-space comparator instead.
func Compare[T comparable](source, dest Sequence[T], opts ...Option) (*Results, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.greedy {
		return compareGreedy(source, dest)
	}
	return compareLinear(source, dest, cfg.capture)
}
