package myersdiff

// config holds the settings assembled from a Compare call's Option list.
type config struct {
	greedy  bool
	capture bool
}

func defaultConfig() config {
	return config{greedy: false, capture: false}
}

// Option configures a Compare call. The zero value of config runs the
// linear comparator without capturing V-snapshots, which is the right
// default for callers that only want the snake list.
type Option func(*config)

// WithGreedy selects the non-recursive greedy comparator (spec §4.6)
// instead of the default linear divide-and-conquer comparator. The greedy
// comparator uses O(ND) space rather than O(N+M); prefer it only when the
// snapshot trail itself is wanted, e.g. for animating the search.
func WithGreedy(greedy bool) Option {
	return func(c *config) { c.greedy = greedy }
}

// WithCapture requests that the comparator retain its V-snapshot arrays in
// the returned Results. The linear comparator only ever records the
// top-level middle search's snapshots (recursive sub-calls never capture,
// regardless of this setting) since the sub-rectangle snapshots are
// reinitialized and overwritten on every recursive call.
func WithCapture(capture bool) Option {
	return func(c *config) { c.capture = capture }
}
