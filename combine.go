package myersdiff

// appendSnake performs the canonical "combine-append": it first tries to
// merge candidate into the tail of snakes, and only pushes candidate as a
// new element if the merge fails. Always attempting the merge first keeps
// the result canonically minimal — without it, adjacent same-axis snakes
// introduced at recursion or reconstruction boundaries survive as separate
// records instead of one combined run.
func appendSnake(snakes []Snake, candidate Snake) []Snake {
	if n := len(snakes); n > 0 && snakes[n-1].append(candidate) {
		return snakes
	}
	return append(snakes, candidate)
}

// prependSnake is appendSnake's mirror image for reconstructors that
// discover snakes in right-to-left order: it tries to merge candidate into
// the current head (candidate absorbing it, since candidate precedes the
// head in final left-to-right order) before pushing candidate to the front.
func prependSnake(snakes []Snake, candidate Snake) []Snake {
	if len(snakes) > 0 && candidate.append(snakes[0]) {
		snakes[0] = candidate
		return snakes
	}
	return append([]Snake{candidate}, snakes...)
}
