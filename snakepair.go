package myersdiff

// SnakePair holds the result of a middle-snake search: the iteration count
// d at which overlap was detected (2d-1 if found during the forward pass,
// 2d if found during the reverse pass) together with whichever one of
// Forward/Reverse snake was produced. Exactly one of Forward/Reverse is
// non-nil on a successful search.
type SnakePair struct {
	D       int
	Forward *Snake
	Reverse *Snake
}
