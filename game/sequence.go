package game

// GenerateSequence draws length cells independently and uniformly from the grid,
// repeats allowed, then permutes the whole list
func GenerateSequence(rng Random, length int) []Cell {
	if length < 0 {
		length = 0
	}
	seq := make([]Cell, length)
	for i := range seq {
		seq[i] = Cell{Row: rng.IntN(Rows), Col: rng.IntN(Cols)}
	}
	rng.Shuffle(len(seq), func(i, j int) {
		seq[i], seq[j] = seq[j], seq[i]
	})
	return seq
}
