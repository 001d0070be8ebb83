package tetris

// SequenceRand is a Rand returning the given values in order, each one
// modulo n, and starting over once exhausted. An empty sequence always
// returns 0.
type SequenceRand struct {
	Values []int
	i      int
}

func (s *SequenceRand) IntN(n int) int {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.i%len(s.Values)]
	s.i++
	return v % n
}

// NewTestGame creates a game with the default config where every piece is
// shape and every color is the first one of the palette.
//
//	.	0 1 2 3 4 5 6 7 8 9
//	0	X X X O O O O X X X		I spawns at x=3
func NewTestGame(shape string) *Game {
	cfg := DefaultConfig()
	for _, s := range cfg.Shapes {
		if s.Name == shape {
			cfg.Shapes = []Shape{s}
		}
	}
	g, err := NewConfigurableGame(cfg, &SequenceRand{}, nil)
	if err != nil {
		panic(err)
	}
	return g
}
