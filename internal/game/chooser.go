package game

import rand "math/rand/v2"

// Chooser picks a move for a side.
type Chooser interface {
	ChooseMove() Move
}

// RandomChooser picks each move with equal probability.
type RandomChooser struct {
	rng *rand.Rand
}

// NewRandomChooser returns a chooser drawing from rng. The caller decides how
// rng is seeded (see randutil).
func NewRandomChooser(rng *rand.Rand) *RandomChooser {
	return &RandomChooser{rng: rng}
}

// ChooseMove implements Chooser.
func (c *RandomChooser) ChooseMove() Move {
	return Moves[c.rng.IntN(len(Moves))]
}

type always Move

func (a always) ChooseMove() Move { return Move(a) }

// Always returns a chooser that plays m every time.
func Always(m Move) Chooser {
	return always(m)
}
