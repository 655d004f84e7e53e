package game

// Turn records one round: both moves and the outcome once it is known.
// A new Turn replaces the previous one entirely.
type Turn struct {
	PlayerMove   Move
	OpponentMove Move
	Outcome      Outcome
}

// IsZero reports whether the turn is empty (no moves, no outcome).
func (t Turn) IsZero() bool {
	return t == Turn{}
}

// ScoreBoard holds the running score of a session.
type ScoreBoard struct {
	Player   int
	Opponent int
	Draws    int // reporting only, never counted for either side
}

// Record credits a resolved outcome to the matching side. Draws increment
// neither score. Unset outcomes are ignored.
func (s *ScoreBoard) Record(o Outcome) {
	switch o {
	case Win:
		s.Player++
	case Lose:
		s.Opponent++
	case Draw:
		s.Draws++
	}
}

// Rounds returns the number of outcomes recorded since the last reset.
func (s ScoreBoard) Rounds() int {
	return s.Player + s.Opponent + s.Draws
}

// Reset zeroes the board.
func (s *ScoreBoard) Reset() {
	*s = ScoreBoard{}
}
