package statistics

import (
	"fmt"

	"github.com/lox/jokenpo/internal/game"
)

// chiSquareCritical95 is the 5% critical value of the chi-square
// distribution with 2 degrees of freedom (three moves).
const chiSquareCritical95 = 5.991

// Side selects which player's moves to look at.
type Side int

const (
	Player Side = iota
	Opponent
)

// Tally accumulates resolved turns.
type Tally struct {
	Rounds int
	Wins   int
	Losses int
	Draws  int

	// Move counts indexed by game.Move; index 0 (NoMove) stays empty.
	PlayerMoves   [4]int
	OpponentMoves [4]int
}

// Add incorporates a resolved turn. Turns without an outcome are ignored.
func (t *Tally) Add(turn game.Turn) {
	switch turn.Outcome {
	case game.Win:
		t.Wins++
	case game.Lose:
		t.Losses++
	case game.Draw:
		t.Draws++
	default:
		return
	}
	t.Rounds++
	t.PlayerMoves[turn.PlayerMove]++
	t.OpponentMoves[turn.OpponentMove]++
}

// WinRate returns the share of rounds the player won
func (t *Tally) WinRate() float64 {
	if t.Rounds == 0 {
		return 0
	}
	return float64(t.Wins) / float64(t.Rounds)
}

// Frequency returns the share of rounds in which side played m.
func (t *Tally) Frequency(side Side, m game.Move) float64 {
	if t.Rounds == 0 || !m.Valid() {
		return 0
	}
	counts := t.PlayerMoves
	if side == Opponent {
		counts = t.OpponentMoves
	}
	return float64(counts[m]) / float64(t.Rounds)
}

// ChiSquare returns Pearson's statistic for the opponent's moves against a
// uniform distribution.
func (t *Tally) ChiSquare() float64 {
	if t.Rounds == 0 {
		return 0
	}
	expected := float64(t.Rounds) / float64(len(game.Moves))
	var chi float64
	for _, m := range game.Moves {
		d := float64(t.OpponentMoves[m]) - expected
		chi += d * d / expected
	}
	return chi
}

// IsUniform reports whether the opponent's moves are consistent with a
// uniform choice at the 5% level.
func (t *Tally) IsUniform() bool {
	return t.ChiSquare() < chiSquareCritical95
}

// IsLedgerBalanced checks that every round was counted exactly once.
func (t *Tally) IsLedgerBalanced() bool {
	return t.Wins+t.Losses+t.Draws == t.Rounds
}

// Validate performs consistency checks on the tally.
func (t *Tally) Validate() error {
	if !t.IsLedgerBalanced() {
		return fmt.Errorf("ledger mismatch: wins=%d losses=%d draws=%d rounds=%d",
			t.Wins, t.Losses, t.Draws, t.Rounds)
	}

	for _, side := range []struct {
		name   string
		counts [4]int
	}{{"player", t.PlayerMoves}, {"opponent", t.OpponentMoves}} {
		if side.counts[game.NoMove] != 0 {
			return fmt.Errorf("%s has %d rounds without a move", side.name, side.counts[game.NoMove])
		}
		total := 0
		for _, m := range game.Moves {
			total += side.counts[m]
		}
		if total != t.Rounds {
			return fmt.Errorf("%s move total (%d) does not match rounds (%d)", side.name, total, t.Rounds)
		}
	}

	return nil
}

// Matches reports whether the tally agrees with a session score board.
func (t *Tally) Matches(score game.ScoreBoard) bool {
	return t.Wins == score.Player && t.Losses == score.Opponent && t.Draws == score.Draws
}
