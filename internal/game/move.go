package game

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMove is returned by ParseMove for names outside the three moves.
var ErrUnknownMove = errors.New("unknown move")

// Move is one of the three hand shapes. The zero value NoMove means no move
// has been made yet.
type Move int

const (
	NoMove Move = iota
	Rock
	Paper
	Scissors
)

// Moves lists the playable moves in display order.
var Moves = [...]Move{Rock, Paper, Scissors}

// beats maps each move to the move it defeats.
var beats = map[Move]Move{
	Rock:     Scissors,
	Scissors: Paper,
	Paper:    Rock,
}

// String returns the lowercase English name of the move
func (m Move) String() string {
	switch m {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	default:
		return "none"
	}
}

// Valid reports whether m is one of the three playable moves.
func (m Move) Valid() bool {
	_, ok := beats[m]
	return ok
}

// Beats reports whether m defeats other.
func (m Move) Beats(other Move) bool {
	loser, ok := beats[m]
	return ok && loser == other
}

// ParseMove converts a move name to a Move. Both the English and the
// Portuguese names are accepted, case-insensitively.
func ParseMove(s string) (Move, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rock", "pedra":
		return Rock, nil
	case "paper", "papel":
		return Paper, nil
	case "scissors", "tesoura":
		return Scissors, nil
	default:
		return NoMove, fmt.Errorf("%w: %q", ErrUnknownMove, s)
	}
}

// Outcome is the result of a turn from the player's point of view.
type Outcome int

const (
	Unset Outcome = iota
	Win
	Lose
	Draw
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Lose:
		return "lose"
	case Draw:
		return "draw"
	default:
		return "unset"
	}
}

// Resolve decides a turn. Equal moves draw; otherwise the player wins if
// their move beats the opponent's and loses if not. If either side has not
// moved the outcome is Unset.
func Resolve(player, opponent Move) Outcome {
	if !player.Valid() || !opponent.Valid() {
		return Unset
	}
	switch {
	case player == opponent:
		return Draw
	case player.Beats(opponent):
		return Win
	default:
		return Lose
	}
}
