// Package session holds the state of one game screen and the controller that
// plays turns against the computer.
package session

import "github.com/lox/jokenpo/internal/game"

// State is the turn controller state.
type State int

const (
	Idle State = iota
	Resolving
)

func (s State) String() string {
	if s == Resolving {
		return "resolving"
	}
	return "idle"
}

// Session is everything the game screen shows. It lives as long as the
// screen and is never persisted.
type Session struct {
	Score game.ScoreBoard
	Turn  game.Turn
	Busy  bool // a turn is waiting for its outcome
}

// State derives the controller state from the busy flag.
func (s Session) State() State {
	if s.Busy {
		return Resolving
	}
	return Idle
}
