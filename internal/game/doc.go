// Package game implements the rules of rock-paper-scissors.
//
// The rule content is small: Resolve decides a turn under the cycle
// rock > scissors > paper > rock, and a Chooser supplies the computer's move.
//
// # Basic Usage
//
//	rng := randutil.New(time.Now().UnixNano())
//	opponent := game.NewRandomChooser(rng)
//	outcome := game.Resolve(game.Rock, opponent.ChooseMove())
//
//	var score game.ScoreBoard
//	score.Record(outcome)
//
// # Deterministic Testing
//
// RandomChooser takes its *rand.Rand from the caller, so tests can pass a
// fixed seed, or use Always for a chooser that never varies.
package game
