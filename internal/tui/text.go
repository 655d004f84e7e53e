package tui

import (
	"fmt"

	"github.com/lox/jokenpo/internal/game"
)

// Placeholder is shown in place of a move that has not been played.
const Placeholder = "❓"

var glyphs = map[game.Move]string{
	game.Rock:     "👊",
	game.Paper:    "✋",
	game.Scissors: "✌️",
}

// Glyph returns the hand glyph for m, or Placeholder.
func Glyph(m game.Move) string {
	if g, ok := glyphs[m]; ok {
		return g
	}
	return Placeholder
}

// Text holds the wording of the game screen for one locale.
type Text struct {
	Title    string
	Subtitle string

	You      string
	Computer string
	Versus   string

	Prompt string
	Draw   string
	Win    string
	Lose   string

	YourScore     string
	ComputerScore string
	Draws         string
	Reset         string

	Moves map[game.Move]string
}

var locales = map[string]Text{
	"en": {
		Title:         "Rock Paper Scissors",
		Subtitle:      "Rock, Paper or Scissors",
		You:           "You",
		Computer:      "Computer",
		Versus:        "VS",
		Prompt:        "Choose your move!",
		Draw:          "Draw! 🤝",
		Win:           "You win! 🎉",
		Lose:          "You lose! 😢",
		YourScore:     "Your score",
		ComputerScore: "Computer",
		Draws:         "Draws",
		Reset:         "Reset score",
		Moves: map[game.Move]string{
			game.Rock:     "Rock",
			game.Paper:    "Paper",
			game.Scissors: "Scissors",
		},
	},
	"pt": {
		Title:         "Jokenpô",
		Subtitle:      "Pedra, Papel ou Tesoura",
		You:           "Você",
		Computer:      "Computador",
		Versus:        "VS",
		Prompt:        "Escolha sua jogada!",
		Draw:          "Empate! 🤝",
		Win:           "Você ganhou! 🎉",
		Lose:          "Você perdeu! 😢",
		YourScore:     "Sua pontuação",
		ComputerScore: "Computador",
		Draws:         "Empates",
		Reset:         "Zerar Pontuação",
		Moves: map[game.Move]string{
			game.Rock:     "Pedra",
			game.Paper:    "Papel",
			game.Scissors: "Tesoura",
		},
	},
}

// TextFor returns the wording for locale.
func TextFor(locale string) (Text, error) {
	t, ok := locales[locale]
	if !ok {
		return Text{}, fmt.Errorf("unsupported locale %q", locale)
	}
	return t, nil
}

// Message maps an outcome to the line shown under the moves.
func (t Text) Message(o game.Outcome) string {
	switch o {
	case game.Win:
		return t.Win
	case game.Lose:
		return t.Lose
	case game.Draw:
		return t.Draw
	default:
		return t.Prompt
	}
}

// MoveLabel returns the localized name of m.
func (t Text) MoveLabel(m game.Move) string {
	return t.Moves[m]
}
