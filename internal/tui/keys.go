package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/lox/jokenpo/internal/game"
)

type keyMap struct {
	Rock     key.Binding
	Paper    key.Binding
	Scissors key.Binding
	Reset    key.Binding
	Quit     key.Binding
}

func newKeyMap(text Text) keyMap {
	move := func(m game.Move, keys ...string) key.Binding {
		return key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(keys[0], strings.ToLower(text.MoveLabel(m))),
		)
	}
	return keyMap{
		Rock:     move(game.Rock, "r", "1"),
		Paper:    move(game.Paper, "p", "2"),
		Scissors: move(game.Scissors, "s", "3"),
		Reset: key.NewBinding(
			key.WithKeys("x", "0"),
			key.WithHelp("x", strings.ToLower(text.Reset)),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// setBusy disables the move keys while a turn is resolving.
func (k *keyMap) setBusy(busy bool) {
	k.Rock.SetEnabled(!busy)
	k.Paper.SetEnabled(!busy)
	k.Scissors.SetEnabled(!busy)
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Rock, k.Paper, k.Scissors, k.Reset, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
