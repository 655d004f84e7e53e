package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lox/jokenpo/internal/game"
)

var (
	colorMuted   = lipgloss.Color("#626262")
	colorPrimary = lipgloss.Color("#7D56F4")
	colorSuccess = lipgloss.Color("#04B575")
	colorAccent  = lipgloss.Color("#FF6B6B")

	moveColors = map[game.Move]lipgloss.Color{
		game.Rock:     lipgloss.Color("#E17055"),
		game.Paper:    lipgloss.Color("#0984E3"),
		game.Scissors: lipgloss.Color("#FDCB6E"),
	}
)

// Static styles for content elements
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(colorPrimary).
			Padding(0, 1).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	LabelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Bold(true)

	VersusStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Bold(true).
			Padding(0, 3)

	ScoreStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 2).
			Align(lipgloss.Center)

	ResetStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSuccess).
			Foreground(colorSuccess).
			Padding(0, 2)

	HelpStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// outcomeStyle colours the result message.
func outcomeStyle(o game.Outcome) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true)
	switch o {
	case game.Win:
		return s.Foreground(colorSuccess)
	case game.Lose:
		return s.Foreground(colorAccent)
	case game.Draw:
		return s.Foreground(colorPrimary)
	default:
		return s.Foreground(colorMuted)
	}
}

// glyphBoxStyle frames a played move; empty slots get a muted border.
func glyphBoxStyle(m game.Move) lipgloss.Style {
	s := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorMuted).
		Padding(0, 2)
	if c, ok := moveColors[m]; ok {
		s = s.BorderForeground(c)
	}
	return s
}

// buttonStyle renders a move button, faded while a turn is resolving.
func buttonStyle(m game.Move, enabled bool) lipgloss.Style {
	s := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Align(lipgloss.Center).
		Width(14)
	if !enabled {
		return s.BorderForeground(colorMuted).Foreground(colorMuted).Faint(true)
	}
	return s.BorderForeground(moveColors[m]).Foreground(moveColors[m]).Bold(true)
}
