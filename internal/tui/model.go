// Package tui renders the game screen with Bubble Tea.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/jokenpo/internal/game"
	"github.com/lox/jokenpo/internal/session"
)

// TurnResolvedMsg is sent to the program when a turn resolves off the event
// loop, so the screen is redrawn with the outcome.
type TurnResolvedMsg struct{}

// Model is the Bubble Tea model for the game screen. All state lives in the
// session controller; the model only translates keys and renders snapshots.
type Model struct {
	ctrl   *session.Controller
	text   Text
	keys   keyMap
	help   help.Model
	logger *log.Logger

	width    int
	quitting bool
}

// NewModel creates the game screen for ctrl.
func NewModel(ctrl *session.Controller, text Text, logger *log.Logger) *Model {
	h := help.New()
	h.ShortSeparator = " • "

	m := &Model{
		ctrl:   ctrl,
		text:   text,
		keys:   newKeyMap(text),
		help:   h,
		logger: logger.WithPrefix("tui"),
	}
	m.keys.setBusy(ctrl.Busy())
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.logger.Debug("Updating dimensions", "width", msg.Width, "height", msg.Height)
		m.width = msg.Width
		m.help.Width = msg.Width

	case TurnResolvedMsg:
		s := m.ctrl.Snapshot()
		m.logger.Debug("Turn resolved", "outcome", s.Turn.Outcome)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			m.ctrl.Close()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Reset):
			m.logger.Info("Reset requested")
			m.ctrl.Reset()
		case key.Matches(msg, m.keys.Rock):
			m.play(game.Rock)
		case key.Matches(msg, m.keys.Paper):
			m.play(game.Paper)
		case key.Matches(msg, m.keys.Scissors):
			m.play(game.Scissors)
		}
	}

	m.keys.setBusy(m.ctrl.Busy())
	return m, nil
}

func (m *Model) play(move game.Move) {
	if !m.ctrl.Play(move) {
		m.logger.Debug("Move ignored while resolving", "move", move)
		return
	}
	m.logger.Info("Move played", "move", move)
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	s := m.ctrl.Snapshot()

	sections := []string{
		TitleStyle.Render(m.text.Title),
		SubtitleStyle.Render(m.text.Subtitle),
		"",
		m.renderMoves(s.Turn),
		"",
		outcomeStyle(s.Turn.Outcome).Render(m.text.Message(s.Turn.Outcome)),
		"",
		m.renderButtons(!s.Busy),
		m.renderScores(s.Score),
		ResetStyle.Render(m.text.Reset),
		HelpStyle.Render(m.help.View(m.keys)),
	}
	content := lipgloss.JoinVertical(lipgloss.Center, sections...)

	if m.width > 0 {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, content)
	}
	return content
}

// renderMoves shows both hands side by side.
func (m *Model) renderMoves(turn game.Turn) string {
	side := func(label string, move game.Move) string {
		return lipgloss.JoinVertical(lipgloss.Center,
			LabelStyle.Render(label),
			glyphBoxStyle(move).Render(Glyph(move)),
		)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		side(m.text.You, turn.PlayerMove),
		VersusStyle.Render(m.text.Versus),
		side(m.text.Computer, turn.OpponentMove),
	)
}

// renderButtons draws the three move buttons, faded while busy.
func (m *Model) renderButtons(enabled bool) string {
	bindings := map[game.Move]key.Binding{
		game.Rock:     m.keys.Rock,
		game.Paper:    m.keys.Paper,
		game.Scissors: m.keys.Scissors,
	}
	buttons := make([]string, 0, len(game.Moves))
	for _, mv := range game.Moves {
		label := fmt.Sprintf("%s\n%s [%s]", Glyph(mv), m.text.MoveLabel(mv), bindings[mv].Help().Key)
		buttons = append(buttons, buttonStyle(mv, enabled).Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}

func (m *Model) renderScores(score game.ScoreBoard) string {
	panel := func(label string, value int) string {
		return ScoreStyle.Render(label + "\n" + fmt.Sprint(value))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		panel(m.text.YourScore, score.Player),
		panel(m.text.ComputerScore, score.Opponent),
		panel(m.text.Draws, score.Draws),
	)
}

