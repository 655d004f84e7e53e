package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/jokenpo/cmd/jokenpo/shared"
	"github.com/lox/jokenpo/internal/fileutil"
	"github.com/lox/jokenpo/internal/game"
	"github.com/lox/jokenpo/internal/randutil"
	"github.com/lox/jokenpo/internal/session"
	"github.com/lox/jokenpo/internal/statistics"
)

// playerSeedSalt keeps the player's generator independent of the opponent's.
const playerSeedSalt = 0x5bd1e995

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)
	goodStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	badStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
)

// SimulateCmd plays rounds without a screen
type SimulateCmd struct {
	Rounds  int    `kong:"default='1000',help='Number of rounds to play'"`
	Player  string `kong:"default='random',enum='random,rock,paper,scissors',help='Player strategy (random, rock, paper, scissors)'"`
	Seed    *int64 `kong:"help='Deterministic RNG seed (optional)'"`
	Output  string `kong:"help='Write a JSON report to this file'"`
	NoColor bool   `kong:"help='Disable colours'"`
	Debug   bool   `kong:"help='Enable debug logging'"`
}

// Report summarises a simulation run.
type Report struct {
	Seed          int64          `json:"seed"`
	Player        string         `json:"player"`
	Rounds        int            `json:"rounds"`
	Wins          int            `json:"wins"`
	Losses        int            `json:"losses"`
	Draws         int            `json:"draws"`
	WinRate       float64        `json:"win_rate"`
	OpponentMoves map[string]int `json:"opponent_moves"`
	ChiSquare     float64        `json:"chi_square"`
	Uniform       bool           `json:"uniform"`
}

func (c *SimulateCmd) Run() error {
	if c.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	logger := shared.SetupLogger(c.Debug)

	seed := randutil.Seed(c.Seed)
	logger.Info("Starting simulation", "rounds", c.Rounds, "player", c.Player, "seed", seed)

	report, err := simulate(c.Rounds, c.Player, seed, logger)
	if err != nil {
		return err
	}

	fmt.Println(renderReport(report))

	if c.Output != "" {
		if err := fileutil.WriteJSONAtomic(c.Output, report); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		logger.Info("Report written", "path", c.Output)
	}
	return nil
}

// playerChooser builds the player's strategy.
func playerChooser(strategy string, seed int64) (game.Chooser, error) {
	if strategy == "random" {
		return game.NewRandomChooser(randutil.New(seed ^ playerSeedSalt)), nil
	}
	move, err := game.ParseMove(strategy)
	if err != nil {
		return nil, err
	}
	return game.Always(move), nil
}

// simulate plays rounds through a session controller with no delay.
func simulate(rounds int, strategy string, seed int64, logger *log.Logger) (Report, error) {
	if rounds <= 0 {
		return Report{}, fmt.Errorf("rounds must be positive, got %d", rounds)
	}

	player, err := playerChooser(strategy, seed)
	if err != nil {
		return Report{}, err
	}

	var tally statistics.Tally
	ctrl := session.New(game.NewRandomChooser(randutil.New(seed)),
		session.WithDelay(0),
		session.WithLogger(logger.With("sim", true)),
		session.WithRecorder(tally.Add),
	)
	defer ctrl.Close()

	for i := 0; i < rounds; i++ {
		if !ctrl.Play(player.ChooseMove()) {
			return Report{}, fmt.Errorf("round %d was not accepted", i+1)
		}
	}

	if err := tally.Validate(); err != nil {
		return Report{}, err
	}
	if score := ctrl.Snapshot().Score; !tally.Matches(score) {
		return Report{}, fmt.Errorf("score board %+v disagrees with tally %d/%d/%d",
			score, tally.Wins, tally.Losses, tally.Draws)
	}

	report := Report{
		Seed:          seed,
		Player:        strategy,
		Rounds:        tally.Rounds,
		Wins:          tally.Wins,
		Losses:        tally.Losses,
		Draws:         tally.Draws,
		WinRate:       tally.WinRate(),
		OpponentMoves: make(map[string]int, len(game.Moves)),
		ChiSquare:     tally.ChiSquare(),
		Uniform:       tally.IsUniform(),
	}
	for _, m := range game.Moves {
		report.OpponentMoves[m.String()] = tally.OpponentMoves[m]
	}

	logger.Debug("Simulation complete", "wins", report.Wins, "losses", report.Losses, "draws", report.Draws)
	return report, nil
}

func renderReport(r Report) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("%d rounds, player %s, seed %d", r.Rounds, r.Player, r.Seed)))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "  wins   %6d\n", r.Wins)
	fmt.Fprintf(&b, "  losses %6d\n", r.Losses)
	fmt.Fprintf(&b, "  draws  %6d\n", r.Draws)
	fmt.Fprintf(&b, "  win rate %.1f%%\n\n", r.WinRate*100)

	b.WriteString("  opponent moves:\n")
	for _, m := range game.Moves {
		n := r.OpponentMoves[m.String()]
		fmt.Fprintf(&b, "    %-8s %6d (%.1f%%)\n", m, n, 100*float64(n)/float64(r.Rounds))
	}

	verdict := goodStyle.Render("uniform")
	if !r.Uniform {
		verdict = badStyle.Render("not uniform")
	}
	fmt.Fprintf(&b, "\n  chi-square %.3f: %s", r.ChiSquare, verdict)
	return b.String()
}
