package main

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/jokenpo/cmd/jokenpo/shared"
	"github.com/lox/jokenpo/internal/config"
	"github.com/lox/jokenpo/internal/game"
	"github.com/lox/jokenpo/internal/randutil"
	"github.com/lox/jokenpo/internal/session"
	"github.com/lox/jokenpo/internal/tui"
)

const defaultDebugLog = "jokenpo.log"

// PlayCmd runs the interactive game screen
type PlayCmd struct {
	Config  string         `kong:"default='jokenpo.hcl',help='Settings file (HCL); defaults apply when missing'"`
	Delay   *time.Duration `kong:"help='Pause before the outcome is shown (default 600ms)'"`
	Seed    *int64         `kong:"help='Deterministic RNG seed (optional)'"`
	Locale  string         `kong:"help='Screen language (en, pt)'"`
	LogFile string         `kong:"help='Log file (default none, jokenpo.log with --debug)'"`
	Debug   bool           `kong:"help='Enable debug logging'"`
}

// settings merges the config file with command line overrides.
func (c *PlayCmd) settings() (*config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, err
	}
	if c.Delay != nil {
		if err := cfg.SetDelay(*c.Delay); err != nil {
			return nil, err
		}
	}
	if c.Seed != nil {
		cfg.Game.Seed = c.Seed
	}
	if c.Locale != "" {
		cfg.UI.Locale = c.Locale
	}
	if c.LogFile != "" {
		cfg.UI.LogFile = c.LogFile
	}
	if c.Debug {
		cfg.UI.LogLevel = "debug"
		if cfg.UI.LogFile == "" {
			cfg.UI.LogFile = defaultDebugLog
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *PlayCmd) Run() error {
	cfg, err := c.settings()
	if err != nil {
		return err
	}

	logger, logFile, err := shared.SetupFileLogger(cfg.UI.LogFile, cfg.UI.LogLevel)
	if err != nil {
		return err
	}
	defer logFile.Close()

	text, err := tui.TextFor(cfg.UI.Locale)
	if err != nil {
		return err
	}

	seed := randutil.Seed(cfg.Game.Seed)
	logger.Info("Starting game", "seed", seed, "delay", cfg.Delay(), "locale", cfg.UI.Locale)

	var opts []tea.ProgramOption
	if cfg.UseAltScreen() {
		opts = append(opts, tea.WithAltScreen())
	}
	program, ctrl := newProgram(game.NewRandomChooser(randutil.New(seed)), text, logger,
		[]session.Option{session.WithDelay(cfg.Delay())}, opts...)
	defer ctrl.Close()

	sigCtx, stop := shared.SetupSignalHandler(logger)
	defer stop()
	ctx, cancel := context.WithCancel(sigCtx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		_, err := program.Run()
		return err
	})
	g.Go(func() error {
		<-ctx.Done()
		program.Quit()
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("game screen: %w", err)
	}

	s := ctrl.Snapshot()
	logger.Info("Game over", "score", s.Score.Player, "opponentScore", s.Score.Opponent, "draws", s.Score.Draws)
	return nil
}

// newProgram wires a session controller to a game screen program.
//
// Resolutions are forwarded with a non-blocking Send: with a zero delay the
// controller notifies from inside Play, which runs on the program's own event
// loop, and that loop is the only reader of Send's channel.
func newProgram(chooser game.Chooser, text tui.Text, logger *log.Logger, sessionOpts []session.Option, opts ...tea.ProgramOption) (*tea.Program, *session.Controller) {
	var program *tea.Program
	sessionOpts = append([]session.Option{
		session.WithLogger(logger),
		session.WithNotify(func() { go program.Send(tui.TurnResolvedMsg{}) }),
	}, sessionOpts...)

	ctrl := session.New(chooser, sessionOpts...)
	program = tea.NewProgram(tui.NewModel(ctrl, text, logger), opts...)
	return program, ctrl
}
