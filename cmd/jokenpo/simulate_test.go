package main

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func TestSimulateLedger(t *testing.T) {
	report, err := simulate(3000, "random", 42, quietLogger())
	require.NoError(t, err)

	assert.Equal(t, 3000, report.Rounds)
	assert.Equal(t, report.Rounds, report.Wins+report.Losses+report.Draws)

	total := 0
	for _, n := range report.OpponentMoves {
		total += n
	}
	assert.Equal(t, report.Rounds, total)
	assert.InDelta(t, 1.0/3, report.WinRate, 0.05)
}

func TestSimulateIsReproducible(t *testing.T) {
	a, err := simulate(200, "random", 7, quietLogger())
	require.NoError(t, err)
	b, err := simulate(200, "random", 7, quietLogger())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSimulateFixedStrategy(t *testing.T) {
	report, err := simulate(600, "rock", 3, quietLogger())
	require.NoError(t, err)

	// Rock wins against scissors, loses to paper and draws with rock.
	assert.Equal(t, report.OpponentMoves["scissors"], report.Wins)
	assert.Equal(t, report.OpponentMoves["paper"], report.Losses)
	assert.Equal(t, report.OpponentMoves["rock"], report.Draws)
}

func TestSimulateRejectsBadInput(t *testing.T) {
	_, err := simulate(0, "random", 1, quietLogger())
	assert.Error(t, err)

	_, err = simulate(10, "lizard", 1, quietLogger())
	assert.Error(t, err)
}

func TestRenderReport(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	report, err := simulate(300, "paper", 11, quietLogger())
	require.NoError(t, err)

	out := renderReport(report)
	assert.Contains(t, out, "300 rounds, player paper, seed 11")
	assert.Contains(t, out, "opponent moves:")
	assert.True(t, strings.Contains(out, "uniform"))
}

func TestSimulateCmdWritesReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	seed := int64(5)
	cmd := &SimulateCmd{Rounds: 50, Player: "scissors", Seed: &seed, Output: path, NoColor: true}

	require.NoError(t, cmd.Run())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var report Report
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, 50, report.Rounds)
	assert.Equal(t, "scissors", report.Player)
	assert.Equal(t, int64(5), report.Seed)
}
