package session

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/jokenpo/internal/game"
)

// scriptedChooser plays the given moves in order, wrapping around.
type scriptedChooser struct {
	moves []game.Move
	calls int
}

func (s *scriptedChooser) ChooseMove() game.Move {
	m := s.moves[s.calls%len(s.moves)]
	s.calls++
	return m
}

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func newTestController(t *testing.T, opponent ...game.Move) (*Controller, *quartz.Mock, *scriptedChooser) {
	t.Helper()
	mockClock := quartz.NewMock(t)
	chooser := &scriptedChooser{moves: opponent}
	c := New(chooser, WithClock(mockClock), WithLogger(quietLogger()))
	t.Cleanup(c.Close)
	return c, mockClock, chooser
}

func advance(t *testing.T, mockClock *quartz.Mock, d time.Duration) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	mockClock.Advance(d).MustWait(ctx)
}
