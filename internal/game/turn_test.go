package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreBoardRecord(t *testing.T) {
	var s ScoreBoard

	s.Record(Win)
	s.Record(Win)
	s.Record(Lose)
	s.Record(Draw)
	s.Record(Unset)

	assert.Equal(t, ScoreBoard{Player: 2, Opponent: 1, Draws: 1}, s)
	assert.Equal(t, 4, s.Rounds())

	s.Reset()
	assert.Equal(t, ScoreBoard{}, s)
}

func TestTurnIsZero(t *testing.T) {
	assert.True(t, Turn{}.IsZero())
	assert.False(t, Turn{PlayerMove: Rock}.IsZero())
}
