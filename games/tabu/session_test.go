package tabu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStart_RejectsUnderfilledTeam(t *testing.T) {
	_, err := Start(testPlayers(1, 2), testSettings())
	assert.ErrorIs(t, err, ErrTeamTooSmall)

	_, err = Start(testPlayers(2, 0), testSettings())
	assert.ErrorIs(t, err, ErrTeamTooSmall)
}

func TestStart_RejectsInvalidSettings(t *testing.T) {
	s := testSettings()
	s.TargetScore = 5
	_, err := Start(testPlayers(2, 2), s)
	assert.ErrorIs(t, err, ErrInvalidSettings)
}

func TestStart_InitialState(t *testing.T) {
	players := testPlayers(2, 3)
	players[0].Score = 7

	s, err := Start(players, testSettings())
	require.NoError(t, err)

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, TeamA, s.Team)
	assert.Equal(t, 1, s.Round)
	assert.Equal(t, Scores{}, s.Scores)
	assert.Empty(t, s.Dealt)
	assert.Empty(t, s.Turns)
	assert.False(t, s.Over)
	assert.Equal(t, map[Team]int{TeamA: 0, TeamB: 0}, s.Rotation)
	assert.Equal(t, 0, s.Players[0].Score, "stats start from zero")
	assert.Equal(t, 7, players[0].Score, "roster is copied, not aliased")
}

func TestSession_DescriberWrapsPerTeam(t *testing.T) {
	s, err := Start(testPlayers(2, 3), testSettings())
	require.NoError(t, err)

	var got []string
	for range 6 {
		d, ok := s.Describer()
		require.True(t, ok)
		got = append(got, d.ID)
		s.Rotate()
	}
	assert.Equal(t, []string{"a0", "b0", "a1", "b1", "a0", "b2"}, got)
	assert.Equal(t, 4, s.Round)
}

func TestSession_DescriberEmptyTeam(t *testing.T) {
	s := &Session{Players: testPlayers(2, 0), Team: TeamB, Rotation: map[Team]int{}}
	_, ok := s.Describer()
	assert.False(t, ok)
	assert.False(t, s.Correct())
}

func TestSession_RotationIndependence(t *testing.T) {
	s, err := Start(testPlayers(2, 2), testSettings())
	require.NoError(t, err)

	s.Rotate()
	assert.Equal(t, 1, s.Rotation[TeamA])
	assert.Equal(t, 0, s.Rotation[TeamB])
	assert.Equal(t, 1, s.Round)

	s.Rotate()
	assert.Equal(t, 1, s.Rotation[TeamA])
	assert.Equal(t, 1, s.Rotation[TeamB])
	assert.Equal(t, 2, s.Round)
}

func TestSession_CorrectWinsAtExactTarget(t *testing.T) {
	s, err := Start(testPlayers(2, 2), testSettings())
	require.NoError(t, err)

	for i := 1; i < 10; i++ {
		assert.False(t, s.Correct(), "score %d", i)
	}
	assert.True(t, s.Correct())
	assert.True(t, s.Over)
	assert.Equal(t, 10, s.Scores.A)
}

func TestSession_FrozenWhenOver(t *testing.T) {
	s, err := Start(testPlayers(2, 2), testSettings())
	require.NoError(t, err)
	for range 10 {
		s.Correct()
	}
	require.True(t, s.Over)

	s.Tabu("b0")
	s.Rotate()
	assert.False(t, s.Correct())
	_, ok := s.Deal(testPool(5), NewRand(1))

	assert.False(t, ok)
	assert.Equal(t, Scores{A: 10}, s.Scores)
	assert.Equal(t, TeamA, s.Team)
	assert.Equal(t, 1, s.Round)
	p, _ := s.Player("b0")
	assert.Equal(t, 0, p.TabuCatches)
}

func TestSession_TabuUnknownCatcher(t *testing.T) {
	s, err := Start(testPlayers(2, 2), testSettings())
	require.NoError(t, err)
	s.Correct()

	s.Tabu("nobody")
	assert.Equal(t, 0, s.Scores.A)
	for _, p := range s.Players {
		assert.Equal(t, 0, p.TabuCatches)
	}
}

func TestSession_ScoreboardStable(t *testing.T) {
	s, err := Start(testPlayers(2, 2), testSettings())
	require.NoError(t, err)
	s.Rotate()
	s.Correct()

	var ids []string
	for _, p := range s.Scoreboard() {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"b0", "a0", "a1", "b1"}, ids)
}
