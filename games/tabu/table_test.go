package tabu

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTable(t *testing.T) (*Table, *manualScheduler) {
	t.Helper()
	sched := &manualScheduler{}
	return NewTable(DefaultCatalog(), "en-US", NewRand(3), sched, zerolog.Nop()), sched
}

func seat(t *testing.T, tb *Table, names ...string) {
	t.Helper()
	for _, n := range names {
		_, err := tb.AddPlayer(n, "")
		require.NoError(t, err)
	}
}

func TestTable_NoSession(t *testing.T) {
	tb, _ := newTestTable(t)

	_, err := tb.Engine()
	assert.ErrorIs(t, err, ErrNoSession)
	_, ok := tb.Active()
	assert.False(t, ok)
	assert.Equal(t, "en", tb.Language())
}

func TestTable_StartRequiresTwoPerTeam(t *testing.T) {
	tb, _ := newTestTable(t)
	_, err := tb.AddPlayer("Ada", TeamA)
	require.NoError(t, err)
	_, err = tb.AddPlayer("Bea", TeamB)
	require.NoError(t, err)
	_, err = tb.AddPlayer("Cem", TeamB)
	require.NoError(t, err)

	assert.False(t, tb.CanStart())
	_, err = tb.Start()
	assert.ErrorIs(t, err, ErrTeamTooSmall)
	_, ok := tb.Active()
	assert.False(t, ok)
}

func TestTable_StartAndPlay(t *testing.T) {
	tb, sched := newTestTable(t)
	seat(t, tb, "Ada", "Bea", "Cem", "Deniz")
	require.NoError(t, tb.SetLanguage("tr-TR"))
	assert.True(t, tb.CanStart())

	e, err := tb.Start()
	require.NoError(t, err)
	got, err := tb.Engine()
	require.NoError(t, err)
	assert.Same(t, e, got)
	assert.False(t, tb.CanStart())

	require.True(t, e.Ready())
	sched.TickN(CountdownTicks)
	c, ok := e.Card()
	require.True(t, ok)
	assert.Contains(t, c.ID, "tr-")
	assert.Len(t, c.Forbidden, 5)
}

func TestTable_LockedWhilePlaying(t *testing.T) {
	tb, _ := newTestTable(t)
	seat(t, tb, "Ada", "Bea", "Cem", "Deniz")
	_, err := tb.Start()
	require.NoError(t, err)

	_, err = tb.AddPlayer("Ece", "")
	assert.ErrorIs(t, err, ErrGameInProgress)
	assert.ErrorIs(t, tb.RemovePlayer(tb.Players()[0].ID), ErrGameInProgress)
	assert.ErrorIs(t, tb.SwitchTeam(tb.Players()[0].ID), ErrGameInProgress)
	assert.ErrorIs(t, tb.UpdateSettings(DefaultSettings()), ErrGameInProgress)
	assert.ErrorIs(t, tb.SetLanguage("tr"), ErrGameInProgress)
	_, err = tb.Start()
	assert.ErrorIs(t, err, ErrGameInProgress)
}

func TestTable_UpdateSettings(t *testing.T) {
	tb, _ := newTestTable(t)

	s := tb.Settings()
	s.PassLimit = 11
	assert.ErrorIs(t, tb.UpdateSettings(s), ErrInvalidSettings)

	s.PassLimit = 0
	s.Difficulty = Hard
	require.NoError(t, tb.UpdateSettings(s))
	assert.Equal(t, s, tb.Settings())
}

func TestTable_ResetStopsTimerAndRestoresDefaults(t *testing.T) {
	tb, sched := newTestTable(t)
	seat(t, tb, "Ada", "Bea", "Cem", "Deniz")
	s := tb.Settings()
	s.TargetScore = 50
	require.NoError(t, tb.UpdateSettings(s))

	e, err := tb.Start()
	require.NoError(t, err)
	require.True(t, e.Ready())
	sched.TickN(CountdownTicks + 4)
	left := e.TimeLeft()

	tb.Reset()
	assert.Equal(t, 0, sched.Active())
	sched.TickN(10)
	assert.Equal(t, left, e.TimeLeft(), "discarded engine never ticks again")

	_, err = tb.Engine()
	assert.ErrorIs(t, err, ErrNoSession)
	assert.Empty(t, tb.Players())
	assert.Equal(t, DefaultSettings(), tb.Settings())
}

func TestTable_OnTickForwarded(t *testing.T) {
	tb, sched := newTestTable(t)
	seat(t, tb, "Ada", "Bea", "Cem", "Deniz")
	ticks := 0
	tb.OnTick = func() { ticks++ }

	e, err := tb.Start()
	require.NoError(t, err)
	require.True(t, e.Ready())
	sched.Tick()
	assert.Equal(t, 1, ticks)
}

func TestTable_DefaultGameOutlastsDeck(t *testing.T) {
	tb, sched := newTestTable(t)
	seat(t, tb, "Ada", "Bea", "Cem", "Deniz")
	require.NoError(t, tb.SetLanguage("tr"))

	settings := tb.Settings()
	deck := DefaultCatalog().Lookup("tr", settings.AgeGroup)
	require.Less(t, len(deck), settings.TargetScore)

	e, err := tb.Start()
	require.NoError(t, err)
	require.True(t, e.Ready())
	sched.TickN(CountdownTicks)

	for range settings.TargetScore {
		require.True(t, e.Correct())
	}

	s := e.Session()
	assert.True(t, s.Over)
	assert.Equal(t, settings.TargetScore, s.Scores.A)
	assert.Len(t, s.Dealt, len(deck))
	assert.True(t, e.View().NoCard)
}

func TestTable_DealsFromAgeGroupDeck(t *testing.T) {
	tb, sched := newTestTable(t)
	seat(t, tb, "Ada", "Bea", "Cem", "Deniz")

	settings := tb.Settings()
	settings.AgeGroup = AgeChild
	settings.TargetScore = 100
	require.NoError(t, tb.UpdateSettings(settings))

	e, err := tb.Start()
	require.NoError(t, err)
	require.True(t, e.Ready())
	sched.TickN(CountdownTicks)

	deck := DefaultCatalog().Lookup("en", AgeChild)
	for range len(deck) {
		c, ok := e.Card()
		require.True(t, ok)
		assert.True(t, c.For(AgeChild), c.ID)
		require.True(t, e.Correct())
	}

	_, ok := e.Card()
	assert.False(t, ok)
	assert.Len(t, e.Session().Dealt, len(deck))
}
