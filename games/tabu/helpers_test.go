package tabu

import (
	"fmt"
	"slices"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// manualScheduler fires timers only when the test calls Tick.
type manualScheduler struct {
	timers []*manualTimer
}

type manualTimer struct {
	fn      func()
	stopped bool
}

func (s *manualScheduler) Every(_ time.Duration, fn func()) Timer {
	t := &manualTimer{fn: fn}
	s.timers = append(s.timers, t)
	return t
}

func (t *manualTimer) Stop() { t.stopped = true }

// Tick fires every timer that is running when Tick is called.
func (s *manualScheduler) Tick() {
	for _, t := range slices.Clone(s.timers) {
		if !t.stopped {
			t.fn()
		}
	}
}

func (s *manualScheduler) TickN(n int) {
	for range n {
		s.Tick()
	}
}

func (s *manualScheduler) Active() int {
	n := 0
	for _, t := range s.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

func testPool(n int, ages ...AgeGroup) []WordCard {
	if len(ages) == 0 {
		ages = []AgeGroup{AgeChild, AgeTeen, AgeAdult}
	}
	pool := make([]WordCard, n)
	for i := range pool {
		pool[i] = WordCard{
			ID:        fmt.Sprintf("c%02d", i),
			Word:      fmt.Sprintf("word %d", i),
			Forbidden: []string{"f1", "f2", "f3", "f4", "f5", "f6", "f7"},
			AgeGroups: ages,
		}
	}
	return pool
}

func testPlayers(a, b int) []Player {
	var players []Player
	for i := range a {
		players = append(players, Player{ID: fmt.Sprintf("a%d", i), Nickname: fmt.Sprintf("Ann%d", i), Team: TeamA})
	}
	for i := range b {
		players = append(players, Player{ID: fmt.Sprintf("b%d", i), Nickname: fmt.Sprintf("Bob%d", i), Team: TeamB})
	}
	return players
}

func testSettings() Settings {
	return Settings{
		TargetScore:  10,
		TurnDuration: 30,
		AgeGroup:     AgeAdult,
		Difficulty:   Medium,
		PassLimit:    3,
	}
}

func newTestEngine(t *testing.T, s Settings, pool []WordCard) (*Engine, *manualScheduler) {
	t.Helper()

	session, err := Start(testPlayers(2, 2), s)
	require.NoError(t, err)

	sched := &manualScheduler{}
	return NewEngine(session, pool, NewRand(1), sched, zerolog.Nop()), sched
}

// playingEngine returns an engine whose first turn has just started.
func playingEngine(t *testing.T, s Settings, pool []WordCard) (*Engine, *manualScheduler) {
	t.Helper()

	e, sched := newTestEngine(t, s, pool)
	require.True(t, e.Ready())
	sched.TickN(CountdownTicks)
	require.Equal(t, PhasePlaying, e.Phase())
	return e, sched
}
