package tabu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(winner Team, a, b int, stats ...PlayerGameStats) HistoryEntry {
	return HistoryEntry{Winner: winner, Scores: Scores{A: a, B: b}, PlayerStats: stats}
}

func TestAggregate(t *testing.T) {
	entries := []HistoryEntry{
		entry(TeamB, 12, 30,
			PlayerGameStats{Nickname: "Ada", Team: TeamA, WordsDescribed: 5, Score: 5, Passed: 2},
			PlayerGameStats{Nickname: "Bea", Team: TeamB, WordsDescribed: 20, Score: 20, TabuCatches: 3},
		),
		entry(TeamA, 30, 25,
			PlayerGameStats{Nickname: "Ada", Team: TeamA, WordsDescribed: 18, Score: 18, CorrectGuesses: 1},
			PlayerGameStats{Nickname: "Cem", Team: TeamB, WordsDescribed: 10, Score: 10, TabuCatches: 1},
		),
		entry("", 15, 15,
			PlayerGameStats{Nickname: "Bea", Team: TeamA, WordsDescribed: 4, Score: 4},
		),
	}

	stats := Aggregate(entries)

	assert.Equal(t, 3, stats.TotalGames)
	assert.Equal(t, TeamTotals{Wins: 1, TotalScore: 57}, stats.TeamA)
	assert.Equal(t, TeamTotals{Wins: 1, TotalScore: 70}, stats.TeamB)

	require.Len(t, stats.Players, 3)
	assert.Equal(t, PlayerTotals{
		Nickname: "Ada", GamesPlayed: 2, TotalDescribed: 23, TotalCorrect: 1,
		TotalPassed: 2, TotalScore: 23, Wins: 1,
	}, stats.Players[0])
	assert.Equal(t, PlayerTotals{
		Nickname: "Bea", GamesPlayed: 2, TotalDescribed: 24, TotalTabu: 3,
		TotalScore: 24, Wins: 1,
	}, stats.Players[1], "win credited for the team played in that game, none for a tie")
	assert.Equal(t, "Cem", stats.Players[2].Nickname)
	assert.Equal(t, 0, stats.Players[2].Wins)
}

func TestAggregate_Empty(t *testing.T) {
	stats := Aggregate(nil)
	assert.Equal(t, 0, stats.TotalGames)
	assert.Empty(t, stats.Players)
	assert.Empty(t, stats.Leaderboard(ByScore, 5))
}

func TestLeaderboard_StableTies(t *testing.T) {
	stats := AllTimeStats{Players: []PlayerTotals{
		{Nickname: "Ada", TotalScore: 10, TotalTabu: 1},
		{Nickname: "Bea", TotalScore: 30, TotalTabu: 1},
		{Nickname: "Cem", TotalScore: 10, TotalTabu: 4},
		{Nickname: "Deniz", TotalScore: 20, TotalTabu: 1},
		{Nickname: "Ece", TotalScore: 10, TotalTabu: 0},
	}}

	names := func(ps []PlayerTotals) []string {
		var out []string
		for _, p := range ps {
			out = append(out, p.Nickname)
		}
		return out
	}

	assert.Equal(t, []string{"Bea", "Deniz", "Ada", "Cem", "Ece"}, names(stats.Leaderboard(ByScore, 0)))
	assert.Equal(t, []string{"Bea", "Deniz", "Ada"}, names(stats.Leaderboard(ByScore, 3)))
	assert.Equal(t, []string{"Cem", "Ada", "Bea", "Deniz", "Ece"}, names(stats.Leaderboard(ByTabu, 10)))
	assert.Equal(t, "Ada", stats.Players[0].Nickname, "source order untouched")
}

func TestAwardsFor(t *testing.T) {
	players := []Player{
		{ID: "a", Score: 3, WordsDescribed: 3, TabuCatches: 2},
		{ID: "b", Score: 5, WordsDescribed: 5},
		{ID: "c", Score: 5, WordsDescribed: 1, TabuCatches: 2},
	}
	a := AwardsFor(players)
	assert.Equal(t, "b", a.TopScorer.ID)
	assert.Equal(t, "b", a.TopDescriber.ID)
	assert.Equal(t, "a", a.TopTabuCatcher.ID)
}

func TestWinner(t *testing.T) {
	assert.Equal(t, TeamA, Winner(Scores{A: 2, B: 1}))
	assert.Equal(t, TeamB, Winner(Scores{A: 0, B: 1}))
	assert.Equal(t, Team(""), Winner(Scores{A: 3, B: 3}))
}
