package tabu

import "slices"

// PlayerTotals aggregates one nickname across every archived game.
type PlayerTotals struct {
	Nickname       string `json:"nickname"`
	GamesPlayed    int    `json:"games_played"`
	TotalDescribed int    `json:"total_described"`
	TotalCorrect   int    `json:"total_correct"`
	TotalTabu      int    `json:"total_tabu"`
	TotalPassed    int    `json:"total_passed"`
	TotalScore     int    `json:"total_score"`
	Wins           int    `json:"wins"`
}

type TeamTotals struct {
	Wins       int `json:"wins"`
	TotalScore int `json:"total_score"`
}

// AllTimeStats is derived from the ledger on demand and never stored.
// Players are listed in the order their nickname first appears in the
// ledger.
type AllTimeStats struct {
	TotalGames int            `json:"total_games"`
	Players    []PlayerTotals `json:"players"`
	TeamA      TeamTotals     `json:"team_a"`
	TeamB      TeamTotals     `json:"team_b"`
}

// Aggregate folds entries into AllTimeStats in a single pass.
func Aggregate(entries []HistoryEntry) AllTimeStats {
	stats := AllTimeStats{
		TotalGames: len(entries),
		Players:    []PlayerTotals{},
	}
	index := make(map[string]int)

	for _, game := range entries {
		switch game.Winner {
		case TeamA:
			stats.TeamA.Wins++
		case TeamB:
			stats.TeamB.Wins++
		}
		stats.TeamA.TotalScore += game.Scores.A
		stats.TeamB.TotalScore += game.Scores.B

		for _, ps := range game.PlayerStats {
			i, ok := index[ps.Nickname]
			if !ok {
				i = len(stats.Players)
				index[ps.Nickname] = i
				stats.Players = append(stats.Players, PlayerTotals{Nickname: ps.Nickname})
			}

			pt := &stats.Players[i]
			pt.GamesPlayed++
			pt.TotalDescribed += ps.WordsDescribed
			pt.TotalCorrect += ps.CorrectGuesses
			pt.TotalTabu += ps.TabuCatches
			pt.TotalPassed += ps.Passed
			pt.TotalScore += ps.Score
			if game.Winner != "" && game.Winner == ps.Team {
				pt.Wins++
			}
		}
	}

	return stats
}

// Stat selects the value a leaderboard ranks by.
type Stat func(PlayerTotals) int

var (
	ByScore     Stat = func(p PlayerTotals) int { return p.TotalScore }
	ByDescribed Stat = func(p PlayerTotals) int { return p.TotalDescribed }
	ByCorrect   Stat = func(p PlayerTotals) int { return p.TotalCorrect }
	ByTabu      Stat = func(p PlayerTotals) int { return p.TotalTabu }
	ByPassed    Stat = func(p PlayerTotals) int { return p.TotalPassed }
	ByWins      Stat = func(p PlayerTotals) int { return p.Wins }
)

// Leaderboard sorts players by the stat, highest first, keeping insertion
// order on ties, and returns at most n of them. n <= 0 returns all.
func (a AllTimeStats) Leaderboard(by Stat, n int) []PlayerTotals {
	out := slices.Clone(a.Players)
	slices.SortStableFunc(out, func(x, y PlayerTotals) int { return by(y) - by(x) })
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
