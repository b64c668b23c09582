package main

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/Seednode/tabugo/games/tabu"
	"github.com/Seednode/tabugo/games/tabu/sqlite"
	"github.com/julienschmidt/httprouter"
)

// leaderboardSize is how many players each leaderboard shows.
const leaderboardSize = 5

// StatsResponse is the body of GET /history/stats.
type StatsResponse struct {
	TotalGames      int                 `json:"total_games"`
	TeamA           tabu.TeamTotals     `json:"team_a"`
	TeamB           tabu.TeamTotals     `json:"team_b"`
	Players         []tabu.PlayerTotals `json:"players"`
	TopScorers      []tabu.PlayerTotals `json:"top_scorers"`
	TopDescribers   []tabu.PlayerTotals `json:"top_describers"`
	TopTabuCatchers []tabu.PlayerTotals `json:"top_tabu_catchers"`
}

func newStatsResponse(stats tabu.AllTimeStats) StatsResponse {
	return StatsResponse{
		TotalGames:      stats.TotalGames,
		TeamA:           stats.TeamA,
		TeamB:           stats.TeamB,
		Players:         stats.Players,
		TopScorers:      stats.Leaderboard(tabu.ByScore, leaderboardSize),
		TopDescribers:   stats.Leaderboard(tabu.ByDescribed, leaderboardSize),
		TopTabuCatchers: stats.Leaderboard(tabu.ByTabu, leaderboardSize),
	}
}

// openLedger builds the shared history ledger, backed by SQLite when --db
// is set. The returned func closes the database.
func openLedger(ctx context.Context, cfg *Config) (*tabu.Ledger, func() error, error) {
	if cfg.db == "" {
		logf(cfg, "STORE: Keeping game history in memory")

		return tabu.NewLedger(nil, cfg.log), func() error { return nil }, nil
	}

	store, err := sqlite.Open(cfg.db)
	if err != nil {
		return nil, nil, err
	}

	ledger := tabu.NewLedger(store, cfg.log)
	if err := ledger.Load(ctx); err != nil {
		_ = store.Close()

		return nil, nil, err
	}

	logf(cfg, "STORE: Loaded %d games from %s", len(ledger.Entries()), cfg.db)

	return ledger, store.Close, nil
}

func writeJSON(cfg *Config, w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	securityHeaders(cfg, w)
	w.WriteHeader(status)

	return json.NewEncoder(w).Encode(v)
}

// requireHistory answers 403 on tiers that keep no history.
func requireHistory(cfg *Config, w http.ResponseWriter) bool {
	if cfg.keepsHistory() {
		return true
	}

	http.Error(w, "game history requires a paid tier", http.StatusForbidden)

	return false
}

func serveHistory(cfg *Config, ledger *tabu.Ledger, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		if !requireHistory(cfg, w) {
			return
		}

		entries := ledger.Entries()
		if entries == nil {
			entries = []tabu.HistoryEntry{}
		}

		if err := writeJSON(cfg, w, http.StatusOK, entries); err != nil {
			errs <- err

			return
		}

		logf(cfg, "SERVE: History (%d games) to %s", len(entries), realIP(r))
	}
}

func serveHistoryStats(cfg *Config, ledger *tabu.Ledger, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		if !requireHistory(cfg, w) {
			return
		}

		resp := newStatsResponse(ledger.Stats())

		if err := writeJSON(cfg, w, http.StatusOK, resp); err != nil {
			errs <- err

			return
		}

		logf(cfg, "SERVE: History stats (%d games) to %s", resp.TotalGames, realIP(r))
	}
}

// requireAdmin answers 403 unless the request carries the configured admin
// token. With no token configured nobody is an admin.
func requireAdmin(cfg *Config, w http.ResponseWriter, r *http.Request) bool {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if ok && cfg.adminToken != "" && subtle.ConstantTimeCompare([]byte(token), []byte(cfg.adminToken)) == 1 {
		return true
	}

	logf(cfg, "STORE: Refused to clear history for %s", realIP(r))
	http.Error(w, "clearing history requires the admin token", http.StatusForbidden)

	return false
}

func clearHistory(cfg *Config, ledger *tabu.Ledger) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		if !requireHistory(cfg, w) || !requireAdmin(cfg, w, r) {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := ledger.Clear(ctx); err != nil {
			errorf(cfg, "STORE: Clearing history: %v", err)
			http.Error(w, "unable to clear history", http.StatusInternalServerError)

			return
		}

		logf(cfg, "STORE: History cleared by %s", realIP(r))

		securityHeaders(cfg, w)
		w.WriteHeader(http.StatusNoContent)
	}
}

func registerHistory(cfg *Config, path string, mux *httprouter.Router, ledger *tabu.Ledger, errs chan<- error) {
	mux.GET(cfg.prefix+path, serveHistory(cfg, ledger, errs))
	mux.GET(cfg.prefix+path+"/stats", serveHistoryStats(cfg, ledger, errs))
	mux.DELETE(cfg.prefix+path, clearHistory(cfg, ledger))
}
