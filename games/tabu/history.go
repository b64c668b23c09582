package tabu

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// PlayerGameStats is one player's line in a finished game.
type PlayerGameStats struct {
	PlayerID       string `json:"player_id"`
	Nickname       string `json:"nickname"`
	Team           Team   `json:"team"`
	WordsDescribed int    `json:"words_described"`
	CorrectGuesses int    `json:"correct_guesses"`
	TabuCatches    int    `json:"tabu_catches"`
	Passed         int    `json:"passed"`
	Score          int    `json:"score"`
}

// HistoryEntry is a frozen snapshot of a finished game. Winner is empty for
// a tie.
type HistoryEntry struct {
	ID           string            `json:"id"`
	SessionID    string            `json:"session_id"`
	Date         time.Time         `json:"date"`
	Settings     Settings          `json:"settings"`
	Winner       Team              `json:"winner,omitempty"`
	Scores       Scores            `json:"scores"`
	TeamAPlayers []string          `json:"team_a_players"`
	TeamBPlayers []string          `json:"team_b_players"`
	PlayerStats  []PlayerGameStats `json:"player_stats"`
	Rounds       int               `json:"rounds"`
	TotalCorrect int               `json:"total_correct"`
	TotalTabu    int               `json:"total_tabu"`
	TotalPassed  int               `json:"total_passed"`
}

// NewHistoryEntry snapshots s by value.
func NewHistoryEntry(s *Session, now time.Time) HistoryEntry {
	passed := make(map[string]int)
	for _, t := range s.Turns {
		passed[t.DescriberID] += t.Passed
	}

	e := HistoryEntry{
		ID:           "gh_" + uuid.NewString(),
		SessionID:    s.ID,
		Date:         now.UTC(),
		Settings:     s.Settings,
		Winner:       Winner(s.Scores),
		Scores:       s.Scores,
		TeamAPlayers: []string{},
		TeamBPlayers: []string{},
		PlayerStats:  make([]PlayerGameStats, 0, len(s.Players)),
		Rounds:       s.Round,
	}

	for _, p := range s.Players {
		if p.Team == TeamA {
			e.TeamAPlayers = append(e.TeamAPlayers, p.Nickname)
		} else {
			e.TeamBPlayers = append(e.TeamBPlayers, p.Nickname)
		}

		ps := PlayerGameStats{
			PlayerID:       p.ID,
			Nickname:       p.Nickname,
			Team:           p.Team,
			WordsDescribed: p.WordsDescribed,
			CorrectGuesses: p.CorrectGuesses,
			TabuCatches:    p.TabuCatches,
			Passed:         passed[p.ID],
			Score:          p.Score,
		}
		e.PlayerStats = append(e.PlayerStats, ps)

		e.TotalCorrect += ps.WordsDescribed
		e.TotalTabu += ps.TabuCatches
		e.TotalPassed += ps.Passed
	}

	return e
}

// Store persists history entries.
type Store interface {
	Append(ctx context.Context, e HistoryEntry) error
	List(ctx context.Context) ([]HistoryEntry, error)
	Clear(ctx context.Context) error
}

// Ledger is the list of finished games, most recent first. It is safe for
// concurrent use so several tables can share one ledger.
//
// The in-memory list is authoritative: a failing Store is reported to the
// caller but never rolls back an archived entry.
type Ledger struct {
	mu       sync.Mutex
	entries  []HistoryEntry
	archived map[string]bool
	store    Store
	log      zerolog.Logger
}

// NewLedger returns an empty ledger. store may be nil.
func NewLedger(store Store, log zerolog.Logger) *Ledger {
	return &Ledger{
		archived: make(map[string]bool),
		store:    store,
		log:      log,
	}
}

// Load replaces the in-memory entries with the store's contents.
func (l *Ledger) Load(ctx context.Context) error {
	if l.store == nil {
		return nil
	}
	entries, err := l.store.List(ctx)
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = entries
	for _, e := range entries {
		l.archived[e.SessionID] = true
	}
	return nil
}

// Archive records a finished session once. The second call for the same
// session returns the existing entry and false.
func (l *Ledger) Archive(ctx context.Context, s *Session, now time.Time) (HistoryEntry, bool, error) {
	if !s.Over {
		return HistoryEntry{}, false, ErrSessionNotOver
	}

	l.mu.Lock()
	if l.archived[s.ID] {
		i := slices.IndexFunc(l.entries, func(e HistoryEntry) bool { return e.SessionID == s.ID })
		var existing HistoryEntry
		if i >= 0 {
			existing = l.entries[i]
		}
		l.mu.Unlock()
		return existing, false, nil
	}

	e := NewHistoryEntry(s, now)
	l.entries = slices.Insert(l.entries, 0, e)
	l.archived[s.ID] = true
	l.mu.Unlock()

	if l.store != nil {
		if err := l.store.Append(ctx, e); err != nil {
			l.log.Warn().Err(err).Str("entry", e.ID).Msg("history entry kept in memory only")
			return e, true, fmt.Errorf("persist history entry: %w", err)
		}
	}

	return e, true, nil
}

// Entries returns the archived games, most recent first.
func (l *Ledger) Entries() []HistoryEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	return slices.Clone(l.entries)
}

// Clear empties the ledger. Sessions archived before the clear stay
// archived, so they cannot be added again.
func (l *Ledger) Clear(ctx context.Context) error {
	l.mu.Lock()
	l.entries = nil
	l.mu.Unlock()

	if l.store != nil {
		if err := l.store.Clear(ctx); err != nil {
			return fmt.Errorf("clear history: %w", err)
		}
	}
	return nil
}

// Stats aggregates the current entries.
func (l *Ledger) Stats() AllTimeStats {
	return Aggregate(l.Entries())
}
