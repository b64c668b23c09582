package tabu

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Table is the single controller of one group of players. It holds the
// roster and settings being prepared and, once started, exactly one Engine.
// A Table with no Engine has no session; every game action then fails with
// ErrNoSession.
type Table struct {
	catalog  *Catalog
	rng      Rand
	sched    Scheduler
	log      zerolog.Logger
	roster   *Roster
	settings Settings
	language string
	engine   *Engine

	// OnTick is handed to every Engine the table starts.
	OnTick func()
}

// NewTable returns an empty table dealing from catalog in lang.
func NewTable(catalog *Catalog, lang string, r Rand, sched Scheduler, log zerolog.Logger) *Table {
	return &Table{
		catalog:  catalog,
		rng:      r,
		sched:    sched,
		log:      log,
		roster:   NewRoster(),
		settings: DefaultSettings(),
		language: catalog.Match(lang),
	}
}

func (t *Table) Settings() Settings { return t.settings }
func (t *Table) Language() string   { return t.language }
func (t *Table) Players() []Player  { return t.roster.Players() }

// Active returns the running engine, if any.
func (t *Table) Active() (*Engine, bool) {
	return t.engine, t.engine != nil
}

// Engine returns the running engine or ErrNoSession.
func (t *Table) Engine() (*Engine, error) {
	if t.engine == nil {
		return nil, ErrNoSession
	}
	return t.engine, nil
}

func (t *Table) idle() error {
	if t.engine != nil {
		return ErrGameInProgress
	}
	return nil
}

func (t *Table) UpdateSettings(s Settings) error {
	if err := t.idle(); err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return err
	}
	t.settings = s
	return nil
}

// SetLanguage selects the deck; the closest supported language is used.
func (t *Table) SetLanguage(lang string) error {
	if err := t.idle(); err != nil {
		return err
	}
	t.language = t.catalog.Match(lang)
	return nil
}

func (t *Table) AddPlayer(nickname string, team Team) (Player, error) {
	if err := t.idle(); err != nil {
		return Player{}, err
	}
	return t.roster.Add(nickname, team)
}

func (t *Table) RemovePlayer(id string) error {
	if err := t.idle(); err != nil {
		return err
	}
	return t.roster.Remove(id)
}

func (t *Table) SwitchTeam(id string) error {
	if err := t.idle(); err != nil {
		return err
	}
	return t.roster.SwitchTeam(id)
}

// CanStart reports whether Start would succeed.
func (t *Table) CanStart() bool {
	return t.engine == nil && t.roster.Validate() == nil
}

// Start creates the session and its engine. The roster must have at least
// MinTeamSize players per team.
func (t *Table) Start() (*Engine, error) {
	if err := t.idle(); err != nil {
		return nil, err
	}
	s, err := Start(t.roster.Players(), t.settings)
	if err != nil {
		return nil, fmt.Errorf("start game: %w", err)
	}

	e := NewEngine(s, t.catalog.Lookup(t.language, s.Settings.AgeGroup), t.rng, t.sched, t.log)
	e.OnTick = t.OnTick
	t.engine = e

	t.log.Debug().
		Str("session", s.ID).
		Str("language", t.language).
		Int("players", len(s.Players)).
		Msg("game started")

	return e, nil
}

// Reset stops any running timer, discards the session and the roster, and
// restores default settings.
func (t *Table) Reset() {
	if t.engine != nil {
		t.engine.Stop()
		t.engine = nil
	}
	t.roster.Reset()
	t.settings = DefaultSettings()
}
