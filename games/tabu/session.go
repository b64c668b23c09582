package tabu

import (
	"slices"

	"github.com/google/uuid"
)

// TurnResult is the tally of one finished turn.
type TurnResult struct {
	DescriberID string `json:"describer_id"`
	Team        Team   `json:"team"`
	Correct     int    `json:"correct"`
	Tabu        int    `json:"tabu"`
	Passed      int    `json:"passed"`
}

// Scores holds both team scores.
type Scores struct {
	A int `json:"A"`
	B int `json:"B"`
}

func (s Scores) Of(t Team) int {
	if t == TeamB {
		return s.B
	}
	return s.A
}

func (s *Scores) set(t Team, v int) {
	if t == TeamB {
		s.B = v
		return
	}
	s.A = v
}

// Session is the authoritative game state. Only the Engine mutates it once
// play begins; once Over is true every mutation is a no-op.
type Session struct {
	ID       string
	Players  []Player
	Settings Settings
	Team     Team
	Rotation map[Team]int
	Scores   Scores
	Dealt    []string
	Turns    []TurnResult
	Over     bool
	Round    int

	dealtSet map[string]bool
}

// Start creates a session from the roster snapshot and settings. Callers
// must ensure each team has at least MinTeamSize players; Start rejects the
// roster with ErrTeamTooSmall otherwise.
func Start(players []Player, settings Settings) (*Session, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if err := validatePlayers(players); err != nil {
		return nil, err
	}

	snapshot := slices.Clone(players)
	for i := range snapshot {
		snapshot[i].Score = 0
		snapshot[i].CorrectGuesses = 0
		snapshot[i].TabuCatches = 0
		snapshot[i].WordsDescribed = 0
	}

	return &Session{
		ID:       uuid.NewString(),
		Players:  snapshot,
		Settings: settings,
		Team:     TeamA,
		Rotation: map[Team]int{TeamA: 0, TeamB: 0},
		Round:    1,
		dealtSet: make(map[string]bool),
	}, nil
}

// Describer returns the acting describer: the player at
// Rotation[Team] mod len(team) within the current team.
func (s *Session) Describer() (Player, bool) {
	team := teamOf(s.Players, s.Team)
	if len(team) == 0 {
		return Player{}, false
	}
	return team[s.Rotation[s.Team]%len(team)], true
}

// Deal draws the next card from pool and records its id. It reports false
// when the deck is exhausted or the session is over.
func (s *Session) Deal(pool []WordCard, r Rand) (WordCard, bool) {
	if s.Over {
		return WordCard{}, false
	}
	c, ok := Deal(pool, r, s.Settings.AgeGroup, s.dealtSet, s.Settings.Difficulty)
	if !ok {
		return WordCard{}, false
	}
	s.dealtSet[c.ID] = true
	s.Dealt = append(s.Dealt, c.ID)
	return c, true
}

// Correct credits the describer and the acting team with one point. It
// reports whether the team reached the target score, which ends the game.
func (s *Session) Correct() (won bool) {
	if s.Over {
		return false
	}
	d, ok := s.Describer()
	if !ok {
		return false
	}

	score := s.Scores.Of(s.Team) + 1
	s.Scores.set(s.Team, score)
	if p := s.player(d.ID); p != nil {
		p.WordsDescribed++
		p.Score++
	}

	if score >= s.Settings.TargetScore {
		s.Over = true
	}
	return s.Over
}

// Tabu takes one point from the acting team, never below zero. A non-empty
// catcherID credits that player with a tabu catch.
func (s *Session) Tabu(catcherID string) {
	if s.Over {
		return
	}
	s.Scores.set(s.Team, max(0, s.Scores.Of(s.Team)-1))
	if catcherID == "" {
		return
	}
	if p := s.player(catcherID); p != nil {
		p.TabuCatches++
	}
}

// Rotate hands the turn to the other team, advancing the finished team's
// describer index. A round completes when control returns to team A.
func (s *Session) Rotate() {
	if s.Over {
		return
	}
	prev := s.Team
	s.Rotation[prev]++
	s.Team = prev.Other()
	if s.Team == TeamA {
		s.Round++
	}
}

func (s *Session) record(r TurnResult) {
	s.Turns = append(s.Turns, r)
}

func (s *Session) player(id string) *Player {
	for i := range s.Players {
		if s.Players[i].ID == id {
			return &s.Players[i]
		}
	}
	return nil
}

// Player looks up a player of the session by id.
func (s *Session) Player(id string) (Player, bool) {
	if p := s.player(id); p != nil {
		return *p, true
	}
	return Player{}, false
}

// Scoreboard returns all players ordered by score, highest first. Ties keep
// roster order.
func (s *Session) Scoreboard() []Player {
	out := slices.Clone(s.Players)
	slices.SortStableFunc(out, func(a, b Player) int { return b.Score - a.Score })
	return out
}
