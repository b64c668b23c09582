// Package tabu implements the turn engine of a two-team word-guessing party
// game: one player describes a secret word without saying any of the card's
// forbidden words while their teammates guess.
//
// The package is a pure in-process logic module. A Table owns the roster,
// the settings and at most one running Engine; the Engine drives the
// ready → countdown → playing → turnEnd cycle of a Session and applies the
// scoring rules. A Ledger archives finished sessions and derives all-time
// statistics from them.
//
// None of the types here are safe for concurrent use. Callers serialize
// access, typically from a single goroutine that also receives the ticks of
// the Scheduler handed to the Engine.
package tabu

import (
	"errors"
	"fmt"
	"strings"
)

// Team identifies one of the two competing sides.
type Team string

const (
	TeamA Team = "A"
	TeamB Team = "B"
)

// Other returns the opposing team.
func (t Team) Other() Team {
	if t == TeamA {
		return TeamB
	}
	return TeamA
}

func (t Team) valid() bool {
	return t == TeamA || t == TeamB
}

// ParseTeam accepts "A" or "B" in either case.
func ParseTeam(s string) (Team, error) {
	t := Team(strings.ToUpper(strings.TrimSpace(s)))
	if !t.valid() {
		return "", fmt.Errorf("unknown team %q", s)
	}
	return t, nil
}

// AgeGroup selects which cards are eligible for a game.
type AgeGroup string

const (
	AgeChild AgeGroup = "child"
	AgeTeen  AgeGroup = "teen"
	AgeAdult AgeGroup = "adult"
)

// ParseAgeGroup validates an age group name.
func ParseAgeGroup(s string) (AgeGroup, error) {
	switch g := AgeGroup(strings.ToLower(strings.TrimSpace(s))); g {
	case AgeChild, AgeTeen, AgeAdult:
		return g, nil
	}
	return "", fmt.Errorf("unknown age group %q", s)
}

// Difficulty controls how many forbidden words are shown per card.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// ForbiddenCount maps each difficulty to the number of forbidden words kept
// from the front of a card's authored list.
var ForbiddenCount = map[Difficulty]int{
	Easy:   4,
	Medium: 5,
	Hard:   6,
}

// ParseDifficulty validates a difficulty name.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := ForbiddenCount[d]; !ok {
		return "", fmt.Errorf("unknown difficulty %q", s)
	}
	return d, nil
}

var (
	ErrNoSession       = errors.New("no active session")
	ErrGameInProgress  = errors.New("a game is in progress")
	ErrTeamTooSmall    = errors.New("each team needs at least two players")
	ErrRosterFull      = errors.New("roster is full")
	ErrNicknameTaken   = errors.New("nickname is already taken")
	ErrInvalidNickname = errors.New("invalid nickname")
	ErrUnknownPlayer   = errors.New("unknown player")
	ErrInvalidSettings = errors.New("invalid settings")
	ErrSessionNotOver  = errors.New("session is not over")
)
