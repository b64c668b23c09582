package tabu

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	MaxPlayers        = 10
	MaxNicknameLength = 15
	MinTeamSize       = 2
)

// Player is a roster entry plus the cumulative stats of the current game.
// Guessers never receive CorrectGuesses; only the describer is credited for
// a correct card.
type Player struct {
	ID             string `json:"id"`
	Nickname       string `json:"nickname"`
	Team           Team   `json:"team"`
	Score          int    `json:"score"`
	CorrectGuesses int    `json:"correct_guesses"`
	TabuCatches    int    `json:"tabu_catches"`
	WordsDescribed int    `json:"words_described"`
}

// Roster is the ordered list of players built before a game starts.
type Roster struct {
	players []Player
	newID   func() string
}

func NewRoster() *Roster {
	return &Roster{newID: uuid.NewString}
}

// Players returns a copy of the roster in join order.
func (r *Roster) Players() []Player {
	return slices.Clone(r.players)
}

// Team returns the players of t in join order.
func (r *Roster) Team(t Team) []Player {
	return teamOf(r.players, t)
}

func teamOf(players []Player, t Team) []Player {
	out := make([]Player, 0, len(players))
	for _, p := range players {
		if p.Team == t {
			out = append(out, p)
		}
	}
	return out
}

// Add appends a new player. An empty team puts the player on the smaller
// team, A on ties.
func (r *Roster) Add(nickname string, team Team) (Player, error) {
	name := strings.TrimSpace(nickname)
	if name == "" || utf8.RuneCountInString(name) > MaxNicknameLength {
		return Player{}, fmt.Errorf("%w: %q", ErrInvalidNickname, nickname)
	}
	if len(r.players) >= MaxPlayers {
		return Player{}, ErrRosterFull
	}
	for _, p := range r.players {
		if strings.EqualFold(p.Nickname, name) {
			return Player{}, fmt.Errorf("%w: %q", ErrNicknameTaken, name)
		}
	}

	switch {
	case team == "":
		team = TeamA
		if len(r.Team(TeamA)) > len(r.Team(TeamB)) {
			team = TeamB
		}
	case !team.valid():
		return Player{}, fmt.Errorf("unknown team %q", team)
	}

	p := Player{ID: r.newID(), Nickname: name, Team: team}
	r.players = append(r.players, p)

	return p, nil
}

// Remove deletes a player by id.
func (r *Roster) Remove(id string) error {
	i := r.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownPlayer, id)
	}
	r.players = slices.Delete(r.players, i, i+1)
	return nil
}

// SwitchTeam moves a player to the other team.
func (r *Roster) SwitchTeam(id string) error {
	i := r.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownPlayer, id)
	}
	r.players[i].Team = r.players[i].Team.Other()
	return nil
}

func (r *Roster) index(id string) int {
	return slices.IndexFunc(r.players, func(p Player) bool { return p.ID == id })
}

// Validate checks the start precondition: at least MinTeamSize players on
// each team.
func (r *Roster) Validate() error {
	return validatePlayers(r.players)
}

func validatePlayers(players []Player) error {
	a, b := len(teamOf(players, TeamA)), len(teamOf(players, TeamB))
	if a < MinTeamSize || b < MinTeamSize {
		return fmt.Errorf("%w: team A has %d, team B has %d", ErrTeamTooSmall, a, b)
	}
	return nil
}

// Reset empties the roster.
func (r *Roster) Reset() {
	r.players = nil
}
