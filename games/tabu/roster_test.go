package tabu

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoster_AddBalancesTeams(t *testing.T) {
	r := NewRoster()

	var teams []Team
	for _, name := range []string{"Ada", "Bea", "Cem", "Deniz", "Ece"} {
		p, err := r.Add(name, "")
		require.NoError(t, err)
		assert.NotEmpty(t, p.ID)
		teams = append(teams, p.Team)
	}
	assert.Equal(t, []Team{TeamA, TeamB, TeamA, TeamB, TeamA}, teams)
}

func TestRoster_AddExplicitTeam(t *testing.T) {
	r := NewRoster()
	p, err := r.Add("  Ada  ", TeamB)
	require.NoError(t, err)
	assert.Equal(t, "Ada", p.Nickname)
	assert.Equal(t, TeamB, p.Team)

	_, err = r.Add("Bea", Team("C"))
	assert.Error(t, err)
}

func TestRoster_AddRejectsBadNicknames(t *testing.T) {
	r := NewRoster()

	_, err := r.Add("   ", "")
	assert.ErrorIs(t, err, ErrInvalidNickname)

	_, err = r.Add(strings.Repeat("x", MaxNicknameLength+1), "")
	assert.ErrorIs(t, err, ErrInvalidNickname)

	_, err = r.Add(strings.Repeat("ş", MaxNicknameLength), "")
	assert.NoError(t, err, "length counts runes")

	_, err = r.Add("Ada", "")
	require.NoError(t, err)
	_, err = r.Add("ada", "")
	assert.ErrorIs(t, err, ErrNicknameTaken)
}

func TestRoster_Full(t *testing.T) {
	r := NewRoster()
	for i := range MaxPlayers {
		_, err := r.Add(fmt.Sprintf("p%d", i), "")
		require.NoError(t, err)
	}
	_, err := r.Add("one more", "")
	assert.ErrorIs(t, err, ErrRosterFull)
}

func TestRoster_RemoveAndSwitch(t *testing.T) {
	r := NewRoster()
	a, _ := r.Add("Ada", TeamA)
	b, _ := r.Add("Bea", TeamA)

	require.NoError(t, r.SwitchTeam(b.ID))
	assert.Len(t, r.Team(TeamA), 1)
	assert.Len(t, r.Team(TeamB), 1)

	require.NoError(t, r.Remove(a.ID))
	assert.Equal(t, []Player{{ID: b.ID, Nickname: "Bea", Team: TeamB}}, r.Players())

	assert.ErrorIs(t, r.Remove("missing"), ErrUnknownPlayer)
	assert.ErrorIs(t, r.SwitchTeam("missing"), ErrUnknownPlayer)
}

func TestRoster_Validate(t *testing.T) {
	r := NewRoster()
	r.Add("Ada", TeamA)
	r.Add("Bea", TeamB)
	r.Add("Cem", TeamB)
	assert.ErrorIs(t, r.Validate(), ErrTeamTooSmall)

	r.Add("Deniz", TeamA)
	assert.NoError(t, r.Validate())

	r.Reset()
	assert.Empty(t, r.Players())
	assert.ErrorIs(t, r.Validate(), ErrTeamTooSmall)
}

func TestParseTeam(t *testing.T) {
	tm, err := ParseTeam(" b ")
	require.NoError(t, err)
	assert.Equal(t, TeamB, tm)
	assert.Equal(t, TeamA, tm.Other())

	_, err = ParseTeam("c")
	assert.Error(t, err)
}
