package game

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roleToCnt(roles []Role) map[Role]int {
	roleToCnt := make(map[Role]int)
	for _, role := range roles {
		roleToCnt[role]++
	}
	return roleToCnt
}

func Test_RoleTable(t *testing.T) {
	tests := []struct {
		n        int
		expected map[Role]int
	}{
		{3, map[Role]int{Werewolf: 1, Seer: 1, Villager: 1}},
		{4, map[Role]int{Werewolf: 1, Seer: 1, Doctor: 1, Villager: 1}},
		{5, map[Role]int{Werewolf: 1, Seer: 1, Doctor: 1, Hunter: 1, Villager: 1}},
		{7, map[Role]int{Werewolf: 1, Seer: 1, Doctor: 1, Hunter: 1, Villager: 3}},
		{8, map[Role]int{Werewolf: 2, Seer: 1, Doctor: 1, Hunter: 1, Villager: 3}},
		{12, map[Role]int{Werewolf: 3, Seer: 1, Doctor: 1, Hunter: 1, Villager: 6}},
		{15, map[Role]int{Werewolf: 3, Seer: 1, Doctor: 1, Hunter: 1, Villager: 9}},
	}

	for _, tt := range tests {
		table, err := RoleTable(tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, roleToCnt(table), "role-cards for %d players", tt.n)
	}
}

func Test_AssignRoles(t *testing.T) {
	for n := MinPlayers; n <= MaxPlayers; n++ {
		roles, err := AssignRoles(n)
		require.NoError(t, err)
		require.Len(t, roles, n)

		table, err := RoleTable(n)
		require.NoError(t, err)
		assert.Equal(t, roleToCnt(table), roleToCnt(roles), "assigned roles should be a permutation of the table")

		wolves := roleToCnt(roles)[Werewolf]
		assert.GreaterOrEqual(t, wolves, 1)
		assert.LessOrEqual(t, wolves, n-2)
	}
}

func Test_AssignRoles_invalidCount(t *testing.T) {
	for _, n := range []int{-1, 0, 1, 2, 16, 100} {
		roles, err := AssignRoles(n)
		assert.ErrorIs(t, err, ErrInvalidPlayerCount, "n = %d", n)
		assert.Nil(t, roles)
	}
}

func Test_assignRoles_uniform(t *testing.T) {
	const trials = 60_000
	rnd := rand.New(rand.NewSource(42))

	permutations := make(map[string]int)
	for i := 0; i < trials; i++ {
		roles, err := assignRoles(3, rnd.Shuffle)
		require.NoError(t, err)

		var key string
		for _, role := range roles {
			key += role.String()[:1]
		}
		permutations[key]++
	}

	// Werewolf, Seer, Villager are distinct, so 3! permutations are expected
	require.Len(t, permutations, 6)
	for key, cnt := range permutations {
		assert.InDelta(t, trials/6, cnt, 600, "permutation %s", key)
	}
}

func Test_assignRoles_noPositionalBias(t *testing.T) {
	const trials = 40_000
	rnd := rand.New(rand.NewSource(7))

	wolfAt := make([]int, 8)
	for i := 0; i < trials; i++ {
		roles, err := assignRoles(8, rnd.Shuffle)
		require.NoError(t, err)
		for pos, role := range roles {
			if role == Werewolf {
				wolfAt[pos]++
			}
		}
	}

	// 2 werewolves over 8 seats
	for pos, cnt := range wolfAt {
		assert.InDelta(t, trials*2/8, cnt, 500, "werewolves at seat %d", pos)
	}
}

func Test_Role_Description(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("A werewolf — you hunt at night. Coordinate with your pack.", Werewolf.Description())
	assert.Equal("Seer — peek at one player each night to learn their role.", Seer.Description())
	assert.Equal("Doctor — save one player each night from death.", Doctor.Description())
	assert.Equal("Hunter — if you die, you immediately take one player with you.", Hunter.Description())
	assert.Equal("Villager — no night power. Use your voice in the day.", Villager.Description())
	assert.Equal("", Role(0).Description())
}

func Test_Role_Side(t *testing.T) {
	assert.Equal(t, WerewolfSide, Werewolf.Side())
	for _, role := range []Role{Seer, Doctor, Hunter, Villager} {
		assert.Equal(t, VillagerSide, role.Side(), role.String())
	}
	assert.Equal(t, "Role(42)", Role(42).String())
}

func Test_ClampPlayerCount(t *testing.T) {
	assert.Equal(t, 3, ClampPlayerCount(-5))
	assert.Equal(t, 3, ClampPlayerCount(3))
	assert.Equal(t, 9, ClampPlayerCount(9))
	assert.Equal(t, 15, ClampPlayerCount(40))
}

func Test_RoleTable_order(t *testing.T) {
	table, err := RoleTable(9)
	require.NoError(t, err)
	assert.True(t, slices.Equal([]Role{
		Werewolf, Werewolf, Seer, Doctor, Hunter, Villager, Villager, Villager, Villager,
	}, table))
}
