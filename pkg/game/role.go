package game

import (
	"fmt"
	"math/rand"
)

// Role represents a role in werewolf game
type Role int

const (
	_ Role = iota
	Werewolf
	Seer
	Doctor
	Hunter
	Villager
	roleCount
)

// Side represents a side in werewolf game. Only one can win in a game,
// zero value means nobody has won yet
type Side int

const (
	_ Side = iota
	WerewolfSide
	VillagerSide
)

const (
	MinPlayers = 3
	MaxPlayers = 15
)

type roleInfo struct {
	name        string
	description string
	side        Side
}

var roles = [roleCount]roleInfo{
	Werewolf: {
		"Werewolf",
		"A werewolf — you hunt at night. Coordinate with your pack.",
		WerewolfSide,
	},
	Seer: {
		"Seer",
		"Seer — peek at one player each night to learn their role.",
		VillagerSide,
	},
	Doctor: {
		"Doctor",
		"Doctor — save one player each night from death.",
		VillagerSide,
	},
	Hunter: {
		"Hunter",
		"Hunter — if you die, you immediately take one player with you.",
		VillagerSide,
	},
	Villager: {
		"Villager",
		"Villager — no night power. Use your voice in the day.",
		VillagerSide,
	},
}

var sideToName = map[Side]string{
	WerewolfSide: "werewolves",
	VillagerSide: "villagers",
}

func init() {
	for r := Werewolf; r < roleCount; r++ {
		if info := roles[r]; info.name == "" || info.description == "" || info.side == 0 {
			panic(fmt.Sprintf("game: role %d is not fully described", r))
		}
	}
}

func (r Role) valid() bool {
	return r >= Werewolf && r < roleCount
}

func (r Role) String() string {
	if !r.valid() {
		return fmt.Sprintf("Role(%d)", int(r))
	}
	return roles[r].name
}

// Description returns the flavor text shown on the role card
func (r Role) Description() string {
	if !r.valid() {
		return ""
	}
	return roles[r].description
}

// Side returns the faction the role wins with
func (r Role) Side() Side {
	if !r.valid() {
		return 0
	}
	return roles[r].side
}

func (s Side) String() string {
	if name, ok := sideToName[s]; ok {
		return name
	}
	return "nobody"
}

// ClampPlayerCount fits n into the supported range of players
func ClampPlayerCount(n int) int {
	return max(MinPlayers, min(MaxPlayers, n))
}

func validPlayerCount(n int) error {
	if n < MinPlayers || n > MaxPlayers {
		return fmt.Errorf("%w: %d, expected from %d to %d", ErrInvalidPlayerCount, n, MinPlayers, MaxPlayers)
	}
	return nil
}

// RoleTable returns the unshuffled list of role-cards for n players.
// Werewolves come first, then seer, doctor and hunter, villagers fill the rest
func RoleTable(n int) ([]Role, error) {
	if err := validPlayerCount(n); err != nil {
		return nil, err
	}

	// at least 2 non-werewolf slots
	wolves := min(max(1, n/4), n-2)

	table := make([]Role, 0, n)
	for i := 0; i < wolves; i++ {
		table = append(table, Werewolf)
	}
	if n >= 3 {
		table = append(table, Seer)
	}
	if n >= 4 {
		table = append(table, Doctor)
	}
	if n >= 5 {
		table = append(table, Hunter)
	}
	for len(table) < n {
		table = append(table, Villager)
	}
	return table, nil
}

// AssignRoles returns the role-cards for n players in random order,
// i-th card belongs to i-th player
func AssignRoles(n int) ([]Role, error) {
	return assignRoles(n, rand.Shuffle)
}

func assignRoles(n int, shuffle func(n int, swap func(i, j int))) ([]Role, error) {
	table, err := RoleTable(n)
	if err != nil {
		return nil, err
	}
	shuffle(len(table), func(i, j int) {
		table[i], table[j] = table[j], table[i]
	})
	return table, nil
}
