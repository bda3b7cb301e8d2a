package game

import (
	"strconv"
	"strings"
)

// PlayerID is an ordinal of the player in the roster
type PlayerID int

// NoPlayer is used when nobody is chosen
const NoPlayer PlayerID = -1

// Player represents a player in the game. Dead players stay in the roster
type Player struct {
	ID    PlayerID
	Name  string
	Role  Role // assigned once at setup
	Alive bool
}

// DefaultName returns the name given to i-th player when left blank
func DefaultName(i int) string {
	return "Player " + strconv.Itoa(i+1)
}

func newPlayers(names []string, roles []Role) []Player {
	players := make([]Player, len(names))
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			name = DefaultName(i)
		}
		players[i] = Player{
			ID:    PlayerID(i),
			Name:  name,
			Role:  roles[i],
			Alive: true,
		}
	}
	return players
}

func (g *Game) player(id PlayerID) (*Player, bool) {
	if id < 0 || int(id) >= len(g.players) {
		return nil, false
	}
	return &g.players[id], true
}

func (g *Game) living() []Player {
	var alive []Player
	for _, player := range g.players {
		if player.Alive {
			alive = append(alive, player)
		}
	}
	return alive
}

func (g *Game) livingWith(role Role) []Player {
	var alive []Player
	for _, player := range g.players {
		if player.Alive && player.Role == role {
			alive = append(alive, player)
		}
	}
	return alive
}

func names(players []Player) string {
	list := make([]string, len(players))
	for i, player := range players {
		list[i] = player.Name
	}
	return strings.Join(list, ", ")
}
