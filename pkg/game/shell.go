package game

import "context"

// Shell is the presentation the game is played through. Every call blocks
// until the person holding the device responds or ctx is done
type Shell interface {
	// DisplayChoice shows candidates and returns the chosen one. An id which is
	// not among candidates makes the game ask again
	DisplayChoice(ctx context.Context, c Choice) (PlayerID, error)
	// Announce shows a message and waits for acknowledgement
	Announce(ctx context.Context, a Announcement) error
	// RenderRoster refreshes the list of players
	RenderRoster(players []Player)
}

// Candidate is one of the options of a Choice
type Candidate struct {
	ID    PlayerID
	Label string
}

// Choice asks the holder of the device to pick one of the players
type Choice struct {
	Title      string
	Prompt     string
	Candidates []Candidate
	Notice     string // set when the previous answer was rejected
}

func (c Choice) has(id PlayerID) bool {
	for _, candidate := range c.Candidates {
		if candidate.ID == id {
			return true
		}
	}
	return false
}

// Announcement is a narrator message
type Announcement struct {
	Title    string
	Body     string
	Continue string // label of the acknowledgement button
	Secret   bool   // only the holder of the device may see it, hide after acknowledgement
}

func candidates(players []Player) []Candidate {
	list := make([]Candidate, len(players))
	for i, player := range players {
		list[i] = Candidate{player.ID, player.Name}
	}
	return list
}
