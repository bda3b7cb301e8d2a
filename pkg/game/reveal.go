package game

import (
	"context"
	"fmt"
)

// RevealCard is what the holder of the device sees during the reveal.
// Role and Description are empty while the card is hidden
type RevealCard struct {
	Player      PlayerID
	Name        string
	Shown       bool
	Role        Role
	Description string
}

// Reveal passes the device from player to player, each one privately
// learning their own role
type Reveal struct {
	game  *Game
	index int
	shown bool
}

// Current returns the card of the player holding the device,
// false when everyone has seen their role
func (r *Reveal) Current() (RevealCard, bool) {
	if r.Done() {
		return RevealCard{}, false
	}

	player := r.game.players[r.index]
	card := RevealCard{
		Player: player.ID,
		Name:   player.Name,
		Shown:  r.shown,
	}
	if r.shown {
		card.Role = player.Role
		card.Description = player.Role.Description()
	}
	return card, true
}

// Reveal flips the current card. Flipping it again changes nothing
func (r *Reveal) Reveal() (RevealCard, error) {
	if r.Done() {
		return RevealCard{}, ErrRevealComplete
	}
	r.shown = true
	card, _ := r.Current()
	return card, nil
}

// Advance hides the card and passes the device to the next player.
// It returns true when the last player is done, the game starts its first day then
func (r *Reveal) Advance() bool {
	if r.Done() {
		return true
	}

	r.index++
	r.shown = false
	if r.Done() {
		g := r.game
		g.phase = PhaseDay
		g.day = 0
		g.voteDue = false
		g.log.Println("every role is revealed, game begins")
		return true
	}
	return false
}

// Done reports whether every player has seen their role
func (r *Reveal) Done() bool {
	return r.index >= len(r.game.players)
}

// PlayReveal walks the whole reveal sequence through the shell
func (g *Game) PlayReveal(ctx context.Context) error {
	if err := g.expectPhase(PhaseReveal); err != nil {
		return err
	}
	g.renderRoster()

	for {
		card, ok := g.reveal.Current()
		if !ok {
			break
		}
		if err := g.announce(ctx,
			"Pass the device",
			fmt.Sprintf("Hand the device to %s. Nobody else should look.", card.Name),
			"Reveal my role",
		); err != nil {
			return err
		}

		card, err := g.reveal.Reveal()
		if err != nil {
			return err
		}
		if err := g.shell.Announce(ctx, Announcement{
			Title:    card.Name + ", you are " + card.Role.String(),
			Body:     card.Description,
			Continue: "Hide and pass",
			Secret:   true,
		}); err != nil {
			return err
		}

		g.reveal.Advance()
	}

	return g.announce(ctx, "Game begins",
		"Narrator announces night and day. Pass the device between players when asked.",
		"Start the night")
}
