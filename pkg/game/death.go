package game

import (
	"context"
	"fmt"
)

// Cause tells how a player has died
type Cause int

const (
	_ Cause = iota
	CauseWerewolves
	CauseLynch
	CauseHunter
)

var causes = map[Cause]struct {
	title, format string
}{
	CauseWerewolves: {"Dawn", "%s was killed by the werewolves."},
	CauseLynch:      {"Lynch", "The village has lynched %s."},
	CauseHunter:     {"Hunter's shot", "%s was shot by the Hunter."},
}

func (c Cause) String() string {
	switch c {
	case CauseWerewolves:
		return "werewolves"
	case CauseLynch:
		return "lynch"
	case CauseHunter:
		return "hunter"
	default:
		return "unknown"
	}
}

// Death describes a player who has just died
type Death struct {
	Player Player
	Cause  Cause
	Night  int
	Day    int
}

// resolveNight applies the night intent. The intent is cleared whatever happens
func (g *Game) resolveNight(ctx context.Context) error {
	casualty := g.intent.Casualty()
	g.log.Printf("night %d resolved: victim %d, saved %d, casualty %d",
		g.night, g.intent.Victim, g.intent.Saved, casualty)

	var err error
	if casualty == NoPlayer {
		err = g.announce(ctx, "Dawn", "Nobody died tonight.", "Start the day")
	} else {
		err = g.kill(ctx, casualty, CauseWerewolves)
	}
	g.intent.reset()
	if err != nil {
		return err
	}

	if over, err := g.checkForEnd(ctx); over || err != nil {
		return err
	}
	g.phase = PhaseDay
	g.day++
	g.voteDue = true
	return nil
}

// kill marks the player dead, reveals the death to everyone and fires
// post-death triggers. Winners are decided by the caller once the triggers
// have settled
func (g *Game) kill(ctx context.Context, id PlayerID, cause Cause) error {
	if g.phase == PhaseGameOver {
		return ErrGameOver
	}
	player, ok := g.player(id)
	if !ok || !player.Alive {
		return fmt.Errorf("%w: player %d can't die", ErrInvalidSelection, id)
	}

	player.Alive = false
	dead := *player
	g.log.Printf("%s (%s) died, cause: %s", dead.Name, dead.Role, cause)
	g.renderRoster()

	if err := g.announce(ctx, causes[cause].title, g.obituary(ctx, dead, cause), "Continue"); err != nil {
		return err
	}

	// revenge doesn't chain: a Hunter shot by a Hunter doesn't shoot
	if dead.Role == Hunter && cause != CauseHunter {
		return g.hunterRevenge(ctx, dead)
	}
	return nil
}

func (g *Game) obituary(ctx context.Context, dead Player, cause Cause) string {
	text := fmt.Sprintf(causes[cause].format, dead.Name) + "\nRole: " + dead.Role.String()
	if g.narrator == nil {
		return text
	}

	story, err := g.narrator.Narrate(ctx, Death{
		Player: dead,
		Cause:  cause,
		Night:  g.night,
		Day:    g.day,
	})
	if err != nil {
		g.log.Printf("narrator failed: %v", err)
		return text
	}
	if story != "" {
		text += "\n\n" + story
	}
	return text
}

func (g *Game) hunterRevenge(ctx context.Context, hunter Player) error {
	targets := g.living()
	if len(targets) == 0 {
		return nil
	}

	if err := g.announce(ctx, "Hunter",
		hunter.Name+" was the Hunter and takes one player with them.",
		"Take aim",
	); err != nil {
		return err
	}
	target, err := g.choose(ctx, Choice{
		Title:      "Hunter",
		Prompt:     hunter.Name + ", whom do you take with you?",
		Candidates: candidates(targets),
	})
	if err != nil {
		return err
	}

	g.log.Printf("hunter %s shoots %s", hunter.Name, g.players[target].Name)
	return g.kill(ctx, target, CauseHunter)
}
