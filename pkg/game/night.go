package game

import (
	"context"
	"errors"
	"fmt"
)

// NightIntent holds the targets chosen during one night. NoPlayer
// means the action hasn't happened
type NightIntent struct {
	Victim   PlayerID // werewolves' attack
	Saved    PlayerID // doctor's protection
	SeerPeek PlayerID // seer's check, doesn't affect deaths
}

func emptyIntent() NightIntent {
	return NightIntent{
		Victim:   NoPlayer,
		Saved:    NoPlayer,
		SeerPeek: NoPlayer,
	}
}

func (in *NightIntent) reset() {
	*in = emptyIntent()
}

// Casualty returns who dies by the werewolves tonight. Protection of the
// attacked player cancels the attack
func (in NightIntent) Casualty() PlayerID {
	if in.Victim == NoPlayer || in.Victim == in.Saved {
		return NoPlayer
	}
	return in.Victim
}

type nightStep struct {
	role Role
	act  func(g *Game, ctx context.Context, actors []Player) error
}

// werewolves, then seer, then doctor
var nightSteps = []nightStep{
	{Werewolf, (*Game).werewolvesAct},
	{Seer, (*Game).seerActs},
	{Doctor, (*Game).doctorActs},
}

// PlayNight wakes the roles one by one, collects their intents and resolves them
func (g *Game) PlayNight(ctx context.Context) error {
	if err := g.expectPhase(PhaseDay); err != nil {
		return err
	}
	if g.voteDue {
		return fmt.Errorf("%w: day %d hasn't voted yet", ErrWrongPhase, g.day)
	}

	g.night++
	g.phase = PhaseNight
	g.intent.reset()
	g.log.Printf("night %d begins, alive: %s", g.night, names(g.living()))
	g.renderRoster()

	if err := g.announce(ctx,
		fmt.Sprintf("Night %d", g.night),
		"Everyone close your eyes. The narrator wakes the roles one by one.",
		"Begin the night",
	); err != nil {
		return err
	}

	for _, step := range nightSteps {
		err := g.wake(ctx, step)
		if errors.Is(err, ErrNoEligibleActor) {
			g.log.Printf("night %d: %v, skipped", g.night, err)
			continue
		}
		if err != nil {
			return err
		}
	}

	return g.resolveNight(ctx)
}

func (g *Game) wake(ctx context.Context, step nightStep) error {
	actors := g.livingWith(step.role)
	if len(actors) == 0 {
		return fmt.Errorf("%w: %s", ErrNoEligibleActor, step.role)
	}
	return step.act(g, ctx, actors)
}

// werewolvesAct asks the pack for one shared victim, however many wolves are alive
func (g *Game) werewolvesAct(ctx context.Context, wolves []Player) error {
	if err := g.announce(ctx, "Werewolves", "Werewolves, open your eyes.", "We are awake"); err != nil {
		return err
	}
	victim, err := g.choose(ctx, Choice{
		Title:      "Werewolves",
		Prompt:     "Agree on tonight's victim.",
		Candidates: candidates(g.living()),
	})
	if err != nil {
		return err
	}

	g.intent.Victim = victim
	g.log.Printf("night %d: %d werewolves attack %s", g.night, len(wolves), g.players[victim].Name)
	return nil
}

func (g *Game) seerActs(ctx context.Context, seers []Player) error {
	if err := g.announce(ctx, "Seer", "Seer, open your eyes.", "I am awake"); err != nil {
		return err
	}
	peek, err := g.choose(ctx, Choice{
		Title:      "Seer",
		Prompt:     "Whose role do you want to learn?",
		Candidates: candidates(g.living()),
	})
	if err != nil {
		return err
	}

	g.intent.SeerPeek = peek
	target := g.players[peek]
	g.log.Printf("night %d: seer %s peeks at %s", g.night, seers[0].Name, target.Name)

	return g.shell.Announce(ctx, Announcement{
		Title:    "Vision",
		Body:     target.Name + " is " + target.Role.String() + ".",
		Continue: "Close my eyes",
		Secret:   true,
	})
}

func (g *Game) doctorActs(ctx context.Context, doctors []Player) error {
	if err := g.announce(ctx, "Doctor", "Doctor, open your eyes.", "I am awake"); err != nil {
		return err
	}
	saved, err := g.choose(ctx, Choice{
		Title:      "Doctor",
		Prompt:     "Whom do you save tonight? You may choose yourself.",
		Candidates: candidates(g.living()),
	})
	if err != nil {
		return err
	}

	g.intent.Saved = saved
	g.log.Printf("night %d: doctor %s saves %s", g.night, doctors[0].Name, g.players[saved].Name)
	return nil
}
