package game

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

// Tally is the result of a day vote
type Tally struct {
	Counts  map[PlayerID]int // votes per target
	Max     int
	Leaders []PlayerID // targets with Max votes, ascending
}

// CountVotes tallies votes given as voter to target
func CountVotes(votes map[PlayerID]PlayerID) Tally {
	t := Tally{Counts: make(map[PlayerID]int)}
	for _, target := range votes {
		t.Counts[target]++
	}

	for target, count := range t.Counts {
		switch {
		case count > t.Max:
			t.Max = count
			t.Leaders = []PlayerID{target}
		case count == t.Max:
			t.Leaders = append(t.Leaders, target)
		}
	}
	slices.Sort(t.Leaders)
	return t
}

// Lynched returns the only player with most votes, false on a tie
func (t Tally) Lynched() (PlayerID, bool) {
	if len(t.Leaders) != 1 {
		return NoPlayer, false
	}
	return t.Leaders[0], true
}

// PlayDay passes the device to every living player in roster order for a vote,
// then lynches the plurality target or announces a tie
func (g *Game) PlayDay(ctx context.Context) error {
	if err := g.expectPhase(PhaseDay); err != nil {
		return err
	}
	if !g.voteDue {
		return fmt.Errorf("%w: day %d has already voted", ErrWrongPhase, g.day)
	}

	g.log.Printf("day %d begins, alive: %s", g.day, names(g.living()))
	g.renderRoster()
	voters := g.living()

	if err := g.announce(ctx,
		fmt.Sprintf("Day %d", g.day),
		"Discuss what happened. Then pass the device around, every living player votes once.",
		"Start voting",
	); err != nil {
		return err
	}

	votes := make(map[PlayerID]PlayerID, len(voters))
	var summary strings.Builder
	for _, voter := range voters {
		target, err := g.choose(ctx, Choice{
			Title:      "Vote",
			Prompt:     voter.Name + ", whom do you vote to lynch?",
			Candidates: candidates(voters),
		})
		if err != nil {
			return err
		}
		votes[voter.ID] = target
		summary.WriteString(voter.Name + " → " + g.players[target].Name + "\n")
	}

	tally := CountVotes(votes)
	g.voteDue = false
	g.log.Printf("day %d: votes %v, leaders %v", g.day, tally.Counts, tally.Leaders)

	var err error
	if lynched, ok := tally.Lynched(); ok {
		if err = g.announce(ctx, "Votes", summary.String(), "Continue"); err == nil {
			err = g.kill(ctx, lynched, CauseLynch)
		}
	} else {
		err = g.announce(ctx, "Tie",
			summary.String()+"\nThe vote is tied, nobody is lynched today.",
			"Continue")
	}
	if err != nil {
		return err
	}

	_, err = g.checkForEnd(ctx)
	return err
}
