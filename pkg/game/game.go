package game

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
)

// Narrator tells a short story about a death, it is optional for the game
type Narrator interface {
	Narrate(ctx context.Context, d Death) (string, error)
}

// Option configures a Game
type Option func(*Game)

// WithLogger replaces the default logger of the game
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.log = l
	}
}

// WithNarrator adds stories to death announcements
func WithNarrator(n Narrator) Option {
	return func(g *Game) {
		g.narrator = n
	}
}

// Game represents one session of pass-the-device werewolf. All the state of
// the session lives here, it is driven sequentially by a single goroutine
type Game struct {
	id       string
	shell    Shell
	narrator Narrator
	log      *log.Logger

	players []Player
	phase   Phase
	reveal  *Reveal
	night   int  // number of the current or the last night
	day     int  // number of the current or the last day, 0 is the day roles were revealed
	voteDue bool // night is resolved, day vote hasn't happened yet
	intent  NightIntent
	winner  Side
}

// NewGame returns a game in the setup phase with an empty roster
func NewGame(shell Shell, opts ...Option) *Game {
	id := uuid.NewString()
	g := &Game{
		id:     id,
		shell:  shell,
		log:    log.New(log.Writer(), "[game "+id[:8]+"] ", log.LstdFlags|log.Lmsgprefix),
		intent: emptyIntent(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID identifies the session
func (g *Game) ID() string { return g.id }

// Phase returns the current phase of the game
func (g *Game) Phase() Phase { return g.phase }

// Night returns the number of the current or the last night
func (g *Game) Night() int { return g.night }

// Day returns the number of the current or the last day
func (g *Game) Day() int { return g.day }

// Winner returns the side which has won, zero if the game goes on
func (g *Game) Winner() Side { return g.winner }

// Intent returns the pending night intent
func (g *Game) Intent() NightIntent { return g.intent }

// Players returns a copy of the roster, dead players included
func (g *Game) Players() []Player {
	return append([]Player(nil), g.players...)
}

// Setup creates the roster and deals shuffled role-cards by the ratio table.
// Blank names are replaced with DefaultName
func (g *Game) Setup(names []string) (*Reveal, error) {
	roles, err := AssignRoles(len(names))
	if err != nil {
		return nil, err
	}
	return g.setup(names, roles)
}

// SetupWithRoles is Setup with role-cards chosen by the caller, i-th card goes to i-th player
func (g *Game) SetupWithRoles(names []string, roles []Role) (*Reveal, error) {
	if err := validPlayerCount(len(names)); err != nil {
		return nil, err
	}
	if len(roles) != len(names) {
		return nil, fmt.Errorf("%w: %d role-cards for %d players", ErrInvalidRoles, len(roles), len(names))
	}
	for _, role := range roles {
		if !role.valid() {
			return nil, fmt.Errorf("%w: unknown role %v", ErrInvalidRoles, role)
		}
	}
	return g.setup(names, append([]Role(nil), roles...))
}

func (g *Game) setup(names []string, roles []Role) (*Reveal, error) {
	if g.phase != PhaseSetup {
		return nil, fmt.Errorf("%w: setup during %s", ErrWrongPhase, g.phase)
	}

	g.players = newPlayers(names, roles)
	g.phase = PhaseReveal
	g.reveal = &Reveal{game: g}
	g.log.Printf("dealt %d role-cards", len(g.players))
	return g.reveal, nil
}

// Restart brings the game back to setup with an empty roster
func (g *Game) Restart() {
	g.players = nil
	g.phase = PhaseSetup
	g.reveal = nil
	g.night, g.day = 0, 0
	g.voteDue = false
	g.intent.reset()
	g.winner = 0
	g.log.Println("restarted")
}

// Play sets the game up, reveals roles and runs it until somebody wins
func (g *Game) Play(ctx context.Context, names []string) (Side, error) {
	if _, err := g.Setup(names); err != nil {
		return 0, err
	}
	if err := g.PlayReveal(ctx); err != nil {
		return 0, err
	}
	return g.Run(ctx)
}

// Run alternates nights and days until the win evaluator reports a winner
func (g *Game) Run(ctx context.Context) (Side, error) {
	for g.phase != PhaseGameOver {
		var err error
		if g.voteDue {
			err = g.PlayDay(ctx)
		} else {
			err = g.PlayNight(ctx)
		}
		if err != nil {
			return 0, err
		}
	}
	return g.winner, nil
}

func (g *Game) announce(ctx context.Context, title, body, label string) error {
	return g.shell.Announce(ctx, Announcement{
		Title:    title,
		Body:     body,
		Continue: label,
	})
}

func (g *Game) renderRoster() {
	g.shell.RenderRoster(g.Players())
}

// choose presents c until the answer is one of its living candidates
func (g *Game) choose(ctx context.Context, c Choice) (PlayerID, error) {
	for {
		if err := ctx.Err(); err != nil {
			return NoPlayer, err
		}

		id, err := g.shell.DisplayChoice(ctx, c)
		if err != nil {
			return NoPlayer, err
		}
		if err := g.checkSelection(c, id); err != nil {
			g.log.Printf("%s: %v, asking again", c.Title, err)
			c.Notice = "That choice isn't available, pick again."
			continue
		}
		return id, nil
	}
}

func (g *Game) checkSelection(c Choice, id PlayerID) error {
	player, ok := g.player(id)
	switch {
	case !ok:
		return fmt.Errorf("%w: no player %d", ErrInvalidSelection, id)
	case !player.Alive:
		return fmt.Errorf("%w: %s is dead", ErrInvalidSelection, player.Name)
	case !c.has(id):
		return fmt.Errorf("%w: %s can't be chosen", ErrInvalidSelection, player.Name)
	}
	return nil
}

// checkForEnd runs the win evaluator, finishes the game and announces
// the winners if there are any
func (g *Game) checkForEnd(ctx context.Context) (bool, error) {
	side := Evaluate(g.players)
	if side == 0 {
		return false, nil
	}

	g.phase = PhaseGameOver
	g.winner = side
	g.voteDue = false
	g.intent.reset()
	g.log.Printf("%s won on night %d, day %d", side, g.night, g.day)

	var b strings.Builder
	b.WriteString("The " + side.String() + " win!\n")
	for _, player := range g.players {
		if player.Role.Side() == side {
			b.WriteString("\n" + player.Name + " — " + player.Role.String())
			if !player.Alive {
				b.WriteString(" (dead)")
			}
		}
	}
	g.renderRoster()
	return true, g.announce(ctx, "Game over", b.String(), "Finish")
}

func (g *Game) expectPhase(phase Phase) error {
	switch g.phase {
	case PhaseGameOver:
		return ErrGameOver
	case phase:
		return nil
	default:
		return fmt.Errorf("%w: expected %s, game is in %s", ErrWrongPhase, phase, g.phase)
	}
}
