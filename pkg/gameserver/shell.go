package gameserver

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/jejutic/werewolf/pkg/game"
)

const repliesBuffer = 8

// chatShell shows the game in a chat where the device is passed around,
// every reply of the chat answers the current question
type chatShell[T any] struct {
	server  Server[T]
	chat    int64
	replies chan string

	mu         sync.Mutex
	roster     []game.Player
	rosterShot int // id of the last roster message
}

func newChatShell[T any](s Server[T], chat int64) *chatShell[T] {
	return &chatShell[T]{
		server:  s,
		chat:    chat,
		replies: make(chan string, repliesBuffer),
	}
}

// deliver passes a reply of the chat to the game, false if it can't take more
func (cs *chatShell[T]) deliver(text string) bool {
	select {
	case cs.replies <- text:
		return true
	default:
		return false
	}
}

func (cs *chatShell[T]) drain() {
	for {
		select {
		case <-cs.replies:
		default:
			return
		}
	}
}

func (cs *chatShell[T]) await(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case text := <-cs.replies:
		return text, nil
	}
}

func (cs *chatShell[T]) DisplayChoice(ctx context.Context, c game.Choice) (game.PlayerID, error) {
	// replies sent before the question was asked don't answer it
	cs.drain()
	cs.server.SendMessage(ServerMessage{
		Chat:    cs.chat,
		Text:    choiceText(c),
		Options: optionLabels(c.Candidates),
	})

	reply, err := cs.await(ctx)
	if err != nil {
		return game.NoPlayer, err
	}
	return parseOption(reply, c.Candidates), nil
}

func (cs *chatShell[T]) Announce(ctx context.Context, a game.Announcement) error {
	cs.drain()
	id := cs.server.SendMessage(ServerMessage{
		Chat:    cs.chat,
		Text:    announcementText(a),
		Options: []string{a.Continue},
	})

	_, err := cs.await(ctx)
	if a.Secret && id != 0 {
		cs.server.DeleteMessage(cs.chat, id)
	}
	return err
}

// RenderRoster replaces the previous roster message with a new one
func (cs *chatShell[T]) RenderRoster(players []game.Player) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cs.roster = players
	if cs.rosterShot != 0 {
		cs.server.DeleteMessage(cs.chat, cs.rosterShot)
	}
	cs.rosterShot = cs.server.SendMessage(newMessage(cs.chat, rosterText(players), false))
}

// resendRoster shows the last rendered roster again, false if there was none
func (cs *chatShell[T]) resendRoster() bool {
	cs.mu.Lock()
	players := cs.roster
	cs.mu.Unlock()

	if players == nil {
		return false
	}
	cs.RenderRoster(players)
	return true
}

func optionLabels(candidates []game.Candidate) []string {
	labels := make([]string, len(candidates))
	for i, candidate := range candidates {
		labels[i] = strconv.Itoa(i+1) + ". " + candidate.Label
	}
	return labels
}

// parseOption accepts a keyboard label, the bare name or its number.
// Names win over numbers. Anything else gives game.NoPlayer and the game
// asks again
func parseOption(reply string, candidates []game.Candidate) game.PlayerID {
	reply = strings.TrimSpace(reply)

	for _, candidate := range candidates {
		if strings.EqualFold(candidate.Label, reply) {
			return candidate.ID
		}
	}

	number, _, _ := strings.Cut(reply, ".")
	if i, err := strconv.Atoi(strings.TrimSpace(number)); err == nil {
		if i < 1 || i > len(candidates) {
			return game.NoPlayer
		}
		return candidates[i-1].ID
	}
	return game.NoPlayer
}
