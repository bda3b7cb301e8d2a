package gameserver

import (
	"context"
	"errors"
	"fmt"
	"log"
	"runtime/debug"

	"github.com/jejutic/werewolf/pkg/game"
)

// table is a game played in one chat. The game runs in its own goroutine,
// replies of the chat reach it through the shell
type table[T any] struct {
	chat   int64
	names  []string
	game   *game.Game
	shell  *chatShell[T]
	cancel context.CancelFunc
	done   chan struct{}
}

func (t *table[T]) running() bool {
	select {
	case <-t.done:
		return false
	default:
		return true
	}
}

func (t *table[T]) stop() {
	t.cancel()
}

// openTable replaces the table of the chat with a new game for names.
// The previous game of the chat is stopped and awaited first
func (ps partyServer[T]) openTable(chat int64, names []string) {
	ps.mu.Lock()
	prev := ps.tables[chat]
	delete(ps.tables, chat)
	ps.mu.Unlock()

	var (
		g     *game.Game
		shell *chatShell[T]
	)
	if prev != nil {
		prev.stop()
		<-prev.done
		g, shell = prev.game, prev.shell
		shell.drain()
		g.Restart()
	} else {
		shell = newChatShell(ps.Server, chat)
		opts := []game.Option{
			game.WithLogger(log.New(ps.log.Writer(), fmt.Sprintf("[chat %d] ", chat), log.LstdFlags|log.Lmsgprefix)),
		}
		if ps.narrator != nil {
			opts = append(opts, game.WithNarrator(ps.narrator))
		}
		g = game.NewGame(shell, opts...)
	}

	ctx, cancel := context.WithCancel(context.Background())
	t := &table[T]{
		chat:   chat,
		names:  names,
		game:   g,
		shell:  shell,
		cancel: cancel,
		done:   make(chan struct{}),
	}

	ps.mu.Lock()
	ps.tables[chat] = t
	ps.mu.Unlock()

	go ps.play(ctx, t)
}

// closeTable stops the game of the chat, false if there was none
func (ps partyServer[T]) closeTable(chat int64) bool {
	ps.mu.Lock()
	t := ps.tables[chat]
	delete(ps.tables, chat)
	ps.mu.Unlock()

	if t == nil {
		return false
	}
	t.stop()
	<-t.done
	return true
}

func (ps partyServer[T]) play(ctx context.Context, t *table[T]) {
	defer close(t.done)
	defer t.cancel()
	defer func() {
		if r := recover(); r != nil {
			ps.log.Printf("chat %d: panic: %v\nstacktrace from panic: \n%s", t.chat, r, debug.Stack())
			ps.SendMessage(newMessage(t.chat, "Something went wrong, the game is over. Send /restart to play again.", true))
		}
	}()

	ps.log.Printf("chat %d: game %s for %d players", t.chat, t.game.ID(), len(t.names))
	winner, err := t.game.Play(ctx, t.names)
	switch {
	case errors.Is(err, context.Canceled):
		ps.SendMessage(newMessage(t.chat, "The game is stopped.", true))
	case err != nil:
		ps.log.Printf("chat %d: %v", t.chat, err)
		ps.SendMessage(newMessage(t.chat, "Unable to play: "+err.Error(), true))
	default:
		ps.log.Printf("chat %d: %s won", t.chat, winner)
		ps.SendMessage(newMessage(t.chat,
			"Send /restart to play again with the same players or /new for another company.",
			true,
		))
	}
}
