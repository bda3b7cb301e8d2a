package gameserver

import (
	"log"
	"sync"

	"github.com/jejutic/werewolf/pkg/game"
)

type UserMessage struct {
	Chat    int64
	Text    string
	Command bool
}

type ServerMessage struct {
	Chat    int64
	Text    string
	Options []string // nil keeps the keyboard as it is, empty removes it
}

func newMessage(chat int64, text string, removeOptions bool) ServerMessage {
	msg := ServerMessage{
		Chat: chat,
		Text: text,
	}
	if removeOptions {
		msg.Options = make([]string, 0)
	}
	return msg
}

type Server[T any] interface {
	GetUpdatesChan() <-chan T
	UpdateToMessage(T) *UserMessage // didn't want to make an extra goroutine for casting of updates from chan
	SendMessage(ServerMessage) int  // id of the sent message, 0 if it couldn't be sent
	DeleteMessage(chat int64, id int)
}

// partyServer hosts one pass-the-device table per chat
type partyServer[T any] struct {
	Server[T]
	presets  presetStorage
	narrator game.Narrator
	tables   map[int64]*table[T]
	mu       *sync.Mutex
	log      *log.Logger
}

type Option func(*options)

type options struct {
	narrator game.Narrator
	logger   *log.Logger
}

// WithNarrator makes every table of the server tell stories about deaths
func WithNarrator(n game.Narrator) Option {
	return func(o *options) {
		o.narrator = n
	}
}

func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func NewPartyServer[T any](s Server[T], presets presetStorage, opts ...Option) partyServer[T] {
	o := options{logger: log.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	return partyServer[T]{
		Server:   s,
		presets:  presets,
		narrator: o.narrator,
		tables:   make(map[int64]*table[T]),
		mu:       &sync.Mutex{},
		log:      o.logger,
	}
}

func (ps partyServer[T]) tableOf(chat int64) *table[T] {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	return ps.tables[chat]
}

func Run[T any](ps partyServer[T]) {
	for update := range ps.GetUpdatesChan() {
		msg := ps.UpdateToMessage(update)
		if msg == nil {
			continue
		}

		if msg.Command {
			handleCommand(ps, *msg)
			continue
		}

		if t := ps.tableOf(msg.Chat); t != nil && t.running() {
			if !t.shell.deliver(msg.Text) {
				ps.log.Printf("chat %d: reply %q dropped, the table is busy", msg.Chat, msg.Text)
			}
		} else {
			ps.SendMessage(newMessage(msg.Chat, "No game is running. Send /new to start one or /help to learn how.", true))
		}
	}

	ps.mu.Lock()
	defer ps.mu.Unlock()
	for chat, t := range ps.tables {
		t.stop()
		delete(ps.tables, chat)
	}
}
