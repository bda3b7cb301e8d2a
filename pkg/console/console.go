package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/jejutic/werewolf/pkg/gameserver"
)

// Chat is the only chat of the terminal
const Chat int64 = 1

// scrolls a secret out of sight once it's acknowledged
var hider = strings.Repeat("\n", 60)

// Console is a gameserver transport for one terminal, the device
// passed around the table is the computer itself
type Console struct {
	in  io.Reader
	out io.Writer

	mu     sync.Mutex
	lastID int
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{in: in, out: out}
}

func (c *Console) GetUpdatesChan() <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()
	return lines
}

// UpdateToMessage keeps blank lines, Enter acknowledges announcements
func (c *Console) UpdateToMessage(line string) *gameserver.UserMessage {
	line = strings.TrimSpace(line)
	return &gameserver.UserMessage{
		Chat:    Chat,
		Text:    line,
		Command: strings.HasPrefix(line, "/"),
	}
}

func (c *Console) SendMessage(msg gameserver.ServerMessage) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	var b strings.Builder
	b.WriteString("\n" + msg.Text + "\n")
	switch len(msg.Options) {
	case 0:
	case 1:
		b.WriteString("[press Enter: " + msg.Options[0] + "]\n")
	default:
		for _, option := range msg.Options {
			b.WriteString("  " + option + "\n")
		}
		b.WriteString("> ")
	}
	fmt.Fprint(c.out, b.String())

	c.lastID++
	return c.lastID
}

// DeleteMessage can't take printed text back, it scrolls it away instead
func (c *Console) DeleteMessage(chat int64, id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprint(c.out, hider)
}
