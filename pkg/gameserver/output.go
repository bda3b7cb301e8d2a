package gameserver

import (
	"strconv"
	"strings"

	"github.com/jejutic/werewolf/pkg/game"
)

const (
	// pushes a secret out of sight on the screen of the device
	hider = ".\n.\n.\n.\n.\n.\n.\n.\n.\n.\n.\n.\n.\n.\n.\n.\n.\n.\n.\n.\n.\n.\n.\n.\n.\n.\n.\n.\n.\n.\n.\n.\n.\n.\n.\n.\n.\n.\n.\n.\n.\n"
)

func choiceText(c game.Choice) string {
	text := ""
	if c.Notice != "" {
		text += c.Notice + "\n\n"
	}
	return text + c.Title + "\n\n" + c.Prompt
}

func announcementText(a game.Announcement) string {
	text := a.Title
	if a.Body != "" {
		text += "\n\n" + a.Body
	}
	if a.Secret {
		text = hider + text
	}
	return text
}

func rosterText(players []game.Player) string {
	var b strings.Builder
	b.WriteString("Players:\n")
	for i, player := range players {
		b.WriteString(strconv.Itoa(i+1) + ". " + player.Name)
		if !player.Alive {
			b.WriteString(" ✝ " + player.Role.String())
		}
		b.WriteString("\n")
	}
	return b.String()
}
