package gameserver

import (
	_ "embed"
	"errors"
	"strconv"
	"strings"

	"github.com/jejutic/werewolf/pkg/game"
)

//go:embed startText.txt
var startText string

func validName(name string) bool {
	return !strings.Contains(name, "\n") && strings.TrimSpace(name) != ""
}

// parseNames reads either a number of players or their names, separated
// by commas or spaces. Numbers are clamped to the supported range
func parseNames(args string) ([]string, error) {
	args = strings.TrimSpace(args)
	if args == "" {
		return nil, errors.New("tell me how many players there are or list their names")
	}

	if n, err := strconv.Atoi(args); err == nil {
		return make([]string, game.ClampPlayerCount(n)), nil
	}

	var names []string
	if strings.Contains(args, ",") {
		names = strings.Split(args, ",")
	} else {
		names = strings.Fields(args)
	}
	for i, name := range names {
		names[i] = strings.TrimSpace(name)
	}
	if n := len(names); n < game.MinPlayers || n > game.MaxPlayers {
		return nil, errors.New("a game needs from " + strconv.Itoa(game.MinPlayers) +
			" to " + strconv.Itoa(game.MaxPlayers) + " players, got " + strconv.Itoa(n))
	}
	return names, nil
}

func describeNames(names []string) string {
	list := make([]string, len(names))
	for i, name := range names {
		if name == "" {
			name = game.DefaultName(i)
		}
		list[i] = name
	}
	return strings.Join(list, ", ")
}

func handleCommand[T any](ps partyServer[T], msg UserMessage) {
	words := strings.Fields(msg.Text)
	if len(words) == 0 {
		return
	}
	command, _, _ := strings.Cut(strings.TrimPrefix(words[0], "/"), "@") // /new@botname in groups
	args := strings.TrimSpace(strings.TrimPrefix(msg.Text, words[0]))

	switch command {
	case "start", "help":
		ps.SendMessage(newMessage(msg.Chat, startText, false))

	case "new":
		names, err := parseNames(args)
		if err != nil {
			ps.SendMessage(newMessage(msg.Chat, err.Error()+"\n\nExample: /new 6 or /new Ann, Bob, Cid, Dan", false))
			return
		}
		ps.SendMessage(newMessage(msg.Chat, "New game for "+describeNames(names), true))
		ps.openTable(msg.Chat, names)

	case "restart":
		t := ps.tableOf(msg.Chat)
		if t == nil {
			ps.SendMessage(newMessage(msg.Chat, "There is nothing to restart, send /new to start a game", false))
			return
		}
		ps.SendMessage(newMessage(msg.Chat, "Restarting with "+describeNames(t.names), true))
		ps.openTable(msg.Chat, t.names)

	case "stop":
		if !ps.closeTable(msg.Chat) {
			ps.SendMessage(newMessage(msg.Chat, "No game is running", true))
		}

	case "roster":
		if t := ps.tableOf(msg.Chat); t == nil || !t.shell.resendRoster() {
			ps.SendMessage(newMessage(msg.Chat, "No game is running", false))
		}

	case "save":
		if len(words) < 2 {
			ps.SendMessage(newMessage(msg.Chat, "Name the preset: /save friday Ann, Bob, Cid", false))
			return
		}
		preset := words[1]
		rest := strings.TrimSpace(strings.TrimPrefix(args, preset))
		var names []string
		if rest == "" {
			t := ps.tableOf(msg.Chat)
			if t == nil {
				ps.SendMessage(newMessage(msg.Chat, "List the players or save it while a game is on", false))
				return
			}
			names = t.names
		} else {
			var err error
			if names, err = parseNames(rest); err != nil {
				ps.SendMessage(newMessage(msg.Chat, err.Error(), false))
				return
			}
		}
		for _, name := range names {
			if name != "" && !validName(name) {
				ps.SendMessage(newMessage(msg.Chat, "Invalid name: "+name, false))
				return
			}
		}

		if err := ps.presets.savePreset(msg.Chat, preset, names); err != nil {
			ps.log.Printf("chat %d: unable to save preset %s: %v", msg.Chat, preset, err)
			ps.SendMessage(newMessage(msg.Chat, "Unable to save the preset", false))
			return
		}
		ps.SendMessage(newMessage(msg.Chat, "Saved "+preset+": "+describeNames(names)+"\n\nSend /preset "+preset+" to play", false))

	case "preset":
		if len(words) < 2 {
			ps.SendMessage(newMessage(msg.Chat, "Which preset? Send /presets to see them", false))
			return
		}
		names, err := ps.presets.loadPreset(msg.Chat, words[1])
		if errors.Is(err, errUnknownPreset) {
			ps.SendMessage(newMessage(msg.Chat, "There is no preset "+words[1], false))
			return
		} else if err != nil {
			ps.log.Printf("chat %d: unable to load preset %s: %v", msg.Chat, words[1], err)
			ps.SendMessage(newMessage(msg.Chat, "Unable to load the preset", false))
			return
		}
		ps.SendMessage(newMessage(msg.Chat, "New game for "+describeNames(names), true))
		ps.openTable(msg.Chat, names)

	case "presets":
		presets, err := ps.presets.listPresets(msg.Chat)
		if err != nil {
			ps.log.Printf("chat %d: unable to list presets: %v", msg.Chat, err)
			ps.SendMessage(newMessage(msg.Chat, "Unable to list the presets", false))
			return
		}
		if len(presets) == 0 {
			ps.SendMessage(newMessage(msg.Chat, "No presets yet, save one with /save", false))
			return
		}
		ps.SendMessage(newMessage(msg.Chat, "Presets:\n\n"+strings.Join(presets, "\n"), false))

	default:
		ps.SendMessage(newMessage(msg.Chat, "Unknown command: "+words[0], false))
	}
}
