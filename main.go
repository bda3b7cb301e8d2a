package main

import (
	"log"
	"os"
	"unicode/utf16"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jejutic/werewolf/pkg/config"
	"github.com/jejutic/werewolf/pkg/console"
	"github.com/jejutic/werewolf/pkg/gameserver"
	"github.com/jejutic/werewolf/pkg/narrator"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

type tgBotServer struct {
	*tgbotapi.BotAPI
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Panic(err)
	}

	db, err := sqlx.Open(cfg.DBDriver, cfg.DBURL)
	if err != nil {
		log.Panic(err)
	}
	defer db.Close()
	presets, err := gameserver.NewPresetsDb(db)
	if err != nil {
		log.Panic(err)
	}

	var opts []gameserver.Option
	storyteller, err := narrator.New(cfg.Narrator)
	if err != nil {
		log.Println("Narrator is disabled: ", err)
	} else if storyteller != nil {
		log.Printf("Narrator: %s %s", cfg.Narrator.Provider, cfg.Narrator.Model)
		opts = append(opts, gameserver.WithNarrator(storyteller))
	}

	if cfg.ConsoleMode() {
		c := console.New(os.Stdin, os.Stdout)
		c.SendMessage(gameserver.ServerMessage{Chat: console.Chat, Text: "Werewolf. Send /help to learn how to play, /new 5 to start."})
		gameserver.Run[string](gameserver.NewPartyServer[string](c, presets, opts...))
		return
	}

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		log.Panic(err)
	}

	bot.Debug = cfg.TelegramDebug
	log.Printf("Authorized on account %s", bot.Self.UserName)

	s := tgBotServer{bot}
	gameserver.Run[tgbotapi.Update](gameserver.NewPartyServer[tgbotapi.Update](s, presets, opts...))
}

func (tbs tgBotServer) GetUpdatesChan() <-chan tgbotapi.Update {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	return tbs.BotAPI.GetUpdatesChan(u)
}

func (tbs tgBotServer) UpdateToMessage(update tgbotapi.Update) *gameserver.UserMessage {
	if update.Message == nil { // ignore non-Message updates
		return nil
	}

	text := update.Message.Text
	utfEncodedText := utf16.Encode([]rune(text))
	runeText := utf16.Decode(utfEncodedText)
	text = string(runeText)

	return &gameserver.UserMessage{
		Chat:    update.Message.Chat.ID,
		Text:    text,
		Command: update.Message.IsCommand(),
	}
}

func (tbs tgBotServer) SendMessage(msg gameserver.ServerMessage) int {
	msgConfig := tgbotapi.NewMessage(msg.Chat, msg.Text)

	if msg.Options != nil {
		if len(msg.Options) == 0 {
			msgConfig.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
		} else {
			var keyboard [][]tgbotapi.KeyboardButton
			for _, c := range msg.Options {
				keyboard = append(keyboard, tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(c)))
			}
			msgConfig.ReplyMarkup = tgbotapi.NewOneTimeReplyKeyboard(keyboard...)
		}
	}

	for i := 0; i < 2; i++ {
		if sent, err := tbs.Send(msgConfig); err == nil {
			return sent.MessageID
		} else {
			log.Println("Unable to send from ", i, " trials: ", err)
		}
	}
	return 0
}

func (tbs tgBotServer) DeleteMessage(chat int64, id int) {
	if _, err := tbs.Request(tgbotapi.NewDeleteMessage(chat, id)); err != nil {
		log.Println("Unable to delete message ", id, ": ", err)
	}
}
