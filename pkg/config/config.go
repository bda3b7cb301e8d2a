package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/jejutic/werewolf/pkg/narrator"
	"github.com/joho/godotenv"
)

// Config of the bot, read from the environment
type Config struct {
	TelegramToken string `env:"TELEGRAM_APITOKEN"`
	TelegramDebug bool   `env:"TELEGRAM_DEBUG"`
	// console mode plays in the terminal, it's also used when there is no token
	Console bool `env:"WEREWOLF_CONSOLE"`

	DBDriver string `env:"DB_DRIVER" envDefault:"sqlite3"` // sqlite3 or pgx
	DBURL    string `env:"DB_URL" envDefault:"werewolf.db"`

	Narrator narrator.Config `envPrefix:"NARRATOR_"`
}

// Load reads files (.env by default) into the environment without
// overriding what is already set, then parses the environment
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}
	return Parse()
}

// Parse reads the config from the process environment only
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// ConsoleMode reports whether the game should be played in the terminal
func (c Config) ConsoleMode() bool {
	return c.Console || c.TelegramToken == ""
}
