package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Parse_defaults(t *testing.T) {
	t.Setenv("TELEGRAM_APITOKEN", "")
	t.Setenv("DB_DRIVER", "")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "sqlite3", cfg.DBDriver)
	assert.Equal(t, "werewolf.db", cfg.DBURL)
	assert.True(t, cfg.ConsoleMode(), "no token means console")
	assert.Empty(t, cfg.Narrator.Provider)
	assert.Equal(t, "http://localhost:11434", cfg.Narrator.URL)
	assert.Equal(t, 20*time.Second, cfg.Narrator.Timeout)
	assert.Equal(t, 0.8, cfg.Narrator.Temperature)
}

func Test_Parse(t *testing.T) {
	t.Setenv("TELEGRAM_APITOKEN", "123:abc")
	t.Setenv("TELEGRAM_DEBUG", "true")
	t.Setenv("DB_DRIVER", "pgx")
	t.Setenv("DB_URL", "postgres://werewolf@localhost/werewolf")
	t.Setenv("NARRATOR_PROVIDER", "ollama")
	t.Setenv("NARRATOR_MODEL", "llama3")
	t.Setenv("NARRATOR_TIMEOUT", "5s")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "123:abc", cfg.TelegramToken)
	assert.True(t, cfg.TelegramDebug)
	assert.False(t, cfg.ConsoleMode())
	assert.Equal(t, "pgx", cfg.DBDriver)
	assert.Equal(t, "postgres://werewolf@localhost/werewolf", cfg.DBURL)
	assert.Equal(t, "ollama", cfg.Narrator.Provider)
	assert.Equal(t, "llama3", cfg.Narrator.Model)
	assert.Equal(t, 5*time.Second, cfg.Narrator.Timeout)

	t.Setenv("WEREWOLF_CONSOLE", "true")
	cfg, err = Parse()
	require.NoError(t, err)
	assert.True(t, cfg.ConsoleMode())
}

func Test_Parse_invalid(t *testing.T) {
	t.Setenv("TELEGRAM_DEBUG", "sometimes")
	_, err := Parse()
	assert.ErrorContains(t, err, "parse env")
}

func Test_Load(t *testing.T) {
	t.Setenv("TELEGRAM_APITOKEN", "from-process")

	file := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(file, []byte("TELEGRAM_APITOKEN=from-file\n"), 0o600))

	cfg, err := Load(file)
	require.NoError(t, err)
	assert.Equal(t, "from-process", cfg.TelegramToken, "process environment wins")

	_, err = Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}
