package gameserver

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

var errUnknownPreset = errors.New("no such preset")

// presetStorage keeps named lists of players per chat, so a company
// doesn't have to type its names every evening
type presetStorage interface {
	savePreset(chat int64, name string, players []string) error // overwrites the preset with the same name
	loadPreset(chat int64, name string) ([]string, error)       // errUnknownPreset if it doesn't exist
	listPresets(chat int64) ([]string, error)
}

type presetsDb struct {
	db *sqlx.DB
}

type preset struct {
	Chat    int64  `db:"chat_id"`
	Name    string `db:"name"`
	Players string `db:"players"`
}

const createPresetTable = `
CREATE TABLE IF NOT EXISTS preset (
	chat_id BIGINT NOT NULL,
	name TEXT NOT NULL,
	players TEXT NOT NULL,
	PRIMARY KEY (chat_id, name)
)
`

// NewPresetsDb creates the preset table if it's missing. Queries are
// rebound for the driver, so both sqlite3 and pgx work
func NewPresetsDb(db *sqlx.DB) (*presetsDb, error) {
	if _, err := db.Exec(createPresetTable); err != nil {
		return nil, fmt.Errorf("unable to create preset table: %w", err)
	}
	return &presetsDb{db}, nil
}

const savePresetQuery = `
INSERT INTO preset (chat_id, name, players) VALUES (?, ?, ?)
ON CONFLICT (chat_id, name) DO UPDATE SET players = excluded.players
`

func (p *presetsDb) savePreset(chat int64, name string, players []string) error {
	_, err := p.db.Exec(p.db.Rebind(savePresetQuery), chat, name, strings.Join(players, "\n"))
	return err
}

const loadPresetQuery = `
SELECT chat_id, name, players
FROM preset
WHERE chat_id = ? AND name = ?
`

func (p *presetsDb) loadPreset(chat int64, name string) ([]string, error) {
	var found preset
	err := p.db.Get(&found, p.db.Rebind(loadPresetQuery), chat, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", errUnknownPreset, name)
	} else if err != nil {
		return nil, err
	}
	return strings.Split(found.Players, "\n"), nil
}

const listPresetsQuery = `
SELECT name
FROM preset
WHERE chat_id = ?
ORDER BY name
`

func (p *presetsDb) listPresets(chat int64) ([]string, error) {
	names := make([]string, 0)
	if err := p.db.Select(&names, p.db.Rebind(listPresetsQuery), chat); err != nil {
		return nil, err
	}
	return names, nil
}
