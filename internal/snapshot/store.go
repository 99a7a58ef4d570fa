// Package snapshot persists the farm aggregate as a single versioned JSON
// blob in a SQLite key/value table.
package snapshot

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/appengine-ltd/farm-twin/internal/farm"
)

// stateKey embeds the schema version. Bump the suffix whenever any
// persisted field changes shape; snapshots under older keys are ignored
// rather than migrated.
const stateKey = "farm-twin-state-v3"

// Store wraps a SQLite connection for snapshot storage.
type Store struct {
	conn *sqlx.DB
}

// Open opens or creates the database at path.
func Open(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS farm_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// Save writes the aggregate under the fixed versioned key (full replace).
func (s *Store) Save(snap farm.Snapshot) error {
	blob, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	_, err = s.conn.Exec(
		`INSERT INTO farm_meta (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		stateKey, string(blob),
	)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Load reads the aggregate back. The second return is false when no
// snapshot exists under the current schema version.
func (s *Store) Load() (farm.Snapshot, bool, error) {
	var blob string
	err := s.conn.Get(&blob, `SELECT value FROM farm_meta WHERE key = ?`, stateKey)
	if errors.Is(err, sql.ErrNoRows) {
		return farm.Snapshot{}, false, nil
	}
	if err != nil {
		return farm.Snapshot{}, false, fmt.Errorf("load snapshot: %w", err)
	}

	var snap farm.Snapshot
	if err := json.Unmarshal([]byte(blob), &snap); err != nil {
		return farm.Snapshot{}, false, fmt.Errorf("decode snapshot: %w", err)
	}
	return snap, true, nil
}
