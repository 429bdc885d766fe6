package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// Prefix is the shared namespace for every persisted key.
const Prefix = "smaam_"

// Keys for the explicitly tracked entities. Everything else under the
// prefix belongs to a module-owned collection.
const (
	KeyPermissions   = Prefix + "permissions"
	KeyConfig        = Prefix + "config"
	KeyTeachers      = Prefix + "teachers"
	KeySchoolProfile = Prefix + "school_profile"
	KeyAnnouncements = Prefix + "announcements"
	KeyPrograms      = Prefix + "programs"

	KeyJadualRelief        = Prefix + "jadual_relief"
	KeyJadualClassTeachers = Prefix + "jadual_classTeachers"
	KeyJadualSpeech        = Prefix + "jadual_speech"
	KeyJadualSlots         = Prefix + "jadual_slots"
	KeyTakwimSchoolWeeks   = Prefix + "takwim_schoolWeeks"
	KeyTakwimExamWeeks     = Prefix + "takwim_examWeeks"
)

// CoreKeys are the keys carried as explicit fields in the sync payload.
// They are always excluded from the ad hoc collection sweep so the same
// data is never encoded twice.
func CoreKeys() map[string]bool {
	return map[string]bool{
		KeyPermissions:   true,
		KeyConfig:        true,
		KeyTeachers:      true,
		KeySchoolProfile: true,
		KeyAnnouncements: true,
		KeyPrograms:      true,
	}
}

// Store is a key/value adapter over a local SQLite database. Every Set is
// a synchronous write-through; there is no batching or coalescing.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the key/value database at path.
// ":memory:" opens an in-memory database for tests.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating kv table: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the raw stored text for key. ok is false when the key is
// absent.
func (s *Store) Get(key string) (raw string, ok bool, err error) {
	err = s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading key %q: %w", key, err)
	}
	return raw, true, nil
}

// GetJSON unmarshals the value stored at key into dest. A missing key or a
// corrupt (non-JSON) value is reported as absent, leaving dest untouched,
// so one bad key never breaks an unrelated module's load.
func (s *Store) GetJSON(key string, dest any) (bool, error) {
	raw, ok, err := s.Get(key)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, nil
	}
	return true, nil
}

// Set marshals value to JSON and writes it through immediately.
func (s *Store) Set(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding key %q: %w", key, err)
	}
	return s.SetRaw(key, string(data))
}

// SetRaw writes raw text verbatim. Used by sync pull to restore module
// collections exactly as the remote sent them.
func (s *Store) SetRaw(key, raw string) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO kv (key, value) VALUES (?, ?)`, key, raw)
	if err != nil {
		return fmt.Errorf("writing key %q: %w", key, err)
	}
	return nil
}

// Delete removes a key. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("deleting key %q: %w", key, err)
	}
	return nil
}

// Scan returns every key under prefix, excluding the given set, with its
// value as raw JSON. A stored value that is not valid JSON is wrapped as a
// JSON string rather than dropped.
func (s *Store) Scan(prefix string, exclude map[string]bool) (map[string]json.RawMessage, error) {
	pattern := strings.ReplaceAll(strings.ReplaceAll(prefix, "%", `\%`), "_", `\_`) + "%"
	rows, err := s.db.Query(`SELECT key, value FROM kv WHERE key LIKE ? ESCAPE '\'`, pattern)
	if err != nil {
		return nil, fmt.Errorf("scanning prefix %q: %w", prefix, err)
	}
	defer rows.Close()

	out := make(map[string]json.RawMessage)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		if exclude[key] {
			continue
		}
		if json.Valid([]byte(value)) {
			out[key] = json.RawMessage(value)
			continue
		}
		quoted, err := json.Marshal(value)
		if err != nil {
			continue
		}
		out[key] = quoted
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating scan: %w", err)
	}
	return out, nil
}
