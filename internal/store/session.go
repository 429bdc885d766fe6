package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/smaamdev/esekolah/internal/domain"
)

// SessionStore keeps the logged-in identity in a small file beside the
// database. It lives outside the kv namespace so the sync sweep can never
// pick it up, and logout destroys it entirely.
type SessionStore struct {
	path string
}

// NewSessionStore returns a session store rooted at dir.
func NewSessionStore(dir string) *SessionStore {
	return &SessionStore{path: filepath.Join(dir, "session.json")}
}

// Save persists the identity. The file is user-readable only.
func (s *SessionStore) Save(id domain.Identity) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating session directory: %w", err)
	}
	data, err := json.Marshal(id)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing session: %w", err)
	}
	return nil
}

// Load returns the stored identity, or nil when nobody is logged in.
// A corrupt session file is treated as logged out.
func (s *SessionStore) Load() (*domain.Identity, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading session: %w", err)
	}
	var id domain.Identity
	if err := json.Unmarshal(data, &id); err != nil {
		return nil, nil
	}
	return &id, nil
}

// Clear removes the session file. Clearing an absent session is not an
// error.
func (s *SessionStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}
