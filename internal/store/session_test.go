package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smaamdev/esekolah/internal/domain"
)

func TestSessionStore_SaveLoadClear(t *testing.T) {
	s := NewSessionStore(t.TempDir())

	id, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, id)

	want := domain.Identity{Username: "cikgu", Role: domain.RoleAdmin, Name: "Admin Bertugas"}
	require.NoError(t, s.Save(want))

	id, err = s.Load()
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, want, *id)

	require.NoError(t, s.Clear())
	id, err = s.Load()
	require.NoError(t, err)
	assert.Nil(t, id)

	// Clearing twice is fine.
	require.NoError(t, s.Clear())
}

func TestSessionStore_CorruptFileTreatedAsLoggedOut(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "session.json"), []byte("{broken"), 0o600))

	s := NewSessionStore(dir)
	id, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, id)
}

func TestSessionStore_FilePermissions(t *testing.T) {
	dir := t.TempDir()
	s := NewSessionStore(dir)
	require.NoError(t, s.Save(domain.Identity{Username: "x", Role: domain.RoleAdminSistem, Name: "Admin Sistem"}))

	info, err := os.Stat(filepath.Join(dir, "session.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
