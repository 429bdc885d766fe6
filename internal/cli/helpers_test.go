package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smaamdev/esekolah/internal/domain"
	"github.com/smaamdev/esekolah/internal/notify"
	"github.com/smaamdev/esekolah/internal/state"
	"github.com/smaamdev/esekolah/internal/store"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	dir := t.TempDir()
	kv, err := store.Open(filepath.Join(dir, "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })

	st := state.New(kv, store.NewSessionStore(dir), notify.New())
	require.NoError(t, st.Load())

	return &App{
		State:    st,
		Store:    kv,
		Registry: store.DefaultRegistry(),
	}
}

func TestRequireLogin(t *testing.T) {
	app := newTestApp(t)

	_, err := requireLogin(app)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log masuk")

	require.NoError(t, app.State.Login("cikgu", domain.RoleAdmin))
	id, err := requireLogin(app)
	require.NoError(t, err)
	assert.Equal(t, "cikgu", id.Username)
}

func TestRequireAdminSistem(t *testing.T) {
	app := newTestApp(t)

	require.NoError(t, app.State.Login("cikgu", domain.RoleAdmin))
	_, err := requireAdminSistem(app)
	assert.Error(t, err)

	require.NoError(t, app.State.Login("pengetua", domain.RoleAdminSistem))
	id, err := requireAdminSistem(app)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdminSistem, id.Role)
}

func TestParseRecordID(t *testing.T) {
	id, err := parseRecordID("1762000000000")
	require.NoError(t, err)
	assert.Equal(t, int64(1762000000000), id)

	_, err = parseRecordID("abc")
	assert.Error(t, err)
}

func TestLoadCollection_SeedWhenAbsent(t *testing.T) {
	app := newTestApp(t)

	rows, err := loadCollection(app.Store, store.KeyJadualRelief, domain.SeedReliefRows())
	require.NoError(t, err)
	assert.Equal(t, domain.SeedReliefRows(), rows)
}

func TestLoadCollection_StoredValueWins(t *testing.T) {
	app := newTestApp(t)

	want := []domain.ReliefRow{{ID: 9, Time: "7:30", Class: "1A"}}
	require.NoError(t, saveCollection(app.Store, store.KeyJadualRelief, want))

	rows, err := loadCollection(app.Store, store.KeyJadualRelief, domain.SeedReliefRows())
	require.NoError(t, err)
	assert.Equal(t, want, rows)
}

func TestSlotKey(t *testing.T) {
	assert.Equal(t, "1 Amanah|Isnin|8:00", slotKey("1 Amanah", "Isnin", "8:00"))
}

func TestLoadSlots_EmptyByDefault(t *testing.T) {
	app := newTestApp(t)
	slots, err := loadSlots(app.Store)
	require.NoError(t, err)
	assert.Empty(t, slots)
	assert.NotNil(t, slots)
}
