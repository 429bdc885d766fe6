package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_SetAndGetJSON(t *testing.T) {
	s := newTestStore(t)

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	require.NoError(t, s.Set(Prefix+"thing", payload{Name: "Ali", Count: 3}))

	var got payload
	ok, err := s.GetJSON(Prefix+"thing", &got)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Ali", got.Name)
	assert.Equal(t, 3, got.Count)
}

func TestStore_GetJSON_MissingKey(t *testing.T) {
	s := newTestStore(t)

	got := map[string]string{"keep": "me"}
	ok, err := s.GetJSON(Prefix+"absent", &got)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "me", got["keep"])
}

func TestStore_GetJSON_CorruptValueReportedAbsent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.SetRaw(Prefix+"bad", "{not json"))

	var got map[string]string
	ok, err := s.GetJSON(Prefix+"bad", &got)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestStore_SetRaw_Verbatim(t *testing.T) {
	s := newTestStore(t)

	// Whitespace and key order must survive exactly.
	raw := `[{"id": 1,  "name":"x"}]`
	require.NoError(t, s.SetRaw(Prefix+"raw", raw))

	got, ok, err := s.Get(Prefix + "raw")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, raw, got)
}

func TestStore_SetOverwrites(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Set(Prefix+"k", "one"))
	require.NoError(t, s.Set(Prefix+"k", "two"))

	var got string
	ok, err := s.GetJSON(Prefix+"k", &got)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "two", got)
}

func TestStore_Delete(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Set(Prefix+"k", "v"))
	require.NoError(t, s.Delete(Prefix+"k"))

	_, ok, err := s.Get(Prefix + "k")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting again is not an error.
	require.NoError(t, s.Delete(Prefix+"k"))
}

func TestStore_Scan_PrefixAndExclusions(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Set(KeyConfig, map[string]string{"a": "b"}))
	require.NoError(t, s.Set(Prefix+"jadual_relief", []int{1, 2}))
	require.NoError(t, s.Set(Prefix+"takwim_examWeeks", []int{3}))
	require.NoError(t, s.Set("other_key", "outside"))

	got, err := s.Scan(Prefix, CoreKeys())
	require.NoError(t, err)

	assert.Len(t, got, 2)
	assert.Contains(t, got, Prefix+"jadual_relief")
	assert.Contains(t, got, Prefix+"takwim_examWeeks")
	assert.NotContains(t, got, KeyConfig)
	assert.NotContains(t, got, "other_key")
}

func TestStore_Scan_WrapsNonJSONValues(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.SetRaw(Prefix+"legacy", "plain text"))

	got, err := s.Scan(Prefix, nil)
	require.NoError(t, err)
	require.Contains(t, got, Prefix+"legacy")
	assert.Equal(t, `"plain text"`, string(got[Prefix+"legacy"]))
}

func TestStore_Scan_PrefixUnderscoreIsLiteral(t *testing.T) {
	s := newTestStore(t)
	// "smaam_" must not match "smaamX..." via the SQL wildcard _.
	require.NoError(t, s.Set("smaamXjadual", "v"))
	require.NoError(t, s.Set(Prefix+"jadual_slots", "v"))

	got, err := s.Scan(Prefix, nil)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Contains(t, got, Prefix+"jadual_slots")
}
