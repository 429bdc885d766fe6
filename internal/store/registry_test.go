package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Register_RejectsUnprefixedKey(t *testing.T) {
	r := NewRegistry()
	err := r.Register("jadual_relief")
	assert.Error(t, err)
}

func TestRegistry_Register_RejectsCoreKey(t *testing.T) {
	r := NewRegistry()
	for key := range CoreKeys() {
		assert.Error(t, r.Register(key), key)
	}
}

func TestRegistry_Register_Deduplicates(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(KeyJadualRelief))
	require.NoError(t, r.Register(KeyJadualRelief))
	assert.Equal(t, []string{KeyJadualRelief}, r.Keys())
}

func TestRegistry_Collect_SkipsAbsentKeys(t *testing.T) {
	s := newTestStore(t)
	r := NewRegistry()
	require.NoError(t, r.Register(KeyJadualRelief))
	require.NoError(t, r.Register(KeyJadualSpeech))

	require.NoError(t, s.Set(KeyJadualRelief, []int{1}))

	got, err := r.Collect(s)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Contains(t, got, KeyJadualRelief)
	assert.NotContains(t, got, KeyJadualSpeech)
}

func TestRegistry_Collect_NeverIncludesCoreKeys(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Set(KeyConfig, map[string]string{"x": "y"}))
	require.NoError(t, s.Set(KeyTakwimExamWeeks, []int{1}))

	r := DefaultRegistry()
	got, err := r.Collect(s)
	require.NoError(t, err)

	for key := range CoreKeys() {
		assert.NotContains(t, got, key)
	}
	assert.Contains(t, got, KeyTakwimExamWeeks)
}

func TestDefaultRegistry_KeysInOrder(t *testing.T) {
	r := DefaultRegistry()
	assert.Equal(t, []string{
		KeyJadualRelief,
		KeyJadualClassTeachers,
		KeyJadualSpeech,
		KeyJadualSlots,
		KeyTakwimSchoolWeeks,
		KeyTakwimExamWeeks,
	}, r.Keys())
}
