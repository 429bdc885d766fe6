package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassList_UnmarshalArray(t *testing.T) {
	var c ClassList
	require.NoError(t, json.Unmarshal([]byte(`["1 Amanah","2 Bestari"]`), &c))
	assert.Equal(t, ClassList{"1 Amanah", "2 Bestari"}, c)
}

func TestClassList_UnmarshalLegacyCommaString(t *testing.T) {
	var c ClassList
	require.NoError(t, json.Unmarshal([]byte(`"1 Amanah, 2 Bestari,3 Cerdik"`), &c))
	assert.Equal(t, ClassList{"1 Amanah", "2 Bestari", "3 Cerdik"}, c)
}

func TestClassList_UnmarshalRejectsOtherShapes(t *testing.T) {
	var c ClassList
	assert.Error(t, json.Unmarshal([]byte(`42`), &c))
}

func TestClassList_MarshalAlwaysArray(t *testing.T) {
	// The legacy comma form is read-only: a migrated list is written back
	// as a JSON array.
	var c ClassList
	require.NoError(t, json.Unmarshal([]byte(`"1 Amanah, 2 Bestari"`), &c))

	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `["1 Amanah","2 Bestari"]`, string(data))
}

func TestSplitClasses_TrimsAndDropsEmpty(t *testing.T) {
	assert.Equal(t, ClassList{"A", "B"}, SplitClasses(" A ,, B , "))
	assert.Nil(t, SplitClasses("  "))
}

func TestClassList_String(t *testing.T) {
	assert.Equal(t, "1 Amanah, 2 Bestari", ClassList{"1 Amanah", "2 Bestari"}.String())
}

func TestTeacher_UnmarshalMigratesClasses(t *testing.T) {
	var tc Teacher
	require.NoError(t, json.Unmarshal([]byte(`{"id":"t1","name":"Cikgu Ana","subject":"Sains","classes":"4 Ibnu Sina, 5 Al-Khawarizmi"}`), &tc))
	assert.Equal(t, ClassList{"4 Ibnu Sina", "5 Al-Khawarizmi"}, tc.Classes)
}
