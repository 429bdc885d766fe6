package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"ID", "NAMA"},
		[][]string{
			{"1", "Cikgu Siti Aminah"},
			{"12345", "Ali"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)

	// Every data row starts the second column at the same offset.
	assert.Equal(t, strings.Index(lines[2], "Cikgu"), strings.Index(lines[3], "Ali"))
}

func TestRenderTable_EmptyHeaders(t *testing.T) {
	assert.Equal(t, "", RenderTable(nil, nil))
}

func TestRenderTable_ShortRowPadded(t *testing.T) {
	out := RenderTable([]string{"A", "B", "C"}, [][]string{{"x"}})
	assert.Contains(t, out, "x")
}
