package ncbicode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadStandardTable(t *testing.T) {

	table, err := LoadTableCode(Standard)
	require.NoError(t, err)

	assert.Len(t, table, 64)
	assert.Equal(t, byte('M'), table["AUG"])
	for _, stop := range []string{"UAA", "UAG", "UGA"} {
		assert.Equal(t, byte(Stop), table[stop], stop)
	}
	for codon := range table {
		assert.NotContains(t, codon, "T")
	}
}

func TestLoadTableDiff(t *testing.T) {

	table, err := LoadTableCode(VertebrateMitochondrial)
	require.NoError(t, err)

	assert.Equal(t, byte('W'), table["UGA"])
	assert.Equal(t, byte(Stop), table["AGA"])

	// diffs must not leak into the standard table
	standardTable, err := LoadTableCode(Standard)
	require.NoError(t, err)
	assert.Equal(t, byte(Stop), standardTable["UGA"])
}

func TestLoadInvalidTable(t *testing.T) {
	_, err := LoadTableCode(42)
	assert.EqualError(t, err, "invalid table code: 42")
}
