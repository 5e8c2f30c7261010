package gene

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTable = CodonTable{
	Codes: map[string]byte{
		"AUG": 'M',
		"AAA": 'K',
		"GCC": 'A',
		"CCC": 'X',
	},
	Stop: 'X',
}

func TestSplice(t *testing.T) {

	dna := "AACCGGTT"

	tests := []struct {
		name     string
		exons    []Exon
		expected string
	}{
		{"single exon", []Exon{{0, 8}}, "AACCGGTT"},
		{"list order is kept", []Exon{{6, 8}, {0, 2}}, "TTAA"},
		{"overlapping exons", []Exon{{0, 4}, {2, 6}}, "AACCCCGG"},
		{"gap between exons", []Exon{{0, 2}, {6, 8}}, "AATT"},
		{"end past sequence", []Exon{{6, 20}}, "TT"},
		{"start past sequence", []Exon{{10, 20}}, ""},
		{"no exon", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Splice(dna, tt.exons))
		})
	}
}

func TestTranscribeRemovesThymine(t *testing.T) {

	dna := "TTACGTNT"
	mrna := Transcribe(Splice(dna, []Exon{{0, 4}, {2, 8}}))

	assert.NotContains(t, mrna, "T")
	assert.Equal(t, "UUACACGUNU", mrna)
}

func TestTranslate(t *testing.T) {

	tests := []struct {
		name     string
		mrna     string
		expected string
	}{
		{"no start codon", "CCCAAAGGG", ""},
		{"empty mrna", "", ""},
		{"stop right after start", "AUGUAA", "M"},
		{"leading bases before start", "CCAUGAAAUAG", "MK"},
		{"incomplete trailing codon", "AUGAAAGC", "MK"},
		{"unknown codon is skipped", "AUGGGGAAA", "MK"},
		{"stop sentinel from table", "AUGCCCAAA", "M"},
		{"no restart after stop", "AUGUGAAUGAAA", "M"},
		{"codons after stop are ignored", "AUGAAAUAGAAA", "MK"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Translate(tt.mrna, testTable)
			assert.Equal(t, tt.expected, got)
			// no hidden state
			assert.Equal(t, got, Translate(tt.mrna, testTable))
		})
	}
}

func TestTranslateStartCodonUsesTable(t *testing.T) {

	table := CodonTable{
		Codes: map[string]byte{"AAA": 'K'},
		Stop:  'X',
	}
	assert.Equal(t, "K", Translate("AUGAAA", table))
}

func TestTranslateNCBITable(t *testing.T) {

	table, err := NewNCBITable(0)
	require.NoError(t, err)

	assert.Equal(t, "MK", Translate("AUGAAAUAG", table))
	assert.Equal(t, "MKW", Translate("AUGAAAUGGUGA", table))
}

func TestNewNCBITableInvalidCode(t *testing.T) {
	_, err := NewNCBITable(1)
	assert.Error(t, err)
}

func TestExpress(t *testing.T) {

	protein := Express("GGATGGCCAAATAA", []Exon{{2, 14}}, testTable)
	assert.Equal(t, "MAK", protein)
	assert.False(t, strings.Contains(protein, "*"))
}
