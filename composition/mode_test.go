package composition

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {

	tests := []struct {
		choice   string
		expected Mode
	}{
		{"1", All},
		{"All", All},
		{" all ", All},
		{"2", PerCategory},
		{"Per category", PerCategory},
		{"per", PerCategory},
		{"3", WithinCategory},
		{"within", WithinCategory},
		{"4", Specific},
		{"Specific AA", Specific},
		{"specific", Specific},
	}

	for _, tt := range tests {
		t.Run(tt.choice, func(t *testing.T) {
			m, err := ParseMode(tt.choice)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, m)
		})
	}
}

func TestParseModeInvalid(t *testing.T) {

	for _, choice := range []string{"", "0", "5", "everything"} {
		_, err := ParseMode(choice)
		assert.Error(t, err, choice)
	}
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "Within category", WithinCategory.String())
	assert.Equal(t, "Mode(9)", Mode(9).String())
}

func TestAnalyzerRun(t *testing.T) {

	a := Analyzer{Categories: DefaultCategories, OutDir: "figures"}

	tests := []struct {
		name        string
		sel         Selection
		title       string
		destination string
		rows        int
	}{
		{"all", Selection{Mode: All}, "AA Composition (All)", "aa_all.tsv", 20},
		{"per category", Selection{Mode: PerCategory}, "AA Composition (By Category)", "aa_by_category.tsv", 4},
		{"within category", Selection{Mode: WithinCategory, Category: "Non-polar"}, "AA Within Category: Non-polar", "aa_within_Non-polar.tsv", 9},
		{"within category with space", Selection{Mode: WithinCategory, Category: "Positively charged"}, "AA Within Category: Positively charged", "aa_within_Positively_charged.tsv", 3},
		{"specific", Selection{Mode: Specific, Code: "m"}, "AA Composition (Specific: M)", "aa_specific_M.tsv", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := a.Run("MKVLG", tt.sel)
			require.NoError(t, err)

			assert.Equal(t, tt.title, report.Title)
			assert.Equal(t, filepath.Join("figures", tt.destination), report.Destination)
			assert.Len(t, report.Rows, tt.rows)
		})
	}
}

func TestAnalyzerRunErrors(t *testing.T) {

	a := Analyzer{Categories: DefaultCategories, OutDir: "figures"}

	_, err := a.Run("MK", Selection{Mode: WithinCategory, Category: "Hydrophobic"})
	assert.ErrorIs(t, err, ErrUnknownCategory)

	_, err = a.Run("MK", Selection{Mode: Specific, Code: "Z"})
	assert.ErrorIs(t, err, ErrInvalidCode)

	_, err = a.Run("MK", Selection{})
	assert.Error(t, err)
}

func TestCategoryNames(t *testing.T) {
	a := Analyzer{Categories: DefaultCategories}
	assert.Equal(t, []string{"Positively charged", "Negatively charged", "Polar", "Non-polar"}, a.CategoryNames())
}
