package composition

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Mode selects the granularity of a report
type Mode int

// Available report modes
const (
	All Mode = iota + 1
	PerCategory
	WithinCategory
	Specific
)

var modeNames = map[Mode]string{
	All:            "All",
	PerCategory:    "Per category",
	WithinCategory: "Within category",
	Specific:       "Specific AA",
}

var modeAliases = map[string]Mode{
	"1": All, "all": All,
	"2": PerCategory, "per": PerCategory, "per category": PerCategory,
	"3": WithinCategory, "within": WithinCategory, "within category": WithinCategory,
	"4": Specific, "specific": Specific, "specific aa": Specific,
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode decodes a menu choice: the entry number, the
// entry name or its short form
func ParseMode(choice string) (Mode, error) {

	m, ok := modeAliases[strings.ToLower(strings.TrimSpace(choice))]
	if !ok {
		return 0, fmt.Errorf("invalid report mode: %q", choice)
	}
	return m, nil
}

// Selection is a decoded menu choice. Category is only used in
// WithinCategory mode, Code only in Specific mode
type Selection struct {
	Mode     Mode
	Category string
	Code     string
}

// Report is the data contract handed to renderers
type Report struct {
	Title       string
	Destination string
	Rows        []Row
}

// Analyzer builds reports from a fixed set of categories
type Analyzer struct {
	Categories []Category
	// directory where report destinations are located
	OutDir string
}

// Run computes the report described by sel
func (a Analyzer) Run(protein string, sel Selection) (Report, error) {

	switch sel.Mode {
	case All:
		return Report{
			Title:       "AA Composition (All)",
			Destination: a.destination("aa_all"),
			Rows:        CountAll(protein),
		}, nil

	case PerCategory:
		return Report{
			Title:       "AA Composition (By Category)",
			Destination: a.destination("aa_by_category"),
			Rows:        CountPerCategory(protein, a.Categories),
		}, nil

	case WithinCategory:
		rows, err := CountWithinCategory(protein, a.Categories, sel.Category)
		if err != nil {
			return Report{}, err
		}
		return Report{
			Title:       "AA Within Category: " + sel.Category,
			Destination: a.destination("aa_within_" + strings.ReplaceAll(sel.Category, " ", "_")),
			Rows:        rows,
		}, nil

	case Specific:
		row, err := CountSpecific(protein, sel.Code)
		if err != nil {
			return Report{}, err
		}
		return Report{
			Title:       fmt.Sprintf("AA Composition (Specific: %s)", row.Label),
			Destination: a.destination("aa_specific_" + row.Label),
			Rows:        []Row{row},
		}, nil
	}
	return Report{}, fmt.Errorf("invalid report mode: %v", sel.Mode)
}

// CategoryNames returns the configured category names, in order
func (a Analyzer) CategoryNames() []string {
	names := make([]string, 0, len(a.Categories))
	for _, cat := range a.Categories {
		names = append(names, cat.Name)
	}
	return names
}

func (a Analyzer) destination(name string) string {
	return filepath.Join(a.OutDir, name+".tsv")
}
