// Package composition computes amino-acid frequency reports
// over a protein
package composition

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Standard lists the 20 standard AA codes in canonical order
const Standard = "ACDEFGHIKLMNPQRSTVWY"

var (
	// ErrUnknownCategory is returned when a category name does not
	// match any configured category
	ErrUnknownCategory = errors.New("unknown category")
	// ErrInvalidCode is returned for a letter that is not one of
	// the 20 standard AA codes
	ErrInvalidCode = errors.New("invalid AA code")
)

// Category is a named group of AA codes
type Category struct {
	Name    string `mapstructure:"name"`
	Members string `mapstructure:"members"`
}

// DefaultCategories groups the standard AA by chemical property.
//
// The groups are not a strict partition of Standard: a residue
// may be counted in several groups or in none
var DefaultCategories = []Category{
	{Name: "Positively charged", Members: "RHK"},
	{Name: "Negatively charged", Members: "DE"},
	{Name: "Polar", Members: "NCQSTY"},
	{Name: "Non-polar", Members: "AILMFPWVG"},
}

// Row is a single line of a report
type Row struct {
	Label      string
	Frequency  int
	Percentage float64
}

type counter [256]int

func count(protein string) *counter {
	var c counter
	for i := 0; i < len(protein); i++ {
		c[protein[i]]++
	}
	return &c
}

func (c *counter) sum(codes string) int {
	total := 0
	for i := 0; i < len(codes); i++ {
		total += c[codes[i]]
	}
	return total
}

// avoid a division by zero on empty proteins, all
// percentages are then 0
func denominator(total int) float64 {
	if total == 0 {
		return 1
	}
	return float64(total)
}

func perCode(c *counter, codes string, total float64) []Row {
	rows := make([]Row, 0, len(codes))
	for i := 0; i < len(codes); i++ {
		f := c[codes[i]]
		rows = append(rows, Row{
			Label:      string(codes[i]),
			Frequency:  f,
			Percentage: float64(f) * 100 / total,
		})
	}
	return rows
}

// sortRows sorts by descending frequency, ties keep
// their configured order
func sortRows(rows []Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Frequency > rows[j].Frequency
	})
}

// CountAll counts each standard AA of protein. Percentages are
// relative to the number of standard residues
func CountAll(protein string) []Row {

	c := count(protein)
	rows := perCode(c, Standard, denominator(c.sum(Standard)))
	sortRows(rows)
	return rows
}

// CountPerCategory sums the members of each category. Percentages
// are relative to the protein length, so they do not necessarily
// sum to 100
func CountPerCategory(protein string, categories []Category) []Row {

	c := count(protein)
	total := denominator(len(protein))

	rows := make([]Row, 0, len(categories))
	for _, cat := range categories {
		f := c.sum(cat.Members)
		rows = append(rows, Row{
			Label:      cat.Name,
			Frequency:  f,
			Percentage: float64(f) * 100 / total,
		})
	}
	sortRows(rows)
	return rows
}

// CountWithinCategory counts each member of the category name.
// Percentages are relative to the residues of this category only
func CountWithinCategory(protein string, categories []Category, name string) ([]Row, error) {

	cat, ok := findCategory(categories, name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}

	c := count(protein)
	rows := perCode(c, cat.Members, denominator(c.sum(cat.Members)))
	sortRows(rows)
	return rows, nil
}

// CountSpecific counts a single AA code, case insensitive.
// The percentage is relative to the protein length
func CountSpecific(protein string, code string) (Row, error) {

	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 1 || !strings.Contains(Standard, code) {
		return Row{}, fmt.Errorf("%w: %q", ErrInvalidCode, code)
	}

	f := strings.Count(protein, code)
	return Row{
		Label:      code,
		Frequency:  f,
		Percentage: float64(f) * 100 / denominator(len(protein)),
	}, nil
}

func findCategory(categories []Category, name string) (Category, bool) {
	for _, cat := range categories {
		if cat.Name == name {
			return cat, true
		}
	}
	return Category{}, false
}
