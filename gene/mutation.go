package gene

// Mutation is a single base substitution in the raw DNA
type Mutation struct {
	Position int
	Base     byte
}

// MutationImpact compares the proteins expressed from the original
// and the mutated DNA
type MutationImpact struct {
	Original       string
	Mutated        string
	OriginalLength int
	MutatedLength  int
	// OriginalLength - MutatedLength, positive means truncation
	Difference int
}

// Mutate returns a copy of dna where the base at pos is replaced by base.
// If pos is out of range, dna is returned unchanged
func Mutate(dna string, pos int, base byte) string {

	if pos < 0 || pos >= len(dna) {
		return dna
	}
	mutated := []byte(dna)
	mutated[pos] = base
	return string(mutated)
}

// CompareMutation expresses the gene before and after applying m.
// Both runs use the same exons
func CompareMutation(dna string, exons []Exon, table CodonTable, m Mutation) MutationImpact {

	original := Express(dna, exons, table)
	mutated := Express(Mutate(dna, m.Position, m.Base), exons, table)

	return MutationImpact{
		Original:       original,
		Mutated:        mutated,
		OriginalLength: len(original),
		MutatedLength:  len(mutated),
		Difference:     len(original) - len(mutated),
	}
}
