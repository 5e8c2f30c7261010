// Package gene turns the raw DNA of a gene into a protein:
// exons are spliced, the result is transcribed to mRNA and
// the mRNA is translated from the first start codon to the
// first stop signal.
package gene

import "strings"

// Exon is a [Start, End) interval of the raw DNA sequence
type Exon struct {
	Start int
	End   int
}

// Splice concatenates the exons of dna in the order of the list.
//
// Exons are neither sorted nor merged, so overlapping intervals are
// spliced twice. An End past the end of the sequence is truncated
func Splice(dna string, exons []Exon) string {

	var sb strings.Builder
	for _, exon := range exons {

		start, end := exon.Start, exon.End
		if end > len(dna) {
			end = len(dna)
		}
		if start < 0 || start > end {
			continue
		}
		sb.WriteString(dna[start:end])
	}
	return sb.String()
}

// Transcribe returns the mRNA of a spliced DNA sequence:
// every 'T' is replaced by 'U'
func Transcribe(dna string) string {
	return strings.ReplaceAll(dna, "T", "U")
}

// Express runs the whole pipeline: splice, transcribe, translate
func Express(dna string, exons []Exon, table CodonTable) string {
	return Translate(Transcribe(Splice(dna, exons)), table)
}
