// Package ncbicode stores codon <-> AA
// translation, written with the RNA alphabet.
//
// Relevant documentation:
//
//	https://www.ncbi.nlm.nih.gov/Taxonomy/Utils/wprintgc.cgi?chapter=tgencodes#SG1
package ncbicode

import "fmt"

// Stop is the AA code used for stop codons in every table
const Stop = '*'

var (
	standard = map[string]byte{
		"UUU": 'F', // Phenylalanine
		"UUC": 'F',

		"UUA": 'L', // Leucine
		"UUG": 'L',
		"CUU": 'L',
		"CUC": 'L',
		"CUA": 'L',
		"CUG": 'L',

		"AUU": 'I', // Isoleucine
		"AUC": 'I',
		"AUA": 'I',

		"AUG": 'M', // Methionine

		"GUU": 'V', // Valine
		"GUC": 'V',
		"GUA": 'V',
		"GUG": 'V',

		"UCU": 'S', // Serine
		"UCC": 'S',
		"UCA": 'S',
		"UCG": 'S',
		"AGU": 'S',
		"AGC": 'S',

		"CCU": 'P', // Proline
		"CCC": 'P',
		"CCA": 'P',
		"CCG": 'P',

		"ACU": 'T', // Threonine
		"ACC": 'T',
		"ACA": 'T',
		"ACG": 'T',

		"GCU": 'A', // Alanine
		"GCC": 'A',
		"GCA": 'A',
		"GCG": 'A',

		"UAU": 'Y', // Tyrosine
		"UAC": 'Y',

		"UAA": Stop,
		"UAG": Stop,
		"UGA": Stop,

		"CAU": 'H', // Histidine
		"CAC": 'H',

		"CAA": 'Q', // Glutamine
		"CAG": 'Q',

		"AAU": 'N', // Asparagine
		"AAC": 'N',

		"AAA": 'K', // Lysine
		"AAG": 'K',

		"GAU": 'D', // Aspartic acid
		"GAC": 'D',

		"GAA": 'E', // Glutamic acid
		"GAG": 'E',

		"UGU": 'C', // Cysteine
		"UGC": 'C',

		"UGG": 'W', // Tryptophan

		"CGU": 'R', // Arginine
		"CGC": 'R',
		"CGA": 'R',
		"CGG": 'R',
		"AGA": 'R',
		"AGG": 'R',

		"GGU": 'G', // Glycine
		"GGC": 'G',
		"GGA": 'G',
		"GGG": 'G',
	}

	vertebrateMitochondrialDiff = map[string]byte{
		"AGA": Stop,
		"AGG": Stop,
		"AUA": 'M',
		"UGA": 'W',
	}
	yeastMitochondrialDiff = map[string]byte{
		"AUA": 'M',
		"CUU": 'T',
		"CUC": 'T',
		"CUA": 'T',
		"CUG": 'T',
		"UGA": 'W',
	}
	moldProtozoanCoelenterateMitochondrialMycoplasmaSpiroplasmaDiff = map[string]byte{
		"UGA": 'W',
	}
	invertebrateMitochondrialDiff = map[string]byte{
		"AGA": 'S',
		"AGG": 'S',
		"AUA": 'M',
		"UGA": 'W',
	}
	ciliateDasycladaceanHexamitaDiff = map[string]byte{
		"UAA": 'Q',
		"UAG": 'Q',
	}
	echinodermFlatwormMitochondrialDiff = map[string]byte{
		"AAA": 'N',
		"AGA": 'S',
		"AGG": 'S',
		"UGA": 'W',
	}
	euplotidDiff = map[string]byte{
		"UGA": 'C',
	}
	// same codons as the standard code, only the alternative
	// start codons differ
	bacterialArchaealPlantPlastidDiff = map[string]byte{}

	diffs = map[int]map[string]byte{
		VertebrateMitochondrial: vertebrateMitochondrialDiff,
		YeastMitochondrial:      yeastMitochondrialDiff,
		MoldProtozoanCoelenterateMitochondrialMycoplasmaSpiroplasma: moldProtozoanCoelenterateMitochondrialMycoplasmaSpiroplasmaDiff,
		InvertebrateMitochondrial:                                   invertebrateMitochondrialDiff,
		CiliateDasycladaceanHexamita:                                ciliateDasycladaceanHexamitaDiff,
		EchinodermFlatwormMitochondrial:                             echinodermFlatwormMitochondrialDiff,
		Euplotid:                                                    euplotidDiff,
		BacterialArchaealPlantPlastid:                               bacterialArchaealPlantPlastidDiff,
	}
)

// Available table codes
const (
	Standard                                                    = 0
	VertebrateMitochondrial                                     = 2
	YeastMitochondrial                                          = 3
	MoldProtozoanCoelenterateMitochondrialMycoplasmaSpiroplasma = 4
	InvertebrateMitochondrial                                   = 5
	CiliateDasycladaceanHexamita                                = 6
	EchinodermFlatwormMitochondrial                             = 9
	Euplotid                                                    = 10
	BacterialArchaealPlantPlastid                               = 11
)

// LoadTableCode returns a fresh map of RNA codon <-> AA for
// the requested NCBI code. Stop codons map to Stop
func LoadTableCode(code int) (map[string]byte, error) {

	var tableDiff map[string]byte
	if code != Standard {
		var ok bool
		tableDiff, ok = diffs[code]
		if !ok {
			return nil, fmt.Errorf("invalid table code: %v", code)
		}
	}

	tableCodon := make(map[string]byte, len(standard))
	for codon, aaCode := range standard {
		tableCodon[codon] = aaCode
	}
	for codon, aaCode := range tableDiff {
		tableCodon[codon] = aaCode
	}
	return tableCodon, nil
}
