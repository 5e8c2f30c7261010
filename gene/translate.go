package gene

import (
	"strings"

	"github.com/feliixx/gosplice/ncbicode"
)

const (
	startCodon = "AUG"
	codonSize  = 3
)

// canonical stop codons, always honored whatever the table says
var stopCodons = map[string]bool{
	"UAA": true,
	"UAG": true,
	"UGA": true,
}

// CodonTable maps a 3 letters RNA codon to an AA code.
// A codon mapped to Stop ends the translation
type CodonTable struct {
	Codes map[string]byte
	Stop  byte
}

// NewNCBITable returns the CodonTable of an NCBI genetic code
func NewNCBITable(code int) (CodonTable, error) {

	codes, err := ncbicode.LoadTableCode(code)
	if err != nil {
		return CodonTable{}, err
	}
	return CodonTable{Codes: codes, Stop: ncbicode.Stop}, nil
}

// Lookup returns the AA code of codon, and false if the
// codon is not in the table
func (t CodonTable) Lookup(codon string) (byte, bool) {
	aaCode, ok := t.Codes[codon]
	return aaCode, ok
}

// Translate reads mrna codon by codon, starting at the first 'AUG',
// and returns the corresponding protein.
//
// Translation ends on an incomplete codon, a canonical stop codon
// or a codon mapped to the table stop sentinel. Codons missing from
// the table are skipped. If there is no start codon, the protein is
// empty
func Translate(mrna string, table CodonTable) string {

	start := strings.Index(mrna, startCodon)
	if start == -1 {
		return ""
	}

	var protein strings.Builder
	for pos := start; pos+codonSize <= len(mrna); pos += codonSize {

		codon := mrna[pos : pos+codonSize]
		if stopCodons[codon] {
			break
		}
		aaCode, ok := table.Lookup(codon)
		if !ok {
			continue
		}
		if aaCode == table.Stop {
			break
		}
		protein.WriteByte(aaCode)
	}
	return protein.String()
}
