package gene

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
)

const (
	mb = 1 << (10 * 2)
	// a whole gene may be stored on a single line
	maxLineLength = 100 * mb
)

func newScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)
	return scanner
}

// ReadSequence reads a raw DNA sequence. Surrounding whitespace
// is stripped from each line and lines are concatenated in order
func ReadSequence(r io.Reader) (string, error) {

	scanner := newScanner(r)
	buf := bytes.NewBuffer(make([]byte, 0, 4096))
	for scanner.Scan() {
		buf.Write(bytes.TrimSpace(scanner.Bytes()))
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("fail to read sequence: %w", err)
	}
	return buf.String(), nil
}

// ReadExons reads one exon per line, formatted as
//
//	<start> <end> [ignored fields...]
//
// Blank lines are skipped. The order of the lines is the
// splicing order
func ReadExons(r io.Reader) ([]Exon, error) {

	var exons []Exon
	scanner := newScanner(r)
	lineNumber := 0
	for scanner.Scan() {

		lineNumber++
		fields := bytes.Fields(scanner.Bytes())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: expected '<start> <end>', got %q", lineNumber, scanner.Text())
		}
		start, err := strconv.Atoi(string(fields[0]))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid exon start: %w", lineNumber, err)
		}
		end, err := strconv.Atoi(string(fields[1]))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid exon end: %w", lineNumber, err)
		}
		exons = append(exons, Exon{Start: start, End: end})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("fail to read exons: %w", err)
	}
	return exons, nil
}

// ReadCodonTable reads one codon per line, formatted as
//
//	<codon> <AA code> [ignored fields...]
//
// Lines with less than two fields are ignored. stop is the AA code
// used in the file for stop codons
func ReadCodonTable(r io.Reader, stop byte) (CodonTable, error) {

	table := CodonTable{
		Codes: map[string]byte{},
		Stop:  stop,
	}
	scanner := newScanner(r)
	for scanner.Scan() {

		fields := bytes.Fields(scanner.Bytes())
		if len(fields) < 2 {
			continue
		}
		table.Codes[string(fields[0])] = fields[1][0]
	}
	if err := scanner.Err(); err != nil {
		return CodonTable{}, fmt.Errorf("fail to read codon table: %w", err)
	}
	return table, nil
}

// Input holds everything the pipeline needs. It is loaded once
// and never modified afterwards
type Input struct {
	DNA   string
	Exons []Exon
	Table CodonTable
}

// LoadFiles reads the gene, exon and codon table files. If codePath
// is empty, the NCBI table ncbiCode is used instead of a file
func LoadFiles(genePath, exonPath, codePath string, stop byte, ncbiCode int) (Input, error) {

	var in Input

	err := readFile(genePath, func(r io.Reader) (err error) {
		in.DNA, err = ReadSequence(r)
		return err
	})
	if err != nil {
		return in, err
	}

	err = readFile(exonPath, func(r io.Reader) (err error) {
		in.Exons, err = ReadExons(r)
		return err
	})
	if err != nil {
		return in, err
	}

	if codePath == "" {
		in.Table, err = NewNCBITable(ncbiCode)
		return in, err
	}
	err = readFile(codePath, func(r io.Reader) (err error) {
		in.Table, err = ReadCodonTable(r, stop)
		return err
	})
	return in, err
}

func readFile(path string, read func(io.Reader) error) error {

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := read(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
