// Package report writes composition reports, either as a
// terminal table or as a TSV data file meant to be plotted
package report

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/feliixx/gosplice/composition"
)

// Print writes one 'label<TAB>frequency<TAB>percentage%' line per row
func Print(out io.Writer, r composition.Report) error {

	buf := bytes.NewBuffer(make([]byte, 0, 64*len(r.Rows)))
	for _, row := range r.Rows {
		fmt.Fprintf(buf, "%s\t%d\t%.2f%%\n", row.Label, row.Frequency, row.Percentage)
	}
	_, err := out.Write(buf.Bytes())
	return err
}

// WriteTSV writes the title as a comment, a header and
// one line per row
func WriteTSV(out io.Writer, r composition.Report) error {

	buf := bytes.NewBuffer(make([]byte, 0, 64*(len(r.Rows)+2)))
	buf.WriteString("# ")
	buf.WriteString(r.Title)
	buf.WriteString("\nlabel\tfrequency\tpercentage\n")

	for _, row := range r.Rows {
		buf.WriteString(row.Label)
		buf.WriteByte('\t')
		buf.WriteString(strconv.Itoa(row.Frequency))
		buf.WriteByte('\t')
		buf.WriteString(strconv.FormatFloat(row.Percentage, 'f', 4, 64))
		buf.WriteByte('\n')
	}
	_, err := out.Write(buf.Bytes())
	return err
}

// Save writes the report as TSV to its destination, creating
// the parent directory if needed
func Save(r composition.Report) error {

	if err := os.MkdirAll(filepath.Dir(r.Destination), 0o755); err != nil {
		return fmt.Errorf("fail to create report directory: %w", err)
	}

	f, err := os.Create(r.Destination)
	if err != nil {
		return err
	}
	if err := WriteTSV(f, r); err != nil {
		f.Close()
		return fmt.Errorf("fail to write report %s: %w", r.Destination, err)
	}
	return f.Close()
}
