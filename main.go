package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/feliixx/gosplice/composition"
	"github.com/feliixx/gosplice/config"
	"github.com/feliixx/gosplice/gene"
	"github.com/feliixx/gosplice/report"
	"github.com/jessevdk/go-flags"
)

const (
	version  = "0.1.0"
	toolName = "gosplice"
)

// GlobalOptions struct to store command line args
type GlobalOptions struct {
	Inputs   `group:"inputs"`
	Analysis `group:"analysis"`
	General  `group:"general"`
}

// Inputs struct to store input files args. Unset values
// come from the settings file
type Inputs struct {
	Settings string  `short:"s" long:"settings" value-name:"<filename>" description:"Settings file (yaml, json or toml)"`
	Gene     *string `short:"g" long:"gene" value-name:"<filename>" description:"Raw gene sequence filename"`
	Exons    *string `short:"e" long:"exons" value-name:"<filename>" description:"Exon positions filename, one '<start> <end>' per line"`
	Code     *string `short:"c" long:"code" value-name:"<filename>" description:"Codon table filename, one '<codon> <AA>' per line. If empty, the NCBI table is used"`
	Table    *int    `short:"t" long:"table" value-name:"<code>" description:"NCBI code to use when no codon table file is given. Available codes:\n 0, 2, 3, 4, 5, 6, 9, 10, 11"`
	Stop     *string `long:"stop" value-name:"<AA>" description:"AA code marking a stop codon in the codon table file"`
}

// Analysis struct to store report and mutation args
type Analysis struct {
	Mode     string  `short:"m" long:"mode" value-name:"<mode>" description:"Report to produce, skips the menu. Possible values:\n  [1|all, 2|per, 3|within, 4|specific]"`
	Category string  `long:"category" value-name:"<name>" description:"Category name for the 'within' report"`
	AA       string  `long:"aa" value-name:"<code>" description:"One-letter AA code for the 'specific' report"`
	Position *int    `short:"p" long:"position" value-name:"<n>" description:"0-based DNA index of the point mutation"`
	Base     *string `short:"b" long:"base" value-name:"<base>" description:"Replacement base of the point mutation"`
	OutDir   *string `short:"o" long:"outdir" value-name:"<dir>" description:"Directory where report data files are written"`
}

// General struct to store general command line args
type General struct {
	Help    bool `short:"h" long:"help" description:"Show this help message"`
	Version bool `short:"v" long:"version" description:"Print the tool version and exit"`
}

// overrides maps the flags explicitly set to their settings key
func (o GlobalOptions) overrides() map[string]interface{} {

	overrides := map[string]interface{}{}
	for key, value := range map[string]*string{
		config.GeneKey:   o.Gene,
		config.ExonsKey:  o.Exons,
		config.CodeKey:   o.Code,
		config.StopKey:   o.Stop,
		config.BaseKey:   o.Base,
		config.OutDirKey: o.OutDir,
	} {
		if value != nil {
			overrides[key] = *value
		}
	}
	if o.Table != nil {
		overrides[config.TableKey] = *o.Table
	}
	if o.Position != nil {
		overrides[config.PositionKey] = *o.Position
	}
	return overrides
}

// prompter reads menu answers, one per line
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func (p *prompter) ask(question string) string {
	fmt.Fprint(p.out, question)
	if !p.in.Scan() {
		return ""
	}
	return strings.TrimSpace(p.in.Text())
}

func selectReport(options GlobalOptions, analyzer composition.Analyzer, p *prompter) (composition.Selection, error) {

	choice := options.Mode
	if choice == "" {
		fmt.Fprintln(p.out, "\nMenu:\n 1) All\n 2) Per category\n 3) Within category\n 4) Specific AA")
		choice = p.ask("> ")
	}
	mode, err := composition.ParseMode(choice)
	if err != nil {
		return composition.Selection{}, err
	}

	sel := composition.Selection{Mode: mode, Category: options.Category, Code: options.AA}
	switch {
	case mode == composition.WithinCategory && sel.Category == "":
		fmt.Fprintf(p.out, "Categories: %s\n", strings.Join(analyzer.CategoryNames(), ", "))
		sel.Category = p.ask("Pick a category exactly as shown: ")
	case mode == composition.Specific && sel.Code == "":
		sel.Code = p.ask("One-letter AA code (A,C,D,...,Y): ")
	}
	return sel, nil
}

func analyze(options GlobalOptions, analyzer composition.Analyzer, protein string, p *prompter) error {

	sel, err := selectReport(options, analyzer, p)
	if err != nil {
		fmt.Fprintf(p.out, "Invalid selection: %v\n", err)
		return nil
	}

	r, err := analyzer.Run(protein, sel)
	switch {
	case errors.Is(err, composition.ErrUnknownCategory):
		fmt.Fprintln(p.out, "Invalid selection.")
		return nil
	case errors.Is(err, composition.ErrInvalidCode):
		fmt.Fprintln(p.out, "Invalid AA code.")
		return nil
	case err != nil:
		return err
	}

	if err := report.Print(p.out, r); err != nil {
		return err
	}
	return report.Save(r)
}

func run(options GlobalOptions, in io.Reader, out io.Writer) error {

	cfg, err := config.NewConfig(options.Settings, options.overrides())
	if err != nil {
		return err
	}

	input, err := gene.LoadFiles(cfg.Inputs.Gene, cfg.Inputs.Exons, cfg.Inputs.Code, cfg.Stop(), cfg.Inputs.Table)
	if err != nil {
		return fmt.Errorf("fail to load inputs: %w", err)
	}

	protein := gene.Express(input.DNA, input.Exons, input.Table)
	fmt.Fprintf(out, "Protein length (original): %d\n", len(protein))

	analyzer := composition.Analyzer{
		Categories: cfg.Categories,
		OutDir:     cfg.OutDir,
	}
	p := &prompter{in: bufio.NewScanner(in), out: out}
	if err := analyze(options, analyzer, protein, p); err != nil {
		return err
	}

	m := gene.Mutation{Position: cfg.Mutation.Position, Base: cfg.Base()}
	impact := gene.CompareMutation(input.DNA, input.Exons, input.Table, m)

	fmt.Fprintf(out, "\n--- Mutation (%c at DNA index %d, 0-based) ---\n", m.Base, m.Position)
	fmt.Fprintf(out, "Protein length (mutated):   %d\n", impact.MutatedLength)
	fmt.Fprintf(out, "Length difference:          %d aa (positive means truncation)\n", impact.Difference)
	return nil
}

func main() {

	log.SetFlags(0)
	log.SetPrefix(toolName + ": ")

	var options GlobalOptions
	p := flags.NewParser(&options, flags.Default&^flags.HelpFlag)
	_, err := p.Parse()
	if err != nil {
		log.Fatalf("wrong arguments: %v, try %s --help for more informations", err, toolName)
	}
	if options.Help {
		fmt.Printf("%s version %s\n\n", toolName, version)
		p.WriteHelp(os.Stdout)
		os.Exit(0)
	}
	if options.Version {
		fmt.Printf("%s version %s\n", toolName, version)
		os.Exit(0)
	}

	if err := run(options, os.Stdin, os.Stdout); err != nil {
		log.Fatalf("%v", err)
	}
}
