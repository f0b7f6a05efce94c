package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/oasubset/document"
	"github.com/erraggy/oasubset/resolver"
	"github.com/erraggy/oasubset/subsetter"
)

// ClosureFlags contains flags for the closure command
type ClosureFlags struct {
	Roots     string
	RootsFile string
	Format    string
	Quiet     bool
}

// ClosureReport is the structured output of the closure command.
type ClosureReport struct {
	Version      string   `json:"version"                 yaml:"version"`
	Schemas      []string `json:"schemas"                 yaml:"schemas"`
	MissingRoots []string `json:"missing_roots,omitempty" yaml:"missing_roots,omitempty"`
	DanglingRefs []string `json:"dangling_refs,omitempty" yaml:"dangling_refs,omitempty"`
}

func SetupClosureFlags() (*flag.FlagSet, *ClosureFlags) {
	fs := flag.NewFlagSet("closure", flag.ContinueOnError)
	flags := &ClosureFlags{}

	fs.StringVar(&flags.Roots, "roots", "", "comma-separated root schema names seeding the closure")
	fs.StringVar(&flags.Roots, "r", "", "comma-separated root schema names seeding the closure")
	fs.StringVar(&flags.RootsFile, "roots-file", "", "file of newline-separated root schema names ('#' comments allowed)")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output schema names, no headers")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output schema names, no headers")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oasubset closure [flags] <file|->\n\n")
		Writef(fs.Output(), "Show the transitive $ref closure for chosen root schemas without\n")
		Writef(fs.Output(), "building a trimmed document.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  oasubset closure --roots Pet openapi.yaml\n")
		Writef(fs.Output(), "  oasubset closure --roots Pet,Order --format json openapi.yaml\n")
		Writef(fs.Output(), "  oasubset closure -q --roots Pet openapi.yaml | xargs echo\n")
	}

	return fs, flags
}

// HandleClosure executes the closure command
func HandleClosure(args []string) error {
	fs, flags := SetupClosureFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("closure command requires exactly one file path or '-' for stdin")
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	specPath := fs.Arg(0)

	doc, err := LoadSpec(specPath)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", FormatSpecPath(specPath), err)
	}

	version, err := document.DetectVersion(doc)
	if err != nil {
		return err
	}

	roots := SplitList(flags.Roots)
	if flags.RootsFile != "" {
		fromFile, err := subsetter.ReadRootsFile(flags.RootsFile)
		if err != nil {
			return err
		}
		roots = append(roots, fromFile...)
	}

	definitions, _ := document.SchemaDefinitions(doc, version)
	closure, err := resolver.Closure(definitions, roots)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", FormatSpecPath(specPath), err)
	}

	report := ClosureReport{
		Version:      version.String(),
		Schemas:      closure.Names.Sorted(),
		MissingRoots: closure.MissingRoots,
		DanglingRefs: closure.DanglingRefs,
	}

	if flags.Format != FormatText {
		return OutputStructured(report, flags.Format)
	}

	if !flags.Quiet {
		OutputSpecHeader(specPath, report.Version)
		Writef(os.Stderr, "Schemas: %d\n", len(report.Schemas))
	}
	for _, name := range report.Schemas {
		fmt.Println(name)
	}
	for _, name := range report.MissingRoots {
		Writef(os.Stderr, "Warning: root schema '%s' has no definition in the document\n", name)
	}
	for _, name := range report.DanglingRefs {
		Writef(os.Stderr, "Warning: referenced schema '%s' has no definition and will be omitted\n", name)
	}
	return nil
}
