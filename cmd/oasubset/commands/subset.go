package commands

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasubset/subsetter"
)

// SubsetFlags contains flags for the subset command
type SubsetFlags struct {
	Roots        string
	RootsFile    string
	Paths        string
	MetadataKeys string
	Title        string
	Description  string
	InfoVersion  string
	Output       string
	Format       string
	AllowEmpty   bool
	Quiet        bool
	Verbose      bool
}

func SetupSubsetFlags() (*flag.FlagSet, *SubsetFlags) {
	fs := flag.NewFlagSet("subset", flag.ContinueOnError)
	flags := &SubsetFlags{}

	fs.StringVar(&flags.Roots, "roots", "", "comma-separated root schema names seeding the closure")
	fs.StringVar(&flags.Roots, "r", "", "comma-separated root schema names seeding the closure")
	fs.StringVar(&flags.RootsFile, "roots-file", "", "file of newline-separated root schema names ('#' comments allowed)")
	fs.StringVar(&flags.Paths, "paths", "", "comma-separated path keys to retain verbatim")
	fs.StringVar(&flags.Paths, "p", "", "comma-separated path keys to retain verbatim")
	fs.StringVar(&flags.MetadataKeys, "metadata-keys", "", "comma-separated top-level keys to copy through (replaces version defaults)")
	fs.StringVar(&flags.Title, "title", "", "override info.title in the output")
	fs.StringVar(&flags.Description, "description", "", "override info.description in the output")
	fs.StringVar(&flags.InfoVersion, "info-version", "", "override info.version in the output")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout; .json extension selects JSON)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout; .json extension selects JSON)")
	fs.StringVar(&flags.Format, "format", FormatYAML, "stdout document format: yaml or json")
	fs.BoolVar(&flags.AllowEmpty, "allow-empty", false, "exit successfully even when nothing was retained")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the document, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the document, no diagnostic messages")
	fs.BoolVar(&flags.Verbose, "verbose", false, "verbose mode: log pipeline progress to stderr")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oasubset subset [flags] <file|->\n\n")
		Writef(fs.Output(), "Trim an OpenAPI specification down to chosen schemas and paths.\n\n")
		Writef(fs.Output(), "The transitive $ref closure is computed from the root schema names, so\n")
		Writef(fs.Output(), "every schema a retained schema references is retained too. Roots or\n")
		Writef(fs.Output(), "referenced names with no definition produce warnings, not errors.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  oasubset subset --roots Pet,Order openapi.yaml\n")
		Writef(fs.Output(), "  oasubset subset --roots Pet --paths /pets,/pets/{id} openapi.yaml\n")
		Writef(fs.Output(), "  oasubset subset --roots-file roots.txt -o trimmed.json openapi.yaml\n")
		Writef(fs.Output(), "  oasubset subset --roots Pet --title 'Pets API' openapi.yaml\n")
		Writef(fs.Output(), "  cat openapi.yaml | oasubset subset -q --roots Pet - > trimmed.yaml\n")
		Writef(fs.Output(), "\nExit Codes:\n")
		Writef(fs.Output(), "  0    Subset produced successfully\n")
		Writef(fs.Output(), "  1    Parse failure, or nothing retained (unless --allow-empty)\n")
	}

	return fs, flags
}

// HandleSubset executes the subset command
func HandleSubset(args []string) error {
	fs, flags := SetupSubsetFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("subset command requires exactly one file path or '-' for stdin")
	}

	if flags.Format != FormatYAML && flags.Format != FormatJSON {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s", flags.Format, FormatYAML, FormatJSON)
	}

	specPath := fs.Arg(0)

	doc, err := LoadSpec(specPath)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", FormatSpecPath(specPath), err)
	}

	opts := []subsetter.Option{
		subsetter.WithDocument(doc),
		subsetter.WithRoots(SplitList(flags.Roots)...),
		subsetter.WithPaths(SplitList(flags.Paths)...),
		subsetter.WithTitle(flags.Title),
		subsetter.WithDescription(flags.Description),
		subsetter.WithInfoVersion(flags.InfoVersion),
		subsetter.WithFailOnEmpty(!flags.AllowEmpty),
	}
	if flags.RootsFile != "" {
		opts = append(opts, subsetter.WithRootsFile(flags.RootsFile))
	}
	if keys := SplitList(flags.MetadataKeys); keys != nil {
		opts = append(opts, subsetter.WithMetadataKeys(keys...))
	}
	if flags.Verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		opts = append(opts, subsetter.WithLogger(subsetter.NewSlogAdapter(logger)))
	}

	startTime := time.Now()
	result, err := subsetter.SubsetWithOptions(opts...)
	if err != nil {
		return fmt.Errorf("subsetting %s: %w", FormatSpecPath(specPath), err)
	}
	totalTime := time.Since(startTime)

	if !flags.Quiet {
		OutputSpecHeader(specPath, result.Version.String())
		Writef(os.Stderr, "Paths Retained: %d\n", result.Stats.PathsRetained)
		Writef(os.Stderr, "Schemas Retained: %d (of %d visited)\n", result.Stats.SchemasRetained, result.Stats.SchemasVisited)
		Writef(os.Stderr, "Subset Time: %v\n", totalTime)
		for _, warning := range result.WarningStrings() {
			Writef(os.Stderr, "Warning: %s\n", warning)
		}
	}

	if flags.Output != "" {
		cleanedPath := filepath.Clean(flags.Output)
		if err := ValidateOutputPath(cleanedPath, []string{specPath}); err != nil {
			return err
		}
		if err := RejectSymlinkOutput(cleanedPath); err != nil {
			return err
		}
		if err := subsetter.New(subsetter.DefaultConfig()).WriteResult(result, cleanedPath); err != nil {
			return err
		}
		if !flags.Quiet {
			Writef(os.Stderr, "Output written to: %s\n", cleanedPath)
		}
		return nil
	}

	var data []byte
	if flags.Format == FormatJSON {
		data, err = result.Document.MarshalJSONIndent("", "  ")
	} else {
		data, err = yaml.Marshal(result.Document)
	}
	if err != nil {
		return fmt.Errorf("marshaling document: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
