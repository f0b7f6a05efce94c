package subsetter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasubset/document"
	"github.com/erraggy/oasubset/projector"
	"github.com/erraggy/oasubset/resolver"
)

// outputFileMode uses restrictive permissions since API specs may describe
// internal services.
const outputFileMode = 0o600

// Config configures a subset operation.
type Config struct {
	// PathAllowList names the path keys to retain verbatim when present.
	PathAllowList []string
	// MetadataKeys names additional top-level keys to copy through; nil
	// selects the projector's defaults for the document's version.
	MetadataKeys []string
	// Title replaces info.title in the output when non-empty.
	Title string
	// Description replaces info.description in the output when non-empty.
	Description string
	// InfoVersion replaces info.version when non-empty; otherwise the
	// original's value is kept.
	InfoVersion string
	// FailOnEmpty rejects runs that retained no paths and no schemas.
	FailOnEmpty bool
}

// DefaultConfig returns a sensible default configuration: no allow-lists,
// no overrides, empty results permitted.
func DefaultConfig() Config {
	return Config{}
}

// Subsetter computes document subsets.
//
// Concurrency: a Subsetter carries no per-run state and may be shared, but
// the documents passed to Subset must not be mutated concurrently.
type Subsetter struct {
	config Config
	logger Logger
}

// New creates a new Subsetter instance with the provided configuration.
func New(config Config) *Subsetter {
	return &Subsetter{config: config, logger: NopLogger{}}
}

// SetLogger installs a logger for diagnostic output. The default discards
// everything.
func (s *Subsetter) SetLogger(logger Logger) {
	if logger == nil {
		logger = NopLogger{}
	}
	s.logger = logger
}

// SubsetStats contains statistical information about a subset run.
type SubsetStats struct {
	// PathsRetained is the number of path entries copied to the output.
	PathsRetained int
	// SchemasRetained is the number of schema definitions copied to the output.
	SchemasRetained int
	// SchemasVisited is the size of the closure, including names that had no
	// definition to copy.
	SchemasVisited int
	// MissingRoots is the number of roots without a definition.
	MissingRoots int
	// DanglingRefs is the number of referenced names without a definition.
	DanglingRefs int
}

// SubsetResult contains the trimmed document and metadata about the run.
type SubsetResult struct {
	// Document is the trimmed document.
	Document *document.Node
	// Version is the detected OAS version of the source document.
	Version document.OASVersion
	// Closure is the full visited set of schema names, sorted.
	Closure []string
	// Warnings contains non-fatal findings (missing roots, dangling refs).
	Warnings SubsetWarnings
	// Stats contains statistical information about the run.
	Stats SubsetStats
}

// WarningStrings returns the warning messages.
func (r *SubsetResult) WarningStrings() []string {
	return r.Warnings.Strings()
}

// Subset runs the pipeline on doc: detect version, locate the schema
// catalog, compute the closure from roots, and project the trimmed
// document. doc is only read, never mutated.
func (s *Subsetter) Subset(doc *document.Node, roots []string) (*SubsetResult, error) {
	version, err := document.DetectVersion(doc)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("subsetting document", "oas_version", version.String(), "roots", len(roots))

	// A document without a schema catalog still subsets; every root just
	// comes back as missing.
	definitions, _ := document.SchemaDefinitions(doc, version)

	closure, err := resolver.Closure(definitions, roots)
	if err != nil {
		return nil, fmt.Errorf("subsetter: %w", err)
	}

	var warnings SubsetWarnings
	for _, name := range closure.MissingRoots {
		warnings = append(warnings, NewMissingRootWarning(name))
		s.logger.Warn("missing root schema", "schema", name)
	}
	for _, name := range closure.DanglingRefs {
		warnings = append(warnings, NewDanglingReferenceWarning(name))
		s.logger.Warn("dangling reference", "schema", name)
	}

	projected, err := projector.Project(doc, closure.Names, projector.Config{
		PathAllowList: s.config.PathAllowList,
		MetadataKeys:  s.config.MetadataKeys,
		Title:         s.config.Title,
		Description:   s.config.Description,
		InfoVersion:   s.config.InfoVersion,
		FailOnEmpty:   s.config.FailOnEmpty,
	})
	if err != nil {
		return nil, err
	}

	stats := SubsetStats{
		SchemasVisited: len(closure.Names),
		MissingRoots:   len(closure.MissingRoots),
		DanglingRefs:   len(closure.DanglingRefs),
	}
	if paths, ok := document.Paths(projected); ok {
		stats.PathsRetained = paths.Len()
	}
	if defs, ok := document.SchemaDefinitions(projected, version); ok {
		stats.SchemasRetained = defs.Len()
	}
	s.logger.Info("subset complete",
		"paths_retained", stats.PathsRetained,
		"schemas_retained", stats.SchemasRetained,
		"warnings", len(warnings))

	return &SubsetResult{
		Document: projected,
		Version:  version,
		Closure:  closure.Names.Sorted(),
		Warnings: warnings,
		Stats:    stats,
	}, nil
}

// WriteResult writes the trimmed document to a file. A ".json" extension
// selects indented JSON with document key order; anything else writes YAML.
func (s *Subsetter) WriteResult(result *SubsetResult, outputPath string) error {
	var data []byte
	var err error

	if strings.EqualFold(filepath.Ext(outputPath), ".json") {
		data, err = result.Document.MarshalJSONIndent("", "  ")
	} else {
		data, err = yaml.Marshal(result.Document)
	}
	if err != nil {
		return fmt.Errorf("subsetter: failed to marshal document: %w", err)
	}

	if err := os.WriteFile(outputPath, data, outputFileMode); err != nil {
		return fmt.Errorf("subsetter: failed to write output file: %w", err)
	}
	return nil
}
