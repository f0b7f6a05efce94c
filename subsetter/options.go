package subsetter

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/erraggy/oasubset/document"
	"github.com/erraggy/oasubset/oaserrors"
)

// Option is a function that configures a subset operation.
type Option func(*subsetConfig) error

// subsetConfig holds configuration for a single SubsetWithOptions call.
type subsetConfig struct {
	// Input sources (exactly one required)
	filePath string
	doc      *document.Node

	// Root schema names
	roots     []string
	rootsFile string

	// Projection configuration (nil means use the Config zero value)
	paths        []string
	metadataKeys []string
	title        string
	description  string
	infoVersion  string
	failOnEmpty  bool

	logger Logger
}

// WithFilePath selects a YAML or JSON specification file as the input.
func WithFilePath(path string) Option {
	return func(cfg *subsetConfig) error {
		if path == "" {
			return fmt.Errorf("file path must not be empty")
		}
		cfg.filePath = path
		return nil
	}
}

// WithDocument selects an already-parsed document as the input.
func WithDocument(doc *document.Node) Option {
	return func(cfg *subsetConfig) error {
		if doc == nil {
			return fmt.Errorf("document must not be nil")
		}
		cfg.doc = doc
		return nil
	}
}

// WithRoots adds root schema names to seed the closure.
func WithRoots(names ...string) Option {
	return func(cfg *subsetConfig) error {
		cfg.roots = append(cfg.roots, names...)
		return nil
	}
}

// WithRootsFile reads root schema names from a file of newline-separated
// names. Blank lines and lines starting with '#' are skipped.
func WithRootsFile(path string) Option {
	return func(cfg *subsetConfig) error {
		if path == "" {
			return fmt.Errorf("roots file path must not be empty")
		}
		cfg.rootsFile = path
		return nil
	}
}

// WithPaths sets the path allow-list to retain verbatim.
func WithPaths(paths ...string) Option {
	return func(cfg *subsetConfig) error {
		cfg.paths = append(cfg.paths, paths...)
		return nil
	}
}

// WithMetadataKeys sets the top-level metadata keys copied through,
// replacing the version-specific defaults.
func WithMetadataKeys(keys ...string) Option {
	return func(cfg *subsetConfig) error {
		if cfg.metadataKeys == nil {
			cfg.metadataKeys = []string{}
		}
		cfg.metadataKeys = append(cfg.metadataKeys, keys...)
		return nil
	}
}

// WithTitle overrides info.title in the output.
func WithTitle(title string) Option {
	return func(cfg *subsetConfig) error {
		cfg.title = title
		return nil
	}
}

// WithDescription overrides info.description in the output.
func WithDescription(description string) Option {
	return func(cfg *subsetConfig) error {
		cfg.description = description
		return nil
	}
}

// WithInfoVersion overrides info.version in the output.
func WithInfoVersion(version string) Option {
	return func(cfg *subsetConfig) error {
		cfg.infoVersion = version
		return nil
	}
}

// WithFailOnEmpty rejects runs that retain no paths and no schemas.
func WithFailOnEmpty(fail bool) Option {
	return func(cfg *subsetConfig) error {
		cfg.failOnEmpty = fail
		return nil
	}
}

// WithLogger installs a logger for diagnostic output.
func WithLogger(logger Logger) Option {
	return func(cfg *subsetConfig) error {
		cfg.logger = logger
		return nil
	}
}

// SubsetWithOptions runs the subset pipeline using functional options:
//
//	result, err := subsetter.SubsetWithOptions(
//		subsetter.WithFilePath("openapi.yaml"),
//		subsetter.WithRoots("Pet"),
//		subsetter.WithPaths("/pets"),
//		subsetter.WithTitle("Pets API"),
//	)
func SubsetWithOptions(opts ...Option) (*SubsetResult, error) {
	cfg := &subsetConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, &oaserrors.ConfigError{Message: "invalid option", Cause: err}
		}
	}

	if cfg.filePath == "" && cfg.doc == nil {
		return nil, &oaserrors.ConfigError{
			Message: "an input is required: use WithFilePath or WithDocument",
		}
	}
	if cfg.filePath != "" && cfg.doc != nil {
		return nil, &oaserrors.ConfigError{
			Message: "WithFilePath and WithDocument are mutually exclusive",
		}
	}

	roots := cfg.roots
	if cfg.rootsFile != "" {
		fromFile, err := ReadRootsFile(cfg.rootsFile)
		if err != nil {
			return nil, err
		}
		roots = append(roots, fromFile...)
	}
	roots = dedupe(roots)

	doc := cfg.doc
	if doc == nil {
		var err error
		doc, err = document.Load(cfg.filePath)
		if err != nil {
			return nil, err
		}
	}

	s := New(Config{
		PathAllowList: cfg.paths,
		MetadataKeys:  cfg.metadataKeys,
		Title:         cfg.title,
		Description:   cfg.description,
		InfoVersion:   cfg.infoVersion,
		FailOnEmpty:   cfg.failOnEmpty,
	})
	if cfg.logger != nil {
		s.SetLogger(cfg.logger)
	}
	return s.Subset(doc, roots)
}

// ReadRootsFile reads a file of newline-separated schema names. Surrounding
// whitespace is trimmed; blank lines and lines starting with '#' are skipped.
func ReadRootsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &oaserrors.ConfigError{
			Option:  "roots-file",
			Message: "cannot read roots file",
			Cause:   err,
		}
	}
	defer func() { _ = f.Close() }()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, &oaserrors.ConfigError{
			Option:  "roots-file",
			Message: "cannot read roots file",
			Cause:   err,
		}
	}
	return names, nil
}

// dedupe removes duplicate names while preserving first-seen order.
func dedupe(names []string) []string {
	if len(names) < 2 {
		return names
	}
	seen := make(map[string]bool, len(names))
	out := names[:0]
	for _, name := range names {
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	return out
}
