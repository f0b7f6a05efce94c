package projector

import (
	"github.com/erraggy/oasubset/document"
	"github.com/erraggy/oasubset/oaserrors"
	"github.com/erraggy/oasubset/resolver"
)

// Config controls what the projector retains and how it rewrites metadata.
type Config struct {
	// PathAllowList names the path keys to copy verbatim when present.
	// Output preserves allow-list order; absent keys are skipped.
	PathAllowList []string

	// MetadataKeys names additional top-level keys to copy verbatim when
	// present, e.g. "servers". Nil selects DefaultMetadataKeys for the
	// document's version; an empty non-nil slice disables pass-through.
	MetadataKeys []string

	// Title replaces info.title when non-empty. The trimmed document usually
	// needs a new title distinguishing it from its source.
	Title string

	// Description replaces info.description when non-empty.
	Description string

	// InfoVersion replaces info.version when non-empty; otherwise the
	// original's info.version is kept.
	InfoVersion string

	// FailOnEmpty rejects projections whose paths and schema sections both
	// came out empty, which normally indicates misconfigured roots or paths.
	FailOnEmpty bool
}

// DefaultMetadataKeys returns the top-level keys copied through by default:
// the server/host description fields that keep a trimmed document usable.
func DefaultMetadataKeys(v document.OASVersion) []string {
	if v == document.OASVersion2 {
		return []string{"host", "basePath", "schemes", "consumes", "produces"}
	}
	return []string{"servers"}
}

// Project builds the trimmed document from original and the closure of
// schema names. See the package documentation for ordering and copy
// semantics. The returned document always contains a paths section and a
// schema section, possibly empty, in the location matching the original's
// OAS version.
func Project(original *document.Node, closure resolver.NameSet, cfg Config) (*document.Node, error) {
	version, err := document.DetectVersion(original)
	if err != nil {
		return nil, err
	}

	out := document.NewMapping()

	if versionNode, ok := original.Get(version.VersionKey()); ok {
		out.Set(version.VersionKey(), versionNode.Clone())
	}
	out.Set("info", projectInfo(original, cfg))

	metadataKeys := cfg.MetadataKeys
	if metadataKeys == nil {
		metadataKeys = DefaultMetadataKeys(version)
	}
	for _, key := range metadataKeys {
		if node, ok := original.Get(key); ok {
			out.Set(key, node.Clone())
		}
	}

	outPaths := document.NewMapping()
	if origPaths, ok := document.Paths(original); ok {
		for _, key := range cfg.PathAllowList {
			if subtree, ok := origPaths.Get(key); ok {
				outPaths.Set(key, subtree.Clone())
			}
		}
	}
	out.Set("paths", outPaths)

	outDefs := document.NewMapping()
	if defs, ok := document.SchemaDefinitions(original, version); ok {
		for _, name := range closure.Sorted() {
			if def, ok := defs.Get(name); ok {
				outDefs.Set(name, def.Clone())
			}
		}
	}
	if version == document.OASVersion2 {
		out.Set("definitions", outDefs)
	} else {
		components := document.NewMapping()
		components.Set("schemas", outDefs)
		out.Set("components", components)
	}

	if cfg.FailOnEmpty && outPaths.Len() == 0 && outDefs.Len() == 0 {
		return nil, &oaserrors.EmptyResultError{
			Roots: closure.Sorted(),
			Paths: cfg.PathAllowList,
		}
	}

	return out, nil
}

// projectInfo copies the original info mapping and applies the caller's
// metadata overrides. info.version defaults to the original's value.
func projectInfo(original *document.Node, cfg Config) *document.Node {
	var info *document.Node
	if orig, ok := original.Get("info"); ok && orig.Kind() == document.KindMapping {
		info = orig.Clone()
	} else {
		info = document.NewMapping()
	}
	if cfg.Title != "" {
		info.Set("title", document.NewString(cfg.Title))
	}
	if cfg.Description != "" {
		info.Set("description", document.NewString(cfg.Description))
	}
	if cfg.InfoVersion != "" {
		info.Set("version", document.NewString(cfg.InfoVersion))
	}
	return info
}
