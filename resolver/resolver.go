package resolver

import (
	"fmt"
	"sort"
	"strings"

	"github.com/erraggy/oasubset/document"
	"github.com/erraggy/oasubset/oaserrors"
)

// RefKey is the mapping key that marks a schema reference.
const RefKey = "$ref"

// NameSet is a set of schema names.
type NameSet map[string]struct{}

// NewNameSet returns a set containing the given names.
func NewNameSet(names ...string) NameSet {
	s := make(NameSet, len(names))
	for _, name := range names {
		s[name] = struct{}{}
	}
	return s
}

// Add inserts name and reports whether it was newly added.
func (s NameSet) Add(name string) bool {
	if _, ok := s[name]; ok {
		return false
	}
	s[name] = struct{}{}
	return true
}

// Has reports whether name is in the set.
func (s NameSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Sorted returns the members in lexicographic order. Sets carry no iteration
// order of their own; callers that need reproducible output sort first.
func (s NameSet) Sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TargetName returns the schema name denoted by a reference value: its
// trailing slash-delimited segment. A value without a slash names itself.
func TargetName(ref string) string {
	if i := strings.LastIndexByte(ref, '/'); i >= 0 {
		return ref[i+1:]
	}
	return ref
}

// FindReferences scans a definition subtree and returns every distinct
// schema name it references. Mapping values and sequence elements are
// recursed into regardless of key, since references nest arbitrarily deep
// (properties, items, oneOf, additionalProperties, ...). Duplicate
// references collapse naturally into the set.
//
// The only failure mode is structural: a $ref whose value is not a scalar
// string yields a *oaserrors.ReferenceError naming the offending node.
func FindReferences(node *document.Node) (NameSet, error) {
	refs := make(NameSet)
	if err := scanRefs(node, "", refs); err != nil {
		return nil, err
	}
	return refs, nil
}

// scanRefs walks the subtree rooted at node, accumulating referenced names.
// path locates node within the document for error reporting.
func scanRefs(node *document.Node, path string, refs NameSet) error {
	if node == nil {
		return nil
	}
	switch node.Kind() {
	case document.KindScalar:
		return nil

	case document.KindSequence:
		for i, item := range node.Items() {
			if err := scanRefs(item, fmt.Sprintf("%s[%d]", path, i), refs); err != nil {
				return err
			}
		}
		return nil

	case document.KindMapping:
		for _, key := range node.Keys() {
			child, _ := node.Get(key)
			childPath := joinPath(path, key)
			if key == RefKey {
				value, ok := child.StringValue()
				if !ok {
					return &oaserrors.ReferenceError{
						NodePath: childPath,
						Message:  "$ref value is not a string",
					}
				}
				if name := TargetName(value); name != "" {
					refs.Add(name)
				}
				continue
			}
			if err := scanRefs(child, childPath, refs); err != nil {
				return err
			}
		}
		return nil

	default:
		return nil
	}
}

func joinPath(base, segment string) string {
	if base == "" {
		return segment
	}
	return base + "." + segment
}

// ClosureResult holds the outcome of a closure computation.
type ClosureResult struct {
	// Names is the visited set: every name reachable from the roots,
	// including names that turned out to have no definition.
	Names NameSet
	// MissingRoots are caller-supplied roots absent from the catalog, sorted.
	MissingRoots []string
	// DanglingRefs are discovered names absent from the catalog, sorted.
	// A name that is both a root and discovered counts as a missing root.
	DanglingRefs []string
}

// Closure computes the set of schema names transitively reachable from roots
// via reference edges in definitions (a mapping from schema name to
// definition subtree; nil is treated as empty).
//
// Expansion is breadth-first with the visited set seeded from roots, so
// cyclic reference graphs terminate: each name is expanded at most once.
// Names without a definition are kept in the visited set but never expanded;
// they degrade to missing-root or dangling-reference entries rather than
// aborting the resolution. The only error is a structurally malformed $ref.
func Closure(definitions *document.Node, roots []string) (*ClosureResult, error) {
	visited := make(NameSet, len(roots))
	queue := make([]string, 0, len(roots))
	for _, name := range roots {
		if visited.Add(name) {
			queue = append(queue, name)
		}
	}
	rootSet := NewNameSet(roots...)

	var missing, dangling []string
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]

		var def *document.Node
		if definitions != nil {
			def, _ = definitions.Get(name)
		}
		if def == nil {
			if rootSet.Has(name) {
				missing = append(missing, name)
			} else {
				dangling = append(dangling, name)
			}
			continue
		}

		refs := make(NameSet)
		if err := scanRefs(def, name, refs); err != nil {
			return nil, err
		}
		// Sorted expansion keeps the queue order, and with it the order of
		// missing/dangling reporting, independent of map iteration.
		for _, ref := range refs.Sorted() {
			if visited.Add(ref) {
				queue = append(queue, ref)
			}
		}
	}

	sort.Strings(missing)
	sort.Strings(dangling)
	return &ClosureResult{
		Names:        visited,
		MissingRoots: missing,
		DanglingRefs: dangling,
	}, nil
}
