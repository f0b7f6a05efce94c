// Package projector assembles a trimmed OpenAPI document from an original
// document and a schema-name closure.
//
// The projector copies three groups of content, in this order: top-level
// metadata (the version field, info with caller overrides, and an allow-list
// of pass-through keys such as servers), the paths named by the path
// allow-list, and the schema definitions named by the closure. Every copy is
// by value: the output shares no nodes with the input, so callers may mutate
// either without affecting the other.
//
// Output is deterministic. Paths appear in allow-list order and schema
// definitions in lexicographic name order, so re-projecting identical inputs
// yields byte-identical serialized output.
//
// Projection is total over well-formed inputs: unknown allow-list paths and
// closure names without definitions are skipped silently (the resolver
// reports them as warnings). The one optional failure is the empty-result
// policy, which rejects projections that retained nothing.
package projector
