// Package resolver discovers schema references and computes their transitive
// closure.
//
// A reference is a mapping entry whose key is "$ref" and whose value is a
// scalar string; the target schema name is the trailing slash-delimited
// segment of that string (e.g. "#/components/schemas/Pet" names "Pet"). The
// resolver trusts only the trailing segment and does not validate the rest
// of the path, so OAS 2.0 "#/definitions/..." and external-file references
// resolve the same way.
//
// Closure performs breadth-first expansion over the schema catalog with a
// visited set, so mutually referential and self-referential schemas (common
// and valid in real specifications) terminate instead of looping. Names that
// have no definition in the catalog stay in the result set but are reported
// as missing roots or dangling references for the caller to surface.
//
// Both operations are pure: they read the document tree and never mutate it.
package resolver
