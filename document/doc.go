// Package document provides the generic in-memory form of an OpenAPI
// document: an ordered tree of mappings, sequences, and scalars.
//
// The tree is deliberately untyped. The subsetting engine only needs to walk
// arbitrary nesting, recognize $ref entries, and copy subtrees verbatim, so a
// typed OAS model would add nothing but conversion cost. What the tree does
// guarantee is fidelity: mapping key order, sequence element order, and scalar
// styles (literal blocks, quoting) all survive a load/write round trip.
//
// Load and Parse accept YAML or JSON input (JSON being a subset of YAML).
// Nodes marshal back to YAML via the standard yaml.Marshaler interface and to
// JSON with the original key order via MarshalJSON.
package document
