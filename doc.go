// Package oasubset computes minimal, self-contained subsets of OpenAPI
// Specification (OAS) documents.
//
// Given a parsed OAS document and a set of root schema names, oasubset
// computes the transitive closure of schema definitions reachable from the
// roots via $ref edges, then projects a new document containing only an
// allow-list of paths and the schema closure. Typical use is carving a
// single endpoint (plus everything its request and response bodies depend
// on) out of a large upstream specification.
//
// # Overview
//
// The library consists of four primary packages:
//
//   - document: ordered, format-agnostic document tree (load, write, copy)
//   - resolver: $ref discovery and cycle-safe transitive closure
//   - projector: assembly of the trimmed document from a closure
//   - subsetter: the high-level pipeline tying the three together
//
// # Quick Start
//
// Subset a specification down to one endpoint and its schema closure:
//
//	import "github.com/erraggy/oasubset/subsetter"
//
//	result, err := subsetter.SubsetWithOptions(
//		subsetter.WithFilePath("openapi.yaml"),
//		subsetter.WithRoots("CreateChatCompletionRequest", "CreateChatCompletionResponse"),
//		subsetter.WithPaths("/chat/completions"),
//		subsetter.WithTitle("Chat Completions API"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("retained %d paths, %d schemas\n",
//		result.Stats.PathsRetained, result.Stats.SchemasRetained)
//	err = subsetter.New(subsetter.DefaultConfig()).WriteResult(result, "subset.yaml")
//
// Compute just the closure of reachable schema names:
//
//	import (
//		"github.com/erraggy/oasubset/document"
//		"github.com/erraggy/oasubset/resolver"
//	)
//
//	doc, _ := document.Load("openapi.yaml")
//	version, _ := document.DetectVersion(doc)
//	defs, _ := document.SchemaDefinitions(doc, version)
//	closure, err := resolver.Closure(defs, []string{"Pet"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, name := range closure.Names.Sorted() {
//		fmt.Println(name)
//	}
//
// # Command Line
//
// The oasubset command exposes the pipeline:
//
//	oasubset subset -roots-file roots.txt -paths /chat/completions -o subset.yaml openapi.yaml
//	oasubset closure -roots Pet,Order openapi.yaml
//	oasubset mcp
//
// # Supported Versions
//
// Both OAS 2.0 (schema catalog under "definitions") and OAS 3.x (catalog
// under "components.schemas") documents are handled; the version is detected
// from the document's swagger/openapi field.
//
// oasubset performs no validation of the input against any OAS standard and
// no network I/O; it is a pure document transformation.
package oasubset
