// Package subsetter is the high-level pipeline over resolver and projector:
// detect the document's OAS version, locate its schema catalog, compute the
// reference closure from the caller's roots, and project the trimmed
// document.
//
// The pipeline accumulates non-fatal findings (missing roots, dangling
// references) as structured warnings on the result instead of aborting;
// only structural errors — an unparseable document or a malformed $ref —
// fail the run. Each invocation constructs fresh state, so a Subsetter may
// be reused across documents sequentially.
//
// Use New + Subset when the caller already holds a document tree, or
// SubsetWithOptions for the functional-options form that also covers file
// loading and roots files:
//
//	result, err := subsetter.SubsetWithOptions(
//		subsetter.WithFilePath("openapi.yaml"),
//		subsetter.WithRootsFile("roots.txt"),
//		subsetter.WithPaths("/chat/completions"),
//	)
package subsetter
