// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes oasubset capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasubset"
)

const serverInstructions = `oasubset MCP server — trims OpenAPI specs down to a chosen set of schemas and paths.

Tools:
- subset: compute the transitive $ref closure from root schema names and emit a trimmed, standalone document
- closure: compute just the closure (retained schema names plus missing roots and dangling references) without building a document

Configuration: All defaults are configurable via OASUBSET_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- OASUBSET_MAX_INLINE_SIZE (default: 4194304) — max byte size for inline spec content
- OASUBSET_SUBSET_FAIL_ON_EMPTY (default: false) — make empty subsets an error by default`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "oasubset", Version: oasubset.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "subset",
		Description: "Subset an OpenAPI Specification document. Computes the transitive $ref closure from the given root schema names, keeps only those schemas plus the allow-listed paths and top-level metadata, and returns (or writes) the trimmed document. Missing roots and dangling references are reported as warnings, not errors. Use output to write to a file instead of returning inline; a .json extension selects JSON output.",
	}, handleSubset)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "closure",
		Description: "Compute the transitive $ref closure over an OpenAPI Specification document's schema catalog without building a trimmed document. Returns the retained schema names (sorted), roots with no definition, and referenced names with no definition. Useful for previewing what a subset would keep.",
	}, handleClosure)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
