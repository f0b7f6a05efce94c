package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasubset/document"
	"github.com/erraggy/oasubset/resolver"
)

type closureInput struct {
	Spec  specInput `json:"spec"            jsonschema:"The OAS document to analyze"`
	Roots []string  `json:"roots,omitempty" jsonschema:"Root schema names seeding the closure"`
}

type closureOutput struct {
	Version      string   `json:"version"`
	Schemas      []string `json:"schemas,omitempty"`
	MissingRoots []string `json:"missing_roots,omitempty"`
	DanglingRefs []string `json:"dangling_refs,omitempty"`
}

func handleClosure(_ context.Context, _ *mcp.CallToolRequest, input closureInput) (*mcp.CallToolResult, closureOutput, error) {
	doc, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), closureOutput{}, nil
	}

	version, err := document.DetectVersion(doc)
	if err != nil {
		return errResult(err), closureOutput{}, nil
	}

	definitions, _ := document.SchemaDefinitions(doc, version)
	closure, err := resolver.Closure(definitions, input.Roots)
	if err != nil {
		return errResult(err), closureOutput{}, nil
	}

	return nil, closureOutput{
		Version:      version.String(),
		Schemas:      closure.Names.Sorted(),
		MissingRoots: closure.MissingRoots,
		DanglingRefs: closure.DanglingRefs,
	}, nil
}
