package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasubset/subsetter"
)

type subsetInput struct {
	Spec         specInput `json:"spec"                    jsonschema:"The OAS document to subset"`
	Roots        []string  `json:"roots,omitempty"         jsonschema:"Root schema names seeding the closure"`
	Paths        []string  `json:"paths,omitempty"         jsonschema:"Path keys to retain verbatim (e.g. /pets)"`
	MetadataKeys []string  `json:"metadata_keys,omitempty" jsonschema:"Top-level keys to copy through, replacing the version defaults"`
	Title        string    `json:"title,omitempty"         jsonschema:"Override info.title in the output"`
	Description  string    `json:"description,omitempty"   jsonschema:"Override info.description in the output"`
	InfoVersion  string    `json:"info_version,omitempty"  jsonschema:"Override info.version in the output"`
	FailOnEmpty  *bool     `json:"fail_on_empty,omitempty" jsonschema:"Treat an empty subset as an error (default from OASUBSET_SUBSET_FAIL_ON_EMPTY)"`
	Output       string    `json:"output,omitempty"        jsonschema:"Write the trimmed document to this file instead of returning it inline; .json selects JSON"`
}

type subsetOutput struct {
	Version         string   `json:"version"`
	PathsRetained   int      `json:"paths_retained"`
	SchemasRetained int      `json:"schemas_retained"`
	SchemasVisited  int      `json:"schemas_visited"`
	Closure         []string `json:"closure,omitempty"`
	Warnings        []string `json:"warnings,omitempty"`
	OutputFile      string   `json:"output_file,omitempty"`
	Document        string   `json:"document,omitempty"`
}

func handleSubset(_ context.Context, _ *mcp.CallToolRequest, input subsetInput) (*mcp.CallToolResult, subsetOutput, error) {
	doc, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), subsetOutput{}, nil
	}

	failOnEmpty := cfg.SubsetFailOnEmpty
	if input.FailOnEmpty != nil {
		failOnEmpty = *input.FailOnEmpty
	}

	opts := []subsetter.Option{
		subsetter.WithDocument(doc),
		subsetter.WithRoots(input.Roots...),
		subsetter.WithPaths(input.Paths...),
		subsetter.WithFailOnEmpty(failOnEmpty),
	}
	if input.MetadataKeys != nil {
		opts = append(opts, subsetter.WithMetadataKeys(input.MetadataKeys...))
	}
	if input.Title != "" {
		opts = append(opts, subsetter.WithTitle(input.Title))
	}
	if input.Description != "" {
		opts = append(opts, subsetter.WithDescription(input.Description))
	}
	if input.InfoVersion != "" {
		opts = append(opts, subsetter.WithInfoVersion(input.InfoVersion))
	}

	result, err := subsetter.SubsetWithOptions(opts...)
	if err != nil {
		return errResult(err), subsetOutput{}, nil
	}

	output := subsetOutput{
		Version:         result.Version.String(),
		PathsRetained:   result.Stats.PathsRetained,
		SchemasRetained: result.Stats.SchemasRetained,
		SchemasVisited:  result.Stats.SchemasVisited,
		Closure:         result.Closure,
		Warnings:        result.WarningStrings(),
	}

	if input.Output != "" {
		s := subsetter.New(subsetter.DefaultConfig())
		if err := s.WriteResult(result, input.Output); err != nil {
			return errResult(err), subsetOutput{}, nil
		}
		output.OutputFile = input.Output
		return nil, output, nil
	}

	data, err := yaml.Marshal(result.Document)
	if err != nil {
		return errResult(err), subsetOutput{}, nil
	}
	output.Document = string(data)
	return nil, output, nil
}
