package main

import (
	"fmt"
	"os"

	"github.com/erraggy/oasubset"
	"github.com/erraggy/oasubset/cmd/oasubset/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("oasubset v%s\n", oasubset.Version())
	case "help", "-h", "--help":
		printUsage()
	case "subset":
		if err := commands.HandleSubset(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "closure":
		if err := commands.HandleClosure(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`oasubset - OpenAPI Specification Subsetting

Usage:
  oasubset <command> [options]

Commands:
  subset      Trim a specification down to chosen schemas and paths
  closure     Show the transitive $ref closure for chosen root schemas
  mcp         Run as an MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  oasubset subset --roots Pet,Order --paths /pets openapi.yaml
  oasubset subset --roots Pet -o trimmed.json openapi.yaml
  oasubset closure --roots Order openapi.yaml
  oasubset mcp

Run 'oasubset <command> --help' for more information on a command.`)
}
