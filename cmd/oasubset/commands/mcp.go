package commands

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/oasubset/internal/mcpserver"
)

// HandleMCP runs the MCP server over stdio until the client disconnects
// or the process receives an interrupt.
func HandleMCP(args []string) error {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oasubset mcp\n\n")
		Writef(fs.Output(), "Run as an MCP (Model Context Protocol) server over stdio, exposing\n")
		Writef(fs.Output(), "the subset and closure tools to MCP clients.\n\n")
		Writef(fs.Output(), "Defaults are configured via OASUBSET_* environment variables; see the\n")
		Writef(fs.Output(), "server instructions reported to the client for the full list.\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}
