package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/BartSoj/apicheck/internal/mcpserver"
)

type mcpFlags struct {
	dir string
}

func setupMCPFlags() (*flag.FlagSet, *mcpFlags) {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	flags := &mcpFlags{}

	fs.StringVar(&flags.dir, "dir", "", "contract directory (defaults to $"+mcpserver.ContractsDirEnv+")")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: apicheck mcp [flags]\n\n")
		_, _ = fmt.Fprintf(output, "Serve resolution and validation as MCP tools over stdio.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
	}
	return fs, flags
}

// HandleMCP implements the mcp command.
func HandleMCP(args []string) error {
	fs, flags := setupMCPFlags()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp takes no positional arguments")
	}
	return mcpserver.Run(context.Background(), flags.dir)
}
