package main

import (
	"fmt"
	"os"

	apicheck "github.com/BartSoj/apicheck"
	"github.com/BartSoj/apicheck/cmd/apicheck/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Println(apicheck.BuildInfo())
	case "help", "-h", "--help":
		printUsage()
	case "contracts":
		if err := commands.HandleContracts(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "resolve":
		if err := commands.HandleResolve(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "check":
		if err := commands.HandleCheck(os.Args[2:]); err != nil {
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
	fmt.Println(`apicheck - API Contract Checking Tools

Usage:
  apicheck <command> [options]

Commands:
  contracts   Load a contract directory and list what was loaded
  resolve     Resolve a URL and method to a contract endpoint
  check       Validate a request description against the contracts
  mcp         Serve resolution and validation as MCP tools over stdio
  version     Show version information
  help        Show this help message

Examples:
  apicheck contracts ./contracts
  apicheck contracts -format json ./contracts
  apicheck resolve -dir ./contracts -method POST https://api.example.com/v1/albums
  apicheck check -dir ./contracts request.txt
  echo 'GET https://api.example.com/v1/albums' | apicheck check -dir ./contracts -
  apicheck mcp -dir ./contracts

Run 'apicheck <command> --help' for more information on a command.`)
}
