// Package mcpserver implements an MCP (Model Context Protocol) server that
// exposes apicheck's resolution and validation as MCP tools over stdio.
package mcpserver

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	apicheck "github.com/BartSoj/apicheck"
	"github.com/BartSoj/apicheck/contract"
	"github.com/BartSoj/apicheck/resolver"
)

// ContractsDirEnv names the environment variable consulted when no
// contracts directory is passed explicitly.
const ContractsDirEnv = "APICHECK_CONTRACTS_DIR"

const serverInstructions = `apicheck MCP server: resolves HTTP requests against a directory of API contracts and validates their shape before any call is made.

Contracts are loaded once at startup from the directory passed on the command line or set in APICHECK_CONTRACTS_DIR. Restart the server to pick up contract changes.

Tools:
- resolve_endpoint: map a (url, method) pair to the contract operation serving it
- check_request: resolve and then validate query parameters and body against the matched operation`

// server holds the contract set shared read-only by all tool calls.
type server struct {
	contracts []*contract.Contract
	resolver  *resolver.Resolver
}

// newServer builds the shared tool state from already-loaded contracts.
func newServer(contracts []*contract.Contract) *server {
	return &server{
		contracts: contracts,
		resolver:  resolver.New(resolver.BuildHostIndex(contracts)),
	}
}

// Run loads contracts and serves MCP over stdio until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context, contractsDir string) error {
	if contractsDir == "" {
		contractsDir = os.Getenv(ContractsDirEnv)
	}
	if contractsDir == "" {
		return fmt.Errorf("no contracts directory: pass one or set %s", ContractsDirEnv)
	}

	// Skip warnings go to stderr; stdout carries the MCP transport.
	logger := contract.NewSlogAdapter(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	contracts, err := contract.NewStore(contract.WithLogger(logger)).Load(contractsDir)
	if err != nil {
		return err
	}

	s := newServer(contracts)
	srv := mcp.NewServer(
		&mcp.Implementation{Name: "apicheck", Version: apicheck.Version()},
		&mcp.ServerOptions{Instructions: serverInstructions},
	)
	s.registerTools(srv)
	return srv.Run(ctx, &mcp.StdioTransport{})
}

func (s *server) registerTools(srv *mcp.Server) {
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "resolve_endpoint",
		Description: "Resolve a (url, method) pair against the loaded contracts. Returns the matched path template and operation, or a machine-readable not-found reason (invalid_url, no_contract_for_host, no_endpoint).",
	}, s.handleResolve)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "check_request",
		Description: "Resolve a request and validate its query parameters and body against the matched operation. Returns the complete accumulated list of violations; validation never stops at the first problem.",
	}, s.handleCheck)
}
