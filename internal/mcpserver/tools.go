package mcpserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/BartSoj/apicheck/checker"
	"github.com/BartSoj/apicheck/resolver"
)

type resolveInput struct {
	URL    string `json:"url"    jsonschema:"Absolute http(s) URL of the request"`
	Method string `json:"method" jsonschema:"HTTP method, case-insensitive"`
}

type resolveOutput struct {
	Matched      bool   `json:"matched"`
	Reason       string `json:"reason,omitempty"`
	Method       string `json:"method,omitempty"`
	PathTemplate string `json:"path_template,omitempty"`
	OperationID  string `json:"operation_id,omitempty"`
	Contract     string `json:"contract,omitempty"`
}

func (s *server) handleResolve(_ context.Context, _ *mcp.CallToolRequest, input resolveInput) (*mcp.CallToolResult, resolveOutput, error) {
	match, err := s.resolver.Resolve(input.URL, input.Method)
	if err != nil {
		var nf *resolver.NotFoundError
		if errors.As(err, &nf) {
			return nil, resolveOutput{Reason: string(nf.Reason)}, nil
		}
		return errResult(err), resolveOutput{}, nil
	}
	return nil, resolveOutput{
		Matched:      true,
		Method:       match.Method,
		PathTemplate: match.PathTemplate,
		OperationID:  match.Operation.OperationID,
		Contract:     match.Contract.SourcePath,
	}, nil
}

type checkInput struct {
	URL    string            `json:"url"             jsonschema:"Absolute http(s) URL of the request"`
	Method string            `json:"method"          jsonschema:"HTTP method, case-insensitive"`
	Query  map[string]string `json:"query,omitempty" jsonschema:"Query parameters as name to value"`
	Body   string            `json:"body,omitempty"  jsonschema:"Request body; empty means absent"`
}

type checkViolation struct {
	Kind  string `json:"kind"`
	Field string `json:"field,omitempty"`
}

type checkOutput struct {
	Matched      bool             `json:"matched"`
	Reason       string           `json:"reason,omitempty"`
	PathTemplate string           `json:"path_template,omitempty"`
	Valid        bool             `json:"valid"`
	Violations   []checkViolation `json:"violations,omitempty"`
}

func (s *server) handleCheck(_ context.Context, _ *mcp.CallToolRequest, input checkInput) (*mcp.CallToolResult, checkOutput, error) {
	match, err := s.resolver.Resolve(input.URL, input.Method)
	if err != nil {
		var nf *resolver.NotFoundError
		if errors.As(err, &nf) {
			return nil, checkOutput{Reason: string(nf.Reason)}, nil
		}
		return errResult(err), checkOutput{}, nil
	}

	result := checker.Validate(match, input.Query, input.Body)
	out := checkOutput{
		Matched:      true,
		PathTemplate: match.PathTemplate,
		Valid:        result.Valid,
	}
	for _, verr := range result.Errors {
		out.Violations = append(out.Violations, checkViolation{
			Kind:  string(verr.Kind),
			Field: verr.Field,
		})
	}
	return nil, out, nil
}

// errResult wraps an unexpected error as a tool error result.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
