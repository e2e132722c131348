package contract

import (
	"sort"

	"github.com/BartSoj/apicheck/internal/httputil"
)

// Parameter locations.
const (
	InQuery  = "query"
	InHeader = "header"
	InPath   = "path"
)

// Server is one declared base server of a contract. URL is the raw declared
// value; Host and BasePath are extracted at load time so consumers never
// re-parse the URL.
type Server struct {
	URL      string
	Host     string
	BasePath string
}

// Parameter describes a single operation parameter.
type Parameter struct {
	Name     string
	In       string // one of InQuery, InHeader, InPath
	Required bool
	Schema   *Schema
}

// RequestBody describes the declared request body of an operation.
// Content maps a media type string to the body schema for that type.
type RequestBody struct {
	Required bool
	Content  map[string]*Schema
}

// Schema returns the body schema declared for the given media type, or nil
// when the media type is not declared.
func (rb *RequestBody) Schema(mediaType string) *Schema {
	if rb == nil || rb.Content == nil {
		return nil
	}
	return rb.Content[mediaType]
}

// JSONSchema returns the schema declared for a JSON media type. An exact
// "application/json" entry wins; otherwise the first JSON-typed entry in
// sorted key order is used, so declarations with parameters such as
// "application/json; charset=utf-8" still resolve.
func (rb *RequestBody) JSONSchema() *Schema {
	if rb == nil || rb.Content == nil {
		return nil
	}
	if s, ok := rb.Content[httputil.JSONMediaType]; ok {
		return s
	}
	keys := make([]string, 0, len(rb.Content))
	for k := range rb.Content {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if httputil.IsJSONMediaType(k) {
			return rb.Content[k]
		}
	}
	return nil
}

// Operation is the declared shape for one method on one path template.
type Operation struct {
	OperationID string
	Summary     string
	Parameters  []*Parameter
	RequestBody *RequestBody
}

// ParametersIn returns the operation's parameters declared at the given
// location, preserving declaration order.
func (op *Operation) ParametersIn(location string) []*Parameter {
	if op == nil {
		return nil
	}
	var out []*Parameter
	for _, p := range op.Parameters {
		if p != nil && p.In == location {
			out = append(out, p)
		}
	}
	return out
}

// ParameterNamed returns the operation's parameter with the given name and
// location, or nil when not declared.
func (op *Operation) ParameterNamed(location, name string) *Parameter {
	if op == nil {
		return nil
	}
	for _, p := range op.Parameters {
		if p != nil && p.In == location && p.Name == name {
			return p
		}
	}
	return nil
}

// PathItem maps the fixed set of method tokens to their operations.
// A nil field means the method is not declared for this path.
type PathItem struct {
	Get     *Operation
	Post    *Operation
	Put     *Operation
	Delete  *Operation
	Patch   *Operation
	Options *Operation
	Head    *Operation
}

// Operation returns the operation for a canonical lower-case method token,
// or nil when the method is not declared.
func (pi *PathItem) Operation(method string) *Operation {
	if pi == nil {
		return nil
	}
	switch method {
	case httputil.MethodGet:
		return pi.Get
	case httputil.MethodPost:
		return pi.Post
	case httputil.MethodPut:
		return pi.Put
	case httputil.MethodDelete:
		return pi.Delete
	case httputil.MethodPatch:
		return pi.Patch
	case httputil.MethodOptions:
		return pi.Options
	case httputil.MethodHead:
		return pi.Head
	default:
		return nil
	}
}

// Methods returns the method tokens this path item declares.
func (pi *PathItem) Methods() []string {
	var out []string
	for _, m := range httputil.Methods {
		if pi.Operation(m) != nil {
			out = append(out, m)
		}
	}
	return out
}

// Contract is one loaded API description. It is immutable after Load
// returns; callers must not modify any of its fields.
type Contract struct {
	// SourcePath is the file the contract was loaded from.
	SourcePath string

	// Title and APIVersion come from the document's info block.
	Title      string
	APIVersion string

	// Servers are the declared base servers in document order. Prefix
	// stripping during resolution uses only the first entry.
	Servers []*Server

	// Templates holds the path templates in declaration order.
	Templates []string

	// PathItems maps a path template to its path item.
	PathItems map[string]*PathItem
}

// PathItem returns the path item for the given template, or nil when the
// contract does not declare it.
func (c *Contract) PathItem(template string) *PathItem {
	if c == nil {
		return nil
	}
	return c.PathItems[template]
}

// Hosts returns the distinct hosts this contract's servers advertise,
// preserving first-seen order.
func (c *Contract) Hosts() []string {
	var out []string
	seen := make(map[string]bool, len(c.Servers))
	for _, s := range c.Servers {
		if s.Host == "" || seen[s.Host] {
			continue
		}
		seen[s.Host] = true
		out = append(out, s.Host)
	}
	return out
}

// BasePath returns the base path prefix of the contract's first server, or
// "" when no server declares one.
func (c *Contract) BasePath() string {
	if c == nil || len(c.Servers) == 0 {
		return ""
	}
	return c.Servers[0].BasePath
}
