package resolver

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/BartSoj/apicheck/contract"
	"github.com/BartSoj/apicheck/internal/httputil"
)

// NotFoundReason distinguishes why a request could not be resolved.
type NotFoundReason string

// Resolution failure reasons.
const (
	// ReasonInvalidURL means the request URL did not parse as an absolute
	// http or https URL.
	ReasonInvalidURL NotFoundReason = "invalid_url"

	// ReasonNoContractForHost means no loaded contract advertises the
	// request's host.
	ReasonNoContractForHost NotFoundReason = "no_contract_for_host"

	// ReasonNoEndpoint means contracts exist for the host but none declares
	// a matching path template and method.
	ReasonNoEndpoint NotFoundReason = "no_endpoint"
)

// NotFoundError is the structured outcome of a failed resolution. It is an
// ordinary error value; use errors.As to recover the Reason.
type NotFoundError struct {
	URL    string
	Method string
	Reason NotFoundReason
}

// Error implements error.
func (e *NotFoundError) Error() string {
	switch e.Reason {
	case ReasonInvalidURL:
		return fmt.Sprintf("resolve %s %s: not a valid absolute URL", e.Method, e.URL)
	case ReasonNoContractForHost:
		return fmt.Sprintf("resolve %s %s: no contract for host", e.Method, e.URL)
	default:
		return fmt.Sprintf("resolve %s %s: no matching endpoint", e.Method, e.URL)
	}
}

// EndpointMatch is the result of successfully resolving a request to a
// specific contract operation. The Operation and Contract fields reference
// the owning contract's immutable state; callers must not modify them.
type EndpointMatch struct {
	// URL is the original request URL.
	URL string

	// Method is the upper-cased request method.
	Method string

	// PathTemplate is the contract path template that matched.
	PathTemplate string

	// Operation is the matched operation definition.
	Operation *contract.Operation

	// Contract is the contract owning the matched operation.
	Contract *contract.Contract

	// PathParams holds the values bound to the template's placeholders.
	PathParams map[string]string
}

// Resolver resolves (url, method) pairs against a host index.
type Resolver struct {
	index *HostIndex
}

// New creates a Resolver over the given index. The index is aliased, not
// copied; it must not be mutated after construction.
func New(index *HostIndex) *Resolver {
	return &Resolver{index: index}
}

// Resolve finds the first contract operation matching the given request.
//
// The search is deterministic: candidate contracts are visited in load
// order, templates in declaration order, and the first contract/template/
// method combination wins. Failures return a *NotFoundError carrying one of
// the NotFoundReason values; no other error type is produced.
func (r *Resolver) Resolve(rawURL, method string) (*EndpointMatch, error) {
	u, err := url.Parse(rawURL)
	if err != nil || !u.IsAbs() || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, &NotFoundError{URL: rawURL, Method: method, Reason: ReasonInvalidURL}
	}

	candidates := r.index.Lookup(u.Hostname())
	if len(candidates) == 0 {
		return nil, &NotFoundError{URL: rawURL, Method: method, Reason: ReasonNoContractForHost}
	}

	canonical, ok := httputil.CanonicalMethod(method)
	if !ok {
		return nil, &NotFoundError{URL: rawURL, Method: method, Reason: ReasonNoEndpoint}
	}

	requestPath := u.Path
	if requestPath == "" {
		requestPath = "/"
	}

	for _, c := range candidates {
		path := stripBasePath(requestPath, c.BasePath())
		for _, template := range c.Templates {
			if !MatchPath(path, template) {
				continue
			}
			op := c.PathItem(template).Operation(canonical)
			if op == nil {
				continue
			}
			return &EndpointMatch{
				URL:          rawURL,
				Method:       strings.ToUpper(canonical),
				PathTemplate: template,
				Operation:    op,
				Contract:     c,
				PathParams:   PathParams(path, template),
			}, nil
		}
	}

	return nil, &NotFoundError{URL: rawURL, Method: method, Reason: ReasonNoEndpoint}
}

// stripBasePath removes a contract's base path prefix from the request path
// when present. Only the first declared server contributes a prefix; a path
// that does not start with it is used unmodified. The prefix must end on a
// segment boundary, so base /v1 never strips from /v1xyz.
func stripBasePath(path, base string) string {
	if base == "" || !strings.HasPrefix(path, base) {
		return path
	}
	stripped := path[len(base):]
	if stripped == "" {
		return "/"
	}
	if stripped[0] != '/' {
		return path
	}
	return stripped
}
