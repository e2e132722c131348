// Package request parses a free-form request description into the
// structured form the core packages consume.
//
// The accepted format is a minimal HTTP-like sketch: a request line of
// "METHOD URL" (method optional, defaulting to GET), zero or more
// "Name: value" header lines, then a blank line and an optional body.
//
//	POST https://api.example.com/v1/albums?notify=true
//	X-Tenant: blue
//
//	{"name": "Kind of Blue"}
package request

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/BartSoj/apicheck/internal/httputil"
)

// Request is a structured request description. Query holds the first value
// of each query parameter from the URL; Body is empty when absent.
type Request struct {
	URL     string
	Method  string
	Query   map[string]string
	Headers map[string]string
	Body    string
}

// Parse interprets a free-form request description. The method token must
// be one of the supported HTTP methods; the URL is kept verbatim for the
// resolver, which performs its own validation.
func Parse(text string) (*Request, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	i := 0
	for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
		i++
	}
	if i == len(lines) {
		return nil, fmt.Errorf("empty request description")
	}

	req, err := parseRequestLine(strings.TrimSpace(lines[i]))
	if err != nil {
		return nil, err
	}
	i++

	for ; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			i++
			break
		}
		name, value, found := strings.Cut(line, ":")
		if !found {
			return nil, fmt.Errorf("malformed header line %q", line)
		}
		if req.Headers == nil {
			req.Headers = make(map[string]string)
		}
		req.Headers[strings.TrimSpace(name)] = strings.TrimSpace(value)
	}

	if i < len(lines) {
		req.Body = strings.TrimSpace(strings.Join(lines[i:], "\n"))
	}

	return req, nil
}

// parseRequestLine splits "METHOD URL" or a bare URL into method and URL,
// and extracts the query map.
func parseRequestLine(line string) (*Request, error) {
	req := &Request{Method: "GET"}

	fields := strings.Fields(line)
	switch len(fields) {
	case 1:
		req.URL = fields[0]
	case 2:
		canonical, ok := httputil.CanonicalMethod(fields[0])
		if !ok {
			return nil, fmt.Errorf("unsupported method %q", fields[0])
		}
		req.Method = strings.ToUpper(canonical)
		req.URL = fields[1]
	default:
		return nil, fmt.Errorf("malformed request line %q", line)
	}

	if u, err := url.Parse(req.URL); err == nil {
		values := u.Query()
		if len(values) > 0 {
			req.Query = make(map[string]string, len(values))
			for name := range values {
				req.Query[name] = values.Get(name)
			}
		}
	}

	return req, nil
}
