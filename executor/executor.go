// Package executor performs the network call for a request that already
// passed contract validation. It is the only blocking component in the
// system; everything timeout- or cancellation-related belongs here, never
// in the core.
package executor

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	apicheck "github.com/BartSoj/apicheck"
	"github.com/BartSoj/apicheck/request"
)

// defaultTimeout bounds a request when the caller supplies no deadline.
const defaultTimeout = 30 * time.Second

// maxBodyBytes caps how much of a response body is retained.
const maxBodyBytes = 1 << 20

// Outcome is the result of one executed request.
type Outcome struct {
	StatusCode int
	Status     string
	Latency    time.Duration
	Body       []byte
}

// Executor performs HTTP calls. The zero value is not usable; create one
// with New.
type Executor struct {
	// Client is the underlying HTTP client.
	Client *http.Client

	// Timeout bounds each call when the context has no earlier deadline.
	Timeout time.Duration
}

// New creates an Executor with a default client and timeout.
func New() *Executor {
	return &Executor{
		Client:  &http.Client{},
		Timeout: defaultTimeout,
	}
}

// Do executes the request and returns the outcome. Network failures are
// returned as errors; any HTTP status, including 5xx, is a successful
// Outcome.
func (e *Executor) Do(ctx context.Context, req *request.Request) (*Outcome, error) {
	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	var body io.Reader
	if req.Body != "" {
		body = strings.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	for name, value := range req.Headers {
		httpReq.Header.Set(name, value)
	}
	if httpReq.Header.Get("User-Agent") == "" {
		httpReq.Header.Set("User-Agent", apicheck.UserAgent())
	}

	start := time.Now()
	resp, err := e.Client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return &Outcome{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Latency:    time.Since(start),
		Body:       data,
	}, nil
}
