package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BartSoj/apicheck/checker"
	"github.com/BartSoj/apicheck/contract"
	"github.com/BartSoj/apicheck/executor"
	"github.com/BartSoj/apicheck/resolver"
)

func TestRenderMatch(t *testing.T) {
	var buf strings.Builder
	r := New(&buf, false)

	r.Match(&resolver.EndpointMatch{
		URL:          "https://api.example.com/v1/albums/7",
		Method:       "GET",
		PathTemplate: "/albums/{id}",
		Operation:    &contract.Operation{OperationID: "getAlbum"},
		Contract:     &contract.Contract{Title: "Albums API", SourcePath: "albums.yaml"},
		PathParams:   map[string]string{"id": "7"},
	})

	out := buf.String()
	assert.Contains(t, out, "Endpoint Match")
	assert.Contains(t, out, "[PASS]")
	assert.Contains(t, out, "/albums/{id}")
	assert.Contains(t, out, "getAlbum")
	assert.Contains(t, out, "Albums API")
	assert.Contains(t, out, "path param id = 7")
}

func TestRenderNotFound(t *testing.T) {
	var buf strings.Builder
	r := New(&buf, false)

	r.NotFound(&resolver.NotFoundError{
		URL:    "https://nowhere.example.com/x",
		Method: "GET",
		Reason: resolver.ReasonNoContractForHost,
	})

	out := buf.String()
	assert.Contains(t, out, "[FAIL]")
	assert.Contains(t, out, "no contract for host")
}

func TestRenderValidation(t *testing.T) {
	var buf strings.Builder
	r := New(&buf, false)

	r.Validation(checker.ValidationResult{
		Errors: []checker.ValidationError{
			{Kind: checker.KindMissingRequiredParameter, Field: "type"},
			{Kind: checker.KindUnexpectedBody},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "Request Validation")
	assert.Contains(t, out, "[FAIL] 2 violation(s)")
	assert.Contains(t, out, "missing required parameter: type")
	assert.Contains(t, out, "unexpected body")
}

func TestRenderValidationPass(t *testing.T) {
	var buf strings.Builder
	r := New(&buf, false)

	r.Validation(checker.ValidationResult{Valid: true})
	assert.Contains(t, buf.String(), "[PASS]")
}

func TestRenderOutcome(t *testing.T) {
	var buf strings.Builder
	r := New(&buf, false)

	r.Outcome(&executor.Outcome{
		StatusCode: 200,
		Status:     "200 OK",
		Latency:    42 * time.Millisecond,
		Body:       []byte(`{"ok":true}`),
	})

	out := buf.String()
	assert.Contains(t, out, "Response")
	assert.Contains(t, out, "[PASS] 200 OK")
	assert.Contains(t, out, "42ms")
	assert.Contains(t, out, `{"ok":true}`)
}
