// Package render turns core results into colored terminal output. It is
// purely presentational: all machine-readable information lives in the
// result types themselves.
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/logrusorgru/aurora/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/BartSoj/apicheck/checker"
	"github.com/BartSoj/apicheck/executor"
	"github.com/BartSoj/apicheck/resolver"
)

// titleCaser title-cases section headings; strings.Title is deprecated.
var titleCaser = cases.Title(language.English)

// Renderer writes human-readable reports to a single output stream.
type Renderer struct {
	out   io.Writer
	color aurora.Aurora
}

// New creates a Renderer. Set colorize to false when the output is not a
// terminal.
func New(out io.Writer, colorize bool) *Renderer {
	return &Renderer{out: out, color: aurora.NewAurora(colorize)}
}

// passFail renders the classic green PASS / red FAIL verdict.
func (r *Renderer) passFail(ok bool) aurora.Value {
	if ok {
		return r.color.Green("PASS")
	}
	return r.color.Red("FAIL")
}

// heading prints a title-cased section heading.
func (r *Renderer) heading(text string) {
	fmt.Fprintf(r.out, "%s\n", r.color.Bold(titleCaser.String(text)))
}

// Match reports a successful endpoint resolution.
func (r *Renderer) Match(m *resolver.EndpointMatch) {
	r.heading("endpoint match")
	fmt.Fprintf(r.out, "  [%s] %s %s\n", r.passFail(true), m.Method, m.URL)
	fmt.Fprintf(r.out, "  template: %s\n", m.PathTemplate)
	if m.Operation.OperationID != "" {
		fmt.Fprintf(r.out, "  operation: %s\n", m.Operation.OperationID)
	}
	if m.Contract != nil {
		fmt.Fprintf(r.out, "  contract: %s%s\n", m.Contract.Title, r.color.Faint(" ("+m.Contract.SourcePath+")"))
	}
	for name, value := range m.PathParams {
		fmt.Fprintf(r.out, "  path param %s = %s\n", name, value)
	}
}

// NotFound reports a failed endpoint resolution.
func (r *Renderer) NotFound(nf *resolver.NotFoundError) {
	r.heading("endpoint match")
	fmt.Fprintf(r.out, "  [%s] %s %s %s\n",
		r.passFail(false), nf.Method, nf.URL, r.color.Faint("("+humanize(string(nf.Reason))+")"))
}

// Validation reports a validation result, listing every accumulated
// violation.
func (r *Renderer) Validation(result checker.ValidationResult) {
	r.heading("request validation")
	fmt.Fprintf(r.out, "  [%s]", r.passFail(result.Valid))
	if result.Valid {
		fmt.Fprintln(r.out)
		return
	}
	fmt.Fprintf(r.out, " %d violation(s)\n", len(result.Errors))
	for _, verr := range result.Errors {
		detail := humanize(string(verr.Kind))
		if verr.Field != "" {
			detail = fmt.Sprintf("%s: %s", detail, verr.Field)
		}
		fmt.Fprintf(r.out, "  %s %s\n", r.color.Red("✗"), detail)
	}
}

// Outcome reports an executed request's result.
func (r *Renderer) Outcome(o *executor.Outcome) {
	r.heading("response")
	ok := o.StatusCode < 400
	fmt.Fprintf(r.out, "  [%s] %s %s\n", r.passFail(ok), o.Status, r.color.Faint(o.Latency.Round(time.Millisecond).String()))
	if len(o.Body) > 0 {
		fmt.Fprintf(r.out, "  %s\n", string(o.Body))
	}
}

// humanize turns a snake_case kind tag into readable words.
func humanize(tag string) string {
	return strings.ReplaceAll(tag, "_", " ")
}
