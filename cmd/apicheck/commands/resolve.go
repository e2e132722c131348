package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/BartSoj/apicheck/render"
	"github.com/BartSoj/apicheck/resolver"
)

type resolveFlags struct {
	dir     string
	method  string
	format  string
	noColor bool
	verbose bool
}

func setupResolveFlags() (*flag.FlagSet, *resolveFlags) {
	fs := flag.NewFlagSet("resolve", flag.ContinueOnError)
	flags := &resolveFlags{}

	fs.StringVar(&flags.dir, "dir", "", "contract directory (required)")
	fs.StringVar(&flags.method, "method", "GET", "HTTP method")
	fs.StringVar(&flags.format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.noColor, "no-color", false, "disable colored output")
	fs.BoolVar(&flags.verbose, "verbose", false, "log loading details to stderr")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: apicheck resolve -dir <directory> [flags] <url>\n\n")
		_, _ = fmt.Fprintf(output, "Resolve a URL and method to a contract endpoint.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
	}
	return fs, flags
}

// resolveReport is the structured form of a resolution attempt.
type resolveReport struct {
	Matched      bool              `json:"matched" yaml:"matched"`
	URL          string            `json:"url" yaml:"url"`
	Method       string            `json:"method" yaml:"method"`
	Reason       string            `json:"reason,omitempty" yaml:"reason,omitempty"`
	Contract     string            `json:"contract,omitempty" yaml:"contract,omitempty"`
	PathTemplate string            `json:"path_template,omitempty" yaml:"path_template,omitempty"`
	OperationID  string            `json:"operation_id,omitempty" yaml:"operation_id,omitempty"`
	PathParams   map[string]string `json:"path_params,omitempty" yaml:"path_params,omitempty"`
}

// HandleResolve implements the resolve command.
func HandleResolve(args []string) error {
	fs, flags := setupResolveFlags()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if err := ValidateOutputFormat(flags.format); err != nil {
		return err
	}
	if flags.dir == "" {
		fs.Usage()
		return fmt.Errorf("the -dir flag is required")
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("expected exactly one URL argument")
	}

	res, _, err := newResolver(flags.dir, flags.verbose)
	if err != nil {
		return err
	}

	match, err := res.Resolve(fs.Arg(0), flags.method)

	var nf *resolver.NotFoundError
	if err != nil && !errors.As(err, &nf) {
		return err
	}

	if flags.format != FormatText {
		report := resolveReport{URL: fs.Arg(0), Method: flags.method}
		if match != nil {
			report.Matched = true
			report.Method = match.Method
			report.Contract = match.Contract.SourcePath
			report.PathTemplate = match.PathTemplate
			report.OperationID = match.Operation.OperationID
			report.PathParams = match.PathParams
		} else {
			report.Reason = string(nf.Reason)
		}
		if err := OutputStructured(report, flags.format); err != nil {
			return err
		}
		if match == nil {
			return fmt.Errorf("no endpoint matched")
		}
		return nil
	}

	r := render.New(os.Stdout, !flags.noColor)
	if match != nil {
		r.Match(match)
		return nil
	}
	r.NotFound(nf)
	return fmt.Errorf("no endpoint matched")
}
