package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/BartSoj/apicheck/checker"
	"github.com/BartSoj/apicheck/executor"
	"github.com/BartSoj/apicheck/render"
	"github.com/BartSoj/apicheck/request"
	"github.com/BartSoj/apicheck/resolver"
)

type checkFlags struct {
	dir     string
	send    bool
	timeout time.Duration
	noColor bool
	verbose bool
}

func setupCheckFlags() (*flag.FlagSet, *checkFlags) {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	flags := &checkFlags{}

	fs.StringVar(&flags.dir, "dir", "", "contract directory (required)")
	fs.BoolVar(&flags.send, "send", false, "execute the request after it validates")
	fs.DurationVar(&flags.timeout, "timeout", 30*time.Second, "network timeout when sending")
	fs.BoolVar(&flags.noColor, "no-color", false, "disable colored output")
	fs.BoolVar(&flags.verbose, "verbose", false, "log loading details to stderr")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: apicheck check -dir <directory> [flags] <request-file>\n\n")
		_, _ = fmt.Fprintf(output, "Validate a request description against the loaded contracts.\n")
		_, _ = fmt.Fprintf(output, "Use '-' as the request file to read from stdin.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
	}
	return fs, flags
}

// HandleCheck implements the check command.
func HandleCheck(args []string) error {
	fs, flags := setupCheckFlags()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if flags.dir == "" {
		fs.Usage()
		return fmt.Errorf("the -dir flag is required")
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("expected exactly one request file argument")
	}

	text, err := readInput(fs.Arg(0))
	if err != nil {
		return err
	}
	req, err := request.Parse(text)
	if err != nil {
		return err
	}

	res, _, err := newResolver(flags.dir, flags.verbose)
	if err != nil {
		return err
	}

	r := render.New(os.Stdout, !flags.noColor)

	match, err := res.Resolve(req.URL, req.Method)
	if err != nil {
		var nf *resolver.NotFoundError
		if errors.As(err, &nf) {
			r.NotFound(nf)
			return fmt.Errorf("request did not resolve to an endpoint")
		}
		return err
	}
	r.Match(match)

	result := checker.Validate(match, req.Query, req.Body)
	r.Validation(result)
	if !result.Valid {
		return fmt.Errorf("request failed validation with %d violation(s)", len(result.Errors))
	}

	if !flags.send {
		return nil
	}

	exec := executor.New()
	exec.Timeout = flags.timeout
	outcome, err := exec.Do(context.Background(), req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	r.Outcome(outcome)
	return nil
}
