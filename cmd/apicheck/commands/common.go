// Package commands provides CLI command handlers for apicheck.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/BartSoj/apicheck/contract"
	"github.com/BartSoj/apicheck/resolver"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured outputs data in the specified format (json or yaml) to stdout.
// Returns an error if marshaling fails.
func OutputStructured(data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	fmt.Println(string(bytes))
	return nil
}

// loadContracts loads the contract directory with warnings on stderr when
// verbose is set.
func loadContracts(dir string, verbose bool) ([]*contract.Contract, error) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	logger := contract.NewSlogAdapter(slog.New(handler))
	return contract.NewStore(contract.WithLogger(logger)).Load(dir)
}

// newResolver loads contracts and builds a resolver over their host index.
func newResolver(dir string, verbose bool) (*resolver.Resolver, []*contract.Contract, error) {
	contracts, err := loadContracts(dir, verbose)
	if err != nil {
		return nil, nil, err
	}
	return resolver.New(resolver.BuildHostIndex(contracts)), contracts, nil
}

// readInput reads a request description from a file, or from stdin when the
// path is "-".
func readInput(path string) (string, error) {
	if path == StdinFilePath {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading request file: %w", err)
	}
	return string(data), nil
}
