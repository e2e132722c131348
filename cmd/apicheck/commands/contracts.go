package commands

import (
	"errors"
	"flag"
	"fmt"
	"strings"
)

type contractsFlags struct {
	format  string
	verbose bool
}

func setupContractsFlags() (*flag.FlagSet, *contractsFlags) {
	fs := flag.NewFlagSet("contracts", flag.ContinueOnError)
	flags := &contractsFlags{}

	fs.StringVar(&flags.format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.verbose, "verbose", false, "log loading details to stderr")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: apicheck contracts [flags] <directory>\n\n")
		_, _ = fmt.Fprintf(output, "Load every contract document in a directory and list what was loaded.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
	}
	return fs, flags
}

// contractSummary is the structured listing entry for one loaded contract.
type contractSummary struct {
	File      string   `json:"file" yaml:"file"`
	Title     string   `json:"title,omitempty" yaml:"title,omitempty"`
	Version   string   `json:"version,omitempty" yaml:"version,omitempty"`
	Hosts     []string `json:"hosts,omitempty" yaml:"hosts,omitempty"`
	BasePath  string   `json:"base_path,omitempty" yaml:"base_path,omitempty"`
	PathCount int      `json:"path_count" yaml:"path_count"`
}

// HandleContracts implements the contracts command.
func HandleContracts(args []string) error {
	fs, flags := setupContractsFlags()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if err := ValidateOutputFormat(flags.format); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("expected exactly one contract directory argument")
	}

	contracts, err := loadContracts(fs.Arg(0), flags.verbose)
	if err != nil {
		return err
	}

	summaries := make([]contractSummary, 0, len(contracts))
	for _, c := range contracts {
		summaries = append(summaries, contractSummary{
			File:      c.SourcePath,
			Title:     c.Title,
			Version:   c.APIVersion,
			Hosts:     c.Hosts(),
			BasePath:  c.BasePath(),
			PathCount: len(c.Templates),
		})
	}

	if flags.format != FormatText {
		return OutputStructured(summaries, flags.format)
	}

	if len(summaries) == 0 {
		fmt.Println("No contracts loaded.")
		return nil
	}
	for _, s := range summaries {
		title := s.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Printf("%s  %s %s\n", s.File, title, s.Version)
		if len(s.Hosts) > 0 {
			fmt.Printf("  hosts: %s\n", strings.Join(s.Hosts, ", "))
		}
		if s.BasePath != "" {
			fmt.Printf("  base path: %s\n", s.BasePath)
		}
		fmt.Printf("  paths: %d\n", s.PathCount)
	}
	fmt.Printf("\n%d contract(s) loaded.\n", len(summaries))
	return nil
}
