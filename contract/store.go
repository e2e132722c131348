package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store loads contract documents from disk. Create one with NewStore and
// call Load once at startup; the returned contracts are immutable.
type Store struct {
	logger Logger
}

// Option is a functional option for configuring a Store.
type Option func(*Store)

// WithLogger sets the structured logger used to report skipped documents.
// The default is NopLogger.
func WithLogger(logger Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewStore creates a Store with the given options.
func NewStore(opts ...Option) *Store {
	s := &Store{logger: NopLogger{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load parses every contract document in dir and returns the contracts
// ordered by source file name. A document that cannot be read or parsed is
// skipped with a warning; Load fails only when the directory itself is
// unreadable.
func (s *Store) Load(dir string) ([]*Contract, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading contract directory %s: %w", dir, err)
	}

	// os.ReadDir returns entries sorted by file name, which gives the
	// deterministic contract order resolution depends on.
	var contracts []*Contract
	for _, entry := range entries {
		if entry.IsDir() || !isContractFile(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			s.logger.Warn("skipping unreadable contract document", "file", path, "error", err)
			continue
		}
		c, err := parseContract(path, data)
		if err != nil {
			s.logger.Warn("skipping contract document", "file", path, "error", err)
			continue
		}
		s.logger.Debug("loaded contract", "file", path, "paths", len(c.Templates), "servers", len(c.Servers))
		contracts = append(contracts, c)
	}
	return contracts, nil
}

// isContractFile reports whether a file name has one of the recognized
// contract document extensions.
func isContractFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".json":
		return true
	default:
		return false
	}
}
