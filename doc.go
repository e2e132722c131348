// Package apicheck provides tools for resolving HTTP requests against a set
// of declarative API contracts and validating their shape before any network
// call is attempted.
//
// The library consists of three core packages and a handful of collaborators:
//
//   - contract: load and model API contract documents (servers, paths, schemas)
//   - resolver: resolve a concrete (url, method) pair to a contract operation
//   - checker: validate supplied parameters and body against the matched operation
//
// Surrounding the core:
//
//   - request: parse a free-form request description into a structured request
//   - executor: perform the network call for a validated request
//   - render: turn results into colored terminal output
//
// # Quick Start
//
// Load a directory of contracts and resolve a request:
//
//	import (
//		"github.com/BartSoj/apicheck/checker"
//		"github.com/BartSoj/apicheck/contract"
//		"github.com/BartSoj/apicheck/resolver"
//	)
//
//	store := contract.NewStore()
//	contracts, err := store.Load("./contracts")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	r := resolver.New(resolver.BuildHostIndex(contracts))
//	match, err := r.Resolve("https://api.example.com/v1/albums/7/tracks", "GET")
//	if err != nil {
//		var nf *resolver.NotFoundError
//		if errors.As(err, &nf) {
//			fmt.Println("no endpoint:", nf.Reason)
//		}
//		return
//	}
//
//	result := checker.Validate(match, map[string]string{"type": "album"}, "")
//	if !result.Valid {
//		for _, verr := range result.Errors {
//			fmt.Printf("%s: %s\n", verr.Kind, verr.Field)
//		}
//	}
//
// # Concurrency
//
// Contracts and the host index are immutable after loading. Resolution and
// validation are pure functions of their inputs and the shared read-only
// index, so any number of goroutines may call them concurrently without
// synchronization. The only blocking component is the executor, which honors
// context cancellation.
//
// # Error Handling
//
// The core never terminates the process or logs on its own behalf:
//
//   - Resolution failures are returned as *resolver.NotFoundError with a
//     machine-readable Reason (ReasonInvalidURL, ReasonNoContractForHost,
//     ReasonNoEndpoint).
//   - Validation failures are accumulated in checker.ValidationResult.Errors;
//     validation never returns early on the first violation.
//   - A contract file that fails to parse is skipped with a warning through
//     the configured contract.Logger; only an unreadable contract directory
//     is surfaced as a fatal load error.
//
// # Command-Line Interface
//
// In addition to the library packages, apicheck provides a command-line
// interface:
//
//	# List loaded contracts
//	apicheck contracts ./contracts
//
//	# Resolve a request against the contracts
//	apicheck resolve -dir ./contracts -method GET https://api.example.com/v1/albums
//
//	# Resolve, validate, and optionally send a request
//	apicheck check -dir ./contracts -send request.txt
//
// Install the CLI:
//
//	go install github.com/BartSoj/apicheck/cmd/apicheck@latest
package apicheck
