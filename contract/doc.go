// Package contract loads declarative API contract documents and exposes them
// as an immutable in-memory model.
//
// A contract document is a YAML or JSON file describing the servers an API is
// reachable on and, per path template, the operations it supports. The model
// is deliberately small: servers, path items keyed by method, operations with
// parameters and an optional request body, and a closed recursive Schema
// descriptor used for shape validation.
//
// Use a Store to load every document in a directory:
//
//	store := contract.NewStore(contract.WithLogger(logger))
//	contracts, err := store.Load("./contracts")
//
// Documents that cannot be read or parsed are skipped with a warning; only an
// unreadable directory fails the load. Internal $ref pointers into
// #/components are resolved eagerly during loading, so the returned contracts
// never require dereferencing.
//
// All types in this package are immutable after Load returns and may be
// shared across goroutines without synchronization.
package contract
