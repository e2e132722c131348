// Package checker validates a resolved request's shape against the matched
// contract operation.
//
// Validation is total: every independent rule runs and its violations are
// accumulated, so a result carries the complete list of problems rather than
// the first one found. Only two documented short-circuits exist: an
// undeclared content type skips structural body checks (there is no schema
// to check against), and a body that fails to parse skips field checks.
//
// # Shallow body validation
//
// Body validation is deliberately flat: the supplied body is parsed as a
// one-level key/value object and each top-level field's runtime
// representation is compared against the declared schema kind. Nested
// objects and arrays are type-tagged but not descended into; field-by-field
// validation below the first level is out of scope by design.
//
// Results are plain values owned by the caller; Validate allocates nothing
// shared and may be called concurrently.
package checker
