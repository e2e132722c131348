// Package resolver turns a concrete (url, method) pair into the contract
// operation that serves it.
//
// A HostIndex built once at startup maps network hosts to the contracts
// advertising them. Resolution walks the candidate contracts in load order,
// strips the first declared server's base path prefix, and matches the
// remaining path against each contract's path templates in declaration
// order. The first contract/template/method combination that succeeds wins;
// there is no specificity ranking, so overlapping templates across contracts
// resolve to whichever loads first.
//
// Failures are reported as *NotFoundError with a machine-readable Reason,
// never as a panic: an unparseable URL, a host no contract serves, and a
// path or method no contract declares are all ordinary outcomes.
//
// The resolver holds no mutable state; a single Resolver may be shared by
// any number of goroutines.
package resolver
