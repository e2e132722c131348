// Package httputil provides HTTP-related validation utilities and constants.
package httputil

import (
	"mime"
	"strings"
)

// HTTP method constants, lower-cased to match contract document keys.
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
)

// JSONMediaType is the single body media type the checker accepts.
const JSONMediaType = "application/json"

// Methods lists every method token a contract path item may declare,
// in the order operations are conventionally listed.
var Methods = []string{
	MethodGet,
	MethodPost,
	MethodPut,
	MethodDelete,
	MethodPatch,
	MethodOptions,
	MethodHead,
}

// CanonicalMethod lower-cases a method token and reports whether it is one
// of the supported methods. Unsupported tokens return ok=false.
func CanonicalMethod(method string) (string, bool) {
	m := strings.ToLower(strings.TrimSpace(method))
	switch m {
	case MethodGet, MethodPut, MethodPost, MethodDelete, MethodOptions, MethodHead, MethodPatch:
		return m, true
	default:
		return "", false
	}
}

// IsJSONMediaType reports whether the given content type denotes JSON,
// ignoring any media type parameters (e.g. "application/json; charset=utf-8").
func IsJSONMediaType(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mt == JSONMediaType
}
