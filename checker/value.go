package checker

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/BartSoj/apicheck/contract"
)

// ValueKind tags the runtime representation of a parsed body field. The set
// is closed; type-conformance checks are an exhaustive match over this tag
// and the declared schema kind, with no runtime type introspection.
type ValueKind string

// Parsed value kinds.
const (
	ValueString ValueKind = "string"
	ValueNumber ValueKind = "number"
	ValueBool   ValueKind = "boolean"
	ValueArray  ValueKind = "array"
	ValueObject ValueKind = "object"
	ValueNull   ValueKind = "null"
)

// ParsedValue is one top-level field of a flat-parsed body. Only the tag is
// inspected during validation; nested content is never descended into.
type ParsedValue struct {
	Kind ValueKind
}

// parseFlatObject parses a request body as a one-level JSON object. It
// returns each top-level field tagged with its runtime representation plus
// the field names sorted for deterministic iteration. Anything that is not
// a JSON object (arrays, scalars, malformed input) is an error.
func parseFlatObject(body string) (map[string]ParsedValue, []string, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(body), &raw); err != nil {
		return nil, nil, fmt.Errorf("body is not a flat JSON object: %w", err)
	}
	// A JSON null unmarshals into a nil map without error.
	if raw == nil {
		return nil, nil, fmt.Errorf("body is not a flat JSON object: got null")
	}

	fields := make(map[string]ParsedValue, len(raw))
	names := make([]string, 0, len(raw))
	for name, value := range raw {
		fields[name] = ParsedValue{Kind: classify(value)}
		names = append(names, name)
	}
	sort.Strings(names)
	return fields, names, nil
}

// classify tags an already-valid JSON value by its first significant byte.
func classify(raw json.RawMessage) ValueKind {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return ValueNull
	}
	switch trimmed[0] {
	case '"':
		return ValueString
	case '{':
		return ValueObject
	case '[':
		return ValueArray
	case 't', 'f':
		return ValueBool
	case 'n':
		return ValueNull
	default:
		return ValueNumber
	}
}

// conforms reports whether a parsed value's representation agrees with the
// declared schema kind. Unknown schema kinds accept anything; integer and
// number both accept the single JSON number representation.
func conforms(v ParsedValue, kind contract.SchemaKind) bool {
	switch kind {
	case contract.KindUnknown:
		return true
	case contract.KindString:
		return v.Kind == ValueString
	case contract.KindInteger, contract.KindNumber:
		return v.Kind == ValueNumber
	case contract.KindBoolean:
		return v.Kind == ValueBool
	case contract.KindArray:
		return v.Kind == ValueArray
	case contract.KindObject:
		return v.Kind == ValueObject
	default:
		return true
	}
}
