package checker

import (
	"sort"
	"strconv"
	"strings"

	"github.com/BartSoj/apicheck/contract"
	"github.com/BartSoj/apicheck/resolver"
)

// Validate checks supplied query parameters and body against the matched
// operation's declared shape. A blank body counts as absent.
//
// Every rule runs; violations accumulate in a stable order (see
// ValidationResult). Supplied-parameter and body-field checks iterate names
// in sorted order so that identical inputs always produce identical
// results.
func Validate(match *resolver.EndpointMatch, queryParams map[string]string, body string) ValidationResult {
	result := ValidationResult{Valid: true}
	if match == nil || match.Operation == nil {
		return result
	}
	op := match.Operation

	checkRequiredParams(op, queryParams, &result)
	checkParamTypes(op, queryParams, &result)
	checkBody(op, body, &result)
	return result
}

// checkRequiredParams emits a violation for every declared required query
// parameter absent from the supplied set, in declaration order.
func checkRequiredParams(op *contract.Operation, queryParams map[string]string, result *ValidationResult) {
	for _, p := range op.ParametersIn(contract.InQuery) {
		if !p.Required {
			continue
		}
		if _, ok := queryParams[p.Name]; !ok {
			result.add(KindMissingRequiredParameter, p.Name)
		}
	}
}

// checkParamTypes validates every supplied query parameter that matches a
// declared parameter against its schema kind.
func checkParamTypes(op *contract.Operation, queryParams map[string]string, result *ValidationResult) {
	names := make([]string, 0, len(queryParams))
	for name := range queryParams {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		p := op.ParameterNamed(contract.InQuery, name)
		if p == nil || p.Schema == nil {
			continue
		}
		if !paramValueConforms(queryParams[name], p.Schema.Kind) {
			result.add(KindInvalidParameterType, name)
		}
	}
}

// paramValueConforms checks a parameter's string value against a declared
// schema kind. Parameters arrive as strings, so the checks are lexical:
// numbers must parse as a float literal, booleans accept true/false/1/0
// case-insensitively, arrays are comma-separated.
func paramValueConforms(value string, kind contract.SchemaKind) bool {
	switch kind {
	case contract.KindString:
		return true
	case contract.KindInteger, contract.KindNumber:
		_, err := strconv.ParseFloat(value, 64)
		return err == nil
	case contract.KindBoolean:
		switch strings.ToLower(value) {
		case "true", "false", "1", "0":
			return true
		default:
			return false
		}
	case contract.KindArray:
		return len(strings.Split(value, ",")) >= 1
	default:
		// Unknown and unrecognized kinds pass unconditionally.
		return true
	}
}

// checkBody runs the body-level and body-field rules. The two documented
// short-circuits live here: an undeclared content type skips structural
// checks, and an unparseable body skips field checks.
func checkBody(op *contract.Operation, body string, result *ValidationResult) {
	declared := op.RequestBody != nil
	supplied := strings.TrimSpace(body) != ""

	if declared && op.RequestBody.Required && !supplied {
		result.add(KindMissingRequiredBody, "")
	}
	if !declared && supplied {
		result.add(KindUnexpectedBody, "")
	}
	if !declared || !supplied {
		return
	}

	schema := op.RequestBody.JSONSchema()
	if schema == nil {
		result.add(KindInvalidContentType, "")
		return
	}

	fields, names, err := parseFlatObject(body)
	if err != nil {
		result.add(KindInvalidBodyStructure, "")
		return
	}

	for _, required := range schema.Required {
		if _, ok := fields[required]; !ok {
			result.add(KindMissingRequiredBodyField, required)
		}
	}
	for _, name := range names {
		prop := schema.Property(name)
		if prop == nil {
			continue
		}
		if !conforms(fields[name], prop.Kind) {
			result.add(KindInvalidBodyFieldType, name)
		}
	}
}
