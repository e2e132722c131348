package checker

import "fmt"

// ErrorKind is the closed enumeration of validation failure kinds.
type ErrorKind string

// Validation failure kinds.
const (
	// KindMissingRequiredParameter: a declared required query parameter was
	// not supplied.
	KindMissingRequiredParameter ErrorKind = "missing_required_parameter"

	// KindInvalidParameterType: a supplied query parameter's value does not
	// conform to the declared schema kind.
	KindInvalidParameterType ErrorKind = "invalid_parameter_type"

	// KindMissingRequiredBody: the operation requires a body but none was
	// supplied.
	KindMissingRequiredBody ErrorKind = "missing_required_body"

	// KindInvalidContentType: the operation's body schema does not declare
	// the canonical JSON media type.
	KindInvalidContentType ErrorKind = "invalid_content_type"

	// KindInvalidBodyStructure: the supplied body does not parse as a flat
	// JSON object.
	KindInvalidBodyStructure ErrorKind = "invalid_body_structure"

	// KindInvalidBodyFieldType: a supplied body field's runtime
	// representation disagrees with the declared schema kind.
	KindInvalidBodyFieldType ErrorKind = "invalid_body_field_type"

	// KindMissingRequiredBodyField: a schema-required body field is absent.
	KindMissingRequiredBodyField ErrorKind = "missing_required_body_field"

	// KindUnexpectedBody: a body was supplied but the operation declares
	// none.
	KindUnexpectedBody ErrorKind = "unexpected_body"
)

// ValidationError is a single accumulated violation. Field names the
// offending parameter or body field when applicable and is empty for
// body-level violations.
type ValidationError struct {
	Kind  ErrorKind
	Field string
}

// String returns a compact "kind: field" rendering.
func (e ValidationError) String() string {
	if e.Field == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Field)
}

// ValidationResult is the complete outcome of checking one request against
// one operation. Valid is true iff Errors is empty. The error list order is
// stable: required-parameter errors, then parameter-type errors, then
// body-level errors, then body-field errors.
type ValidationResult struct {
	Valid  bool
	Errors []ValidationError
}

// add records a violation and flips Valid.
func (r *ValidationResult) add(kind ErrorKind, field string) {
	r.Valid = false
	r.Errors = append(r.Errors, ValidationError{Kind: kind, Field: field})
}
