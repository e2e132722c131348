package contract

// SchemaKind is the closed set of type tags a Schema may carry.
// A declared type outside this set maps to KindUnknown and is treated
// permissively by all consumers.
type SchemaKind string

// Schema kind constants.
const (
	KindString  SchemaKind = "string"
	KindInteger SchemaKind = "integer"
	KindNumber  SchemaKind = "number"
	KindBoolean SchemaKind = "boolean"
	KindArray   SchemaKind = "array"
	KindObject  SchemaKind = "object"
	KindUnknown SchemaKind = "unknown"
)

// KindOf maps a declared type string to its SchemaKind.
// Absent or unrecognized declared types map to KindUnknown.
func KindOf(declared string) SchemaKind {
	switch declared {
	case "string":
		return KindString
	case "integer":
		return KindInteger
	case "number":
		return KindNumber
	case "boolean":
		return KindBoolean
	case "array":
		return KindArray
	case "object":
		return KindObject
	default:
		return KindUnknown
	}
}

// Schema is a recursive type descriptor. Only the fields relevant to the
// Kind are populated: KindObject carries Properties and Required, KindArray
// carries Items, and the scalar kinds carry nothing beyond the tag.
type Schema struct {
	// Kind is the type tag; always one of the SchemaKind constants.
	Kind SchemaKind

	// Properties maps property name to child schema. Only set for KindObject.
	Properties map[string]*Schema

	// Required lists property names that must be present, in declaration
	// order. Only set for KindObject.
	Required []string

	// Items is the element schema. Only set for KindArray.
	Items *Schema
}

// IsRequired reports whether the named property is in the schema's
// required set.
func (s *Schema) IsRequired(name string) bool {
	if s == nil {
		return false
	}
	for _, r := range s.Required {
		if r == name {
			return true
		}
	}
	return false
}

// Property returns the child schema for the named property, or nil if the
// schema is not an object or does not declare the property.
func (s *Schema) Property(name string) *Schema {
	if s == nil || s.Properties == nil {
		return nil
	}
	return s.Properties[name]
}

// unknownSchema is the shared permissive schema used when a declared type is
// absent or a $ref cannot be resolved.
var unknownSchema = &Schema{Kind: KindUnknown}
