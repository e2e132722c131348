package contract

import (
	"fmt"
	"net/url"
	"strings"

	"go.yaml.in/yaml/v4"
)

// maxRefDepth caps $ref chains so a cyclic document cannot recurse forever.
const maxRefDepth = 32

// Component reference prefixes this package resolves eagerly at load time.
const (
	schemaRefPrefix      = "#/components/schemas/"
	parameterRefPrefix   = "#/components/parameters/"
	requestBodyRefPrefix = "#/components/requestBodies/"
)

// rawDocument mirrors the on-disk contract document shape. It exists only
// during loading; Load converts it into the immutable Contract model.
type rawDocument struct {
	OpenAPI    string        `yaml:"openapi"`
	Info       rawInfo       `yaml:"info"`
	Servers    []rawServer   `yaml:"servers"`
	Paths      rawPaths      `yaml:"paths"`
	Components rawComponents `yaml:"components"`
}

type rawInfo struct {
	Title   string `yaml:"title"`
	Version string `yaml:"version"`
}

type rawServer struct {
	URL string `yaml:"url"`
}

// rawPaths preserves path template declaration order, which plain map
// decoding would lose. Resolution walks templates in this order.
type rawPaths struct {
	names []string
	items map[string]*rawPathItem
}

// UnmarshalYAML decodes the paths mapping node by node so that the template
// declaration order survives parsing.
func (p *rawPaths) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("paths must be a mapping, got %v", value.Kind)
	}
	p.items = make(map[string]*rawPathItem, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		keyNode, valNode := value.Content[i], value.Content[i+1]
		var item rawPathItem
		if err := valNode.Decode(&item); err != nil {
			return fmt.Errorf("decoding path item %q: %w", keyNode.Value, err)
		}
		p.names = append(p.names, keyNode.Value)
		p.items[keyNode.Value] = &item
	}
	return nil
}

type rawPathItem struct {
	Get        *rawOperation   `yaml:"get"`
	Post       *rawOperation   `yaml:"post"`
	Put        *rawOperation   `yaml:"put"`
	Delete     *rawOperation   `yaml:"delete"`
	Patch      *rawOperation   `yaml:"patch"`
	Options    *rawOperation   `yaml:"options"`
	Head       *rawOperation   `yaml:"head"`
	Parameters []*rawParameter `yaml:"parameters"`
}

type rawOperation struct {
	OperationID string          `yaml:"operationId"`
	Summary     string          `yaml:"summary"`
	Parameters  []*rawParameter `yaml:"parameters"`
	RequestBody *rawRequestBody `yaml:"requestBody"`
}

type rawParameter struct {
	Ref      string     `yaml:"$ref"`
	Name     string     `yaml:"name"`
	In       string     `yaml:"in"`
	Required bool       `yaml:"required"`
	Schema   *rawSchema `yaml:"schema"`
}

type rawRequestBody struct {
	Ref      string                   `yaml:"$ref"`
	Required bool                     `yaml:"required"`
	Content  map[string]*rawMediaType `yaml:"content"`
}

type rawMediaType struct {
	Schema *rawSchema `yaml:"schema"`
}

type rawSchema struct {
	Ref        string                `yaml:"$ref"`
	Type       string                `yaml:"type"`
	Properties map[string]*rawSchema `yaml:"properties"`
	Required   []string              `yaml:"required"`
	Items      *rawSchema            `yaml:"items"`
}

type rawComponents struct {
	Schemas       map[string]*rawSchema      `yaml:"schemas"`
	Parameters    map[string]*rawParameter   `yaml:"parameters"`
	RequestBodies map[string]*rawRequestBody `yaml:"requestBodies"`
}

// parseContract parses a single contract document and converts it into the
// immutable model, resolving internal $ref pointers eagerly.
func parseContract(sourcePath string, data []byte) (*Contract, error) {
	var doc rawDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", sourcePath, err)
	}
	if doc.OpenAPI == "" {
		return nil, fmt.Errorf("%s is not a contract document: missing openapi version", sourcePath)
	}

	c := &Contract{
		SourcePath: sourcePath,
		Title:      doc.Info.Title,
		APIVersion: doc.Info.Version,
		PathItems:  make(map[string]*PathItem, len(doc.Paths.names)),
	}

	for _, raw := range doc.Servers {
		c.Servers = append(c.Servers, parseServer(raw.URL))
	}

	for _, template := range doc.Paths.names {
		item := doc.Paths.items[template]
		c.Templates = append(c.Templates, template)
		c.PathItems[template] = convertPathItem(item, &doc.Components)
	}

	return c, nil
}

// parseServer extracts the host and base path prefix from a declared server
// URL. A URL that does not parse yields an empty Host, which leaves the
// contract absent from any host index.
func parseServer(rawURL string) *Server {
	s := &Server{URL: rawURL}
	u, err := url.Parse(rawURL)
	if err != nil {
		return s
	}
	s.Host = u.Hostname()
	if p := strings.TrimSuffix(u.Path, "/"); p != "" {
		s.BasePath = p
	}
	return s
}

func convertPathItem(raw *rawPathItem, comps *rawComponents) *PathItem {
	if raw == nil {
		return &PathItem{}
	}
	return &PathItem{
		Get:     convertOperation(raw.Get, raw.Parameters, comps),
		Post:    convertOperation(raw.Post, raw.Parameters, comps),
		Put:     convertOperation(raw.Put, raw.Parameters, comps),
		Delete:  convertOperation(raw.Delete, raw.Parameters, comps),
		Patch:   convertOperation(raw.Patch, raw.Parameters, comps),
		Options: convertOperation(raw.Options, raw.Parameters, comps),
		Head:    convertOperation(raw.Head, raw.Parameters, comps),
	}
}

// convertOperation merges path-level parameters with operation-level ones.
// An operation-level parameter overrides a path-level parameter with the
// same name and location; otherwise path-level parameters come first.
func convertOperation(raw *rawOperation, pathLevel []*rawParameter, comps *rawComponents) *Operation {
	if raw == nil {
		return nil
	}
	op := &Operation{
		OperationID: raw.OperationID,
		Summary:     raw.Summary,
		RequestBody: resolveRequestBody(raw.RequestBody, comps),
	}

	opParams := make([]*Parameter, 0, len(raw.Parameters))
	for _, rp := range raw.Parameters {
		if p := resolveParameter(rp, comps); p != nil {
			opParams = append(opParams, p)
		}
	}
	for _, rp := range pathLevel {
		p := resolveParameter(rp, comps)
		if p == nil {
			continue
		}
		overridden := false
		for _, existing := range opParams {
			if existing.In == p.In && existing.Name == p.Name {
				overridden = true
				break
			}
		}
		if !overridden {
			op.Parameters = append(op.Parameters, p)
		}
	}
	op.Parameters = append(op.Parameters, opParams...)
	return op
}

// resolveParameter dereferences a parameter $ref if present. An unresolvable
// reference drops the parameter: without a name there is nothing to check.
func resolveParameter(raw *rawParameter, comps *rawComponents) *Parameter {
	if raw == nil {
		return nil
	}
	if raw.Ref != "" {
		name, ok := strings.CutPrefix(raw.Ref, parameterRefPrefix)
		if !ok {
			return nil
		}
		target := comps.Parameters[name]
		if target == nil || target.Ref != "" {
			return nil
		}
		raw = target
	}
	if raw.Name == "" {
		return nil
	}
	return &Parameter{
		Name:     raw.Name,
		In:       raw.In,
		Required: raw.Required,
		Schema:   resolveSchema(raw.Schema, comps, 0),
	}
}

func resolveRequestBody(raw *rawRequestBody, comps *rawComponents) *RequestBody {
	if raw == nil {
		return nil
	}
	if raw.Ref != "" {
		name, ok := strings.CutPrefix(raw.Ref, requestBodyRefPrefix)
		if !ok {
			return nil
		}
		target := comps.RequestBodies[name]
		if target == nil || target.Ref != "" {
			return nil
		}
		raw = target
	}
	rb := &RequestBody{
		Required: raw.Required,
		Content:  make(map[string]*Schema, len(raw.Content)),
	}
	for mediaType, mt := range raw.Content {
		if mt == nil {
			rb.Content[mediaType] = unknownSchema
			continue
		}
		rb.Content[mediaType] = resolveSchema(mt.Schema, comps, 0)
	}
	return rb
}

// resolveSchema converts a raw schema into the tagged model, following
// component references eagerly. Anything unresolvable degrades to the
// permissive unknown schema rather than failing the load.
func resolveSchema(raw *rawSchema, comps *rawComponents, depth int) *Schema {
	if raw == nil || depth > maxRefDepth {
		return unknownSchema
	}
	if raw.Ref != "" {
		name, ok := strings.CutPrefix(raw.Ref, schemaRefPrefix)
		if !ok {
			return unknownSchema
		}
		target := comps.Schemas[name]
		if target == nil {
			return unknownSchema
		}
		return resolveSchema(target, comps, depth+1)
	}

	s := &Schema{Kind: KindOf(raw.Type)}
	switch s.Kind {
	case KindObject:
		s.Properties = make(map[string]*Schema, len(raw.Properties))
		for name, prop := range raw.Properties {
			s.Properties[name] = resolveSchema(prop, comps, depth+1)
		}
		s.Required = append(s.Required, raw.Required...)
	case KindArray:
		s.Items = resolveSchema(raw.Items, comps, depth+1)
	}
	return s
}
