package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathItemOperation(t *testing.T) {
	get := &Operation{OperationID: "listAlbums"}
	del := &Operation{OperationID: "deleteAlbum"}
	pi := &PathItem{Get: get, Delete: del}

	assert.Same(t, get, pi.Operation("get"))
	assert.Same(t, del, pi.Operation("delete"))
	assert.Nil(t, pi.Operation("post"))
	assert.Nil(t, pi.Operation("GET"), "Operation expects canonical lower-case tokens")
	assert.Nil(t, pi.Operation("trace"))

	var nilItem *PathItem
	assert.Nil(t, nilItem.Operation("get"))
}

func TestPathItemMethods(t *testing.T) {
	pi := &PathItem{
		Get:    &Operation{},
		Delete: &Operation{},
		Head:   &Operation{},
	}
	assert.Equal(t, []string{"get", "delete", "head"}, pi.Methods())
	assert.Empty(t, (&PathItem{}).Methods())
}

func TestOperationParametersIn(t *testing.T) {
	op := &Operation{
		Parameters: []*Parameter{
			{Name: "type", In: InQuery, Required: true},
			{Name: "X-Trace", In: InHeader},
			{Name: "limit", In: InQuery},
			{Name: "id", In: InPath, Required: true},
		},
	}

	query := op.ParametersIn(InQuery)
	assert.Len(t, query, 2)
	assert.Equal(t, "type", query[0].Name)
	assert.Equal(t, "limit", query[1].Name)

	assert.Len(t, op.ParametersIn(InHeader), 1)
	assert.Len(t, op.ParametersIn(InPath), 1)
	assert.Empty(t, op.ParametersIn("cookie"))

	var nilOp *Operation
	assert.Nil(t, nilOp.ParametersIn(InQuery))
}

func TestOperationParameterNamed(t *testing.T) {
	limit := &Parameter{Name: "limit", In: InQuery}
	op := &Operation{Parameters: []*Parameter{limit}}

	assert.Same(t, limit, op.ParameterNamed(InQuery, "limit"))
	assert.Nil(t, op.ParameterNamed(InHeader, "limit"))
	assert.Nil(t, op.ParameterNamed(InQuery, "offset"))
}

func TestRequestBodySchema(t *testing.T) {
	jsonSchema := &Schema{Kind: KindObject}
	rb := &RequestBody{Content: map[string]*Schema{"application/json": jsonSchema}}

	assert.Same(t, jsonSchema, rb.Schema("application/json"))
	assert.Nil(t, rb.Schema("text/plain"))

	var nilBody *RequestBody
	assert.Nil(t, nilBody.Schema("application/json"))
}

func TestRequestBodyJSONSchema(t *testing.T) {
	plain := &Schema{Kind: KindObject}
	charset := &Schema{Kind: KindObject}

	rb := &RequestBody{Content: map[string]*Schema{
		"application/json": plain,
		"text/plain":       {Kind: KindString},
	}}
	assert.Same(t, plain, rb.JSONSchema(), "exact media type wins")

	rb = &RequestBody{Content: map[string]*Schema{
		"application/json; charset=utf-8": charset,
		"application/xml":                 {Kind: KindObject},
	}}
	assert.Same(t, charset, rb.JSONSchema(), "parameterized JSON media type resolves")

	rb = &RequestBody{Content: map[string]*Schema{"text/plain": {Kind: KindString}}}
	assert.Nil(t, rb.JSONSchema())

	var nilBody *RequestBody
	assert.Nil(t, nilBody.JSONSchema())
}

func TestContractHostsDeduplicates(t *testing.T) {
	c := &Contract{
		Servers: []*Server{
			{URL: "https://api.example.com/v1", Host: "api.example.com", BasePath: "/v1"},
			{URL: "https://api.example.com/v2", Host: "api.example.com", BasePath: "/v2"},
			{URL: "https://backup.example.com", Host: "backup.example.com"},
		},
	}
	assert.Equal(t, []string{"api.example.com", "backup.example.com"}, c.Hosts())
	assert.Equal(t, "/v1", c.BasePath(), "prefix stripping uses only the first server")
}
