package httputil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalMethod(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{name: "upper case get", input: "GET", want: "get", wantOK: true},
		{name: "lower case post", input: "post", want: "post", wantOK: true},
		{name: "mixed case delete", input: "DeLeTe", want: "delete", wantOK: true},
		{name: "surrounding whitespace", input: " put ", want: "put", wantOK: true},
		{name: "patch", input: "PATCH", want: "patch", wantOK: true},
		{name: "head", input: "HEAD", want: "head", wantOK: true},
		{name: "options", input: "OPTIONS", want: "options", wantOK: true},
		{name: "trace not supported", input: "TRACE", wantOK: false},
		{name: "connect not supported", input: "CONNECT", wantOK: false},
		{name: "garbage", input: "FETCH", wantOK: false},
		{name: "empty", input: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CanonicalMethod(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsJSONMediaType(t *testing.T) {
	assert.True(t, IsJSONMediaType("application/json"))
	assert.True(t, IsJSONMediaType("application/json; charset=utf-8"))
	assert.True(t, IsJSONMediaType("APPLICATION/JSON"))
	assert.False(t, IsJSONMediaType("text/plain"))
	assert.False(t, IsJSONMediaType("application/xml"))
	assert.False(t, IsJSONMediaType(""))
}

func TestMethodsCoverCanonicalSet(t *testing.T) {
	for _, m := range Methods {
		got, ok := CanonicalMethod(m)
		assert.True(t, ok, "method %q should canonicalize", m)
		assert.Equal(t, m, got)
	}
}
