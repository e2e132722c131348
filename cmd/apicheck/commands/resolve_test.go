package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupResolveFlags(t *testing.T) {
	fs, flags := setupResolveFlags()

	t.Run("default values", func(t *testing.T) {
		assert.Equal(t, "", flags.dir)
		assert.Equal(t, "GET", flags.method)
		assert.Equal(t, FormatText, flags.format)
		assert.False(t, flags.noColor)
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"-dir", "./contracts", "-method", "post", "-no-color", "https://api.example.com/v1/albums"}
		require.NoError(t, fs.Parse(args))

		assert.Equal(t, "./contracts", flags.dir)
		assert.Equal(t, "post", flags.method)
		assert.True(t, flags.noColor)
		assert.Equal(t, "https://api.example.com/v1/albums", fs.Arg(0))
	})
}

func TestHandleResolve_RequiresDir(t *testing.T) {
	err := HandleResolve([]string{"https://api.example.com/v1/albums"})
	assert.Error(t, err)
}

func TestHandleResolve_RequiresURL(t *testing.T) {
	err := HandleResolve([]string{"-dir", writeContractDir(t)})
	assert.Error(t, err)
}

func TestHandleResolve_Help(t *testing.T) {
	err := HandleResolve([]string{"--help"})
	assert.NoError(t, err)
}

func TestHandleResolve_Match(t *testing.T) {
	dir := writeContractDir(t)
	err := HandleResolve([]string{"-dir", dir, "-no-color", "https://api.example.com/v1/albums"})
	assert.NoError(t, err)
}

func TestHandleResolve_MatchJSON(t *testing.T) {
	dir := writeContractDir(t)
	err := HandleResolve([]string{"-dir", dir, "-format", "json", "-method", "post", "https://api.example.com/v1/albums"})
	assert.NoError(t, err)
}

func TestHandleResolve_NoEndpoint(t *testing.T) {
	dir := writeContractDir(t)
	err := HandleResolve([]string{"-dir", dir, "-no-color", "https://api.example.com/v1/missing"})
	assert.Error(t, err)
}

func TestHandleResolve_UnknownHost(t *testing.T) {
	dir := writeContractDir(t)
	err := HandleResolve([]string{"-dir", dir, "-format", "json", "https://other.example.com/v1/albums"})
	assert.Error(t, err)
}
