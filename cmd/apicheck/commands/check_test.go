package commands

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeRequestFile stores a request description next to the test.
func writeRequestFile(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "request.txt")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestSetupCheckFlags(t *testing.T) {
	fs, flags := setupCheckFlags()

	t.Run("default values", func(t *testing.T) {
		assert.Equal(t, "", flags.dir)
		assert.False(t, flags.send)
		assert.Equal(t, 30*time.Second, flags.timeout)
		assert.False(t, flags.noColor)
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"-dir", "./contracts", "-send", "-timeout", "5s", "-no-color", "request.txt"}
		require.NoError(t, fs.Parse(args))

		assert.Equal(t, "./contracts", flags.dir)
		assert.True(t, flags.send)
		assert.Equal(t, 5*time.Second, flags.timeout)
		assert.True(t, flags.noColor)
		assert.Equal(t, "request.txt", fs.Arg(0))
	})
}

func TestHandleCheck_RequiresDir(t *testing.T) {
	err := HandleCheck([]string{"request.txt"})
	assert.Error(t, err)
}

func TestHandleCheck_RequiresFile(t *testing.T) {
	err := HandleCheck([]string{"-dir", writeContractDir(t)})
	assert.Error(t, err)
}

func TestHandleCheck_Help(t *testing.T) {
	err := HandleCheck([]string{"--help"})
	assert.NoError(t, err)
}

func TestHandleCheck_ValidRequest(t *testing.T) {
	dir := writeContractDir(t)
	reqFile := writeRequestFile(t, "GET https://api.example.com/v1/albums?limit=5\n")

	err := HandleCheck([]string{"-dir", dir, "-no-color", reqFile})
	assert.NoError(t, err)
}

func TestHandleCheck_ValidationFailure(t *testing.T) {
	dir := writeContractDir(t)
	reqFile := writeRequestFile(t, "GET https://api.example.com/v1/albums\n")

	err := HandleCheck([]string{"-dir", dir, "-no-color", reqFile})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "violation")
}

func TestHandleCheck_BodyValidation(t *testing.T) {
	dir := writeContractDir(t)
	reqFile := writeRequestFile(t, "POST https://api.example.com/v1/albums\n\n{\"name\": \"Kind of Blue\"}\n")

	err := HandleCheck([]string{"-dir", dir, "-no-color", reqFile})
	assert.NoError(t, err)
}

func TestHandleCheck_NoEndpoint(t *testing.T) {
	dir := writeContractDir(t)
	reqFile := writeRequestFile(t, "GET https://api.example.com/v1/missing\n")

	err := HandleCheck([]string{"-dir", dir, "-no-color", reqFile})
	assert.Error(t, err)
}

func TestHandleCheck_MalformedRequest(t *testing.T) {
	dir := writeContractDir(t)
	reqFile := writeRequestFile(t, "TRACE https://api.example.com/v1/albums\n")

	err := HandleCheck([]string{"-dir", dir, reqFile})
	assert.Error(t, err)
}
