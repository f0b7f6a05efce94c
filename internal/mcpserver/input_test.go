package mcpserver

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecInput_ResolveContent(t *testing.T) {
	doc, err := specInput{Content: "openapi: 3.0.0\n"}.resolve()
	require.NoError(t, err)
	assert.True(t, doc.Has("openapi"))
}

func TestSpecInput_ResolveFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spec.yaml")
	require.NoError(t, os.WriteFile(path, []byte("swagger: \"2.0\"\n"), 0o600))

	doc, err := specInput{File: path}.resolve()
	require.NoError(t, err)
	assert.True(t, doc.Has("swagger"))
}

func TestSpecInput_ExactlyOneRequired(t *testing.T) {
	_, err := specInput{}.resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one")

	_, err = specInput{File: "a.yaml", Content: "openapi: 3.0.0"}.resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one")
}

func TestSpecInput_InlineSizeLimit(t *testing.T) {
	t.Setenv("OASUBSET_MAX_INLINE_SIZE", "")
	orig := cfg
	cfg = &serverConfig{MaxInlineSize: 16, SubsetFailOnEmpty: false}
	t.Cleanup(func() { cfg = orig })

	_, err := specInput{Content: strings.Repeat("a", 32)}.resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds maximum")
}
