package oasubset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestVersion verifies that Version() returns the version variable.
// In normal builds, this is set via ldflags by GoReleaser.
// In development, it defaults to "dev".
func TestVersion(t *testing.T) {
	result := Version()

	assert.NotEmpty(t, result, "Version() should not return empty string")

	// Should be either "dev" (development) or a semantic version (e.g., "v1.2.3")
	assert.True(t,
		result == "dev" || strings.HasPrefix(result, "v"),
		"Version() should be 'dev' or start with 'v', got: %s", result)
}

// TestUserAgent verifies that UserAgent() returns a properly formatted User-Agent string.
func TestUserAgent(t *testing.T) {
	result := UserAgent()

	assert.True(t, strings.HasPrefix(result, "oasubset/"),
		"UserAgent() should start with 'oasubset/', got: %s", result)
	assert.Equal(t, "oasubset/"+Version(), result)

	// Should not contain characters problematic for HTTP headers
	assert.NotContains(t, result, " ")
	assert.NotContains(t, result, "\n")
}
