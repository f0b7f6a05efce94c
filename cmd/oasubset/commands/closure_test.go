package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupClosureFlags(t *testing.T) {
	fs, flags := SetupClosureFlags()

	t.Run("default values", func(t *testing.T) {
		assert.Equal(t, "", flags.Roots)
		assert.Equal(t, FormatText, flags.Format)
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"-r", "Pet", "--format", "json", "in.yaml"}
		require.NoError(t, fs.Parse(args))

		assert.Equal(t, "Pet", flags.Roots)
		assert.Equal(t, FormatJSON, flags.Format)
		assert.Equal(t, "in.yaml", fs.Arg(0))
	})
}

func TestHandleClosure_NoArgs(t *testing.T) {
	err := HandleClosure([]string{})
	assert.Error(t, err)
}

func TestHandleClosure_Help(t *testing.T) {
	err := HandleClosure([]string{"--help"})
	assert.NoError(t, err)
}

func TestHandleClosure_InvalidFormat(t *testing.T) {
	err := HandleClosure([]string{"--format", "xml", "in.yaml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestHandleClosure_Runs(t *testing.T) {
	specPath := writeSpecFile(t, petstoreSpec)

	assert.NoError(t, HandleClosure([]string{"-q", "--roots", "Pet", specPath}))
	assert.NoError(t, HandleClosure([]string{"-q", "--roots", "Pet", "--format", "json", specPath}))
}

func TestHandleClosure_NotAnOASDocument(t *testing.T) {
	specPath := writeSpecFile(t, "title: not a spec\n")
	err := HandleClosure([]string{"-q", "--roots", "Pet", specPath})
	assert.Error(t, err)
}
