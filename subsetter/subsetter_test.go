package subsetter

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasubset/document"
	"github.com/erraggy/oasubset/internal/testutil"
	"github.com/erraggy/oasubset/oaserrors"
)

func TestSubset_Pipeline(t *testing.T) {
	doc := testutil.PetstoreOAS3(t)

	s := New(Config{
		PathAllowList: []string{"/orders"},
		Title:         "Orders API",
	})
	result, err := s.Subset(doc, []string{"Order"})
	require.NoError(t, err)

	assert.Equal(t, document.OASVersion3, result.Version)
	assert.Equal(t, []string{"Category", "Order", "Pet"}, result.Closure)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, 1, result.Stats.PathsRetained)
	assert.Equal(t, 3, result.Stats.SchemasRetained)
	assert.Equal(t, 3, result.Stats.SchemasVisited)

	info, ok := result.Document.Get("info")
	require.True(t, ok)
	title, ok := info.Get("title")
	require.True(t, ok)
	assert.Equal(t, "Orders API", title.Value())
}

func TestSubset_WarningsForMissingAndDangling(t *testing.T) {
	doc := testutil.MustParse(t, `
openapi: 3.0.0
info:
  title: T
  version: "1.0"
paths: {}
components:
  schemas:
    Y:
      properties:
        z:
          $ref: '#/components/schemas/Z'
`)

	s := New(DefaultConfig())
	result, err := s.Subset(doc, []string{"Y", "Nope"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Nope", "Y", "Z"}, result.Closure)
	assert.Equal(t, 1, result.Warnings.CountByCategory(WarnMissingRoot))
	assert.Equal(t, 1, result.Warnings.CountByCategory(WarnDanglingReference))
	assert.Equal(t, 1, result.Stats.MissingRoots)
	assert.Equal(t, 1, result.Stats.DanglingRefs)
	assert.Equal(t, 1, result.Stats.SchemasRetained, "only Y has a definition to copy")

	msgs := result.WarningStrings()
	require.Len(t, msgs, 2)
	assert.Contains(t, msgs[0], "Nope")
	assert.Contains(t, msgs[1], "Z")
}

func TestSubset_NoSchemaCatalog(t *testing.T) {
	doc := testutil.MustParse(t, `
openapi: 3.0.0
info:
  title: T
  version: "1.0"
paths:
  /ping:
    get:
      responses:
        '200':
          description: ok
`)

	s := New(Config{PathAllowList: []string{"/ping"}})
	result, err := s.Subset(doc, []string{"Pet"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Stats.PathsRetained)
	assert.Equal(t, 0, result.Stats.SchemasRetained)
	assert.Equal(t, 1, result.Warnings.CountByCategory(WarnMissingRoot))
}

func TestSubset_EmptyRootsAndFailOnEmpty(t *testing.T) {
	doc := testutil.PetstoreOAS3(t)

	t.Run("empty result allowed by default", func(t *testing.T) {
		result, err := New(DefaultConfig()).Subset(doc, nil)
		require.NoError(t, err)
		assert.Empty(t, result.Closure)
		assert.Equal(t, 0, result.Stats.SchemasRetained)
	})

	t.Run("FailOnEmpty rejects", func(t *testing.T) {
		_, err := New(Config{FailOnEmpty: true}).Subset(doc, nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, oaserrors.ErrEmptyResult))
	})
}

func TestSubset_MalformedRefAborts(t *testing.T) {
	doc := testutil.MustParse(t, `
openapi: 3.0.0
info:
  title: T
  version: "1.0"
paths: {}
components:
  schemas:
    A:
      properties:
        bad:
          $ref: {oops: true}
`)

	_, err := New(DefaultConfig()).Subset(doc, []string{"A"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrReference))
}

func TestSubset_Idempotent(t *testing.T) {
	// Re-running resolution on the trimmed output with the same roots yields
	// the first-run closure restricted to names that exist in the output.
	doc := testutil.PetstoreOAS3(t)
	roots := []string{"Order"}

	first, err := New(Config{PathAllowList: []string{"/orders"}}).Subset(doc, roots)
	require.NoError(t, err)

	second, err := New(Config{PathAllowList: []string{"/orders"}}).Subset(first.Document, roots)
	require.NoError(t, err)

	assert.Equal(t, first.Closure, second.Closure)
	assert.Equal(t, first.Stats.SchemasRetained, second.Stats.SchemasRetained)
	assert.Empty(t, second.Warnings)
}

func TestSubset_OAS2(t *testing.T) {
	doc := testutil.PetstoreOAS2(t)

	result, err := New(Config{PathAllowList: []string{"/pets"}}).Subset(doc, []string{"Pet"})
	require.NoError(t, err)
	assert.Equal(t, document.OASVersion2, result.Version)
	assert.Equal(t, []string{"Category", "Pet"}, result.Closure)
	assert.Equal(t, 2, result.Stats.SchemasRetained)

	defs, ok := document.SchemaDefinitions(result.Document, document.OASVersion2)
	require.True(t, ok)
	assert.Equal(t, []string{"Category", "Pet"}, defs.Keys())
}

func TestSubset_SourceNotMutated(t *testing.T) {
	doc := testutil.PetstoreOAS3(t)
	before, err := doc.MarshalJSON()
	require.NoError(t, err)

	_, err = New(Config{PathAllowList: []string{"/pets"}, Title: "X"}).Subset(doc, []string{"Pet"})
	require.NoError(t, err)

	after, err := doc.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestWriteResult(t *testing.T) {
	doc := testutil.PetstoreOAS3(t)
	s := New(Config{PathAllowList: []string{"/pets"}})
	result, err := s.Subset(doc, []string{"Pet"})
	require.NoError(t, err)

	t.Run("YAML output round-trips", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "subset.yaml")
		require.NoError(t, s.WriteResult(result, path))

		reloaded, err := document.Load(path)
		require.NoError(t, err)
		defs, ok := document.SchemaDefinitions(reloaded, document.OASVersion3)
		require.True(t, ok)
		assert.Equal(t, []string{"Category", "Pet"}, defs.Keys())
	})

	t.Run("JSON output by extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "subset.json")
		require.NoError(t, s.WriteResult(result, path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, len(data) > 0 && data[0] == '{', "expected a JSON object")

		reloaded, err := document.Parse(data)
		require.NoError(t, err)
		assert.True(t, reloaded.Has("openapi"))
	})
}
