package projector

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasubset/document"
	"github.com/erraggy/oasubset/internal/testutil"
	"github.com/erraggy/oasubset/oaserrors"
	"github.com/erraggy/oasubset/resolver"
)

func mustString(t *testing.T, node *document.Node, keys ...string) string {
	t.Helper()
	current := node
	for _, key := range keys {
		next, ok := current.Get(key)
		require.True(t, ok, "missing key %q", key)
		current = next
	}
	return current.Value()
}

func TestProject_MetadataOverrides(t *testing.T) {
	doc := testutil.PetstoreOAS3(t)

	out, err := Project(doc, resolver.NewNameSet("Pet", "Category"), Config{
		PathAllowList: []string{"/pets"},
		Title:         "Pets Only",
		Description:   "Trimmed to the pets endpoint.",
	})
	require.NoError(t, err)

	assert.Equal(t, "3.0.3", mustString(t, out, "openapi"))
	assert.Equal(t, "Pets Only", mustString(t, out, "info", "title"))
	assert.Equal(t, "Trimmed to the pets endpoint.", mustString(t, out, "info", "description"))
	assert.Equal(t, "1.2.3", mustString(t, out, "info", "version"),
		"info.version defaults to the original when not overridden")

	servers, ok := out.Get("servers")
	require.True(t, ok, "servers passes through by default")
	assert.Equal(t, document.KindSequence, servers.Kind())
}

func TestProject_InfoVersionOverride(t *testing.T) {
	doc := testutil.PetstoreOAS3(t)

	out, err := Project(doc, resolver.NewNameSet("Pet"), Config{
		PathAllowList: []string{"/pets"},
		InfoVersion:   "0.0.1-subset",
	})
	require.NoError(t, err)
	assert.Equal(t, "0.0.1-subset", mustString(t, out, "info", "version"))
}

func TestProject_PathAllowList(t *testing.T) {
	doc := testutil.PetstoreOAS3(t)

	out, err := Project(doc, resolver.NewNameSet("Pet"), Config{
		PathAllowList: []string{"/pets", "/does-not-exist"},
	})
	require.NoError(t, err)

	paths, ok := document.Paths(out)
	require.True(t, ok)
	assert.Equal(t, []string{"/pets"}, paths.Keys(),
		"absent allow-list keys are skipped, /orders is cut entirely")
}

func TestProject_SchemaClosureSortedAndSubset(t *testing.T) {
	doc := testutil.PetstoreOAS3(t)

	closure := resolver.NewNameSet("Pet", "Category", "Order", "Ghost")
	out, err := Project(doc, closure, Config{PathAllowList: []string{"/orders"}})
	require.NoError(t, err)

	defs, ok := document.SchemaDefinitions(out, document.OASVersion3)
	require.True(t, ok)
	assert.Equal(t, []string{"Category", "Order", "Pet"}, defs.Keys(),
		"schemas emit in lexicographic order; dangling Ghost is dropped")
	assert.False(t, defs.Has("Unused"))
}

func TestProject_CopiesByValue(t *testing.T) {
	doc := testutil.PetstoreOAS3(t)

	out, err := Project(doc, resolver.NewNameSet("Pet"), Config{PathAllowList: []string{"/pets"}})
	require.NoError(t, err)

	defs, ok := document.SchemaDefinitions(out, document.OASVersion3)
	require.True(t, ok)
	pet, ok := defs.Get("Pet")
	require.True(t, ok)
	pet.Set("x-mutated", document.NewString("yes"))

	origDefs, ok := document.SchemaDefinitions(doc, document.OASVersion3)
	require.True(t, ok)
	origPet, ok := origDefs.Get("Pet")
	require.True(t, ok)
	assert.False(t, origPet.Has("x-mutated"), "output must not alias the input")
}

func TestProject_OAS2Definitions(t *testing.T) {
	doc := testutil.PetstoreOAS2(t)

	out, err := Project(doc, resolver.NewNameSet("Pet", "Category"), Config{
		PathAllowList: []string{"/pets"},
	})
	require.NoError(t, err)

	assert.Equal(t, "2.0", mustString(t, out, "swagger"))
	assert.Equal(t, "api.example.com", mustString(t, out, "host"))

	defs, ok := document.SchemaDefinitions(out, document.OASVersion2)
	require.True(t, ok)
	assert.Equal(t, []string{"Category", "Pet"}, defs.Keys())
	assert.False(t, out.Has("components"), "OAS 2.0 output uses definitions, not components")
}

func TestProject_EmptyResult(t *testing.T) {
	doc := testutil.PetstoreOAS3(t)

	t.Run("allowed by default", func(t *testing.T) {
		out, err := Project(doc, resolver.NewNameSet(), Config{})
		require.NoError(t, err)

		paths, ok := document.Paths(out)
		require.True(t, ok)
		assert.Equal(t, 0, paths.Len())

		defs, ok := document.SchemaDefinitions(out, document.OASVersion3)
		require.True(t, ok)
		assert.Equal(t, 0, defs.Len())
	})

	t.Run("rejected with FailOnEmpty", func(t *testing.T) {
		_, err := Project(doc, resolver.NewNameSet("Ghost"), Config{
			PathAllowList: []string{"/nope"},
			FailOnEmpty:   true,
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, oaserrors.ErrEmptyResult))

		var emptyErr *oaserrors.EmptyResultError
		require.True(t, errors.As(err, &emptyErr))
		assert.Equal(t, []string{"Ghost"}, emptyErr.Roots)
	})
}

func TestProject_MetadataKeysOverride(t *testing.T) {
	doc := testutil.PetstoreOAS3(t)

	out, err := Project(doc, resolver.NewNameSet("Pet"), Config{
		PathAllowList: []string{"/pets"},
		MetadataKeys:  []string{},
	})
	require.NoError(t, err)
	assert.False(t, out.Has("servers"), "empty non-nil MetadataKeys disables pass-through")
}

func TestProject_SectionOrder(t *testing.T) {
	doc := testutil.PetstoreOAS3(t)

	out, err := Project(doc, resolver.NewNameSet("Pet"), Config{PathAllowList: []string{"/pets"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"openapi", "info", "servers", "paths", "components"}, out.Keys())
}

func TestProject_NotAnOASDocument(t *testing.T) {
	doc := testutil.MustParse(t, `just: a mapping`)

	_, err := Project(doc, resolver.NewNameSet(), Config{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrParse))
}

func TestProject_Reprojection(t *testing.T) {
	// Projecting an already-trimmed document with the same roots is a no-op
	// on its schema set.
	doc := testutil.PetstoreOAS3(t)

	first, err := Project(doc, resolver.NewNameSet("Order", "Pet", "Category"), Config{
		PathAllowList: []string{"/orders"},
	})
	require.NoError(t, err)

	defs, ok := document.SchemaDefinitions(first, document.OASVersion3)
	require.True(t, ok)
	closure, err := resolver.Closure(defs, []string{"Order"})
	require.NoError(t, err)

	second, err := Project(first, closure.Names, Config{PathAllowList: []string{"/orders"}})
	require.NoError(t, err)

	firstDefs, _ := document.SchemaDefinitions(first, document.OASVersion3)
	secondDefs, _ := document.SchemaDefinitions(second, document.OASVersion3)
	assert.Equal(t, firstDefs.Keys(), secondDefs.Keys())

	firstPaths, _ := document.Paths(first)
	secondPaths, _ := document.Paths(second)
	assert.Equal(t, firstPaths.Keys(), secondPaths.Keys())
}
