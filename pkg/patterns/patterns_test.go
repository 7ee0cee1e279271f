package patterns

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/patternbook/pkg/catalog"
)

func TestBuiltinHoldsTheFullCatalog(t *testing.T) {
	r := Builtin()
	assert.Equal(t, 22, r.Len())

	creational, err := r.ByCategory(catalog.CategoryCreational)
	require.NoError(t, err)
	assert.Len(t, creational, 5)

	structural, err := r.ByCategory(catalog.CategoryStructural)
	require.NoError(t, err)
	assert.Len(t, structural, 7)

	behavioral, err := r.ByCategory(catalog.CategoryBehavioral)
	require.NoError(t, err)
	assert.Len(t, behavioral, 10)
}

func TestBuiltinEntriesAreComplete(t *testing.T) {
	for _, e := range Builtin().List() {
		assert.NotEmpty(t, e.Title, "entry %s", e.Name)
		assert.NotEmpty(t, e.Summary, "entry %s", e.Name)
		assert.NotNil(t, e.Demo, "entry %s", e.Name)
	}
}

func TestEveryDemoRunsCleanAndWritesOutput(t *testing.T) {
	for _, e := range Builtin().List() {
		t.Run(e.Name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, e.Demo(&buf))
			assert.NotEmpty(t, buf.String(), "demo must write illustrative output")
		})
	}
}

func TestLookupBySlug(t *testing.T) {
	r := Builtin()

	e, err := r.Get("chain-of-responsibility")
	require.NoError(t, err)
	assert.Equal(t, catalog.CategoryBehavioral, e.Category)

	_, err = r.Get("chain")
	assert.ErrorIs(t, err, catalog.ErrPatternNotFound)
}
