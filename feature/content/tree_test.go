package content

import (
	"testing"

	"content-sync/feature/content/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTree_FallbackSemantics(t *testing.T) {
	tree := NewTree()
	require.NoError(t, tree.Set("home", "hero", "title", "en", models.ScalarValue("Welcome")))
	require.NoError(t, tree.Set("home", "hero", "title", "sv", models.ScalarValue("Välkommen")))

	t.Run("direct hit", func(t *testing.T) {
		v := tree.Value("home", "hero", "title", "sv")
		assert.Equal(t, "Välkommen", v.Text)
	})

	t.Run("absent language falls back to primary", func(t *testing.T) {
		v := tree.Value("home", "hero", "title", "de")
		assert.Equal(t, "Welcome", v.Text)
	})

	t.Run("absent path is empty, never an error", func(t *testing.T) {
		v := tree.Value("nope", "hero", "title", "en")
		assert.True(t, v.IsZero())
		assert.Equal(t, models.KindScalar, v.Kind)
	})
}

func TestTree_RejectsUnknownLanguage(t *testing.T) {
	tree := NewTree()
	err := tree.Set("home", "hero", "title", "fr", models.ScalarValue("Bienvenue"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "fr")
}

func TestTree_SnapshotIsolation(t *testing.T) {
	tree := NewTree()
	require.NoError(t, tree.Set("home", "steps", "items", "en", models.ListValue("a", "b")))

	snap := tree.Snapshot()

	// Mutations after the snapshot must not leak into it.
	require.NoError(t, tree.Set("home", "steps", "items", "en", models.ListValue("changed")))

	lv := snap["home"]["steps"]["items"]
	v, ok := lv.Get("en")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, v.Items)
}

func TestTree_SeedFallback(t *testing.T) {
	doc := FallbackDoc{
		"home": {
			"hero": {
				"title": {"en": models.ScalarValue("Welcome")},
			},
		},
	}
	tree := NewTree()
	tree.Seed(doc)

	assert.Equal(t, "Welcome", tree.Value("home", "hero", "title", "en").Text)
}

func TestBundledFallback(t *testing.T) {
	doc, err := BundledFallback()
	require.NoError(t, err)
	require.NotEmpty(t, doc)

	// The shipped snapshot carries both value shapes.
	title := doc["home"]["hero"]["title"]["en"]
	assert.Equal(t, models.KindScalar, title.Kind)

	steps := doc["home"]["steps"]["items"]["en"]
	assert.Equal(t, models.KindList, steps.Kind)
	assert.Len(t, steps.Items, 3)
}
