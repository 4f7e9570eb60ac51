package content

import (
	"context"
	"testing"

	"content-sync/feature/content/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resyncFallback() FallbackDoc {
	return FallbackDoc{
		"home": {
			"hero": {
				"title": {"en": models.ScalarValue("Welcome"), "sv": models.ScalarValue("Välkommen")},
				"body":  {"en": models.ScalarValue("Hello")},
			},
		},
		"about": {
			"intro": {
				"heading": {"en": models.ScalarValue("About")},
			},
		},
	}
}

func TestResync_WritesFallbackRows(t *testing.T) {
	store := newFakeStore(
		models.PageRecord{ID: 1, Slug: "home"},
		models.PageRecord{ID: 2, Slug: "about"},
	)
	svc := newTestService(store, resyncFallback())

	result, err := svc.Resync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, result.Rows)
	assert.Equal(t, 3, result.Written)
	assert.Empty(t, result.MissingPages)
	assert.Empty(t, result.Failed)

	row, ok := store.row(1, "hero.title")
	require.True(t, ok)
	assert.Equal(t, "Welcome", row.ValueEn)
	assert.Equal(t, "Välkommen", row.ValueSv)
}

func TestResync_BypassesInMemoryEdits(t *testing.T) {
	store := newFakeStore(models.PageRecord{ID: 1, Slug: "home"})
	svc := newTestService(store, heroFallback())

	// A local edit must not leak into the resync output; the snapshot is
	// the sole source of truth for this operation.
	require.NoError(t, svc.RecordEdit("home", "hero", "title", "en", models.ScalarValue("edited")))

	_, err := svc.Resync(context.Background())
	require.NoError(t, err)

	row, ok := store.row(1, "hero.title")
	require.True(t, ok)
	assert.Equal(t, "Welcome", row.ValueEn)
}

func TestResync_ReportsMissingPages(t *testing.T) {
	store := newFakeStore(models.PageRecord{ID: 1, Slug: "home"})
	svc := newTestService(store, resyncFallback())

	result, err := svc.Resync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"about"}, result.MissingPages)
	assert.Equal(t, 2, result.Written) // only home's rows
}

func TestResync_PerRowFallback(t *testing.T) {
	store := newFakeStore(models.PageRecord{ID: 1, Slug: "home"})
	store.failKeys["hero.body"] = true
	svc := newTestService(store, resyncFallback())

	result, err := svc.Resync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Written)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, "hero.body", result.Failed[0].ContentKey)

	_, ok := store.row(1, "hero.title")
	assert.True(t, ok)
}
