package content

import (
	"context"
	"errors"
	"testing"

	"content-sync/core/notify"
	"content-sync/feature/content/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(store Store, fallback FallbackDoc) *Service {
	log := zap.NewNop()
	return NewService(store, log, notify.New(log, 10), Config{BatchSize: 50}, fallback)
}

func heroFallback() FallbackDoc {
	return FallbackDoc{
		"home": {
			"hero": {
				"title": {"en": models.ScalarValue("Welcome")},
			},
		},
	}
}

func TestService_LoadEmptyRemote(t *testing.T) {
	// Remote store empty: fallback content must be served as-is.
	store := newFakeStore(models.PageRecord{ID: 1, Slug: "home"})
	svc := newTestService(store, heroFallback())

	require.NoError(t, svc.Load(context.Background()))
	assert.Equal(t, "Welcome", svc.GetValue("home", "hero", "title", "en").Text)
}

func TestService_LoadMergesRemoteOverFallback(t *testing.T) {
	store := newFakeStore(models.PageRecord{ID: 1, Slug: "home"})
	store.content[contentMapKey(1, "hero.title")] = models.ContentRow{
		ID: 1, PageID: 1, Section: "hero", ContentKey: "hero.title",
		ValueEn: "Hello from remote",
	}
	svc := newTestService(store, heroFallback())

	require.NoError(t, svc.Load(context.Background()))

	// Remote wins over fallback per key.
	assert.Equal(t, "Hello from remote", svc.GetValue("home", "hero", "title", "en").Text)
}

func TestService_LoadParsesListColumns(t *testing.T) {
	store := newFakeStore(models.PageRecord{ID: 1, Slug: "home"})
	store.content[contentMapKey(1, "steps.items")] = models.ContentRow{
		ID: 1, PageID: 1, Section: "steps", ContentKey: "steps.items",
		ValueEn: `["Step 1","Step 2"]`,
	}
	svc := newTestService(store, FallbackDoc{})

	require.NoError(t, svc.Load(context.Background()))

	v := svc.GetValue("home", "steps", "items", "en")
	require.Equal(t, models.KindList, v.Kind)
	assert.Equal(t, []string{"Step 1", "Step 2"}, v.Items)
}

func TestService_LoadDropsOrphanRows(t *testing.T) {
	store := newFakeStore(models.PageRecord{ID: 1, Slug: "home"})
	// Row referencing a page ID no page record has.
	store.content[contentMapKey(99, "hero.title")] = models.ContentRow{
		ID: 2, PageID: 99, Section: "hero", ContentKey: "hero.title",
		ValueEn: "Ghost",
	}
	svc := newTestService(store, FallbackDoc{})

	require.NoError(t, svc.Load(context.Background()))

	// The orphan never synthesized a page in the tree.
	assert.Empty(t, svc.Tree().Pages())
}

func TestService_LoadTransportFailureKeepsFallback(t *testing.T) {
	store := newFakeStore(models.PageRecord{ID: 1, Slug: "home"})
	store.listContentErr = errors.New("connection refused")
	svc := newTestService(store, heroFallback())

	err := svc.Load(context.Background())
	assert.Error(t, err)

	// Degraded mode: fallback content still readable.
	assert.Equal(t, "Welcome", svc.GetValue("home", "hero", "title", "en").Text)
}

func TestService_LoadUsesRowSectionForFieldSplit(t *testing.T) {
	store := newFakeStore(models.PageRecord{ID: 1, Slug: "home"})
	// The field name itself contains the separator; the stored section
	// value disambiguates.
	store.content[contentMapKey(1, "hero.cta.label")] = models.ContentRow{
		ID: 1, PageID: 1, Section: "hero", ContentKey: "hero.cta.label",
		ValueEn: "Click",
	}
	svc := newTestService(store, FallbackDoc{})

	require.NoError(t, svc.Load(context.Background()))
	assert.Equal(t, "Click", svc.GetValue("home", "hero", "cta.label", "en").Text)
}
