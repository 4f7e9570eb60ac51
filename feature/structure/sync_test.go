package structure

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"content-sync/feature/content/models"
)

type fakePageStore struct {
	mu    sync.Mutex
	pages []models.PageRecord

	listErr   error
	insertErr error
	inserts   int
}

func (f *fakePageStore) ListPages(context.Context) ([]models.PageRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.PageRecord, len(f.pages))
	copy(out, f.pages)
	return out, nil
}

func (f *fakePageStore) InsertPages(_ context.Context, records []models.PageRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserts++
	for i, record := range records {
		record.ID = uint(len(f.pages) + i + 1)
		f.pages = append(f.pages, record)
	}
	return nil
}

func testManifest(t *testing.T) Manifest {
	t.Helper()
	m, err := BundledManifest()
	require.NoError(t, err)
	require.NotEmpty(t, m.Pages)
	return m
}

func testService(t *testing.T, store *fakePageStore) (*Service, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	cfg := Config{StatePath: "structure_state.json", SuccessRevertMS: 30}
	return NewService(store, zap.NewNop(), fs, testManifest(t), cfg), fs
}

func TestRefreshComputesMissingPages(t *testing.T) {
	store := &fakePageStore{pages: []models.PageRecord{
		{ID: 1, Slug: "home"},
		{ID: 2, Slug: "legacy"},
	}}
	svc, _ := testService(t, store)

	result, err := svc.Refresh(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"about", "contact"}, result.Missing)
	assert.Equal(t, []string{"home"}, result.Present)
	assert.Equal(t, []string{"legacy"}, result.Extra, "undeclared remote pages are reported, not touched")

	state := svc.State()
	assert.Equal(t, StatusIdle, state.Status)
	assert.Equal(t, 3, state.Summary.Declared)
	assert.Equal(t, 2, state.Summary.Remote)
	assert.Equal(t, 2, state.Summary.Missing)
}

func TestSyncCreatesMissingPages(t *testing.T) {
	store := &fakePageStore{pages: []models.PageRecord{{ID: 1, Slug: "home"}}}
	svc, fs := testService(t, store)

	require.NoError(t, svc.Sync(context.Background()))

	require.Equal(t, 1, store.inserts, "missing pages go in one batched insert")
	require.Len(t, store.pages, 3)

	about := store.pages[1]
	assert.Equal(t, "about", about.Slug)
	assert.Equal(t, "About", about.Name)
	assert.Equal(t, "Who we are", about.Description, "description falls back to the first declared section")
	assert.Equal(t, "info", about.Icon)
	assert.Equal(t, 2, about.DisplayOrder, "ordering is manifest position plus one")

	contact := store.pages[2]
	assert.Equal(t, "contact", contact.Slug)
	assert.Equal(t, 3, contact.DisplayOrder)

	state := svc.State()
	assert.Equal(t, StatusSuccess, state.Status)
	assert.Empty(t, state.Missing, "diff is recomputed after the insert")
	assert.False(t, state.LastSynced.IsZero())

	// The last-synced marker survives on disk.
	data, err := afero.ReadFile(fs, "structure_state.json")
	require.NoError(t, err)
	var marker syncMarker
	require.NoError(t, json.Unmarshal(data, &marker))
	assert.Equal(t, []string{"about", "contact"}, marker.PagesCreated)
	assert.False(t, marker.LastSynced.IsZero())
}

func TestSyncWithNothingMissingIsNoopSuccess(t *testing.T) {
	store := &fakePageStore{pages: []models.PageRecord{
		{ID: 1, Slug: "home"},
		{ID: 2, Slug: "about"},
		{ID: 3, Slug: "contact"},
	}}
	svc, _ := testService(t, store)

	require.NoError(t, svc.Sync(context.Background()))
	assert.Zero(t, store.inserts)
	assert.Equal(t, StatusSuccess, svc.State().Status)
}

func TestSuccessRevertsToIdle(t *testing.T) {
	store := &fakePageStore{pages: []models.PageRecord{
		{ID: 1, Slug: "home"},
		{ID: 2, Slug: "about"},
		{ID: 3, Slug: "contact"},
	}}
	svc, _ := testService(t, store)

	require.NoError(t, svc.Sync(context.Background()))
	assert.Equal(t, StatusSuccess, svc.State().Status)

	require.Eventually(t, func() bool {
		return svc.State().Status == StatusIdle
	}, time.Second, 5*time.Millisecond)
}

func TestSyncErrorIsStickyUntilNextCall(t *testing.T) {
	store := &fakePageStore{listErr: errors.New("store unreachable")}
	svc, _ := testService(t, store)

	require.Error(t, svc.Sync(context.Background()))

	state := svc.State()
	assert.Equal(t, StatusError, state.Status)
	assert.Contains(t, state.Error, "store unreachable")

	// Error sticks well past the success-revert delay.
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, StatusError, svc.State().Status)

	// The next explicit call clears it.
	store.mu.Lock()
	store.listErr = nil
	store.pages = []models.PageRecord{{ID: 1, Slug: "home"}}
	store.mu.Unlock()

	_, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	state = svc.State()
	assert.Equal(t, StatusIdle, state.Status)
	assert.Empty(t, state.Error)
}

func TestInsertFailureRetainsMessage(t *testing.T) {
	store := &fakePageStore{
		pages:     []models.PageRecord{{ID: 1, Slug: "home"}},
		insertErr: errors.New("duplicate key"),
	}
	svc, _ := testService(t, store)

	err := svc.Sync(context.Background())
	require.Error(t, err)

	state := svc.State()
	assert.Equal(t, StatusError, state.Status)
	assert.Contains(t, state.Error, "duplicate key")
}

func TestLastSyncedMarkerRestoredOnStartup(t *testing.T) {
	fs := afero.NewMemMapFs()
	stamp := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	data, err := json.Marshal(syncMarker{LastSynced: stamp, PagesCreated: []string{"about"}})
	require.NoError(t, err)
	require.NoError(t, afero.WriteFile(fs, "structure_state.json", data, 0o644))

	cfg := Config{StatePath: "structure_state.json", SuccessRevertMS: 30}
	svc := NewService(&fakePageStore{}, zap.NewNop(), fs, testManifest(t), cfg)

	assert.True(t, svc.State().LastSynced.Equal(stamp))
}
