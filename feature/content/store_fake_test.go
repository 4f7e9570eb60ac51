package content

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"content-sync/feature/content/models"
)

// fakeStore is an in-memory Store for exercising the sync logic without a
// database. Rows are keyed by (page_id, content_key) like the real table.
type fakeStore struct {
	mu      sync.Mutex
	pages   []models.PageRecord
	content map[string]models.ContentRow
	media   []models.MediaRow

	listPagesErr   error
	listContentErr error
	// failKeys marks content keys whose writes are rejected. An upsert batch
	// containing a poisoned row fails wholesale, mirroring a real batch.
	failKeys map[string]bool

	upsertCalls int
	rowsWritten int
}

func newFakeStore(pages ...models.PageRecord) *fakeStore {
	return &fakeStore{
		pages:    pages,
		content:  make(map[string]models.ContentRow),
		failKeys: make(map[string]bool),
	}
}

func contentMapKey(pageID uint, contentKey string) string {
	return fmt.Sprintf("%d|%s", pageID, contentKey)
}

func (f *fakeStore) ListPages(ctx context.Context) ([]models.PageRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listPagesErr != nil {
		return nil, f.listPagesErr
	}
	out := make([]models.PageRecord, len(f.pages))
	copy(out, f.pages)
	return out, nil
}

func (f *fakeStore) PageBySlug(ctx context.Context, slug string) (*models.PageRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listPagesErr != nil {
		return nil, f.listPagesErr
	}
	for _, p := range f.pages {
		if p.Slug == slug {
			record := p
			return &record, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) InsertPages(ctx context.Context, records []models.PageRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range records {
		if r.ID == 0 {
			r.ID = uint(len(f.pages) + 1)
		}
		f.pages = append(f.pages, r)
	}
	return nil
}

func (f *fakeStore) ListContent(ctx context.Context) ([]models.ContentRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listContentErr != nil {
		return nil, f.listContentErr
	}
	out := make([]models.ContentRow, 0, len(f.content))
	for _, row := range f.content {
		out = append(out, row)
	}
	return out, nil
}

func (f *fakeStore) ContentForPageSection(ctx context.Context, pageID uint, section string) ([]models.ContentRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.ContentRow
	for _, row := range f.content {
		if row.PageID == pageID && row.Section == section {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeStore) MediaForPageSection(ctx context.Context, pageID uint, section string) ([]models.MediaRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.MediaRow
	for _, row := range f.media {
		if row.PageID == pageID && row.Section == section {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeStore) UpsertContent(ctx context.Context, rows []models.ContentRow) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upsertCalls++
	for _, row := range rows {
		if f.failKeys[row.ContentKey] {
			return errors.New("store rejected row " + row.ContentKey)
		}
	}
	for _, row := range rows {
		key := contentMapKey(row.PageID, row.ContentKey)
		if existing, ok := f.content[key]; ok {
			row.ID = existing.ID
			row.Label = existing.Label
			row.DisplayOrder = existing.DisplayOrder
		} else {
			row.ID = uint(len(f.content) + 1)
		}
		f.content[key] = row
		f.rowsWritten++
	}
	return nil
}

func (f *fakeStore) row(pageID uint, contentKey string) (models.ContentRow, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.content[contentMapKey(pageID, contentKey)]
	return row, ok
}

func (f *fakeStore) writeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rowsWritten
}
