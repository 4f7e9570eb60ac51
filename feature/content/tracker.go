package content

import (
	"sync"

	"content-sync/feature/content/models"
)

// PendingKey identifies one recorded edit: a single field in one language.
type PendingKey struct {
	Page    string `json:"page"`
	Section string `json:"section"`
	Field   string `json:"field"`
	Lang    string `json:"lang"`
}

// Tracker records local edits as coalescing pending changes. The tree is
// the authoritative local cache, mutated synchronously on every edit; the
// pending map is the outbound queue a save drains.
type Tracker struct {
	mu      sync.Mutex
	tree    *Tree
	pending map[PendingKey]models.Value
}

// NewTracker creates a tracker over the given tree.
func NewTracker(tree *Tree) *Tracker {
	return &Tracker{
		tree:    tree,
		pending: make(map[PendingKey]models.Value),
	}
}

// RecordEdit applies the edit to the tree and upserts the pending entry.
// At most one entry exists per key: later edits overwrite earlier ones, so
// a save transmits only final values.
func (tr *Tracker) RecordEdit(page, section, field, lang string, v models.Value) error {
	if err := tr.tree.Set(page, section, field, lang, v); err != nil {
		return err
	}

	tr.mu.Lock()
	tr.pending[PendingKey{Page: page, Section: section, Field: field, Lang: lang}] = v.Clone()
	tr.mu.Unlock()
	return nil
}

// Dirty reports whether there are unsaved changes.
func (tr *Tracker) Dirty() bool {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	return len(tr.pending) > 0
}

// PendingCount returns the number of distinct pending keys.
func (tr *Tracker) PendingCount() int {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	return len(tr.pending)
}

// snapshotPending copies the pending set at call time. Saves work from this
// copy so edits arriving mid-save neither corrupt the write nor disappear
// from the next save.
func (tr *Tracker) snapshotPending() map[PendingKey]models.Value {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	snap := make(map[PendingKey]models.Value, len(tr.pending))
	for key, v := range tr.pending {
		snap[key] = v.Clone()
	}
	return snap
}

// clearSaved removes the given snapshot entries from the pending set, but
// only where the live value is still the one that was saved. A key re-edited
// mid-save keeps its newer value pending.
func (tr *Tracker) clearSaved(saved map[PendingKey]models.Value) {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	for key, savedValue := range saved {
		if current, ok := tr.pending[key]; ok && current.Equal(savedValue) {
			delete(tr.pending, key)
		}
	}
}
