package content

import (
	"fmt"
	"sync"

	"content-sync/feature/content/models"
)

// Tree is the canonical in-memory content structure:
// page -> section -> field -> language -> value.
//
// Reads fall back to the primary language and then to the empty scalar; an
// unknown path is absence, never an error. Writes validate language codes.
type Tree struct {
	mu    sync.RWMutex
	pages map[string]map[string]map[string]*models.LangValues
}

// TreeSnapshot is an immutable deep copy of the tree contents.
type TreeSnapshot map[string]map[string]map[string]models.LangValues

// NewTree creates an empty content tree.
func NewTree() *Tree {
	return &Tree{pages: make(map[string]map[string]map[string]*models.LangValues)}
}

// Set stores a value, creating intermediate nodes as needed.
// Unknown language codes are rejected at this boundary.
func (t *Tree) Set(page, section, field, lang string, v models.Value) error {
	if !models.IsLanguage(lang) {
		return fmt.Errorf("unknown language code %q", lang)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	sections, ok := t.pages[page]
	if !ok {
		sections = make(map[string]map[string]*models.LangValues)
		t.pages[page] = sections
	}
	fields, ok := sections[section]
	if !ok {
		fields = make(map[string]*models.LangValues)
		sections[section] = fields
	}
	lv, ok := fields[field]
	if !ok {
		lv = &models.LangValues{}
		fields[field] = lv
	}
	lv.Set(lang, v.Clone())
	return nil
}

// Value returns the value for (page, section, field, lang), falling back to
// the primary language and finally to the empty scalar. Absence is an empty
// value, never an error.
func (t *Tree) Value(page, section, field, lang string) models.Value {
	t.mu.RLock()
	defer t.mu.RUnlock()

	lv := t.lookup(page, section, field)
	if lv == nil {
		return models.ScalarValue("")
	}
	if v, ok := lv.Get(lang); ok && !v.IsZero() {
		return v.Clone()
	}
	if v, ok := lv.Get(models.PrimaryLanguage); ok && !v.IsZero() {
		return v.Clone()
	}
	return models.ScalarValue("")
}

// Languages returns a copy of the full language record for a field, with
// ok=false when the field is absent.
func (t *Tree) Languages(page, section, field string) (models.LangValues, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	lv := t.lookup(page, section, field)
	if lv == nil {
		return models.LangValues{}, false
	}
	return lv.Clone(), true
}

// lookup must be called with at least a read lock held.
func (t *Tree) lookup(page, section, field string) *models.LangValues {
	sections, ok := t.pages[page]
	if !ok {
		return nil
	}
	fields, ok := sections[section]
	if !ok {
		return nil
	}
	return fields[field]
}

// Snapshot returns a deep copy of the whole tree. Saves operate on the
// snapshot so edits arriving mid-save cannot corrupt the rows being written.
func (t *Tree) Snapshot() TreeSnapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()

	snap := make(TreeSnapshot, len(t.pages))
	for page, sections := range t.pages {
		pageCopy := make(map[string]map[string]models.LangValues, len(sections))
		for section, fields := range sections {
			sectionCopy := make(map[string]models.LangValues, len(fields))
			for field, lv := range fields {
				sectionCopy[field] = lv.Clone()
			}
			pageCopy[section] = sectionCopy
		}
		snap[page] = pageCopy
	}
	return snap
}

// Pages returns the page slugs currently present in the tree.
func (t *Tree) Pages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	slugs := make([]string, 0, len(t.pages))
	for page := range t.pages {
		slugs = append(slugs, page)
	}
	return slugs
}
