package content

import (
	"context"
	"fmt"

	"content-sync/core/notify"
	"content-sync/core/utils"
	"content-sync/feature/content/models"

	"go.uber.org/zap"
)

// RowFailure describes one row that could not be persisted.
type RowFailure struct {
	Page       string `json:"page"`
	ContentKey string `json:"content_key"`
	Reason     string `json:"reason"`
}

// SaveResult reports the outcome of a save. Save never returns an error:
// every failure mode is folded into this result.
type SaveResult struct {
	// Attempted is the number of grouped rows the save tried to write.
	Attempted int `json:"attempted"`
	// Saved is the number of rows actually written.
	Saved int `json:"saved"`
	// Skipped lists rows dropped before writing (unresolvable page).
	Skipped []RowFailure `json:"skipped,omitempty"`
	// Failed lists rows the store rejected.
	Failed []RowFailure `json:"failed,omitempty"`
}

// OK reports whether everything that was attempted got written.
func (r SaveResult) OK() bool {
	return len(r.Skipped) == 0 && len(r.Failed) == 0
}

// groupKey identifies one remote row: a field spanning all languages.
type groupKey struct {
	Page    string
	Section string
	Field   string
}

// Save drains the pending-change queue into the remote store.
//
// It snapshots both the pending set and the tree up front, groups changes
// into one row per field, seeds every language column from the tree snapshot
// (a save touching one language must not blank the others), then upserts in
// batches with a per-row fallback. Only the keys whose snapshotted values
// made it to the store are cleared; a second Save with nothing pending
// performs zero remote writes.
func (s *Service) Save(ctx context.Context) SaveResult {
	pending := s.tracker.snapshotPending()
	if len(pending) == 0 {
		return SaveResult{}
	}
	treeSnap := s.tree.Snapshot()

	// Coalesce the flat change list into row groups.
	groups := make(map[groupKey][]PendingKey)
	for key := range pending {
		g := groupKey{Page: key.Page, Section: key.Section, Field: key.Field}
		groups[g] = append(groups[g], key)
	}

	result := SaveResult{Attempted: len(groups)}

	pageIDs, err := s.pageIDsBySlug(ctx)
	if err != nil {
		// Transport failure before any write: everything stays pending.
		s.logger.Warn("save aborted, page lookup failed", zap.Error(err))
		s.notifier.Push(notify.LevelError, fmt.Sprintf("save failed: %v", err))
		for g := range groups {
			result.Failed = append(result.Failed, RowFailure{
				Page:       g.Page,
				ContentKey: models.ContentKey(g.Section, g.Field),
				Reason:     err.Error(),
			})
		}
		return result
	}

	var (
		rows     []models.ContentRow
		rowKeys  = make(map[int][]PendingKey) // row index -> pending keys it carries
		rowGroup = make(map[int]groupKey)
	)
	for g, keys := range groups {
		pageID, ok := pageIDs[g.Page]
		if !ok {
			// One bad row never aborts the rest; its edits stay pending.
			s.logger.Warn("skipping row for unknown page",
				zap.String("page", g.Page),
				zap.String("content_key", models.ContentKey(g.Section, g.Field)))
			result.Skipped = append(result.Skipped, RowFailure{
				Page:       g.Page,
				ContentKey: models.ContentKey(g.Section, g.Field),
				Reason:     "page not found in remote store",
			})
			continue
		}

		row := models.ContentRow{
			PageID:     pageID,
			Section:    g.Section,
			ContentKey: models.ContentKey(g.Section, g.Field),
		}
		// Seed all language columns from the tree snapshot first.
		if lv, ok := treeSnap[g.Page][g.Section][g.Field]; ok {
			for _, code := range models.Languages {
				if v, ok := lv.Get(code); ok && !v.IsZero() {
					row.SetColumn(code, v.EncodeColumn())
				}
			}
		}
		// Pending values win over the snapshot seed for their own language.
		for _, key := range keys {
			row.SetColumn(key.Lang, pending[key].EncodeColumn())
		}

		idx := len(rows)
		rows = append(rows, row)
		rowKeys[idx] = keys
		rowGroup[idx] = g
	}

	saved := make(map[PendingKey]models.Value)
	offset := 0
	for _, batch := range utils.Chunk(rows, s.cfg.BatchSize) {
		if err := s.store.UpsertContent(ctx, batch); err == nil {
			for i := range batch {
				s.markRowSaved(offset+i, rowKeys, pending, saved)
			}
			result.Saved += len(batch)
			offset += len(batch)
			continue
		}

		// Batch failed: retry row by row so one malformed row cannot block
		// the rest.
		for i, row := range batch {
			if err := s.store.UpsertContent(ctx, []models.ContentRow{row}); err != nil {
				g := rowGroup[offset+i]
				s.logger.Warn("row upsert failed",
					zap.String("page", g.Page),
					zap.String("content_key", row.ContentKey),
					zap.Error(err))
				result.Failed = append(result.Failed, RowFailure{
					Page:       g.Page,
					ContentKey: row.ContentKey,
					Reason:     err.Error(),
				})
				continue
			}
			s.markRowSaved(offset+i, rowKeys, pending, saved)
			result.Saved++
		}
		offset += len(batch)
	}

	s.tracker.clearSaved(saved)

	if result.OK() {
		s.notifier.Push(notify.LevelSuccess, fmt.Sprintf("saved %d content rows", result.Saved))
	} else {
		s.notifier.Push(notify.LevelWarning, fmt.Sprintf(
			"saved %d content rows, %d skipped, %d failed",
			result.Saved, len(result.Skipped), len(result.Failed)))
	}
	return result
}

// markRowSaved collects the pending keys carried by a successfully written row.
func (s *Service) markRowSaved(idx int, rowKeys map[int][]PendingKey, pending, saved map[PendingKey]models.Value) {
	for _, key := range rowKeys[idx] {
		saved[key] = pending[key]
	}
}

// pageIDsBySlug loads the known pages once and indexes them by slug.
func (s *Service) pageIDsBySlug(ctx context.Context) (map[string]uint, error) {
	pages, err := s.store.ListPages(ctx)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]uint, len(pages))
	for _, p := range pages {
		ids[p.Slug] = p.ID
	}
	return ids, nil
}
