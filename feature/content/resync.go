package content

import (
	"context"
	"fmt"

	"content-sync/core/diff"
	"content-sync/core/notify"
	"content-sync/core/utils"
	"content-sync/feature/content/models"

	"go.uber.org/zap"
)

// ResyncResult reports the outcome of a forced full resync.
type ResyncResult struct {
	// Rows is the number of rows the fallback snapshot produced.
	Rows int `json:"rows"`
	// Written is the number of rows successfully upserted.
	Written int `json:"written"`
	// MissingPages lists fallback pages absent from the remote store;
	// their rows are skipped (page creation belongs to structure sync).
	MissingPages []string `json:"missing_pages,omitempty"`
	// Failed lists rows the store rejected.
	Failed []RowFailure `json:"failed,omitempty"`
}

// Resync rebuilds remote content purely from the bundled fallback snapshot,
// bypassing whatever is cached in memory. It exists to recover from a
// corrupted remote state: every fallback row is upserted in fixed-size
// batches, with a per-row fallback when a batch fails.
func (s *Service) Resync(ctx context.Context) (ResyncResult, error) {
	pages, err := s.store.ListPages(ctx)
	if err != nil {
		return ResyncResult{}, fmt.Errorf("resync: loading pages: %w", err)
	}
	idBySlug := make(map[string]uint, len(pages))
	remoteSlugs := make([]string, 0, len(pages))
	for _, p := range pages {
		idBySlug[p.Slug] = p.ID
		remoteSlugs = append(remoteSlugs, p.Slug)
	}

	declared := make([]string, 0, len(s.fallback))
	for slug := range s.fallback {
		declared = append(declared, slug)
	}
	pageDiff := diff.Keys(declared, remoteSlugs)

	var (
		rows     []models.ContentRow
		rowSlugs []string
	)
	for _, slug := range pageDiff.Present {
		pageID := idBySlug[slug]
		for section, fields := range s.fallback[slug] {
			for field, langs := range fields {
				row := models.ContentRow{
					PageID:     pageID,
					Section:    section,
					ContentKey: models.ContentKey(section, field),
				}
				for code, value := range langs {
					if !value.IsZero() {
						row.SetColumn(code, value.EncodeColumn())
					}
				}
				rows = append(rows, row)
				rowSlugs = append(rowSlugs, slug)
			}
		}
	}

	result := ResyncResult{
		Rows:         len(rows),
		MissingPages: pageDiff.Missing,
	}

	offset := 0
	for _, batch := range utils.Chunk(rows, s.cfg.BatchSize) {
		if err := s.store.UpsertContent(ctx, batch); err == nil {
			result.Written += len(batch)
			offset += len(batch)
			continue
		}

		// One malformed row must not block the rest of the batch.
		for i, row := range batch {
			if err := s.store.UpsertContent(ctx, []models.ContentRow{row}); err != nil {
				s.logger.Warn("resync row failed",
					zap.String("page", rowSlugs[offset+i]),
					zap.String("content_key", row.ContentKey),
					zap.Error(err))
				result.Failed = append(result.Failed, RowFailure{
					Page:       rowSlugs[offset+i],
					ContentKey: row.ContentKey,
					Reason:     err.Error(),
				})
				continue
			}
			result.Written++
		}
		offset += len(batch)
	}

	if len(result.Failed) == 0 && len(result.MissingPages) == 0 {
		s.notifier.Push(notify.LevelSuccess, fmt.Sprintf("full resync wrote %d rows", result.Written))
	} else {
		s.notifier.Push(notify.LevelWarning, fmt.Sprintf(
			"full resync wrote %d/%d rows, %d pages missing remotely",
			result.Written, result.Rows, len(result.MissingPages)))
	}
	return result, nil
}
