package content

import (
	"context"
	"errors"
	"fmt"

	"content-sync/feature/content/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is the remote-access contract the sync features consume: row query,
// row upsert and page lookup against the relational content store. The
// schema itself is owned externally.
type Store interface {
	// ListPages returns every page record.
	ListPages(ctx context.Context) ([]models.PageRecord, error)
	// PageBySlug resolves a page by slug; (nil, nil) when absent.
	PageBySlug(ctx context.Context, slug string) (*models.PageRecord, error)
	// InsertPages inserts page records in one call.
	InsertPages(ctx context.Context, records []models.PageRecord) error
	// ListContent returns every content row.
	ListContent(ctx context.Context) ([]models.ContentRow, error)
	// ContentForPageSection returns content rows for one page section,
	// ordered for display.
	ContentForPageSection(ctx context.Context, pageID uint, section string) ([]models.ContentRow, error)
	// MediaForPageSection returns media rows for one page section.
	MediaForPageSection(ctx context.Context, pageID uint, section string) ([]models.MediaRow, error)
	// UpsertContent inserts rows, updating section and language columns when
	// the unique key (page_id, content_key) already exists. The single
	// native call closes the check-then-insert race window.
	UpsertContent(ctx context.Context, rows []models.ContentRow) error
}

// GormStore implements Store over a GORM connection.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps a database connection.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// ListPages returns every page record ordered by display order.
func (s *GormStore) ListPages(ctx context.Context) ([]models.PageRecord, error) {
	var records []models.PageRecord
	if err := s.db.WithContext(ctx).Order("display_order").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list pages: %w", err)
	}
	return records, nil
}

// PageBySlug resolves a page by slug. Absence is (nil, nil): callers must
// distinguish a missing page from a failed lookup.
func (s *GormStore) PageBySlug(ctx context.Context, slug string) (*models.PageRecord, error) {
	var record models.PageRecord
	err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up page %s: %w", slug, err)
	}
	return &record, nil
}

// InsertPages inserts page records in one batched call.
func (s *GormStore) InsertPages(ctx context.Context, records []models.PageRecord) error {
	if len(records) == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).Create(&records).Error; err != nil {
		return fmt.Errorf("failed to insert pages: %w", err)
	}
	return nil
}

// ListContent returns every content row.
func (s *GormStore) ListContent(ctx context.Context) ([]models.ContentRow, error) {
	var rows []models.ContentRow
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list content rows: %w", err)
	}
	return rows, nil
}

// ContentForPageSection returns the content rows of one page section.
func (s *GormStore) ContentForPageSection(ctx context.Context, pageID uint, section string) ([]models.ContentRow, error) {
	var rows []models.ContentRow
	err := s.db.WithContext(ctx).
		Where("page_id = ? AND section = ?", pageID, section).
		Order("display_order").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query content for page %d section %s: %w", pageID, section, err)
	}
	return rows, nil
}

// MediaForPageSection returns the media rows of one page section.
func (s *GormStore) MediaForPageSection(ctx context.Context, pageID uint, section string) ([]models.MediaRow, error) {
	var rows []models.MediaRow
	err := s.db.WithContext(ctx).
		Where("page_id = ? AND section = ?", pageID, section).
		Order("display_order").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query media for page %d section %s: %w", pageID, section, err)
	}
	return rows, nil
}

// UpsertContent writes rows through a native insert-or-update on the
// (page_id, content_key) unique key. Label and display order are left
// untouched on update; they belong to the row's editorial metadata, not to
// the value payload.
func (s *GormStore) UpsertContent(ctx context.Context, rows []models.ContentRow) error {
	if len(rows) == 0 {
		return nil
	}
	assigned := append([]string{"section"}, models.LangColumns()...)
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "page_id"}, {Name: "content_key"}},
		DoUpdates: clause.AssignmentColumns(assigned),
	}).Create(&rows).Error
	if err != nil {
		return fmt.Errorf("failed to upsert content rows: %w", err)
	}
	return nil
}
