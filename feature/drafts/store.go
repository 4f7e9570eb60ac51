package drafts

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is the remote-access contract for the drafts table.
type Store interface {
	// UpsertDraft writes one draft row, replacing the fields payload when
	// the (page_slug, section) key already exists.
	UpsertDraft(ctx context.Context, row DraftRow) error
	// DraftForSection returns the draft of one page section; (nil, nil)
	// when there is none.
	DraftForSection(ctx context.Context, page, section string) (*DraftRow, error)
	// DeleteDrafts removes all drafts of one page section.
	DeleteDrafts(ctx context.Context, page, section string) error
}

// GormStore implements Store over a GORM connection.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps a database connection.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// UpsertDraft writes the row through a native insert-or-update on the
// (page_slug, section) unique key.
func (s *GormStore) UpsertDraft(ctx context.Context, row DraftRow) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "page_slug"}, {Name: "section"}},
		DoUpdates: clause.AssignmentColumns([]string{"fields", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to upsert draft %s/%s: %w", row.PageSlug, row.Section, err)
	}
	return nil
}

// DraftForSection loads the draft row of one page section.
func (s *GormStore) DraftForSection(ctx context.Context, page, section string) (*DraftRow, error) {
	var row DraftRow
	err := s.db.WithContext(ctx).
		Where("page_slug = ? AND section = ?", page, section).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load draft %s/%s: %w", page, section, err)
	}
	return &row, nil
}

// DeleteDrafts removes the drafts of one page section.
func (s *GormStore) DeleteDrafts(ctx context.Context, page, section string) error {
	err := s.db.WithContext(ctx).
		Where("page_slug = ? AND section = ?", page, section).
		Delete(&DraftRow{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete drafts %s/%s: %w", page, section, err)
	}
	return nil
}
