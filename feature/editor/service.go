package editor

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"content-sync/core/storage"
	"content-sync/feature/content/models"
)

// Store is the slice of the remote-access contract the editor reads through.
type Store interface {
	PageBySlug(ctx context.Context, slug string) (*models.PageRecord, error)
	ContentForPageSection(ctx context.Context, pageID uint, section string) ([]models.ContentRow, error)
	MediaForPageSection(ctx context.Context, pageID uint, section string) ([]models.MediaRow, error)
}

// MediaItem is a media row resolved to a time-limited URL. The URL is empty
// when no storage client is configured or presigning failed.
type MediaItem struct {
	models.MediaRow
	URL string `json:"url"`
}

// Result is everything the editing surface needs for one page section.
// Errors never propagate out of Fetch; they land in Error as a message,
// and page absence is the distinct PageNotFound flag, never an error.
type Result struct {
	Page         *models.PageRecord  `json:"page,omitempty"`
	Content      []models.ContentRow `json:"content"`
	Media        []MediaItem         `json:"media"`
	PageNotFound bool                `json:"page_not_found"`
	Error        string              `json:"error,omitempty"`
	FetchedAt    time.Time           `json:"fetched_at"`
}

// Service is the read-only composition behind the editing surface: page by
// slug, then that section's content and media rows in parallel.
type Service struct {
	store  Store
	media  storage.Client
	logger *zap.Logger

	bucket        string
	presignExpiry time.Duration
}

// NewService creates the editor service. media may be nil, in which case
// media rows come back without URLs.
func NewService(store Store, media storage.Client, logger *zap.Logger, storageCfg storage.Config) *Service {
	expiry := time.Duration(storageCfg.PresignExpiryMinutes) * time.Minute
	if expiry <= 0 {
		expiry = time.Hour
	}
	return &Service{
		store:         store,
		media:         media,
		logger:        logger,
		bucket:        storageCfg.Bucket,
		presignExpiry: expiry,
	}
}

// Fetch loads one page section for editing. Both identifiers are required;
// with either missing it reports a validation error without contacting the
// store. An absent page sets PageNotFound with cleared content and media.
func (s *Service) Fetch(ctx context.Context, pageSlug, sectionID string) Result {
	result := Result{
		Content:   []models.ContentRow{},
		Media:     []MediaItem{},
		FetchedAt: time.Now(),
	}

	if pageSlug == "" || sectionID == "" {
		result.Error = "page slug and section id are required"
		return result
	}

	page, err := s.store.PageBySlug(ctx, pageSlug)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	if page == nil {
		result.PageNotFound = true
		return result
	}
	result.Page = page

	var (
		wg         sync.WaitGroup
		content    []models.ContentRow
		contentErr error
		media      []models.MediaRow
		mediaErr   error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		content, contentErr = s.store.ContentForPageSection(ctx, page.ID, sectionID)
	}()
	go func() {
		defer wg.Done()
		media, mediaErr = s.store.MediaForPageSection(ctx, page.ID, sectionID)
	}()
	wg.Wait()

	if contentErr != nil {
		result.Error = contentErr.Error()
		return result
	}
	if mediaErr != nil {
		result.Error = mediaErr.Error()
		return result
	}

	if content != nil {
		result.Content = content
	}
	result.Media = s.resolveMedia(ctx, media)
	return result
}

// resolveMedia attaches presigned URLs. A presign failure on one object
// degrades that item to an empty URL rather than failing the fetch.
func (s *Service) resolveMedia(ctx context.Context, rows []models.MediaRow) []MediaItem {
	items := make([]MediaItem, 0, len(rows))
	for _, row := range rows {
		item := MediaItem{MediaRow: row}
		if s.media != nil && row.ObjectKey != "" {
			signed, err := s.media.PresignedGetObject(ctx, s.bucket, row.ObjectKey, s.presignExpiry, nil)
			if err != nil {
				s.logger.Warn("failed to presign media object",
					zap.String("object_key", row.ObjectKey),
					zap.Error(err))
			} else {
				item.URL = signed.String()
			}
		}
		items = append(items, item)
	}
	return items
}
