package content

import (
	"context"
	"fmt"
	"sync"
	"time"

	"content-sync/core/notify"
	"content-sync/feature/content/models"

	"go.uber.org/zap"
)

// Service owns the content tree and its synchronization with the remote
// store: remote load, edit tracking and persistence.
type Service struct {
	store    Store
	tree     *Tree
	tracker  *Tracker
	logger   *zap.Logger
	notifier *notify.Notifier
	cfg      Config
	fallback FallbackDoc

	mu       sync.Mutex
	loadedAt time.Time
}

// NewService creates the content service and seeds the tree from the
// fallback snapshot, so reads work before (and without) a remote load.
func NewService(store Store, logger *zap.Logger, notifier *notify.Notifier, cfg Config, fallback FallbackDoc) *Service {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}
	tree := NewTree()
	tree.Seed(fallback)
	return &Service{
		store:    store,
		tree:     tree,
		tracker:  NewTracker(tree),
		logger:   logger,
		notifier: notifier,
		cfg:      cfg,
		fallback: fallback,
	}
}

// Tree exposes the canonical in-memory tree.
func (s *Service) Tree() *Tree {
	return s.tree
}

// Load merges remote content rows over the fallback-seeded tree; remote
// values win per key. A transport failure leaves the tree untouched and is
// returned for the caller to treat as non-fatal: editing continues in
// fallback-only degraded mode.
func (s *Service) Load(ctx context.Context) error {
	pages, err := s.store.ListPages(ctx)
	if err != nil {
		s.notifier.Push(notify.LevelWarning, "remote store unreachable, serving fallback content")
		return fmt.Errorf("loading pages: %w", err)
	}
	rows, err := s.store.ListContent(ctx)
	if err != nil {
		s.notifier.Push(notify.LevelWarning, "remote store unreachable, serving fallback content")
		return fmt.Errorf("loading content rows: %w", err)
	}

	slugByID := make(map[uint]string, len(pages))
	for _, p := range pages {
		slugByID[p.ID] = p.Slug
	}

	merged, orphans := 0, 0
	for _, row := range rows {
		slug, ok := slugByID[row.PageID]
		if !ok {
			// Orphan rows never synthesize pages.
			orphans++
			s.logger.Warn("dropping orphan content row",
				zap.Uint("page_id", row.PageID),
				zap.String("content_key", row.ContentKey))
			continue
		}

		field := models.FieldFromKey(row.ContentKey, row.Section)
		for _, code := range models.Languages {
			raw, _ := row.Column(code)
			if raw == "" {
				continue
			}
			if err := s.tree.Set(slug, row.Section, field, code, models.DecodeColumn(raw)); err != nil {
				s.logger.Warn("skipping content value", zap.Error(err))
			}
		}
		merged++
	}

	s.mu.Lock()
	s.loadedAt = time.Now()
	s.mu.Unlock()

	s.logger.Info("content tree hydrated",
		zap.Int("rows", merged),
		zap.Int("orphans", orphans),
		zap.Int("pages", len(pages)))
	return nil
}

// GetValue reads one field value with primary-language fallback. Absence is
// the empty scalar.
func (s *Service) GetValue(page, section, field, lang string) models.Value {
	return s.tree.Value(page, section, field, lang)
}

// RecordEdit applies a local edit synchronously and queues it for the next
// save.
func (s *Service) RecordEdit(page, section, field, lang string, v models.Value) error {
	return s.tracker.RecordEdit(page, section, field, lang, v)
}

// Dirty reports whether unsaved changes exist.
func (s *Service) Dirty() bool {
	return s.tracker.Dirty()
}

// PendingCount returns the number of pending change entries.
func (s *Service) PendingCount() int {
	return s.tracker.PendingCount()
}

// LoadedAt returns the time of the last successful remote load.
func (s *Service) LoadedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadedAt
}

// StartDrain launches the background task that periodically drains the
// pending-change queue. It returns a stop function. With a non-positive
// interval the task is disabled and saves happen only on explicit request.
func (s *Service) StartDrain(ctx context.Context, interval time.Duration) func() {
	if interval <= 0 {
		return func() {}
	}

	drainCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-drainCtx.Done():
				return
			case <-ticker.C:
				if s.tracker.Dirty() {
					result := s.Save(drainCtx)
					s.logger.Debug("drain save completed",
						zap.Int("saved", result.Saved),
						zap.Int("failed", len(result.Failed)))
				}
			}
		}
	}()

	return func() {
		cancel()
		<-done
	}
}
