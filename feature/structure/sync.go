package structure

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"content-sync/core/diff"
	"content-sync/feature/content/models"
)

// Status is the sync state machine position. Idle is both initial and
// resting; loading and syncing are transient; success auto-reverts to idle
// after a short delay; error sticks until the next Refresh or Sync call.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSyncing Status = "syncing"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// PageStore is the slice of the remote-access contract the sync needs.
type PageStore interface {
	ListPages(ctx context.Context) ([]models.PageRecord, error)
	InsertPages(ctx context.Context, records []models.PageRecord) error
}

// State is an observable snapshot of the sync.
type State struct {
	Status     Status       `json:"status"`
	Error      string       `json:"error,omitempty"`
	Missing    []string     `json:"missing"`
	Summary    diff.Summary `json:"summary"`
	LastSynced time.Time    `json:"last_synced"`
}

// syncMarker is the durable last-synced record.
type syncMarker struct {
	LastSynced   time.Time `json:"last_synced"`
	PagesCreated []string  `json:"pages_created"`
}

// Service reconciles the declared page manifest against remote page
// records, one-way: missing pages are created, remote extras are only
// reported, never deleted.
type Service struct {
	store    PageStore
	logger   *zap.Logger
	fs       afero.Fs
	manifest Manifest
	cfg      Config

	mu         sync.Mutex
	status     Status
	lastErr    string
	missing    []string
	summary    diff.Summary
	lastSynced time.Time
	revert     *time.Timer
}

// NewService creates the sync service. A previously persisted last-synced
// marker is restored when present.
func NewService(store PageStore, logger *zap.Logger, fs afero.Fs, manifest Manifest, cfg Config) *Service {
	s := &Service{
		store:    store,
		logger:   logger,
		fs:       fs,
		manifest: manifest,
		cfg:      cfg,
		status:   StatusIdle,
		missing:  []string{},
	}
	if marker, err := s.readMarker(); err == nil && marker != nil {
		s.lastSynced = marker.LastSynced
	}
	return s
}

// State returns a snapshot of the current sync state.
func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	missing := make([]string, len(s.missing))
	copy(missing, s.missing)
	return State{
		Status:     s.status,
		Error:      s.lastErr,
		Missing:    missing,
		Summary:    s.summary,
		LastSynced: s.lastSynced,
	}
}

// Refresh recomputes the manifest/remote difference and returns it.
func (s *Service) Refresh(ctx context.Context) (diff.Result, error) {
	s.transition(StatusLoading)

	result, err := s.compare(ctx)
	if err != nil {
		s.fail(err)
		return diff.Result{}, err
	}

	s.transition(StatusIdle)
	return result, nil
}

// Sync creates remote page records for every manifest entry the remote set
// is missing, in one batched insert, then persists a last-synced marker and
// recomputes the difference. With nothing missing it is a no-op success.
// Failures set the error state with a retained message; there is no
// automatic retry.
func (s *Service) Sync(ctx context.Context) error {
	s.transition(StatusSyncing)

	result, err := s.compare(ctx)
	if err != nil {
		s.fail(err)
		return err
	}

	if len(result.Missing) > 0 {
		records := s.recordsFor(result.Missing)
		if err := s.store.InsertPages(ctx, records); err != nil {
			err = fmt.Errorf("inserting %d missing pages: %w", len(records), err)
			s.fail(err)
			return err
		}
		s.logger.Info("created missing pages",
			zap.Int("count", len(records)),
			zap.Strings("slugs", result.Missing))

		if err := s.writeMarker(syncMarker{LastSynced: time.Now(), PagesCreated: result.Missing}); err != nil {
			// The pages are in; losing the marker is log-worthy only.
			s.logger.Warn("failed to persist last-synced marker", zap.Error(err))
		}

		if _, err := s.compare(ctx); err != nil {
			s.fail(err)
			return err
		}
	}

	s.succeed()
	return nil
}

// compare loads remote pages and diffs their slugs against the manifest,
// updating the observable missing list and summary.
func (s *Service) compare(ctx context.Context) (diff.Result, error) {
	remote, err := s.store.ListPages(ctx)
	if err != nil {
		return diff.Result{}, fmt.Errorf("listing remote pages: %w", err)
	}

	remoteSlugs := make([]string, 0, len(remote))
	for _, page := range remote {
		remoteSlugs = append(remoteSlugs, page.Slug)
	}
	declared := s.manifest.Slugs()
	result := diff.Keys(declared, remoteSlugs)

	s.mu.Lock()
	s.missing = result.Missing
	s.summary = diff.Summarize(declared, remoteSlugs, result)
	s.mu.Unlock()

	return result, nil
}

// recordsFor builds page records for missing slugs. Description and icon
// fall back to the page's first declared section; display order is the
// manifest position plus one.
func (s *Service) recordsFor(missing []string) []models.PageRecord {
	missingSet := make(map[string]struct{}, len(missing))
	for _, slug := range missing {
		missingSet[slug] = struct{}{}
	}

	var records []models.PageRecord
	for i, page := range s.manifest.Pages {
		if _, ok := missingSet[page.Slug]; !ok {
			continue
		}
		record := models.PageRecord{
			Slug:         page.Slug,
			Name:         page.Label,
			DisplayOrder: i + 1,
		}
		if len(page.Sections) > 0 {
			record.Description = page.Sections[0].Description
			record.Icon = page.Sections[0].Icon
		}
		records = append(records, record)
	}
	return records
}

func (s *Service) transition(status Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.revert != nil {
		s.revert.Stop()
		s.revert = nil
	}
	s.status = status
	s.lastErr = ""
}

func (s *Service) fail(err error) {
	s.logger.Error("structure sync failed", zap.Error(err))
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = StatusError
	s.lastErr = err.Error()
}

func (s *Service) succeed() {
	delay := time.Duration(s.cfg.SuccessRevertMS) * time.Millisecond
	if delay <= 0 {
		delay = 3 * time.Second
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = StatusSuccess
	s.lastErr = ""
	s.lastSynced = time.Now()
	if s.revert != nil {
		s.revert.Stop()
	}
	s.revert = time.AfterFunc(delay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.status == StatusSuccess {
			s.status = StatusIdle
		}
	})
}

func (s *Service) readMarker() (*syncMarker, error) {
	if s.cfg.StatePath == "" {
		return nil, nil
	}
	data, err := afero.ReadFile(s.fs, s.cfg.StatePath)
	if err != nil {
		return nil, err
	}
	var marker syncMarker
	if err := json.Unmarshal(data, &marker); err != nil {
		return nil, err
	}
	return &marker, nil
}

func (s *Service) writeMarker(marker syncMarker) error {
	if s.cfg.StatePath == "" {
		return nil
	}
	data, err := json.MarshalIndent(marker, "", "  ")
	if err != nil {
		return err
	}
	return afero.WriteFile(s.fs, s.cfg.StatePath, data, 0o644)
}
