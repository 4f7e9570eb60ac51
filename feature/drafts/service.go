package drafts

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Config holds configuration for the draft store feature.
type Config struct {
	// DebounceMS is the autosave quiet window in milliseconds. Every queued
	// edit restarts it; only state quiescent for the full window is written.
	DebounceMS int `mapstructure:"debounce_ms" default:"1500"`
	// WriteTimeoutSeconds bounds a single autosave write.
	WriteTimeoutSeconds int `mapstructure:"write_timeout_seconds" default:"10"`
}

type draftKey struct {
	Page    string
	Section string
}

// Service holds section-scoped unpublished edits and autosaves them after a
// debounce window. It is entirely disjoint from the published content path:
// drafts only leave this store through an explicit publish or discard by the
// caller.
type Service struct {
	store  Store
	logger *zap.Logger

	delay        time.Duration
	writeTimeout time.Duration

	mu      sync.Mutex
	pending map[draftKey]Edits
	timers  map[draftKey]*time.Timer
	closed  chan struct{}
}

// NewService creates the draft service.
func NewService(store Store, logger *zap.Logger, cfg Config) *Service {
	delay := time.Duration(cfg.DebounceMS) * time.Millisecond
	if delay <= 0 {
		delay = 1500 * time.Millisecond
	}
	writeTimeout := time.Duration(cfg.WriteTimeoutSeconds) * time.Second
	if writeTimeout <= 0 {
		writeTimeout = 10 * time.Second
	}
	return &Service{
		store:        store,
		logger:       logger,
		delay:        delay,
		writeTimeout: writeTimeout,
		pending:      make(map[draftKey]Edits),
		timers:       make(map[draftKey]*time.Timer),
		closed:       make(chan struct{}),
	}
}

// Queue coalesces edits into the pending draft of one page section and
// restarts its debounce timer. There is no maximum-wait ceiling: continuous
// editing defers the write until the stream goes quiet.
func (s *Service) Queue(page, section string, edits Edits) {
	key := draftKey{Page: page, Section: section}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.pending[key]
	if !ok {
		existing = Edits{}
		s.pending[key] = existing
	}
	existing.merge(edits)

	if timer, ok := s.timers[key]; ok {
		timer.Stop()
	}
	s.timers[key] = time.AfterFunc(s.delay, func() {
		select {
		case <-s.closed:
			return
		default:
			s.flush(key)
		}
	})
}

// flush writes the quiescent pending state of one section. On failure the
// edits are requeued so the next debounce cycle retries them; an autosave
// never crashes the session.
func (s *Service) flush(key draftKey) {
	s.mu.Lock()
	edits, ok := s.pending[key]
	if !ok {
		s.mu.Unlock()
		return
	}
	delete(s.pending, key)
	delete(s.timers, key)
	snapshot := edits.clone()
	s.mu.Unlock()

	if err := s.write(key, snapshot); err != nil {
		s.logger.Warn("draft autosave failed, edits requeued",
			zap.String("page", key.Page),
			zap.String("section", key.Section),
			zap.Error(err))

		// Put the snapshot back without clobbering anything queued since.
		s.mu.Lock()
		existing, ok := s.pending[key]
		if !ok {
			existing = Edits{}
			s.pending[key] = existing
		}
		existing.fill(snapshot)
		if _, armed := s.timers[key]; !armed {
			s.timers[key] = time.AfterFunc(s.delay, func() {
				select {
				case <-s.closed:
					return
				default:
					s.flush(key)
				}
			})
		}
		s.mu.Unlock()
	}
}

func (s *Service) write(key draftKey, edits Edits) error {
	encoded, err := encodeFields(edits)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.writeTimeout)
	defer cancel()

	return s.store.UpsertDraft(ctx, DraftRow{
		PageSlug:  key.Page,
		Section:   key.Section,
		Fields:    encoded,
		UpdatedAt: time.Now(),
	})
}

// Flush writes every pending draft immediately, cancelling their timers.
// Used on shutdown and by tests that need determinism.
func (s *Service) Flush() {
	s.mu.Lock()
	keys := make([]draftKey, 0, len(s.pending))
	for key := range s.pending {
		if timer, ok := s.timers[key]; ok {
			timer.Stop()
		}
		keys = append(keys, key)
	}
	s.mu.Unlock()

	for _, key := range keys {
		s.flush(key)
	}
}

// Load returns the persisted draft of one page section, or nil when there
// is none.
func (s *Service) Load(ctx context.Context, page, section string) (*Draft, error) {
	row, err := s.store.DraftForSection(ctx, page, section)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}
	draft, err := decodeDraft(*row)
	if err != nil {
		return nil, err
	}
	return &draft, nil
}

// Discard drops the pending state and deletes the persisted drafts of one
// page section. It runs only on an explicit publish or discard action;
// no code path infers it.
func (s *Service) Discard(ctx context.Context, page, section string) error {
	key := draftKey{Page: page, Section: section}

	s.mu.Lock()
	if timer, ok := s.timers[key]; ok {
		timer.Stop()
		delete(s.timers, key)
	}
	delete(s.pending, key)
	s.mu.Unlock()

	return s.store.DeleteDrafts(ctx, page, section)
}

// Close stops all timers; pending edits are dropped, matching the
// in-memory-only durability contract.
func (s *Service) Close() {
	close(s.closed)
	s.mu.Lock()
	for key, timer := range s.timers {
		timer.Stop()
		delete(s.timers, key)
	}
	s.mu.Unlock()
}
