package web

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	draft     Draft
	expiresAt time.Time
}

// MemoryStore keeps drafts in process memory. A background loop evicts
// expired entries when cleanupInterval > 0; Close stops it.
type MemoryStore struct {
	mu        sync.RWMutex
	drafts    map[string]memoryEntry
	ttl       time.Duration
	now       func() time.Time
	done      chan struct{}
	closeOnce sync.Once
}

func NewMemoryStore(ttl, cleanupInterval time.Duration) *MemoryStore {
	s := &MemoryStore{
		drafts: make(map[string]memoryEntry),
		ttl:    ttl,
		now:    time.Now,
		done:   make(chan struct{}),
	}
	if cleanupInterval > 0 {
		go s.cleanupLoop(cleanupInterval)
	}
	return s
}

func (s *MemoryStore) Load(_ context.Context, id string) (Draft, error) {
	s.mu.RLock()
	e, ok := s.drafts[id]
	s.mu.RUnlock()

	if !ok {
		return Draft{}, ErrDraftNotFound
	}
	if s.expired(e) {
		s.mu.Lock()
		delete(s.drafts, id)
		s.mu.Unlock()
		return Draft{}, ErrDraftNotFound
	}
	e.draft.State = e.draft.State.Clone()
	return e.draft, nil
}

func (s *MemoryStore) Save(_ context.Context, d Draft) error {
	if d.ID == "" {
		return ErrInvalidDraft
	}
	d.State = d.State.Clone()
	if d.UpdatedAt.IsZero() {
		d.UpdatedAt = s.now()
	}

	s.mu.Lock()
	s.drafts[d.ID] = memoryEntry{draft: d, expiresAt: s.expiry()}
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.drafts, id)
	s.mu.Unlock()
	return nil
}

// Len returns the number of stored drafts, expired ones included until evicted.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.drafts)
}

// DeleteExpired evicts every expired draft.
func (s *MemoryStore) DeleteExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, e := range s.drafts {
		if s.expired(e) {
			delete(s.drafts, id)
		}
	}
}

func (s *MemoryStore) Close() error {
	s.closeOnce.Do(func() { close(s.done) })
	return nil
}

func (s *MemoryStore) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.DeleteExpired()
		case <-s.done:
			return
		}
	}
}

func (s *MemoryStore) expiry() time.Time {
	if s.ttl <= 0 {
		return time.Time{}
	}
	return s.now().Add(s.ttl)
}

func (s *MemoryStore) expired(e memoryEntry) bool {
	return !e.expiresAt.IsZero() && !s.now().Before(e.expiresAt)
}
