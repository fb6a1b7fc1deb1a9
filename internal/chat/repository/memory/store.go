// Package memory holds conversation histories in process memory. Sessions
// are capped and expire after an idle TTL, so the store cannot grow
// unbounded under long-running deployment; an evicted session simply
// starts over with a fresh identifier on next access.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"jewelry-concierge/internal/chat"
)

const (
	DefaultMaxSessions = 10000
	DefaultSessionTTL  = 2 * time.Hour
)

type session struct {
	mu    sync.Mutex
	turns []chat.Turn
}

// Store is the expirable-LRU-backed session repository.
type Store struct {
	mu       sync.Mutex // guards the LRU itself
	sessions *expirable.LRU[string, *session]
}

// New creates a Store. Non-positive maxSessions or TTL fall back to the
// package defaults.
func New(maxSessions int, ttl time.Duration) *Store {
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Store{
		sessions: expirable.NewLRU[string, *session](maxSessions, nil, ttl),
	}
}

// GetOrCreate implements repository.SessionRepository.
func (s *Store) GetOrCreate(ctx context.Context, sessionID string) (string, []chat.Turn) {
	s.mu.Lock()
	if sessionID != "" {
		if sess, ok := s.sessions.Get(sessionID); ok {
			s.mu.Unlock()
			return sessionID, sess.snapshot()
		}
	}

	// Empty or unseen id: allocate a fresh session. A generated id is
	// always handed back so clients cannot squat arbitrary keys.
	id := uuid.NewString()
	s.sessions.Add(id, &session{})
	s.mu.Unlock()

	return id, []chat.Turn{}
}

// Append implements repository.SessionRepository.
func (s *Store) Append(ctx context.Context, sessionID, role, content string) error {
	s.mu.Lock()
	sess, ok := s.sessions.Get(sessionID)
	s.mu.Unlock()
	if !ok {
		return chat.ErrSessionNotFound
	}

	sess.mu.Lock()
	sess.turns = append(sess.turns, chat.Turn{Role: role, Content: content})
	sess.mu.Unlock()
	return nil
}

// Clear implements repository.SessionRepository.
func (s *Store) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ok := s.sessions.Remove(sessionID); !ok {
		return chat.ErrSessionNotFound
	}
	return nil
}

// ClearAll implements repository.SessionRepository.
func (s *Store) ClearAll(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.sessions.Len()
	s.sessions.Purge()
	return n
}

// Len reports the number of live sessions; used by tests and health
// reporting.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions.Len()
}

func (sess *session) snapshot() []chat.Turn {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	out := make([]chat.Turn, len(sess.turns))
	copy(out, sess.turns)
	return out
}
