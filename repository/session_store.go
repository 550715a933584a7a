package repository

import (
	"context"
	"sync"

	"minesbot/models"
)

// MemorySessionStore keeps game sessions in process memory, keyed by user.
// Sessions do not survive a restart; the stake stays debited either way.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[int64]*models.Session
}

// NewMemorySessionStore creates an empty in-memory session store
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[int64]*models.Session),
	}
}

// Get returns the user's session, nil if absent
func (s *MemorySessionStore) Get(ctx context.Context, userID int64) (*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[userID]
	if !ok {
		return nil, nil
	}
	return cloneSession(session), nil
}

// Put stores the user's session, replacing any existing one
func (s *MemorySessionStore) Put(ctx context.Context, session *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.UserID] = cloneSession(session)
	return nil
}

func cloneSession(session *models.Session) *models.Session {
	copied := *session
	copied.Bombs = append([]int(nil), session.Bombs...)
	copied.Opened = append([]int(nil), session.Opened...)
	return &copied
}

// Remove deletes the user's session if present
func (s *MemorySessionStore) Remove(ctx context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, userID)
	return nil
}

// Clear deletes every stored session
func (s *MemorySessionStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions = make(map[int64]*models.Session)
	return nil
}
