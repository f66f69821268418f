package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryEntry struct {
	userID    uint
	expiresAt time.Time
}

// MemoryStore is an in-process Store used by tests and single-node setups
// that run without Redis.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]memoryEntry
}

// NewMemoryStore creates a new MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]memoryEntry)}
}

// Create stores a new session mapping sessionID -> userID.
func (s *MemoryStore) Create(ctx context.Context, userID uint) (string, error) {
	sid := uuid.New().String()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sid] = memoryEntry{userID: userID, expiresAt: time.Now().Add(TTL)}
	return sid, nil
}

// Get returns the user ID for a session, or 0 if not found / expired.
func (s *MemoryStore) Get(ctx context.Context, sessionID string) (uint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.sessions[sessionID]
	if !ok {
		return 0, nil
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.sessions, sessionID)
		return 0, nil
	}
	return entry.userID, nil
}

// Delete removes a session.
func (s *MemoryStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
