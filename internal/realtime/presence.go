package realtime

import (
	"context"
	"sync"
)

// PresenceStore tracks which logical users currently have a live websocket
// session. Entries are ephemeral: a user with no live connection has no entry,
// and nothing survives a restart.
//
// The store is an interface so the in-process map can be swapped for a shared
// Redis store when running more than one API instance.
type PresenceStore interface {
	// Register records sessionID as the live session for userID,
	// unconditionally replacing any prior session.
	Register(ctx context.Context, userID, sessionID string) error
	// Unregister removes every entry whose recorded session equals sessionID.
	// A session orphaned by a later Register is a no-op here.
	Unregister(ctx context.Context, sessionID string) error
	// Lookup returns the live session for userID, if any.
	Lookup(ctx context.Context, userID string) (string, bool, error)
}

// MemoryPresence is the single-instance PresenceStore: a mutex-guarded map
// from userID to sessionID.
type MemoryPresence struct {
	mu       sync.RWMutex
	sessions map[string]string
}

func NewMemoryPresence() *MemoryPresence {
	return &MemoryPresence{sessions: make(map[string]string)}
}

func (m *MemoryPresence) Register(_ context.Context, userID, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[userID] = sessionID
	return nil
}

func (m *MemoryPresence) Unregister(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for userID, sid := range m.sessions {
		if sid == sessionID {
			delete(m.sessions, userID)
		}
	}
	return nil
}

func (m *MemoryPresence) Lookup(_ context.Context, userID string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sid, ok := m.sessions[userID]
	return sid, ok, nil
}
