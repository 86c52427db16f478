package handlers

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionEntry tracks one connected console session.
type SessionEntry struct {
	// ID is the unique session identifier.
	ID uuid.UUID
	// RemoteAddr is the client's network address (for logging).
	RemoteAddr string
	// StartedAt is when the session connected.
	StartedAt time.Time
}

// Manager tracks all active console sessions.
// All methods are safe for concurrent use.
type Manager struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*SessionEntry
}

// NewManager creates an empty session Manager.
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[uuid.UUID]*SessionEntry),
	}
}

// Add registers a new session for the given remote address.
//
// Postcondition: Returns the created entry with a fresh unique ID.
func (m *Manager) Add(remoteAddr string) *SessionEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry := &SessionEntry{
		ID:         uuid.New(),
		RemoteAddr: remoteAddr,
		StartedAt:  time.Now().UTC(),
	}
	m.sessions[entry.ID] = entry
	return entry
}

// Remove deregisters a session. Removing an unknown ID is a no-op.
func (m *Manager) Remove(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// Get returns the entry for the given session ID.
//
// Postcondition: Returns (entry, true) if found, or (nil, false) otherwise.
func (m *Manager) Get(id uuid.UUID) (*SessionEntry, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entry, ok := m.sessions[id]
	return entry, ok
}

// Count returns the number of connected sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
