package session

import (
	"errors"
	"sync"

	"github.com/jonathan/staffsync/internal/store"
)

// ErrNotFound is returned when a session ID is unknown.
var ErrNotFound = errors.New("session not found")

// Manager owns the live sessions and the collaborators they share.
type Manager struct {
	profiles   *store.ProfileStore
	classifier Classifier
	responder  Responder

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager creates an empty manager.
func NewManager(profiles *store.ProfileStore, classifier Classifier, responder Responder) *Manager {
	return &Manager{
		profiles:   profiles,
		classifier: classifier,
		responder:  responder,
		sessions:   make(map[string]*Session),
	}
}

// Create starts a new session and registers it.
func (m *Manager) Create() *Session {
	s := New(m.profiles, m.classifier, m.responder)

	m.mu.Lock()
	m.sessions[s.ID()] = s
	m.mu.Unlock()

	return s
}

// Get returns the session with the given ID.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// Delete removes a session. Deleting an unknown ID is a no-op.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
