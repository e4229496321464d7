package wizard

import (
	"errors"
	"sync"
	"time"

	"github.com/jonathan/staffsync/internal/store"
)

// Start preconditions.
var (
	// ErrNotFound is returned when a wizard ID is unknown.
	ErrNotFound = errors.New("wizard not found")
	// ErrNoCandidate is returned when the candidate does not exist.
	ErrNoCandidate = errors.New("candidate not found")
	// ErrNotVerified is returned when the candidate has not been verified.
	// Documentation only starts for verified candidates.
	ErrNotVerified = errors.New("candidate is not verified")
)

// Manager owns the live wizards and gates their creation on the candidate
// store.
type Manager struct {
	profiles *store.ProfileStore
	delay    time.Duration

	mu      sync.RWMutex
	wizards map[string]*Wizard
}

// NewManager creates an empty manager using the default processing delay.
func NewManager(profiles *store.ProfileStore) *Manager {
	return &Manager{
		profiles: profiles,
		delay:    DefaultProcessingDelay,
		wizards:  make(map[string]*Wizard),
	}
}

// WithDelay overrides the simulated processing delay. Zero disables the
// wait entirely.
func (m *Manager) WithDelay(delay time.Duration) *Manager {
	m.delay = delay
	return m
}

// Start creates and registers a wizard for the given candidate. The
// candidate must exist and be verified.
func (m *Manager) Start(candidateID string) (*Wizard, error) {
	profile, ok := m.profiles.Get(candidateID)
	if !ok {
		return nil, ErrNoCandidate
	}
	if !profile.Verified {
		return nil, ErrNotVerified
	}

	w := New(candidateID, m.delay, nil)

	m.mu.Lock()
	m.wizards[w.ID()] = w
	m.mu.Unlock()

	return w, nil
}

// Get returns the wizard with the given ID.
func (m *Manager) Get(id string) (*Wizard, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	w, ok := m.wizards[id]
	if !ok {
		return nil, ErrNotFound
	}
	return w, nil
}

// Cancel aborts and removes a wizard. Cancelling an unknown ID returns
// ErrNotFound.
func (m *Manager) Cancel(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.wizards[id]
	if !ok {
		return ErrNotFound
	}
	w.Cancel()
	delete(m.wizards, id)
	return nil
}

// Len reports the number of live wizards.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.wizards)
}
