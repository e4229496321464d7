// Package store provides the in-memory candidate and lead stores. All state
// is process-scoped and lost on restart; there is deliberately no
// persistence layer behind these types.
package store

import (
	"sync"

	"github.com/jonathan/staffsync/internal/types"
)

// ProfileStore holds the candidate database. The zero value is not usable;
// construct with NewProfileStore.
//
// All methods copy profiles in and out, so callers never share slices with
// the store and category filters are true snapshots.
type ProfileStore struct {
	mu       sync.Mutex
	profiles []types.CandidateProfile
}

// NewProfileStore creates a store pre-populated with the given profiles, in
// the given order.
func NewProfileStore(initial []types.CandidateProfile) *ProfileStore {
	s := &ProfileStore{
		profiles: make([]types.CandidateProfile, len(initial)),
	}
	copy(s.profiles, initial)
	return s
}

// Insert prepends a profile so the most recently added appears first.
// The caller is responsible for supplying a fresh unique ID; names are not
// deduplicated.
func (s *ProfileStore) Insert(p types.CandidateProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles = append([]types.CandidateProfile{p}, s.profiles...)
}

// Delete removes the profile with the given ID. Deleting an absent ID is a
// no-op; the return value reports whether anything was removed.
func (s *ProfileStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.profiles {
		if p.ID == id {
			s.profiles = append(s.profiles[:i], s.profiles[i+1:]...)
			return true
		}
	}
	return false
}

// ToggleVerified flips the verified flag of the profile with the given ID.
// Absent IDs are a no-op; the return value reports whether a profile was
// updated.
func (s *ProfileStore) ToggleVerified(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.profiles {
		if s.profiles[i].ID == id {
			s.profiles[i].Verified = !s.profiles[i].Verified
			return true
		}
	}
	return false
}

// Get returns the profile with the given ID.
func (s *ProfileStore) Get(id string) (types.CandidateProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.profiles {
		if p.ID == id {
			return p, true
		}
	}
	return types.CandidateProfile{}, false
}

// FilterByCategory returns every profile with the given category, preserving
// store order. The result is a snapshot: later store mutations do not affect
// it.
func (s *ProfileStore) FilterByCategory(category types.Category) []types.CandidateProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	matches := make([]types.CandidateProfile, 0)
	for _, p := range s.profiles {
		if p.Category == category {
			matches = append(matches, p)
		}
	}
	return matches
}

// List returns a snapshot of all profiles in store order.
func (s *ProfileStore) List() []types.CandidateProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.CandidateProfile, len(s.profiles))
	copy(out, s.profiles)
	return out
}

// Len returns the number of stored profiles.
func (s *ProfileStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.profiles)
}
