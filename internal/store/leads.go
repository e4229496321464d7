package store

import (
	"sync"

	"github.com/jonathan/staffsync/internal/types"
)

// LeadStore holds employer engagement records. Leads are read-only: the
// pathway that would create a lead when an intake session classifies, and
// advance its pipeline step afterwards, is not implemented yet.
type LeadStore struct {
	mu    sync.Mutex
	leads []types.EmployerLead
}

// NewLeadStore creates a store pre-populated with the given leads.
func NewLeadStore(initial []types.EmployerLead) *LeadStore {
	s := &LeadStore{
		leads: make([]types.EmployerLead, len(initial)),
	}
	copy(s.leads, initial)
	return s
}

// Get returns the lead with the given ID.
func (s *LeadStore) Get(id string) (types.EmployerLead, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.leads {
		if l.ID == id {
			return l, true
		}
	}
	return types.EmployerLead{}, false
}

// List returns a snapshot of all leads in store order.
func (s *LeadStore) List() []types.EmployerLead {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.EmployerLead, len(s.leads))
	copy(out, s.leads)
	return out
}
