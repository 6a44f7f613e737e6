package workflow

import (
	"sync"

	"github.com/neobank/payflow/client"
	"github.com/neobank/payflow/pkg/session"
)

// Registry holds one workflow per session so repeated requests from the
// same authenticated session see the same page state.
type Registry struct {
	mu        sync.Mutex
	bank      client.BankServices
	workflows map[string]*Workflow
}

func NewRegistry(bank client.BankServices) *Registry {
	return &Registry{
		bank:      bank,
		workflows: make(map[string]*Workflow),
	}
}

// GetOrCreate returns the session's workflow, creating it on first use.
func (r *Registry) GetOrCreate(s *session.Session) *Workflow {
	r.mu.Lock()
	defer r.mu.Unlock()

	if w, ok := r.workflows[s.ID]; ok {
		return w
	}

	w := New(s, r.bank)
	r.workflows[s.ID] = w
	return w
}

// Remove drops the session's workflow, e.g. when the session ends.
func (r *Registry) Remove(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.workflows, sessionID)
}
