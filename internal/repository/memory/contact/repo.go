// Package contactmem is an in-memory contact store used for local
// development (DB_DRIVER=memory) and tests.
package contactmem

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oggyb/portfolio-inbox/internal/domain/contact"
)

type Repository struct {
	mu       sync.RWMutex
	contacts map[string]*contact.Contact

	// down simulates a store outage: every call fails with ErrUnavailable.
	down bool
}

func NewRepository() *Repository {
	return &Repository{contacts: make(map[string]*contact.Contact)}
}

// SetDown toggles the simulated outage.
func (r *Repository) SetDown(down bool) {
	r.mu.Lock()
	r.down = down
	r.mu.Unlock()
}

func (r *Repository) Create(ctx context.Context, c *contact.Contact) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.down {
		return contact.ErrUnavailable
	}

	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	cp := *c
	r.contacts[c.ID] = &cp
	return nil
}

func (r *Repository) Get(_ context.Context, id string) (*contact.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.down {
		return nil, contact.ErrUnavailable
	}

	c, ok := r.contacts[id]
	if !ok {
		return nil, contact.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *Repository) List(_ context.Context, opts contact.ListOptions) ([]*contact.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.down {
		return nil, contact.ErrUnavailable
	}

	return opts.Apply(r.snapshot()), nil
}

func (r *Repository) Stats(_ context.Context) (contact.Stats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.down {
		return contact.Stats{}, contact.ErrUnavailable
	}

	return contact.StatsOf(r.snapshot()), nil
}

func (r *Repository) UpdateStatus(_ context.Context, id string, status contact.Status) (*contact.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.down {
		return nil, contact.ErrUnavailable
	}

	c, ok := r.contacts[id]
	if !ok {
		return nil, contact.ErrNotFound
	}
	if err := c.SetStatus(status); err != nil {
		return nil, err
	}

	cp := *c
	return &cp, nil
}

func (r *Repository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.down {
		return contact.ErrUnavailable
	}

	if _, ok := r.contacts[id]; !ok {
		return contact.ErrNotFound
	}
	delete(r.contacts, id)
	return nil
}

func (r *Repository) Import(_ context.Context, c *contact.Contact) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.down {
		return false, contact.ErrUnavailable
	}

	if _, exists := r.contacts[c.ID]; exists {
		return false, nil
	}

	cp := *c
	r.contacts[c.ID] = &cp
	return true, nil
}

// snapshot copies every stored contact. Callers hold the lock.
func (r *Repository) snapshot() []*contact.Contact {
	out := make([]*contact.Contact, 0, len(r.contacts))
	for _, c := range r.contacts {
		cp := *c
		out = append(out, &cp)
	}
	return out
}

var _ contact.Repository = (*Repository)(nil)
