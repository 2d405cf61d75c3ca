package contact

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when the referenced contact does not exist.
	ErrNotFound = errors.New("contact not found")
	// ErrUnavailable is returned when the durable store cannot be reached.
	// Callers decide the fallback policy.
	ErrUnavailable = errors.New("contact store unavailable")
)

// Repository defines the persistence operations for Contact aggregates.
//
// It is implemented by infrastructure layers (GORM, in-memory) while the
// domain and service layers depend only on this interface. Any method may
// fail with an error wrapping ErrUnavailable.
type Repository interface {
	// Create persists a new contact.
	Create(ctx context.Context, c *Contact) error

	// Get returns a single contact by id.
	Get(ctx context.Context, id string) (*Contact, error)

	// List returns contacts matching opts in the requested order.
	List(ctx context.Context, opts ListOptions) ([]*Contact, error)

	// Stats returns aggregate counts over all stored contacts.
	Stats(ctx context.Context) (Stats, error)

	// UpdateStatus sets the status of an existing contact and returns it.
	UpdateStatus(ctx context.Context, id string, status Status) (*Contact, error)

	// Delete removes a contact permanently.
	Delete(ctx context.Context, id string) error

	// Import inserts c keeping its id, unless a contact with that id already
	// exists. It reports whether a row was inserted.
	Import(ctx context.Context, c *Contact) (bool, error)
}
