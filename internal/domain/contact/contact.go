// Package contact holds the domain model and invariants for contact messages
// submitted through the public contact form.
package contact

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusNew     Status = "new"
	StatusRead    Status = "read"
	StatusReplied Status = "replied"
)

// Statuses lists every valid status in workflow order.
var Statuses = []Status{StatusNew, StatusRead, StatusReplied}

var (
	// ErrEmptyName is returned when no submitter name is provided.
	ErrEmptyName = errors.New("name is required")
	// ErrEmptyEmail is returned when no submitter email is provided.
	ErrEmptyEmail = errors.New("email is required")
	// ErrEmptyMessage is returned when the message body is empty.
	ErrEmptyMessage = errors.New("message is required")
	// ErrInvalidStatus is returned for a status outside new/read/replied.
	ErrInvalidStatus = errors.New("status must be one of new, read, replied")
)

// Contact is the core domain entity: one message sent through the contact form.
type Contact struct {
	ID        string
	Name      string
	Email     string
	Message   string
	IPAddress string
	UserAgent string
	Status    Status
	CreatedAt time.Time
}

// ClientMeta is the request context captured alongside a submission.
type ClientMeta struct {
	IPAddress string
	UserAgent string
}

// NewContact constructs a new Contact in status "new" and enforces basic
// domain rules. Fields are trimmed before the presence checks.
func NewContact(name, email, message string, meta ClientMeta) (*Contact, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	message = strings.TrimSpace(message)

	if name == "" {
		return nil, ErrEmptyName
	}
	if email == "" {
		return nil, ErrEmptyEmail
	}
	if message == "" {
		return nil, ErrEmptyMessage
	}

	return &Contact{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Message:   message,
		IPAddress: meta.IPAddress,
		UserAgent: meta.UserAgent,
		Status:    StatusNew,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// ParseStatus validates a raw status value.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusRead, StatusReplied:
		return true
	}
	return false
}

// SetStatus assigns the status unconditionally. The admin workflow moves
// new -> read -> replied but any valid status may be set directly.
func (c *Contact) SetStatus(s Status) error {
	if !s.Valid() {
		return ErrInvalidStatus
	}
	c.Status = s
	return nil
}
