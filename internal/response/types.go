package response

import (
	"time"

	"github.com/oggyb/portfolio-inbox/internal/domain/contact"
	"github.com/oggyb/portfolio-inbox/internal/reconcile"
	"github.com/oggyb/portfolio-inbox/internal/request"
)

type WelcomePayload struct {
	Message string `json:"message"`
}

// HealthPayload reports liveness plus the state of each backing component.
type HealthPayload struct {
	Status     string            `json:"status" example:"ok"`
	Components map[string]string `json:"components"`
}

// ContactDTO is the wire form of a contact message.
type ContactDTO struct {
	ID        string    `json:"id" example:"3f1c2a8e-5b7d-4e0a-9a6f-2d1b8c4e7f90"`
	Name      string    `json:"name" example:"Ann"`
	Email     string    `json:"email" example:"ann@x.com"`
	Message   string    `json:"message" example:"Hi"`
	Status    string    `json:"status" example:"new"`
	IPAddress string    `json:"ipAddress,omitempty"`
	UserAgent string    `json:"userAgent,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromContact(c *contact.Contact) ContactDTO {
	return ContactDTO{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Message:   c.Message,
		Status:    string(c.Status),
		IPAddress: c.IPAddress,
		UserAgent: c.UserAgent,
		CreatedAt: c.CreatedAt,
	}
}

func FromContacts(in []*contact.Contact) []ContactDTO {
	out := make([]ContactDTO, len(in))
	for i, c := range in {
		out[i] = FromContact(c)
	}
	return out
}

// SubmissionPayload echoes an accepted submission. ID is absent when the
// submission was accepted while the store was unavailable.
type SubmissionPayload struct {
	ID        string    `json:"id,omitempty" example:"3f1c2a8e-5b7d-4e0a-9a6f-2d1b8c4e7f90"`
	Name      string    `json:"name" example:"Ann"`
	Email     string    `json:"email" example:"ann@x.com"`
	CreatedAt time.Time `json:"createdAt"`
}

type ReplyPayload struct {
	Contact  ContactDTO `json:"contact"`
	Notified bool       `json:"notified"`
}

type ReconcilerPayload struct {
	Running bool              `json:"running"`
	Result  *reconcile.Result `json:"result,omitempty"`
}

// The envelopes below exist for the API docs.

type WelcomeResponse struct {
	Success   bool           `json:"success"`
	Data      WelcomePayload `json:"data"`
	Timestamp string         `json:"timestamp"`
}

type HealthResponse struct {
	Success   bool          `json:"success"`
	Data      HealthPayload `json:"data"`
	Timestamp string        `json:"timestamp"`
}

type SubmissionResponse struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message" example:"Thank you for your message! I will get back to you soon."`
	Data      SubmissionPayload `json:"data"`
	Timestamp string            `json:"timestamp"`
}

type ContactListResponse struct {
	Success   bool         `json:"success"`
	Count     int          `json:"count"`
	Note      string       `json:"note,omitempty" example:"Demo data - database not available"`
	Data      []ContactDTO `json:"data"`
	Timestamp string       `json:"timestamp"`
}

type ContactResponse struct {
	Success   bool       `json:"success"`
	Data      ContactDTO `json:"data"`
	Timestamp string     `json:"timestamp"`
}

type StatsResponse struct {
	Success   bool          `json:"success"`
	Note      string        `json:"note,omitempty"`
	Data      contact.Stats `json:"data"`
	Timestamp string        `json:"timestamp"`
}

type ReplyResponse struct {
	Success   bool         `json:"success"`
	Message   string       `json:"message" example:"Reply sent successfully"`
	Data      ReplyPayload `json:"data"`
	Timestamp string       `json:"timestamp"`
}

type ReconcilerResponse struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Data      ReconcilerPayload `json:"data"`
	Timestamp string            `json:"timestamp"`
}

type MessageResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type ErrorResponse struct {
	Success   bool                 `json:"success" example:"false"`
	Message   string               `json:"message"`
	Errors    []request.FieldError `json:"errors,omitempty"`
	Timestamp string               `json:"timestamp"`
}
