package contactgorm

import (
	"github.com/google/uuid"
	"github.com/oggyb/portfolio-inbox/internal/domain/contact"
)

// toDomain maps a GORM ContactModel to a domain-level Contact.
func toDomain(m *ContactModel) *contact.Contact {
	return &contact.Contact{
		ID:        m.ID.String(),
		Name:      m.Name,
		Email:     m.Email,
		Message:   m.Message,
		IPAddress: m.IPAddress,
		UserAgent: m.UserAgent,
		Status:    contact.Status(m.Status),
		CreatedAt: m.CreatedAt,
	}
}

// toDomainMany maps a slice of ContactModel to a slice of domain Contacts.
func toDomainMany(models []ContactModel) []*contact.Contact {
	out := make([]*contact.Contact, len(models))
	for i := range models {
		out[i] = toDomain(&models[i])
	}
	return out
}

// fromDomain maps a domain-level Contact to a GORM ContactModel. A missing
// or malformed id is left as uuid.Nil so BeforeCreate assigns one.
func fromDomain(d *contact.Contact) *ContactModel {
	id, _ := uuid.Parse(d.ID)
	return &ContactModel{
		ID:        id,
		Name:      d.Name,
		Email:     d.Email,
		Message:   d.Message,
		IPAddress: d.IPAddress,
		UserAgent: d.UserAgent,
		Status:    string(d.Status),
		CreatedAt: d.CreatedAt,
	}
}
