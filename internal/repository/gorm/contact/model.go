package contactgorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactModel is the GORM persistence model for contact messages.
// It maps directly to the "contact_messages" table in Postgres.
type ContactModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:100;not null"`
	Email     string    `gorm:"size:254;not null;index"`
	Message   string    `gorm:"type:text;not null"`
	IPAddress string    `gorm:"size:64"`
	UserAgent string    `gorm:"size:512"`
	Status    string    `gorm:"size:20;not null;index"`
	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time
}

// TableName overrides the default table name used by GORM.
func (ContactModel) TableName() string {
	return "contact_messages"
}

// BeforeCreate ensures a UUID is set before inserting a new record.
func (m *ContactModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
