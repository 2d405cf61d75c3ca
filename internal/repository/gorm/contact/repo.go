package contactgorm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/oggyb/portfolio-inbox/internal/db"
	"github.com/oggyb/portfolio-inbox/internal/domain/contact"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository is a GORM-backed implementation of the contact.Repository interface.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a contact repository using the given DB adapter.
func NewRepository(d db.DB) *Repository {
	return &Repository{
		db: d.Conn().(*gorm.DB),
	}
}

// Migrate creates or updates the contact_messages table.
func Migrate(d db.DB) error {
	return d.Conn().(*gorm.DB).AutoMigrate(&ContactModel{})
}

// Create inserts a new contact record and copies the assigned id and
// creation time back onto c.
func (r *Repository) Create(ctx context.Context, c *contact.Contact) error {
	m := fromDomain(c)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return unavailable("create contact", err)
	}

	c.ID = m.ID.String()
	c.CreatedAt = m.CreatedAt
	return nil
}

// Get returns a contact by id.
func (r *Repository) Get(ctx context.Context, rawID string) (*contact.Contact, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, contact.ErrNotFound
	}

	var m ContactModel
	err = r.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, contact.ErrNotFound
	}
	if err != nil {
		return nil, unavailable("get contact", err)
	}

	return toDomain(&m), nil
}

// List returns contacts filtered by status and search term, ordered by opts.Sort.
func (r *Repository) List(ctx context.Context, opts contact.ListOptions) ([]*contact.Contact, error) {
	var models []ContactModel

	query := r.db.WithContext(ctx).Model(&ContactModel{})

	if opts.Status != "" {
		query = query.Where("status = ?", string(opts.Status))
	}

	if term := strings.TrimSpace(opts.Search); term != "" {
		like := "%" + escapeLike(term) + "%"
		query = query.Where("(name ILIKE ? OR email ILIKE ? OR message ILIKE ?)", like, like, like)
	}

	switch opts.Sort {
	case contact.SortOldest:
		query = query.Order("created_at ASC")
	case contact.SortByName:
		query = query.Order("LOWER(name) ASC").Order("created_at DESC")
	default:
		query = query.Order("created_at DESC")
	}

	if err := query.Find(&models).Error; err != nil {
		return nil, unavailable("list contacts", err)
	}

	return toDomainMany(models), nil
}

// Stats counts stored contacts grouped by status.
func (r *Repository) Stats(ctx context.Context) (contact.Stats, error) {
	var rows []struct {
		Status string
		Count  int64
	}

	err := r.db.WithContext(ctx).
		Model(&ContactModel{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return contact.Stats{}, unavailable("count contacts", err)
	}

	var st contact.Stats
	for _, row := range rows {
		st.Add(contact.Status(row.Status), row.Count)
	}
	return st, nil
}

// UpdateStatus sets the status column and returns the updated contact.
func (r *Repository) UpdateStatus(ctx context.Context, rawID string, status contact.Status) (*contact.Contact, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, contact.ErrNotFound
	}

	res := r.db.WithContext(ctx).
		Model(&ContactModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if res.Error != nil {
		return nil, unavailable("update contact status", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, contact.ErrNotFound
	}

	return r.Get(ctx, rawID)
}

// Delete removes a contact row.
func (r *Repository) Delete(ctx context.Context, rawID string) error {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return contact.ErrNotFound
	}

	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&ContactModel{})
	if res.Error != nil {
		return unavailable("delete contact", res.Error)
	}
	if res.RowsAffected == 0 {
		return contact.ErrNotFound
	}
	return nil
}

// Import inserts c with its own id and skips it if the id already exists.
func (r *Repository) Import(ctx context.Context, c *contact.Contact) (bool, error) {
	m := fromDomain(c)
	if m.ID == uuid.Nil {
		return false, fmt.Errorf("import contact: invalid id %q", c.ID)
	}

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(m)
	if res.Error != nil {
		return false, unavailable("import contact", res.Error)
	}

	return res.RowsAffected > 0, nil
}

// unavailable wraps a driver error, marking it as a store outage unless
// Postgres rejected the statement itself. Not-found cases are handled by
// the callers before reaching here.
func unavailable(op string, err error) error {
	if rejected(err) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, contact.ErrUnavailable, err)
}

// rejected reports whether Postgres answered with an error about the
// statement or its data. Connection, resource and operator classes are
// outages; so is anything that never reached the server.
func rejected(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || len(pgErr.Code) < 2 {
		return false
	}

	switch pgErr.Code[:2] {
	case "08", // connection exception
		"53", // insufficient resources
		"57", // operator intervention
		"58": // system error
		return false
	}
	return true
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// compile-time interface check
var _ contact.Repository = (*Repository)(nil)
