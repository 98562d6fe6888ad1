package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/contactly/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ContactRepository defines the persistence interface for contact inquiries.
// It is defined here (in repository) to avoid an import cycle with service.
type ContactRepository interface {
	// Insert stores a new contact and populates ID and timestamps from
	// the database RETURNING clause.
	Insert(ctx context.Context, c *model.Contact) error

	// List returns a page of contacts sorted by created_at descending,
	// plus the total count matching the filter.
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.Contact, int, error)

	// FindByID returns the contact with the given id, or ErrNotFound.
	FindByID(ctx context.Context, id string) (*model.Contact, error)

	// UpdateStatus sets the status of the contact with the given id and
	// returns the updated record, or ErrNotFound.
	UpdateStatus(ctx context.Context, id string, status model.Status) (*model.Contact, error)

	// Delete removes the contact with the given id, or returns ErrNotFound.
	Delete(ctx context.Context, id string) error

	// Stats returns aggregate counts over all contacts.
	Stats(ctx context.Context) (*model.ContactStats, error)

	// HasRecentDuplicate reports whether a contact with the same email
	// and message was created at or after since.
	HasRecentDuplicate(ctx context.Context, email, message string, since time.Time) (bool, error)
}

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

// Ensure PgContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*PgContactRepository)(nil)

const contactColumns = `id, name, email, phone, message, status,
	COALESCE(ip_address, ''), COALESCE(user_agent, ''), created_at, updated_at`

func scanContact(row pgx.Row) (*model.Contact, error) {
	var c model.Contact
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Message, &c.Status,
		&c.IPAddress, &c.UserAgent, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Insert stores a new contacts row. IP address and user agent are stored
// as NULL when empty.
func (r *PgContactRepository) Insert(ctx context.Context, c *model.Contact) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO contacts (name, email, phone, message, status, ip_address, user_agent)
		 VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''))
		 RETURNING id, created_at, updated_at`,
		c.Name, c.Email, c.Phone, c.Message, c.Status, c.IPAddress, c.UserAgent,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

// buildListFilter returns the WHERE clause and args for opts, shared by
// the page query and the count query.
func buildListFilter(opts model.ContactListOptions) (string, []any) {
	var conditions []string
	var args []any

	status := strings.TrimSpace(opts.Status)
	if status != "" && status != "all" {
		args = append(args, status)
		conditions = append(conditions, "status = $"+strconv.Itoa(len(args)))
	}

	if search := strings.TrimSpace(opts.Search); search != "" {
		args = append(args, "%"+search+"%")
		n := strconv.Itoa(len(args))
		conditions = append(conditions,
			"(name ILIKE $"+n+" OR email ILIKE $"+n+" OR message ILIKE $"+n+")")
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

// List returns contacts filtered by status/search, newest first, plus the
// total count matching the filter.
func (r *PgContactRepository) List(ctx context.Context, opts model.ContactListOptions) ([]*model.Contact, int, error) {
	where, args := buildListFilter(opts)

	var total int
	if err := r.pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM contacts "+where, args...,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	limitArg := strconv.Itoa(len(args) + 1)
	offsetArg := strconv.Itoa(len(args) + 2)
	args = append(args, opts.Limit, opts.Offset)

	rows, err := r.pool.Query(ctx,
		`SELECT `+contactColumns+` FROM contacts `+where+
			` ORDER BY created_at DESC LIMIT $`+limitArg+` OFFSET $`+offsetArg,
		args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var contacts []*model.Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, 0, err
		}
		contacts = append(contacts, c)
	}
	return contacts, total, rows.Err()
}

// FindByID returns a single contact by id.
func (r *PgContactRepository) FindByID(ctx context.Context, id string) (*model.Contact, error) {
	c, err := scanContact(r.pool.QueryRow(ctx,
		`SELECT `+contactColumns+` FROM contacts WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return c, err
}

// UpdateStatus transitions a contact to the given status and bumps
// updated_at. created_at is never touched.
func (r *PgContactRepository) UpdateStatus(ctx context.Context, id string, status model.Status) (*model.Contact, error) {
	c, err := scanContact(r.pool.QueryRow(ctx,
		`UPDATE contacts SET status = $1, updated_at = NOW()
		 WHERE id = $2
		 RETURNING `+contactColumns, status, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return c, err
}

// Delete removes a contact by id.
func (r *PgContactRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Stats computes the aggregate counts in a single query.
func (r *PgContactRepository) Stats(ctx context.Context) (*model.ContactStats, error) {
	var s model.ContactStats
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE status = 'new'),
		        COUNT(*) FILTER (WHERE status = 'read'),
		        COUNT(*) FILTER (WHERE status = 'replied'),
		        COUNT(*) FILTER (WHERE created_at > NOW() - INTERVAL '7 days')
		 FROM contacts`,
	).Scan(&s.Total, &s.New, &s.Read, &s.Replied, &s.LastWeek)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// HasRecentDuplicate reports whether the same (email, message) pair was
// submitted at or after since. Backed by the (email, created_at) index.
func (r *PgContactRepository) HasRecentDuplicate(ctx context.Context, email, message string, since time.Time) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(
		   SELECT 1 FROM contacts
		   WHERE email = $1 AND message = $2 AND created_at >= $3
		 )`, email, message, since,
	).Scan(&exists)
	return exists, err
}
