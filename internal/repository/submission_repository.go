package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chemtai/portfolio/internal/model"
)

// List limits. Callers may request any limit; the repository clamps it.
const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// SubmissionRepository defines the persistence interface for contact
// submissions. It is defined here (in repository) to avoid an import cycle
// with service.
type SubmissionRepository interface {
	Create(ctx context.Context, sub *model.ContactSubmission) error
	Count(ctx context.Context) (model.SubmissionCounts, error)
	List(ctx context.Context, limit int) ([]*model.ContactSubmission, error)
	MarkProcessed(ctx context.Context, id int64) error
}

// PgSubmissionRepository is the PostgreSQL implementation of
// SubmissionRepository.
type PgSubmissionRepository struct {
	pool *pgxpool.Pool
}

// NewPgSubmissionRepository creates a PgSubmissionRepository backed by the
// given pool.
func NewPgSubmissionRepository(pool *pgxpool.Pool) *PgSubmissionRepository {
	return &PgSubmissionRepository{pool: pool}
}

// Ensure PgSubmissionRepository implements SubmissionRepository at compile time.
var _ SubmissionRepository = (*PgSubmissionRepository)(nil)

// Create inserts a new contact_submissions row and populates sub.ID and
// sub.CreatedAt from the database RETURNING clause. The timestamp is
// assigned exactly once by the database and never updated afterwards.
func (r *PgSubmissionRepository) Create(ctx context.Context, sub *model.ContactSubmission) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO contact_submissions (name, email, subject, message, ip_address, user_agent)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''))
		 RETURNING id, created_at`,
		sub.Name, sub.Email, sub.Subject, sub.Message, sub.IPAddress, sub.UserAgent,
	).Scan(&sub.ID, &sub.CreatedAt)
}

// Count returns the total number of submissions and the unprocessed subset.
func (r *PgSubmissionRepository) Count(ctx context.Context) (model.SubmissionCounts, error) {
	var c model.SubmissionCounts
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE NOT is_processed)
		 FROM contact_submissions`,
	).Scan(&c.Total, &c.Unprocessed)
	return c, err
}

// List returns the most recently created submissions, newest first, ties
// broken by descending id. limit is clamped to at most 100; non-positive
// values fall back to the default page size.
func (r *PgSubmissionRepository) List(ctx context.Context, limit int) ([]*model.ContactSubmission, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, subject, message, created_at,
		        COALESCE(ip_address, ''), COALESCE(user_agent, ''), is_processed
		 FROM contact_submissions
		 ORDER BY created_at DESC, id DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*model.ContactSubmission
	for rows.Next() {
		var s model.ContactSubmission
		if err := rows.Scan(
			&s.ID, &s.Name, &s.Email, &s.Subject, &s.Message,
			&s.CreatedAt, &s.IPAddress, &s.UserAgent, &s.IsProcessed,
		); err != nil {
			return nil, err
		}
		subs = append(subs, &s)
	}
	return subs, rows.Err()
}

// MarkProcessed sets is_processed = true for the identified submission.
// Marking an already-processed submission is a silent no-op; only a missing
// id is an error (ErrNotFound). The flag never transitions back to false.
func (r *PgSubmissionRepository) MarkProcessed(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE contact_submissions SET is_processed = TRUE WHERE id = $1`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
