package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/everythingcs/backend/internal/model"
)

// QueryRepository defines the persistence interface for contact queries.
// The pipeline only ever inserts; resolution flags are mutated out-of-band.
type QueryRepository interface {
	Insert(ctx context.Context, q *model.Query) error
}

// PgQueryRepository is the PostgreSQL implementation of QueryRepository.
type PgQueryRepository struct {
	pool *pgxpool.Pool
}

// NewPgQueryRepository creates a PgQueryRepository backed by the given pool.
func NewPgQueryRepository(pool *pgxpool.Pool) *PgQueryRepository {
	return &PgQueryRepository{pool: pool}
}

// Ensure PgQueryRepository implements QueryRepository at compile time.
var _ QueryRepository = (*PgQueryRepository)(nil)

// Insert stores exactly one queries row and populates q.ID and the
// server-assigned timestamps from the RETURNING clause. The insert either
// fully succeeds or fully fails; there is no partial write.
func (r *PgQueryRepository) Insert(ctx context.Context, q *model.Query) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO queries (name, email, type, message, blog_post_link)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''))
		 RETURNING id, is_resolved, has_replied, created_at, updated_at`,
		q.Name, q.Email, q.Type, q.Message, q.BlogPostLink,
	).Scan(&q.ID, &q.IsResolved, &q.HasReplied, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return fmt.Errorf("inserting query: %w", err)
	}
	return nil
}
