package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/everythingcs/backend/internal/model"
)

// FeedbackRepository defines the persistence interface for reader feedback.
type FeedbackRepository interface {
	Insert(ctx context.Context, f *model.Feedback) error
}

// PgFeedbackRepository is the PostgreSQL implementation of FeedbackRepository.
type PgFeedbackRepository struct {
	pool *pgxpool.Pool
}

// NewPgFeedbackRepository creates a PgFeedbackRepository backed by the given pool.
func NewPgFeedbackRepository(pool *pgxpool.Pool) *PgFeedbackRepository {
	return &PgFeedbackRepository{pool: pool}
}

var _ FeedbackRepository = (*PgFeedbackRepository)(nil)

// Insert stores one feedbacks row, populating f.ID and f.CreatedAt. An empty
// message is stored as NULL.
func (r *PgFeedbackRepository) Insert(ctx context.Context, f *model.Feedback) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO feedbacks (slug, rating, message)
		 VALUES ($1, $2, NULLIF($3, ''))
		 RETURNING id, is_resolved, created_at`,
		f.Slug, f.Rating, f.Message,
	).Scan(&f.ID, &f.IsResolved, &f.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting feedback: %w", err)
	}
	return nil
}
