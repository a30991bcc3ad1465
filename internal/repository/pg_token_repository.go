package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/everythingcs/backend/internal/model"
)

// TokenRepository is the read-only surface over the tokens lookup table.
// The submission pipeline does not issue or consume tokens.
type TokenRepository interface {
	FindValid(ctx context.Context, token string) (*model.Token, error)
}

// PgTokenRepository is the PostgreSQL implementation of TokenRepository.
type PgTokenRepository struct {
	pool *pgxpool.Pool
}

// NewPgTokenRepository creates a PgTokenRepository backed by the given pool.
func NewPgTokenRepository(pool *pgxpool.Pool) *PgTokenRepository {
	return &PgTokenRepository{pool: pool}
}

var _ TokenRepository = (*PgTokenRepository)(nil)

// FindValid returns the unexpired token row matching the given token string,
// or ErrNotFound when no such row exists.
func (r *PgTokenRepository) FindValid(ctx context.Context, token string) (*model.Token, error) {
	var t model.Token
	err := r.pool.QueryRow(ctx,
		`SELECT id, token, expires_at, created_at
		 FROM tokens
		 WHERE token = $1 AND expires_at > NOW()`,
		token,
	).Scan(&t.ID, &t.Token, &t.ExpiresAt, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("finding token: %w", err)
	}
	return &t, nil
}
