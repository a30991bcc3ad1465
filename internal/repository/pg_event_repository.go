package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/everythingcs/backend/internal/model"
)

// EventRepository defines the persistence interface for analytics events.
type EventRepository interface {
	Insert(ctx context.Context, ev *model.Event) error
}

// PgEventRepository is the PostgreSQL implementation of EventRepository.
type PgEventRepository struct {
	pool *pgxpool.Pool
}

// NewPgEventRepository creates a PgEventRepository backed by the given pool.
func NewPgEventRepository(pool *pgxpool.Pool) *PgEventRepository {
	return &PgEventRepository{pool: pool}
}

var _ EventRepository = (*PgEventRepository)(nil)

// Insert stores one events row, populating ev.ID and ev.CreatedAt. Browser
// descriptor fields may be empty and are stored as NULL.
func (r *PgEventRepository) Insert(ctx context.Context, ev *model.Event) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO events (hash, type, slug, referrer, country, city, os, device, browser)
		 VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), NULLIF($8, ''), NULLIF($9, ''))
		 RETURNING id, created_at`,
		ev.Hash, ev.Type, ev.Slug, ev.Referrer, ev.Country, ev.City, ev.OS, ev.Device, ev.Browser,
	).Scan(&ev.ID, &ev.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}
	return nil
}
