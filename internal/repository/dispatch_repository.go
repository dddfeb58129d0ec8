package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fairyhunter13/subscription-admin/internal/model"
	"github.com/fairyhunter13/subscription-admin/internal/service"
	"github.com/fairyhunter13/subscription-admin/pkg/database"
)

// PoolInterface defines the database operations needed by DispatchRepository.
// This allows for easier testing with mocks.
type PoolInterface interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// DispatchRepository provides data access for the notification dispatch log using pgx.
type DispatchRepository struct {
	pool PoolInterface
}

// NewDispatchRepository creates a new DispatchRepository with the given pool.
func NewDispatchRepository(pool *pgxpool.Pool) *DispatchRepository {
	return &DispatchRepository{pool: pool}
}

// NewDispatchRepositoryWithPool creates a new DispatchRepository with a custom pool interface.
// This is primarily used for testing.
func NewDispatchRepositoryWithPool(pool PoolInterface) *DispatchRepository {
	return &DispatchRepository{pool: pool}
}

// Insert records a dispatch within a transaction.
// Returns service.ErrDispatchExists if a dispatch with the same id already exists.
func (r *DispatchRepository) Insert(ctx context.Context, tx database.TxQuerier, d *model.Dispatch) error {
	query := `INSERT INTO dispatches (id, title, body, audience, recipient_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := tx.Exec(ctx, query, d.ID, d.Title, d.Text, d.Audience, d.RecipientCount, d.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return service.ErrDispatchExists
		}
		return fmt.Errorf("insert dispatch: %w", err)
	}
	return nil
}

// List returns the most recent dispatches, newest first.
// On success, returns an empty slice (not nil) when no dispatches exist.
func (r *DispatchRepository) List(ctx context.Context, limit int) ([]model.Dispatch, error) {
	query := `SELECT id, title, body, audience, recipient_count, created_at
		FROM dispatches ORDER BY created_at DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list dispatches: %w", err)
	}
	defer rows.Close()

	dispatches := []model.Dispatch{}
	for rows.Next() {
		var d model.Dispatch
		if err := rows.Scan(&d.ID, &d.Title, &d.Text, &d.Audience, &d.RecipientCount, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan dispatch: %w", err)
		}
		dispatches = append(dispatches, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate dispatch rows: %w", err)
	}
	return dispatches, nil
}

// GetByID retrieves a dispatch by its id.
// Returns nil, nil if the dispatch is not found (service layer handles this).
func (r *DispatchRepository) GetByID(ctx context.Context, id string) (*model.Dispatch, error) {
	query := `SELECT id, title, body, audience, recipient_count, created_at FROM dispatches WHERE id = $1`

	var d model.Dispatch
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&d.ID,
		&d.Title,
		&d.Text,
		&d.Audience,
		&d.RecipientCount,
		&d.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get dispatch %s: %w", id, err)
	}
	return &d, nil
}
