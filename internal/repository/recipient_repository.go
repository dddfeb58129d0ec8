package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fairyhunter13/subscription-admin/pkg/database"
)

// RecipientPoolInterface defines the database operations needed by RecipientRepository.
type RecipientPoolInterface interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// RecipientRepository provides data access for dispatch recipients using pgx.
type RecipientRepository struct {
	pool RecipientPoolInterface
}

// NewRecipientRepository creates a new RecipientRepository with the given pool.
func NewRecipientRepository(pool *pgxpool.Pool) *RecipientRepository {
	return &RecipientRepository{pool: pool}
}

// NewRecipientRepositoryWithPool creates a new RecipientRepository with a custom pool interface.
// This is primarily used for testing.
func NewRecipientRepositoryWithPool(pool RecipientPoolInterface) *RecipientRepository {
	return &RecipientRepository{pool: pool}
}

// GetUsersByDispatch retrieves the user ids a dispatch was addressed to,
// ordered by user id. Recipients of one dispatch share a single insert
// transaction, so there is no meaningful send order between them.
// On success, returns an empty slice (not nil) when there are none.
// On error, returns nil and the wrapped error.
func (r *RecipientRepository) GetUsersByDispatch(ctx context.Context, dispatchID string) ([]string, error) {
	query := `SELECT user_id FROM dispatch_recipients WHERE dispatch_id = $1 ORDER BY user_id`

	rows, err := r.pool.Query(ctx, query, dispatchID)
	if err != nil {
		return nil, fmt.Errorf("get recipients for dispatch %s: %w", dispatchID, err)
	}
	defer rows.Close()

	users := []string{}
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("scan recipient user_id: %w", err)
		}
		users = append(users, userID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipient rows: %w", err)
	}

	return users, nil
}

// Insert records the recipients of a dispatch within a transaction, one batch
// round trip for all rows. Duplicate user ids are stored once.
func (r *RecipientRepository) Insert(ctx context.Context, tx database.TxQuerier, dispatchID string, userIDs []string) error {
	if len(userIDs) == 0 {
		return nil
	}

	query := `INSERT INTO dispatch_recipients (dispatch_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`

	batch := &pgx.Batch{}
	for _, userID := range userIDs {
		batch.Queue(query, dispatchID, userID)
	}

	results := tx.SendBatch(ctx, batch)
	for i := range userIDs {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return fmt.Errorf("insert recipient %d of %d: %w", i+1, len(userIDs), err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("close recipient batch: %w", err)
	}
	return nil
}
