package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fairyhunter13/subscription-admin/internal/model"
	"github.com/fairyhunter13/subscription-admin/pkg/database"
)

// dispatchListLimit bounds how many recent dispatches the dispatch screen loads.
const dispatchListLimit = 500

// DispatchRepositoryInterface defines the interface for dispatch data access.
type DispatchRepositoryInterface interface {
	Insert(ctx context.Context, tx database.TxQuerier, d *model.Dispatch) error
	List(ctx context.Context, limit int) ([]model.Dispatch, error)
	GetByID(ctx context.Context, id string) (*model.Dispatch, error)
}

// RecipientRepositoryInterface defines the interface for recipient data access.
type RecipientRepositoryInterface interface {
	GetUsersByDispatch(ctx context.Context, dispatchID string) ([]string, error)
	Insert(ctx context.Context, tx database.TxQuerier, dispatchID string, userIDs []string) error
}

// TxBeginner defines the interface for beginning transactions.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// DispatchService records and serves the local log of notification sends.
type DispatchService struct {
	pool          TxBeginner
	dispatchRepo  DispatchRepositoryInterface
	recipientRepo RecipientRepositoryInterface
	perPage       int
}

// NewDispatchService creates a new DispatchService with the given pool and repositories.
func NewDispatchService(pool *pgxpool.Pool, dispatchRepo DispatchRepositoryInterface, recipientRepo RecipientRepositoryInterface, perPage int) *DispatchService {
	return NewDispatchServiceWithTxBeginner(pool, dispatchRepo, recipientRepo, perPage)
}

// NewDispatchServiceWithTxBeginner creates a DispatchService with a custom TxBeginner.
// Primarily used for testing.
func NewDispatchServiceWithTxBeginner(pool TxBeginner, dispatchRepo DispatchRepositoryInterface, recipientRepo RecipientRepositoryInterface, perPage int) *DispatchService {
	return &DispatchService{
		pool:          pool,
		dispatchRepo:  dispatchRepo,
		recipientRepo: recipientRepo,
		perPage:       perPage,
	}
}

// Record stores a dispatch and its recipients in one transaction.
// Returns ErrDispatchExists if the dispatch id is already recorded.
func (s *DispatchService) Record(ctx context.Context, d *model.Dispatch, recipients []string) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }() // Safe: no-op if committed

	if err := s.dispatchRepo.Insert(ctx, tx, d); err != nil {
		return err
	}
	if err := s.recipientRepo.Insert(ctx, tx, d.ID, recipients); err != nil {
		return fmt.Errorf("insert recipients: %w", err)
	}

	return tx.Commit(ctx)
}

// List returns one page of recorded dispatches, newest first unless sorted otherwise.
func (s *DispatchService) List(ctx context.Context, q model.ListQuery) (*model.DispatchPage, error) {
	dispatches, err := s.dispatchRepo.List(ctx, dispatchListLimit)
	if err != nil {
		return nil, fmt.Errorf("list dispatches: %w", err)
	}

	items, pagination := paginate(dispatches, DispatchOptions(s.perPage), q)
	return &model.DispatchPage{Items: items, Pagination: pagination}, nil
}

// Get retrieves a dispatch with its recipients.
// Returns ErrDispatchNotFound if the id is malformed or unknown.
func (s *DispatchService) Get(ctx context.Context, id string) (*model.DispatchResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrDispatchNotFound
	}

	d, err := s.dispatchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get dispatch: %w", err)
	}
	if d == nil {
		return nil, ErrDispatchNotFound
	}

	recipients, err := s.recipientRepo.GetUsersByDispatch(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get recipients: %w", err)
	}

	return &model.DispatchResponse{Dispatch: *d, Recipients: recipients}, nil
}
