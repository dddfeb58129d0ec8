package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fairyhunter13/subscription-admin/internal/model"
)

// mockRow implements pgx.Row for testing.
type mockRow struct {
	scanFn func(dest ...any) error
}

func (m *mockRow) Scan(dest ...any) error {
	if m.scanFn != nil {
		return m.scanFn(dest...)
	}
	return nil
}

// mockDispatchRows implements pgx.Rows over dispatch records.
type mockDispatchRows struct {
	data      []model.Dispatch
	index     int
	errOnScan error
	errOnRows error
}

func (m *mockDispatchRows) Close() {}

func (m *mockDispatchRows) Err() error {
	return m.errOnRows
}

func (m *mockDispatchRows) Next() bool {
	if m.index < len(m.data) {
		m.index++
		return true
	}
	return false
}

func (m *mockDispatchRows) Scan(dest ...any) error {
	if m.errOnScan != nil {
		return m.errOnScan
	}
	scanDispatch(m.data[m.index-1], dest...)
	return nil
}

func (m *mockDispatchRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (m *mockDispatchRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (m *mockDispatchRows) RawValues() [][]byte                          { return nil }
func (m *mockDispatchRows) Values() ([]any, error)                       { return nil, nil }
func (m *mockDispatchRows) Conn() *pgx.Conn                              { return nil }

// mockRecipientRows implements pgx.Rows over recipient user ids.
type mockRecipientRows struct {
	data      []string
	index     int
	errOnScan error
	errOnRows error
}

func (m *mockRecipientRows) Close() {}

func (m *mockRecipientRows) Err() error {
	return m.errOnRows
}

func (m *mockRecipientRows) Next() bool {
	if m.index < len(m.data) {
		m.index++
		return true
	}
	return false
}

func (m *mockRecipientRows) Scan(dest ...any) error {
	if m.errOnScan != nil {
		return m.errOnScan
	}
	*(dest[0].(*string)) = m.data[m.index-1]
	return nil
}

func (m *mockRecipientRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (m *mockRecipientRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (m *mockRecipientRows) RawValues() [][]byte                          { return nil }
func (m *mockRecipientRows) Values() ([]any, error)                       { return nil, nil }
func (m *mockRecipientRows) Conn() *pgx.Conn                              { return nil }

// mockPool implements PoolInterface and RecipientPoolInterface for testing.
type mockPool struct {
	queryRowFn func(ctx context.Context, sql string, args ...any) pgx.Row
	queryFn    func(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func (m *mockPool) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if m.queryRowFn != nil {
		return m.queryRowFn(ctx, sql, args...)
	}
	return &mockRow{}
}

func (m *mockPool) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if m.queryFn != nil {
		return m.queryFn(ctx, sql, args...)
	}
	return &mockDispatchRows{}, nil
}

// mockTxQuerier implements database.TxQuerier for testing.
type mockTxQuerier struct {
	execFn      func(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	sendBatchFn func(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

func (m *mockTxQuerier) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	if m.execFn != nil {
		return m.execFn(ctx, sql, arguments...)
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (m *mockTxQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return &mockRow{}
}

func (m *mockTxQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return &mockDispatchRows{}, nil
}

func (m *mockTxQuerier) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults {
	if m.sendBatchFn != nil {
		return m.sendBatchFn(ctx, b)
	}
	return &mockBatchResults{}
}

// mockBatchResults implements pgx.BatchResults for testing.
type mockBatchResults struct {
	execErrs []error
	execs    int
	closed   bool
	closeErr error
}

func (m *mockBatchResults) Exec() (pgconn.CommandTag, error) {
	var err error
	if m.execs < len(m.execErrs) {
		err = m.execErrs[m.execs]
	}
	m.execs++
	return pgconn.NewCommandTag("INSERT 0 1"), err
}

func (m *mockBatchResults) Query() (pgx.Rows, error) { return &mockRecipientRows{}, nil }
func (m *mockBatchResults) QueryRow() pgx.Row        { return &mockRow{} }

func (m *mockBatchResults) Close() error {
	m.closed = true
	return m.closeErr
}

func scanDispatch(d model.Dispatch, dest ...any) {
	*(dest[0].(*string)) = d.ID
	*(dest[1].(*string)) = d.Title
	*(dest[2].(*string)) = d.Text
	*(dest[3].(*string)) = d.Audience
	*(dest[4].(*int)) = d.RecipientCount
	*(dest[5].(*time.Time)) = d.CreatedAt
}
