package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fairyhunter13/subscription-admin/internal/model"
	"github.com/fairyhunter13/subscription-admin/pkg/database"
)

// mockUpstream is a mock implementation of UpstreamInterface.
type mockUpstream struct {
	listCustomersFn           func(ctx context.Context) (*model.CustomerList, error)
	listNotificationHistoryFn func(ctx context.Context) ([]model.NotificationHistory, error)
	listCouponsFn             func(ctx context.Context) ([]model.Coupon, error)
	createCouponFn            func(ctx context.Context, req *model.CreateCouponRequest) error
	listPackagesFn            func(ctx context.Context) ([]model.Package, error)
	updatePackageFn           func(ctx context.Context, id string, req *model.UpdatePackageRequest) error
	sendEmailFn               func(ctx context.Context, req *model.SendNotificationRequest) error
	sendEmailBySubscriptionFn func(ctx context.Context, req *model.SendBySubscriptionRequest) error
	loginFn                   func(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
}

func (m *mockUpstream) ListCustomers(ctx context.Context) (*model.CustomerList, error) {
	if m.listCustomersFn != nil {
		return m.listCustomersFn(ctx)
	}
	return &model.CustomerList{}, nil
}

func (m *mockUpstream) ListNotificationHistory(ctx context.Context) ([]model.NotificationHistory, error) {
	if m.listNotificationHistoryFn != nil {
		return m.listNotificationHistoryFn(ctx)
	}
	return []model.NotificationHistory{}, nil
}

func (m *mockUpstream) ListCoupons(ctx context.Context) ([]model.Coupon, error) {
	if m.listCouponsFn != nil {
		return m.listCouponsFn(ctx)
	}
	return []model.Coupon{}, nil
}

func (m *mockUpstream) CreateCoupon(ctx context.Context, req *model.CreateCouponRequest) error {
	if m.createCouponFn != nil {
		return m.createCouponFn(ctx, req)
	}
	return nil
}

func (m *mockUpstream) ListPackages(ctx context.Context) ([]model.Package, error) {
	if m.listPackagesFn != nil {
		return m.listPackagesFn(ctx)
	}
	return []model.Package{}, nil
}

func (m *mockUpstream) UpdatePackage(ctx context.Context, id string, req *model.UpdatePackageRequest) error {
	if m.updatePackageFn != nil {
		return m.updatePackageFn(ctx, id, req)
	}
	return nil
}

func (m *mockUpstream) SendEmail(ctx context.Context, req *model.SendNotificationRequest) error {
	if m.sendEmailFn != nil {
		return m.sendEmailFn(ctx, req)
	}
	return nil
}

func (m *mockUpstream) SendEmailBySubscription(ctx context.Context, req *model.SendBySubscriptionRequest) error {
	if m.sendEmailBySubscriptionFn != nil {
		return m.sendEmailBySubscriptionFn(ctx, req)
	}
	return nil
}

func (m *mockUpstream) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, req)
	}
	return &model.LoginResponse{}, nil
}

// mockDispatchRepository is a mock implementation of DispatchRepositoryInterface.
type mockDispatchRepository struct {
	insertFn  func(ctx context.Context, tx database.TxQuerier, d *model.Dispatch) error
	listFn    func(ctx context.Context, limit int) ([]model.Dispatch, error)
	getByIDFn func(ctx context.Context, id string) (*model.Dispatch, error)
}

func (m *mockDispatchRepository) Insert(ctx context.Context, tx database.TxQuerier, d *model.Dispatch) error {
	if m.insertFn != nil {
		return m.insertFn(ctx, tx, d)
	}
	return nil
}

func (m *mockDispatchRepository) List(ctx context.Context, limit int) ([]model.Dispatch, error) {
	if m.listFn != nil {
		return m.listFn(ctx, limit)
	}
	return []model.Dispatch{}, nil
}

func (m *mockDispatchRepository) GetByID(ctx context.Context, id string) (*model.Dispatch, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

// mockRecipientRepository is a mock implementation of RecipientRepositoryInterface.
type mockRecipientRepository struct {
	getUsersByDispatchFn func(ctx context.Context, dispatchID string) ([]string, error)
	insertFn             func(ctx context.Context, tx database.TxQuerier, dispatchID string, userIDs []string) error
}

func (m *mockRecipientRepository) GetUsersByDispatch(ctx context.Context, dispatchID string) ([]string, error) {
	if m.getUsersByDispatchFn != nil {
		return m.getUsersByDispatchFn(ctx, dispatchID)
	}
	return []string{}, nil
}

func (m *mockRecipientRepository) Insert(ctx context.Context, tx database.TxQuerier, dispatchID string, userIDs []string) error {
	if m.insertFn != nil {
		return m.insertFn(ctx, tx, dispatchID, userIDs)
	}
	return nil
}

// mockRecorder is a mock implementation of DispatchRecorder.
type mockRecorder struct {
	recordFn func(ctx context.Context, d *model.Dispatch, recipients []string) error
}

func (m *mockRecorder) Record(ctx context.Context, d *model.Dispatch, recipients []string) error {
	if m.recordFn != nil {
		return m.recordFn(ctx, d, recipients)
	}
	return nil
}

// mockTokens is a mock implementation of TokenSetter.
type mockTokens struct {
	token string
}

func (m *mockTokens) SetToken(token string) {
	m.token = token
}

// mockTx is a mock implementation of pgx.Tx for testing transactions.
type mockTx struct {
	commitFn   func(ctx context.Context) error
	rollbackFn func(ctx context.Context) error
}

func (m *mockTx) Begin(ctx context.Context) (pgx.Tx, error) {
	return nil, errors.New("nested transactions not supported")
}

func (m *mockTx) Commit(ctx context.Context) error {
	if m.commitFn != nil {
		return m.commitFn(ctx)
	}
	return nil
}

func (m *mockTx) Rollback(ctx context.Context) error {
	if m.rollbackFn != nil {
		return m.rollbackFn(ctx)
	}
	return nil
}

func (m *mockTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}

func (m *mockTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults {
	return nil
}

func (m *mockTx) LargeObjects() pgx.LargeObjects {
	return pgx.LargeObjects{}
}

func (m *mockTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}

func (m *mockTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

func (m *mockTx) Conn() *pgx.Conn {
	return nil
}

// mockTxBeginner is a mock implementation of TxBeginner.
type mockTxBeginner struct {
	beginFn func(ctx context.Context) (pgx.Tx, error)
}

func (m *mockTxBeginner) Begin(ctx context.Context) (pgx.Tx, error) {
	if m.beginFn != nil {
		return m.beginFn(ctx)
	}
	return &mockTx{}, nil
}

func intPtr(i int) *int {
	return &i
}

func floatPtr(f float64) *float64 {
	return &f
}
