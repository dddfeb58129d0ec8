package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fairyhunter13/subscription-admin/internal/model"
)

// mockCustomerService is a mock implementation of CustomerServiceInterface.
type mockCustomerService struct {
	listFn         func(ctx context.Context, q model.ListQuery) (*model.CustomerPage, error)
	listAudienceFn func(ctx context.Context, q model.ListQuery) (*model.CustomerPage, error)
}

func (m *mockCustomerService) List(ctx context.Context, q model.ListQuery) (*model.CustomerPage, error) {
	if m.listFn != nil {
		return m.listFn(ctx, q)
	}
	return &model.CustomerPage{Items: []model.Customer{}}, nil
}

func (m *mockCustomerService) ListAudience(ctx context.Context, q model.ListQuery) (*model.CustomerPage, error) {
	if m.listAudienceFn != nil {
		return m.listAudienceFn(ctx, q)
	}
	return &model.CustomerPage{Items: []model.Customer{}}, nil
}

// mockCouponService is a mock implementation of CouponServiceInterface.
type mockCouponService struct {
	listFn   func(ctx context.Context, q model.ListQuery) (*model.CouponPage, error)
	createFn func(ctx context.Context, req *model.CreateCouponRequest) error
}

func (m *mockCouponService) List(ctx context.Context, q model.ListQuery) (*model.CouponPage, error) {
	if m.listFn != nil {
		return m.listFn(ctx, q)
	}
	return &model.CouponPage{Items: []model.Coupon{}}, nil
}

func (m *mockCouponService) Create(ctx context.Context, req *model.CreateCouponRequest) error {
	if m.createFn != nil {
		return m.createFn(ctx, req)
	}
	return nil
}

// mockHistoryService is a mock implementation of HistoryServiceInterface.
type mockHistoryService struct {
	listFn func(ctx context.Context, q model.ListQuery) (*model.HistoryPage, error)
}

func (m *mockHistoryService) List(ctx context.Context, q model.ListQuery) (*model.HistoryPage, error) {
	if m.listFn != nil {
		return m.listFn(ctx, q)
	}
	return &model.HistoryPage{Items: []model.NotificationHistory{}}, nil
}

// mockNotificationService is a mock implementation of NotificationServiceInterface.
type mockNotificationService struct {
	sendFn               func(ctx context.Context, req *model.SendNotificationRequest) (*model.SendResult, error)
	sendBySubscriptionFn func(ctx context.Context, req *model.SendBySubscriptionRequest) (*model.SendResult, error)
}

func (m *mockNotificationService) Send(ctx context.Context, req *model.SendNotificationRequest) (*model.SendResult, error) {
	if m.sendFn != nil {
		return m.sendFn(ctx, req)
	}
	return &model.SendResult{}, nil
}

func (m *mockNotificationService) SendBySubscription(ctx context.Context, req *model.SendBySubscriptionRequest) (*model.SendResult, error) {
	if m.sendBySubscriptionFn != nil {
		return m.sendBySubscriptionFn(ctx, req)
	}
	return &model.SendResult{}, nil
}

// mockPackageService is a mock implementation of PackageServiceInterface.
type mockPackageService struct {
	plansFn  func(ctx context.Context) (*model.PlansResponse, error)
	updateFn func(ctx context.Context, id string, req *model.UpdatePackageRequest) (*model.Package, error)
}

func (m *mockPackageService) Plans(ctx context.Context) (*model.PlansResponse, error) {
	if m.plansFn != nil {
		return m.plansFn(ctx)
	}
	return &model.PlansResponse{Packages: []model.Package{}}, nil
}

func (m *mockPackageService) Update(ctx context.Context, id string, req *model.UpdatePackageRequest) (*model.Package, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, req)
	}
	return &model.Package{ID: id}, nil
}

// mockDispatchService is a mock implementation of DispatchServiceInterface.
type mockDispatchService struct {
	listFn func(ctx context.Context, q model.ListQuery) (*model.DispatchPage, error)
	getFn  func(ctx context.Context, id string) (*model.DispatchResponse, error)
}

func (m *mockDispatchService) List(ctx context.Context, q model.ListQuery) (*model.DispatchPage, error) {
	if m.listFn != nil {
		return m.listFn(ctx, q)
	}
	return &model.DispatchPage{Items: []model.Dispatch{}}, nil
}

func (m *mockDispatchService) Get(ctx context.Context, id string) (*model.DispatchResponse, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, nil
}

// mockAuthService is a mock implementation of AuthServiceInterface.
type mockAuthService struct {
	loginFn func(ctx context.Context, req *model.LoginRequest) (*model.AdminUser, error)
}

func (m *mockAuthService) Login(ctx context.Context, req *model.LoginRequest) (*model.AdminUser, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, req)
	}
	return &model.AdminUser{}, nil
}

// decodeBody reads a JSON response body into a map.
func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer func() {
		_ = resp.Body.Close()
	}()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body), "body: %s", raw)
	return body
}

func intPtr(i int) *int {
	return &i
}
