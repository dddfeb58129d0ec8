package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/fairyhunter13/subscription-admin/internal/model"
	"github.com/fairyhunter13/subscription-admin/internal/upstream"
)

var errUpstreamDown = fmt.Errorf("GET /user: %w: %w", upstream.ErrUnavailable, errors.New("connection refused"))

// fakeUpstream serves canned remote API answers to the real services.
type fakeUpstream struct {
	customers    *model.CustomerList
	customersErr error
	createErr    error
	sendErr      error
}

func (f *fakeUpstream) ListCustomers(ctx context.Context) (*model.CustomerList, error) {
	if f.customersErr != nil {
		return nil, f.customersErr
	}
	return f.customers, nil
}

func (f *fakeUpstream) ListNotificationHistory(ctx context.Context) ([]model.NotificationHistory, error) {
	return nil, nil
}

func (f *fakeUpstream) ListCoupons(ctx context.Context) ([]model.Coupon, error) {
	return nil, nil
}

func (f *fakeUpstream) CreateCoupon(ctx context.Context, req *model.CreateCouponRequest) error {
	return f.createErr
}

func (f *fakeUpstream) ListPackages(ctx context.Context) ([]model.Package, error) {
	return nil, nil
}

func (f *fakeUpstream) UpdatePackage(ctx context.Context, id string, req *model.UpdatePackageRequest) error {
	return nil
}

func (f *fakeUpstream) SendEmail(ctx context.Context, req *model.SendNotificationRequest) error {
	return f.sendErr
}

func (f *fakeUpstream) SendEmailBySubscription(ctx context.Context, req *model.SendBySubscriptionRequest) error {
	return f.sendErr
}

func (f *fakeUpstream) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	return nil, &upstream.StatusError{StatusCode: 401, Message: "Invalid credentials"}
}
