package service

import (
	"context"
	"strings"

	"github.com/fairyhunter13/subscription-admin/internal/collection"
	"github.com/fairyhunter13/subscription-admin/internal/model"
)

// CustomerService serves the customer and notification audience screens.
type CustomerService struct {
	upstream UpstreamInterface
	perPage  int
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(upstream UpstreamInterface, perPage int) *CustomerService {
	return &CustomerService{upstream: upstream, perPage: perPage}
}

// List returns one page of customers searched by name.
// A failed fetch yields an empty page; List never returns an error.
func (s *CustomerService) List(ctx context.Context, q model.ListQuery) (*model.CustomerPage, error) {
	return s.list(ctx, q, CustomerOptions(s.perPage)), nil
}

// ListAudience returns one page of customers searched by name, email, id or subscription.
func (s *CustomerService) ListAudience(ctx context.Context, q model.ListQuery) (*model.CustomerPage, error) {
	return s.list(ctx, q, AudienceOptions(s.perPage)), nil
}

func (s *CustomerService) list(ctx context.Context, q model.ListQuery, opts collection.Options[model.Customer]) *model.CustomerPage {
	var (
		users  []model.Customer
		counts model.CustomerCounts
	)
	res, err := s.upstream.ListCustomers(ctx)
	if err != nil {
		degrade("customers", err)
	} else {
		users = res.Users
		counts = countCustomers(res)
	}

	items, pagination := paginate(users, opts, q)
	return &model.CustomerPage{
		Items:      items,
		Pagination: pagination,
		Counts:     counts,
	}
}

// countCustomers prefers the summary sent by the remote API and falls back to
// counting the fetched users.
func countCustomers(res *model.CustomerList) model.CustomerCounts {
	if res.Counts != nil {
		return *res.Counts
	}
	counts := model.CustomerCounts{All: len(res.Users)}
	for _, u := range res.Users {
		switch {
		case strings.EqualFold(u.Subscription, model.SubscriptionFree):
			counts.Free++
		case strings.EqualFold(u.Subscription, model.SubscriptionPaid):
			counts.Paid++
		}
	}
	return counts
}
