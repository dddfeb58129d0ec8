package service

import (
	"cmp"
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/fairyhunter13/subscription-admin/internal/collection"
	"github.com/fairyhunter13/subscription-admin/internal/metrics"
	"github.com/fairyhunter13/subscription-admin/internal/model"
)

// UpstreamInterface defines the remote API operations used by the services.
type UpstreamInterface interface {
	ListCustomers(ctx context.Context) (*model.CustomerList, error)
	ListNotificationHistory(ctx context.Context) ([]model.NotificationHistory, error)
	ListCoupons(ctx context.Context) ([]model.Coupon, error)
	CreateCoupon(ctx context.Context, req *model.CreateCouponRequest) error
	ListPackages(ctx context.Context) ([]model.Package, error)
	UpdatePackage(ctx context.Context, id string, req *model.UpdatePackageRequest) error
	SendEmail(ctx context.Context, req *model.SendNotificationRequest) error
	SendEmailBySubscription(ctx context.Context, req *model.SendBySubscriptionRequest) error
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
}

// CustomerOptions searches customers by name and filters by subscription tier.
func CustomerOptions(perPage int) collection.Options[model.Customer] {
	return collection.Options[model.Customer]{
		ItemsPerPage: perPage,
		Search: func(c model.Customer, term string) bool {
			return collection.ContainsFold(c.Name, term)
		},
		Filter: filterBySubscription,
		Sorts:  customerSorts,
	}
}

// AudienceOptions is used by the notification screen, whose search also
// covers email, id and subscription.
func AudienceOptions(perPage int) collection.Options[model.Customer] {
	return collection.Options[model.Customer]{
		ItemsPerPage: perPage,
		Search: func(c model.Customer, term string) bool {
			return collection.ContainsFold(c.Name, term) ||
				collection.ContainsFold(c.Email, term) ||
				collection.ContainsFold(c.ID, term) ||
				collection.ContainsFold(c.Subscription, term)
		},
		Filter: filterBySubscription,
		Sorts:  customerSorts,
	}
}

// HistoryOptions searches history rows by name and filters by plan, ignoring case.
func HistoryOptions(perPage int) collection.Options[model.NotificationHistory] {
	return collection.Options[model.NotificationHistory]{
		ItemsPerPage: perPage,
		Search: func(h model.NotificationHistory, term string) bool {
			return collection.ContainsFold(h.Name, term)
		},
		Filter: func(h model.NotificationHistory, value string) bool {
			return strings.EqualFold(h.Plan, value)
		},
		Sorts: map[string]func(a, b model.NotificationHistory) int{
			"name":  func(a, b model.NotificationHistory) int { return compareFold(a.Name, b.Name) },
			"count": func(a, b model.NotificationHistory) int { return a.Count - b.Count },
		},
	}
}

// CouponOptions searches coupons by name and filters by discount bucket.
// A bucket is written either "20%" or "20".
func CouponOptions(perPage int) collection.Options[model.Coupon] {
	return collection.Options[model.Coupon]{
		ItemsPerPage: perPage,
		Search: func(c model.Coupon, term string) bool {
			return collection.ContainsFold(c.Name, term)
		},
		Filter: func(c model.Coupon, value string) bool {
			return c.DiscountBucket() == strings.TrimSuffix(value, "%")+"%"
		},
		Sorts: map[string]func(a, b model.Coupon) int{
			"name":     func(a, b model.Coupon) int { return compareFold(a.Name, b.Name) },
			"discount": func(a, b model.Coupon) int { return cmp.Compare(a.DiscountValue, b.DiscountValue) },
			"expires":  func(a, b model.Coupon) int { return strings.Compare(a.ExpiresAt, b.ExpiresAt) },
		},
	}
}

// DispatchOptions searches dispatches by title and text and filters by audience.
func DispatchOptions(perPage int) collection.Options[model.Dispatch] {
	return collection.Options[model.Dispatch]{
		ItemsPerPage: perPage,
		Search: func(d model.Dispatch, term string) bool {
			return collection.ContainsFold(d.Title, term) || collection.ContainsFold(d.Text, term)
		},
		Filter: func(d model.Dispatch, value string) bool {
			return strings.EqualFold(d.Audience, value)
		},
		Sorts: map[string]func(a, b model.Dispatch) int{
			"created": func(a, b model.Dispatch) int { return a.CreatedAt.Compare(b.CreatedAt) },
		},
	}
}

var customerSorts = map[string]func(a, b model.Customer) int{
	"name":    func(a, b model.Customer) int { return compareFold(a.Name, b.Name) },
	"created": func(a, b model.Customer) int { return a.CreatedAt.Compare(b.CreatedAt) },
}

func filterBySubscription(c model.Customer, value string) bool {
	return strings.EqualFold(c.Subscription, value)
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// paginate runs a ListQuery through a fresh View. Search and filter are applied
// before the page so that an out-of-range page falls back to the first one.
func paginate[T any](items []T, opts collection.Options[T], q model.ListQuery) ([]T, model.Pagination) {
	v := collection.New(items, opts)
	v.SetSearchTerm(strings.TrimSpace(q.Search))
	v.SetFilter(strings.TrimSpace(q.Filter))
	v.SetSort(q.Sort, q.Desc)
	v.SetPage(q.Page)

	d := v.Derived()
	st := v.State()
	return d.Records, model.Pagination{
		CurrentPage: d.CurrentPage,
		PerPage:     d.ItemsPerPage,
		TotalItems:  d.TotalMatching,
		TotalPages:  d.TotalPages,
		PageWindow:  d.PageWindow,
		RangeStart:  d.RangeStart,
		RangeEnd:    d.RangeEnd,
		HasPrevious: d.HasPrevious,
		HasNext:     d.HasNext,
		Search:      st.SearchTerm,
		Filter:      st.FilterValue,
		Sort:        st.SortKey,
	}
}

// degrade logs a failed collection fetch; the caller continues with an empty collection.
func degrade(collectionName string, err error) {
	metrics.CollectionFetchFailures.WithLabelValues(collectionName).Inc()
	log.Warn().
		Err(err).
		Str("collection", collectionName).
		Msg("failed to fetch collection, showing empty list")
}
