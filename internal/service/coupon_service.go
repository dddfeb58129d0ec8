package service

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/fairyhunter13/subscription-admin/internal/metrics"
	"github.com/fairyhunter13/subscription-admin/internal/model"
	"github.com/fairyhunter13/subscription-admin/internal/upstream"
)

// expiryLayout is the date format of CreateCouponRequest.ExpiresAt.
const expiryLayout = "2006-01-02"

// CouponService provides business logic for coupon operations.
type CouponService struct {
	upstream UpstreamInterface
	perPage  int
	now      func() time.Time
}

// NewCouponService creates a new CouponService.
func NewCouponService(upstream UpstreamInterface, perPage int) *CouponService {
	return &CouponService{upstream: upstream, perPage: perPage, now: time.Now}
}

// List returns one page of coupons.
// A failed fetch yields an empty page; List never returns an error.
func (s *CouponService) List(ctx context.Context, q model.ListQuery) (*model.CouponPage, error) {
	coupons, err := s.upstream.ListCoupons(ctx)
	if err != nil {
		degrade("coupons", err)
		coupons = nil
	}

	items, pagination := paginate(coupons, CouponOptions(s.perPage), q)
	return &model.CouponPage{Items: items, Pagination: pagination}, nil
}

// Create creates a new coupon from the request.
// Returns ErrCouponExpired if the expiry date is today or earlier.
// Returns ErrCouponExists if the remote API already has a coupon with that name.
// Returns ErrInvalidRequest if request data is nil or incomplete.
func (s *CouponService) Create(ctx context.Context, req *model.CreateCouponRequest) error {
	// Defense-in-depth: check for nil pointers even though handler validates
	if req == nil || req.MaxUsesPerUser == nil || req.MaxTotalUses == nil || req.DiscountValue == nil {
		return ErrInvalidRequest
	}

	expiresAt, err := time.Parse(expiryLayout, req.ExpiresAt)
	if err != nil {
		return ErrInvalidRequest
	}
	today := s.now().UTC().Truncate(24 * time.Hour)
	if !expiresAt.After(today) {
		return ErrCouponExpired
	}

	if err := s.upstream.CreateCoupon(ctx, req); err != nil {
		if upstream.IsStatus(err, http.StatusConflict) {
			return ErrCouponExists
		}
		return mutationError("create coupon", err)
	}

	metrics.CouponsCreated.Inc()
	log.Info().
		Str("coupon", req.Name).
		Int("discount", *req.DiscountValue).
		Str("expires_at", req.ExpiresAt).
		Msg("coupon created")
	return nil
}
