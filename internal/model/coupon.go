package model

import "strconv"

// Coupon represents a discount coupon as returned by the remote API.
type Coupon struct {
	ID             string  `json:"_id"`
	Name           string  `json:"name"`
	MaxUsesPerUser *int    `json:"maxUsesPerUser"`
	MaxTotalUses   *int    `json:"maxTotalUses"`
	DiscountValue  float64 `json:"discountValue"`
	ExpiresAt      string  `json:"expiresAt"`
}

// DiscountBucket returns the filter bucket of the coupon, e.g. "20%" or "12.5%".
func (c Coupon) DiscountBucket() string {
	return strconv.FormatFloat(c.DiscountValue, 'f', -1, 64) + "%"
}

// CreateCouponRequest is the DTO for creating a coupon
type CreateCouponRequest struct {
	Name           string `json:"name" validate:"required,notblank,max=64"`
	MaxUsesPerUser *int   `json:"maxUsesPerUser" validate:"required,gte=1"`
	MaxTotalUses   *int   `json:"maxTotalUses" validate:"required,gte=1"`
	DiscountValue  *int   `json:"discountValue" validate:"required,gte=1,lte=100"`
	ExpiresAt      string `json:"expiresAt" validate:"required,datetime=2006-01-02"`
}

// CouponPage is the API response for GET /api/coupons
type CouponPage struct {
	Items      []Coupon   `json:"items"`
	Pagination Pagination `json:"pagination"`
}
