package service

import (
	"errors"
	"fmt"

	"github.com/fairyhunter13/subscription-admin/internal/upstream"
)

var (
	// ErrInvalidRequest is returned when request data is invalid or incomplete
	ErrInvalidRequest = errors.New("invalid request")

	// ErrCouponExists is returned when attempting to create a coupon that already exists
	ErrCouponExists = errors.New("coupon already exists")

	// ErrCouponExpired is returned when a coupon's expiry date is not in the future
	ErrCouponExpired = errors.New("coupon expiry date must be in the future")

	// ErrPackageNotFound is returned when a package cannot be found
	ErrPackageNotFound = errors.New("package not found")

	// ErrPriceRequired is returned when a pro package is saved without both prices
	ErrPriceRequired = errors.New("actual and discounted price are required for the pro package")

	// ErrInvalidPrice is returned when the discounted price exceeds the actual price
	ErrInvalidPrice = errors.New("discounted price must not exceed actual price")

	// ErrNoRecipients is returned when a notification would reach nobody
	ErrNoRecipients = errors.New("no recipients")

	// ErrDispatchNotFound is returned when a dispatch cannot be found
	ErrDispatchNotFound = errors.New("dispatch not found")

	// ErrDispatchExists is returned when a dispatch id is recorded twice
	ErrDispatchExists = errors.New("dispatch already recorded")

	// ErrInvalidCredentials is returned when the remote API rejects a login
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// UpstreamRejectedError is returned when the remote API refuses a mutation
// with a client error. Message is safe to show to the administrator.
type UpstreamRejectedError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamRejectedError) Error() string {
	return fmt.Sprintf("rejected by upstream (%d): %s", e.StatusCode, e.Message)
}

// mutationError maps a failed remote mutation: client errors become an
// UpstreamRejectedError, everything else is wrapped with op.
func mutationError(op string, err error) error {
	var se *upstream.StatusError
	if errors.As(err, &se) && se.StatusCode >= 400 && se.StatusCode < 500 {
		return &UpstreamRejectedError{StatusCode: se.StatusCode, Message: se.Message}
	}
	return fmt.Errorf("%s: %w", op, err)
}
