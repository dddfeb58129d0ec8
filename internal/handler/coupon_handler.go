package handler

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/fairyhunter13/subscription-admin/internal/model"
)

// CouponServiceInterface defines the interface for coupon business logic.
type CouponServiceInterface interface {
	List(ctx context.Context, q model.ListQuery) (*model.CouponPage, error)
	Create(ctx context.Context, req *model.CreateCouponRequest) error
}

// CouponHandler handles HTTP requests for coupon operations.
type CouponHandler struct {
	service   CouponServiceInterface
	validator *validator.Validate
}

// NewCouponHandler creates a new CouponHandler with the given service and validator.
func NewCouponHandler(svc CouponServiceInterface, v *validator.Validate) *CouponHandler {
	return &CouponHandler{service: svc, validator: v}
}

// List handles GET /api/coupons requests.
func (h *CouponHandler) List(c *fiber.Ctx) error {
	q, ok, err := listQuery(c)
	if !ok {
		return err
	}

	page, err := h.service.List(c.Context(), q)
	if err != nil {
		return writeError(c, err, "failed to list coupons")
	}
	return c.JSON(page)
}

// Create handles POST /api/coupons requests to create a new coupon.
func (h *CouponHandler) Create(c *fiber.Ctx) error {
	var req model.CreateCouponRequest

	// Parse JSON body
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	// Validate request
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": formatValidationError(err)})
	}

	if err := h.service.Create(c.Context(), &req); err != nil {
		return writeError(c, err, "failed to create coupon")
	}

	log.Info().
		Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
		Str("coupon_name", req.Name).
		Msg("coupon created via dashboard")

	return c.Status(fiber.StatusCreated).Send(nil)
}
