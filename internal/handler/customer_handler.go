package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/fairyhunter13/subscription-admin/internal/model"
)

// CustomerServiceInterface defines the interface for the customer list screens.
type CustomerServiceInterface interface {
	List(ctx context.Context, q model.ListQuery) (*model.CustomerPage, error)
	ListAudience(ctx context.Context, q model.ListQuery) (*model.CustomerPage, error)
}

// CustomerHandler handles HTTP requests for the customer screen.
type CustomerHandler struct {
	service CustomerServiceInterface
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(svc CustomerServiceInterface) *CustomerHandler {
	return &CustomerHandler{service: svc}
}

// List handles GET /api/customers requests.
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	q, ok, err := listQuery(c)
	if !ok {
		return err
	}

	page, err := h.service.List(c.Context(), q)
	if err != nil {
		return writeError(c, err, "failed to list customers")
	}
	return c.JSON(page)
}
