package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/fairyhunter13/subscription-admin/internal/model"
)

// DispatchServiceInterface defines the interface for the dispatch log.
type DispatchServiceInterface interface {
	List(ctx context.Context, q model.ListQuery) (*model.DispatchPage, error)
	Get(ctx context.Context, id string) (*model.DispatchResponse, error)
}

// DispatchHandler handles HTTP requests for recorded notification sends.
type DispatchHandler struct {
	service DispatchServiceInterface
}

// NewDispatchHandler creates a new DispatchHandler.
func NewDispatchHandler(svc DispatchServiceInterface) *DispatchHandler {
	return &DispatchHandler{service: svc}
}

// List handles GET /api/dispatches requests.
func (h *DispatchHandler) List(c *fiber.Ctx) error {
	q, ok, err := listQuery(c)
	if !ok {
		return err
	}

	page, err := h.service.List(c.Context(), q)
	if err != nil {
		return writeError(c, err, "failed to list dispatches")
	}
	return c.JSON(page)
}

// Get handles GET /api/dispatches/:id requests.
func (h *DispatchHandler) Get(c *fiber.Ctx) error {
	d, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err, "failed to get dispatch")
	}
	return c.JSON(d)
}
