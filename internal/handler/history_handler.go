package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/fairyhunter13/subscription-admin/internal/model"
)

// HistoryServiceInterface defines the interface for the notification history screen.
type HistoryServiceInterface interface {
	List(ctx context.Context, q model.ListQuery) (*model.HistoryPage, error)
}

// HistoryHandler handles HTTP requests for notification history.
type HistoryHandler struct {
	service HistoryServiceInterface
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(svc HistoryServiceInterface) *HistoryHandler {
	return &HistoryHandler{service: svc}
}

// List handles GET /api/notifications/history requests.
func (h *HistoryHandler) List(c *fiber.Ctx) error {
	q, ok, err := listQuery(c)
	if !ok {
		return err
	}

	page, err := h.service.List(c.Context(), q)
	if err != nil {
		return writeError(c, err, "failed to list notification history")
	}
	return c.JSON(page)
}
