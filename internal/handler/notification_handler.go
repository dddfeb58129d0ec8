package handler

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/fairyhunter13/subscription-admin/internal/model"
)

// NotificationServiceInterface defines the interface for sending notifications.
type NotificationServiceInterface interface {
	Send(ctx context.Context, req *model.SendNotificationRequest) (*model.SendResult, error)
	SendBySubscription(ctx context.Context, req *model.SendBySubscriptionRequest) (*model.SendResult, error)
}

// NotificationHandler handles HTTP requests for the notification screen.
type NotificationHandler struct {
	service   NotificationServiceInterface
	customers CustomerServiceInterface
	validator *validator.Validate
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(svc NotificationServiceInterface, customers CustomerServiceInterface, v *validator.Validate) *NotificationHandler {
	return &NotificationHandler{service: svc, customers: customers, validator: v}
}

// Audience handles GET /api/notifications/audience requests, the recipient picker.
func (h *NotificationHandler) Audience(c *fiber.Ctx) error {
	q, ok, err := listQuery(c)
	if !ok {
		return err
	}

	page, err := h.customers.ListAudience(c.Context(), q)
	if err != nil {
		return writeError(c, err, "failed to list audience")
	}
	return c.JSON(page)
}

// Send handles POST /api/notifications/send requests.
func (h *NotificationHandler) Send(c *fiber.Ctx) error {
	var req model.SendNotificationRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": formatValidationError(err)})
	}

	res, err := h.service.Send(c.Context(), &req)
	if err != nil {
		return writeError(c, err, "failed to send notification")
	}

	h.logSent(c, res)
	return c.Status(fiber.StatusCreated).JSON(res)
}

// SendBySubscription handles POST /api/notifications/send-by-subscription requests.
func (h *NotificationHandler) SendBySubscription(c *fiber.Ctx) error {
	var req model.SendBySubscriptionRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": formatValidationError(err)})
	}

	res, err := h.service.SendBySubscription(c.Context(), &req)
	if err != nil {
		return writeError(c, err, "failed to send notification by subscription")
	}

	h.logSent(c, res)
	return c.Status(fiber.StatusCreated).JSON(res)
}

func (h *NotificationHandler) logSent(c *fiber.Ctx, res *model.SendResult) {
	log.Info().
		Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Str("audience", res.Audience).
		Int("recipients", res.RecipientCount).
		Bool("recorded", res.Recorded).
		Msg("notification sent")
}
