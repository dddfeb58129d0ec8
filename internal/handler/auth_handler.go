package handler

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/fairyhunter13/subscription-admin/internal/model"
)

// AuthServiceInterface defines the interface for administrator login.
type AuthServiceInterface interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.AdminUser, error)
}

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	service   AuthServiceInterface
	validator *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc AuthServiceInterface, v *validator.Validate) *AuthHandler {
	return &AuthHandler{service: svc, validator: v}
}

// Login handles POST /api/auth/login requests. The token stays server side;
// only the administrator profile is returned.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req model.LoginRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": formatValidationError(err)})
	}

	user, err := h.service.Login(c.Context(), &req)
	if err != nil {
		return writeError(c, err, "failed to log in")
	}
	return c.JSON(fiber.Map{"user": user})
}
