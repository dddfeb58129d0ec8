package handler

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/fairyhunter13/subscription-admin/internal/model"
)

// PackageServiceInterface defines the interface for subscription package logic.
type PackageServiceInterface interface {
	Plans(ctx context.Context) (*model.PlansResponse, error)
	Update(ctx context.Context, id string, req *model.UpdatePackageRequest) (*model.Package, error)
}

// PackageHandler handles HTTP requests for the subscription page.
type PackageHandler struct {
	service   PackageServiceInterface
	validator *validator.Validate
}

// NewPackageHandler creates a new PackageHandler.
func NewPackageHandler(svc PackageServiceInterface, v *validator.Validate) *PackageHandler {
	return &PackageHandler{service: svc, validator: v}
}

// Plans handles GET /api/packages requests.
func (h *PackageHandler) Plans(c *fiber.Ctx) error {
	plans, err := h.service.Plans(c.Context())
	if err != nil {
		return writeError(c, err, "failed to list packages")
	}
	return c.JSON(plans)
}

// Update handles PUT /api/packages/:id requests.
func (h *PackageHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request: id is required",
		})
	}

	var req model.UpdatePackageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": formatValidationError(err)})
	}

	pkg, err := h.service.Update(c.Context(), id, &req)
	if err != nil {
		return writeError(c, err, "failed to update package")
	}
	return c.JSON(pkg)
}
