package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/fairyhunter13/subscription-admin/internal/upstream"
)

// Pinger is an interface for health check ping operations.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles health check requests.
type HealthHandler struct {
	pool        Pinger
	credentials upstream.CredentialSource
}

// NewHealthHandler creates a new HealthHandler with the given database pool and
// the credential source of the remote API client.
func NewHealthHandler(pool Pinger, credentials upstream.CredentialSource) *HealthHandler {
	return &HealthHandler{pool: pool, credentials: credentials}
}

// Check performs a health check by pinging the database.
// Returns 200 OK with {"status": "healthy", "authenticated": bool} when the database is reachable.
// Returns 503 Service Unavailable with {"status": "unhealthy", "error": "..."} when it is not.
// A missing upstream credential is reported but does not make the service unhealthy.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	if err := h.pool.Ping(c.Context()); err != nil {
		log.Error().Err(err).Msg("health check failed: database unreachable")
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unhealthy",
			"error":  "database connection failed",
		})
	}
	return c.JSON(fiber.Map{
		"status":        "healthy",
		"authenticated": h.credentials.Token() != "",
	})
}
