package handler

import (
	"context"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairyhunter13/subscription-admin/internal/model"
	"github.com/fairyhunter13/subscription-admin/internal/service"
	"github.com/fairyhunter13/subscription-admin/internal/upstream"
	"github.com/fairyhunter13/subscription-admin/internal/validator"
)

func setupAuthApp(svc AuthServiceInterface) *fiber.App {
	app := fiber.New()
	h := NewAuthHandler(svc, validator.New())
	app.Post("/api/auth/login", h.Login)
	return app
}

func TestAuthHandler_Login_Success(t *testing.T) {
	app := setupAuthApp(&mockAuthService{
		loginFn: func(ctx context.Context, req *model.LoginRequest) (*model.AdminUser, error) {
			return &model.AdminUser{ID: "a1", Name: "Admin", Email: req.Email}, nil
		},
	})

	resp, err := postJSON(app, "/api/auth/login", `{"email":"admin@example.com","password":"pw"}`)
	require.NoError(t, err)
	body := decodeBody(t, resp)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	user := body["user"].(map[string]any)
	assert.Equal(t, "admin@example.com", user["email"])
	assert.NotContains(t, body, "token")
}

func TestAuthHandler_Login_InvalidEmail(t *testing.T) {
	app := setupAuthApp(&mockAuthService{})

	resp, err := postJSON(app, "/api/auth/login", `{"email":"not-an-email","password":"pw"}`)
	require.NoError(t, err)
	body := decodeBody(t, resp)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "invalid request: email must be a valid email address", body["error"])
}

func TestAuthHandler_Login_RejectedCredentialsKeepToken(t *testing.T) {
	tokens := upstream.NewTokenStore("existing")
	app := setupAuthApp(service.NewAuthService(&fakeUpstream{}, tokens))

	resp, err := postJSON(app, "/api/auth/login", `{"email":"admin@example.com","password":"wrong"}`)
	require.NoError(t, err)
	body := decodeBody(t, resp)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "invalid email or password", body["error"])
	assert.Equal(t, "existing", tokens.Token())
}
