package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/fairyhunter13/subscription-admin/internal/model"
	"github.com/fairyhunter13/subscription-admin/internal/upstream"
)

// TokenSetter stores the bearer credential used for later remote calls.
type TokenSetter interface {
	SetToken(token string)
}

// AuthService logs the administrator into the remote API.
type AuthService struct {
	upstream UpstreamInterface
	tokens   TokenSetter
}

// NewAuthService creates a new AuthService.
func NewAuthService(upstream UpstreamInterface, tokens TokenSetter) *AuthService {
	return &AuthService{upstream: upstream, tokens: tokens}
}

// Login authenticates against the remote API and keeps the returned token for
// every subsequent call.
// Returns ErrInvalidCredentials if the remote API rejects the email or password.
func (s *AuthService) Login(ctx context.Context, req *model.LoginRequest) (*model.AdminUser, error) {
	if req == nil {
		return nil, ErrInvalidRequest
	}

	res, err := s.upstream.Login(ctx, req)
	if err != nil {
		if upstream.IsStatus(err, http.StatusUnauthorized) {
			return nil, ErrInvalidCredentials
		}
		return nil, mutationError("login", err)
	}
	if res.Token == "" {
		return nil, errors.New("login: response has no token")
	}

	s.tokens.SetToken(res.Token)
	log.Info().Str("admin", res.User.Email).Msg("administrator logged in")
	return &res.User, nil
}
