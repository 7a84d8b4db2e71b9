package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/auth-service/internal/api/dto"
	"github.com/spec-kit/auth-service/internal/auth"
	"github.com/spec-kit/auth-service/internal/service"
	apperrors "github.com/spec-kit/auth-service/pkg/util"
)

// AuthHandler exposes the session endpoints. It is the only layer that maps
// failures to HTTP statuses and messages.
type AuthHandler struct {
	sessions *service.SessionService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(sessions *service.SessionService) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}

	identity, token, _, err := h.sessions.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingFields):
			return apperrors.NewBadRequest(auth.ErrMissingFields.Error())
		case errors.Is(err, auth.ErrInvalidCredentials):
			return apperrors.NewInvalidCredentials()
		case errors.Is(err, auth.ErrDirectoryUnavailable):
			return apperrors.NewUpstreamUnavailable(err)
		default:
			return apperrors.NewInternalError(err)
		}
	}

	return c.JSON(dto.LoginResponse{
		Message: "Login successful",
		Token:   token,
		User: dto.LoginUser{
			ID:    identity.UserID,
			Name:  identity.Name,
			Email: identity.Email,
		},
	})
}

// Validate handles GET /auth/validate.
func (h *AuthHandler) Validate(c *fiber.Ctx) error {
	claims, err := h.sessions.Validate(c.UserContext(), auth.BearerToken(c))
	if err != nil {
		return auth.MapTokenError(err)
	}

	return c.JSON(dto.ValidateResponse{
		Valid: true,
		User: dto.TokenUser{
			UserID: claims.UserID,
			Email:  claims.Email,
			Name:   claims.Name,
		},
	})
}

// Logout handles POST /auth/logout. The token is required but deliberately
// not validated before revocation.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token := auth.BearerToken(c)
	if token == "" {
		return apperrors.NewBadRequest("no token provided")
	}

	if err := h.sessions.Logout(c.UserContext(), token); err != nil {
		return apperrors.NewInternalError(err)
	}
	return c.JSON(dto.MessageResponse{Message: "Logout successful"})
}

// Me handles GET /auth/me. The guard has already verified the token and
// attached the identity.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("TOKEN_MISSING", "no token provided")
	}

	return c.JSON(dto.MeResponse{
		User: dto.TokenUser{
			UserID: identity.UserID,
			Email:  identity.Email,
			Name:   identity.Name,
		},
	})
}
