package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/auth-service/internal/domain"
	apperrors "github.com/spec-kit/auth-service/pkg/util"
)

const identityKey = "auth_identity"

// Middleware guards protected routes: it verifies the bearer token and
// attaches the embedded identity to the request.
type Middleware struct {
	verifier *TokenVerifier
}

// NewMiddleware constructs the guard.
func NewMiddleware(verifier *TokenVerifier) *Middleware {
	return &Middleware{verifier: verifier}
}

// Handle enforces authentication for protected routes.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	claims, err := m.verifier.Verify(c.UserContext(), BearerToken(c))
	if err != nil {
		return MapTokenError(err)
	}

	identity := claims.Identity()
	c.Locals(identityKey, &identity)
	return c.Next()
}

// IdentityFromContext retrieves the authenticated identity set by Handle.
func IdentityFromContext(c *fiber.Ctx) (*domain.Identity, bool) {
	val := c.Locals(identityKey)
	if val == nil {
		return nil, false
	}
	identity, ok := val.(*domain.Identity)
	return identity, ok
}

// BearerToken extracts the token from the Authorization header. Returns the
// empty string when the header is absent or not a bearer scheme.
func BearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// MapTokenError translates verifier failures into the HTTP error taxonomy.
// Distinct 401 messages are intentional: a revoked token reports revoked, an
// expired one expired.
func MapTokenError(err error) error {
	switch {
	case errors.Is(err, ErrTokenMissing):
		return apperrors.NewUnauthorized("TOKEN_MISSING", ErrTokenMissing.Error())
	case errors.Is(err, ErrTokenMalformed):
		return apperrors.NewUnauthorized("TOKEN_INVALID", ErrTokenMalformed.Error())
	case errors.Is(err, ErrTokenRevoked):
		return apperrors.NewUnauthorized("TOKEN_REVOKED", ErrTokenRevoked.Error())
	case errors.Is(err, ErrTokenExpired):
		return apperrors.NewUnauthorized("TOKEN_EXPIRED", ErrTokenExpired.Error())
	default:
		return apperrors.NewInternalError(err)
	}
}
