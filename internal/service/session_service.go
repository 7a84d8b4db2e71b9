package service

import (
	"context"
	"time"

	"github.com/spec-kit/auth-service/internal/auth"
	"github.com/spec-kit/auth-service/internal/config"
	"github.com/spec-kit/auth-service/internal/directory"
	"github.com/spec-kit/auth-service/internal/domain"
)

// SessionService coordinates the token lifecycle: login mints tokens,
// validate checks them, logout revokes them.
type SessionService struct {
	credentials *auth.CredentialVerifier
	tokens      *auth.TokenManager
	verifier    *auth.TokenVerifier
	registry    auth.RevocationRegistry
}

// NewSessionService builds the service.
func NewSessionService(cfg config.AuthConfig, dir directory.Client, registry auth.RevocationRegistry) *SessionService {
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL())
	return &SessionService{
		credentials: auth.NewCredentialVerifier(dir),
		tokens:      tokens,
		verifier:    auth.NewTokenVerifier(tokens, registry),
		registry:    registry,
	}
}

// Login verifies the credentials against the directory and issues a signed
// session token for the resulting identity.
func (s *SessionService) Login(ctx context.Context, email, password string) (domain.Identity, string, time.Time, error) {
	identity, err := s.credentials.Verify(ctx, email, password)
	if err != nil {
		return domain.Identity{}, "", time.Time{}, err
	}

	token, expiresAt, err := s.tokens.Issue(identity)
	if err != nil {
		return domain.Identity{}, "", time.Time{}, err
	}
	return identity, token, expiresAt, nil
}

// Validate checks the presented token and returns its claims.
func (s *SessionService) Validate(ctx context.Context, token string) (*auth.Claims, error) {
	return s.verifier.Verify(ctx, token)
}

// Logout puts the presented token in the revocation registry. The token is
// not validated first: any presented string is accepted, matching the
// guarantee that a logged-out token can never validate again. The registry
// entry carries the token's own expiry when it can be extracted, otherwise a
// full token lifetime from now, so sweeping never drops a live revocation.
func (s *SessionService) Logout(ctx context.Context, token string) error {
	expiresAt := time.Now().Add(s.tokens.TTL())
	if claims, err := s.tokens.Parse(token); err == nil && claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	return s.registry.Revoke(ctx, token, expiresAt)
}

// TokenVerifier exposes the underlying verifier for middleware usage.
func (s *SessionService) TokenVerifier() *auth.TokenVerifier {
	return s.verifier
}
