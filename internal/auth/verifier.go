package auth

import (
	"context"
	"errors"
	"time"
)

// Token failure kinds. Each verification ends in exactly one of these or in
// a returned identity.
var (
	ErrTokenMissing   = errors.New("no token provided")
	ErrTokenMalformed = errors.New("invalid token")
	ErrTokenRevoked   = errors.New("token has been revoked")
	ErrTokenExpired   = errors.New("token has expired")
)

// TokenVerifier checks a presented token's signature, revocation status and
// expiry, in that order.
type TokenVerifier struct {
	tokens   *TokenManager
	registry RevocationRegistry
	now      func() time.Time
}

// NewTokenVerifier builds the verifier.
func NewTokenVerifier(tokens *TokenManager, registry RevocationRegistry) *TokenVerifier {
	return &TokenVerifier{tokens: tokens, registry: registry, now: time.Now}
}

// Verify runs the checks and returns the embedded claims when the token is
// valid. The order is fixed: a malformed token has no trustworthy identifier
// to look up, and a logged-out user is told "revoked" even once the token
// has also expired.
func (v *TokenVerifier) Verify(ctx context.Context, tokenStr string) (*Claims, error) {
	if tokenStr == "" {
		return nil, ErrTokenMissing
	}

	claims, err := v.tokens.Parse(tokenStr)
	if err != nil {
		return nil, ErrTokenMalformed
	}

	revoked, err := v.registry.IsRevoked(ctx, tokenStr)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, ErrTokenRevoked
	}

	if claims.ExpiresAt != nil && !v.now().Before(claims.ExpiresAt.Time) {
		return nil, ErrTokenExpired
	}

	return claims, nil
}
