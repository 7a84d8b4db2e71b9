package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/auth-service/internal/auth"
	"github.com/spec-kit/auth-service/internal/config"
	"github.com/spec-kit/auth-service/internal/domain"
)

type mockDirectory struct {
	mock.Mock
}

func (m *mockDirectory) LookupByEmail(ctx context.Context, email string) (*domain.CredentialRecord, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CredentialRecord), args.Error(1)
}

func (m *mockDirectory) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func newTestService(t *testing.T) (*SessionService, *mockDirectory, *auth.MemoryRegistry) {
	t.Helper()
	dir := new(mockDirectory)
	registry := auth.NewMemoryRegistry()
	svc := NewSessionService(config.AuthConfig{JWTSecret: "test-secret", TokenTTLHours: 24}, dir, registry)
	return svc, dir, registry
}

func TestLoginIssuesValidatableToken(t *testing.T) {
	svc, dir, _ := newTestService(t)
	dir.On("LookupByEmail", mock.Anything, "a@x.com").Return(&domain.CredentialRecord{
		ID: "u-1", Name: "Alice", Email: "a@x.com", Password: "p1",
	}, nil)

	identity, token, expiresAt, err := svc.Login(context.Background(), "a@x.com", "p1")
	require.NoError(t, err)
	assert.Equal(t, "u-1", identity.UserID)
	assert.False(t, expiresAt.IsZero())

	claims, err := svc.Validate(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, identity, claims.Identity())
}

func TestLogoutRevokesToken(t *testing.T) {
	svc, dir, _ := newTestService(t)
	dir.On("LookupByEmail", mock.Anything, "a@x.com").Return(&domain.CredentialRecord{
		ID: "u-1", Name: "Alice", Email: "a@x.com", Password: "p1",
	}, nil)

	_, token, _, err := svc.Login(context.Background(), "a@x.com", "p1")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), token))

	_, err = svc.Validate(context.Background(), token)
	assert.ErrorIs(t, err, auth.ErrTokenRevoked)

	// Logging out twice changes nothing.
	require.NoError(t, svc.Logout(context.Background(), token))
	_, err = svc.Validate(context.Background(), token)
	assert.ErrorIs(t, err, auth.ErrTokenRevoked)
}

func TestLogoutAcceptsUnparseableToken(t *testing.T) {
	svc, _, registry := newTestService(t)

	require.NoError(t, svc.Logout(context.Background(), "never-issued"))

	revoked, err := registry.IsRevoked(context.Background(), "never-issued")
	require.NoError(t, err)
	assert.True(t, revoked)
}
