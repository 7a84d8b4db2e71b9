package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/spec-kit/auth-service/internal/directory"
	"github.com/spec-kit/auth-service/internal/domain"
)

// ErrMissingFields indicates the caller omitted email or password. This is a
// request error, not an authentication failure.
var ErrMissingFields = errors.New("email and password are required")

// ErrInvalidCredentials covers both an unknown email and a wrong password,
// so callers cannot probe which emails are registered.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrDirectoryUnavailable indicates the lookup itself failed.
var ErrDirectoryUnavailable = errors.New("user directory unavailable")

// CredentialVerifier checks a claimed email and password against the user
// directory and produces a verified identity. Read-only; no retries, since a
// failed lookup surfaces as a server-side error instead.
type CredentialVerifier struct {
	directory directory.Client
}

// NewCredentialVerifier builds the verifier.
func NewCredentialVerifier(dir directory.Client) *CredentialVerifier {
	return &CredentialVerifier{directory: dir}
}

// Verify resolves the email through the directory's internal channel and
// compares the presented password against the stored one. The directory
// stores secrets in the clear, so this is a direct comparison; that weakness
// belongs to the directory's data model, not this service.
func (v *CredentialVerifier) Verify(ctx context.Context, email, password string) (domain.Identity, error) {
	if email == "" || password == "" {
		return domain.Identity{}, ErrMissingFields
	}

	record, err := v.directory.LookupByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			return domain.Identity{}, ErrInvalidCredentials
		}
		return domain.Identity{}, fmt.Errorf("%w: %v", ErrDirectoryUnavailable, err)
	}

	if record.Password != password {
		return domain.Identity{}, ErrInvalidCredentials
	}
	return record.Identity(), nil
}
