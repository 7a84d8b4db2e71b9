package auth

import (
	"context"
	"sync"
	"time"
)

// RevocationRegistry tracks tokens that must no longer be accepted,
// independent of their natural expiry. Revoke is idempotent; IsRevoked is a
// pure lookup. Both must be safe under concurrent use.
type RevocationRegistry interface {
	Revoke(ctx context.Context, token string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// MemoryRegistry is the single-instance, in-process registry. Entries are
// keyed by the raw token string and record the token's natural expiry so
// Sweep can drop entries the expiry check already rejects.
type MemoryRegistry struct {
	mu      sync.RWMutex
	entries map[string]time.Time
}

// NewMemoryRegistry creates an empty registry.
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{entries: make(map[string]time.Time)}
}

// Revoke adds the token to the registry. Revoking an already revoked token
// keeps the earlier entry.
func (r *MemoryRegistry) Revoke(_ context.Context, token string, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[token]; !ok {
		r.entries[token] = expiresAt
	}
	return nil
}

// IsRevoked reports registry membership.
func (r *MemoryRegistry) IsRevoked(_ context.Context, token string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[token]
	return ok, nil
}

// Sweep removes entries whose recorded expiry has passed and returns how
// many were dropped. Safe because an expired token is rejected by the expiry
// check regardless of registry membership.
func (r *MemoryRegistry) Sweep(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for token, expiresAt := range r.entries {
		if now.After(expiresAt) {
			delete(r.entries, token)
			removed++
		}
	}
	return removed
}

// Len reports the current number of revoked entries.
func (r *MemoryRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
