package domain

import "time"

// CredentialRecord is the full user record returned by the directory's
// internal lookup channel. The Password field only ever travels over that
// channel; it must never appear on a public-facing route.
type CredentialRecord struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"createdAt"`
}

// Identity projects the record to the token-safe identity fields.
func (r *CredentialRecord) Identity() Identity {
	return Identity{UserID: r.ID, Email: r.Email, Name: r.Name}
}
