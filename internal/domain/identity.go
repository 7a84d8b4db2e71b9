package domain

// Identity is the verified caller identity embedded in a session token.
// It is copied into the token at issuance and never re-fetched from the
// user directory afterwards.
type Identity struct {
	UserID string
	Email  string
	Name   string
}
