package dto

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginUser is the public user shape returned on login.
type LoginUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Message string    `json:"message"`
	Token   string    `json:"token"`
	User    LoginUser `json:"user"`
}

// TokenUser is the identity shape embedded in validate/me responses.
type TokenUser struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// ValidateResponse is returned when a presented token is valid.
type ValidateResponse struct {
	Valid bool      `json:"valid"`
	User  TokenUser `json:"user"`
}

// MeResponse is returned from the guarded identity endpoint.
type MeResponse struct {
	User TokenUser `json:"user"`
}

// MessageResponse carries a bare confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}
