package auth

import "time"

// UserResponse represents user information in responses
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuthResponse represents the authentication response with the access token
type AuthResponse struct {
	AccessToken string        `json:"access_token"`
	ExpiresIn   int           `json:"expires_in"` // seconds
	TokenType   string        `json:"token_type"` // "Bearer"
	User        *UserResponse `json:"user"`
}
