package auth

import "time"

// TokenRequest asks for a token bound to one device installation.
type TokenRequest struct {
	DeviceID string `json:"device_id" binding:"required,min=8,max=128"`
}

// TokenResponse is returned by POST /auth/token.
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}
