package models

import "time"

// TokenResponse is returned by register, login and refresh.
type TokenResponse struct {
	AccessToken  string    `json:"access_token"`
	TokenType    string    `json:"token_type"`
	ExpiresIn    int       `json:"expires_in"`
	RefreshToken string    `json:"refresh_token"`
	UserID       string    `json:"user_id"`
	Role         string    `json:"role"`
	IssuedAt     time.Time `json:"issued_at"`
}
