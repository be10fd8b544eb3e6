package models

import (
	"github.com/google/uuid"
)

// AuthResponse represents the token pair returned after authentication.
// The refresh token is additionally set as an HTTP-only cookie by the
// handler; it is present here for clients that cannot use cookies.
type AuthResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	UserID       uuid.UUID `json:"user_id"`
	ExpiresAt    int64     `json:"expires_at"`
}

// Principal is the resolved identity of an authenticated request, consumed
// by every other module's guard layer.
type Principal struct {
	AccountID   uuid.UUID   `json:"account_id"`
	Phone       string      `json:"phone"`
	IsSuper     bool        `json:"is_super"`
	ActiveRoles []RoleGrant `json:"active_roles"`
}
