package models

import (
	"time"
)

// OTP represents a one-time code bound to a phone identity
type OTP struct {
	Phone     string    `json:"phone"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// OTPNotificationEvent is published for out-of-band code delivery (SMS etc.)
type OTPNotificationEvent struct {
	Phone     string    `json:"phone"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
	RequestID string    `json:"request_id,omitempty"`
}

// RequestCodeRequest represents a request to start passwordless login
type RequestCodeRequest struct {
	Phone string `json:"phone" validate:"required"`
}

// VerifyCodeRequest represents a request to verify a one-time code
type VerifyCodeRequest struct {
	Phone    string `json:"phone" validate:"required"`
	Code     string `json:"code" validate:"required"`
	FullName string `json:"full_name,omitempty"`
}

// RefreshRequest carries a refresh token when the client cannot use cookies
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}
