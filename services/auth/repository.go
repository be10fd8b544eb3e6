package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/asylbekulybeibit/sauda-pro-backend/services/auth AuthRepo

// AuthRepo persists accounts, one-time codes and the rotated-refresh-token
// denylist
type AuthRepo interface {
	// CreateOTP conditionally stores a code for the phone identity. It
	// reports false when an unexpired code already exists, in which case
	// nothing was written.
	CreateOTP(ctx context.Context, otp *models.OTP, ttl time.Duration) (bool, error)
	// GetOTP returns the live code for the phone identity, or nil
	GetOTP(ctx context.Context, phone string) (*models.OTP, error)
	// DeleteOTP consumes the code and reports whether this caller removed
	// it; a consumed code can never verify again
	DeleteOTP(ctx context.Context, phone string) (bool, error)

	// RevokeRefreshID denylists a rotated refresh token id until it would
	// have expired anyway
	RevokeRefreshID(ctx context.Context, refreshID string, ttl time.Duration) error
	// IsRefreshIDRevoked reports whether a refresh token id was rotated away
	IsRefreshIDRevoked(ctx context.Context, refreshID string) (bool, error)

	GetUserByPhone(ctx context.Context, phone string) (*models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUser(ctx context.Context, id uuid.UUID, update *models.UserUpdate) (*models.User, error)
}
