package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/constants"
	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/models"
)

// CreateOTP conditionally stores a one-time code. The SETNX write is the
// serialization point: concurrent requests for the same phone identity can
// never create two simultaneously valid codes. Expiry is handled by the
// key TTL, so stale codes are purged without any sweeper.
func (r *AuthRepo) CreateOTP(ctx context.Context, otp *models.OTP, ttl time.Duration) (bool, error) {
	key := fmt.Sprintf(constants.KeyUserOTP, otp.Phone)

	data, err := json.Marshal(otp)
	if err != nil {
		return false, fmt.Errorf("failed to marshal OTP: %w", err)
	}

	stored, err := r.redisClient.SetNX(ctx, key, data, ttl)
	if err != nil {
		return false, fmt.Errorf("failed to store OTP in Redis: %w", err)
	}

	return stored, nil
}

// GetOTP returns the live code for a phone identity, or nil when none exists
func (r *AuthRepo) GetOTP(ctx context.Context, phone string) (*models.OTP, error) {
	key := fmt.Sprintf(constants.KeyUserOTP, phone)

	data, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get OTP from Redis: %w", err)
	}

	var otp models.OTP
	if err := json.Unmarshal([]byte(data), &otp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal OTP: %w", err)
	}

	return &otp, nil
}

// DeleteOTP consumes the code for a phone identity. The DEL count is the
// serialization point for concurrent verifications: only the caller that
// actually removed the key gets true, everyone else lost the race.
func (r *AuthRepo) DeleteOTP(ctx context.Context, phone string) (bool, error) {
	key := fmt.Sprintf(constants.KeyUserOTP, phone)

	removed, err := r.redisClient.Delete(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to delete OTP from Redis: %w", err)
	}

	return removed > 0, nil
}

// RevokeRefreshID denylists a rotated refresh token id. The entry expires
// together with the token it blocks.
func (r *AuthRepo) RevokeRefreshID(ctx context.Context, refreshID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	key := fmt.Sprintf(constants.KeyRevokedRefresh, refreshID)

	if err := r.redisClient.Set(ctx, key, "1", ttl); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return nil
}

// IsRefreshIDRevoked reports whether a refresh token id was rotated away
func (r *AuthRepo) IsRefreshIDRevoked(ctx context.Context, refreshID string) (bool, error) {
	key := fmt.Sprintf(constants.KeyRevokedRefresh, refreshID)

	exists, err := r.redisClient.Exists(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to check refresh token revocation: %w", err)
	}

	return exists, nil
}
