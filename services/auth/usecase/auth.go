package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"

	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/apperrors"
	jwtpkg "github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/jwt"
	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/logger"
	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/models"
	"github.com/asylbekulybeibit/sauda-pro-backend/internal/utils"
)

const (
	otpCodeMin = 1111
	otpCodeMax = 9999
)

// RequestCode starts passwordless login for a phone identity. While an
// unexpired code exists the request is a no-op: the existing code stays
// valid and no second notification goes out, which doubles as the
// anti-spam and anti-enumeration control.
func (u *AuthUC) RequestCode(ctx context.Context, phone string) error {
	normalized := utils.NormalizePhone(phone)
	if !utils.ValidatePhone(normalized) {
		return fmt.Errorf("%w: malformed phone number", apperrors.ErrValidation)
	}

	code, err := generateCode()
	if err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}

	ttl := time.Duration(u.cfg.OTP.TTL) * time.Second
	now := time.Now()
	otp := &models.OTP{
		Phone:     normalized,
		Code:      code,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	stored, err := u.authRepo.CreateOTP(ctx, otp, ttl)
	if err != nil {
		return fmt.Errorf("failed to create OTP: %w", err)
	}
	if !stored {
		u.log.Info("OTP request while code still valid, keeping existing code",
			logger.String("phone", normalized))
		return nil
	}

	event := &models.OTPNotificationEvent{
		Phone:     normalized,
		Code:      code,
		ExpiresAt: otp.ExpiresAt,
	}
	if err := u.authGW.PublishOTPNotification(ctx, event); err != nil {
		// the code was never delivered; drop it so the next request is not
		// a no-op until the TTL runs out
		if _, delErr := u.authRepo.DeleteOTP(ctx, normalized); delErr != nil {
			u.log.Error("failed to drop undelivered OTP",
				logger.String("phone", normalized),
				logger.Err(delErr))
		}
		return fmt.Errorf("failed to publish OTP notification: %w", err)
	}

	u.log.Info("OTP issued", logger.String("phone", normalized))
	return nil
}

// VerifyCode checks the one-time code for the phone identity, consumes it,
// resolves or creates the account and returns a fresh token pair. Replay
// with an already consumed code fails.
func (u *AuthUC) VerifyCode(ctx context.Context, req *models.VerifyCodeRequest) (*models.AuthResponse, error) {
	normalized := utils.NormalizePhone(req.Phone)
	if !utils.ValidatePhone(normalized) {
		return nil, fmt.Errorf("%w: malformed phone number", apperrors.ErrValidation)
	}

	otp, err := u.authRepo.GetOTP(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to get OTP: %w", err)
	}
	if otp == nil || otp.Code != req.Code {
		return nil, apperrors.ErrInvalidCredentials
	}

	consumed, err := u.authRepo.DeleteOTP(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to consume OTP: %w", err)
	}
	if !consumed {
		// a concurrent verification consumed the code first
		return nil, apperrors.ErrInvalidCredentials
	}

	user, err := u.authRepo.GetUserByPhone(ctx, normalized)
	switch {
	case err == nil:
		if !user.IsActive {
			return nil, apperrors.ErrInvalidCredentials
		}
	case errors.Is(err, apperrors.ErrNotFound):
		user = &models.User{
			Phone:    normalized,
			FullName: req.FullName,
			IsActive: true,
		}
		if err := u.authRepo.CreateUser(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		u.log.Info("account created on first verification",
			logger.String("phone", normalized),
			logger.String("user_id", user.ID.String()))
	default:
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}

	return u.issueTokens(user)
}

// RefreshTokens rotates a refresh token into a fresh pair. The old token's
// id is denylisted for its remaining lifetime, so a refresh token already
// rotated away is rejected.
func (u *AuthUC) RefreshTokens(ctx context.Context, refreshToken string) (*models.AuthResponse, error) {
	claims, err := jwtpkg.ValidateRefreshToken(refreshToken, u.cfg.JWT)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	revoked, err := u.authRepo.IsRefreshIDRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check refresh token: %w", err)
	}
	if revoked {
		return nil, apperrors.ErrInvalidToken
	}

	user, err := u.authRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}
	if !user.IsActive {
		return nil, apperrors.ErrInvalidToken
	}

	remaining := time.Until(claims.ExpiresAt.Time)
	if err := u.authRepo.RevokeRefreshID(ctx, claims.ID, remaining); err != nil {
		return nil, fmt.Errorf("failed to rotate refresh token: %w", err)
	}

	return u.issueTokens(user)
}

// CurrentPrincipal resolves an access token into the authenticated
// principal together with its active roles. Token failures never reveal
// whether the subject exists.
func (u *AuthUC) CurrentPrincipal(ctx context.Context, accessToken string) (*models.Principal, error) {
	claims, err := jwtpkg.ValidateAccessToken(accessToken, u.cfg.JWT)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	user, err := u.authRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}
	if !user.IsActive {
		return nil, apperrors.ErrInvalidToken
	}

	grants, err := u.roles.ActiveRoles(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load active roles: %w", err)
	}

	return &models.Principal{
		AccountID:   user.ID,
		Phone:       user.Phone,
		IsSuper:     user.IsSuper,
		ActiveRoles: grants,
	}, nil
}

// UpdateProfile applies a named profile update to the account
func (u *AuthUC) UpdateProfile(ctx context.Context, userID uuid.UUID, update *models.UserUpdate) (*models.User, error) {
	if update.FullName == nil {
		return nil, fmt.Errorf("%w: nothing to update", apperrors.ErrValidation)
	}

	user, err := u.authRepo.UpdateUser(ctx, userID, update)
	if err != nil {
		return nil, err
	}

	u.log.Info("profile updated", logger.String("user_id", userID.String()))
	return user, nil
}

func (u *AuthUC) issueTokens(user *models.User) (*models.AuthResponse, error) {
	pair, err := jwtpkg.GenerateTokenPair(user, u.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &models.AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		UserID:       user.ID,
		ExpiresAt:    pair.AccessExpiresAt.Unix(),
	}, nil
}

// generateCode picks a 4-digit code uniformly from [1111, 9999]
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpCodeMax-otpCodeMin+1))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%04d", otpCodeMin+n.Int64()), nil
}
