// Package jwt mints and verifies the access/refresh token pair. The two
// variants are signed with distinct secrets so a refresh token can never be
// presented where an access token is expected.
package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/apperrors"
	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/models"
)

// Claims represents the principal claim set carried by both token variants
type Claims struct {
	UserID  uuid.UUID `json:"user_id"`
	Phone   string    `json:"phone"`
	IsSuper bool      `json:"is_super"`
	jwt.RegisteredClaims
}

// TokenPair holds a freshly minted access/refresh pair
type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
	RefreshID        string
}

// GenerateTokenPair mints an access and a refresh token for the user.
// Each refresh token carries a unique JTI used for rotation tracking.
func GenerateTokenPair(user *models.User, cfg models.JWTConfig) (*TokenPair, error) {
	now := time.Now()
	accessExpiry := now.Add(time.Duration(cfg.AccessExpiration) * time.Minute)
	refreshExpiry := now.Add(time.Duration(cfg.RefreshExpiration) * time.Hour)
	refreshID := uuid.New().String()

	accessClaims := &Claims{
		UserID:  user.ID,
		Phone:   user.Phone,
		IsSuper: user.IsSuper,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(accessExpiry),
		},
	}

	refreshClaims := &Claims{
		UserID:  user.ID,
		Phone:   user.Phone,
		IsSuper: user.IsSuper,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			Issuer:    cfg.Issuer,
			ID:        refreshID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(refreshExpiry),
		},
	}

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).
		SignedString([]byte(cfg.AccessSecret))
	if err != nil {
		return nil, err
	}

	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).
		SignedString([]byte(cfg.RefreshSecret))
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		AccessExpiresAt:  accessExpiry,
		RefreshExpiresAt: refreshExpiry,
		RefreshID:        refreshID,
	}, nil
}

// ValidateAccessToken verifies an access token and returns its claims
func ValidateAccessToken(tokenString string, cfg models.JWTConfig) (*Claims, error) {
	return validate(tokenString, cfg.AccessSecret)
}

// ValidateRefreshToken verifies a refresh token and returns its claims
func ValidateRefreshToken(tokenString string, cfg models.JWTConfig) (*Claims, error) {
	return validate(tokenString, cfg.RefreshSecret)
}

func validate(tokenString, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}
