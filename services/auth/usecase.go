package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/asylbekulybeibit/sauda-pro-backend/services/auth AuthUC,RoleProvider

// AuthUC is the passwordless login usecase: one-time codes, the token pair
// lifecycle and principal resolution.
type AuthUC interface {
	// RequestCode starts passwordless login for a phone identity. While an
	// unexpired code exists no new one is minted.
	RequestCode(ctx context.Context, phone string) error

	// VerifyCode checks the one-time code, resolves or creates the account
	// and returns a fresh token pair.
	VerifyCode(ctx context.Context, req *models.VerifyCodeRequest) (*models.AuthResponse, error)

	// RefreshTokens rotates a refresh token into a fresh pair. A refresh
	// token already rotated away is rejected.
	RefreshTokens(ctx context.Context, refreshToken string) (*models.AuthResponse, error)

	// CurrentPrincipal resolves an access token into the authenticated
	// principal with its active roles.
	CurrentPrincipal(ctx context.Context, accessToken string) (*models.Principal, error)

	// UpdateProfile applies a named profile update to the account. Identity
	// and flag fields are not updatable through this path.
	UpdateProfile(ctx context.Context, userID uuid.UUID, update *models.UserUpdate) (*models.User, error)
}

// RoleProvider is the slice of the role authority the auth service needs to
// attach active roles to a principal
type RoleProvider interface {
	ActiveRoles(ctx context.Context, userID uuid.UUID) ([]models.RoleGrant, error)
}
