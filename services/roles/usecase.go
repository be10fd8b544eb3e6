package roles

import (
	"context"

	"github.com/google/uuid"

	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/asylbekulybeibit/sauda-pro-backend/services/roles RoleUC

// RoleUC is the role authority: the single place the system answers
// "does this principal hold a sufficient grant for this scope".
type RoleUC interface {
	// HasGrant reports whether the user holds any active grant whose role
	// is in the allowed set at a scope covering the requested one. Super
	// accounts pass unconditionally.
	HasGrant(ctx context.Context, userID uuid.UUID, isSuper bool, allowed []models.RoleLevel, scope models.Scope) (bool, error)

	// CreateGrant creates a grant administratively, honoring the delegation
	// table and the active-grant uniqueness invariant.
	CreateGrant(ctx context.Context, actorID uuid.UUID, actorSuper bool, req *models.CreateGrantRequest) (*models.RoleGrant, error)

	// RevokeGrant deactivates a grant. Deactivation is permanent; revoking
	// an already inactive grant is a no-op.
	RevokeGrant(ctx context.Context, actorID uuid.UUID, actorSuper bool, grantID uuid.UUID) error

	// ActiveRoles returns the user's active grants
	ActiveRoles(ctx context.Context, userID uuid.UUID) ([]models.RoleGrant, error)

	// ListGrantsByShop lists grants scoped to a shop, newest first
	ListGrantsByShop(ctx context.Context, shopID uuid.UUID) ([]models.RoleGrant, error)
}
