package roles

import (
	"context"

	"github.com/google/uuid"

	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/asylbekulybeibit/sauda-pro-backend/services/roles RoleRepo

// RoleRepo persists role grants. The partial unique index on
// (user_id, role, shop_id, warehouse_id) WHERE is_active is the source of
// truth for the one-active-grant invariant; application-level lookups are
// only an optimization.
type RoleRepo interface {
	GetActiveGrants(ctx context.Context, userID uuid.UUID) ([]models.RoleGrant, error)
	GetGrantByID(ctx context.Context, id uuid.UUID) (*models.RoleGrant, error)
	// CreateGrant inserts an active grant; a duplicate active tuple
	// surfaces as apperrors.ErrConflict
	CreateGrant(ctx context.Context, grant *models.RoleGrant) error
	// DeactivateGrant stamps the grant inactive; reports whether a row
	// actually changed
	DeactivateGrant(ctx context.Context, id uuid.UUID) (bool, error)
	// FindActiveGrant returns the active grant for the exact tuple, or nil
	FindActiveGrant(ctx context.Context, userID uuid.UUID, role models.RoleLevel, scope models.Scope) (*models.RoleGrant, error)
	ListGrantsByShop(ctx context.Context, shopID uuid.UUID) ([]models.RoleGrant, error)
}
