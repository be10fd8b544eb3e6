package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/apperrors"
	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/logger"
	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/models"
	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/policy"
)

// HasGrant reports whether the user holds any active grant whose role is in
// the allowed set at a scope covering the requested one. Roles are matched
// by set membership, never by numeric ordering: a manager is not a cashier.
func (u *RoleUC) HasGrant(ctx context.Context, userID uuid.UUID, isSuper bool, allowed []models.RoleLevel, scope models.Scope) (bool, error) {
	if isSuper {
		return true, nil
	}

	grants, err := u.roleRepo.GetActiveGrants(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("failed to load grants: %w", err)
	}

	for i := range grants {
		if roleAllowed(grants[i].Role, allowed) && grants[i].Covers(scope) {
			return true, nil
		}
	}

	return false, nil
}

// CreateGrant creates a grant administratively. The actor must be permitted
// by the delegation table to create the requested role, at a scope one of
// their own grants covers. The storage-level unique index remains the
// source of truth for the one-active-grant invariant.
func (u *RoleUC) CreateGrant(ctx context.Context, actorID uuid.UUID, actorSuper bool, req *models.CreateGrantRequest) (*models.RoleGrant, error) {
	if !req.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role", apperrors.ErrValidation)
	}

	scope := models.Scope{ShopID: req.ShopID, WarehouseID: req.WarehouseID}
	if err := policy.ValidateScope(req.Role, scope); err != nil {
		return nil, err
	}

	if err := u.authorizeDelegation(ctx, actorID, actorSuper, req.Role, scope); err != nil {
		return nil, err
	}

	if existing, err := u.roleRepo.FindActiveGrant(ctx, req.UserID, req.Role, scope); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, apperrors.ErrConflict
	}

	grant := &models.RoleGrant{
		UserID:      req.UserID,
		Role:        req.Role,
		ShopID:      req.ShopID,
		WarehouseID: req.WarehouseID,
	}
	if err := u.roleRepo.CreateGrant(ctx, grant); err != nil {
		return nil, err
	}

	u.log.Info("grant created",
		logger.String("grant_id", grant.ID.String()),
		logger.String("user_id", grant.UserID.String()),
		logger.String("role", string(grant.Role)))

	return grant, nil
}

// RevokeGrant deactivates a grant. Revoking an already inactive grant is a
// no-op; a revoked grant is never reactivated, a fresh one is created
// instead.
func (u *RoleUC) RevokeGrant(ctx context.Context, actorID uuid.UUID, actorSuper bool, grantID uuid.UUID) error {
	grant, err := u.roleRepo.GetGrantByID(ctx, grantID)
	if err != nil {
		return err
	}

	// super accounts bypass the delegation check entirely for revocation
	if !actorSuper {
		if err := u.authorizeDelegation(ctx, actorID, false, grant.Role, grant.Scope()); err != nil {
			return err
		}
	}

	changed, err := u.roleRepo.DeactivateGrant(ctx, grantID)
	if err != nil {
		return err
	}
	if !changed {
		u.log.Info("revoke of already inactive grant ignored",
			logger.String("grant_id", grantID.String()))
		return nil
	}

	u.log.Info("grant revoked", logger.String("grant_id", grantID.String()))
	return nil
}

// ActiveRoles returns the user's active grants
func (u *RoleUC) ActiveRoles(ctx context.Context, userID uuid.UUID) ([]models.RoleGrant, error) {
	return u.roleRepo.GetActiveGrants(ctx, userID)
}

// ListGrantsByShop lists grants scoped to a shop
func (u *RoleUC) ListGrantsByShop(ctx context.Context, shopID uuid.UUID) ([]models.RoleGrant, error) {
	return u.roleRepo.ListGrantsByShop(ctx, shopID)
}

// authorizeDelegation checks that the actor may create or revoke a grant of
// targetRole at the given scope: super accounts act as superadmin, everyone
// else needs one of their own active grants to both permit the delegation
// and cover the scope.
func (u *RoleUC) authorizeDelegation(ctx context.Context, actorID uuid.UUID, actorSuper bool, targetRole models.RoleLevel, scope models.Scope) error {
	if actorSuper {
		if !policy.CanDelegate(models.RoleSuperadmin, targetRole) {
			return apperrors.ErrForbidden
		}
		return nil
	}

	grants, err := u.roleRepo.GetActiveGrants(ctx, actorID)
	if err != nil {
		return fmt.Errorf("failed to load actor grants: %w", err)
	}

	for i := range grants {
		if policy.CanDelegate(grants[i].Role, targetRole) && grants[i].Covers(scope) {
			return nil
		}
	}

	return apperrors.ErrForbidden
}

func roleAllowed(role models.RoleLevel, allowed []models.RoleLevel) bool {
	for _, a := range allowed {
		if a == role {
			return true
		}
	}
	return false
}
