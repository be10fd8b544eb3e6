package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/apperrors"
	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/models"
)

const pgUniqueViolation = "23505"

// GetActiveGrants retrieves all active grants held by a user
func (r *RoleRepo) GetActiveGrants(ctx context.Context, userID uuid.UUID) ([]models.RoleGrant, error) {
	query := `
		SELECT id, user_id, role, shop_id, warehouse_id, is_active, deactivated_at, created_at
		FROM role_grants
		WHERE user_id = $1 AND is_active = true
		ORDER BY created_at DESC
	`

	grants := []models.RoleGrant{}
	if err := r.db.SelectContext(ctx, &grants, query, userID); err != nil {
		return nil, fmt.Errorf("failed to get active grants: %w", err)
	}

	return grants, nil
}

// GetGrantByID retrieves a grant by id
func (r *RoleRepo) GetGrantByID(ctx context.Context, id uuid.UUID) (*models.RoleGrant, error) {
	query := `
		SELECT id, user_id, role, shop_id, warehouse_id, is_active, deactivated_at, created_at
		FROM role_grants
		WHERE id = $1
	`

	var grant models.RoleGrant
	if err := r.db.GetContext(ctx, &grant, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get grant: %w", err)
	}

	return &grant, nil
}

// CreateGrant inserts an active grant. The partial unique index
// uq_role_grants_active on (user_id, role, shop_id, warehouse_id) WHERE
// is_active enforces the one-active-grant invariant; its violation is
// translated to the domain conflict error.
func (r *RoleRepo) CreateGrant(ctx context.Context, grant *models.RoleGrant) error {
	grant.ID = uuid.New()
	grant.IsActive = true
	grant.CreatedAt = time.Now()

	query := `
		INSERT INTO role_grants (id, user_id, role, shop_id, warehouse_id, is_active, created_at)
		VALUES (:id, :user_id, :role, :shop_id, :warehouse_id, :is_active, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, grant); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperrors.ErrConflict
		}
		return fmt.Errorf("failed to insert grant: %w", err)
	}

	return nil
}

// DeactivateGrant stamps a grant inactive. Rows already inactive are left
// untouched, so the grant can never be resurrected.
func (r *RoleRepo) DeactivateGrant(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE role_grants
		SET is_active = false, deactivated_at = $2
		WHERE id = $1 AND is_active = true
	`

	res, err := r.db.ExecContext(ctx, query, id, time.Now())
	if err != nil {
		return false, fmt.Errorf("failed to deactivate grant: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected > 0, nil
}

// FindActiveGrant returns the active grant for the exact
// (user, role, scope) tuple, or nil when none exists
func (r *RoleRepo) FindActiveGrant(ctx context.Context, userID uuid.UUID, role models.RoleLevel, scope models.Scope) (*models.RoleGrant, error) {
	query := `
		SELECT id, user_id, role, shop_id, warehouse_id, is_active, deactivated_at, created_at
		FROM role_grants
		WHERE user_id = $1 AND role = $2
		  AND shop_id IS NOT DISTINCT FROM $3
		  AND warehouse_id IS NOT DISTINCT FROM $4
		  AND is_active = true
	`

	var grant models.RoleGrant
	err := r.db.GetContext(ctx, &grant, query, userID, role, scope.ShopID, scope.WarehouseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find active grant: %w", err)
	}

	return &grant, nil
}

// ListGrantsByShop lists all grants scoped to a shop, newest first
func (r *RoleRepo) ListGrantsByShop(ctx context.Context, shopID uuid.UUID) ([]models.RoleGrant, error) {
	query := `
		SELECT id, user_id, role, shop_id, warehouse_id, is_active, deactivated_at, created_at
		FROM role_grants
		WHERE shop_id = $1
		ORDER BY created_at DESC
	`

	grants := []models.RoleGrant{}
	if err := r.db.SelectContext(ctx, &grants, query, shopID); err != nil {
		return nil, fmt.Errorf("failed to list grants: %w", err)
	}

	return grants, nil
}
