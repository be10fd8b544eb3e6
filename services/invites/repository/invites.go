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

// CreateInvite inserts a pending invite. The partial unique index
// uq_invites_pending on (phone, role, shop_id, warehouse_id) WHERE
// status = 'pending' is the source of truth for the one-pending-invite
// invariant.
func (r *InviteRepo) CreateInvite(ctx context.Context, invite *models.Invite) error {
	invite.ID = uuid.New()
	invite.Status = models.InviteStatusPending
	now := time.Now()
	invite.CreatedAt = now
	invite.UpdatedAt = now

	query := `
		INSERT INTO invites (id, phone, role, shop_id, warehouse_id, status, created_by, created_at, updated_at)
		VALUES (:id, :phone, :role, :shop_id, :warehouse_id, :status, :created_by, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, invite); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperrors.ErrConflict
		}
		return fmt.Errorf("failed to insert invite: %w", err)
	}

	return nil
}

// GetInviteByID retrieves an invite by id
func (r *InviteRepo) GetInviteByID(ctx context.Context, id uuid.UUID) (*models.Invite, error) {
	query := `
		SELECT id, phone, role, shop_id, warehouse_id, status, created_by, invited_user, created_at, updated_at
		FROM invites
		WHERE id = $1
	`

	var invite models.Invite
	if err := r.db.GetContext(ctx, &invite, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invite: %w", err)
	}

	return &invite, nil
}

// TransitionStatus conditionally moves an invite between statuses. The
// status predicate in the WHERE clause makes the transition race-safe.
func (r *InviteRepo) TransitionStatus(ctx context.Context, id uuid.UUID, from, to models.InviteStatus) (bool, error) {
	query := `
		UPDATE invites
		SET status = $3, updated_at = $4
		WHERE id = $1 AND status = $2
	`

	res, err := r.db.ExecContext(ctx, query, id, from, to, time.Now())
	if err != nil {
		return false, fmt.Errorf("failed to transition invite: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected > 0, nil
}

// AcceptInvite flips the pending invite to accepted, binds the accepting
// account and inserts the role grant in one transaction. A grant
// uniqueness conflict rolls everything back: the invite stays pending and
// no accepted invite can ever exist without its grant.
func (r *InviteRepo) AcceptInvite(ctx context.Context, inviteID, userID uuid.UUID) (*models.RoleGrant, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	updateQuery := `
		UPDATE invites
		SET status = $2, invited_user = $3, updated_at = $4
		WHERE id = $1 AND status = $5
		RETURNING role, shop_id, warehouse_id
	`

	var inviteRow struct {
		Role        models.RoleLevel `db:"role"`
		ShopID      uuid.UUID        `db:"shop_id"`
		WarehouseID *uuid.UUID       `db:"warehouse_id"`
	}
	err = tx.QueryRowxContext(ctx, updateQuery,
		inviteID, models.InviteStatusAccepted, userID, time.Now(), models.InviteStatusPending,
	).StructScan(&inviteRow)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrInvalidState
		}
		return nil, fmt.Errorf("failed to accept invite: %w", err)
	}

	shopID := inviteRow.ShopID
	grant := &models.RoleGrant{
		ID:          uuid.New(),
		UserID:      userID,
		Role:        inviteRow.Role,
		ShopID:      &shopID,
		WarehouseID: inviteRow.WarehouseID,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}

	insertQuery := `
		INSERT INTO role_grants (id, user_id, role, shop_id, warehouse_id, is_active, created_at)
		VALUES (:id, :user_id, :role, :shop_id, :warehouse_id, :is_active, :created_at)
	`
	if _, err := tx.NamedExecContext(ctx, insertQuery, grant); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, apperrors.ErrConflict
		}
		return nil, fmt.Errorf("failed to insert grant: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return grant, nil
}

// ListByShop lists invites scoped to a shop, newest first
func (r *InviteRepo) ListByShop(ctx context.Context, shopID uuid.UUID) ([]models.Invite, error) {
	query := `
		SELECT id, phone, role, shop_id, warehouse_id, status, created_by, invited_user, created_at, updated_at
		FROM invites
		WHERE shop_id = $1
		ORDER BY created_at DESC
	`

	invites := []models.Invite{}
	if err := r.db.SelectContext(ctx, &invites, query, shopID); err != nil {
		return nil, fmt.Errorf("failed to list invites: %w", err)
	}

	return invites, nil
}

// ListByPhone lists invites addressed to a phone identity, newest first
func (r *InviteRepo) ListByPhone(ctx context.Context, phone string) ([]models.Invite, error) {
	query := `
		SELECT id, phone, role, shop_id, warehouse_id, status, created_by, invited_user, created_at, updated_at
		FROM invites
		WHERE phone = $1
		ORDER BY created_at DESC
	`

	invites := []models.Invite{}
	if err := r.db.SelectContext(ctx, &invites, query, phone); err != nil {
		return nil, fmt.Errorf("failed to list invites: %w", err)
	}

	return invites, nil
}
