package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/apperrors"
	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/logger"
	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/models"
	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/policy"
	"github.com/asylbekulybeibit/sauda-pro-backend/internal/utils"
)

// Create opens a pending offer for a phone identity. The delegation table
// is consulted before any uniqueness check; the creator must also hold a
// grant covering the invite's scope.
func (u *InviteUC) Create(ctx context.Context, creatorID uuid.UUID, creatorSuper bool, req *models.CreateInviteRequest) (*models.Invite, error) {
	if !req.Role.Valid() || req.Role == models.RoleSuperadmin {
		return nil, fmt.Errorf("%w: role cannot be offered by invite", apperrors.ErrValidation)
	}

	phone := utils.NormalizePhone(req.Phone)
	if !utils.ValidatePhone(phone) {
		return nil, fmt.Errorf("%w: malformed phone number", apperrors.ErrValidation)
	}

	shopID := req.ShopID
	scope := models.Scope{ShopID: &shopID, WarehouseID: req.WarehouseID}

	// the scope shape rules bind the invite path too, or an accepted invite
	// would materialize a grant the direct path refuses to create
	if err := policy.ValidateScope(req.Role, scope); err != nil {
		return nil, err
	}

	if err := u.authorizeCreator(ctx, creatorID, creatorSuper, req.Role, scope); err != nil {
		return nil, err
	}

	// an already registered identity holding the same active grant makes
	// the offer meaningless
	target, err := u.users.GetUserByPhone(ctx, phone)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to resolve target: %w", err)
	}
	if target != nil {
		existing, err := u.grants.FindActiveGrant(ctx, target.ID, req.Role, scope)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperrors.ErrConflict
		}
	}

	invite := &models.Invite{
		Phone:       phone,
		Role:        req.Role,
		ShopID:      req.ShopID,
		WarehouseID: req.WarehouseID,
		CreatedBy:   creatorID,
	}
	if err := u.inviteRepo.CreateInvite(ctx, invite); err != nil {
		return nil, err
	}

	u.log.Info("invite created",
		logger.String("invite_id", invite.ID.String()),
		logger.String("phone", phone),
		logger.String("role", string(invite.Role)))

	return invite, nil
}

// Accept binds the invite to the accepting account and materializes the
// grant. Only the invited phone identity may accept. The repository makes
// the transition and the grant insertion atomic: a conflicting grant rolls
// the transition back and the invite stays pending.
func (u *InviteUC) Accept(ctx context.Context, inviteID, acceptorID uuid.UUID, acceptorPhone string) (*models.Invite, error) {
	invite, err := u.inviteRepo.GetInviteByID(ctx, inviteID)
	if err != nil {
		return nil, err
	}
	if invite.Status != models.InviteStatusPending {
		return nil, apperrors.ErrInvalidState
	}
	if invite.Phone != utils.NormalizePhone(acceptorPhone) {
		return nil, apperrors.ErrForbidden
	}

	grant, err := u.inviteRepo.AcceptInvite(ctx, inviteID, acceptorID)
	if err != nil {
		return nil, err
	}

	u.log.Info("invite accepted",
		logger.String("invite_id", inviteID.String()),
		logger.String("grant_id", grant.ID.String()),
		logger.String("user_id", acceptorID.String()))

	return u.inviteRepo.GetInviteByID(ctx, inviteID)
}

// Cancel is creator-initiated. The original creator, a super account, or
// anyone whose own grants could have created the invite may cancel it.
func (u *InviteUC) Cancel(ctx context.Context, inviteID, actorID uuid.UUID, actorSuper bool) error {
	invite, err := u.inviteRepo.GetInviteByID(ctx, inviteID)
	if err != nil {
		return err
	}
	if invite.Status != models.InviteStatusPending {
		return apperrors.ErrInvalidState
	}

	if invite.CreatedBy != actorID && !actorSuper {
		if err := u.authorizeCreator(ctx, actorID, false, invite.Role, invite.Scope()); err != nil {
			return err
		}
	}

	changed, err := u.inviteRepo.TransitionStatus(ctx, inviteID, models.InviteStatusPending, models.InviteStatusCancelled)
	if err != nil {
		return err
	}
	if !changed {
		return apperrors.ErrInvalidState
	}

	u.log.Info("invite cancelled", logger.String("invite_id", inviteID.String()))
	return nil
}

// Reject is target-initiated: only the invited phone identity may decline
func (u *InviteUC) Reject(ctx context.Context, inviteID uuid.UUID, actorPhone string) error {
	invite, err := u.inviteRepo.GetInviteByID(ctx, inviteID)
	if err != nil {
		return err
	}
	if invite.Status != models.InviteStatusPending {
		return apperrors.ErrInvalidState
	}
	if invite.Phone != utils.NormalizePhone(actorPhone) {
		return apperrors.ErrForbidden
	}

	changed, err := u.inviteRepo.TransitionStatus(ctx, inviteID, models.InviteStatusPending, models.InviteStatusRejected)
	if err != nil {
		return err
	}
	if !changed {
		return apperrors.ErrInvalidState
	}

	u.log.Info("invite rejected", logger.String("invite_id", inviteID.String()))
	return nil
}

// ListByShop lists invites scoped to a shop
func (u *InviteUC) ListByShop(ctx context.Context, shopID uuid.UUID) ([]models.Invite, error) {
	return u.inviteRepo.ListByShop(ctx, shopID)
}

// ListByPhone lists invites addressed to a phone identity
func (u *InviteUC) ListByPhone(ctx context.Context, phone string) ([]models.Invite, error) {
	return u.inviteRepo.ListByPhone(ctx, utils.NormalizePhone(phone))
}

// authorizeCreator checks the delegation table and that one of the actor's
// active grants both permits delegating the target role and covers the
// scope. Super accounts act as superadmin in the table.
func (u *InviteUC) authorizeCreator(ctx context.Context, actorID uuid.UUID, actorSuper bool, targetRole models.RoleLevel, scope models.Scope) error {
	if actorSuper {
		if !policy.CanDelegate(models.RoleSuperadmin, targetRole) {
			return apperrors.ErrForbidden
		}
		return nil
	}

	grants, err := u.grants.GetActiveGrants(ctx, actorID)
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
