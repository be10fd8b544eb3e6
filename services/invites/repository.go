package invites

import (
	"context"

	"github.com/google/uuid"

	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/asylbekulybeibit/sauda-pro-backend/services/invites InviteRepo

// InviteRepo persists invites. The partial unique index on
// (phone, role, shop_id, warehouse_id) WHERE status = 'pending' backs the
// one-pending-invite invariant.
type InviteRepo interface {
	// CreateInvite inserts a pending invite; a duplicate pending tuple
	// surfaces as apperrors.ErrConflict
	CreateInvite(ctx context.Context, invite *models.Invite) error
	GetInviteByID(ctx context.Context, id uuid.UUID) (*models.Invite, error)
	// TransitionStatus conditionally moves an invite from one status to
	// another; reports whether a row actually changed
	TransitionStatus(ctx context.Context, id uuid.UUID, from, to models.InviteStatus) (bool, error)
	// AcceptInvite atomically flips the pending invite to accepted, binds
	// the accepting account and inserts the role grant. Either both writes
	// commit or neither is observable.
	AcceptInvite(ctx context.Context, inviteID, userID uuid.UUID) (*models.RoleGrant, error)
	ListByShop(ctx context.Context, shopID uuid.UUID) ([]models.Invite, error)
	ListByPhone(ctx context.Context, phone string) ([]models.Invite, error)
}
