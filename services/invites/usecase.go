package invites

import (
	"context"

	"github.com/google/uuid"

	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/asylbekulybeibit/sauda-pro-backend/services/invites InviteUC,UserProvider,GrantProvider

// InviteUC is the invite lifecycle: a delegation request becomes a pending
// offer, then exactly one of accepted, rejected or cancelled. No transition
// ever leaves a terminal state.
type InviteUC interface {
	// Create opens a pending offer for a phone identity
	Create(ctx context.Context, creatorID uuid.UUID, creatorSuper bool, req *models.CreateInviteRequest) (*models.Invite, error)

	// Accept binds the invite to the accepting account and materializes the
	// role grant. The grant creation and the status transition are atomic.
	Accept(ctx context.Context, inviteID, acceptorID uuid.UUID, acceptorPhone string) (*models.Invite, error)

	// Cancel is creator-initiated and only valid while pending
	Cancel(ctx context.Context, inviteID, actorID uuid.UUID, actorSuper bool) error

	// Reject is target-initiated and only valid while pending
	Reject(ctx context.Context, inviteID uuid.UUID, actorPhone string) error

	// ListByShop lists invites scoped to a shop, newest first
	ListByShop(ctx context.Context, shopID uuid.UUID) ([]models.Invite, error)

	// ListByPhone lists invites addressed to a phone identity
	ListByPhone(ctx context.Context, phone string) ([]models.Invite, error)
}

// UserProvider resolves phone identities to accounts
type UserProvider interface {
	GetUserByPhone(ctx context.Context, phone string) (*models.User, error)
}

// GrantProvider is the slice of the role authority the invite lifecycle
// consults: the creator's delegation authority and existing grants of the
// invited identity.
type GrantProvider interface {
	GetActiveGrants(ctx context.Context, userID uuid.UUID) ([]models.RoleGrant, error)
	FindActiveGrant(ctx context.Context, userID uuid.UUID, role models.RoleLevel, scope models.Scope) (*models.RoleGrant, error)
}
