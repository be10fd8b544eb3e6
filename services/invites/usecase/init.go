package usecase

import (
	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/logger"
	"github.com/asylbekulybeibit/sauda-pro-backend/services/invites"
)

// InviteUC implements the invite lifecycle
type InviteUC struct {
	inviteRepo invites.InviteRepo
	users      invites.UserProvider
	grants     invites.GrantProvider
	log        *logger.Logger
}

// NewInviteUC creates a new invite usecase instance
func NewInviteUC(
	inviteRepo invites.InviteRepo,
	users invites.UserProvider,
	grants invites.GrantProvider,
	log *logger.Logger,
) *InviteUC {
	return &InviteUC{
		inviteRepo: inviteRepo,
		users:      users,
		grants:     grants,
		log:        log,
	}
}
