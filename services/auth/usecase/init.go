package usecase

import (
	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/logger"
	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/models"
	"github.com/asylbekulybeibit/sauda-pro-backend/services/auth"
)

// AuthUC implements the passwordless login usecase
type AuthUC struct {
	authRepo auth.AuthRepo
	authGW   auth.AuthGW
	roles    auth.RoleProvider
	cfg      *models.Config
	log      *logger.Logger
}

// NewAuthUC creates a new auth usecase instance
func NewAuthUC(
	authRepo auth.AuthRepo,
	authGW auth.AuthGW,
	roles auth.RoleProvider,
	cfg *models.Config,
	log *logger.Logger,
) *AuthUC {
	return &AuthUC{
		authRepo: authRepo,
		authGW:   authGW,
		roles:    roles,
		cfg:      cfg,
		log:      log,
	}
}
