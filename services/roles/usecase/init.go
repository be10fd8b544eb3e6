package usecase

import (
	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/logger"
	"github.com/asylbekulybeibit/sauda-pro-backend/services/roles"
)

// RoleUC implements the role authority
type RoleUC struct {
	roleRepo roles.RoleRepo
	log      *logger.Logger
}

// NewRoleUC creates a new role usecase instance
func NewRoleUC(roleRepo roles.RoleRepo, log *logger.Logger) *RoleUC {
	return &RoleUC{
		roleRepo: roleRepo,
		log:      log,
	}
}
