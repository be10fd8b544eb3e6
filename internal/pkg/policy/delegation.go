// Package policy holds the static delegation rule table: which role level
// may create invites or direct grants for which other role levels.
package policy

import (
	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/models"
)

// delegationTable maps a creator role to the set of roles it may create.
// Any pair absent from the table is rejected.
var delegationTable = map[models.RoleLevel][]models.RoleLevel{
	models.RoleSuperadmin: {models.RoleOwner},
	models.RoleOwner:      {models.RoleManager, models.RoleCashier},
	models.RoleManager:    {models.RoleCashier},
}

// CanDelegate reports whether creatorRole may create a grant or invite for
// targetRole
func CanDelegate(creatorRole, targetRole models.RoleLevel) bool {
	for _, allowed := range delegationTable[creatorRole] {
		if allowed == targetRole {
			return true
		}
	}
	return false
}

// DelegatableRoles returns the roles creatorRole may create, in table order
func DelegatableRoles(creatorRole models.RoleLevel) []models.RoleLevel {
	return delegationTable[creatorRole]
}
