package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/models"
)

func TestCanDelegate_FullTable(t *testing.T) {
	all := []models.RoleLevel{
		models.RoleCashier,
		models.RoleManager,
		models.RoleOwner,
		models.RoleSuperadmin,
	}

	allowed := map[models.RoleLevel]map[models.RoleLevel]bool{
		models.RoleSuperadmin: {models.RoleOwner: true},
		models.RoleOwner:      {models.RoleManager: true, models.RoleCashier: true},
		models.RoleManager:    {models.RoleCashier: true},
	}

	for _, creator := range all {
		for _, target := range all {
			want := allowed[creator][target]
			assert.Equal(t, want, CanDelegate(creator, target),
				"creator=%s target=%s", creator, target)
		}
	}
}

func TestCanDelegate_UnknownRole(t *testing.T) {
	assert.False(t, CanDelegate(models.RoleLevel("auditor"), models.RoleCashier))
	assert.False(t, CanDelegate(models.RoleOwner, models.RoleLevel("auditor")))
}

func TestDelegatableRoles(t *testing.T) {
	assert.Equal(t, []models.RoleLevel{models.RoleOwner}, DelegatableRoles(models.RoleSuperadmin))
	assert.Equal(t, []models.RoleLevel{models.RoleManager, models.RoleCashier}, DelegatableRoles(models.RoleOwner))
	assert.Equal(t, []models.RoleLevel{models.RoleCashier}, DelegatableRoles(models.RoleManager))
	assert.Empty(t, DelegatableRoles(models.RoleCashier))
}
