package policy

import (
	"fmt"

	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/apperrors"
	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/models"
)

// ValidateScope enforces the scope shape per role level: superadmin is
// scope-free, owner grants are shop-scoped, manager and cashier grants are
// shop-scoped with an optional warehouse narrowing. Both the direct grant
// path and the invite path go through this check, so a grant of the wrong
// shape can never materialize.
func ValidateScope(role models.RoleLevel, scope models.Scope) error {
	switch role {
	case models.RoleSuperadmin:
		if scope.ShopID != nil || scope.WarehouseID != nil {
			return fmt.Errorf("%w: superadmin grants are scope-free", apperrors.ErrValidation)
		}
	case models.RoleOwner:
		if scope.ShopID == nil || scope.WarehouseID != nil {
			return fmt.Errorf("%w: owner grants are shop-scoped", apperrors.ErrValidation)
		}
	default:
		if scope.ShopID == nil {
			return fmt.Errorf("%w: staff grants require a shop", apperrors.ErrValidation)
		}
	}
	return nil
}
