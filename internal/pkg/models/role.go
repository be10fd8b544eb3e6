package models

import (
	"time"

	"github.com/google/uuid"
)

// RoleLevel identifies the staff role a grant carries. Roles are checked by
// allowed-set membership, not by numeric comparison: a manager is not
// automatically a cashier.
type RoleLevel string

const (
	RoleCashier    RoleLevel = "cashier"
	RoleManager    RoleLevel = "manager"
	RoleOwner      RoleLevel = "owner"
	RoleSuperadmin RoleLevel = "superadmin"
)

// Valid reports whether the role level is one of the known levels
func (r RoleLevel) Valid() bool {
	switch r {
	case RoleCashier, RoleManager, RoleOwner, RoleSuperadmin:
		return true
	}
	return false
}

// Scope is the tenant boundary a grant or an authorization check applies to.
// The shop is the unit of a grant; the warehouse is an optional narrowing.
type Scope struct {
	ShopID      *uuid.UUID `json:"shop_id,omitempty"`
	WarehouseID *uuid.UUID `json:"warehouse_id,omitempty"`
}

// RoleGrant binds a user to a role level at a scope. Deactivation is
// permanent: a revoked grant is never reactivated, a fresh one is created.
type RoleGrant struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	UserID        uuid.UUID  `json:"user_id" db:"user_id"`
	Role          RoleLevel  `json:"role" db:"role"`
	ShopID        *uuid.UUID `json:"shop_id,omitempty" db:"shop_id"`
	WarehouseID   *uuid.UUID `json:"warehouse_id,omitempty" db:"warehouse_id"`
	IsActive      bool       `json:"is_active" db:"is_active"`
	DeactivatedAt *time.Time `json:"deactivated_at,omitempty" db:"deactivated_at"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
}

// Scope returns the scope the grant is bound to
func (g *RoleGrant) Scope() Scope {
	return Scope{ShopID: g.ShopID, WarehouseID: g.WarehouseID}
}

// Covers reports whether the grant's scope covers the requested scope.
// A warehouse-narrowed grant covers only its own warehouse; a shop-level
// grant covers every warehouse of its shop; a request naming a warehouse
// the grant does not reach fails closed.
func (g *RoleGrant) Covers(scope Scope) bool {
	if g.ShopID == nil && g.WarehouseID == nil {
		// scope-free grant (superadmin only, enforced at creation)
		return true
	}
	if scope.ShopID != nil {
		if g.ShopID == nil || *g.ShopID != *scope.ShopID {
			return false
		}
	}
	if g.WarehouseID != nil {
		if scope.WarehouseID == nil || *g.WarehouseID != *scope.WarehouseID {
			return false
		}
	}
	if scope.WarehouseID != nil && g.WarehouseID == nil && scope.ShopID == nil {
		// bare warehouse request against a shop-level grant: without the shop
		// in the request there is nothing to match the grant against
		return false
	}
	return true
}

// CreateGrantRequest is the administrative grant creation payload
type CreateGrantRequest struct {
	UserID      uuid.UUID  `json:"user_id" validate:"required"`
	Role        RoleLevel  `json:"role" validate:"required"`
	ShopID      *uuid.UUID `json:"shop_id,omitempty"`
	WarehouseID *uuid.UUID `json:"warehouse_id,omitempty"`
}
