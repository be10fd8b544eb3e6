package models

import (
	"time"

	"github.com/google/uuid"
)

// InviteStatus is the state of an invite. PENDING is the only non-terminal
// state; no transition ever leaves ACCEPTED, REJECTED or CANCELLED.
type InviteStatus string

const (
	InviteStatusPending   InviteStatus = "pending"
	InviteStatusAccepted  InviteStatus = "accepted"
	InviteStatusRejected  InviteStatus = "rejected"
	InviteStatusCancelled InviteStatus = "cancelled"
)

// Invite is an open offer to create a role grant for a phone identity that
// is not necessarily registered yet.
type Invite struct {
	ID          uuid.UUID    `json:"id" db:"id"`
	Phone       string       `json:"phone" db:"phone"`
	Role        RoleLevel    `json:"role" db:"role"`
	ShopID      uuid.UUID    `json:"shop_id" db:"shop_id"`
	WarehouseID *uuid.UUID   `json:"warehouse_id,omitempty" db:"warehouse_id"`
	Status      InviteStatus `json:"status" db:"status"`
	CreatedBy   uuid.UUID    `json:"created_by" db:"created_by"`
	InvitedUser *uuid.UUID   `json:"invited_user,omitempty" db:"invited_user"`
	CreatedAt   time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at" db:"updated_at"`
}

// Scope returns the scope the invite offers a grant at
func (i *Invite) Scope() Scope {
	shopID := i.ShopID
	return Scope{ShopID: &shopID, WarehouseID: i.WarehouseID}
}

// CreateInviteRequest is the invite creation payload
type CreateInviteRequest struct {
	Phone       string     `json:"phone" validate:"required"`
	Role        RoleLevel  `json:"role" validate:"required"`
	ShopID      uuid.UUID  `json:"shop_id" validate:"required"`
	WarehouseID *uuid.UUID `json:"warehouse_id,omitempty"`
}
