package repository

import (
	"github.com/jmoiron/sqlx"
)

// InviteRepo persists invites in postgres. Accepting an invite also writes
// the role grant, so this repository touches both tables inside one
// transaction.
type InviteRepo struct {
	db *sqlx.DB
}

// NewInviteRepo creates a new invite repository instance
func NewInviteRepo(db *sqlx.DB) *InviteRepo {
	return &InviteRepo{db: db}
}
