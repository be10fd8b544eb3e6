package repository

import (
	"github.com/jmoiron/sqlx"
)

// RoleRepo persists role grants in postgres
type RoleRepo struct {
	db *sqlx.DB
}

// NewRoleRepo creates a new role repository instance
func NewRoleRepo(db *sqlx.DB) *RoleRepo {
	return &RoleRepo{db: db}
}
