package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account identified by its canonical phone number.
// Accounts are never hard-deleted, only deactivated.
type User struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Phone     string    `json:"phone" db:"phone"`
	FullName  string    `json:"full_name" db:"full_name"`
	IsSuper   bool      `json:"is_super" db:"is_super"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// UserUpdate is the named update DTO for profile fields. Only the fields
// listed here may be changed through profile updates; identity and flag
// fields are deliberately absent.
type UserUpdate struct {
	FullName *string `json:"full_name"`
}
