package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/apperrors"
	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/models"
)

// GetUserByPhone retrieves an account by its canonical phone identity
func (r *AuthRepo) GetUserByPhone(ctx context.Context, phone string) (*models.User, error) {
	query := `
		SELECT id, phone, full_name, is_super, is_active, created_at, updated_at
		FROM users
		WHERE phone = $1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// GetUserByID retrieves an account by id
func (r *AuthRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `
		SELECT id, phone, full_name, is_super, is_active, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// CreateUser creates a new account
func (r *AuthRepo) CreateUser(ctx context.Context, user *models.User) error {
	user.ID = uuid.New()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
		INSERT INTO users (id, phone, full_name, is_super, is_active, created_at, updated_at)
		VALUES (:id, :phone, :full_name, :is_super, :is_active, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, user); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// UpdateUser applies a named profile update and returns the fresh record.
// Only fields present on the DTO are touched.
func (r *AuthRepo) UpdateUser(ctx context.Context, id uuid.UUID, update *models.UserUpdate) (*models.User, error) {
	if update.FullName != nil {
		query := `
			UPDATE users
			SET full_name = $2, updated_at = $3
			WHERE id = $1
		`
		res, err := r.db.ExecContext(ctx, query, id, *update.FullName, time.Now())
		if err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return nil, apperrors.ErrNotFound
		}
	}

	return r.GetUserByID(ctx, id)
}
