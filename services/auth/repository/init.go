package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/database"
	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/models"
)

// AuthRepo persists accounts in postgres and keeps one-time codes plus the
// refresh-token denylist in redis
type AuthRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewAuthRepo creates a new auth repository instance
func NewAuthRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *AuthRepo {
	return &AuthRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
