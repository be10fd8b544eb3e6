package gateway

import (
	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/models"
	nsqpkg "github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/nsq"
)

// AuthGW publishes auth events to NSQ for external collaborators
type AuthGW struct {
	producer *nsqpkg.Producer
	cfg      *models.Config
}

// NewAuthGW creates a new auth gateway instance
func NewAuthGW(producer *nsqpkg.Producer, cfg *models.Config) *AuthGW {
	return &AuthGW{
		producer: producer,
		cfg:      cfg,
	}
}
