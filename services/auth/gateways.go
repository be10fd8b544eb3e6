package auth

import (
	"context"

	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/asylbekulybeibit/sauda-pro-backend/services/auth AuthGW

// AuthGW publishes events for external collaborators. Code delivery is out
// of band: an SMS worker consumes the notification topic.
type AuthGW interface {
	PublishOTPNotification(ctx context.Context, event *models.OTPNotificationEvent) error
}
