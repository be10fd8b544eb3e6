package gateway

import (
	"context"
	"fmt"

	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/models"
)

// PublishOTPNotification hands the code to the out-of-band delivery worker.
// The code never travels back over the HTTP response.
func (g *AuthGW) PublishOTPNotification(_ context.Context, event *models.OTPNotificationEvent) error {
	if err := g.producer.Publish(g.cfg.OTP.Topic, event); err != nil {
		return fmt.Errorf("failed to publish OTP notification: %w", err)
	}
	return nil
}
