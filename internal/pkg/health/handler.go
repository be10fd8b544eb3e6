package health

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/database"
	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/nsq"
)

// HealthChecker defines the interface for health checking dependencies
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// PostgresHealthChecker checks PostgreSQL connection health
type PostgresHealthChecker struct {
	client *database.PostgresClient
}

// NewPostgresHealthChecker creates a new PostgreSQL health checker
func NewPostgresHealthChecker(client *database.PostgresClient) *PostgresHealthChecker {
	return &PostgresHealthChecker{client: client}
}

// CheckHealth checks if PostgreSQL is healthy
func (p *PostgresHealthChecker) CheckHealth(ctx context.Context) error {
	if p.client == nil {
		return nil
	}
	return p.client.GetDB().PingContext(ctx)
}

// RedisHealthChecker checks Redis connection health
type RedisHealthChecker struct {
	client *database.RedisClient
}

// NewRedisHealthChecker creates a new Redis health checker
func NewRedisHealthChecker(client *database.RedisClient) *RedisHealthChecker {
	return &RedisHealthChecker{client: client}
}

// CheckHealth checks if Redis is healthy
func (r *RedisHealthChecker) CheckHealth(ctx context.Context) error {
	if r.client == nil {
		return nil
	}
	return r.client.Client.Ping(ctx).Err()
}

// NSQHealthChecker checks NSQ producer connectivity
type NSQHealthChecker struct {
	producer *nsq.Producer
}

// NewNSQHealthChecker creates a new NSQ health checker
func NewNSQHealthChecker(producer *nsq.Producer) *NSQHealthChecker {
	return &NSQHealthChecker{producer: producer}
}

// CheckHealth checks if the NSQ daemon is reachable
func (n *NSQHealthChecker) CheckHealth(ctx context.Context) error {
	if n.producer == nil {
		return nil
	}
	return n.producer.Ping()
}

type healthResponse struct {
	Status  string            `json:"status"`
	Service string            `json:"service"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// RegisterHealthEndpoints registers liveness and readiness endpoints
func RegisterHealthEndpoints(e *echo.Echo, serviceName string, checkers map[string]HealthChecker) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, healthResponse{Status: "ok", Service: serviceName})
	})

	e.GET("/health/ready", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		status := http.StatusOK
		resp := healthResponse{Status: "ok", Service: serviceName, Checks: map[string]string{}}

		for name, checker := range checkers {
			if err := checker.CheckHealth(ctx); err != nil {
				resp.Checks[name] = err.Error()
				resp.Status = "degraded"
				status = http.StatusServiceUnavailable
			} else {
				resp.Checks[name] = "ok"
			}
		}

		return c.JSON(status, resp)
	})
}
