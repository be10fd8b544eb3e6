package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/logger"
)

// GracefulServer wraps the Echo server with graceful shutdown handling
type GracefulServer struct {
	echo            *echo.Echo
	log             *logger.Logger
	port            int
	shutdownTimeout time.Duration
}

// NewGracefulServer creates a new server with graceful shutdown
func NewGracefulServer(e *echo.Echo, log *logger.Logger, port int, shutdownTimeout time.Duration) *GracefulServer {
	return &GracefulServer{
		echo:            e,
		log:             log,
		port:            port,
		shutdownTimeout: shutdownTimeout,
	}
}

// Start starts the server and blocks until an interrupt or SIGTERM arrives
func (s *GracefulServer) Start() error {
	go func() {
		addr := fmt.Sprintf(":%d", s.port)
		s.log.Info("starting HTTP server", logger.String("address", addr))

		if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
			s.log.Fatal("failed to start server", logger.Err(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	sig := <-quit
	s.log.Info("received shutdown signal", logger.String("signal", sig.String()))

	return s.Shutdown()
}

// Shutdown gracefully shuts down the server
func (s *GracefulServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.echo.Shutdown(ctx); err != nil {
		s.log.Error("server forced to shutdown", logger.Err(err))
		return err
	}

	s.log.Info("server shutdown completed")
	return nil
}

// ShutdownManager collects component cleanup functions executed on shutdown
type ShutdownManager struct {
	log       *logger.Logger
	functions []func(context.Context) error
}

// NewShutdownManager creates a new shutdown manager
func NewShutdownManager(log *logger.Logger) *ShutdownManager {
	return &ShutdownManager{
		log:       log,
		functions: make([]func(context.Context) error, 0),
	}
}

// Register adds a cleanup function to be called during shutdown
func (sm *ShutdownManager) Register(fn func(context.Context) error) {
	sm.functions = append(sm.functions, fn)
}

// Shutdown executes all registered cleanup functions
func (sm *ShutdownManager) Shutdown(ctx context.Context) error {
	for i, fn := range sm.functions {
		if err := fn(ctx); err != nil {
			sm.log.Error("error during component shutdown",
				logger.Int("component", i),
				logger.Err(err))
		}
	}
	return nil
}
