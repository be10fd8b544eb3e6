package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/config"
	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/database"
	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/health"
	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/logger"
	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/middleware"
	nsqpkg "github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/nsq"
	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/server"
	authGateway "github.com/asylbekulybeibit/sauda-pro-backend/services/auth/gateway"
	authHTTP "github.com/asylbekulybeibit/sauda-pro-backend/services/auth/handler/http"
	authRepository "github.com/asylbekulybeibit/sauda-pro-backend/services/auth/repository"
	authUsecase "github.com/asylbekulybeibit/sauda-pro-backend/services/auth/usecase"
	inviteHTTP "github.com/asylbekulybeibit/sauda-pro-backend/services/invites/handler/http"
	inviteRepository "github.com/asylbekulybeibit/sauda-pro-backend/services/invites/repository"
	inviteUsecase "github.com/asylbekulybeibit/sauda-pro-backend/services/invites/usecase"
	roleHTTP "github.com/asylbekulybeibit/sauda-pro-backend/services/roles/handler/http"
	roleRepository "github.com/asylbekulybeibit/sauda-pro-backend/services/roles/repository"
	roleUsecase "github.com/asylbekulybeibit/sauda-pro-backend/services/roles/usecase"
)

func main() {
	appName := "backoffice"
	configs := config.InitConfig("config/backoffice.env")

	appLogger, err := logger.New(configs.Logger)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer appLogger.Close()

	appLogger.Info("starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	// Infrastructure
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		appLogger.Fatal("failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		appLogger.Fatal("failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	producer, err := nsqpkg.NewProducer(configs.NSQ.ProducerAddress)
	if err != nil {
		appLogger.Fatal("failed to connect to NSQ", logger.Err(err))
	}
	defer producer.Stop()

	db := postgresClient.GetDB()

	// Repositories
	authRepo := authRepository.NewAuthRepo(configs, db, redisClient)
	roleRepo := roleRepository.NewRoleRepo(db)
	inviteRepo := inviteRepository.NewInviteRepo(db)

	// Gateways
	authGW := authGateway.NewAuthGW(producer, configs)

	// Usecases
	roleUC := roleUsecase.NewRoleUC(roleRepo, appLogger)
	authUC := authUsecase.NewAuthUC(authRepo, authGW, roleUC, configs, appLogger)
	inviteUC := inviteUsecase.NewInviteUC(inviteRepo, authRepo, roleRepo, appLogger)

	// Handlers
	authHandler := authHTTP.NewAuthHandler(authUC, configs)
	grantHandler := roleHTTP.NewGrantHandler(roleUC)
	inviteHandler := inviteHTTP.NewInviteHandler(inviteUC)

	// Router
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.RequestID())
	e.Use(echomw.Recover())
	e.Use(logger.EchoMiddleware(appLogger))

	health.RegisterHealthEndpoints(e, appName, map[string]health.HealthChecker{
		"postgres": health.NewPostgresHealthChecker(postgresClient),
		"redis":    health.NewRedisHealthChecker(redisClient),
		"nsq":      health.NewNSQHealthChecker(producer),
	})

	authMW := middleware.Auth(configs.JWT)
	authHandler.RegisterRoutes(e, authMW)
	grantHandler.RegisterRoutes(e, authMW, roleUC)
	inviteHandler.RegisterRoutes(e, authMW, roleUC)

	// Shutdown wiring
	shutdownManager := server.NewShutdownManager(appLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		producer.Stop()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return postgresClient.Close()
	})

	srv := server.NewGracefulServer(e, appLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)

	if err := srv.Start(); err != nil {
		appLogger.Error("server stopped with error", logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	shutdownManager.Shutdown(ctx)
}
