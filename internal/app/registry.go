package app

import (
	"go-stationops/internal/account"
	"go-stationops/internal/attendance"
	"go-stationops/internal/auth"
	"go-stationops/internal/messaging/kafka"
	"go-stationops/internal/middleware"
	"go-stationops/internal/profile"
	"go-stationops/internal/rbac"
	"go-stationops/internal/shared/config"
	"go-stationops/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func registerModules(
	router *gin.Engine,
	cfg config.Config,
	stores store.Provider,
	rdb redis.Cmdable,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	accountRepo := account.NewRepository(stores)
	profileRepo := profile.NewRepository(stores)
	attendanceRepo := attendance.NewRepository(stores)
	mirrorRepo := attendance.NewMirrorRepository(stores)
	outboxRepo := kafka.NewOutboxRepository(stores, store.EmployeeDomain)

	// --- RBAC Core ---
	rbacService, err := rbac.NewDefaultService(logger)
	if err != nil {
		return err
	}

	// --- Identity ---
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
	resolver := auth.NewResolver(accountRepo, logger)
	session := auth.NewSession(tokens, resolver)

	// --- Services ---
	authService := auth.NewService(resolver, tokens, logger)
	profileService := profile.NewService(profileRepo, logger)
	attendanceService := attendance.NewService(attendance.Deps{
		Repo:      attendanceRepo,
		Mirror:    mirrorRepo,
		Outbox:    attendance.NewOutboxMirror(outboxRepo),
		Employees: accountRepo,
		Location:  cfg.AttendanceLocation,
	}, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	profileHandler := profile.NewHandler(profileService, logger)
	attendanceHandler := attendance.NewHandler(attendanceService, logger)

	// --- Routes Registration ---
	router.Use(middleware.ContextLogger(logger))

	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler,
			middleware.Authenticate(session),
			middleware.RateLimitByIP(0.2, 5),
		)
		profile.RegisterRoutes(api, profileHandler, session, rbacService)
		attendance.RegisterRoutes(api, attendanceHandler, session, rbacService, rdb)
	}

	return nil
}
