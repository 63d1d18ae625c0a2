package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/campushub/club-management/docs"
	"github.com/campushub/club-management/internal/api/handler"
	"github.com/campushub/club-management/internal/api/middleware"
	"github.com/campushub/club-management/internal/core/domain"
	"github.com/campushub/club-management/internal/core/ports"
	"github.com/campushub/club-management/internal/core/service"
	mongodb "github.com/campushub/club-management/internal/infrastructure/db/mongo"
	redisdb "github.com/campushub/club-management/internal/infrastructure/db/redis"
)

// Dependencies bundles everything the router needs to assemble the
// application. Services returned alongside the router let the caller run
// startup tasks (index bootstrap, default admin) with the same instances.
type Dependencies struct {
	Auth       ports.AuthService
	Users      *mongodb.UserRepository
	WorkHours  *mongodb.WorkHourRepository
	Activities *mongodb.ActivityRepository
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) (*echo.Echo, *Dependencies) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("clubmgmt"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	clubRepo := mongodb.NewClubRepository(db)
	workHourRepo := mongodb.NewWorkHourRepository(db)
	activityRepo := mongodb.NewActivityRepository(db)

	// --- Services ---
	throttle := redisdb.NewLoginThrottle(rdb)
	authService := service.NewAuthService(userRepo, throttle, jwtSecret, tokenTTL, log)
	workHourService := service.NewWorkHourService(workHourRepo, log)
	activityService := service.NewActivityService(activityRepo, log)
	statsService := service.NewStatsService(userRepo, workHourRepo, activityRepo)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userRepo, clubRepo)
	workHourHandler := handler.NewWorkHourHandler(workHourService)
	activityHandler := handler.NewActivityHandler(activityService)
	statsHandler := handler.NewStatsHandler(statsService)

	authMW := middleware.Auth(jwtSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin, domain.RoleSchoolAdmin)
	deciderOnly := middleware.RBAC(domain.RoleAdmin, domain.RoleSchoolAdmin, domain.RoleClubAdmin)

	// --- API routes ---
	apiGroup := e.Group("/api")

	apiGroup.POST("/auth/login", authHandler.Login)
	apiGroup.POST("/auth/register", authHandler.Register, authMW, adminOnly)

	apiGroup.GET("/users/:id", userHandler.Get, authMW)
	apiGroup.GET("/clubs", userHandler.ListClubs, authMW)
	apiGroup.GET("/clubs/:id", userHandler.GetClub, authMW)

	apiGroup.GET("/work-hours", workHourHandler.List, authMW)
	apiGroup.POST("/work-hours", workHourHandler.Submit, authMW)
	apiGroup.PUT("/work-hours/:id/approve", workHourHandler.Decide, authMW, deciderOnly)

	apiGroup.GET("/activities", activityHandler.List, authMW)
	apiGroup.POST("/activities", activityHandler.Submit, authMW)
	apiGroup.PUT("/activities/:id/approve", activityHandler.Decide, authMW, deciderOnly)
	apiGroup.PUT("/activities/:id/cancel", activityHandler.Cancel, authMW)
	apiGroup.GET("/recent-activities", activityHandler.Recent, authMW)

	apiGroup.GET("/stats/users", statsHandler.Users, authMW, adminOnly)
	apiGroup.GET("/stats/work-hours", statsHandler.WorkHours, authMW)
	apiGroup.GET("/stats/activities", statsHandler.Activities, authMW)

	// --- Operational routes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e, &Dependencies{
		Auth:       authService,
		Users:      userRepo,
		WorkHours:  workHourRepo,
		Activities: activityRepo,
	}
}
