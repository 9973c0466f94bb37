package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/brijesh-0/job-board-backend/docs"
	"github.com/brijesh-0/job-board-backend/internal/api/handler"
	"github.com/brijesh-0/job-board-backend/internal/api/middleware"
	"github.com/brijesh-0/job-board-backend/internal/core/domain"
	"github.com/brijesh-0/job-board-backend/internal/core/ports"
	"github.com/brijesh-0/job-board-backend/internal/core/service"
	"github.com/brijesh-0/job-board-backend/internal/infrastructure/config"
	mongorepo "github.com/brijesh-0/job-board-backend/internal/infrastructure/db/mongo"
	redisinfra "github.com/brijesh-0/job-board-backend/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	db *mongo.Database,
	rdb *goredis.Client,
	cfg *config.Config,
	dispatcher ports.NotificationDispatcher,
	signer ports.UploadSigner,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("jobboard"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Repositories ---
	userRepo := mongorepo.NewUserRepository(db)
	jobRepo := mongorepo.NewJobRepository(db)
	appRepo := mongorepo.NewApplicationRepository(db)

	// --- Services ---
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.TTL)
	jobService := service.NewJobService(jobRepo, appRepo, userRepo, log)
	appService := service.NewApplicationService(appRepo, jobRepo, dispatcher, log)
	uploadService := service.NewUploadService(signer, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService, handler.CookieSettings{
		Name:   cfg.Cookie.Name,
		MaxAge: cfg.JWT.TTL,
		Secure: cfg.IsProduction(),
	})
	jobHandler := handler.NewJobHandler(jobService, appService)
	appHandler := handler.NewApplicationHandler(appService)
	uploadHandler := handler.NewUploadHandler(uploadService)

	// --- Middleware ---
	authRequired := middleware.Auth(cfg.JWT.Secret, cfg.Cookie.Name)
	employerOnly := middleware.RequireRole(domain.RoleEmployer)
	candidateOnly := middleware.RequireRole(domain.RoleCandidate)
	loginGuard := middleware.RateLimit(redisinfra.NewLimiter(rdb))

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register, loginGuard)
	auth.POST("/login", authHandler.Login, loginGuard)
	auth.GET("/me", authHandler.Me, authRequired)
	auth.POST("/logout", authHandler.Logout, authRequired)

	// --- Job routes ---
	jobs := e.Group("/api/jobs")
	jobs.GET("", jobHandler.Search)
	jobs.GET("/employer/jobs", jobHandler.ListOwn, authRequired, employerOnly)
	jobs.GET("/:id", jobHandler.Get)
	jobs.POST("", jobHandler.Create, authRequired, employerOnly)
	jobs.PUT("/:id", jobHandler.Update, authRequired, employerOnly)
	jobs.DELETE("/:id", jobHandler.Close, authRequired, employerOnly)
	jobs.GET("/:id/applications", jobHandler.ListApplicants, authRequired, employerOnly)

	// --- Application routes ---
	apps := e.Group("/api/applications", authRequired)
	apps.POST("", appHandler.Apply, candidateOnly)
	apps.GET("", appHandler.ListOwn, candidateOnly)
	apps.PUT("/:id/withdraw", appHandler.Withdraw, candidateOnly)
	apps.PUT("/:id/status", appHandler.Transition, employerOnly)

	// --- Upload routes ---
	e.POST("/api/uploads/signature", uploadHandler.Signature, authRequired)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
