package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	appAuth "github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/auth"
	appControllers "github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/controllers"
	appMigrations "github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/migrations"
	appRepos "github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/repositories"
	appRoutes "github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/routes"
	appServices "github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/services"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/config"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/db"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/middleware"
	pkgAuth "github.com/sopanmasure-ws/hostel-mgmt-backend/internal/pkg/auth"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/pkg/cache"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/pkg/logger"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/pkg/validation"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/seed"
)

// Dependencies holds initialized application components.
type Dependencies struct {
	AuthService           *appServices.AuthService
	ApplicationService    *appServices.ApplicationService
	AllocationService     *appServices.AllocationService
	HostelService         *appServices.HostelService
	StudentService        *appServices.StudentService
	AdminService          *appServices.AdminService
	DashboardService      *appServices.DashboardService
	AuthController        *appControllers.AuthController
	ApplicationController *appControllers.ApplicationController
	AllocationController  *appControllers.AllocationController
	HostelController      *appControllers.HostelController
	StudentController     *appControllers.StudentController
	AdminController       *appControllers.AdminController
	DashboardController   *appControllers.DashboardController
	AuthMiddleware        *middleware.AuthMiddleware
	Repos                 *appRepos.Repositories
	JWTService            *pkgAuth.JWTService
	HostelScope           *appAuth.HostelScope
	Cache                 cache.Cache
	Logger                zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the initial superadmin.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Startup continues; staff can still be registered through the API
		lgr.Error().Err(err).Msg("Failed to seed default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// Dashboard caching backend. Redis when configured, otherwise a
	// process-local cache so single-node deployments need no extra service.
	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			lgr.Error().Err(err).Str("addr", cfg.Redis.Addr).Msg("Failed to connect to Redis")
			return nil, fmt.Errorf("failed to initialize redis cache: %w", err)
		}
		deps.Cache = redisCache
		lgr.Info().Str("addr", cfg.Redis.Addr).Msg("Redis cache initialized")
	} else {
		deps.Cache = cache.NewMemoryCache()
		lgr.Info().Msg("In-memory cache initialized")
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    cfg.JWTExpiration(),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.HostelScope = appAuth.NewHostelScope(deps.Repos.HostelRepository)

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.StudentRepository,
		deps.Repos.AdminRepository,
		deps.JWTService,
		cfg.Superadmin.Passkey,
	)
	deps.ApplicationService = appServices.NewApplicationService(
		deps.Repos.StudentRepository,
		deps.Repos.HostelRepository,
		deps.Repos.ApplicationRepository,
	)
	deps.AllocationService = appServices.NewAllocationService(
		deps.Repos.StudentRepository,
		deps.Repos.RoomRepository,
		deps.Repos.HostelRepository,
		deps.Repos.ApplicationRepository,
		deps.Cache,
	)
	deps.HostelService = appServices.NewHostelService(
		deps.Repos.HostelRepository,
		deps.Repos.RoomRepository,
		deps.Repos.AdminRepository,
		deps.Repos.ApplicationRepository,
		deps.Cache,
	)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, deps.Repos.RoomRepository)
	deps.AdminService = appServices.NewAdminService(deps.Repos.AdminRepository, deps.Repos.HostelRepository)
	deps.DashboardService = appServices.NewDashboardService(
		deps.Repos.StudentRepository,
		deps.Repos.AdminRepository,
		deps.Repos.HostelRepository,
		deps.Repos.RoomRepository,
		deps.Repos.ApplicationRepository,
		deps.Cache,
		cfg.DashboardCacheTTL(),
	)

	deps.AuthMiddleware = middleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.ApplicationController = appControllers.NewApplicationController(deps.ApplicationService, deps.AllocationService, deps.HostelScope)
	deps.AllocationController = appControllers.NewAllocationController(deps.AllocationService, deps.HostelScope)
	deps.HostelController = appControllers.NewHostelController(deps.HostelService, deps.HostelScope)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.AdminController = appControllers.NewAdminController(deps.AdminService, deps.HostelService)
	deps.DashboardController = appControllers.NewDashboardController(deps.DashboardService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	validation.RegisterCustomValidators()

	router := gin.New()
	router.Use(middleware.RequestLogger())
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.ApplicationController,
		deps.AllocationController,
		deps.HostelController,
		deps.StudentController,
		deps.AdminController,
		deps.DashboardController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
