// Package bootstrap wires configuration, database, repositories, services
// and controllers together for the server.
package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/schoolsafe/backend/docs" // generated swagger docs
	appControllers "github.com/schoolsafe/backend/internal/app/controllers"
	appMigrations "github.com/schoolsafe/backend/internal/app/migrations"
	appRepos "github.com/schoolsafe/backend/internal/app/repositories"
	appRoutes "github.com/schoolsafe/backend/internal/app/routes"
	appServices "github.com/schoolsafe/backend/internal/app/services"
	"github.com/schoolsafe/backend/internal/config"
	"github.com/schoolsafe/backend/internal/db"
	appMiddleware "github.com/schoolsafe/backend/internal/middleware"
	pkgAuth "github.com/schoolsafe/backend/internal/pkg/auth"
	"github.com/schoolsafe/backend/internal/pkg/filestorage"
	"github.com/schoolsafe/backend/internal/pkg/helpers"
	"github.com/schoolsafe/backend/internal/pkg/logger"
	"github.com/schoolsafe/backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService          *appServices.AuthService
	UserService          *appServices.UserService
	SchoolService        *appServices.SchoolService
	ScheduleService      *appServices.ScheduleService
	MaterialService      *appServices.MaterialService
	TravelTimeService    *appServices.TravelTimeService
	AuthController       *appControllers.AuthController
	AdminController      *appControllers.AdminController
	UserController       *appControllers.UserController
	SchoolController     *appControllers.SchoolController
	ScheduleController   *appControllers.ScheduleController
	MaterialController   *appControllers.MaterialController
	TravelTimeController *appControllers.TravelTimeController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Repos                *appRepos.Repositories
	JWTService           *pkgAuth.JWTService
	FileStorage          *filestorage.LocalStorage
	Logger               zerolog.Logger
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
// seeds default data.
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
		// Seeding is best effort; the API works without default schools
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// File storage URLs must match the static serving path in the server
	baseURL := cfg.Server.BaseURL
	if baseURL == "" {
		baseURL = "http://localhost:" + cfg.Server.Port
	}
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, baseURL+"/uploads")
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.User,
		deps.Repos.Token,
		deps.Repos.PasswordReset,
		deps.JWTService,
		deps.FileStorage,
		cfg,
		lgr,
	)
	deps.UserService = appServices.NewUserService(deps.Repos.User, lgr)
	deps.SchoolService = appServices.NewSchoolService(deps.Repos.School, lgr)
	deps.ScheduleService = appServices.NewScheduleService(deps.Repos.Schedule, deps.Repos.School, lgr)
	deps.MaterialService = appServices.NewMaterialService(deps.Repos.Material, deps.FileStorage, lgr)
	deps.TravelTimeService = appServices.NewTravelTimeService(deps.Repos.TravelTime, deps.Repos.Schedule, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.AdminController = appControllers.NewAdminController(deps.AuthService)
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.SchoolController = appControllers.NewSchoolController(deps.SchoolService)
	deps.ScheduleController = appControllers.NewScheduleController(deps.ScheduleService)
	deps.MaterialController = appControllers.NewMaterialController(deps.MaterialService)
	deps.TravelTimeController = appControllers.NewTravelTimeController(deps.TravelTimeService)

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

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(), gin.Recovery())

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.AdminController,
		deps.UserController,
		deps.SchoolController,
		deps.ScheduleController,
		deps.MaterialController,
		deps.TravelTimeController,
		deps.AuthMiddleware,
	)

	// Health check
	router.GET("/api/v1/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}
