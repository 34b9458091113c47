// Package bootstrap assembles the application's dependency graph.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/eduverse/eduverse/docs" // generated swagger docs
	"github.com/eduverse/eduverse/internal/app/controllers"
	"github.com/eduverse/eduverse/internal/app/migrations"
	"github.com/eduverse/eduverse/internal/app/repositories"
	"github.com/eduverse/eduverse/internal/app/routes"
	"github.com/eduverse/eduverse/internal/app/services"
	"github.com/eduverse/eduverse/internal/config"
	"github.com/eduverse/eduverse/internal/db"
	"github.com/eduverse/eduverse/internal/middleware"
	"github.com/eduverse/eduverse/internal/pkg/auth"
	"github.com/eduverse/eduverse/internal/pkg/email"
	"github.com/eduverse/eduverse/internal/pkg/helpers"
	"github.com/eduverse/eduverse/internal/pkg/logger"
	"github.com/eduverse/eduverse/internal/pkg/metrics"
	"github.com/eduverse/eduverse/internal/pkg/validation"
	"github.com/eduverse/eduverse/internal/seed"
)

// Dependencies holds the assembled application components.
type Dependencies struct {
	Repos       *repositories.Repositories
	Services    *services.Services
	Controllers *routes.Controllers

	JWTService     *auth.JWTService
	AuthMiddleware *middleware.AuthMiddleware
	Recorder       *metrics.Recorder
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase connects to Postgres, runs migrations and seeds defaults.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Str("host", cfg.Database.Host).Str("database", cfg.Database.DBName).Msg("Database connection established")

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrator := migrations.NewMigrator(database.Pool)
	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	if err := seed.CreateDefaultData(context.Background(), database, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway")
	}

	return database, nil
}

// BuildDependencies initializes repositories, services and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = repositories.NewRepositories(database)

	deps.JWTService = auth.NewJWTService(auth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	emailService := email.NewEmailService(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
		BaseURL:   cfg.Server.BaseURL,
	}, lgr)

	deps.Services = services.NewServices(deps.Repos, deps.JWTService, emailService, lgr)
	deps.AuthMiddleware = middleware.NewAuthMiddleware(deps.JWTService)
	deps.Recorder = metrics.NewRecorder(cfg.Metrics.Capacity)

	svcs := deps.Services
	deps.Controllers = &routes.Controllers{
		Auth:     controllers.NewAuthController(svcs.AuthService, lgr),
		User:     controllers.NewUserController(svcs.UserService, lgr),
		Course:   controllers.NewCourseController(svcs.CourseService, svcs.UserService, lgr),
		Post:     controllers.NewPostController(svcs.PostService, svcs.UserService, lgr),
		Comment:  controllers.NewCommentController(svcs.CommentService, svcs.UserService, lgr),
		Reaction: controllers.NewReactionController(svcs.ReactionService, lgr),
		Chat:     controllers.NewChatController(svcs.ChatService, svcs.UserService, lgr),
		Message:  controllers.NewMessageController(svcs.MessageService, svcs.UserService, lgr),
		File:     controllers.NewFileController(svcs.FileService, svcs.UserService, lgr),
		Report:   controllers.NewReportController(svcs.ReportService, lgr),
		Metrics:  controllers.NewMetricsController(deps.Recorder, lgr),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := validation.RegisterCustomValidations(); err != nil {
		return nil, fmt.Errorf("failed to register validations: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.RequestMetrics(deps.Recorder))

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		router.Use(limiter.Handler())
		lgr.Info().Float64("rps", cfg.RateLimit.RPS).Int("burst", cfg.RateLimit.Burst).Msg("Rate limiting enabled")
	}

	routes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)
	return router, nil
}
