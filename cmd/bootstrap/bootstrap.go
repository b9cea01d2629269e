package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dental-clinic-backend/config"
	"dental-clinic-backend/internal/booking"
	deliveryHttp "dental-clinic-backend/internal/delivery/http"
	"dental-clinic-backend/internal/delivery/http/handler"
	"dental-clinic-backend/internal/delivery/http/middleware"
	domainRepo "dental-clinic-backend/internal/domain/repository"
	"dental-clinic-backend/internal/infrastructure/cache"
	"dental-clinic-backend/internal/infrastructure/database"
	"dental-clinic-backend/internal/repository"
	"dental-clinic-backend/internal/service"
	"dental-clinic-backend/internal/usecase"
	"dental-clinic-backend/pkg/jwt"
	"dental-clinic-backend/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	if err := database.RunMigrations(cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories
	dentistRepo := repository.NewDentistRepository()
	userRepo := repository.NewUserRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// The appointment store backend is a deployment decision: Postgres for
	// durable server installs, Redis for the ephemeral guest/demo mode.
	var store domainRepo.AppointmentStore
	if cfg.App.StoreMode == config.StoreModeEphemeral {
		store = repository.NewRedisAppointmentStore(redisClient)
		log.Info("Using ephemeral (Redis) appointment store")
	} else {
		store = repository.NewGormAppointmentStore(db)
		log.Info("Using durable (Postgres) appointment store")
	}

	// Initialize services
	auditService := service.NewAuditService(db, log, auditLogRepo)
	sessionStore := booking.NewSessionStore(redisClient)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, jwtService, redisClient, auditService)
	dentistUsecase := usecase.NewDentistUsecase(db, log, dentistRepo, store, auditService)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, store, dentistRepo, auditService)
	bookingFlowUsecase := usecase.NewBookingFlowUsecase(db, log, sessionStore, dentistRepo, appointmentUsecase, auditService)
	patientUsecase := usecase.NewPatientUsecase(log, store)
	userUsecase := usecase.NewUserUsecase(db, log, userRepo, auditService)
	adminUsecase := usecase.NewAdminUsecase(db, log, dentistRepo, store, auditLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	dentistHandler := handler.NewDentistHandler(dentistUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	bookingFlowHandler := handler.NewBookingFlowHandler(bookingFlowUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientUsecase)
	userHandler := handler.NewUserHandler(userUsecase, customValidator)
	adminHandler := handler.NewAdminHandler(adminUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		dentistHandler,
		appointmentHandler,
		bookingFlowHandler,
		patientHandler,
		userHandler,
		adminHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
