package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"blood-bank-backend/config"
	deliveryHttp "blood-bank-backend/internal/delivery/http"
	"blood-bank-backend/internal/delivery/http/handler"
	"blood-bank-backend/internal/delivery/http/middleware"
	"blood-bank-backend/internal/infrastructure/cache"
	"blood-bank-backend/internal/infrastructure/database"
	"blood-bank-backend/internal/infrastructure/objectstore"
	"blood-bank-backend/internal/repository"
	"blood-bank-backend/internal/service"
	"blood-bank-backend/internal/usecase"
	"blood-bank-backend/pkg/jwt"
	"blood-bank-backend/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	ObjectStore *objectstore.Store
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

	// Apply schema migrations before opening the pooled connection
	if err := database.RunMigrations(cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize object store for request attachments
	store, err := objectstore.New(cfg.S3)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize object store: %w", err)
	}
	if err := store.EnsureBucket(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to ensure attachment bucket: %w", err)
	}
	app.ObjectStore = store

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient, store)
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
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, store *objectstore.Store) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	donorRepo := repository.NewDonorRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	requestRepo := repository.NewBloodRequestRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	fileRepo := repository.NewFileRepository(db)

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize services
	stockAlerts := service.NewStockAlertService(log, inventoryRepo, notificationRepo)
	statsCache := service.NewStatsCache(redisClient)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(log, userRepo, jwtService)
	donorUsecase := usecase.NewDonorUsecase(log, donorRepo, inventoryRepo)
	inventoryUsecase := usecase.NewInventoryUsecase(log, inventoryRepo, stockAlerts)
	requestUsecase := usecase.NewRequestUsecase(log, requestRepo, inventoryRepo, notificationRepo, fileRepo, store, stockAlerts)
	notificationUsecase := usecase.NewNotificationUsecase(log, notificationRepo)
	dashboardUsecase := usecase.NewDashboardUsecase(log, donorRepo, requestRepo, inventoryRepo, statsCache)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	donorHandler := handler.NewDonorHandler(donorUsecase, customValidator)
	inventoryHandler := handler.NewInventoryHandler(inventoryUsecase, customValidator)
	requestHandler := handler.NewRequestHandler(requestUsecase, customValidator)
	fileHandler := handler.NewFileHandler(requestUsecase)
	notificationHandler := handler.NewNotificationHandler(notificationUsecase)
	dashboardHandler := handler.NewDashboardHandler(dashboardUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		donorHandler,
		inventoryHandler,
		requestHandler,
		fileHandler,
		notificationHandler,
		dashboardHandler,
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
