package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"shopstack.backend/internal/config"
	"shopstack.backend/internal/infrastructure/repositories"
	"shopstack.backend/internal/interfaces/http/handlers"
	"shopstack.backend/internal/interfaces/http/middleware"
	"shopstack.backend/internal/usecases"
	"shopstack.backend/pkg/logger"
	"shopstack.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	runServer = func(srv *http.Server) error { return srv.ListenAndServe() }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis (idempotency cache)
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	defer redis.Close()
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize repositories
	storeRepo := repositories.NewStoreRepository(db)
	apiKeyRepo := repositories.NewApiKeyRepository(db)
	productRepo := repositories.NewProductRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	customerRepo := repositories.NewCustomerRepository(db)
	newsletterRepo := repositories.NewNewsletterRepository(db)

	// Initialize usecases
	apiKeyUsecase := usecases.NewApiKeyUsecase(apiKeyRepo)
	storeUsecase := usecases.NewStoreUsecase(storeRepo, apiKeyUsecase)
	productUsecase := usecases.NewProductUsecase(productRepo, categoryRepo)
	categoryUsecase := usecases.NewCategoryUsecase(categoryRepo)
	reviewUsecase := usecases.NewReviewUsecase(reviewRepo, productRepo)
	customerUsecase := usecases.NewCustomerUsecase(customerRepo, newsletterRepo)

	// Initialize handlers
	storeHandler := handlers.NewStoreHandler(storeUsecase)
	apiKeyHandler := handlers.NewApiKeyHandler(apiKeyUsecase)
	productHandler := handlers.NewProductHandler(productUsecase)
	categoryHandler := handlers.NewCategoryHandler(categoryUsecase)
	reviewHandler := handlers.NewReviewHandler(reviewUsecase)
	customerHandler := handlers.NewCustomerHandler(customerUsecase)

	// Identity middleware backed by the validator
	apiKeyAuth := middleware.APIKeyAuth(apiKeyUsecase)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerAPIV1Routes(r, routeDeps{
		storeHandler:    storeHandler,
		apiKeyHandler:   apiKeyHandler,
		productHandler:  productHandler,
		categoryHandler: categoryHandler,
		reviewHandler:   reviewHandler,
		customerHandler: customerHandler,
		apiKeyAuth:      apiKeyAuth,
	})

	// Print all registered routes for debugging
	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error(context.Background(), "Forced shutdown", zap.Error(err))
		}
	}()

	// Start server
	log.Printf("🚀 ShopStack Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(srv); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
