package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"coachmarket.backend/internal/config"
	"coachmarket.backend/internal/infrastructure/repositories"
	"coachmarket.backend/internal/infrastructure/stripe"
	"coachmarket.backend/internal/interfaces/http/handlers"
	"coachmarket.backend/internal/interfaces/http/middleware"
	"coachmarket.backend/internal/usecases"
	"coachmarket.backend/pkg/logger"
	"coachmarket.backend/pkg/redis"
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
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("Database not available: %v (endpoints will return errors)", err)
	}

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	appRepo := repositories.NewCoachApplicationRepository(db)
	intakeRepo := repositories.NewClientIntakeRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)
	eventRepo := repositories.NewWebhookEventRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Gateway client and webhook verifier
	gatewayClient := stripe.NewClient(&cfg.Stripe)
	verifier := stripe.NewWebhookVerifier(cfg.Stripe.WebhookSecret, cfg.Stripe.WebhookTolerance)

	// Usecases
	onboardingUsecase := usecases.NewOnboardingUsecase(userRepo, gatewayClient, cfg.Platform)
	checkoutUsecase := usecases.NewCheckoutUsecase(userRepo, gatewayClient, cfg.Platform)
	webhookUsecase := usecases.NewWebhookUsecase(userRepo, paymentRepo, eventRepo, gatewayClient, uow, cfg.Platform.Onboarding)
	intakeUsecase := usecases.NewIntakeUsecase(userRepo, appRepo, intakeRepo, uow)
	coachUsecase := usecases.NewCoachUsecase(userRepo, appRepo, paymentRepo)

	// Handlers
	onboardingHandler := handlers.NewOnboardingHandler(onboardingUsecase)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutUsecase)
	webhookHandler := handlers.NewWebhookHandler(webhookUsecase, verifier)
	coachHandler := handlers.NewCoachHandler(coachUsecase, intakeUsecase)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		onboardingHandler: onboardingHandler,
		checkoutHandler:   checkoutHandler,
		webhookHandler:    webhookHandler,
		coachHandler:      coachHandler,
	})

	log.Printf("Server starting on port %s", cfg.Server.Port)
	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
