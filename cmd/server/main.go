package main

import (
	"log"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"cityeyes/internal/auth"
	"cityeyes/internal/cache"
	"cityeyes/internal/config"
	"cityeyes/internal/db"
	"cityeyes/internal/handler"
	"cityeyes/internal/model"
	"cityeyes/internal/repository"
	"cityeyes/internal/router"
	"cityeyes/internal/service"
	"cityeyes/internal/storage"
)

// @title CityEyes API
// @version 1.0
// @description Civic-reporting backend: landmark submissions with admin verification, time-boxed incident reports, and a trust/credit reward ledger.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	if len(cfg.SuperAdminEmails) == 0 {
		log.Println("Warning: SUPER_ADMIN_EMAILS is empty, no caller can authorize admins")
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.RewardEvent{},
			&model.Incident{},
			&model.Landmark{},
			&model.Profile{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.Profile{},
		&model.Landmark{},
		&model.Incident{},
		&model.RewardEvent{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	mediaStore, err := storage.NewDiskStore(cfg.MediaDir, cfg.PublicBaseURL)
	if err != nil {
		log.Fatalf("media store init: %v", err)
	}

	// Initialize repositories
	profileRepo := repository.NewProfileRepository(gormDB)
	landmarkRepo := repository.NewLandmarkRepository(gormDB)
	incidentRepo := repository.NewIncidentRepository(gormDB)
	rewardEventRepo := repository.NewRewardEventRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(profileRepo, jwtService, tokenStore)
	identityService := service.NewIdentityService(profileRepo, cfg.SuperAdminEmails)
	submissionValidator := service.NewSubmissionValidator(cfg.StrictValidation, mediaStore)
	if cfg.RewardCompatMode {
		log.Println("Warning: REWARD_COMPAT_MODE=true, reward increments are not concurrency-safe")
	}
	rewardService := service.NewRewardService(profileRepo, rewardEventRepo, cacheClient, cfg.RewardCompatMode)
	landmarkService := service.NewLandmarkService(landmarkRepo, submissionValidator, rewardService, cacheClient)
	incidentService := service.NewIncidentService(incidentRepo, submissionValidator, rewardService, cacheClient)
	profileService := service.NewProfileService(profileRepo, rewardEventRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	landmarkHandler := handler.NewLandmarkHandler(landmarkService)
	incidentHandler := handler.NewIncidentHandler(incidentService)
	profileHandler := handler.NewProfileHandler(profileService)
	adminHandler := handler.NewAdminHandler(landmarkService, incidentService, profileService)

	// Register routes
	router.Register(
		e,
		cfg,
		jwtService,
		tokenStore,
		identityService,
		authHandler,
		landmarkHandler,
		incidentHandler,
		profileHandler,
		adminHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
