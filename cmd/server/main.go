package main

import (
	"log"
	"net/http"
	"os"

	_ "github.com/NCHAKRADHAR-SINGH1/learn-hub/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/NCHAKRADHAR-SINGH1/learn-hub/internal/auth"
	"github.com/NCHAKRADHAR-SINGH1/learn-hub/internal/cache"
	"github.com/NCHAKRADHAR-SINGH1/learn-hub/internal/config"
	"github.com/NCHAKRADHAR-SINGH1/learn-hub/internal/db"
	"github.com/NCHAKRADHAR-SINGH1/learn-hub/internal/handler"
	"github.com/NCHAKRADHAR-SINGH1/learn-hub/internal/model"
	"github.com/NCHAKRADHAR-SINGH1/learn-hub/internal/repository"
	"github.com/NCHAKRADHAR-SINGH1/learn-hub/internal/router"
	"github.com/NCHAKRADHAR-SINGH1/learn-hub/internal/service"
	"github.com/NCHAKRADHAR-SINGH1/learn-hub/internal/storage"
)

// @title LearnHub API
// @version 1.0
// @description Course learning platform backend: registration, course publishing, enrollment with payment recording, and progress tracking.
// @host localhost:8000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	defer func() {
		if err := db.Close(gormDB); err != nil {
			log.Printf("database close: %v", err)
		}
	}()

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.ProgressEntry{},
			&model.Enrollment{},
			&model.Payment{},
			&model.Section{},
			&model.Course{},
			&model.User{},
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
		&model.User{},
		&model.Course{},
		&model.Section{},
		&model.Enrollment{},
		&model.ProgressEntry{},
		&model.Payment{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()

	fileStore, err := storage.NewDiskStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("upload store init: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	courseRepo := repository.NewCourseRepository(gormDB)
	enrollmentRepo := repository.NewEnrollmentRepository(gormDB)
	transactor := repository.NewTransactor(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	courseService := service.NewCourseService(courseRepo, cacheClient)
	enrollmentService := service.NewEnrollmentService(courseRepo, enrollmentRepo, transactor, cacheClient)
	progressService := service.NewProgressService(courseRepo, enrollmentRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	courseHandler := handler.NewCourseHandler(courseService, fileStore)
	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentService)
	progressHandler := handler.NewProgressHandler(progressService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		courseHandler,
		enrollmentHandler,
		progressHandler,
	)

	swaggerHost := cfg.SwaggerHost
	if swaggerHost == "" {
		swaggerHost = "http://localhost:" + cfg.ServerPort
	}
	log.Printf("Swagger documentation available at: %s/swagger/index.html", swaggerHost)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
