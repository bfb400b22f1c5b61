package main

import (
	"context"
	"log"
	"net/http"
	"os"

	_ "github.com/dovietdong/WebApiBase/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/dovietdong/WebApiBase/internal/auth"
	"github.com/dovietdong/WebApiBase/internal/cache"
	"github.com/dovietdong/WebApiBase/internal/config"
	"github.com/dovietdong/WebApiBase/internal/db"
	"github.com/dovietdong/WebApiBase/internal/handler"
	"github.com/dovietdong/WebApiBase/internal/model"
	"github.com/dovietdong/WebApiBase/internal/repository"
	"github.com/dovietdong/WebApiBase/internal/router"
	"github.com/dovietdong/WebApiBase/internal/service"
)

// @title Product Catalog API
// @version 1.0
// @description Product catalog API with JWT authentication and role-based access.
// @host localhost:8080
// @BasePath /api
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

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		for _, table := range []interface{}{&model.Product{}, &model.User{}} {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	if err := gormDB.AutoMigrate(&model.User{}, &model.Product{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	userRepo := repository.NewUserRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)

	if err := seedDefaultUsers(context.Background(), userRepo); err != nil {
		log.Fatalf("seed default users: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.AccessTokenTTL)
	tokenStore := auth.NewTokenStore(cacheClient)

	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	userService := service.NewUserService(userRepo)
	productService := service.NewProductService(productRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	productHandler := handler.NewProductHandler(productService)

	router.Register(e, jwtService, authHandler, userHandler, productHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}

// seedDefaultUsers creates the bootstrap admin and demo user on first startup.
// Existing rows are left untouched.
func seedDefaultUsers(ctx context.Context, repo repository.UserRepository) error {
	defaults := []struct {
		username string
		email    string
		password string
		role     model.Role
	}{
		{"admin", "admin@example.com", "Admin@123", model.RoleAdmin},
		{"user", "user@example.com", "User@123", model.RoleUser},
	}

	for _, d := range defaults {
		if existing, err := repo.FindByEmail(ctx, d.email); err == nil && existing != nil {
			continue
		}

		hash, err := auth.HashPassword(d.password)
		if err != nil {
			return err
		}

		user := &model.User{
			Username:     d.username,
			Email:        d.email,
			PasswordHash: hash,
			Role:         d.role,
		}
		if err := repo.Create(ctx, user); err != nil {
			return err
		}
		log.Printf("Seeded default %s account: %s", d.role, d.email)
	}
	return nil
}
