package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"mixbook/internal/auth"
	"mixbook/internal/cache"
	"mixbook/internal/config"
	"mixbook/internal/db"
	"mixbook/internal/handler"
	"mixbook/internal/model"
	"mixbook/internal/render"
	"mixbook/internal/repository"
	"mixbook/internal/router"
	"mixbook/internal/service"
)

func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	renderer, err := render.New()
	if err != nil {
		log.Fatalf("templates: %v", err)
	}
	e.Renderer = renderer

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Ingredient{},
		&model.Drink{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	ingredientRepo := repository.NewIngredientRepository(gormDB)
	drinkRepo := repository.NewDrinkRepository(gormDB)

	// Initialize session components
	jwtService := auth.NewJWTService(cfg.SessionSecret)
	sessionStore := auth.NewSessionStore(cacheClient)
	sessions := auth.NewManager(jwtService, sessionStore)

	// Initialize services
	credentialService := service.NewCredentialService(userRepo)
	ingredientService := service.NewIngredientService(ingredientRepo)
	drinkService := service.NewDrinkService(drinkRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(credentialService, sessions)
	ingredientHandler := handler.NewIngredientHandler(ingredientService, drinkService, sessions)
	drinkHandler := handler.NewDrinkHandler(drinkService, ingredientService, sessions)
	collectionHandler := handler.NewCollectionHandler(drinkService, credentialService, sessions, cfg.AdminUser)

	// Register routes
	router.Register(
		e,
		sessions,
		authHandler,
		ingredientHandler,
		drinkHandler,
		collectionHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
