package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/recipebox/internal/config"
	"github.com/recipebox/internal/database"
	"github.com/recipebox/internal/handler"
	"github.com/recipebox/internal/middleware"
	"github.com/recipebox/internal/repository"
	"github.com/recipebox/internal/service"
	"github.com/recipebox/internal/session"
	"github.com/redis/go-redis/v9"
)

// Build info (injected at build time via -ldflags)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	// Initialize logging
	if err := middleware.InitLogger(cfg.Log.Dir); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Initialize database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Auto migrate database
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Initialize Redis and the session store
	rdb := initRedis(cfg)
	sessions := session.NewRedisStore(rdb)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)
	foodTagRepo := repository.NewFoodTagRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, cfg.Auth)
	userService := service.NewUserService(userRepo)
	recipeService := service.NewRecipeService(recipeRepo, foodTagRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, sessions, cfg.Auth.LoggedInRedirectURL)
	userHandler := handler.NewUserHandler(userService, cfg.Auth.LoggedInRedirectURL)
	recipeHandler := handler.NewRecipeHandler(recipeService)
	homeHandler := handler.NewHomeHandler(userService, recipeService)

	// Create Gin router
	router := gin.Default()
	router.Use(middleware.RequestLoggerMiddleware())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":     "ok",
			"version":    Version,
			"commit":     Commit,
			"build_time": BuildTime,
			"time":       time.Now().Unix(),
		})
	})

	// Authentication gate policies
	requireAuth := middleware.RequireAuth(authService, sessions, cfg.Auth.LoginURL)
	loginProhibited := middleware.LoginProhibited(sessions, cfg.Auth.LoggedInRedirectURL)

	// Routes
	homeHandler.RegisterRoutes(router, requireAuth, loginProhibited)
	authHandler.RegisterRoutes(router, requireAuth, loginProhibited)
	userHandler.RegisterRoutes(router, requireAuth)
	recipeHandler.RegisterRoutes(router, requireAuth)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with 10 second timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	// Close Redis connection
	if err := rdb.Close(); err != nil {
		log.Printf("Error closing Redis connection: %v", err)
	}

	log.Println("Server exited properly")
}

func initRedis(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}
