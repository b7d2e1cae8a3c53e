package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/tkhs0604/task-api/internal/config"
	"github.com/tkhs0604/task-api/internal/database"
	"github.com/tkhs0604/task-api/internal/handlers"
	"github.com/tkhs0604/task-api/internal/logger"
	"github.com/tkhs0604/task-api/internal/middleware"
	"github.com/tkhs0604/task-api/internal/repository"
	"github.com/tkhs0604/task-api/internal/services"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	zapLogger, err := logger.New(cfg.GinMode)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Sync()

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		zapLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	db := database.GetDB()

	// Initialize repositories and services
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	assignedRepo := repository.NewTaskAssignedUserRepository(db)

	jwtService := services.NewJWTService(cfg.JWTSecret, cfg.JWTExpiresIn)
	userService := services.NewUserService(userRepo, jwtService)
	taskService := services.NewTaskService(taskRepo, assignedRepo, userRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(taskService)

	// Initialize Gin router
	r := gin.New()
	r.Use(logger.RequestLogger(zapLogger))
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           time.Hour,
	}))

	// API routes
	v1 := r.Group("/v1")
	v1.Use(middleware.Authenticate(jwtService, userRepo))
	{
		// Public routes
		v1.GET("/health", handlers.Health)
		v1.GET("/hello", handlers.Hello)
		v1.POST("/register", authHandler.Register)
		v1.POST("/login", authHandler.Login)

		// Authenticated routes
		users := v1.Group("/users")
		users.Use(middleware.RequireAuth())
		{
			users.GET("/me", userHandler.Me)
			users.GET("/me/tasks", userHandler.MyTasks)
		}
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		zapLogger.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	zapLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("Shutdown error", zap.Error(err))
	}
	zapLogger.Info("Server stopped")
}
