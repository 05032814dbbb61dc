package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"messagely/database"
	"messagely/internal/api/handler"
	"messagely/internal/api/middleware"
	"messagely/internal/api/repository"
	"messagely/internal/api/service"
	"messagely/internal/cache"
	"messagely/internal/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := newLogger(cfg)

	db, err := database.Connect(cfg.DatabaseURL, cfg.MigrationsPath, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}
	defer database.Close(db)

	// The cache is optional; without Redis every lookup goes to Postgres.
	var userCache *cache.UserCache
	if cfg.RedisAddr != "" {
		userCache, err = cache.NewUserCache(cfg.RedisAddr, cfg.RedisPassword, cfg.CacheTTL)
		if err != nil {
			logger.Warn("running without user cache", "error", err)
			userCache = nil
		} else {
			defer userCache.Close()
		}
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// Services
	userService := service.NewUserService(userRepo, messageRepo, userCache, cfg.BcryptCost, logger)
	authService := service.NewAuthService(userService, refreshTokenRepo, cfg)
	messageService := service.NewMessageService(messageRepo, notificationRepo, logger)
	notificationService := service.NewNotificationService(notificationRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, cfg.AccessTokenTTL)
	userHandler := handler.NewUserHandler(userService)
	messageHandler := handler.NewMessageHandler(messageService)
	notificationHandler := handler.NewNotificationHandler(notificationService)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigins))

	r.GET("/check-conn", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	requireAuth := middleware.AuthMiddleware(authService)

	auth := r.Group("/auth")
	auth.Use(middleware.RateLimit(cfg.AuthRateLimit, cfg.AuthRateBurst))
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.RefreshToken)
		auth.POST("/revoke", authHandler.RevokeToken)
	}

	users := r.Group("/users")
	users.Use(requireAuth)
	{
		users.GET("", userHandler.List)
		users.GET("/:username", userHandler.Get)
		users.GET("/:username/to", middleware.RequireSameUser("username"), userHandler.MessagesTo)
		users.GET("/:username/from", middleware.RequireSameUser("username"), userHandler.MessagesFrom)
	}

	messages := r.Group("/messages")
	messages.Use(requireAuth)
	{
		messages.GET("/:id", messageHandler.Get)
		messages.POST("", messageHandler.Create)
		messages.POST("/:id/read", messageHandler.MarkRead)
	}

	notifications := r.Group("/notifications")
	notifications.Use(requireAuth)
	{
		notifications.GET("", notificationHandler.ListUnread)
		notifications.POST("/:id/read", notificationHandler.MarkRead)
		notifications.POST("/read-all", notificationHandler.MarkAllRead)
	}

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}
	logger.Info("server stopped")
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(h)
}
