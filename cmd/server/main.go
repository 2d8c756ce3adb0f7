package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/config"
	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/events"
	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/handler"
	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/middleware"
	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/model"
	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/repository"
	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/service"
	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/trigger"
	"github.com/Oluwaferanmi-Dev/yrdly-app/migrations"
	"github.com/Oluwaferanmi-Dev/yrdly-app/pkg/auth"
	"github.com/Oluwaferanmi-Dev/yrdly-app/pkg/mailer"
	"github.com/Oluwaferanmi-Dev/yrdly-app/pkg/push"
)

// @title           Yrdly API
// @version         1.0
// @description     Neighborhood social API with friend requests, feed fan-out and push notifications.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.email  support@yrdly.app

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      api.localhost
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// ==================== Load Config ====================
	cfg := config.Load()
	log.Printf("🚀 Starting Yrdly API Server [env=%s]", cfg.App.Env)

	// ==================== Database (PostgreSQL) ====================
	gormLogger := logger.Default.LogMode(logger.Info)
	if cfg.App.Env == "production" {
		gormLogger = logger.Default.LogMode(logger.Warn)
	}

	db, err := gorm.Open(postgres.Open(cfg.DB.DSN()), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	log.Println("✅ Connected to PostgreSQL")

	// ==================== Run Migrations ====================
	if err := migrations.Run(cfg.DB.URL()); err != nil {
		log.Printf("⚠️  Migration warning: %v", err)
		log.Println("📦 Falling back to GORM AutoMigrate...")
		// Fallback to AutoMigrate if migration files fail
		if err := db.AutoMigrate(
			&model.User{},
			&model.Friendship{},
			&model.FriendRequest{},
			&model.Notification{},
			&model.Post{},
			&model.Comment{},
			&model.Event{},
			&model.Conversation{},
			&model.Message{},
			&model.MailQueueEntry{},
		); err != nil {
			log.Fatalf("❌ Failed to migrate database: %v", err)
		}
	}
	log.Println("✅ Database migrated successfully")

	// ==================== Redis ====================
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       0,
	})

	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	log.Println("✅ Connected to Redis")

	// ==================== Email (SMTP / Mailpit) ====================
	mailClient := mailer.New(mailer.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
		FromName: cfg.SMTP.FromName,
	})
	log.Printf("📧 SMTP configured: %s:%s", cfg.SMTP.Host, cfg.SMTP.Port)

	// ==================== Push (Firebase Cloud Messaging) ====================
	pushClient, _ := push.NewClient(ctx, cfg.Firebase.CredentialsFile)

	// ==================== Initialize Layers ====================
	// JWT Manager
	jwtManager := auth.NewJWTManager(cfg.JWT.Secret, cfg.JWT.Expiry)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	requestRepo := repository.NewFriendRequestRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	postRepo := repository.NewPostRepository(db)
	eventRepo := repository.NewEventRepository(db)
	convRepo := repository.NewConversationRepository(db)
	mailRepo := repository.NewMailQueueRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, jwtManager, rdb)
	notificationService := service.NewNotificationService(userRepo, notificationRepo, pushClient)
	friendService := service.NewFriendService(requestRepo, userRepo, notificationService)
	feedService := service.NewFeedService(postRepo, userRepo)
	eventService := service.NewEventService(eventRepo, userRepo)
	chatService := service.NewChatService(convRepo)
	mailService := service.NewMailService(mailRepo, mailClient)

	// Change bus + trigger runner (Redis Pub/Sub, so any instance can
	// pick up changes published by another)
	bus := events.NewBus(rdb)
	triggers := trigger.New(userRepo, postRepo, convRepo, mailRepo, notificationService, mailService, bus)
	runner := events.NewRunner(rdb, triggers)

	runCtx, runCancel := context.WithCancel(context.Background())
	defer runCancel()
	go runner.Run(runCtx)

	// Drain any mail left over from a previous shutdown
	go mailService.Sweep(runCtx)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	friendHandler := handler.NewFriendHandler(friendService, bus)
	notificationHandler := handler.NewNotificationHandler(notificationRepo)
	postHandler := handler.NewPostHandler(feedService, bus)
	eventHandler := handler.NewEventHandler(eventService, bus)
	chatHandler := handler.NewChatHandler(chatService, bus)

	// ==================== Router ====================
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	// Swagger configuration
	// Serve swagger.json at /docs/swagger.json to avoid conflict with /swagger/* wildcard
	router.StaticFile("/docs/swagger.json", "./docs/swagger.json")

	// Swagger UI handling
	url := ginSwagger.URL("/docs/swagger.json")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, url))

	// Global middleware
	router.Use(middleware.CORSMiddleware(cfg.CORS.Origins))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "yrdly-api",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	// ==================== API Routes ====================
	api := router.Group("/api/v1")
	{
		// Auth routes (public)
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
		}

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(jwtManager, rdb))
		{
			// Auth
			protected.POST("/auth/logout", authHandler.Logout)
			protected.GET("/auth/profile", authHandler.GetProfile)

			// User settings
			protected.PUT("/users/settings", authHandler.UpdateSettings)
			protected.PUT("/users/fcm-token", authHandler.UpdateFCMToken)

			// Friends
			protected.GET("/friends", friendHandler.ListFriends)
			protected.GET("/friends/requests", friendHandler.ListRequests)
			protected.POST("/friends/requests", friendHandler.SendRequest)
			protected.POST("/friends/requests/accept", friendHandler.Accept)
			protected.POST("/friends/requests/decline", friendHandler.Decline)

			// Notifications
			protected.GET("/notifications", notificationHandler.List)
			protected.PUT("/notifications/:id/read", notificationHandler.MarkRead)

			// Posts
			protected.POST("/posts", postHandler.Create)
			protected.POST("/posts/:id/like", postHandler.Like)
			protected.POST("/posts/:id/comments", postHandler.Comment)

			// Conversations
			protected.POST("/conversations", chatHandler.GetOrCreateDirect)
			protected.POST("/conversations/:id/messages", chatHandler.SendMessage)

			// Events
			protected.POST("/events", eventHandler.Create)
			protected.POST("/events/:id/invite", eventHandler.Invite)
			protected.POST("/events/:id/rsvp", eventHandler.RSVP)
		}
	}

	// ==================== Start Server ====================
	srv := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Server failed: %v", err)
		}
	}()

	log.Printf("🌐 Yrdly API running on http://0.0.0.0:%s", cfg.App.Port)
	log.Printf("📋 API docs: http://0.0.0.0:%s/swagger/index.html", cfg.App.Port)
	log.Printf("📄 Swagger JSON: http://0.0.0.0:%s/docs/swagger.json", cfg.App.Port)
	log.Printf("📧 Mailpit UI: http://localhost:8025")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	// Give ongoing requests 5 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	runCancel()
	log.Println("✅ Server exited gracefully")
}
