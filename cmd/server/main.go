package main

import (
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"

	"github.com/Fidelis-Mayaba-II-Cheelo/Lodge-Accommodation-Management-REST-API-with-JWT-Authentication/internal/cache"
	"github.com/Fidelis-Mayaba-II-Cheelo/Lodge-Accommodation-Management-REST-API-with-JWT-Authentication/internal/handlers"
	"github.com/Fidelis-Mayaba-II-Cheelo/Lodge-Accommodation-Management-REST-API-with-JWT-Authentication/internal/logx"
	"github.com/Fidelis-Mayaba-II-Cheelo/Lodge-Accommodation-Management-REST-API-with-JWT-Authentication/internal/middleware"
	"github.com/Fidelis-Mayaba-II-Cheelo/Lodge-Accommodation-Management-REST-API-with-JWT-Authentication/internal/models"
	"github.com/Fidelis-Mayaba-II-Cheelo/Lodge-Accommodation-Management-REST-API-with-JWT-Authentication/internal/repository"
	"github.com/Fidelis-Mayaba-II-Cheelo/Lodge-Accommodation-Management-REST-API-with-JWT-Authentication/internal/service"
	"github.com/Fidelis-Mayaba-II-Cheelo/Lodge-Accommodation-Management-REST-API-with-JWT-Authentication/internal/storage"
)

func main() {
	log := logx.New()

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, using system environment variables")
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	app := fiber.New(fiber.Config{
		AppName: "Maya Hostels Backend",
		// Support hostel image uploads up to 5MB + overhead.
		BodyLimit: 8 * 1024 * 1024, // 8MB
	})

	// Middleware
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     os.Getenv("ALLOWED_ORIGINS"),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-MH-CSRF",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS",
		AllowCredentials: true,
	}))

	// Initialize database connection
	db, err := repository.InitDB()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	// Initialize Redis cache
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	redisPassword := os.Getenv("REDIS_PASSWORD")
	redisDB := 0
	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		if parsedDB, err := strconv.Atoi(dbStr); err == nil {
			redisDB = parsedDB
		}
	}

	redisCache := cache.NewRedisCache(redisAddr, redisPassword, redisDB)
	if err := redisCache.Ping(); err != nil {
		log.Warn().Err(err).Msg("Redis connection failed, running without cache")
		redisCache = nil
	} else {
		log.Info().Msg("Redis cache connected successfully")
	}

	notificationCache := cache.NewNotificationCache(redisCache)

	// Initialize repositories
	adminRepo := repository.NewAdminRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	outboundRepo := repository.NewOutboundNotificationRepository(db)
	inboundRepo := repository.NewInboundNotificationRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	hostelRepo := repository.NewHostelRepository(db)

	// Initialize S3/MinIO storage (best-effort; image endpoints fail cleanly if missing)
	var s3Store *storage.S3Storage
	if cfg, err := storage.LoadS3ConfigFromEnv(); err != nil {
		log.Warn().Err(err).Msg("S3 storage not configured")
	} else if st, err := storage.NewS3Storage(cfg); err != nil {
		log.Warn().Err(err).Msg("Failed to initialize S3 storage")
	} else {
		s3Store = st
		log.Info().Str("bucket", cfg.Bucket).Msg("S3 storage initialized successfully")
	}

	// Initialize services
	authService := service.NewAuthService(adminRepo, studentRepo, refreshTokenRepo, log)
	broadcastService := service.NewBroadcastService(outboundRepo, studentRepo, notificationCache, log)
	sentService := service.NewSentNotificationService(outboundRepo, notificationCache, log)
	inboxService := service.NewInboxService(inboundRepo, notificationCache, log)
	hostelService := service.NewHostelService(hostelRepo, s3Store, log)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	notificationHandler := handlers.NewNotificationHandler(broadcastService, sentService, inboxService)
	hostelHandler := handlers.NewHostelHandler(hostelService)

	// Public routes
	api := app.Group("/api", middleware.OriginAllowed())
	auth := api.Group("/auth", limiter.New(limiter.Config{
		Max:        20,
		Expiration: time.Minute,
	}))
	auth.Get("/csrf", authHandler.CSRF)
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh) // No CSRF required - protected by HttpOnly refresh token
	auth.Post("/logout", middleware.CSRFRequired(), authHandler.Logout)

	// Protected routes
	protected := api.Group("/", middleware.AuthRequired(), middleware.CSRFRequired())

	// Notification routes (admin only). Literal segments are registered
	// before parameterized ones so /sent and /broadcast never match :id.
	notifications := protected.Group("/notifications", middleware.RequireRole(models.RoleAdmin))
	notifications.Post("/recipient", notificationHandler.SendToStudent)
	notifications.Get("/unread-count", notificationHandler.UnreadCount)
	notifications.Get("/sent/:student_id", notificationHandler.ListSentToStudent)
	notifications.Get("/sent", notificationHandler.ListSent)
	notifications.Put("/sent/:id/:student_id", notificationHandler.EditSent)
	notifications.Delete("/sent/:id", notificationHandler.DeleteSent)
	notifications.Delete("/sent", notificationHandler.DeleteAllSent)
	notifications.Put("/broadcast/:broadcast_id", notificationHandler.EditBroadcast)
	notifications.Post("/", notificationHandler.Broadcast)
	notifications.Get("/", notificationHandler.ListInbound)
	notifications.Put("/:id", notificationHandler.MarkRead)
	notifications.Put("/", notificationHandler.MarkAllRead)
	notifications.Delete("/:id/:student_id", notificationHandler.DeleteInbound)
	notifications.Delete("/", notificationHandler.DeleteAllInbound)

	// Hostel routes
	protected.Get("/hostels", hostelHandler.List)
	protected.Get("/hostels/:id", hostelHandler.Get)
	hostelsAdmin := protected.Group("/hostels", middleware.RequireRole(models.RoleAdmin))
	hostelsAdmin.Post("/", hostelHandler.Create)
	hostelsAdmin.Post("/:id/rooms", hostelHandler.AddRoom)
	hostelsAdmin.Post("/:id/image", hostelHandler.UploadImage)

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": "Maya Hostels backend is running",
		})
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Info().Str("port", port).Msg("Server starting")
	if err := app.Listen(":" + port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
