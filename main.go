package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/sharingyatra/yatra-backend/database"
	"github.com/sharingyatra/yatra-backend/internal/auth"
	"github.com/sharingyatra/yatra-backend/internal/config"
	"github.com/sharingyatra/yatra-backend/internal/jobs"
	"github.com/sharingyatra/yatra-backend/internal/models"
	"github.com/sharingyatra/yatra-backend/internal/routes"
	"github.com/sharingyatra/yatra-backend/internal/services"
	"github.com/sharingyatra/yatra-backend/internal/storage"
)

const version = "1.0.0"

func main() {
	// Load .env file for local development
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found - checking environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize storage
	var store storage.Store

	if cfg.UseMemoryStore {
		log.Println("⚠️  Using in-memory storage (not for production!)")
		store = storage.NewMemoryStore()
	} else {
		db, err := database.Connect(cfg)
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}

		log.Println("🔄 Running database migrations...")
		err = db.AutoMigrate(
			&models.Customer{},
			&models.Agency{},
			&models.Driver{},
			&models.Vehicle{},
			&models.OTP{},
			&models.Session{},
			&models.Booking{},
			&models.Counter{},
		)
		if err != nil {
			log.Fatal("Failed to migrate database:", err)
		}
		log.Println("✅ Database migrations completed!")

		store = storage.NewDatabaseStore(db)
	}

	// Mail delivery for OTPs
	var mailer services.Mailer
	smtpMailer, err := services.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)
	if err != nil {
		log.Println("⚠️  SMTP not configured - OTP codes will be logged instead of mailed")
		mailer = services.LogMailer{}
	} else {
		mailer = smtpMailer
	}

	// Core services, wired explicitly
	hasher := auth.NewPasswordHasher()
	resolver := auth.NewResolver(store, hasher)
	sessions := auth.NewSessionManager(store, cfg.SessionSecret)
	otpService := services.NewOTPService(store, mailer)

	// Background sweep of expired OTP/session rows
	cleanupJob := jobs.NewCleanupJob(store, 10*time.Minute)
	cleanupJob.Start()

	// Create fiber app
	app := fiber.New(fiber.Config{
		AppName: "Sharing Yatra Backend v" + version,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.AllowOrigins, ","),
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS",
		AllowCredentials: true,
	}))

	// Root endpoint with service metadata
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service":     "Sharing Yatra Backend API",
			"version":     version,
			"status":      "healthy",
			"environment": environmentName(cfg),
			"storage":     storageName(cfg),
		})
	})

	routes.SetupRoutes(app, routes.Deps{
		Store:         store,
		Resolver:      resolver,
		Sessions:      sessions,
		OTPService:    otpService,
		Hasher:        hasher,
		SecureCookies: cfg.Production,
		Version:       version,
	})

	// Handle graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("\n🛑 Gracefully shutting down...")
		cleanupJob.Stop()
		_ = app.Shutdown()
	}()

	log.Println("========================================")
	log.Printf("🚀 Sharing Yatra Backend starting on port %s", cfg.Port)
	log.Printf("📊 Storage: %s", storageName(cfg))
	log.Printf("🌍 Environment: %s", environmentName(cfg))
	log.Println("========================================")

	log.Fatal(app.Listen(":" + cfg.Port))
}

func environmentName(cfg *config.Config) string {
	if cfg.Production {
		return "Production"
	}
	return "Development (Local)"
}

func storageName(cfg *config.Config) string {
	if cfg.UseMemoryStore {
		return "In-Memory (Testing)"
	}
	return "PostgreSQL Database"
}
