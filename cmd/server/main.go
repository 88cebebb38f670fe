package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"campus-connect/internal/adapters/http/middleware"
	"campus-connect/internal/adapters/http/routes"
	"campus-connect/internal/adapters/persistence/models"
	"campus-connect/internal/config"
	"campus-connect/internal/core/services"
	"campus-connect/internal/pkg/upload"

	"github.com/gofiber/fiber/v2"

	_ "campus-connect/docs" // Swagger docs
)

// @title Campus Connect API
// @version 1.0
// @description Campus management backend: accounts, approvals, clubs, events, syllabi and exam rooms

// @contact.name API Support

// @host localhost:8080
// @BasePath /
// @schemes http

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Seed the admin account, base courses and exam halls
	if err := config.NewSeeder(db).Run(); err != nil {
		log.Printf("⚠️ Warning: Failed to seed data: %v", err)
	}

	// Media host for profile images and syllabus attachments
	uploader, err := upload.NewCloudinaryUploader(
		cfg.Upload.CloudName,
		cfg.Upload.APIKey,
		cfg.Upload.APISecret,
		cfg.Upload.Folder,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize media host: %v", err)
	}

	// Daily digest at 08:30
	cronService := services.NewCronService(db)
	cronService.Start()
	defer cronService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Campus Connect API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db, cfg and uploader for dependency injection)
	routes.Setup(app, db, cfg, uploader)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
